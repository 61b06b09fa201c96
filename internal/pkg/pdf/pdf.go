package pdf

import (
	"context"
)

//go:generate mockgen -source=./pdf.go -package=pdfmocks -destination=./mocks/pdf.mock.go -typed Converter
type Converter interface {
	// ConvertHTMLToPDF html 必须是完整的文档
	ConvertHTMLToPDF(ctx context.Context, html string, opts ...Option) ([]byte, error)
}

// Options 尺寸单位都是英寸
type Options struct {
	PaperWidthInch   float64
	PaperHeightInch  float64
	MarginTopInch    float64
	MarginBottomInch float64
	MarginLeftInch   float64
	MarginRightInch  float64
	Landscape        bool
}

type Option func(*Options)

func WithPaperSize(width, height float64) Option {
	return func(o *Options) {
		o.PaperWidthInch = width
		o.PaperHeightInch = height
	}
}

func WithMargins(top, right, bottom, left float64) Option {
	return func(o *Options) {
		o.MarginTopInch = top
		o.MarginRightInch = right
		o.MarginBottomInch = bottom
		o.MarginLeftInch = left
	}
}

func WithLandscape(landscape bool) Option {
	return func(o *Options) {
		o.Landscape = landscape
	}
}

var (
	PaperA4     = WithPaperSize(8.27, 11.69)
	PaperLetter = WithPaperSize(8.5, 11)

	MarginsNormal = WithMargins(0.4, 0.4, 0.4, 0.4)
	MarginsNarrow = WithMargins(0.2, 0.2, 0.2, 0.2)
)

// Apply 在默认值的基础上叠加 opts
func Apply(def Options, opts ...Option) Options {
	for _, opt := range opts {
		opt(&def)
	}
	return def
}
