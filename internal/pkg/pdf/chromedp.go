package pdf

import (
	"context"
	"fmt"
	"time"

	"github.com/chromedp/cdproto/page"
	"github.com/chromedp/chromedp"
)

// ChromeDPConverter 连接远程的 headless chrome 打印 PDF
type ChromeDPConverter struct {
	RemoteWebSocketURL string
	Timeout            time.Duration
	DefaultOptions     Options
}

func NewChromeDPConverter(remoteWebSocketURL string) *ChromeDPConverter {
	return &ChromeDPConverter{
		RemoteWebSocketURL: remoteWebSocketURL,
		Timeout:            60 * time.Second,
		DefaultOptions:     Apply(Options{}, PaperLetter, MarginsNormal),
	}
}

func (c *ChromeDPConverter) ConvertHTMLToPDF(ctx context.Context, html string, opts ...Option) ([]byte, error) {
	options := Apply(c.DefaultOptions, opts...)

	ctx, cancel := context.WithTimeout(ctx, c.Timeout)
	defer cancel()
	allocCtx, allocCancel := chromedp.NewRemoteAllocator(ctx, c.RemoteWebSocketURL)
	defer allocCancel()
	taskCtx, taskCancel := chromedp.NewContext(allocCtx)
	defer taskCancel()

	params := page.PrintToPDF().
		WithPrintBackground(true).
		WithPreferCSSPageSize(true).
		WithMarginTop(options.MarginTopInch).
		WithMarginBottom(options.MarginBottomInch).
		WithMarginLeft(options.MarginLeftInch).
		WithMarginRight(options.MarginRightInch).
		WithLandscape(options.Landscape)
	if options.PaperWidthInch > 0 && options.PaperHeightInch > 0 {
		params = params.WithPaperWidth(options.PaperWidthInch).
			WithPaperHeight(options.PaperHeightInch)
	}

	var data []byte
	err := chromedp.Run(taskCtx,
		chromedp.Navigate("about:blank"),
		chromedp.ActionFunc(func(ctx context.Context) error {
			tree, err := page.GetFrameTree().Do(ctx)
			if err != nil {
				return err
			}
			return page.SetDocumentContent(tree.Frame.ID, html).Do(ctx)
		}),
		chromedp.WaitReady("body", chromedp.ByQuery),
		chromedp.ActionFunc(func(ctx context.Context) error {
			var err error
			data, _, err = params.Do(ctx)
			return err
		}),
	)
	if err != nil {
		return nil, fmt.Errorf("chromedp 生成 PDF 失败: %w", err)
	}
	return data, nil
}
