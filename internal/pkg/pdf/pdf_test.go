package pdf

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestApply(t *testing.T) {
	testCases := []struct {
		name string
		opts []Option
		want Options
	}{
		{
			name: "默认值",
			want: Options{PaperWidthInch: 8.5, PaperHeightInch: 11,
				MarginTopInch: 0.4, MarginRightInch: 0.4, MarginBottomInch: 0.4, MarginLeftInch: 0.4},
		},
		{
			name: "A4 窄边距横向",
			opts: []Option{PaperA4, MarginsNarrow, WithLandscape(true)},
			want: Options{PaperWidthInch: 8.27, PaperHeightInch: 11.69,
				MarginTopInch: 0.2, MarginRightInch: 0.2, MarginBottomInch: 0.2, MarginLeftInch: 0.2,
				Landscape: true},
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			c := NewChromeDPConverter("ws://localhost:3000")
			assert.Equal(t, tc.want, Apply(c.DefaultOptions, tc.opts...))
		})
	}
}
