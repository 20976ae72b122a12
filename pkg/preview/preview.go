// Package preview renders terminal swatches for formatted colors.
package preview

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/lucasb-eyer/go-colorful"

	"github.com/kataras/colorclip/pkg/document"
	"github.com/kataras/colorclip/pkg/extractor"
)

const swatchWidth = 4

var (
	labelStyle = lipgloss.NewStyle().PaddingLeft(1)
	white      = colorful.Color{R: 1, G: 1, B: 1}
)

// ToSRGB approximates c on screen. Gradients and unsupported colors report false.
// CMYK and gray use the naive device conversion, Lab assumes a D65 white point.
func ToSRGB(c document.Color) (colorful.Color, bool) {
	if c.Validate() != nil {
		return colorful.Color{}, false
	}

	v := c.Values
	switch c.Kind {
	case document.ColorRGB:
		return colorful.Color{R: v[0] / 255, G: v[1] / 255, B: v[2] / 255}.Clamped(), true
	case document.ColorCMYK:
		k := 1 - v[3]/100
		return colorful.Color{
			R: (1 - v[0]/100) * k,
			G: (1 - v[1]/100) * k,
			B: (1 - v[2]/100) * k,
		}.Clamped(), true
	case document.ColorGray:
		// Gray is an ink percentage: 0 is white.
		g := 1 - v[0]/100
		return colorful.Color{R: g, G: g, B: g}.Clamped(), true
	case document.ColorLab:
		return colorful.Lab(v[0]/100, v[1]/100, v[2]/100).Clamped(), true
	case document.ColorSpot:
		base, ok := ToSRGB(c.Spot.Color)
		if !ok {
			return colorful.Color{}, false
		}
		return white.BlendRgb(base, c.Spot.Tint/100).Clamped(), true
	default:
		return colorful.Color{}, false
	}
}

// Swatch renders a block in color c, or blank space when c has no screen form.
func Swatch(c document.Color) string {
	rgb, ok := ToSRGB(c)
	if !ok {
		return strings.Repeat(" ", swatchWidth)
	}
	return lipgloss.NewStyle().
		Background(lipgloss.Color(rgb.Hex())).
		Render(strings.Repeat(" ", swatchWidth))
}

// Render writes one line per formatted entry preceded by its swatch.
// Gradient entries expand to one swatch line per stop.
func Render(w io.Writer, entries []extractor.Entry) error {
	for _, e := range entries {
		if e.Color.Kind == document.ColorGradient {
			lines := strings.Split(e.Text, "\n")
			for i, stop := range e.Color.Gradient {
				if i >= len(lines) {
					break
				}
				if _, err := fmt.Fprintln(w, Swatch(stop.Color)+labelStyle.Render(lines[i])); err != nil {
					return err
				}
			}
			continue
		}

		if _, err := fmt.Fprintln(w, Swatch(e.Color)+labelStyle.Render(e.Text)); err != nil {
			return err
		}
	}
	return nil
}
