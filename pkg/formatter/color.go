package formatter

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/kataras/colorclip/pkg/document"
)

// Options controls how spot colors are rendered.
type Options struct {
	// SpotValues emits "NAME=c1,c2,..." for spot colors instead of the bare name.
	SpotValues bool
	// SpotTint dilutes spot channel values by the spot tint.
	SpotTint bool
	// Space is the document working color space, it selects the tint white reference.
	Space document.ColorSpace
}

// Format converts a color into its "TYPE=c1,c2,..." string form.
// Spot colors render as their name, or "NAME=..." when SpotValues is set.
// A gradient renders one line per stop, newline-joined, always with spot
// values and never with tint dilution.
func Format(c document.Color, opts Options) (string, error) {
	switch c.Kind {
	case document.ColorRGB, document.ColorCMYK, document.ColorGray, document.ColorLab:
		if err := c.Validate(); err != nil {
			return "", err
		}
		return c.Kind.TypeName() + "=" + joinChannels(c.Values, 0, 1), nil

	case document.ColorSpot:
		if err := c.Validate(); err != nil {
			return "", err
		}
		spot := c.Spot
		if !opts.SpotValues {
			return spot.Name, nil
		}
		t := 1.0
		if opts.SpotTint {
			t = spot.Tint / 100
		}
		return spot.Name + "=" + joinChannels(spot.Color.Values, WhiteReference(opts.Space), t), nil

	case document.ColorGradient:
		stopOpts := Options{SpotValues: true, SpotTint: false, Space: opts.Space}
		lines := make([]string, 0, len(c.Gradient))
		for i, stop := range c.Gradient {
			line, err := Format(stop.Color, stopOpts)
			if err != nil {
				return "", fmt.Errorf("gradient stop %d: %w", i, err)
			}
			lines = append(lines, line)
		}
		return strings.Join(lines, "\n"), nil

	default:
		return "", fmt.Errorf("cannot format %s color: %w", c.Kind.TypeName(), document.ErrUnsupportedColor)
	}
}

// joinChannels interpolates every channel from white by t and joins the
// rounded results with commas. With t == 1 the channels are only rounded.
func joinChannels(values []float64, white, t float64) string {
	parts := make([]string, len(values))
	for i, v := range values {
		parts[i] = strconv.Itoa(Lerp(white, v, t))
	}
	return strings.Join(parts, ",")
}

// Lerp returns round(white + (value - white) * t).
func Lerp(white, value, t float64) int {
	return Round(white + (value-white)*t)
}

// Round rounds half-way values toward positive infinity, so 127.5 becomes
// 128 and -2.5 becomes -2.
func Round(x float64) int {
	return int(math.Floor(x + 0.5))
}

// WhiteReference is the channel value a fully diluted tint approaches:
// 255 in RGB documents, 0 (no ink) otherwise.
func WhiteReference(space document.ColorSpace) float64 {
	if space.IsRGB() {
		return 255
	}
	return 0
}
