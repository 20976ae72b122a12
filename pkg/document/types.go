package document

import (
	"errors"
	"fmt"
)

// ColorSpace is the working color space of a document. It decides the
// "white" reference used when diluting spot color tints.
type ColorSpace string

const (
	SpaceRGB  ColorSpace = "RGB"
	SpaceCMYK ColorSpace = "CMYK"
)

// ShapeKind tags a Shape as a leaf path, a container or an item that carries
// no collectible color at all.
type ShapeKind string

const (
	KindPath     ShapeKind = "path"
	KindGroup    ShapeKind = "group"
	KindCompound ShapeKind = "compound"
	KindOther    ShapeKind = "other" // text, raster images, symbols...
)

// ColorKind tags the variant held by a Color.
type ColorKind string

const (
	ColorRGB      ColorKind = "rgb"
	ColorCMYK     ColorKind = "cmyk"
	ColorGray     ColorKind = "gray"
	ColorLab      ColorKind = "lab"
	ColorSpot     ColorKind = "spot"
	ColorGradient ColorKind = "gradient"
	ColorPattern  ColorKind = "pattern"
)

var (
	// ErrUnsupportedColor is returned for color models that have no string form.
	ErrUnsupportedColor = errors.New("unsupported color model")
	// ErrChannelCount is returned when a process color carries the wrong number of channels.
	ErrChannelCount = errors.New("wrong number of color channels")
)

// Document is the input of one run: a working color space and the selected items.
type Document struct {
	Name       string     `json:"name,omitempty" yaml:"name,omitempty"`
	ColorSpace ColorSpace `json:"colorSpace" yaml:"colorSpace"`
	Selection  []Shape    `json:"selection" yaml:"selection"`
}

// Shape is a drawable item of the selection tree.
// Left and Top are canvas coordinates with Y growing upward.
// A nil Fill means the shape is not filled, a nil Stroke that it is not stroked.
type Shape struct {
	Name     string    `json:"name,omitempty" yaml:"name,omitempty"`
	Kind     ShapeKind `json:"kind" yaml:"kind"`
	Left     float64   `json:"left" yaml:"left"`
	Top      float64   `json:"top" yaml:"top"`
	Fill     *Color    `json:"fill,omitempty" yaml:"fill,omitempty"`
	Stroke   *Color    `json:"stroke,omitempty" yaml:"stroke,omitempty"`
	Children []Shape   `json:"children,omitempty" yaml:"children,omitempty"`
}

// Color is a tagged union over the supported color models.
// Values is used by RGB, CMYK, Gray and Lab; Spot and Gradient by their kinds.
type Color struct {
	Kind     ColorKind      `json:"kind" yaml:"kind"`
	Values   []float64      `json:"values,omitempty" yaml:"values,omitempty"`
	Spot     *SpotColor     `json:"spot,omitempty" yaml:"spot,omitempty"`
	Gradient []GradientStop `json:"gradient,omitempty" yaml:"gradient,omitempty"`
}

// SpotColor is a named ink resolved to an underlying process color.
// Tint is a percentage in [0, 100].
type SpotColor struct {
	Name  string  `json:"name" yaml:"name"`
	Color Color   `json:"color" yaml:"color"`
	Tint  float64 `json:"tint" yaml:"tint"`
}

// GradientStop is one color of a gradient ramp.
type GradientStop struct {
	Offset float64 `json:"offset" yaml:"offset"`
	Color  Color   `json:"color" yaml:"color"`
}

// RGB returns an RGB color with channels in the 0-255 range.
func RGB(r, g, b float64) Color { return Color{Kind: ColorRGB, Values: []float64{r, g, b}} }

// CMYK returns a CMYK color with channels in the 0-100 range.
func CMYK(c, m, y, k float64) Color { return Color{Kind: ColorCMYK, Values: []float64{c, m, y, k}} }

// Gray returns a grayscale color with its single channel in the 0-100 range.
func Gray(v float64) Color { return Color{Kind: ColorGray, Values: []float64{v}} }

// Lab returns a CIE L*a*b* color.
func Lab(l, a, b float64) Color { return Color{Kind: ColorLab, Values: []float64{l, a, b}} }

// Spot returns a spot color named name, resolved to underlying at tint percent.
func Spot(name string, underlying Color, tint float64) Color {
	return Color{Kind: ColorSpot, Spot: &SpotColor{Name: name, Color: underlying, Tint: tint}}
}

// Gradient returns a gradient color made of stops.
func Gradient(stops ...GradientStop) Color { return Color{Kind: ColorGradient, Gradient: stops} }

// ChannelCount reports how many channels a process color of kind k carries,
// or 0 for kinds that carry no channels of their own.
func ChannelCount(k ColorKind) int {
	switch k {
	case ColorRGB, ColorLab:
		return 3
	case ColorCMYK:
		return 4
	case ColorGray:
		return 1
	default:
		return 0
	}
}

// TypeName returns the upper-case model name used as the prefix of a formatted color.
func (k ColorKind) TypeName() string {
	switch k {
	case ColorRGB:
		return "RGB"
	case ColorCMYK:
		return "CMYK"
	case ColorGray:
		return "GRAY"
	case ColorLab:
		return "LAB"
	case ColorSpot:
		return "SPOT"
	case ColorGradient:
		return "GRADIENT"
	case ColorPattern:
		return "PATTERN"
	default:
		return string(k)
	}
}

// Validate reports whether c can be formatted, descending into spot and gradient colors.
func (c Color) Validate() error {
	switch c.Kind {
	case ColorRGB, ColorCMYK, ColorGray, ColorLab:
		if want := ChannelCount(c.Kind); len(c.Values) != want {
			return fmt.Errorf("%s color has %d channels, want %d: %w", c.Kind.TypeName(), len(c.Values), want, ErrChannelCount)
		}
		return nil
	case ColorSpot:
		if c.Spot == nil {
			return fmt.Errorf("spot color without definition: %w", ErrUnsupportedColor)
		}
		if c.Spot.Color.Kind == ColorSpot || c.Spot.Color.Kind == ColorGradient {
			return fmt.Errorf("spot %q resolves to %s: %w", c.Spot.Name, c.Spot.Color.Kind.TypeName(), ErrUnsupportedColor)
		}
		if err := c.Spot.Color.Validate(); err != nil {
			return fmt.Errorf("spot %q: %w", c.Spot.Name, err)
		}
		return nil
	case ColorGradient:
		for i, stop := range c.Gradient {
			if err := stop.Color.Validate(); err != nil {
				return fmt.Errorf("gradient stop %d: %w", i, err)
			}
		}
		return nil
	default:
		return fmt.Errorf("%s: %w", c.Kind.TypeName(), ErrUnsupportedColor)
	}
}

// IsRGB reports whether the space dilutes tints toward 255.
func (s ColorSpace) IsRGB() bool {
	return s == SpaceRGB
}
