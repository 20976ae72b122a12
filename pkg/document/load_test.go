package document

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

const sampleJSON = `{
  "colorSpace": "cmyk",
  "selection": [
    {
      "name": "badge",
      "kind": "group",
      "children": [
        {"name": "ink", "kind": "path", "left": 10, "top": 20,
         "fill": {"kind": "spot", "spot": {"name": "PANTONE 123", "tint": 50,
                  "color": {"kind": "cmyk", "values": [0, 0, 100, 0]}}}},
        {"name": "label", "kind": "other"}
      ]
    }
  ]
}`

const sampleYAML = `
colorSpace: RGB
selection:
  - name: swatch
    left: 5
    top: 7
    fill:
      kind: RGB
      values: [255, 0, 0]
    stroke:
      kind: grey
      values: [40]
`

func TestDecodeJSON(t *testing.T) {
	doc, err := Decode(strings.NewReader(sampleJSON), FormatJSON)
	if err != nil {
		t.Fatalf("Decode() error = %v", err)
	}

	if doc.ColorSpace != SpaceCMYK {
		t.Errorf("ColorSpace = %q, want %q", doc.ColorSpace, SpaceCMYK)
	}
	if len(doc.Selection) != 1 || len(doc.Selection[0].Children) != 2 {
		t.Fatalf("unexpected selection shape: %+v", doc.Selection)
	}

	ink := doc.Selection[0].Children[0]
	if ink.Fill == nil || ink.Fill.Kind != ColorSpot {
		t.Fatalf("ink fill = %+v, want spot color", ink.Fill)
	}
	if ink.Fill.Spot.Name != "PANTONE 123" || ink.Fill.Spot.Tint != 50 {
		t.Errorf("spot = %+v", ink.Fill.Spot)
	}
	if ink.Stroke != nil {
		t.Errorf("ink stroke = %+v, want nil", ink.Stroke)
	}
}

func TestDecodeYAML(t *testing.T) {
	doc, err := Decode(strings.NewReader(sampleYAML), FormatYAML)
	if err != nil {
		t.Fatalf("Decode() error = %v", err)
	}

	swatch := doc.Selection[0]
	if swatch.Kind != KindPath {
		t.Errorf("untagged leaf kind = %q, want %q", swatch.Kind, KindPath)
	}
	if swatch.Fill.Kind != ColorRGB {
		t.Errorf("fill kind = %q, want %q", swatch.Fill.Kind, ColorRGB)
	}
	if swatch.Stroke.Kind != ColorGray {
		t.Errorf("stroke kind = %q, want %q", swatch.Stroke.Kind, ColorGray)
	}
	if swatch.Left != 5 || swatch.Top != 7 {
		t.Errorf("position = (%g, %g), want (5, 7)", swatch.Left, swatch.Top)
	}
}

func TestDecodeErrors(t *testing.T) {
	tests := []struct {
		name   string
		input  string
		format Format
	}{
		{
			name:  "unknown color space",
			input: `{"colorSpace": "HSB", "selection": []}`,
		},
		{
			name:  "unknown shape kind",
			input: `{"selection": [{"kind": "mesh"}]}`,
		},
		{
			name:  "unknown color kind",
			input: `{"selection": [{"kind": "path", "fill": {"kind": "hsl", "values": [1, 2, 3]}}]}`,
		},
		{
			name:  "spot without definition",
			input: `{"selection": [{"kind": "path", "fill": {"kind": "spot"}}]}`,
		},
		{
			name:  "unknown field",
			input: `{"selection": [], "artboards": []}`,
		},
		{
			name:   "misspelled YAML field",
			input:  "selection:\n  - kind: path\n    colour:\n      kind: rgb\n      values: [255, 0, 0]\n",
			format: FormatYAML,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			format := tt.format
			if format == "" {
				format = FormatJSON
			}
			if _, err := Decode(strings.NewReader(tt.input), format); err == nil {
				t.Error("Decode() expected error, got nil")
			}
		})
	}
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "poster.yml")
	if err := os.WriteFile(path, []byte(sampleYAML), 0644); err != nil {
		t.Fatal(err)
	}

	doc, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if doc.Name != "poster" {
		t.Errorf("Name = %q, want %q", doc.Name, "poster")
	}

	if _, err := Load(filepath.Join(dir, "poster.svg")); err == nil {
		t.Error("Load() with unknown extension expected error")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		color   Color
		wantErr error
	}{
		{name: "rgb", color: RGB(1, 2, 3)},
		{name: "cmyk", color: CMYK(1, 2, 3, 4)},
		{name: "gray", color: Gray(50)},
		{name: "lab", color: Lab(50, -20, 30)},
		{name: "spot", color: Spot("Ink", CMYK(0, 0, 100, 0), 100)},
		{
			name:  "gradient",
			color: Gradient(GradientStop{Offset: 0, Color: RGB(0, 0, 0)}, GradientStop{Offset: 100, Color: Gray(0)}),
		},
		{name: "short rgb", color: Color{Kind: ColorRGB, Values: []float64{1, 2}}, wantErr: ErrChannelCount},
		{name: "pattern", color: Color{Kind: ColorPattern}, wantErr: ErrUnsupportedColor},
		{name: "spot of spot", color: Spot("A", Spot("B", Gray(1), 100), 100), wantErr: ErrUnsupportedColor},
		{
			name:    "gradient with bad stop",
			color:   Gradient(GradientStop{Color: Color{Kind: ColorCMYK, Values: []float64{1}}}),
			wantErr: ErrChannelCount,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.color.Validate()
			if tt.wantErr == nil {
				if err != nil {
					t.Errorf("Validate() error = %v, want nil", err)
				}
				return
			}
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("Validate() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}
