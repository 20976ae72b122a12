package preview

import (
	"bytes"
	"strings"
	"testing"

	"github.com/kataras/colorclip/pkg/document"
	"github.com/kataras/colorclip/pkg/extractor"
)

func TestToSRGB(t *testing.T) {
	tests := []struct {
		name   string
		color  document.Color
		want   string
		wantOK bool
	}{
		{name: "rgb", color: document.RGB(255, 0, 0), want: "#ff0000", wantOK: true},
		{name: "cmyk black", color: document.CMYK(0, 0, 0, 100), want: "#000000", wantOK: true},
		{name: "cmyk yellow", color: document.CMYK(0, 0, 100, 0), want: "#ffff00", wantOK: true},
		{name: "gray no ink", color: document.Gray(0), want: "#ffffff", wantOK: true},
		{name: "gray full ink", color: document.Gray(100), want: "#000000", wantOK: true},
		{name: "lab white", color: document.Lab(100, 0, 0), want: "#ffffff", wantOK: true},
		{name: "spot zero tint", color: document.Spot("Ink", document.RGB(0, 0, 0), 0), want: "#ffffff", wantOK: true},
		{name: "spot full tint", color: document.Spot("Ink", document.RGB(0, 0, 255), 100), want: "#0000ff", wantOK: true},
		{name: "gradient", color: document.Gradient(), wantOK: false},
		{name: "pattern", color: document.Color{Kind: document.ColorPattern}, wantOK: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ToSRGB(tt.color)
			if ok != tt.wantOK {
				t.Fatalf("ToSRGB() ok = %v, want %v", ok, tt.wantOK)
			}
			if ok && got.Hex() != tt.want {
				t.Errorf("ToSRGB() = %s, want %s", got.Hex(), tt.want)
			}
		})
	}
}

func TestRender(t *testing.T) {
	entries := []extractor.Entry{
		{Text: "RGB=255,0,0", Color: document.RGB(255, 0, 0)},
		{
			Text: "RGB=0,0,0\nGRAY=50",
			Color: document.Gradient(
				document.GradientStop{Offset: 0, Color: document.RGB(0, 0, 0)},
				document.GradientStop{Offset: 100, Color: document.Gray(50)},
			),
		},
	}

	var buf bytes.Buffer
	if err := Render(&buf, entries); err != nil {
		t.Fatalf("Render() error = %v", err)
	}

	out := buf.String()
	if lines := strings.Count(out, "\n"); lines != 3 {
		t.Errorf("Render() wrote %d lines, want 3:\n%s", lines, out)
	}
	for _, want := range []string{"RGB=255,0,0", "RGB=0,0,0", "GRAY=50"} {
		if !strings.Contains(out, want) {
			t.Errorf("Render() output missing %q:\n%s", want, out)
		}
	}
}
