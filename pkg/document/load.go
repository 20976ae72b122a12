package document

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Format is the serialization of a document file.
type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// FormatFromPath picks the serialization from the file extension.
func FormatFromPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return FormatJSON, nil
	case ".yaml", ".yml":
		return FormatYAML, nil
	default:
		return "", fmt.Errorf("unknown document extension %q (must be .json, .yaml or .yml)", filepath.Ext(path))
	}
}

// Load reads and validates the document stored at path.
func Load(path string) (*Document, error) {
	format, err := FormatFromPath(path)
	if err != nil {
		return nil, err
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open document: %w", err)
	}
	defer f.Close()

	doc, err := Decode(f, format)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	if doc.Name == "" {
		doc.Name = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	}
	return doc, nil
}

// Decode parses a document in the given format and normalizes its tags.
// An empty color space defaults to RGB.
func Decode(r io.Reader, format Format) (*Document, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("failed to read document: %w", err)
	}

	var doc Document
	switch format {
	case FormatJSON:
		dec := json.NewDecoder(bytes.NewReader(data))
		dec.DisallowUnknownFields()
		if err := dec.Decode(&doc); err != nil {
			return nil, fmt.Errorf("failed to parse JSON document: %w", err)
		}
	case FormatYAML:
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err := dec.Decode(&doc); err != nil && !errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("failed to parse YAML document: %w", err)
		}
	default:
		return nil, fmt.Errorf("unknown document format %q", format)
	}

	if err := doc.normalize(); err != nil {
		return nil, err
	}
	return &doc, nil
}

func (d *Document) normalize() error {
	switch ColorSpace(strings.ToUpper(string(d.ColorSpace))) {
	case "", SpaceRGB:
		d.ColorSpace = SpaceRGB
	case SpaceCMYK:
		d.ColorSpace = SpaceCMYK
	default:
		return fmt.Errorf("unknown color space %q (must be RGB or CMYK)", d.ColorSpace)
	}

	for i := range d.Selection {
		if err := d.Selection[i].normalize(); err != nil {
			return fmt.Errorf("selection[%d]: %w", i, err)
		}
	}
	return nil
}

func (s *Shape) normalize() error {
	s.Kind = ShapeKind(strings.ToLower(string(s.Kind)))
	switch s.Kind {
	case KindPath, KindGroup, KindCompound, KindOther:
	case "":
		// Untagged items with children behave like groups, others like paths.
		if len(s.Children) > 0 {
			s.Kind = KindGroup
		} else {
			s.Kind = KindPath
		}
	default:
		return fmt.Errorf("shape %q: unknown kind %q", s.Name, s.Kind)
	}

	if s.Fill != nil {
		if err := s.Fill.normalize(); err != nil {
			return fmt.Errorf("shape %q fill: %w", s.Name, err)
		}
	}
	if s.Stroke != nil {
		if err := s.Stroke.normalize(); err != nil {
			return fmt.Errorf("shape %q stroke: %w", s.Name, err)
		}
	}

	for i := range s.Children {
		if err := s.Children[i].normalize(); err != nil {
			return fmt.Errorf("%s/%w", s.Name, err)
		}
	}
	return nil
}

func (c *Color) normalize() error {
	c.Kind = ColorKind(strings.ToLower(string(c.Kind)))
	switch c.Kind {
	case ColorRGB, ColorCMYK, ColorGray, ColorLab, ColorPattern:
	case "grey":
		c.Kind = ColorGray
	case ColorSpot:
		if c.Spot == nil {
			return fmt.Errorf("spot color is missing its definition")
		}
		return c.Spot.Color.normalize()
	case ColorGradient:
		for i := range c.Gradient {
			if err := c.Gradient[i].Color.normalize(); err != nil {
				return fmt.Errorf("gradient stop %d: %w", i, err)
			}
		}
	default:
		return fmt.Errorf("unknown color kind %q", c.Kind)
	}
	return nil
}
