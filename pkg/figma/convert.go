package figma

import (
	"strings"

	"github.com/kataras/colorclip/pkg/document"
)

// pathTypes are the node types drawn as a single vector outline.
var pathTypes = map[string]bool{
	"VECTOR":          true,
	"RECTANGLE":       true,
	"ELLIPSE":         true,
	"LINE":            true,
	"STAR":            true,
	"POLYGON":         true,
	"REGULAR_POLYGON": true,
}

// ToDocument converts Figma nodes into a selection in an RGB document.
// Hidden nodes are dropped.
func ToDocument(name string, roots []Node) *document.Document {
	doc := &document.Document{
		Name:       name,
		ColorSpace: document.SpaceRGB,
		Selection:  make([]document.Shape, 0, len(roots)),
	}
	for i := range roots {
		if roots[i].IsVisible() {
			doc.Selection = append(doc.Selection, ToShape(&roots[i]))
		}
	}
	return doc
}

// ToShape converts a node and its visible descendants into a shape tree.
// Nodes with children become groups, boolean operations become compound
// paths and vector primitives become paths. Figma's Y axis grows downward,
// so Top is the negated bounding box Y.
//
// A boolean operation is drawn with its own fills and strokes, never with
// those of its operands, so every operand becomes a sub-path carrying the
// operation's paint.
func ToShape(node *Node) document.Shape {
	shape := document.Shape{
		Name:   node.Name,
		Kind:   shapeKind(node),
		Fill:   paintColor(node.Fills),
		Stroke: paintColor(node.Strokes),
	}
	if node.AbsoluteBoundingBox != nil {
		shape.Left = node.AbsoluteBoundingBox.X
		shape.Top = -node.AbsoluteBoundingBox.Y
	}

	for i := range node.Children {
		if !node.Children[i].IsVisible() {
			continue
		}
		child := ToShape(&node.Children[i])
		if shape.Kind == document.KindCompound {
			child.Kind = document.KindPath
			child.Fill, child.Stroke = shape.Fill, shape.Stroke
			child.Children = nil
		}
		shape.Children = append(shape.Children, child)
	}
	return shape
}

func shapeKind(node *Node) document.ShapeKind {
	switch {
	case node.Type == "BOOLEAN_OPERATION":
		return document.KindCompound
	case len(node.Children) > 0:
		return document.KindGroup
	case pathTypes[node.Type]:
		return document.KindPath
	default:
		return document.KindOther
	}
}

// paintColor returns the color of the topmost visible solid or gradient
// paint, or nil when none is painted. Figma stacks paints bottom to top.
func paintColor(paints []Paint) *document.Color {
	for i := len(paints) - 1; i >= 0; i-- {
		p := &paints[i]
		if !p.IsVisible() {
			continue
		}

		switch {
		case p.Type == "SOLID" && p.Color != nil:
			c := toRGB(p.Color)
			return &c
		case strings.HasPrefix(p.Type, "GRADIENT_") && len(p.GradientStops) > 0:
			stops := make([]document.GradientStop, len(p.GradientStops))
			for j, s := range p.GradientStops {
				stops[j] = document.GradientStop{Offset: s.Position * 100, Color: toRGB(&s.Color)}
			}
			c := document.Gradient(stops...)
			return &c
		}
	}
	return nil
}

func toRGB(c *Color) document.Color {
	return document.RGB(c.R*255, c.G*255, c.B*255)
}
