package figma

// FileResponse represents the response from the Figma file API endpoint.
// Only the fields needed to rebuild a shape tree are decoded.
type FileResponse struct {
	Name         string `json:"name"`
	LastModified string `json:"lastModified"`
	Version      string `json:"version"`
	Document     Node   `json:"document"`
}

// NodesResponse represents the response from the Figma nodes API endpoint when fetching specific nodes.
// It contains file metadata and a map of node IDs to their corresponding NodeData.
type NodesResponse struct {
	Name         string              `json:"name"`
	LastModified string              `json:"lastModified"`
	Version      string              `json:"version"`
	Nodes        map[string]NodeData `json:"nodes"`
}

// NodeData wraps a node returned by the nodes endpoint.
type NodeData struct {
	Document Node `json:"document"`
}

// Node represents a single element in the Figma document tree hierarchy.
type Node struct {
	ID                  string     `json:"id"`
	Name                string     `json:"name"`
	Type                string     `json:"type"`
	Visible             *bool      `json:"visible,omitempty"`
	Children            []Node     `json:"children,omitempty"`
	Fills               []Paint    `json:"fills,omitempty"`
	Strokes             []Paint    `json:"strokes,omitempty"`
	AbsoluteBoundingBox *Rectangle `json:"absoluteBoundingBox,omitempty"`
}

// IsVisible reports whether the node is shown. The API omits the field for visible nodes.
func (n *Node) IsVisible() bool {
	return n.Visible == nil || *n.Visible
}

// Color represents an RGBA color with float values ranging from 0 to 1.
type Color struct {
	R float64 `json:"r"`
	G float64 `json:"g"`
	B float64 `json:"b"`
	A float64 `json:"a"`
}

// Paint represents a fill or stroke applied to a Figma node.
// Type is SOLID, GRADIENT_LINEAR, GRADIENT_RADIAL, GRADIENT_ANGULAR,
// GRADIENT_DIAMOND, IMAGE or EMOJI.
type Paint struct {
	Type          string      `json:"type"`
	Visible       *bool       `json:"visible,omitempty"`
	Opacity       *float64    `json:"opacity,omitempty"`
	Color         *Color      `json:"color,omitempty"`
	GradientStops []ColorStop `json:"gradientStops,omitempty"`
}

// IsVisible reports whether the paint is enabled. The API omits the field for visible paints.
func (p *Paint) IsVisible() bool {
	return p.Visible == nil || *p.Visible
}

// ColorStop is a position on a gradient ramp, Position is in [0, 1].
type ColorStop struct {
	Position float64 `json:"position"`
	Color    Color   `json:"color"`
}

// Rectangle represents a bounding box with position (X, Y) and dimensions (Width, Height).
// Y grows downward on the Figma canvas.
type Rectangle struct {
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}
