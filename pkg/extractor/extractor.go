package extractor

import (
	"fmt"
	"math"
	"sort"

	"github.com/kataras/colorclip/pkg/document"
	"github.com/kataras/colorclip/pkg/formatter"
)

// Collect flattens the selection roots into the leaf shapes that carry colors,
// in selection order. Groups contribute their leaves recursively, a compound
// path contributes its first sub-path only, and anything that is neither
// (text, images) is skipped.
func Collect(roots []document.Shape) []document.Shape {
	var leaves []document.Shape
	for i := range roots {
		leaves = collectFromShape(&roots[i], leaves)
	}
	return leaves
}

func collectFromShape(shape *document.Shape, leaves []document.Shape) []document.Shape {
	switch shape.Kind {
	case document.KindGroup:
		for i := range shape.Children {
			leaves = collectFromShape(&shape.Children[i], leaves)
		}
	case document.KindCompound:
		// Sub-paths of a compound path share one fill and stroke.
		if len(shape.Children) > 0 {
			leaves = append(leaves, shape.Children[0])
		}
	case document.KindPath:
		leaves = append(leaves, *shape)
	}
	return leaves
}

// SortByPosition orders shapes in place by reading order. When the selection
// is spread wider than it is tall, shapes are sorted left to right (higher
// first on ties); otherwise top to bottom (leftmost first on ties). The
// canvas Y axis grows upward, so "top to bottom" means descending Top.
// Shapes at identical positions keep their relative order.
func SortByPosition(shapes []document.Shape) {
	if len(shapes) < 2 {
		return
	}

	minLeft, maxLeft := math.Inf(1), math.Inf(-1)
	minTop, maxTop := math.Inf(1), math.Inf(-1)
	for _, s := range shapes {
		minLeft = math.Min(minLeft, s.Left)
		maxLeft = math.Max(maxLeft, s.Left)
		minTop = math.Min(minTop, s.Top)
		maxTop = math.Max(maxTop, s.Top)
	}

	if maxLeft-minLeft > maxTop-minTop {
		sort.SliceStable(shapes, func(i, j int) bool {
			a, b := shapes[i], shapes[j]
			if a.Left != b.Left {
				return a.Left < b.Left
			}
			return a.Top > b.Top
		})
		return
	}

	sort.SliceStable(shapes, func(i, j int) bool {
		a, b := shapes[i], shapes[j]
		if a.Top != b.Top {
			return a.Top > b.Top
		}
		return a.Left < b.Left
	})
}

// Colors returns the fill and stroke of every shape, fill first, skipping
// shapes that are unfilled or unstroked.
func Colors(shapes []document.Shape) []document.Color {
	colors := make([]document.Color, 0, 2*len(shapes))
	for _, s := range shapes {
		if s.Fill != nil {
			colors = append(colors, *s.Fill)
		}
		if s.Stroke != nil {
			colors = append(colors, *s.Stroke)
		}
	}
	return colors
}

// Entry is one formatted color together with the color it came from.
type Entry struct {
	Text  string
	Color document.Color
}

// FormatAll formats every color, stopping at the first failure.
// Empty strings (a gradient without stops) are dropped.
func FormatAll(colors []document.Color, opts formatter.Options) ([]Entry, error) {
	entries := make([]Entry, 0, len(colors))
	for i, c := range colors {
		s, err := formatter.Format(c, opts)
		if err != nil {
			return nil, fmt.Errorf("color %d: %w", i, err)
		}
		if s == "" {
			continue
		}
		entries = append(entries, Entry{Text: s, Color: c})
	}
	return entries, nil
}

// Dedup removes repeated strings, keeping the first occurrence of each.
func Dedup(values []string) []string {
	return DedupFunc(values, func(v string) string { return v })
}

// DedupFunc removes items whose key was already seen, keeping the first
// occurrence of each key and the original order.
func DedupFunc[T any](items []T, key func(T) string) []T {
	seen := make(map[string]bool, len(items))
	result := make([]T, 0, len(items))

	for _, item := range items {
		k := key(item)
		if !seen[k] {
			result = append(result, item)
			seen[k] = true
		}
	}

	return result
}
