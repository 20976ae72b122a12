// Package colorclip copies the fill and stroke colors of a vector-art
// selection to the clipboard as "TYPE=VALUES" lines, preferring spot color
// names over raw channel values.
//
// The CLI lives in cmd/colorclip; this root package exposes the same
// pipeline as a Go API.
//
// # Quick start
//
//	result, err := colorclip.Run(colorclip.Options{
//	    DocumentPath: "swatches.json",
//	    SpotValues:   true,
//	    SpotTint:     true,
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(result.Text)
//
// # Pipeline
//
// A run collects the leaf paths of the selection (groups are flattened,
// compound paths contribute their first sub-path, text and images are
// skipped), orders them left to right or top to bottom depending on how the
// selection is spread, takes the fill then the stroke of each path, formats
// every color and removes duplicate lines. The clipboard is written once, at
// the end, and only if every step succeeded.
//
// # Output format
//
//	RGB=255,0,0          process colors, channels rounded half up
//	CMYK=0,100,0,0
//	GRAY=40
//	LAB=53,-20,-3
//	PANTONE 123          spot color, name only
//	PANTONE 123=0,0,50,0 spot color with Options.SpotValues (and SpotTint)
//
// A gradient contributes one line per stop.
//
// # Sources
//
// The selection comes from an in-memory [document.Document], a JSON or YAML
// document file, or a Figma file: with [Options.FigmaURL] the nodes named by
// the URL's node-id (or [Options.NodeIDs]) form the selection.
//
// # Logging
//
// Pass a [Logger] implementation in [Options.Logger] to receive progress
// messages. A nil Logger silences all output.
package colorclip
