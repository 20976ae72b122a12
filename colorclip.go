package colorclip

import (
	"errors"
	"fmt"
	"strings"

	"github.com/kataras/colorclip/pkg/clipboard"
	"github.com/kataras/colorclip/pkg/document"
	"github.com/kataras/colorclip/pkg/extractor"
	"github.com/kataras/colorclip/pkg/figma"
	"github.com/kataras/colorclip/pkg/formatter"
)

// Version is the colorclip release.
const Version = "0.1.0"

// Options configures a run. Exactly one source must be set: Document,
// DocumentPath or FigmaURL.
type Options struct {
	Document     *document.Document // in-memory selection
	DocumentPath string             // .json, .yaml or .yml document file
	FigmaURL     string             // Figma file URL, node ids in the URL select nodes
	AccessToken  string             // Figma personal access token
	NodeIDs      []string           // overrides node ids found in FigmaURL

	SpotValues bool // emit "NAME=c1,c2,..." for spot colors instead of the bare name
	SpotTint   bool // dilute spot values by their tint
	SkipEmpty  bool // leave the clipboard untouched when no color was found
	DryRun     bool // never write the clipboard

	Clipboard clipboard.Sink // nil = system clipboard
	Logger    Logger         // nil = no logging
}

// Logger receives progress messages. A nil Logger means silent operation.
type Logger interface {
	Infof(format string, args ...any)
	Warnf(format string, args ...any)
	Errorf(format string, args ...any)
}

// Result contains the outcome of a run.
type Result struct {
	DocumentName string
	Shapes       int               // leaf shapes collected from the selection
	Entries      []extractor.Entry // unique formatted colors in output order
	Text         string            // newline-joined clipboard text
	Copied       bool              // whether Text was written to the clipboard
}

// PipelineError reports the stage at which a run failed. No clipboard write
// happens once a PipelineError is returned.
type PipelineError struct {
	Stage string
	Err   error
}

func (e *PipelineError) Error() string {
	return fmt.Sprintf("%s: %v", e.Stage, e.Err)
}

func (e *PipelineError) Unwrap() error {
	return e.Err
}

func (o *Options) logInfo(f string, a ...any) {
	if o.Logger != nil {
		o.Logger.Infof(f, a...)
	}
}

func (o *Options) logWarn(f string, a ...any) {
	if o.Logger != nil {
		o.Logger.Warnf(f, a...)
	}
}

func (o *Options) logError(f string, a ...any) {
	if o.Logger != nil {
		o.Logger.Errorf(f, a...)
	}
}

// Run loads the selection, formats its colors and copies the result to the
// clipboard. Any failure aborts the whole run before the clipboard is touched.
func Run(opts Options) (*Result, error) {
	doc, err := loadDocument(&opts)
	if err != nil {
		opts.logError("Loading selection failed: %v", err)
		return nil, &PipelineError{Stage: "load", Err: err}
	}

	result, err := Extract(doc, opts)
	if err != nil {
		opts.logError("Extracting colors failed: %v", err)
		return nil, err
	}

	if result.Text == "" {
		opts.logWarn("No filled or stroked paths in the selection")
		if opts.SkipEmpty {
			opts.logInfo("Leaving clipboard untouched")
			return result, nil
		}
	}

	if opts.DryRun {
		return result, nil
	}

	sink := opts.Clipboard
	if sink == nil {
		sink = clipboard.NewSystem()
	}

	opts.logInfo("Copying %d color(s) to the %s clipboard...", len(result.Entries), sink.Name())
	if err := sink.Write(result.Text); err != nil {
		opts.logError("Clipboard write failed: %v", err)
		return nil, &PipelineError{Stage: "clipboard", Err: err}
	}
	result.Copied = true

	return result, nil
}

// Extract runs the pure part of the pipeline: collect leaf shapes, sort them
// by position, take fill then stroke of each, format, deduplicate and join.
// Only opts.SpotValues, opts.SpotTint and opts.Logger are consulted.
func Extract(doc *document.Document, opts Options) (*Result, error) {
	if doc == nil {
		return nil, &PipelineError{Stage: "collect", Err: errors.New("no document")}
	}

	shapes := extractor.Collect(doc.Selection)
	opts.logInfo("Collected %d path(s) from %d selected item(s)", len(shapes), len(doc.Selection))

	extractor.SortByPosition(shapes)

	colors := extractor.Colors(shapes)
	entries, err := extractor.FormatAll(colors, formatter.Options{
		SpotValues: opts.SpotValues,
		SpotTint:   opts.SpotTint,
		Space:      doc.ColorSpace,
	})
	if err != nil {
		return nil, &PipelineError{Stage: "format", Err: err}
	}

	entries = extractor.DedupFunc(entries, func(e extractor.Entry) string { return e.Text })
	opts.logInfo("Formatted %d color(s), %d unique", len(colors), len(entries))

	lines := make([]string, len(entries))
	for i, e := range entries {
		lines[i] = e.Text
	}

	return &Result{
		DocumentName: doc.Name,
		Shapes:       len(shapes),
		Entries:      entries,
		Text:         strings.TrimSpace(strings.Join(lines, "\n")),
	}, nil
}

func loadDocument(opts *Options) (*document.Document, error) {
	sources := 0
	for _, set := range []bool{opts.Document != nil, opts.DocumentPath != "", opts.FigmaURL != ""} {
		if set {
			sources++
		}
	}
	switch {
	case sources == 0:
		return nil, errors.New("no selection source: set a document, a document path or a Figma URL")
	case sources > 1:
		return nil, errors.New("more than one selection source given")
	}

	switch {
	case opts.Document != nil:
		return opts.Document, nil
	case opts.DocumentPath != "":
		opts.logInfo("Reading %s...", opts.DocumentPath)
		return document.Load(opts.DocumentPath)
	default:
		return loadFigma(opts)
	}
}

// loadFigma fetches the nodes selected by the URL (or opts.NodeIDs), or
// every page of the file when none is given.
func loadFigma(opts *Options) (*document.Document, error) {
	if opts.AccessToken == "" {
		return nil, errors.New("a Figma access token is required")
	}

	fileKey, err := figma.ExtractFileKey(opts.FigmaURL)
	if err != nil {
		return nil, fmt.Errorf("extract file key: %w", err)
	}
	opts.logInfo("File key: %s", fileKey)

	nodeIDs := opts.NodeIDs
	if len(nodeIDs) == 0 {
		nodeIDs, err = figma.ExtractNodeIDs(opts.FigmaURL)
		if err != nil {
			return nil, fmt.Errorf("extract node IDs from URL: %w", err)
		}
	}

	client := figma.NewClient(opts.AccessToken)

	if len(nodeIDs) == 0 {
		opts.logInfo("No node IDs given, selecting every page of the file...")
		fileResp, err := client.GetFile(fileKey)
		if err != nil {
			return nil, fmt.Errorf("fetch file: %w", err)
		}
		return figma.ToDocument(fileResp.Name, fileResp.Document.Children), nil
	}

	opts.logInfo("Fetching %d node(s) from Figma...", len(nodeIDs))
	nodesResp, err := client.GetFileNodes(fileKey, nodeIDs)
	if err != nil {
		return nil, fmt.Errorf("fetch nodes: %w", err)
	}

	roots := make([]figma.Node, 0, len(nodeIDs))
	for _, id := range nodeIDs {
		nd, ok := nodesResp.Nodes[id]
		if !ok {
			opts.logWarn("Node %s not found in file", id)
			continue
		}
		roots = append(roots, nd.Document)
	}
	return figma.ToDocument(nodesResp.Name, roots), nil
}

// ParseNodeIDs parses a comma-separated string of node IDs and returns a slice.
func ParseNodeIDs(nodeIDsStr string) []string {
	parts := strings.Split(nodeIDsStr, ",")
	result := make([]string, 0, len(parts))

	for _, part := range parts {
		trimmed := strings.TrimSpace(part)
		if trimmed != "" {
			result = append(result, trimmed)
		}
	}

	return result
}
