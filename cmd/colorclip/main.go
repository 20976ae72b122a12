package main

import (
	"fmt"
	"os"

	"github.com/kataras/colorclip"
	"github.com/kataras/colorclip/pkg/clipboard"
	"github.com/kataras/colorclip/pkg/config"
	"github.com/kataras/colorclip/pkg/preview"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

var (
	documentPath  string
	figmaURL      string
	accessToken   string
	nodeIDs       string
	configPath    string
	spotValues    bool
	spotTint      bool
	skipEmpty     bool
	clipboardName string
	showPreview   bool
	verbose       bool
)

func main() {
	rootCmd := newRootCmd()
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "colorclip",
		Short: "Copy the colors of a vector selection to the clipboard",
		Long: "Copy the fill and stroke colors of a vector-art selection to the clipboard as TYPE=VALUES lines,\n" +
			"preferring spot color names over raw values. The selection is read from a JSON/YAML document or a Figma file.",
		Run: runCopy,
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVarP(&documentPath, "file", "f", "", "Document file (.json, .yaml, .yml) holding the selection")
	flags.StringVarP(&figmaURL, "url", "u", "", "Figma file URL, node-id parameters select the nodes")
	flags.StringVarP(&accessToken, "token", "t", os.Getenv("FIGMA_TOKEN"), "Figma Personal Access Token (default $FIGMA_TOKEN)")
	flags.StringVarP(&nodeIDs, "node-ids", "n", "", "Comma-separated Figma node IDs (overrides the URL)")
	flags.StringVarP(&configPath, "config", "c", "", "Config file (default <user config dir>/colorclip.toml)")
	flags.BoolVar(&spotValues, "spot-values", false, "Emit spot color values as NAME=c1,c2,... instead of the name only")
	flags.BoolVar(&spotTint, "spot-tint", true, "Dilute spot color values by their tint")
	flags.BoolVar(&skipEmpty, "skip-empty", false, "Leave the clipboard untouched when no color is found")
	flags.StringVar(&clipboardName, "clipboard", clipboard.BackendSystem, "Clipboard backend: system, osc52 or none")
	flags.BoolVarP(&verbose, "verbose", "v", false, "Log every pipeline step")
	rootCmd.Flags().BoolVar(&showPreview, "preview", false, "Show a color swatch next to each copied line")

	printCmd := &cobra.Command{
		Use:   "print",
		Short: "Write the color lines to stdout instead of the clipboard",
		Run:   runPrint,
	}

	versionCmd := &cobra.Command{
		Use:   "version",
		Short: "Print the version number",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("colorclip version %s\n", colorclip.Version)
		},
	}

	rootCmd.AddCommand(printCmd, versionCmd)
	return rootCmd
}

// buildOptions merges the config file with the flags set on the command line.
func buildOptions(cmd *cobra.Command) (colorclip.Options, config.Config, error) {
	path, required := configPath, configPath != ""
	if path == "" {
		p, err := config.DefaultPath()
		if err == nil {
			path = p
		}
	}

	cfg := config.Default()
	if path != "" {
		loaded, err := config.Load(path, required)
		if err != nil {
			return colorclip.Options{}, cfg, err
		}
		cfg = loaded
	}

	flags := cmd.Flags()
	if flags.Changed("spot-values") {
		cfg.SpotValues = spotValues
	}
	if flags.Changed("spot-tint") {
		cfg.SpotTint = spotTint
	}
	if flags.Changed("skip-empty") {
		cfg.SkipEmpty = skipEmpty
	}
	if flags.Changed("clipboard") {
		cfg.Clipboard = clipboardName
	}
	if err := cfg.Validate(); err != nil {
		return colorclip.Options{}, cfg, err
	}

	opts := colorclip.Options{
		DocumentPath: documentPath,
		FigmaURL:     figmaURL,
		AccessToken:  accessToken,
		SpotValues:   cfg.SpotValues,
		SpotTint:     cfg.SpotTint,
		SkipEmpty:    cfg.SkipEmpty,
		Logger:       newCLILogger(os.Stderr, verbose),
	}
	if nodeIDs != "" {
		opts.NodeIDs = colorclip.ParseNodeIDs(nodeIDs)
	}

	return opts, cfg, nil
}

func runCopy(cmd *cobra.Command, args []string) {
	green := color.New(color.FgGreen)
	red := color.New(color.FgRed)
	cyan := color.New(color.FgCyan)

	cyan.Println("\n🎨 colorclip")
	cyan.Println("============")

	opts, cfg, err := buildOptions(cmd)
	if err != nil {
		red.Printf("Error: %v\n", err)
		os.Exit(1)
	}

	sink, err := clipboard.New(cfg.Clipboard, os.Stdout)
	if err != nil {
		red.Printf("Error: %v\n", err)
		os.Exit(1)
	}
	opts.Clipboard = sink

	result, err := colorclip.Run(opts)
	if err != nil {
		red.Printf("Error: %v\n", err)
		os.Exit(1)
	}

	if showPreview && term.IsTerminal(int(os.Stdout.Fd())) {
		fmt.Println()
		if err := preview.Render(os.Stdout, result.Entries); err != nil {
			red.Printf("Error: %v\n", err)
			os.Exit(1)
		}
	}

	msg, ok := copySummary(result, sink.Name())
	if ok {
		green.Printf("\n✨ %s\n\n", msg)
	} else {
		color.New(color.FgYellow).Printf("\n⚠ %s\n", msg)
	}
}

// copySummary describes where the colors went. ok is false when nothing
// reached a clipboard.
func copySummary(result *colorclip.Result, backend string) (msg string, ok bool) {
	switch {
	case backend == clipboard.BackendNone:
		return fmt.Sprintf("Found %d color(s) in %d path(s), clipboard backend is %q so nothing was copied", len(result.Entries), result.Shapes, backend), false
	case !result.Copied:
		return "No colors found, clipboard left untouched", false
	case len(result.Entries) == 0:
		return "No colors found, clipboard cleared", false
	default:
		return fmt.Sprintf("Copied %d color(s) from %d path(s) to the %s clipboard", len(result.Entries), result.Shapes, backend), true
	}
}

func runPrint(cmd *cobra.Command, args []string) {
	opts, _, err := buildOptions(cmd)
	if err != nil {
		color.New(color.FgRed).Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	opts.DryRun = true

	result, err := colorclip.Run(opts)
	if err != nil {
		color.New(color.FgRed).Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if result.Text != "" {
		fmt.Println(result.Text)
	}
}
