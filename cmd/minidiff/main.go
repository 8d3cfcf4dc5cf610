// Command minidiff compares two text files line by line and prints a
// unified diff. Exit status is 0 when the files match, 1 when they
// differ, and 2 on usage or I/O errors.
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/muesli/termenv"

	"github.com/och-kazuki/minidiff"
	"github.com/och-kazuki/minidiff/chroma"
	"github.com/och-kazuki/minidiff/godiff"
	"github.com/och-kazuki/minidiff/lcs"
	"github.com/och-kazuki/minidiff/lipgloss"
	"github.com/och-kazuki/minidiff/textfile"
	"github.com/och-kazuki/minidiff/unified"
)

// LoadPairFunc loads both sides of a comparison.
type LoadPairFunc func(ctx context.Context, oldPath, newPath string) (old, new []minidiff.Line, err error)

// App encapsulates the comparison pipeline for testing.
type App struct {
	Stdout   io.Writer
	Load     LoadPairFunc
	Engine   minidiff.Engine
	Renderer minidiff.Renderer
	Context  int
	Quiet    bool
}

// Run diffs the two files and reports whether they differ. Nothing is
// written when the files are equal under the configured normalization,
// or in quiet mode.
func (a *App) Run(ctx context.Context, oldPath, newPath string) (bool, error) {
	oldLines, newLines, err := a.Load(ctx, oldPath, newPath)
	if err != nil {
		return false, err
	}

	ops := a.Engine.Diff(oldLines, newLines)
	if !minidiff.HasChanges(ops) {
		return false, nil
	}
	if a.Quiet {
		return true, nil
	}

	hunks, err := minidiff.Hunks(ops, a.Context)
	if err != nil {
		return true, err
	}
	d := &minidiff.FileDiff{OldPath: oldPath, NewPath: newPath, Hunks: hunks}
	return true, a.Renderer.Render(a.Stdout, d)
}

func main() {
	code, err := run()
	if err != nil {
		fmt.Fprintln(os.Stderr, "minidiff:", err)
	}
	os.Exit(code)
}

func run() (int, error) {
	var (
		contextWidth = flag.Int("U", 3, "lines of unified context around changes")
		ignoreCase   = flag.Bool("i", false, "ignore case differences")
		ignoreSpace  = flag.Bool("b", false, "ignore trailing whitespace")
		stripCR      = flag.Bool("strip-cr", false, "treat CRLF and LF line endings as equal")
		engineName   = flag.String("engine", "lcs", "diff engine: lcs or godiff")
		colorMode    = flag.String("color", "auto", "colorize output: auto, always or never")
		quiet        = flag.Bool("q", false, "report only whether the files differ")
	)
	flag.Usage = usage
	flag.Parse()

	if flag.NArg() != 2 {
		usage()
		return 2, nil
	}
	if *contextWidth < 0 {
		return 2, fmt.Errorf("context width must be non-negative, got %d", *contextWidth)
	}

	engine, err := selectEngine(*engineName)
	if err != nil {
		return 2, err
	}
	renderer, err := selectRenderer(*colorMode)
	if err != nil {
		return 2, err
	}

	loader := textfile.NewLoader(textfile.Options{
		IgnoreEOL:           *stripCR,
		IgnoreTrailingSpace: *ignoreSpace,
		IgnoreCase:          *ignoreCase,
	})

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	app := &App{
		Stdout:   os.Stdout,
		Load:     loader.ReadPair,
		Engine:   engine,
		Renderer: renderer,
		Context:  *contextWidth,
		Quiet:    *quiet,
	}

	changed, err := app.Run(ctx, flag.Arg(0), flag.Arg(1))
	if err != nil {
		return 2, err
	}
	if changed {
		return 1, nil
	}
	return 0, nil
}

// selectEngine picks the diff engine. Both engines fulfill the same
// contract; lcs is the default, godiff trades the O(n*m) table for the
// library's Myers implementation.
func selectEngine(name string) (minidiff.Engine, error) {
	switch name {
	case "lcs":
		return lcs.NewEngine(), nil
	case "godiff":
		return godiff.NewEngine(), nil
	default:
		return nil, fmt.Errorf("unknown engine %q", name)
	}
}

func selectRenderer(mode string) (minidiff.Renderer, error) {
	switch mode {
	case "never":
		return unified.NewRenderer(), nil
	case "auto":
		if termenv.EnvColorProfile() == termenv.Ascii {
			return unified.NewRenderer(), nil
		}
		return colorRenderer()
	case "always":
		return colorRenderer()
	default:
		return nil, fmt.Errorf("unknown color mode %q", mode)
	}
}

func colorRenderer() (minidiff.Renderer, error) {
	theme := lipgloss.DefaultTheme()
	tokenizer, err := chroma.NewTokenizer(chroma.StyleFromPalette(theme.Palette()))
	if err != nil {
		return nil, err
	}
	return lipgloss.NewRenderer(theme, lipgloss.WithSyntax(tokenizer, chroma.NewDetector())), nil
}

func usage() {
	fmt.Fprintln(os.Stderr, "Usage: minidiff [flags] <old-file> <new-file>")
	flag.PrintDefaults()
}
