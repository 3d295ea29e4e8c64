// Command makesdf converts a high-resolution RGBA image, or a line of text,
// into a low-resolution signed distance field and a matching colour image.
//
// Usage:
//
//	makesdf [flags] [input.png]
//	makesdf -glyph "A" -h 32 -s a_sdf.png -o a.png
//	convert in.svg png:- | makesdf -h 32 -
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"image"
	"io"
	"log/slog"
	"os"

	"golang.org/x/term"

	"github.com/gogpu/makesdf"
	"github.com/gogpu/makesdf/glyph"
	imageio "github.com/gogpu/makesdf/internal/image"
)

func main() {
	if err := run(context.Background(), os.Args[1:], os.Stdin, os.Stderr); err != nil {
		if !errors.Is(err, flag.ErrHelp) {
			fmt.Fprintln(os.Stderr, "makesdf:", err)
		}
		os.Exit(1)
	}
}

type cliConfig struct {
	input     string
	colorOut  string
	sdfOut    string
	height    int
	threshold int
	workers   int
	text      string
	fontPath  string
	glyphSize float64
	glyphPad  int
	verbose   bool
}

func parseFlags(args []string, stderr io.Writer) (cliConfig, error) {
	var c cliConfig

	fs := flag.NewFlagSet("makesdf", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.StringVar(&c.colorOut, "o", "dest.png", "colour output file")
	fs.StringVar(&c.sdfOut, "s", "sdf.png", "distance field output file")
	fs.IntVar(&c.height, "h", makesdf.DefaultHeight, "output height")
	fs.IntVar(&c.threshold, "t", 1, "alpha threshold for coverage (1-255)")
	fs.IntVar(&c.workers, "workers", 0, "worker goroutines per job (0 = GOMAXPROCS)")
	fs.StringVar(&c.text, "glyph", "", "rasterise this text instead of reading an input image")
	fs.StringVar(&c.fontPath, "font", "", "TrueType/OpenType font for -glyph (default Go Regular)")
	fs.Float64Var(&c.glyphSize, "glyph-size", 256, "font size for -glyph, in pixels per em")
	fs.IntVar(&c.glyphPad, "glyph-pad", 32, "transparent border around -glyph text, in pixels")
	fs.BoolVar(&c.verbose, "v", false, "debug logging")
	fs.Usage = func() {
		fmt.Fprintln(fs.Output(), "usage: makesdf [flags] [input.png | -]")
		fs.PrintDefaults()
	}

	if err := fs.Parse(args); err != nil {
		return c, err
	}

	c.input = "src.png"
	switch fs.NArg() {
	case 0:
	case 1:
		c.input = fs.Arg(0)
	default:
		return c, fmt.Errorf("expected at most one input file, got %d", fs.NArg())
	}

	if c.threshold < 1 || c.threshold > 255 {
		return c, fmt.Errorf("threshold %d out of range [1, 255]", c.threshold)
	}
	return c, nil
}

// newLogger writes human-readable text to a terminal and JSON otherwise.
func newLogger(w io.Writer, verbose bool) *slog.Logger {
	opts := &slog.HandlerOptions{Level: slog.LevelInfo}
	if verbose {
		opts.Level = slog.LevelDebug
	}
	if f, ok := w.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		return slog.New(slog.NewTextHandler(w, opts))
	}
	return slog.New(slog.NewJSONHandler(w, opts))
}

// stdinInput names standard input as the source image.
const stdinInput = "-"

func run(ctx context.Context, args []string, stdin io.Reader, stderr io.Writer) error {
	c, err := parseFlags(args, stderr)
	if err != nil {
		return err
	}

	logger := newLogger(stderr, c.verbose)
	makesdf.SetLogger(logger)

	src, err := loadSource(c, stdin, logger)
	if err != nil {
		return err
	}

	res, err := makesdf.Bake(ctx, src,
		makesdf.WithHeight(c.height),
		makesdf.WithThreshold(uint8(c.threshold)),
		makesdf.WithWorkers(c.workers),
	)
	if err != nil {
		return err
	}

	return res.Save(c.sdfOut, c.colorOut)
}

func loadSource(c cliConfig, stdin io.Reader, logger *slog.Logger) (*image.NRGBA, error) {
	if c.text == "" {
		src, err := loadImage(c.input, stdin)
		if err != nil {
			return nil, fmt.Errorf("load %s: %w", c.input, err)
		}
		logger.Debug("source loaded", "path", c.input, "size", src.Rect.Size())
		return src, nil
	}

	opts := glyph.Options{
		Size:    c.glyphSize,
		Padding: c.glyphPad,
	}
	if c.fontPath != "" {
		data, err := os.ReadFile(c.fontPath)
		if err != nil {
			return nil, fmt.Errorf("read font: %w", err)
		}
		opts.Font = data
	}

	src, err := glyph.Rasterize(c.text, opts)
	if err != nil {
		return nil, err
	}

	var scripts []string
	for _, s := range glyph.Scripts(c.text) {
		scripts = append(scripts, s.String())
	}
	logger.Debug("glyph rasterised",
		"text", c.text,
		"scripts", scripts,
		"size", src.Rect.Size())
	return src, nil
}

func loadImage(path string, stdin io.Reader) (*image.NRGBA, error) {
	if path != stdinInput {
		return imageio.Load(path)
	}
	data, err := io.ReadAll(stdin)
	if err != nil {
		return nil, fmt.Errorf("read stdin: %w", err)
	}
	return imageio.LoadFromBytes(data)
}
