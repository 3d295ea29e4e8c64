// Package glyph rasterises text into a high-resolution RGBA source raster
// suitable for distance field baking.
//
// The text is drawn white on a transparent background with a transparent
// border, so its alpha is the coverage the field is computed from.
package glyph

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"unicode"

	gotext "github.com/go-text/typesetting/font"
	"github.com/go-text/typesetting/language"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"
	"golang.org/x/text/unicode/norm"
)

// Sentinel errors for glyph package.
var (
	// ErrEmptyText is returned when the text has no visible ink.
	ErrEmptyText = errors.New("glyph: empty text")

	// ErrMissingGlyph is returned when the font has no glyph for a rune.
	ErrMissingGlyph = errors.New("glyph: font has no glyph for rune")
)

// Options controls rasterisation.
type Options struct {
	// Size is the font size in pixels per em.
	// Default: 256
	Size float64

	// Padding is the transparent border around the ink, in pixels. It should
	// be at least the largest distance the field needs to represent.
	// Default: 32
	Padding int

	// Font is TrueType or OpenType data. Nil selects Go Regular.
	Font []byte
}

// DefaultOptions returns the default rasterisation options.
func DefaultOptions() Options {
	return Options{
		Size:    256,
		Padding: 32,
	}
}

// Rasterize draws text and returns an image tightly fitted to its ink plus
// the padding. Text is NFC-normalised first, so a base letter followed by a
// combining mark resolves to the precomposed glyph when the font has one.
func Rasterize(text string, opts Options) (*image.NRGBA, error) {
	if opts.Size <= 0 {
		return nil, fmt.Errorf("glyph: size must be positive, got %g", opts.Size)
	}
	if opts.Padding < 0 {
		return nil, fmt.Errorf("glyph: padding must not be negative, got %d", opts.Padding)
	}

	text = norm.NFC.String(text)
	if text == "" {
		return nil, ErrEmptyText
	}

	data := opts.Font
	if data == nil {
		data = goregular.TTF
	}

	if err := checkCoverage(data, text); err != nil {
		return nil, err
	}

	f, err := opentype.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("glyph: parse font: %w", err)
	}
	face, err := opentype.NewFace(f, &opentype.FaceOptions{
		Size:    opts.Size,
		DPI:     72,
		Hinting: font.HintingNone,
	})
	if err != nil {
		return nil, fmt.Errorf("glyph: create face: %w", err)
	}
	defer func() {
		_ = face.Close()
	}()

	bounds, _ := font.BoundString(face, text)
	minX, minY := bounds.Min.X.Floor(), bounds.Min.Y.Floor()
	maxX, maxY := bounds.Max.X.Ceil(), bounds.Max.Y.Ceil()
	if maxX <= minX || maxY <= minY {
		return nil, ErrEmptyText
	}

	pad := opts.Padding
	mask := image.NewAlpha(image.Rect(0, 0, maxX-minX+2*pad, maxY-minY+2*pad))

	drawer := &font.Drawer{
		Dst:  mask,
		Src:  image.Opaque,
		Face: face,
		Dot:  fixed.P(pad-minX, pad-minY),
	}
	drawer.DrawString(text)

	return whiteWithAlpha(mask), nil
}

// checkCoverage rejects runes the font's cmap does not map, which would
// otherwise render as the .notdef box.
func checkCoverage(data []byte, text string) error {
	face, err := gotext.ParseTTF(bytes.NewReader(data))
	if err != nil {
		return fmt.Errorf("glyph: parse font: %w", err)
	}
	for _, r := range text {
		if unicode.IsSpace(r) {
			continue
		}
		if _, ok := face.NominalGlyph(r); !ok {
			return fmt.Errorf("%w: %q (U+%04X)", ErrMissingGlyph, r, r)
		}
	}
	return nil
}

func whiteWithAlpha(mask *image.Alpha) *image.NRGBA {
	dst := image.NewNRGBA(mask.Rect)
	for i, a := range mask.Pix {
		p := dst.Pix[4*i : 4*i+4 : 4*i+4]
		p[0], p[1], p[2], p[3] = 0xff, 0xff, 0xff, a
	}
	return dst
}

// Scripts returns the distinct Unicode scripts used by text, in order of
// first appearance. Common and inherited characters are skipped.
func Scripts(text string) []language.Script {
	var out []language.Script
	seen := make(map[language.Script]bool)
	for _, r := range norm.NFC.String(text) {
		s := language.LookupScript(r)
		if s == language.Common || s == language.Inherited || s == language.Unknown || seen[s] {
			continue
		}
		seen[s] = true
		out = append(out, s)
	}
	return out
}
