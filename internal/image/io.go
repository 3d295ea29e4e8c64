// Package image loads source rasters, writes result rasters and produces
// the box-filtered colour image that accompanies a distance field.
package image

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"image/color"
	_ "image/jpeg" // register JPEG decoding
	"image/png"
	"io"
	"os"
	"path/filepath"

	"golang.org/x/image/draw"

	_ "golang.org/x/image/bmp"  // register BMP decoding
	_ "golang.org/x/image/tiff" // register TIFF decoding
	_ "golang.org/x/image/webp" // register WebP decoding
)

// I/O errors.
var (
	// ErrNoAlpha is returned when the decoded image has no alpha channel.
	ErrNoAlpha = errors.New("image: no alpha channel")

	// ErrEmptyData is returned when image data is empty.
	ErrEmptyData = errors.New("image: empty data")

	// ErrEmptyImage is returned for images with zero width or height.
	ErrEmptyImage = errors.New("image: zero width or height")
)

// Load decodes the image at path and returns it as non-premultiplied RGBA.
// The format is detected from content.
func Load(path string) (*image.NRGBA, error) {
	f, err := os.Open(filepath.Clean(path))
	if err != nil {
		return nil, fmt.Errorf("image: open file: %w", err)
	}
	defer func() { _ = f.Close() }()

	return Decode(f)
}

// LoadFromBytes decodes an in-memory image.
func LoadFromBytes(data []byte) (*image.NRGBA, error) {
	if len(data) == 0 {
		return nil, ErrEmptyData
	}
	return Decode(bytes.NewReader(data))
}

// Decode decodes an image from r. Images without an alpha channel are
// rejected with ErrNoAlpha: coverage is derived from alpha alone.
func Decode(r io.Reader) (*image.NRGBA, error) {
	img, format, err := image.Decode(r)
	if err != nil {
		return nil, fmt.Errorf("image: decode: %w", err)
	}
	if !decodedHasAlpha(format, img) {
		return nil, fmt.Errorf("%w (%s, %T)", ErrNoAlpha, format, img)
	}
	return ToNRGBA(img)
}

// decodedHasAlpha refines HasAlpha with what the decoder reveals about the
// file. The PNG and BMP decoders return *image.RGBA or *image.RGBA64 only
// for files stored without an alpha channel (PNG colour type 2 without
// tRNS, 24-bit BMP); files with alpha come back as NRGBA.
func decodedHasAlpha(format string, img image.Image) bool {
	switch format {
	case "png", "bmp":
		switch img.(type) {
		case *image.RGBA, *image.RGBA64:
			return false
		}
	}
	return HasAlpha(img)
}

// HasAlpha reports whether the colour model of img can carry alpha.
// Paletted images count only when some palette entry is not opaque.
// Decode additionally rejects RGB-only PNG and BMP files.
func HasAlpha(img image.Image) bool {
	switch m := img.(type) {
	case *image.Gray, *image.Gray16, *image.YCbCr, *image.CMYK:
		return false
	case *image.Paletted:
		for _, c := range m.Palette {
			if _, _, _, a := c.RGBA(); a != 0xffff {
				return true
			}
		}
		return false
	}

	switch img.ColorModel() {
	case color.GrayModel, color.Gray16Model, color.YCbCrModel, color.CMYKModel:
		return false
	}
	return true
}

// ToNRGBA returns img as an *image.NRGBA whose bounds start at the origin.
// An NRGBA already at the origin is returned as is.
func ToNRGBA(img image.Image) (*image.NRGBA, error) {
	b := img.Bounds()
	if b.Empty() {
		return nil, ErrEmptyImage
	}
	if n, ok := img.(*image.NRGBA); ok && b.Min == (image.Point{}) {
		return n, nil
	}

	dst := image.NewNRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(dst, dst.Bounds(), img, b.Min, draw.Src)
	return dst, nil
}

// SavePNG writes img to path as PNG.
func SavePNG(path string, img image.Image) error {
	f, err := os.Create(filepath.Clean(path))
	if err != nil {
		return fmt.Errorf("image: create file: %w", err)
	}

	if err := EncodePNG(f, img); err != nil {
		_ = f.Close()
		return err
	}

	return f.Close()
}

// EncodePNG writes img to w as PNG.
func EncodePNG(w io.Writer, img image.Image) error {
	if err := png.Encode(w, img); err != nil {
		return fmt.Errorf("image: encode PNG: %w", err)
	}
	return nil
}
