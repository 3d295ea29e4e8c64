package image

import (
	"bytes"
	"errors"
	"image"
	"image/color"
	"testing"

	"github.com/gogpu/makesdf/internal/parallel"
)

func fillNRGBA(w, h int, c color.NRGBA) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.SetNRGBA(x, y, c)
		}
	}
	return img
}

func TestReduceUniform(t *testing.T) {
	c := color.NRGBA{R: 200, G: 100, B: 50, A: 255}
	got, err := Reduce(fillNRGBA(16, 8, c), 4, 2, nil)
	if err != nil {
		t.Fatalf("Reduce: %v", err)
	}
	for y := 0; y < 2; y++ {
		for x := 0; x < 4; x++ {
			if p := got.NRGBAAt(x, y); p != c {
				t.Errorf("pixel (%d,%d) = %v, want %v", x, y, p, c)
			}
		}
	}
}

func TestReduceLinearAverage(t *testing.T) {
	// Black and white columns average to 186 in linear light, not 128.
	src := image.NewNRGBA(image.Rect(0, 0, 2, 1))
	src.SetNRGBA(0, 0, color.NRGBA{A: 255})
	src.SetNRGBA(1, 0, color.NRGBA{R: 255, G: 255, B: 255, A: 255})

	got, err := Reduce(src, 1, 1, nil)
	if err != nil {
		t.Fatalf("Reduce: %v", err)
	}
	if p := got.NRGBAAt(0, 0); p != (color.NRGBA{R: 186, G: 186, B: 186, A: 255}) {
		t.Errorf("pixel = %v, want {186 186 186 255}", p)
	}
}

func TestReduceTransparentDoesNotDarken(t *testing.T) {
	// A red texel next to a fully transparent black texel stays pure red,
	// only alpha is halved.
	src := image.NewNRGBA(image.Rect(0, 0, 2, 1))
	src.SetNRGBA(0, 0, color.NRGBA{R: 255, A: 255})
	src.SetNRGBA(1, 0, color.NRGBA{})

	got, err := Reduce(src, 1, 1, nil)
	if err != nil {
		t.Fatalf("Reduce: %v", err)
	}
	if p := got.NRGBAAt(0, 0); p != (color.NRGBA{R: 255, A: 128}) {
		t.Errorf("pixel = %v, want {255 0 0 128}", p)
	}
}

func TestReduceUpscale(t *testing.T) {
	c := color.NRGBA{R: 1, G: 2, B: 3, A: 255}
	got, err := Reduce(fillNRGBA(2, 2, c), 5, 5, nil)
	if err != nil {
		t.Fatalf("Reduce: %v", err)
	}
	if got.Rect.Dx() != 5 || got.Rect.Dy() != 5 {
		t.Fatalf("size = %v, want 5x5", got.Rect.Size())
	}
	if p := got.NRGBAAt(4, 4); p != c {
		t.Errorf("pixel (4,4) = %v, want %v", p, c)
	}
}

func TestReduceInvalid(t *testing.T) {
	if _, err := Reduce(nil, 1, 1, nil); !errors.Is(err, ErrEmptyImage) {
		t.Errorf("Reduce(nil) error = %v, want ErrEmptyImage", err)
	}
	if _, err := Reduce(fillNRGBA(2, 2, color.NRGBA{}), 0, 1, nil); !errors.Is(err, ErrEmptyImage) {
		t.Errorf("Reduce to 0x1 error = %v, want ErrEmptyImage", err)
	}
}

func TestReduceSubImage(t *testing.T) {
	full := fillNRGBA(8, 8, color.NRGBA{A: 255})
	inner := full.SubImage(image.Rect(4, 4, 8, 8)).(*image.NRGBA)
	for y := 4; y < 8; y++ {
		for x := 4; x < 8; x++ {
			full.SetNRGBA(x, y, color.NRGBA{G: 255, A: 255})
		}
	}

	got, err := Reduce(inner, 2, 2, nil)
	if err != nil {
		t.Fatalf("Reduce: %v", err)
	}
	if p := got.NRGBAAt(0, 0); p != (color.NRGBA{G: 255, A: 255}) {
		t.Errorf("pixel = %v, want green", p)
	}
}

func TestReduceParallelMatchesSerial(t *testing.T) {
	src := image.NewNRGBA(image.Rect(0, 0, 37, 23))
	for i := range src.Pix {
		src.Pix[i] = uint8(i * 7)
	}

	serial, err := Reduce(src, 9, 5, nil)
	if err != nil {
		t.Fatalf("Reduce serial: %v", err)
	}

	pool := parallel.NewWorkerPool(4)
	defer pool.Close()
	par, err := Reduce(src, 9, 5, pool)
	if err != nil {
		t.Fatalf("Reduce parallel: %v", err)
	}

	if !bytes.Equal(serial.Pix, par.Pix) {
		t.Error("parallel reduction differs from serial")
	}
}

func TestSpan(t *testing.T) {
	tests := []struct {
		i, src, dst int
		lo, hi      int
	}{
		{0, 8, 4, 0, 2},
		{3, 8, 4, 6, 8},
		{0, 10, 3, 0, 3},
		{2, 10, 3, 6, 10},
		{0, 2, 5, 0, 1},
		{4, 2, 5, 1, 2},
		{2, 2, 5, 0, 1},
	}
	for _, tt := range tests {
		lo, hi := span(tt.i, tt.src, tt.dst)
		if lo != tt.lo || hi != tt.hi {
			t.Errorf("span(%d, %d, %d) = [%d, %d), want [%d, %d)", tt.i, tt.src, tt.dst, lo, hi, tt.lo, tt.hi)
		}
	}
}
