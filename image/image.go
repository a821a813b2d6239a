// SPDX-License-Identifier: GPL-2.0-or-later

// Package image writes screenshots of indexed surfaces and reads images
// back into the palette.
package image

import (
	"image"
	"image/color"
	"image/png"
	"io"
	"os"
	"path/filepath"

	"github.com/google/uuid"
	"github.com/pkg/errors"

	"godoom/draw"
	"godoom/palette"
)

func colorPalette(p *palette.Palette) color.Palette {
	cp := make(color.Palette, len(p))
	for i, c := range p {
		cp[i] = color.RGBA{c.R, c.G, c.B, 255}
	}
	return cp
}

// Encode writes s as a paletted PNG.
func Encode(w io.Writer, s *draw.Surface, p *palette.Palette) error {
	img := image.NewPaletted(image.Rect(0, 0, s.Width, s.Height), colorPalette(p))
	s.RowMajor(img.Pix)
	return errors.Wrap(png.Encode(w, img), "encode png")
}

// Screenshot writes s into dir under a new unique name and returns the
// file name.
func Screenshot(dir string, s *draw.Surface, p *palette.Palette) (string, error) {
	id, err := uuid.NewV7()
	if err != nil {
		return "", errors.Wrap(err, "screenshot name")
	}
	name := filepath.Join(dir, "godoom-"+id.String()+".png")
	if err := Write(name, s, p); err != nil {
		return "", err
	}
	return name, nil
}

// Write writes s into the PNG file name.
func Write(name string, s *draw.Surface, p *palette.Palette) error {
	f, err := os.Create(name)
	if err != nil {
		return errors.Wrap(err, "screenshot")
	}
	if err := Encode(f, s, p); err != nil {
		f.Close()
		return err
	}
	return errors.Wrap(f.Close(), "screenshot")
}

// Read decodes an image and maps every pixel to the nearest palette
// color.
func Read(r io.Reader, p *palette.Palette) (*draw.Surface, error) {
	img, _, err := image.Decode(r)
	if err != nil {
		return nil, errors.Wrap(err, "decode image")
	}
	b := img.Bounds()
	s := draw.NewSurface(b.Dx(), b.Dy())
	if pi, ok := img.(*image.Paletted); ok && len(pi.Palette) == len(p) {
		// our own screenshots keep their indices
		for y := 0; y < s.Height; y++ {
			for x := 0; x < s.Width; x++ {
				s.Set(x, y, pi.ColorIndexAt(b.Min.X+x, b.Min.Y+y))
			}
		}
		return s, nil
	}
	for y := 0; y < s.Height; y++ {
		for x := 0; x < s.Width; x++ {
			cr, cg, cb, _ := img.At(b.Min.X+x, b.Min.Y+y).RGBA()
			s.Set(x, y, p.Nearest(float32(cr>>8), float32(cg>>8), float32(cb>>8)))
		}
	}
	return s, nil
}
