// SPDX-License-Identifier: GPL-2.0-or-later

// Package texture holds already decoded graphics: patches made of posts,
// wall textures, 64x64 flats, sprite frames and bitmap fonts.
package texture

// Post is an opaque vertical run of a patch column.
type Post struct {
	TopDelta int
	Pixels   []byte
}

// Column is a sequence of posts, the gaps between them are transparent.
type Column []Post

type Patch struct {
	Name       string
	Width      int
	Height     int
	LeftOffset int
	TopOffset  int
	Columns    []Column
}

// NewPatch splits a column major w*h pixel block into posts. Pixels equal
// to transparent are skipped, pass a negative value for a fully opaque
// patch.
func NewPatch(name string, w, h, left, top int, pixels []byte, transparent int) *Patch {
	p := &Patch{
		Name:       name,
		Width:      w,
		Height:     h,
		LeftOffset: left,
		TopOffset:  top,
		Columns:    make([]Column, w),
	}
	for x := 0; x < w; x++ {
		col := pixels[x*h : (x+1)*h]
		var c Column
		start := -1
		for y := 0; y <= h; y++ {
			opaque := y < h && int(col[y]) != transparent
			switch {
			case opaque && start < 0:
				start = y
			case !opaque && start >= 0:
				c = append(c, Post{TopDelta: start, Pixels: col[start:y]})
				start = -1
			}
		}
		p.Columns[x] = c
	}
	return p
}

// Texture is a wall texture. Composite holds one column per texel column;
// for solid textures every column is a single post spanning the height.
type Texture struct {
	Name      string
	Width     int
	Height    int
	Masked    bool
	Composite *Patch
	// Data holds the full height pixel columns, column major.
	Data []byte
}

func NewTexture(name string, w, h int, pixels []byte) *Texture {
	return &Texture{
		Name:      name,
		Width:     w,
		Height:    h,
		Composite: NewPatch(name, w, h, 0, 0, pixels, -1),
		Data:      pixels,
	}
}

// NewMaskedTexture creates a partially transparent texture, used on the
// middle of two sided lines.
func NewMaskedTexture(name string, w, h int, pixels []byte, transparent byte) *Texture {
	return &Texture{
		Name:      name,
		Width:     w,
		Height:    h,
		Masked:    true,
		Composite: NewPatch(name, w, h, 0, 0, pixels, int(transparent)),
		Data:      pixels,
	}
}

// Column returns the composite column for the texture column c, which
// wraps around the width.
func (t *Texture) Column(c int) Column {
	return t.Composite.Columns[t.Wrap(c)]
}

// Pixels returns the full height pixels of column c, wrapping around the
// width.
func (t *Texture) Pixels(c int) []byte {
	c = t.Wrap(c)
	return t.Data[c*t.Height : (c+1)*t.Height]
}

// Wrap maps any column number into [0, Width).
func (t *Texture) Wrap(c int) int {
	if t.Width&(t.Width-1) == 0 {
		return c & (t.Width - 1)
	}
	c %= t.Width
	if c < 0 {
		c += t.Width
	}
	return c
}

const (
	FlatSize = 64
	FlatMask = FlatSize - 1
)

type Flat struct {
	Name string
	Data [FlatSize * FlatSize]byte
}
