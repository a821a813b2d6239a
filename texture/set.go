// SPDX-License-Identifier: GPL-2.0-or-later

package texture

import (
	"strings"

	"github.com/pkg/errors"
)

// NoTexture is the texture number of "-" side textures.
const NoTexture = 0

// Set is the lookup table of every decoded graphic of a level. Numbers are
// resolved once when the level is built; the renderer only indexes.
type Set struct {
	Textures []*Texture
	Flats    []*Flat
	Sprites  []*SpriteDef

	// TextureTranslation and FlatTranslation allow animated textures and
	// flats to swap the graphic behind a number.
	TextureTranslation []int
	FlatTranslation    []int

	SkyFlat    int
	SkyTexture int

	textureNums map[string]int
	flatNums    map[string]int
	spriteNums  map[string]int
}

func NewSet() *Set {
	return &Set{
		// number 0 means no texture
		Textures:           []*Texture{nil},
		TextureTranslation: []int{0},
		SkyFlat:            -1,
		textureNums:        make(map[string]int),
		flatNums:           make(map[string]int),
		spriteNums:         make(map[string]int),
	}
}

func (s *Set) AddTexture(t *Texture) int {
	n := len(s.Textures)
	s.Textures = append(s.Textures, t)
	s.TextureTranslation = append(s.TextureTranslation, n)
	s.textureNums[strings.ToUpper(t.Name)] = n
	return n
}

func (s *Set) AddFlat(f *Flat) int {
	n := len(s.Flats)
	s.Flats = append(s.Flats, f)
	s.FlatTranslation = append(s.FlatTranslation, n)
	s.flatNums[strings.ToUpper(f.Name)] = n
	return n
}

func (s *Set) AddSprite(d *SpriteDef) int {
	n := len(s.Sprites)
	s.Sprites = append(s.Sprites, d)
	s.spriteNums[strings.ToUpper(d.Name)] = n
	return n
}

// TextureNum looks up a texture by name, "-" is NoTexture.
func (s *Set) TextureNum(name string) (int, error) {
	if name == "-" || name == "" {
		return NoTexture, nil
	}
	n, ok := s.textureNums[strings.ToUpper(name)]
	if !ok {
		return 0, errors.Errorf("texture %v not found", name)
	}
	return n, nil
}

func (s *Set) FlatNum(name string) (int, error) {
	n, ok := s.flatNums[strings.ToUpper(name)]
	if !ok {
		return 0, errors.Errorf("flat %v not found", name)
	}
	return n, nil
}

func (s *Set) SpriteNum(name string) (int, error) {
	n, ok := s.spriteNums[strings.ToUpper(name)]
	if !ok {
		return 0, errors.Errorf("sprite %v not found", name)
	}
	return n, nil
}

// Texture returns the translated texture for number n.
func (s *Set) Texture(n int) *Texture {
	return s.Textures[s.TextureTranslation[n]]
}

// Flat returns the translated flat for number n.
func (s *Set) Flat(n int) *Flat {
	return s.Flats[s.FlatTranslation[n]]
}

// SetSky names the sky flat and texture.
func (s *Set) SetSky(flat, tex string) error {
	f, err := s.FlatNum(flat)
	if err != nil {
		return errors.Wrap(err, "sky flat")
	}
	t, err := s.TextureNum(tex)
	if err != nil {
		return errors.Wrap(err, "sky texture")
	}
	s.SkyFlat = f
	s.SkyTexture = t
	return nil
}
