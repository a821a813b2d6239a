// SPDX-License-Identifier: GPL-2.0-or-later

// Package menu is the text menu drawn over the game: pages of items with a
// blinking cursor. Items run callbacks, the menu itself changes nothing.
package menu

import (
	"godoom/draw"
	"godoom/texture"
)

type Page int

const (
	None Page = iota
	Main
	Levels
	Options
	Video
	Automap
	Quit
)

const (
	// blinkTics is how long the cursor stays in one state.
	blinkTics = 8

	lineSpacing = 4
)

// Item is one line of a page.
type Item struct {
	Label string
	// Value returns the current setting shown right of the label.
	Value func() string
	// Select runs on enter.
	Select func()
	// Adjust runs on left (-1) and right (+1).
	Adjust func(dir int)
	// Page is opened on enter if it is not None.
	Page Page
}

type page struct {
	title string
	items []Item
}

type Menu struct {
	pages   map[Page]*page
	current Page
	// stack holds the pages to return to with their cursors
	stack  []Page
	cursor []int
	tics   int
}

func New() *Menu {
	return &Menu{pages: make(map[Page]*page)}
}

func (m *Menu) AddPage(p Page, title string, items []Item) {
	m.pages[p] = &page{title: title, items: items}
}

// Open shows page p, forgetting the pages opened before.
func (m *Menu) Open(p Page) {
	if _, ok := m.pages[p]; !ok {
		return
	}
	m.current = p
	m.stack = m.stack[:0]
	m.cursor = append(m.cursor[:0], 0)
}

func (m *Menu) Close() {
	m.current = None
	m.stack = m.stack[:0]
	m.cursor = m.cursor[:0]
}

func (m *Menu) Active() bool {
	return m.current != None
}

func (m *Menu) Current() Page {
	return m.current
}

// Cursor returns the selected item of the current page.
func (m *Menu) Cursor() int {
	if len(m.cursor) == 0 {
		return 0
	}
	return m.cursor[len(m.cursor)-1]
}

func (m *Menu) items() []Item {
	if p, ok := m.pages[m.current]; ok {
		return p.items
	}
	return nil
}

func (m *Menu) move(d int) {
	n := len(m.items())
	if n == 0 {
		return
	}
	c := &m.cursor[len(m.cursor)-1]
	*c = (*c + d + n) % n
	m.tics = 0
}

func (m *Menu) Up()   { m.move(-1) }
func (m *Menu) Down() { m.move(1) }

func (m *Menu) adjust(dir int) {
	it := m.items()
	if len(it) == 0 {
		return
	}
	if a := it[m.Cursor()].Adjust; a != nil {
		a(dir)
	}
}

func (m *Menu) Left()  { m.adjust(-1) }
func (m *Menu) Right() { m.adjust(1) }

// Select runs the selected item; an item with a page opens it.
func (m *Menu) Select() {
	it := m.items()
	if len(it) == 0 {
		return
	}
	item := it[m.Cursor()]
	if item.Page != None {
		if _, ok := m.pages[item.Page]; ok {
			m.stack = append(m.stack, m.current)
			m.cursor = append(m.cursor, 0)
			m.current = item.Page
		}
	}
	if item.Select != nil {
		item.Select()
	}
	if item.Adjust != nil && item.Select == nil && item.Page == None {
		item.Adjust(1)
	}
}

// Back returns to the previous page, closing the menu on the first one.
func (m *Menu) Back() {
	if len(m.stack) == 0 {
		m.Close()
		return
	}
	m.current = m.stack[len(m.stack)-1]
	m.stack = m.stack[:len(m.stack)-1]
	m.cursor = m.cursor[:len(m.cursor)-1]
}

func (m *Menu) Tic() {
	m.tics++
}

// Draw draws the current page centered on dst.
func (m *Menu) Draw(dst *draw.Surface, f *texture.Font, scale int) {
	p, ok := m.pages[m.current]
	if !ok {
		return
	}
	lh := (glyphHeight(f) + lineSpacing) * scale
	labelW, valueW := 0, 0
	for _, it := range p.items {
		labelW = max(labelW, draw.MeasureText(f, it.Label, scale))
		if it.Value != nil {
			valueW = max(valueW, draw.MeasureText(f, it.Value(), scale))
		}
	}
	gap := 0
	if valueW > 0 {
		gap = 2 * f.SpaceWidth * scale
	}
	w := labelW + gap + valueW
	h := lh * (len(p.items) + 2)
	x := (dst.Width - w) / 2
	y := (dst.Height - h) / 2

	dst.DrawText(f, p.title, (dst.Width-draw.MeasureText(f, p.title, scale))/2, y, scale)
	y += 2 * lh
	for i, it := range p.items {
		dst.DrawText(f, it.Label, x, y, scale)
		if it.Value != nil {
			dst.DrawText(f, it.Value(), x+labelW+gap, y, scale)
		}
		if i == m.Cursor() && (m.tics/blinkTics)%2 == 0 {
			dst.DrawChar(f, '>', x-2*f.SpaceWidth*scale, y, scale)
		}
		y += lh
	}
}

func glyphHeight(f *texture.Font) int {
	if g := f.Glyph('A'); g != nil {
		return g.Height
	}
	return 7
}
