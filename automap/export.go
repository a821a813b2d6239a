// SPDX-License-Identifier: GPL-2.0-or-later

package automap

import (
	"io"

	"github.com/chewxy/math32"
	"github.com/fogleman/gg"
	"github.com/pkg/errors"

	"godoom/bsp"
)

const exportMargin = 16

// ExportPNG plots every line of m and the partition lines of its BSP into
// a size x size PNG written to w. One sided lines are black, two sided
// lines gray and partitions dashed blue.
func ExportPNG(m *bsp.Map, w io.Writer, size int) error {
	if len(m.Vertices) == 0 {
		return errors.New("map has no vertices")
	}
	if size <= 2*exportMargin {
		return errors.Errorf("export size %d too small", size)
	}
	box := bsp.EmptyBox()
	for _, v := range m.Vertices {
		box.Add(v.X, v.Y)
	}
	left, bottom := box[bsp.BoxLeft].Float(), box[bsp.BoxBottom].Float()
	span := math32.Max(float32((box[bsp.BoxRight]-box[bsp.BoxLeft]).Float()),
		float32((box[bsp.BoxTop]-box[bsp.BoxBottom]).Float()))
	scale := float64(float32(size-2*exportMargin) / math32.Max(span, 1))
	toImage := func(x, y float64) (float64, float64) {
		return exportMargin + (x-left)*scale, float64(size) - exportMargin - (y-bottom)*scale
	}

	dc := gg.NewContext(size, size)
	dc.SetRGB(1, 1, 1)
	dc.Clear()

	dc.SetRGB(0.3, 0.4, 0.9)
	dc.SetLineWidth(1)
	dc.SetDash(4, 4)
	for _, n := range m.Nodes {
		x1, y1, x2, y2, ok := partitionInBox(n)
		if !ok {
			continue
		}
		ax, ay := toImage(x1, y1)
		bx, by := toImage(x2, y2)
		dc.DrawLine(ax, ay, bx, by)
		dc.Stroke()
	}
	dc.SetDash()

	for _, l := range m.Lines {
		if l.BackSector == nil {
			dc.SetRGB(0, 0, 0)
			dc.SetLineWidth(2)
		} else {
			dc.SetRGB(0.55, 0.55, 0.55)
			dc.SetLineWidth(1)
		}
		ax, ay := toImage(l.V1.X.Float(), l.V1.Y.Float())
		bx, by := toImage(l.V2.X.Float(), l.V2.Y.Float())
		dc.DrawLine(ax, ay, bx, by)
		dc.Stroke()
	}
	return errors.Wrap(dc.EncodePNG(w), "encode map png")
}

// partitionInBox clips the partition line of n to the union of its
// children's bounding boxes.
func partitionInBox(n *bsp.Node) (x1, y1, x2, y2 float64, ok bool) {
	b := n.BBox[0]
	b.Add(n.BBox[1][bsp.BoxLeft], n.BBox[1][bsp.BoxBottom])
	b.Add(n.BBox[1][bsp.BoxRight], n.BBox[1][bsp.BoxTop])
	px, py := n.X.Float(), n.Y.Float()
	dx, dy := n.Dx.Float(), n.Dy.Float()
	t0, t1 := math32.Inf(-1), math32.Inf(1)
	// Liang-Barsky against the four box edges
	for _, e := range []struct{ p, q float64 }{
		{-dx, px - b[bsp.BoxLeft].Float()},
		{dx, b[bsp.BoxRight].Float() - px},
		{-dy, py - b[bsp.BoxBottom].Float()},
		{dy, b[bsp.BoxTop].Float() - py},
	} {
		if e.p == 0 {
			if e.q < 0 {
				return 0, 0, 0, 0, false
			}
			continue
		}
		t := float32(e.q / e.p)
		if e.p < 0 {
			t0 = math32.Max(t0, t)
		} else {
			t1 = math32.Min(t1, t)
		}
	}
	if t0 > t1 {
		return 0, 0, 0, 0, false
	}
	return px + float64(t0)*dx, py + float64(t0)*dy, px + float64(t1)*dx, py + float64(t1)*dy, true
}
