// SPDX-License-Identifier: GPL-2.0-or-later

package render

import (
	"math"
)

// clipRange is a run of screen columns already covered by solid walls.
type clipRange struct {
	First int
	Last  int
}

// clipList is the sorted list of covered column ranges. Ranges never
// overlap or touch; the list always starts and ends with a sentinel
// reaching past the window.
type clipList struct {
	ranges []clipRange
}

func newClipList(capacity int) clipList {
	return clipList{ranges: make([]clipRange, 0, capacity)}
}

func (c *clipList) clear(width int) {
	c.ranges = append(c.ranges[:0],
		clipRange{First: math.MinInt32, Last: -1},
		clipRange{First: width, Last: math.MaxInt32})
}

// solid marks [x1,x2] as covered. The parts that were not covered before
// are appended to frags, left to right.
func (c *clipList) solid(x1, x2 int, frags []clipRange) []clipRange {
	cr := c.ranges
	// the first range that touches or follows x1
	start := 0
	for cr[start].Last < x1-1 {
		start++
	}

	if x1 < cr[start].First {
		if x2 < cr[start].First-1 {
			// entirely visible, insert a new range before start
			frags = append(frags, clipRange{x1, x2})
			if len(cr) == cap(cr) {
				return frags
			}
			cr = append(cr, clipRange{})
			copy(cr[start+1:], cr[start:len(cr)-1])
			cr[start] = clipRange{First: x1, Last: x2}
			c.ranges = cr
			return frags
		}
		// visible in front of start, grow start downwards
		frags = append(frags, clipRange{x1, cr[start].First - 1})
		cr[start].First = x1
	}

	// the top is within start as well
	if x2 <= cr[start].Last {
		return frags
	}

	next := start
	for x2 >= cr[next+1].First-1 {
		// the gap between next and next+1
		frags = append(frags, clipRange{cr[next].Last + 1, cr[next+1].First - 1})
		next++
		if x2 <= cr[next].Last {
			// the top is within next, start swallows it
			cr[start].Last = cr[next].Last
			c.crunch(start, next)
			return frags
		}
	}

	// the top is in the gap after next
	frags = append(frags, clipRange{cr[next].Last + 1, x2})
	cr[start].Last = x2
	c.crunch(start, next)
	return frags
}

// crunch removes the ranges start+1 through next which start now covers.
func (c *clipList) crunch(start, next int) {
	if next == start {
		return
	}
	n := copy(c.ranges[start+1:], c.ranges[next+1:])
	c.ranges = c.ranges[:start+1+n]
}

// pass appends the uncovered parts of [x1,x2] to frags without covering
// anything.
func (c *clipList) pass(x1, x2 int, frags []clipRange) []clipRange {
	cr := c.ranges
	start := 0
	for cr[start].Last < x1-1 {
		start++
	}

	if x1 < cr[start].First {
		if x2 < cr[start].First-1 {
			return append(frags, clipRange{x1, x2})
		}
		frags = append(frags, clipRange{x1, cr[start].First - 1})
	}

	if x2 <= cr[start].Last {
		return frags
	}

	for x2 >= cr[start+1].First-1 {
		frags = append(frags, clipRange{cr[start].Last + 1, cr[start+1].First - 1})
		start++
		if x2 <= cr[start].Last {
			return frags
		}
	}

	return append(frags, clipRange{cr[start].Last + 1, x2})
}

// covers reports whether [x1,x2] is inside a single covered range.
func (c *clipList) covers(x1, x2 int) bool {
	start := 0
	for c.ranges[start].Last < x2 {
		start++
	}
	return x1 >= c.ranges[start].First && x2 <= c.ranges[start].Last
}

func (r *Renderer) clearClipRanges() {
	r.clips.clear(r.ctx.ViewWidth)
}

// clipSolidWall draws the uncovered parts of a one sided wall or a closed
// door and marks its columns covered.
func (r *Renderer) clipSolidWall(w *wallSetup, x1, x2 int) {
	r.frags = r.clips.solid(x1, x2, r.frags[:0])
	for _, f := range r.frags {
		if w.seg.BackSector != nil {
			r.drawPassWallRange(w, f.First, f.Last)
		} else {
			r.drawSolidWallRange(w, f.First, f.Last)
		}
	}
}

func (r *Renderer) clipPassWall(w *wallSetup, x1, x2 int) {
	r.frags = r.clips.pass(x1, x2, r.frags[:0])
	for _, f := range r.frags {
		r.drawPassWallRange(w, f.First, f.Last)
	}
}

// ClipRanges returns the covered column ranges of the last frame,
// including both sentinels.
func (r *Renderer) ClipRanges() [][2]int {
	out := make([][2]int, len(r.clips.ranges))
	for i, c := range r.clips.ranges {
		out[i] = [2]int{c.First, c.Last}
	}
	return out
}
