// SPDX-License-Identifier: GPL-2.0-or-later

// Package cbuf queues command lines for the next tic.
package cbuf

import "strings"

// maxLines per Execute keeps a self expanding alias from hanging a tic.
const maxLines = 1024

// Buffer holds pending command text. Lines end at a newline or at a ';'
// outside of quotes. A "wait" line defers the rest to the next Execute.
type Buffer struct {
	text string
}

func (b *Buffer) AddText(text string) {
	b.text = b.text + text
}

// InsertText runs text before everything already queued.
func (b *Buffer) InsertText(text string) {
	b.text = text + "\n" + b.text
}

func (b *Buffer) Empty() bool {
	return len(b.text) == 0
}

// Execute runs the queued lines with run until the buffer is empty or a
// "wait" was found. run may queue more text.
func (b *Buffer) Execute(run func(line string)) {
	for n := 0; len(b.text) != 0 && n < maxLines; n++ {
		i := 0
		quote := false
	LineLoop:
		for i = 0; i < len(b.text); i++ {
			switch b.text[i] {
			case '"':
				quote = !quote
			case ';':
				if !quote {
					break LineLoop
				}
			case '\n':
				break LineLoop
			}
		}
		line := strings.TrimSpace(b.text[:i])
		// drop the separator as well
		if i < len(b.text) {
			i++
		}
		b.text = b.text[i:]
		switch line {
		case "":
		case "wait":
			return
		default:
			run(line)
		}
	}
}
