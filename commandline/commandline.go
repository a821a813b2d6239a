// SPDX-License-Identifier: GPL-2.0-or-later

// Package commandline holds the viewer flags. They register with the
// standard flag set, flag.Parse has to run before reading them.
package commandline

import (
	"flag"
	"fmt"
	"strconv"
	"strings"

	"github.com/pkg/errors"

	"godoom/cvar"
)

const (
	ModeWindow = "window"
	ModeTUI    = "tui"
	ModePNG    = "png"
)

var (
	fullscreen bool
	timeDemo   bool

	metrics = boolInt{false, 9090}

	frames int
	height int
	scale  int
	width  int

	level  string
	mode   string
	output string

	sets  setList
	execs execList
)

type boolInt struct {
	set bool
	num int
}

func (b *boolInt) IsBoolFlag() bool {
	// We can not support both "-flag" and "-flag 10"
	// This allows "-flag", and "-flag=10"
	// and also "-flag=true" and "-flag=false"
	// but not "-flag 10"
	return true
}

func (b *boolInt) Set(s string) error {
	v, err := strconv.ParseInt(s, 0, strconv.IntSize)
	if err != nil {
		v, err := strconv.ParseBool(s)
		b.set = v
		return err
	}
	b.set = true
	b.num = int(v)
	return nil
}

func (b *boolInt) String() string {
	return fmt.Sprintf("Set: %v, Num: %v", b.set, b.num)
}

// setList collects repeated "-set name=value" flags.
type setList []string

func (s *setList) Set(v string) error {
	name, value, ok := strings.Cut(v, "=")
	if !ok || name == "" {
		return errors.Errorf("%q is not name=value", v)
	}
	*s = append(*s, name+" "+value)
	return nil
}

func (s *setList) String() string {
	return strings.Join(*s, ", ")
}

// execList collects repeated "-exec line" flags.
type execList []string

func (e *execList) Set(v string) error {
	*e = append(*e, v)
	return nil
}

func (e *execList) String() string {
	return strings.Join(*e, "; ")
}

func init() {
	flag.BoolVar(&fullscreen, "fullscreen", false, "")
	flag.BoolVar(&fullscreen, "f", false, "")
	flag.BoolVar(&timeDemo, "timedemo", false, "render as fast as possible")

	flag.Var(&metrics, "metrics", "serve prometheus metrics, optional port")
	flag.Var(&sets, "set", "set a console variable, name=value, repeatable")
	flag.Var(&execs, "exec", "queue a command line for the first tics, repeatable")

	flag.IntVar(&frames, "frames", 35, "tics to run before a png screenshot")
	flag.IntVar(&height, "height", 200, "screen height")
	flag.IntVar(&scale, "scale", 3, "window pixels per screen pixel")
	flag.IntVar(&width, "width", 320, "screen width")

	flag.StringVar(&level, "map", "DEMO1", "map to start")
	flag.StringVar(&mode, "mode", ModeWindow, "window, tui or png")
	flag.StringVar(&output, "o", "", "png screenshot file, default is a generated name")
}

func Fullscreen() bool {
	return fullscreen
}

func TimeDemo() bool {
	return timeDemo
}

func Metrics() bool {
	return metrics.set
}

func MetricsPort() int {
	return metrics.num
}

func Frames() int {
	return frames
}

func Height() int {
	return height
}

func Scale() int {
	return scale
}

func Width() int {
	return width
}

func Map() string {
	return level
}

func Mode() string {
	return mode
}

func Output() string {
	return output
}

// Exec returns the queued "-exec" lines in order.
func Exec() []string {
	return execs
}

// Validate checks the flag values which flag can not check itself.
func Validate() error {
	switch mode {
	case ModeWindow, ModeTUI, ModePNG:
	default:
		return errors.Errorf("unknown mode %q", mode)
	}
	if width < 320 || height < 200 {
		return errors.Errorf("screen %dx%d is smaller than 320x200", width, height)
	}
	if scale < 1 {
		return errors.Errorf("scale %d", scale)
	}
	return nil
}

// ApplySets runs the "-set" flags as console lines, in order.
func ApplySets() error {
	for _, s := range sets {
		if !cvar.Execute(s) {
			name, _, _ := strings.Cut(s, " ")
			return errors.Errorf("unknown variable %q", name)
		}
	}
	return nil
}
