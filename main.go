// SPDX-License-Identifier: GPL-2.0-or-later

package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"sync"

	"github.com/gopxl/mainthread/v2"

	cmdl "godoom/commandline"
	"godoom/conlog"
	"godoom/maps"
	"godoom/metrics"
	"godoom/tui"
	"godoom/window"
)

func main() {
	flag.Parse()
	if err := cmdl.Validate(); err != nil {
		log.Fatal(err)
	}
	if err := cmdl.ApplySets(); err != nil {
		log.Fatal(err)
	}
	// SDL wants its calls on the main thread
	mainthread.Run(func() {
		if err := run(); err != nil {
			log.Fatal(err)
		}
	})
}

func run() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	v, err := newViewer(maps.Demo.Maps, cmdl.Width(), cmdl.Height())
	if err != nil {
		return err
	}
	if cmdl.Metrics() {
		v.recorder = metrics.New()
		go func() {
			if err := v.recorder.Serve(ctx, cmdl.MetricsPort()); err != nil {
				conlog.Printf("%v\n", err)
			}
		}()
	}
	start, err := maps.Lookup(cmdl.Map())
	if err != nil {
		return err
	}
	if err := v.loadLevel(start); err != nil {
		return err
	}

	for _, l := range cmdl.Exec() {
		v.commands.AddText(l + "\n")
	}

	var fe frontend
	switch cmdl.Mode() {
	case cmdl.ModeWindow:
		w, err := window.New("GoDoom", cmdl.Width(), cmdl.Height(), cmdl.Scale(), cmdl.Fullscreen(), v.pal)
		if err != nil {
			return err
		}
		fe = w
	case cmdl.ModeTUI:
		t, err := tui.New(v.pal)
		if err != nil {
			return err
		}
		fe = t
		// the terminal is the screen, keep messages until it is gone
		var (
			mu   sync.Mutex
			held []string
		)
		conlog.SetPrintf(func(format string, a ...interface{}) {
			mu.Lock()
			held = append(held, fmt.Sprintf(format, a...))
			mu.Unlock()
		})
		defer func() {
			conlog.SetPrintf(nil)
			mu.Lock()
			defer mu.Unlock()
			for _, m := range held {
				log.Print(m)
			}
		}()
	case cmdl.ModePNG:
		fe = &pngFrames{frames: cmdl.Frames()}
	}
	defer fe.Close()

	if err := v.run(ctx, fe, cmdl.TimeDemo() || cmdl.Mode() == cmdl.ModePNG); err != nil {
		return err
	}
	if cmdl.Mode() == cmdl.ModePNG {
		return v.screenshot(cmdl.Output())
	}
	return nil
}
