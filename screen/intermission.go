// SPDX-License-Identifier: GPL-2.0-or-later

package screen

import (
	"fmt"

	"godoom/draw"
	"godoom/maps"
	"godoom/texture"
)

const (
	ticRate = 35
	// counters advance by these per tic
	percentStep = 2
	timeStep    = 3
)

// Stats is the result of a finished level.
type Stats struct {
	Map     maps.Map
	Next    maps.Map
	HasNext bool

	Kills      int
	MaxKills   int
	Items      int
	MaxItems   int
	Secrets    int
	MaxSecrets int

	// Time and Par are in seconds.
	Time int
	Par  int
}

type countPhase int

const (
	countKills countPhase = iota
	countItems
	countSecrets
	countTime
	countDone
)

// IntermissionState counts the level stats up one after the other, with a
// second of pause in between.
type IntermissionState struct {
	stats Stats

	phase   countPhase
	pause   int
	kills   int
	items   int
	secrets int
	time    int
	par     int
	tics    int
	done    bool

	reported bool
}

func NewIntermission(s Stats) *IntermissionState {
	return &IntermissionState{stats: s, kills: -1, items: -1, secrets: -1, time: -1, par: -1}
}

func percent(n, total int) int {
	return n * 100 / max(total, 1)
}

// Final returns the percentages the counters stop at.
func (s Stats) Final() (kills, items, secrets int) {
	return percent(s.Kills, s.MaxKills), percent(s.Items, s.MaxItems), percent(s.Secrets, s.MaxSecrets)
}

func countUp(cnt, step, target int) (int, bool) {
	cnt = max(cnt, 0) + step
	if cnt >= target {
		return target, true
	}
	return cnt, false
}

func (in *IntermissionState) Tic() {
	in.tics++
	if in.pause > 0 {
		in.pause--
		if in.pause == 0 {
			in.phase++
		}
		return
	}
	kills, items, secrets := in.stats.Final()
	finished := false
	switch in.phase {
	case countKills:
		in.kills, finished = countUp(in.kills, percentStep, kills)
	case countItems:
		in.items, finished = countUp(in.items, percentStep, items)
	case countSecrets:
		in.secrets, finished = countUp(in.secrets, percentStep, secrets)
	case countTime:
		var parDone bool
		in.time, finished = countUp(in.time, timeStep, in.stats.Time)
		in.par, parDone = countUp(in.par, timeStep, in.stats.Par)
		finished = finished && parDone
	default:
		return
	}
	if finished {
		in.pause = ticRate
	}
}

// Accept skips the counting, or finishes the intermission once everything
// was counted.
func (in *IntermissionState) Accept() {
	if in.phase < countDone {
		in.kills, in.items, in.secrets = in.stats.Final()
		in.time, in.par = in.stats.Time, in.stats.Par
		in.phase = countDone
		in.pause = 0
		return
	}
	in.done = true
}

// Done reports whether the player accepted the finished stats.
func (in *IntermissionState) Done() bool {
	return in.done
}

// Counters returns the values shown, -1 for those not counted yet.
func (in *IntermissionState) Counters() (kills, items, secrets, time int) {
	return in.kills, in.items, in.secrets, in.time
}

func (in *IntermissionState) Stats() Stats {
	return in.stats
}

func clock(sec int) string {
	return fmt.Sprintf("%d:%02d", sec/60, sec%60)
}

func (in *IntermissionState) Draw(dst *draw.Surface, f *texture.Font, back *texture.Flat) {
	s := screenScale(dst.Width, dst.Height)
	if back != nil {
		tileFlat(dst, back, 0, 0, dst.Width, dst.Height)
	} else {
		dst.Clear(colorBlack)
	}
	sx := func(x int) int { return x * dst.Width / 320 }
	sy := func(y int) int { return y * dst.Height / 200 }

	drawCentered(dst, f, in.stats.Map.Name, dst.Width/2, sy(8), 2*s)
	drawCentered(dst, f, "FINISHED", dst.Width/2, sy(24), s)

	rows := []struct {
		label string
		value int
	}{
		{"KILLS", in.kills},
		{"ITEMS", in.items},
		{"SECRET", in.secrets},
	}
	for i, r := range rows {
		y := sy(50 + 18*i)
		dst.DrawText(f, r.label, sx(50), y, 2*s)
		if r.value >= 0 {
			dst.DrawNumber(f, r.value, sx(250), y, 2*s)
			dst.DrawChar(f, '%', sx(250), y, 2*s)
		}
	}
	y := sy(120)
	dst.DrawText(f, "TIME", sx(16), y, 2*s)
	dst.DrawText(f, "PAR", sx(176), y, 2*s)
	if in.time >= 0 {
		t := clock(in.time)
		dst.DrawText(f, t, sx(150)-draw.MeasureText(f, t, 2*s), y, 2*s)
		p := clock(in.par)
		dst.DrawText(f, p, sx(304)-draw.MeasureText(f, p, 2*s), y, 2*s)
	}
	if in.phase == countDone && in.stats.HasNext && (in.tics/16)%2 == 0 {
		drawCentered(dst, f, "ENTERING", dst.Width/2, sy(150), s)
		drawCentered(dst, f, in.stats.Next.Name, dst.Width/2, sy(162), 2*s)
	}
}
