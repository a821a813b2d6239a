// SPDX-License-Identifier: GPL-2.0-or-later

// Package screen decides what the viewer shows each frame: the 3D view with
// its status bar, the automap, the intermission, the finale or the menu on
// top of one of them. Changes between the level, the intermission and the
// finale melt the old screen away.
package screen

type Kind int

const (
	Level Kind = iota
	Automap
	Intermission
	Finale
	Menu
)

func (k Kind) String() string {
	switch k {
	case Level:
		return "level"
	case Automap:
		return "automap"
	case Intermission:
		return "intermission"
	case Finale:
		return "finale"
	case Menu:
		return "menu"
	}
	return "unknown"
}

// State is what is on screen. Only the payload of Kind is set.
type State struct {
	Kind Kind

	Intermission *IntermissionState
	Finale       *FinaleState

	// Under is the state the menu is drawn over.
	Under *State
}

// game is the kind that decides about melting: the automap is part of
// the level and the menu belongs to what it covers.
func (s State) game() Kind {
	switch s.Kind {
	case Automap:
		return Level
	case Menu:
		if s.Under != nil {
			return s.Under.game()
		}
		return Level
	}
	return s.Kind
}
