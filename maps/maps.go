// SPDX-License-Identifier: GPL-2.0-or-later

// Package maps names the levels and builds the demo levels the viewer runs
// without game data.
package maps

import (
	"strings"

	"github.com/pkg/errors"
)

type Map struct {
	ID   string
	Name string
}

var (
	E1M1 = Map{"E1M1", "Hangar"}
	E1M2 = Map{"E1M2", "Nuclear Plant"}
	E1M3 = Map{"E1M3", "Toxin Refinery"}
	E1M4 = Map{"E1M4", "Command Control"}
	E1M5 = Map{"E1M5", "Phobos Lab"}
	E1M6 = Map{"E1M6", "Central Processing"}
	E1M7 = Map{"E1M7", "Computer Station"}
	E1M8 = Map{"E1M8", "Phobos Anomaly"}
	E1M9 = Map{"E1M9", "Military Base"}
	E2M1 = Map{"E2M1", "Deimos Anomaly"}
	E2M2 = Map{"E2M2", "Containment Area"}
	E2M3 = Map{"E2M3", "Refinery"}
	E2M4 = Map{"E2M4", "Deimos Lab"}
	E2M5 = Map{"E2M5", "Command Center"}
	E2M6 = Map{"E2M6", "Halls of the Damned"}
	E2M7 = Map{"E2M7", "Spawning Vats"}
	E2M8 = Map{"E2M8", "Tower of Babel"}
	E2M9 = Map{"E2M9", "Fortress of Mystery"}
	E3M1 = Map{"E3M1", "Hell Keep"}
	E3M2 = Map{"E3M2", "Slough of Despair"}
	E3M3 = Map{"E3M3", "Pandemonium"}
	E3M4 = Map{"E3M4", "House of Pain"}
	E3M5 = Map{"E3M5", "Unholy Cathedral"}
	E3M6 = Map{"E3M6", "Mt. Erebus"}
	E3M7 = Map{"E3M7", "Limbo"}
	E3M8 = Map{"E3M8", "Dis"}
	E3M9 = Map{"E3M9", "Warrens"}
	E4M1 = Map{"E4M1", "Hell Beneath"}
	E4M2 = Map{"E4M2", "Perfect Hatred"}
	E4M3 = Map{"E4M3", "Sever the Wicked"}
	E4M4 = Map{"E4M4", "Unruly Evil"}
	E4M5 = Map{"E4M5", "They Will Repent"}
	E4M6 = Map{"E4M6", "Against Thee Wickedly"}
	E4M7 = Map{"E4M7", "And Hell Followed"}
	E4M8 = Map{"E4M8", "Unto the Cruel"}
	E4M9 = Map{"E4M9", "Fear"}

	Map01 = Map{"MAP01", "Entryway"}
	Map02 = Map{"MAP02", "Underhalls"}
	Map03 = Map{"MAP03", "The Gantlet"}
	Map04 = Map{"MAP04", "The Focus"}
	Map05 = Map{"MAP05", "The Waste Tunnels"}
	Map06 = Map{"MAP06", "The Crusher"}
	Map07 = Map{"MAP07", "Dead Simple"}
	Map08 = Map{"MAP08", "Tricks and Traps"}
	Map09 = Map{"MAP09", "The Pit"}
	Map10 = Map{"MAP10", "Refueling Base"}
	Map11 = Map{"MAP11", "'O' of Destruction!"}
	Map12 = Map{"MAP12", "The Factory"}
	Map13 = Map{"MAP13", "Downtown"}
	Map14 = Map{"MAP14", "The Inmost Dens"}
	Map15 = Map{"MAP15", "Industrial Zone"}
	Map16 = Map{"MAP16", "Suburbs"}
	Map17 = Map{"MAP17", "Tenements"}
	Map18 = Map{"MAP18", "The Courtyard"}
	Map19 = Map{"MAP19", "The Citadel"}
	Map20 = Map{"MAP20", "Gotcha!"}
	Map21 = Map{"MAP21", "Nirvana"}
	Map22 = Map{"MAP22", "The Catacombs"}
	Map23 = Map{"MAP23", "Barrels o' Fun"}
	Map24 = Map{"MAP24", "The Chasm"}
	Map25 = Map{"MAP25", "Bloodfalls"}
	Map26 = Map{"MAP26", "The Abandoned Mines"}
	Map27 = Map{"MAP27", "Monster Condo"}
	Map28 = Map{"MAP28", "The Spirit World"}
	Map29 = Map{"MAP29", "The Living End"}
	Map30 = Map{"MAP30", "Icon of Sin"}
	Map31 = Map{"MAP31", "Wolfenstein"}
	Map32 = Map{"MAP32", "Grosse"}

	Demo1 = Map{"DEMO1", "The Courtyard Demo"}
	Demo2 = Map{"DEMO2", "The Stair Hall"}
)

type Episode struct {
	Name string
	Maps []Map
}

var (
	E1 = Episode{"Knee-Deep in the Dead", []Map{E1M1, E1M2, E1M3, E1M4, E1M5, E1M6, E1M7, E1M8, E1M9}}
	E2 = Episode{"The Shores of Hell", []Map{E2M1, E2M2, E2M3, E2M4, E2M5, E2M6, E2M7, E2M8, E2M9}}
	E3 = Episode{"Inferno", []Map{E3M1, E3M2, E3M3, E3M4, E3M5, E3M6, E3M7, E3M8, E3M9}}
	E4 = Episode{"Thy Flesh Consumed", []Map{E4M1, E4M2, E4M3, E4M4, E4M5, E4M6, E4M7, E4M8, E4M9}}

	Commercial = Episode{"Hell on Earth", []Map{
		Map01, Map02, Map03, Map04, Map05, Map06, Map07, Map08,
		Map09, Map10, Map11, Map12, Map13, Map14, Map15, Map16,
		Map17, Map18, Map19, Map20, Map21, Map22, Map23, Map24,
		Map25, Map26, Map27, Map28, Map29, Map30, Map31, Map32,
	}}

	Demo = Episode{"Renderer Demo", []Map{Demo1, Demo2}}
)

func All() []Episode {
	return []Episode{E1, E2, E3, E4, Commercial, Demo}
}

// Lookup finds a map by id, ignoring case.
func Lookup(id string) (Map, error) {
	for _, e := range All() {
		for _, m := range e.Maps {
			if strings.EqualFold(m.ID, id) {
				return m, nil
			}
		}
	}
	return Map{}, errors.Errorf("unknown map %q", id)
}

// Next returns the map after m in its episode, false for the last one.
func Next(m Map) (Map, bool) {
	for _, e := range All() {
		for i, em := range e.Maps {
			if em.ID == m.ID && i+1 < len(e.Maps) {
				return e.Maps[i+1], true
			}
		}
	}
	return Map{}, false
}

// EpisodeOf returns the episode m belongs to.
func EpisodeOf(m Map) (Episode, bool) {
	for _, e := range All() {
		for _, em := range e.Maps {
			if em.ID == m.ID {
				return e, true
			}
		}
	}
	return Episode{}, false
}

var finales = map[string]string{
	E1.Name: "ONCE YOU BEAT THE BIG BADASSES AND\nCLEAN OUT THE MOON BASE YOU'RE SUPPOSED\nTO WIN, AREN'T YOU?",
	Demo.Name: "THE DEMO LEVELS ARE DONE.\n\nEVERY WALL, FLAT AND SPRITE ON THE WAY\nWAS DRAWN ONE COLUMN AT A TIME.",
}

// FinaleText is shown after the last map of episode e.
func FinaleText(e Episode) string {
	if t, ok := finales[e.Name]; ok {
		return t
	}
	return "THE END"
}
