// SPDX-License-Identifier: GPL-2.0-or-later

// Package alias names command lines, "alias tour "exitlevel; wait; screenshot""
// makes "tour" run all three.
package alias

import (
	"sort"
	"strings"
	"unicode"

	"godoom/conlog"
)

type Aliases struct {
	aliases map[string]string
}

func New() *Aliases {
	return &Aliases{aliases: make(map[string]string)}
}

func (a *Aliases) Set(name, command string) {
	// each alias value ends with a '\n'
	a.aliases[name] = strings.TrimSpace(command) + "\n"
}

func (a *Aliases) Get(name string) (string, bool) {
	v, ok := a.aliases[name]
	return v, ok
}

func (a *Aliases) List() []string {
	names := make([]string, 0, len(a.aliases))
	for k := range a.aliases {
		names = append(names, k)
	}
	sort.Strings(names)
	return names
}

// Command runs the alias, unalias and unaliasall lines and reports whether
// line was one of them.
func (a *Aliases) Command(line string) bool {
	name, rest := cut(line)
	switch name {
	case "alias":
		a.alias(rest)
	case "unalias":
		n, _ := cut(rest)
		if _, ok := a.aliases[n]; ok {
			delete(a.aliases, n)
		} else if n == "" {
			conlog.Printf("unalias <name> : delete alias\n")
		} else {
			conlog.Printf("No alias named %s\n", n)
		}
	case "unaliasall":
		a.aliases = make(map[string]string)
	default:
		return false
	}
	return true
}

func (a *Aliases) alias(args string) {
	name, command := cut(args)
	switch {
	case name == "":
		if len(a.aliases) == 0 {
			conlog.Printf("no alias commands found\n")
			return
		}
		for _, k := range a.List() {
			conlog.Printf("  %s: %s", k, a.aliases[k])
		}
		conlog.Printf("%v alias command(s)\n", len(a.aliases))
	case command == "":
		if v, ok := a.aliases[name]; ok {
			conlog.Printf("  %s: %s", name, v)
		}
	default:
		if len(command) > 1 && command[0] == '"' {
			command = strings.Trim(command, "\"\t\n\v\f\r ")
		}
		a.Set(name, command)
	}
}

// Expand returns the text an alias line stands for.
func (a *Aliases) Expand(line string) (string, bool) {
	name, _ := cut(line)
	return a.Get(name)
}

// cut splits the first word from s.
func cut(s string) (string, string) {
	s = strings.TrimLeftFunc(s, unicode.IsSpace)
	i := strings.IndexFunc(s, unicode.IsSpace)
	if i < 0 {
		return s, ""
	}
	return s[:i], strings.TrimSpace(s[i:])
}
