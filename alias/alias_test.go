// SPDX-License-Identifier: GPL-2.0-or-later

package alias

import (
	"reflect"
	"testing"

	"godoom/cbuf"
)

func TestAliasCommand(t *testing.T) {
	al := New()
	for _, l := range []string{
		`alias tour "exitlevel; wait; screenshot"`,
		`alias  shot   screenshot`,
		`alias x y`,
		`unalias x`,
	} {
		if !al.Command(l) {
			t.Errorf("Command(%q) = false", l)
		}
	}
	if al.Command("tour") {
		t.Errorf("Command(tour) handled an alias use")
	}
	for _, tc := range []struct {
		name string
		want string
		ok   bool
	}{
		{"tour", "exitlevel; wait; screenshot\n", true},
		{"shot", "screenshot\n", true},
		{"x", "", false},
	} {
		if got, ok := al.Get(tc.name); got != tc.want || ok != tc.ok {
			t.Errorf("Get(%v) = %q, %v, want %q, %v", tc.name, got, ok, tc.want, tc.ok)
		}
	}
	if got, want := al.List(), []string{"shot", "tour"}; !reflect.DeepEqual(got, want) {
		t.Errorf("List() = %v, want %v", got, want)
	}
	al.Command("unaliasall")
	if len(al.List()) != 0 {
		t.Errorf("unaliasall left %v", al.List())
	}
}

func TestExecuteAlias(t *testing.T) {
	al := New()
	al.Set("hello", "world; wait; again")
	cb := cbuf.Buffer{}
	var ran []string
	run := func(l string) {
		if v, ok := al.Expand(l); ok {
			cb.InsertText(v)
			return
		}
		ran = append(ran, l)
	}
	cb.AddText("hello\nlast\n")
	cb.Execute(run)
	if want := []string{"world"}; !reflect.DeepEqual(ran, want) {
		t.Errorf("first tic ran %q, want %q", ran, want)
	}
	cb.Execute(run)
	if want := []string{"world", "again", "last"}; !reflect.DeepEqual(ran, want) {
		t.Errorf("second tic ran %q, want %q", ran, want)
	}
}
