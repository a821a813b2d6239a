// SPDX-License-Identifier: GPL-2.0-or-later

package commandline

import (
	"flag"
	"testing"

	"godoom/cvar"
)

func TestBoolInt(t *testing.T) {
	var flags flag.FlagSet
	flags.Init("test", flag.ContinueOnError)
	a := boolInt{false, 4}
	b := boolInt{false, 5}
	c := boolInt{true, 6}
	d := boolInt{false, 7}
	e := boolInt{false, 8}
	f := boolInt{true, 9}
	flags.Var(&a, "a", "usage")
	flags.Var(&b, "b", "usage")
	flags.Var(&c, "c", "usage")
	flags.Var(&d, "d", "usage")
	flags.Var(&e, "e", "usage")
	flags.Var(&f, "f", "usage")
	if err := flags.Parse([]string{"-a", "-b=3", "-e=true", "-f=false"}); err != nil {
		t.Error(err)
	}
	if a.set != true {
		t.Errorf("a.set = %v", a.set)
	}
	if b.set != true {
		t.Errorf("b.set = %v", b.set)
	}
	if c.set != true {
		t.Errorf("c.set = %v", c.set)
	}
	if d.set != false {
		t.Errorf("d.set = %v", d.set)
	}
	if e.set != true {
		t.Errorf("e.set = %v", e.set)
	}
	if f.set != false {
		t.Errorf("f.set = %v", f.set)
	}
	if a.num != 4 {
		t.Errorf("a.num = %v", a.num)
	}
	if b.num != 3 {
		t.Errorf("b.num = %v", b.num)
	}
	if c.num != 6 {
		t.Errorf("c.num = %v", c.num)
	}
	if d.num != 7 {
		t.Errorf("d.num = %v", d.num)
	}
}

func TestSetList(t *testing.T) {
	var flags flag.FlagSet
	flags.Init("test", flag.ContinueOnError)
	var s setList
	flags.Var(&s, "set", "usage")
	if err := flags.Parse([]string{"-set", "r_detail=1", "-set=screenblocks=8"}); err != nil {
		t.Fatal(err)
	}
	if len(s) != 2 || s[0] != "r_detail 1" || s[1] != "screenblocks 8" {
		t.Errorf("s = %q", s)
	}
	for _, v := range []string{"r_detail", "=1"} {
		if err := s.Set(v); err == nil {
			t.Errorf("Set(%q) did not fail", v)
		}
	}
}

func TestExecList(t *testing.T) {
	var flags flag.FlagSet
	flags.Init("test", flag.ContinueOnError)
	var e execList
	flags.Var(&e, "exec", "usage")
	if err := flags.Parse([]string{"-exec", "exitlevel", "-exec=wait; screenshot"}); err != nil {
		t.Fatal(err)
	}
	if len(e) != 2 || e[0] != "exitlevel" || e[1] != "wait; screenshot" {
		t.Errorf("e = %q", e)
	}
}

func TestApplySets(t *testing.T) {
	cv := cvar.MustRegister("test_applysets", "0", cvar.NONE)
	defer func() { sets = nil }()
	sets = setList{"test_applysets 7"}
	if err := ApplySets(); err != nil {
		t.Fatal(err)
	}
	if cv.Value() != 7 {
		t.Errorf("test_applysets = %v, want 7", cv.Value())
	}
	sets = setList{"no_such_variable 1"}
	if err := ApplySets(); err == nil {
		t.Errorf("ApplySets with an unknown variable did not fail")
	}
}

func TestValidate(t *testing.T) {
	defer func(m string, w int) { mode, width = m, w }(mode, width)
	tests := []struct {
		mode  string
		width int
		ok    bool
	}{
		{ModeWindow, 320, true},
		{ModePNG, 640, true},
		{"gl", 320, false},
		{ModeTUI, 100, false},
	}
	for _, test := range tests {
		mode, width = test.mode, test.width
		if err := Validate(); (err == nil) != test.ok {
			t.Errorf("Validate(%v, %v) = %v", test.mode, test.width, err)
		}
	}
}
