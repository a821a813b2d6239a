// SPDX-License-Identifier: GPL-2.0-or-later

package cvar

import (
	"log"
	"sort"
	"strconv"
	"strings"

	"github.com/pkg/errors"

	"godoom/conlog"
)

var (
	cvarArray  []*Cvar
	cvarByName = make(map[string]*Cvar)
)

type flag uint64

const (
	// cvar flags bitfield
	NONE    flag = 0
	ARCHIVE flag = 1
	ROM     flag = 1 << 6
)

type CallbackFunc func(cv *Cvar)

type Cvar struct {
	archive  bool
	rom      bool
	user     bool
	callback CallbackFunc
	name     string
	// stringValue is the truth, value the derived one
	stringValue  string
	value        float32
	defaultValue string
}

func All() []*Cvar {
	return cvarArray
}

func (cv *Cvar) Archive() bool {
	return cv.archive
}

func (cv *Cvar) UserDefined() bool {
	return cv.user
}

func (cv *Cvar) SetCallback(cb CallbackFunc) {
	cv.callback = cb
}

func (cv *Cvar) SetByString(s string) {
	if cv.rom {
		return
	}
	cv.stringValue = s
	pf, _ := strconv.ParseFloat(cv.stringValue, 32)
	cv.value = float32(pf)
	if cv.callback != nil {
		cv.callback(cv)
	}
}

func (cv *Cvar) Reset() {
	cv.SetByString(cv.defaultValue)
}

func (cv *Cvar) String() string {
	return cv.stringValue
}

func (cv *Cvar) Name() string {
	return cv.name
}

func (cv *Cvar) Value() float32 {
	return cv.value
}

func (cv *Cvar) SetValue(value float32) {
	if float32(int(value)) == value {
		v := strconv.FormatInt(int64(value), 10)
		cv.SetByString(v)
	} else {
		v := strconv.FormatFloat(float64(value), 'f', -1, 32)
		cv.SetByString(v)
	}
}

func (cv *Cvar) Toggle() {
	if cv.String() == "1" {
		cv.SetByString("0")
	} else {
		cv.SetByString("1")
	}
}

func (cv *Cvar) Bool() bool {
	return cv.stringValue != "0" && cv.stringValue != ""
}

func Get(name string) (*Cvar, bool) {
	cv, ok := cvarByName[name]
	return cv, ok
}

func create(name, value string) *Cvar {
	cv := &Cvar{name: name, defaultValue: value}
	cv.SetByString(value)
	cvarArray = append(cvarArray, cv)
	cvarByName[name] = cv
	return cv
}

func Register(name, value string, flags flag) (*Cvar, error) {
	if _, ok := cvarByName[name]; ok {
		return nil, errors.Errorf("Can't register variable %s, already defined", name)
	}

	cv := create(name, value)

	if flags&ARCHIVE != 0 {
		cv.archive = true
	}
	if flags&ROM != 0 {
		cv.rom = true
	}
	return cv, nil
}

func MustRegister(n, v string, flag flag) *Cvar {
	cv, err := Register(n, v, flag)
	if err != nil {
		log.Panic(n)
	}
	return cv
}

type command func(args []string)

var commands map[string]command

func init() {
	commands = map[string]command{
		"cvarlist": list,
		"cycle":    cycle,
		"inc":      inc,
		"reset":    reset,
		"resetall": resetAll,
		"set":      set,
		"toggle":   toggle,
	}
}

// Execute runs one console line. A line naming a cvar shows it or sets it,
// the remaining lines are the cvar commands. Execute reports whether the
// line was understood.
func Execute(line string) bool {
	args := strings.Fields(line)
	if len(args) == 0 {
		return false
	}
	if c, ok := commands[args[0]]; ok {
		c(args[1:])
		return true
	}
	cv, ok := Get(args[0])
	if !ok {
		return false
	}
	if len(args) == 1 {
		conlog.Printf("\"%s\" is \"%s\"\n", cv.Name(), cv.String())
		return true
	}
	cv.SetByString(args[1])
	return true
}

func set(args []string) {
	switch {
	case len(args) >= 2:
		if _, ok := commands[args[0]]; ok {
			conlog.Printf("conflict with command\n")
			return
		}
		if cv, ok := cvarByName[args[0]]; ok {
			cv.SetByString(args[1])
		} else {
			cv := create(args[0], args[1])
			cv.user = true
		}
	default:
		conlog.Printf("set <cvar> <value>\n")
	}
}

func toggle(args []string) {
	switch len(args) {
	case 1:
		if cv, ok := Get(args[0]); ok {
			cv.Toggle()
		} else {
			log.Printf("toggle: Cvar not found %v", args[0])
			conlog.Printf("toggle: variable %v not found\n", args[0])
		}
	default:
		conlog.Printf("toggle <cvar> : toggle cvar\n")
	}
}

func incr(n string, v float32) {
	if cv, ok := Get(n); ok {
		cv.SetValue(cv.Value() + v)
	} else {
		log.Printf("Cvar not found %v", n)
		conlog.Printf("inc: variable %v not found\n", n)
	}
}

func inc(args []string) {
	switch len(args) {
	case 1:
		incr(args[0], 1)
	case 2:
		v, err := strconv.ParseFloat(args[1], 32)
		if err != nil {
			conlog.Printf("inc: bad amount %q\n", args[1])
			return
		}
		incr(args[0], float32(v))
	default:
		conlog.Printf("inc <cvar> [amount] : increment cvar\n")
	}
}

func reset(args []string) {
	switch len(args) {
	case 1:
		if cv, ok := Get(args[0]); ok {
			cv.Reset()
		} else {
			log.Printf("Cvar not found %v", args[0])
			conlog.Printf("reset: variable %v not found\n", args[0])
		}
	default:
		conlog.Printf("reset <cvar> : reset cvar to default\n")
	}
}

func resetAll(_ []string) {
	for _, cv := range All() {
		cv.Reset()
	}
}

func list(args []string) {
	prefix := ""
	if len(args) > 0 {
		prefix = args[0]
	}
	cvars := make([]*Cvar, 0, len(cvarArray))
	for _, v := range cvarArray {
		if strings.HasPrefix(v.Name(), prefix) {
			cvars = append(cvars, v)
		}
	}
	sort.Slice(cvars, func(i, j int) bool { return cvars[i].name < cvars[j].name })
	for _, v := range cvars {
		a := " "
		switch {
		case v.Archive():
			a = "*"
		case v.UserDefined():
			a = "u"
		}
		conlog.Printf("%s %s \"%s\"\n", a, v.Name(), v.String())
	}
	if prefix != "" {
		conlog.Printf("%v cvars beginning with \"%s\"\n", len(cvars), prefix)
		return
	}
	conlog.Printf("%v cvars\n", len(cvars))
}

func cycle(args []string) {
	if len(args) < 2 {
		conlog.Printf("cycle <cvar> <value list>: cycle cvar through a list of values\n")
		return
	}
	cv, ok := Get(args[0])
	if !ok {
		conlog.Printf("cycle: variable %v not found\n", args[0])
		return
	}
	values := args[1:]
	next := 0
	for i, v := range values {
		if cv.String() == v {
			next = (i + 1) % len(values)
			break
		}
	}
	cv.SetByString(values[next])
}
