package hardware

import (
	"errors"
	"fmt"
	"strings"
)

// Command is one string of the instrument's serial vocabulary.
type Command string

func ArmCommand(d Device) Command {
	return Command("ARM_" + d.Code())
}

func DisarmCommand(d Device) Command {
	return Command("DISARM_" + d.Code())
}

// ToggleCommand returns the command that moves d into the armed state given.
func ToggleCommand(d Device, arm bool) Command {
	if arm {
		return ArmCommand(d)
	}
	return DisarmCommand(d)
}

func SetCueFrequency(hz int) Command {
	return Command(fmt.Sprintf("SET_FREQUENCY_CS:%d", hz))
}

func SetCueDuration(ms int) Command {
	return Command(fmt.Sprintf("SET_DURATION_CS:%d", ms))
}

func LaserStimMode(mode StimMode) Command {
	return Command("LASER_STIM_MODE_" + strings.ToUpper(string(mode)))
}

func LaserDuration(s int) Command {
	return Command(fmt.Sprintf("LASER_DURATION:%d", s))
}

func LaserFrequency(hz int) Command {
	return Command(fmt.Sprintf("LASER_FREQUENCY:%d", hz))
}

func ActiveLever(l Lever) Command {
	return Command("ACTIVE_LEVER_" + l.code())
}

var ErrUnknownLever = errors.New("unknown lever selection")

// Lever identifies which lever is the active (reinforced) one.
type Lever string

const (
	LeverLH Lever = "LH Lever"
	LeverRH Lever = "RH Lever"
)

// Levers lists the active-lever menu entries.
var Levers = []Lever{LeverLH, LeverRH}

func ParseLever(s string) (Lever, error) {
	switch Lever(s) {
	case LeverLH, LeverRH:
		return Lever(s), nil
	}
	switch strings.ToUpper(s) {
	case "LH", "LEFT":
		return LeverLH, nil
	case "RH", "RIGHT":
		return LeverRH, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownLever, s)
}

func (l Lever) code() string {
	if l == LeverRH {
		return "RH"
	}
	return "LH"
}

// CommandSpec describes the accepted command vocabulary for validation.
// Parameterized commands carry an integer after the colon.
type CommandSpec struct {
	Fixed  map[string]bool
	Params map[string]bool
}

// Vocabulary returns every command the panel can emit.
func Vocabulary() CommandSpec {
	spec := CommandSpec{
		Fixed:  map[string]bool{},
		Params: map[string]bool{},
	}
	for _, d := range Devices {
		spec.Fixed[string(ArmCommand(d))] = true
		spec.Fixed[string(DisarmCommand(d))] = true
	}
	for _, l := range Levers {
		spec.Fixed[string(ActiveLever(l))] = true
	}
	for _, m := range StimModes {
		spec.Fixed[string(LaserStimMode(m))] = true
	}
	for _, p := range []string{"SET_FREQUENCY_CS", "SET_DURATION_CS", "LASER_DURATION", "LASER_FREQUENCY"} {
		spec.Params[p] = true
	}
	return spec
}

// Valid reports whether cmd belongs to the vocabulary.
func (s CommandSpec) Valid(cmd string) bool {
	if s.Fixed[cmd] {
		return true
	}
	name, arg, ok := strings.Cut(cmd, ":")
	if !ok || !s.Params[name] || arg == "" {
		return false
	}
	for _, c := range arg {
		if c < '0' || c > '9' {
			return false
		}
	}
	return true
}
