package hardware

import "fmt"

// Device is one of the rig's armable subsystems.
type Device int

const (
	LHLever Device = iota
	RHLever
	Cue
	Pump
	LickCircuit
	Microscope
	Laser
)

// Devices lists every armable device in layout order.
var Devices = []Device{LHLever, RHLever, Cue, Pump, LickCircuit, Microscope, Laser}

type deviceInfo struct {
	component  string // name used by ArmDevices
	code       string // suffix of ARM_/DISARM_ commands
	button     string
	errorLabel string
}

var deviceTable = map[Device]deviceInfo{
	LHLever:     {"LH Lever", "LEVER_LH", "Arm LH Lever", "Failed to arm or disarm LH lever"},
	RHLever:     {"RH Lever", "LEVER_RH", "Arm RH Lever", "Failed to arm or disarm RH lever"},
	Cue:         {"Cue", "CS", "Arm Cue", "Failed to arm or disarm CS"},
	Pump:        {"Pump", "PUMP", "Arm Pump", "Failed to arm or disarm pump"},
	LickCircuit: {"Lick Circuit", "LICK_CIRCUIT", "Arm Lick Circuit", "Failed to arm or disarm lick circuit"},
	Microscope:  {"Imaging Timestamp Receptor", "FRAME", "Arm Scope", "Failed to arm or disarm 2P"},
	Laser:       {"Laser", "LASER", "Arm Laser", "Failed to arm or disarm laser"},
}

func (d Device) info() deviceInfo {
	info, ok := deviceTable[d]
	if !ok {
		panic(fmt.Sprintf("hardware: unknown device %d", int(d)))
	}
	return info
}

// Component is the name the device is known by in ArmDevices lists.
func (d Device) Component() string { return d.info().component }

// Code is the device's suffix in the ARM_/DISARM_ command vocabulary.
func (d Device) Code() string { return d.info().code }

func (d Device) ButtonLabel() string { return d.info().button }

func (d Device) ErrorLabel() string { return d.info().errorLabel }

func (d Device) String() string { return d.Component() }

// DeviceByComponent resolves a component name to its device.
func DeviceByComponent(name string) (Device, bool) {
	for _, d := range Devices {
		if d.Component() == name {
			return d, true
		}
	}
	return 0, false
}

// Icon is the lock glyph shown on an arm toggle.
type Icon string

const (
	IconLocked   Icon = "lock"
	IconUnlocked Icon = "unlock"
)

// IconFor returns the icon that must accompany the given armed flag.
func IconFor(armed bool) Icon {
	if armed {
		return IconUnlocked
	}
	return IconLocked
}
