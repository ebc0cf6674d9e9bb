// Package hardware implements the hardware tab of the rig dashboard: arming
// and disarming subsystems and pushing cue and laser configuration to the
// instrument.
package hardware

import (
	"context"
	"sync"

	"github.com/go-logr/logr"

	"github.com/reacher-tools/hwpanel/events"
	"github.com/reacher-tools/hwpanel/serialapi"
	"github.com/reacher-tools/hwpanel/waveform"
)

const NotConnectedMessage = "Please connect to the API first."

const (
	cueConfigErrorLabel   = "Failed to send CS configuration"
	laserConfigErrorLabel = "Failed to send laser configuration"
	activeLeverErrorLabel = "Failed to set active lever"
)

// Dashboard is the session the tab is mounted in.
type Dashboard interface {
	APIConnected() bool
	APIConfig() serialapi.Endpoint
	AddResponse(message string)
	AddError(label string, detail string)
}

// Sender delivers one command string to the instrument API.
type Sender interface {
	Send(ctx context.Context, ep serialapi.Endpoint, command string) error
}

// Handler is an arming action as stored in the component table.
type Handler func(ctx context.Context)

type Tab struct {
	mu         sync.RWMutex
	dash       Dashboard
	sender     Sender
	bus        *events.Bus
	log        logr.Logger
	armed      map[Device]bool
	icons      map[Device]Icon
	cue        CueSettings
	laser      LaserSettings
	lever      Lever
	components map[string]Handler
	onSent     func(CueSettings, LaserSettings)
}

func NewTab(dash Dashboard, sender Sender, bus *events.Bus, log logr.Logger) *Tab {
	t := &Tab{
		dash:   dash,
		sender: sender,
		bus:    bus,
		log:    log,
		armed:  make(map[Device]bool, len(Devices)),
		icons:  make(map[Device]Icon, len(Devices)),
		cue:    DefaultCueSettings(),
		laser:  DefaultLaserSettings(),
	}
	t.components = make(map[string]Handler, len(Devices))
	for _, d := range Devices {
		t.icons[d] = IconLocked
		d := d
		t.components[d.Component()] = func(ctx context.Context) { t.Toggle(ctx, d) }
	}
	return t
}

// OnSettingsSent registers a callback run after a configuration send
// completes without error.
func (t *Tab) OnSettingsSent(cb func(CueSettings, LaserSettings)) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.onSent = cb
}

// Components returns the component-name keyed arming table used by ArmDevices.
func (t *Tab) Components() map[string]Handler {
	out := make(map[string]Handler, len(t.components))
	for k, v := range t.components {
		out[k] = v
	}
	return out
}

func (t *Tab) Armed(d Device) bool {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.armed[d]
}

func (t *Tab) Icon(d Device) Icon {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.icons[d]
}

// connected records the informational message and returns false when there
// is no API connection.
func (t *Tab) connected() bool {
	if !t.dash.APIConnected() {
		t.dash.AddResponse(NotConnectedMessage)
		return false
	}
	return true
}

func (t *Tab) send(ctx context.Context, ep serialapi.Endpoint, cmd Command) error {
	err := t.sender.Send(ctx, ep, string(cmd))
	t.bus.Publish(events.CommandSent{Command: string(cmd), Err: err})
	return err
}

// sendAll sends cmds in order and stops at the first failure, which is
// recorded once under label. Commands already sent are not revisited.
func (t *Tab) sendAll(ctx context.Context, label string, cmds ...Command) bool {
	ep := t.dash.APIConfig()
	for _, cmd := range cmds {
		if err := t.send(ctx, ep, cmd); err != nil {
			t.dash.AddError(label, err.Error())
			return false
		}
	}
	return true
}

// Toggle arms a disarmed device or disarms an armed one. The flag and icon
// change before the command goes out and stay changed if it fails.
func (t *Tab) Toggle(ctx context.Context, d Device) {
	if !t.connected() {
		return
	}
	ep := t.dash.APIConfig()

	t.mu.Lock()
	armed := !t.armed[d]
	t.armed[d] = armed
	t.icons[d] = IconFor(armed)
	t.mu.Unlock()
	t.bus.Publish(events.ArmStateChanged{Component: d.Component(), Armed: armed, Icon: string(IconFor(armed))})

	cmd := ToggleCommand(d, armed)
	t.log.V(1).Info("Toggling", "device", d.Component(), "command", cmd)
	if err := t.send(ctx, ep, cmd); err != nil {
		t.dash.AddError(d.ErrorLabel(), err.Error())
	}
}

// ArmDevices invokes the arming handler of each named component. Unknown
// names are skipped.
func (t *Tab) ArmDevices(ctx context.Context, names []string) {
	for _, name := range names {
		if h, ok := t.components[name]; ok {
			h(ctx)
		}
	}
}

func (t *Tab) SetActiveLever(ctx context.Context, selection string) {
	if !t.connected() {
		return
	}
	lever, err := ParseLever(selection)
	if err != nil {
		t.dash.AddError(activeLeverErrorLabel, err.Error())
		return
	}
	t.mu.Lock()
	t.lever = lever
	t.mu.Unlock()
	t.sendAll(ctx, activeLeverErrorLabel, ActiveLever(lever))
}

func (t *Tab) ActiveLever() Lever {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.lever
}

func (t *Tab) SendCueConfiguration(ctx context.Context) {
	if !t.connected() {
		return
	}
	cue := t.CueSettings()
	if t.sendAll(ctx, cueConfigErrorLabel, SetCueFrequency(cue.Frequency), SetCueDuration(cue.Duration)) {
		t.settingsSent()
	}
}

func (t *Tab) SendLaserConfiguration(ctx context.Context) {
	if !t.connected() {
		return
	}
	laser := t.LaserSettings()
	if t.sendAll(ctx, laserConfigErrorLabel,
		LaserStimMode(laser.Mode),
		LaserDuration(laser.Duration),
		LaserFrequency(laser.Frequency),
	) {
		t.settingsSent()
	}
}

func (t *Tab) settingsSent() {
	t.mu.RLock()
	cb, cue, laser := t.onSent, t.cue, t.laser
	t.mu.RUnlock()
	if cb != nil {
		cb(cue, laser)
	}
}

func (t *Tab) CueSettings() CueSettings {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.cue
}

func (t *Tab) SetCueSettings(c CueSettings) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.cue = c.Clamped()
}

func (t *Tab) SetCueFrequency(hz int) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.cue.Frequency = CueFrequencyRange.Clamp(hz)
}

func (t *Tab) SetCueDuration(ms int) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.cue.Duration = CueDurationRange.Clamp(ms)
}

func (t *Tab) LaserSettings() LaserSettings {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.laser
}

func (t *Tab) SetLaserSettings(l LaserSettings) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.laser = l.Clamped()
}

// SetLaserMode selects the stimulation mode. An unknown mode is rejected and
// the current one kept.
func (t *Tab) SetLaserMode(m StimMode) error {
	mode, err := ParseStimMode(string(m))
	if err != nil {
		return err
	}
	t.mu.Lock()
	defer t.mu.Unlock()
	t.laser.Mode = mode
	return nil
}

func (t *Tab) SetLaserFrequency(hz int) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.laser.Frequency = LaserFrequencyRange.Clamp(hz)
}

func (t *Tab) SetLaserDuration(s int) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.laser.Duration = LaserDurationRange.Clamp(s)
}

// Preview samples the stimulation waveform for the current laser frequency.
func (t *Tab) Preview() waveform.Waveform {
	return waveform.SquareWave(t.LaserSettings().Frequency)
}
