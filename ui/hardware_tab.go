package ui

import (
	"context"
	"fmt"

	"github.com/ebitenui/ebitenui/widget"

	"github.com/reacher-tools/hwpanel/hardware"
)

type HardwareTab struct {
	tab         *hardware.Tab
	syncing     bool
	Container   *widget.Container
	ArmButtons  map[hardware.Device]*widget.Button
	LeverButton *widget.Button
	ModeButton  *widget.Button
	CueFreq     *sliderRow
	CueDuration *sliderRow
	LaserFreq   *sliderRow
	LaserDur    *sliderRow
	Plot        *WaveformPlot
}

func armLabel(d hardware.Device, icon hardware.Icon) string {
	return fmt.Sprintf("%s  [%s]", d.ButtonLabel(), icon)
}

func leverLabel(l hardware.Lever) string {
	if l == "" {
		return "Active Lever: (none)"
	}
	return "Active Lever: " + string(l)
}

func modeLabel(m hardware.StimMode) string {
	return "Stim Mode: " + string(m)
}

// armView is what an arm button should show for the tab's current state of d.
func armView(tab *hardware.Tab, d hardware.Device) (string, widget.WidgetState) {
	state := widget.WidgetUnchecked
	if tab.Armed(d) {
		state = widget.WidgetChecked
	}
	return armLabel(d, tab.Icon(d)), state
}

func (u *UI) MakeHardwareTab() *HardwareTab {
	ht := &HardwareTab{
		tab:        u.Tab,
		ArmButtons: make(map[hardware.Device]*widget.Button, len(hardware.Devices)),
	}
	ht.Container = widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewGridLayout(
			widget.GridLayoutOpts.Columns(2),
			widget.GridLayoutOpts.Stretch([]bool{true, true}, []bool{true}),
			widget.GridLayoutOpts.Spacing(8, 0),
			widget.GridLayoutOpts.Padding(widget.NewInsetsSimple(8)),
		)),
	)

	stretch := widget.WidgetOpts.LayoutData(widget.RowLayoutData{Stretch: true})
	for _, d := range hardware.Devices {
		d := d
		ht.ArmButtons[d] = u.MakeToggleButton("Go-16", armLabel(d, u.Tab.Icon(d)), func(*widget.ButtonChangedEventArgs) {
			if ht.syncing {
				return
			}
			// The widget flips on click; the tab decides whether it stays flipped.
			queued := u.Dispatch(d.Component(), func(ctx context.Context) {
				u.Tab.Toggle(ctx, d)
				u.Defer(func() { ht.SyncArmed(d) })
			})
			if !queued {
				u.Defer(func() { ht.SyncArmed(d) })
			}
		}, stretch)
		ht.SyncArmed(d)
	}

	ht.LeverButton = u.MakeButton("Go-16", leverLabel(u.Tab.ActiveLever()), func(*widget.ButtonClickedEventArgs) {
		items := make([]any, len(hardware.Levers))
		for i, l := range hardware.Levers {
			items[i] = l
		}
		var selected any
		if l := u.Tab.ActiveLever(); l != "" {
			selected = l
		}
		u.Choose(ht.LeverButton, "Active Lever", items, selected, func(e any) string {
			return string(e.(hardware.Lever))
		}, func(e any) {
			lever := e.(hardware.Lever)
			u.Dispatch("active lever", func(ctx context.Context) {
				u.Tab.SetActiveLever(ctx, string(lever))
				u.Defer(func() { ht.LeverButton.Text().Label = leverLabel(u.Tab.ActiveLever()) })
			})
		})
	}, stretch)

	cue := u.Tab.CueSettings()
	ht.CueDuration = u.makeSliderRow("Cue Duration", hardware.CueDurationRange, cue.Duration, formatUnit("ms"), u.Tab.SetCueDuration)
	ht.CueFreq = u.makeSliderRow("Cue Frequency", hardware.CueFrequencyRange, cue.Frequency, formatUnit("Hz"), u.Tab.SetCueFrequency)

	laser := u.Tab.LaserSettings()
	ht.ModeButton = u.MakeButton("Go-16", modeLabel(laser.Mode), func(*widget.ButtonClickedEventArgs) {
		items := make([]any, len(hardware.StimModes))
		for i, m := range hardware.StimModes {
			items[i] = m
		}
		u.Choose(ht.ModeButton, "Stim Mode", items, u.Tab.LaserSettings().Mode, func(e any) string {
			return string(e.(hardware.StimMode))
		}, func(e any) {
			if err := u.Tab.SetLaserMode(e.(hardware.StimMode)); err != nil {
				u.log.Error(err, "Bad stim mode")
			}
			ht.ModeButton.Text().Label = modeLabel(u.Tab.LaserSettings().Mode)
		})
	}, stretch)
	ht.Plot = u.MakeWaveformPlot(laser.Frequency)
	ht.LaserFreq = u.makeSliderRow("Laser Frequency", hardware.LaserFrequencyRange, laser.Frequency, formatUnit("Hz"), func(hz int) {
		u.Tab.SetLaserFrequency(hz)
		ht.Plot.SetFrequency(hz)
	})
	ht.LaserDur = u.makeSliderRow("Laser Duration", hardware.LaserDurationRange, laser.Duration, formatUnit("s"), u.Tab.SetLaserDuration)

	left := u.column(
		u.MakeSection("Levers",
			ht.LeverButton,
			ht.ArmButtons[hardware.RHLever],
			ht.ArmButtons[hardware.LHLever],
		),
		u.MakeSection("Cue",
			ht.ArmButtons[hardware.Cue],
			ht.CueDuration.container,
			ht.CueFreq.container,
			u.MakeButton("Go-16", "Send CS Configuration", func(*widget.ButtonClickedEventArgs) {
				u.Dispatch("cue configuration", u.Tab.SendCueConfiguration)
			}, stretch),
		),
		u.MakeSection("Pump / Lick Circuit",
			ht.ArmButtons[hardware.Pump],
			ht.ArmButtons[hardware.LickCircuit],
		),
	)
	right := u.column(
		u.MakeSection("Scope",
			ht.ArmButtons[hardware.Microscope],
		),
		u.MakeSection("Laser",
			ht.ArmButtons[hardware.Laser],
			ht.ModeButton,
			ht.LaserFreq.container,
			ht.LaserDur.container,
			u.MakeButton("Go-16", "Send Laser Configuration", func(*widget.ButtonClickedEventArgs) {
				u.Dispatch("laser configuration", u.Tab.SendLaserConfiguration)
			}, stretch),
			ht.Plot.Container,
		),
	)
	ht.Container.AddChild(left, right)
	return ht
}

func (u *UI) column(sections ...widget.PreferredSizeLocateableWidget) *widget.Container {
	col := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionVertical),
			widget.RowLayoutOpts.Spacing(8),
		)),
	)
	for _, s := range sections {
		col.AddChild(s)
	}
	return col
}

// SyncArmed shows the tab's armed state of d on its button.
func (ht *HardwareTab) SyncArmed(d hardware.Device) {
	b, ok := ht.ArmButtons[d]
	if !ok {
		return
	}
	label, state := armView(ht.tab, d)
	b.Text().Label = label
	ht.syncing = true
	b.SetState(state)
	ht.syncing = false
}

// SetArmed refreshes the button of the named component. The event only says
// which button; the state is read back from the tab.
func (ht *HardwareTab) SetArmed(component string) {
	if d, ok := hardware.DeviceByComponent(component); ok {
		ht.SyncArmed(d)
	}
}
