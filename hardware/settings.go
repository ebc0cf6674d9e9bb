package hardware

import (
	"errors"
	"fmt"
	"strings"

	"github.com/reacher-tools/hwpanel/errutil"
)

// Range describes an integer input widget.
type Range struct {
	Min, Max, Step, Default int
}

func (r Range) Clamp(v int) int {
	return errutil.Clamp(v, r.Min, r.Max)
}

var (
	CueFrequencyRange   = Range{Min: 0, Max: 20000, Step: 50, Default: 8000}
	CueDurationRange    = Range{Min: 0, Max: 10000, Step: 50, Default: 1600}
	LaserFrequencyRange = Range{Min: 1, Max: 100, Step: 1, Default: 20}
	LaserDurationRange  = Range{Min: 1, Max: 60, Step: 5, Default: 30}
)

var ErrUnknownMode = errors.New("unknown stim mode")

// StimMode selects when the laser fires.
type StimMode string

const (
	StimCycle       StimMode = "Cycle"
	StimActivePress StimMode = "Active-Press"
)

var StimModes = []StimMode{StimCycle, StimActivePress}

func ParseStimMode(s string) (StimMode, error) {
	for _, m := range StimModes {
		if strings.EqualFold(s, string(m)) {
			return m, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownMode, s)
}

// CueSettings are the cue tone widget values: frequency in Hz, duration in ms.
type CueSettings struct {
	Frequency int `toml:"frequency"`
	Duration  int `toml:"duration_ms"`
}

func DefaultCueSettings() CueSettings {
	return CueSettings{
		Frequency: CueFrequencyRange.Default,
		Duration:  CueDurationRange.Default,
	}
}

func (c CueSettings) Clamped() CueSettings {
	return CueSettings{
		Frequency: CueFrequencyRange.Clamp(c.Frequency),
		Duration:  CueDurationRange.Clamp(c.Duration),
	}
}

// LaserSettings are the laser widget values: pulse frequency in Hz, train duration in s.
type LaserSettings struct {
	Mode      StimMode `toml:"mode"`
	Frequency int      `toml:"frequency"`
	Duration  int      `toml:"duration_s"`
}

func DefaultLaserSettings() LaserSettings {
	return LaserSettings{
		Mode:      StimCycle,
		Frequency: LaserFrequencyRange.Default,
		Duration:  LaserDurationRange.Default,
	}
}

func (l LaserSettings) Clamped() LaserSettings {
	mode, err := ParseStimMode(string(l.Mode))
	if err != nil {
		mode = StimCycle
	}
	return LaserSettings{
		Mode:      mode,
		Frequency: LaserFrequencyRange.Clamp(l.Frequency),
		Duration:  LaserDurationRange.Clamp(l.Duration),
	}
}
