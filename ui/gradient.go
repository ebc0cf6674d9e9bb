package ui

import (
	"image/color"
	"math"

	"github.com/tinne26/badcolor"
	"golang.org/x/image/colornames"

	"github.com/reacher-tools/hwpanel/hardware"
)

func gradientGet(stops []badcolor.Oklab, i byte) color.Color {
	pos := float64(i) * float64(len(stops)-1) / 255
	floor := math.Floor(pos)
	if floor == pos {
		return stops[int(pos)].RGBA8()
	}
	prev := stops[int(floor)]
	next := stops[int(floor)+1]
	return prev.Interpolate(next, pos-floor).RGBA8()
}

// traceGradient colors the waveform trace from slow (blue) to fast (red)
// pulse trains.
var traceGradient [256]color.RGBA

func init() {
	stops := []color.Color{
		colornames.Deepskyblue, colornames.Limegreen, colornames.Gold, colornames.Orangered,
	}
	labStops := make([]badcolor.Oklab, len(stops))
	for i := range stops {
		labStops[i] = badcolor.ToOklab(stops[i])
	}
	for i := range traceGradient {
		r, g, b, _ := gradientGet(labStops, byte(i)).RGBA()
		traceGradient[i] = color.RGBA{byte(r >> 8), byte(g >> 8), byte(b >> 8), 0xff}
	}
}

// traceColor maps a laser frequency onto the trace gradient.
func traceColor(frequency int) color.RGBA {
	r := hardware.LaserFrequencyRange
	f := r.Clamp(frequency)
	idx := (f - r.Min) * 255 / (r.Max - r.Min)
	return traceGradient[idx]
}
