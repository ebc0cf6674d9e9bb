// Package waveform samples the laser stimulation pattern for the preview plot.
package waveform

import (
	"fmt"
	"math"
)

const (
	// Duration of the preview window in seconds.
	Duration = 1.0
	// Samples taken over Duration, both ends included.
	Samples = 1000
)

type Waveform struct {
	Frequency int
	Times     []float64
	Levels    []float64
}

type Point struct {
	X, Y float64
}

// SquareWave samples a 50% duty-cycle square wave at the given pulse
// frequency. A 1 Hz train is drawn as a single pulse spanning the whole
// window with both end samples low. Non-positive frequencies yield a flat
// low trace.
func SquareWave(frequency int) Waveform {
	w := Waveform{
		Frequency: frequency,
		Times:     linspace(0, Duration, Samples),
		Levels:    make([]float64, Samples),
	}
	switch {
	case frequency <= 0:
	case frequency == 1:
		for i := 1; i < Samples-1; i++ {
			w.Levels[i] = 1
		}
	default:
		period := 1 / float64(frequency)
		for i, t := range w.Times {
			if math.Mod(t, period) < period/2 {
				w.Levels[i] = 1
			}
		}
	}
	return w
}

func linspace(start, stop float64, n int) []float64 {
	out := make([]float64, n)
	if n == 1 {
		out[0] = start
		return out
	}
	step := (stop - start) / float64(n-1)
	for i := range out {
		out[i] = start + float64(i)*step
	}
	out[n-1] = stop
	return out
}

func (w Waveform) Title() string {
	return fmt.Sprintf("Square Wave - %d Hz", w.Frequency)
}

func (w Waveform) HighCount() int {
	n := 0
	for _, v := range w.Levels {
		if v > 0 {
			n++
		}
	}
	return n
}

// StepsPre returns the polyline of a "steps-pre" plot: the level of sample i
// is held over the interval (t[i-1], t[i]].
func (w Waveform) StepsPre() []Point {
	if len(w.Times) == 0 {
		return nil
	}
	pts := make([]Point, 0, 2*len(w.Times)-1)
	pts = append(pts, Point{w.Times[0], w.Levels[0]})
	for i := 1; i < len(w.Times); i++ {
		pts = append(pts,
			Point{w.Times[i-1], w.Levels[i]},
			Point{w.Times[i], w.Levels[i]},
		)
	}
	return pts
}
