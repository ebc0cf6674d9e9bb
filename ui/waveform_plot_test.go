package ui

import (
	"testing"

	"github.com/reacher-tools/hwpanel/waveform"
)

func TestPlotAreaMapsSignalRange(t *testing.T) {
	a := plotArea{left: 10, top: 20, width: 100, height: 120}

	x, y := a.toScreen(waveform.Point{X: 0, Y: plotYMax})
	if x != 10 || y != 20 {
		t.Errorf("top-left = (%v, %v)", x, y)
	}
	x, y = a.toScreen(waveform.Point{X: waveform.Duration, Y: plotYMin})
	if x != 110 || y != 140 {
		t.Errorf("bottom-right = (%v, %v)", x, y)
	}
	// level 1 sits 0.1/1.2 of the height below the top
	if _, y := a.toScreen(waveform.Point{Y: 1}); y != 30 {
		t.Errorf("high level y = %v", y)
	}
}

func TestNewPlotAreaNeverCollapses(t *testing.T) {
	a := newPlotArea(10, 10)
	if a.width < 1 || a.height < 1 {
		t.Errorf("area = %+v", a)
	}
}

func TestSimplifyKeepsCorners(t *testing.T) {
	w := waveform.SquareWave(1)
	pts := simplify(w.StepsPre())
	// low start, rise, end of plateau, fall, low end
	if len(pts) != 5 {
		t.Fatalf("got %d points: %v", len(pts), pts)
	}
	if pts[0] != (waveform.Point{X: 0, Y: 0}) {
		t.Errorf("first = %v", pts[0])
	}
	last := pts[len(pts)-1]
	if last.X != waveform.Duration || last.Y != 0 {
		t.Errorf("last = %v", last)
	}
}

func TestSimplifyFlatTrace(t *testing.T) {
	pts := simplify(waveform.SquareWave(0).StepsPre())
	if len(pts) != 2 {
		t.Errorf("flat trace should reduce to its endpoints, got %d", len(pts))
	}
}

func TestSimplifyPreservesTransitions(t *testing.T) {
	w := waveform.SquareWave(20)
	pts := simplify(w.StepsPre())
	rises := 0
	for i := 1; i < len(pts); i++ {
		if pts[i].X == pts[i-1].X && pts[i].Y > pts[i-1].Y {
			rises++
		}
	}
	if rises < 19 || rises > 20 {
		t.Errorf("20 Hz trace has %d rising edges", rises)
	}
}
