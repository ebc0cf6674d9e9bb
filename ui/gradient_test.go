package ui

import "testing"

func TestTraceColorEnds(t *testing.T) {
	if traceColor(1) != traceGradient[0] {
		t.Errorf("1 Hz = %v, want %v", traceColor(1), traceGradient[0])
	}
	if traceColor(100) != traceGradient[255] {
		t.Errorf("100 Hz = %v, want %v", traceColor(100), traceGradient[255])
	}
	// out of range clamps
	if traceColor(-3) != traceGradient[0] || traceColor(1000) != traceGradient[255] {
		t.Error("out-of-range frequencies should clamp to the gradient ends")
	}
}

func TestTraceGradientOpaque(t *testing.T) {
	for i, c := range traceGradient {
		if c.A != 0xff {
			t.Fatalf("entry %d alpha = %d", i, c.A)
		}
	}
}
