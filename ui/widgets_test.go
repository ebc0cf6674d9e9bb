package ui

import "testing"

func TestFormatUnit(t *testing.T) {
	if got := formatUnit("Hz")(8000); got != "8000 Hz" {
		t.Errorf("got %q", got)
	}
}

func TestParseFontSpec(t *testing.T) {
	name, size, err := parseFontSpec("Go-Bold-18")
	if err != nil || name != "Go-Bold" || size != 18 {
		t.Errorf("got %q %v %v", name, size, err)
	}
	for _, bad := range []string{"Go", "Go-x", "Go-0"} {
		if _, _, err := parseFontSpec(bad); err == nil {
			t.Errorf("%q should not parse", bad)
		}
	}
}
