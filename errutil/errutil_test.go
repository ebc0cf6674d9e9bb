package errutil

import (
	"errors"
	"testing"

	"github.com/go-logr/logr"
)

func TestClamp(t *testing.T) {
	cases := []struct{ v, lo, hi, want int }{
		{50, 1, 100, 50},
		{0, 1, 100, 1},
		{101, 1, 100, 100},
		{-5, 0, 20000, 0},
	}
	for _, c := range cases {
		if got := Clamp(c.v, c.lo, c.hi); got != c.want {
			t.Errorf("Clamp(%d, %d, %d) = %d, want %d", c.v, c.lo, c.hi, got, c.want)
		}
	}
}

func TestLogErrorIgnoresNil(t *testing.T) {
	// must not panic on a discard logger with nil or non-nil error
	LogError(logr.Discard(), "noop", nil)
	LogError(logr.Discard(), "boom", errors.New("boom"))
}
