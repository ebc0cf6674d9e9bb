package hlog

import (
	"testing"

	"github.com/rs/zerolog"
)

func TestParseLogLevel(t *testing.T) {
	cases := []struct {
		verbose, debug bool
		want           zerolog.Level
	}{
		{false, false, zerolog.WarnLevel},
		{true, false, zerolog.InfoLevel},
		{false, true, zerolog.DebugLevel},
		{true, true, zerolog.DebugLevel},
	}
	for _, c := range cases {
		if got := parseLogLevel(c.verbose, c.debug, zerolog.WarnLevel); got != c.want {
			t.Errorf("parseLogLevel(%v, %v) = %s, want %s", c.verbose, c.debug, got, c.want)
		}
	}
}

func TestGetLoggerBeforeInit(t *testing.T) {
	// the default logger discards; naming it must be safe
	GetLogger("test").Info("dropped")
}
