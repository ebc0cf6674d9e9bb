package persistence

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/reacher-tools/hwpanel/hardware"
	"github.com/reacher-tools/hwpanel/serialapi"
)

func TestLoadMissingFileGivesDefaults(t *testing.T) {
	s := NewSettingsStoreAt(filepath.Join(t.TempDir(), "settings.toml"))
	got, err := s.Load()
	if err != nil {
		t.Fatal(err)
	}
	if got != DefaultSettings() {
		t.Errorf("got %+v", got)
	}
}

func TestSaveThenLoad(t *testing.T) {
	s := NewSettingsStoreAt(filepath.Join(t.TempDir(), "nested", "settings.toml"))
	want := Settings{
		API:   serialapi.Endpoint{Host: "10.0.0.7", Port: 7000},
		Cue:   hardware.CueSettings{Frequency: 4000, Duration: 500},
		Laser: hardware.LaserSettings{Mode: hardware.StimActivePress, Frequency: 40, Duration: 10},
	}
	if err := s.Save(want); err != nil {
		t.Fatal(err)
	}
	got, err := s.Load()
	if err != nil {
		t.Fatal(err)
	}
	if got != want {
		t.Errorf("got %+v, want %+v", got, want)
	}
}

func TestLoadClampsOutOfRange(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.toml")
	raw := `
[cue]
frequency = 99999
duration_ms = -5

[laser]
mode = "strobe"
frequency = 0
duration_s = 600
`
	if err := os.WriteFile(path, []byte(raw), 0o644); err != nil {
		t.Fatal(err)
	}
	got, err := NewSettingsStoreAt(path).Load()
	if err != nil {
		t.Fatal(err)
	}
	if got.Cue.Frequency != 20000 || got.Cue.Duration != 0 {
		t.Errorf("cue = %+v", got.Cue)
	}
	if got.Laser.Mode != hardware.StimCycle || got.Laser.Frequency != 1 || got.Laser.Duration != 60 {
		t.Errorf("laser = %+v", got.Laser)
	}
	if got.API != DefaultSettings().API {
		t.Errorf("api = %+v", got.API)
	}
}

func TestLoadRejectsGarbage(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.toml")
	os.WriteFile(path, []byte("[cue\nfrequency = "), 0o644)
	if _, err := NewSettingsStoreAt(path).Load(); err == nil {
		t.Error("expected parse error")
	}
}
