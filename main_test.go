package main

import (
	"testing"

	"github.com/go-logr/logr"

	"github.com/reacher-tools/hwpanel/dashboard"
	"github.com/reacher-tools/hwpanel/hardware"
	"github.com/reacher-tools/hwpanel/persistence"
	"github.com/reacher-tools/hwpanel/serialapi"
)

func TestDefaultConfigSeededFromSettings(t *testing.T) {
	saved := persistence.Settings{API: serialapi.Endpoint{Host: "rig-3.local", Port: 7070}}
	cfg := defaultConfig(saved)
	if cfg.API.Host != "rig-3.local" || cfg.API.Port != 7070 {
		t.Errorf("api = %+v", cfg.API)
	}
	if cfg.API.Timeout != serialapi.DefaultTimeout {
		t.Errorf("timeout = %v", cfg.API.Timeout)
	}
	if cfg.UI.FPS == 0 || cfg.UI.LogLines == 0 {
		t.Errorf("ui = %+v", cfg.UI)
	}
}

func TestDefaultConfigIgnoresEmptySettings(t *testing.T) {
	cfg := defaultConfig(persistence.Settings{})
	want := serialapi.DefaultConfig()
	if cfg.API.Host != want.Host || cfg.API.Port != want.Port {
		t.Errorf("api = %+v", cfg.API)
	}
}

func TestSnapshot(t *testing.T) {
	cfg := &serialapi.Config{Host: "10.1.1.1", Port: 6000}
	dash := dashboard.New(cfg, 10, nil, logr.Discard())
	cue := hardware.CueSettings{Frequency: 1000, Duration: 200}
	laser := hardware.DefaultLaserSettings()

	got := snapshot(dash, cue, laser)
	if got.API != cfg.Endpoint() || got.Cue != cue || got.Laser != laser {
		t.Errorf("snapshot = %+v", got)
	}
}
