package hardware_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strconv"
	"testing"
	"time"

	"github.com/go-logr/logr"

	"github.com/reacher-tools/hwpanel/dashboard"
	"github.com/reacher-tools/hwpanel/hardware"
	"github.com/reacher-tools/hwpanel/serialapi"
	"github.com/reacher-tools/hwpanel/simulator"
)

type rig struct {
	sim  *simulator.Server
	dash *dashboard.Dashboard
	tab  *hardware.Tab
}

func newRig(t *testing.T) *rig {
	t.Helper()
	sim := simulator.New(logr.Discard())
	srv := httptest.NewServer(sim)
	t.Cleanup(srv.Close)

	u, err := url.Parse(srv.URL)
	if err != nil {
		t.Fatal(err)
	}
	port, _ := strconv.Atoi(u.Port())
	cfg := &serialapi.Config{Host: u.Hostname(), Port: port, Timeout: 2 * time.Second}

	dash := dashboard.New(cfg, 50, nil, logr.Discard())
	if err := dash.Connect(context.Background(), cfg.Endpoint()); err != nil {
		t.Fatalf("Connect: %v", err)
	}
	dash.ClearLog()

	client := serialapi.NewClient(cfg.Timeout, logr.Discard())
	return &rig{sim: sim, dash: dash, tab: hardware.NewTab(dash, client, nil, logr.Discard())}
}

func TestArmDevicesAgainstSimulator(t *testing.T) {
	r := newRig(t)
	r.tab.ArmDevices(context.Background(), []string{"Pump", "Laser", "Unknown"})

	if !r.sim.Armed("PUMP") || !r.sim.Armed("LASER") {
		t.Error("rig should see PUMP and LASER armed")
	}
	if n := len(r.sim.Commands()); n != 2 {
		t.Errorf("rig received %d commands", n)
	}
	if r.dash.Errors() != 0 {
		t.Errorf("unexpected errors: %v", r.dash.Entries())
	}
}

func TestCueConfigurationPartialFailure(t *testing.T) {
	r := newRig(t)
	r.sim.FailAfter(1, 1, http.StatusInternalServerError)

	r.tab.SendCueConfiguration(context.Background())

	cmds := r.sim.Commands()
	if len(cmds) != 2 {
		t.Fatalf("rig received %v", cmds)
	}
	if cmds[0].Command != "SET_FREQUENCY_CS:8000" || cmds[0].Status != http.StatusOK {
		t.Errorf("first POST = %+v", cmds[0])
	}
	if v, _ := r.sim.Param("SET_FREQUENCY_CS"); v != "8000" {
		t.Errorf("frequency should have reached the rig, got %q", v)
	}
	if _, ok := r.sim.Param("SET_DURATION_CS"); ok {
		t.Error("duration must not have been applied")
	}
	entries := r.dash.Entries()
	if len(entries) != 1 || entries[0].Kind != dashboard.Error || entries[0].Message != "Failed to send CS configuration" {
		t.Errorf("log = %v", entries)
	}
}

func TestDisconnectedTabSendsNothing(t *testing.T) {
	r := newRig(t)
	r.dash.Disconnect()
	r.dash.ClearLog()

	r.tab.Toggle(context.Background(), hardware.RHLever)

	if n := len(r.sim.Commands()); n != 0 {
		t.Errorf("rig received %d commands", n)
	}
	entries := r.dash.Entries()
	if len(entries) != 1 || entries[0].Message != hardware.NotConnectedMessage {
		t.Errorf("log = %v", entries)
	}
}

func TestLaserConfigurationReachesRig(t *testing.T) {
	r := newRig(t)
	r.tab.SetLaserSettings(hardware.LaserSettings{Mode: hardware.StimActivePress, Frequency: 15, Duration: 20})
	r.tab.SendLaserConfiguration(context.Background())

	want := map[string]string{"LASER_STIM_MODE": "ACTIVE-PRESS", "LASER_DURATION": "20", "LASER_FREQUENCY": "15"}
	for k, v := range want {
		if got, _ := r.sim.Param(k); got != v {
			t.Errorf("%s = %q, want %q", k, got, v)
		}
	}
}
