package simulator

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-logr/logr"
)

func post(t *testing.T, s *Server, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/serial/command", bytes.NewBufferString(body))
	rec := httptest.NewRecorder()
	s.ServeHTTP(rec, req)
	return rec
}

func TestArmAndDisarm(t *testing.T) {
	s := New(logr.Discard())
	if rec := post(t, s, `{"command":"ARM_PUMP"}`); rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	if !s.Armed("PUMP") {
		t.Error("PUMP should be armed")
	}
	post(t, s, `{"command":"DISARM_PUMP"}`)
	if s.Armed("PUMP") {
		t.Error("PUMP should be disarmed")
	}
	if n := len(s.Commands()); n != 2 {
		t.Errorf("recorded %d commands", n)
	}
}

func TestParams(t *testing.T) {
	s := New(logr.Discard())
	for _, c := range []string{"SET_FREQUENCY_CS:8000", "LASER_STIM_MODE_ACTIVE-PRESS", "ACTIVE_LEVER_RH"} {
		if rec := post(t, s, `{"command":"`+c+`"}`); rec.Code != http.StatusOK {
			t.Fatalf("%s: status %d", c, rec.Code)
		}
	}
	if v, _ := s.Param("SET_FREQUENCY_CS"); v != "8000" {
		t.Errorf("SET_FREQUENCY_CS = %q", v)
	}
	if v, _ := s.Param("LASER_STIM_MODE"); v != "ACTIVE-PRESS" {
		t.Errorf("LASER_STIM_MODE = %q", v)
	}
	if v, _ := s.Param("ACTIVE_LEVER"); v != "RH" {
		t.Errorf("ACTIVE_LEVER = %q", v)
	}
}

func TestRejectsUnknownAndMalformed(t *testing.T) {
	s := New(logr.Discard())
	if rec := post(t, s, `{"command":"ARM_TOASTER"}`); rec.Code != http.StatusBadRequest {
		t.Errorf("unknown command status = %d", rec.Code)
	}
	if rec := post(t, s, `not json`); rec.Code != http.StatusBadRequest {
		t.Errorf("malformed status = %d", rec.Code)
	}
	// malformed bodies are not recorded, unknown commands are
	if n := len(s.Commands()); n != 1 {
		t.Errorf("recorded %d", n)
	}
}

func TestFailNext(t *testing.T) {
	s := New(logr.Discard())
	s.FailNext(1, http.StatusServiceUnavailable)
	if rec := post(t, s, `{"command":"ARM_LASER"}`); rec.Code != http.StatusServiceUnavailable {
		t.Errorf("status = %d", rec.Code)
	}
	if s.Armed("LASER") {
		t.Error("failed command must not be applied")
	}
	if rec := post(t, s, `{"command":"ARM_LASER"}`); rec.Code != http.StatusOK {
		t.Errorf("fault should clear, status = %d", rec.Code)
	}
}

func TestListAndMethodRouting(t *testing.T) {
	s := New(logr.Discard())
	post(t, s, `{"command":"ARM_CS"}`)

	rec := httptest.NewRecorder()
	s.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/serial/commands", nil))
	var got []Received
	if err := json.NewDecoder(rec.Body).Decode(&got); err != nil {
		t.Fatal(err)
	}
	if len(got) != 1 || got[0].Command != "ARM_CS" {
		t.Errorf("list = %+v", got)
	}

	rec = httptest.NewRecorder()
	s.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/serial/command", nil))
	if rec.Code != http.StatusMethodNotAllowed {
		t.Errorf("GET on command endpoint = %d", rec.Code)
	}
}
