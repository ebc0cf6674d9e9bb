package ui

import (
	"testing"
	"time"

	"github.com/reacher-tools/hwpanel/dashboard"
)

func TestFormatLogTail(t *testing.T) {
	at := time.Date(2024, 5, 1, 9, 30, 0, 0, time.UTC)
	entries := []dashboard.Entry{
		{Time: at, Kind: dashboard.Response, Message: "one"},
		{Time: at, Kind: dashboard.Response, Message: "two"},
		{Time: at, Kind: dashboard.Error, Message: "Failed to arm or disarm pump", Detail: "500 Internal Server Error"},
	}
	got := formatLog(entries, 2)
	want := "[09:30:00] two\n[09:30:00] ERROR Failed to arm or disarm pump: 500 Internal Server Error"
	if got != want {
		t.Errorf("got %q\nwant %q", got, want)
	}
	if formatLog(nil, 5) != "" {
		t.Error("empty log should render empty")
	}
}

func TestStatusLabel(t *testing.T) {
	if got := statusLabel(true, "127.0.0.1:6060"); got != "Connected: 127.0.0.1:6060" {
		t.Errorf("got %q", got)
	}
	if got := statusLabel(false, "127.0.0.1:6060"); got != "Not connected" {
		t.Errorf("got %q", got)
	}
}
