package serialapi

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strconv"
	"testing"
	"time"

	"github.com/go-logr/logr"
)

func endpointFor(t *testing.T, srv *httptest.Server) Endpoint {
	t.Helper()
	u, err := url.Parse(srv.URL)
	if err != nil {
		t.Fatal(err)
	}
	port, err := strconv.Atoi(u.Port())
	if err != nil {
		t.Fatal(err)
	}
	return Endpoint{Host: u.Hostname(), Port: port}
}

func TestSendPostsCommand(t *testing.T) {
	var got CommandRequest
	var path, contentType, requestID string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		path = r.URL.Path
		contentType = r.Header.Get("Content-Type")
		requestID = r.Header.Get("X-Request-Id")
		if r.Method != http.MethodPost {
			t.Errorf("method = %s", r.Method)
		}
		if err := json.NewDecoder(r.Body).Decode(&got); err != nil {
			t.Errorf("decode: %v", err)
		}
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	c := NewClient(time.Second, logr.Discard())
	if err := c.Send(context.Background(), endpointFor(t, srv), "ARM_PUMP"); err != nil {
		t.Fatalf("Send: %v", err)
	}
	if path != CommandPath {
		t.Errorf("path = %q", path)
	}
	if contentType != "application/json" {
		t.Errorf("content type = %q", contentType)
	}
	if requestID == "" {
		t.Errorf("missing request id")
	}
	if got.Command != "ARM_PUMP" {
		t.Errorf("command = %q", got.Command)
	}
}

func TestSendNon2xxIsStatusError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "unknown command", http.StatusBadRequest)
	}))
	defer srv.Close()

	c := NewClient(time.Second, logr.Discard())
	err := c.Send(context.Background(), endpointFor(t, srv), "NOPE")
	var se *StatusError
	if !errors.As(err, &se) {
		t.Fatalf("expected StatusError, got %v", err)
	}
	if se.Code != http.StatusBadRequest {
		t.Errorf("code = %d", se.Code)
	}
	if se.Body != "unknown command" {
		t.Errorf("body = %q", se.Body)
	}
}

func TestSendTimeout(t *testing.T) {
	release := make(chan struct{})
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-release
	}))
	defer srv.Close()
	defer close(release)

	c := NewClient(50*time.Millisecond, logr.Discard())
	if err := c.Send(context.Background(), endpointFor(t, srv), "ARM_LASER"); err == nil {
		t.Fatal("expected timeout error")
	}
}

func TestSendConnectionRefused(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	ep := endpointFor(t, srv)
	srv.Close()

	c := NewClient(time.Second, logr.Discard())
	if err := c.Send(context.Background(), ep, "ARM_CS"); err == nil {
		t.Fatal("expected error from closed server")
	}
}

func TestParseEndpoint(t *testing.T) {
	cases := []struct {
		in      string
		want    Endpoint
		wantErr bool
	}{
		{"10.0.0.5:7000", Endpoint{"10.0.0.5", 7000}, false},
		{"rig.local", Endpoint{"rig.local", 6060}, false},
		{"[::1]:8080", Endpoint{"::1", 8080}, false},
		{"host:notaport", Endpoint{}, true},
		{"host:0", Endpoint{}, true},
		{"", Endpoint{}, true},
	}
	for _, c := range cases {
		got, err := ParseEndpoint(c.in, 6060)
		if (err != nil) != c.wantErr {
			t.Errorf("ParseEndpoint(%q) err = %v", c.in, err)
			continue
		}
		if got != c.want {
			t.Errorf("ParseEndpoint(%q) = %+v, want %+v", c.in, got, c.want)
		}
	}
}

func TestCommandURL(t *testing.T) {
	ep := Endpoint{Host: "127.0.0.1", Port: 6060}
	if got := ep.CommandURL(); got != "http://127.0.0.1:6060/serial/command" {
		t.Errorf("CommandURL = %q", got)
	}
}
