// Package dashboard holds the session state shared by every panel tab:
// the API endpoint, whether we are connected to it, and the operator-visible
// response/error log.
package dashboard

import (
	"context"
	"errors"
	"fmt"
	"net"
	"sync"
	"time"

	"github.com/go-logr/logr"

	"github.com/reacher-tools/hwpanel/events"
	"github.com/reacher-tools/hwpanel/serialapi"
)

const DefaultLogSize = 200

var ErrNotConnected = errors.New("not connected to the API")

type EntryKind int

const (
	Response EntryKind = iota
	Error
)

type Entry struct {
	Time    time.Time
	Kind    EntryKind
	Message string
	Detail  string
}

func (e Entry) String() string {
	ts := e.Time.Format("15:04:05")
	if e.Kind == Error {
		return fmt.Sprintf("[%s] ERROR %s: %s", ts, e.Message, e.Detail)
	}
	return fmt.Sprintf("[%s] %s", ts, e.Message)
}

type Dashboard struct {
	mu        sync.RWMutex
	endpoint  serialapi.Endpoint
	connected bool
	timeout   time.Duration
	entries   *logBuf[Entry]
	bus       *events.Bus
	log       logr.Logger
	now       func() time.Time
	dial      func(ctx context.Context, network, address string) (net.Conn, error)
}

func New(cfg *serialapi.Config, logSize int, bus *events.Bus, log logr.Logger) *Dashboard {
	if logSize <= 0 {
		logSize = DefaultLogSize
	}
	d := &Dashboard{
		endpoint: cfg.Endpoint(),
		timeout:  cfg.Timeout,
		entries:  newLogBuf[Entry](logSize),
		bus:      bus,
		log:      log,
		now:      time.Now,
	}
	if d.timeout <= 0 {
		d.timeout = serialapi.DefaultTimeout
	}
	dialer := &net.Dialer{}
	d.dial = dialer.DialContext
	return d
}

// Connect probes the API host with a TCP dial and marks the session connected
// on success. Failures are recorded in the log and returned.
func (d *Dashboard) Connect(ctx context.Context, ep serialapi.Endpoint) error {
	ctx, cancel := context.WithTimeout(ctx, d.timeout)
	defer cancel()

	d.log.Info("Connecting", "address", ep.Address())
	conn, err := d.dial(ctx, "tcp", ep.Address())
	if err != nil {
		d.setConnected(false, ep)
		d.AddError("Failed to connect to API", err.Error())
		return err
	}
	conn.Close()

	d.setConnected(true, ep)
	d.AddResponse("Connected to API at " + ep.Address())
	return nil
}

func (d *Dashboard) Disconnect() {
	d.mu.RLock()
	ep, was := d.endpoint, d.connected
	d.mu.RUnlock()
	if !was {
		return
	}
	d.setConnected(false, ep)
	d.AddResponse("Disconnected from API")
}

func (d *Dashboard) setConnected(connected bool, ep serialapi.Endpoint) {
	d.mu.Lock()
	d.connected = connected
	d.endpoint = ep
	d.mu.Unlock()
	d.bus.Publish(events.ConnectionChanged{Connected: connected, Address: ep.Address()})
}

func (d *Dashboard) APIConnected() bool {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.connected
}

func (d *Dashboard) APIConfig() serialapi.Endpoint {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.endpoint
}

func (d *Dashboard) AddResponse(message string) {
	d.entries.insert(Entry{Time: d.now(), Kind: Response, Message: message})
	d.log.Info(message)
	d.bus.Publish(events.ResponseLogged{Message: message})
}

func (d *Dashboard) AddError(label string, detail string) {
	d.entries.insert(Entry{Time: d.now(), Kind: Error, Message: label, Detail: detail})
	d.log.Error(errors.New(detail), label)
	d.bus.Publish(events.ErrorLogged{Label: label, Detail: detail})
}

// Entries returns the log, oldest first.
func (d *Dashboard) Entries() []Entry {
	out := make([]Entry, 0, d.entries.len())
	d.entries.iter(func(e *Entry) {
		out = append(out, *e)
	})
	return out
}

// Errors counts the error entries currently held in the log.
func (d *Dashboard) Errors() int {
	n := 0
	d.entries.iter(func(e *Entry) {
		if e.Kind == Error {
			n++
		}
	})
	return n
}

func (d *Dashboard) ClearLog() {
	d.entries.clear()
}
