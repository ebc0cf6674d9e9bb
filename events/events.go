package events

import "sync"

// Event is a marker interface for all panel events
type Event interface {
	isEvent()
}

// Base implementation for all events
type baseEvent struct{}

func (baseEvent) isEvent() {}

// ConnectionChanged is fired when the dashboard connects to or disconnects from the API
type ConnectionChanged struct {
	baseEvent
	Connected bool
	Address   string
}

// ResponseLogged is fired when an informational message is added to the dashboard log
type ResponseLogged struct {
	baseEvent
	Message string
}

// ErrorLogged is fired when an error entry is added to the dashboard log
type ErrorLogged struct {
	baseEvent
	Label  string
	Detail string
}

// ArmStateChanged is fired when a device's armed flag flips (before the command is acknowledged)
type ArmStateChanged struct {
	baseEvent
	Component string
	Armed     bool
	Icon      string
}

// CommandSent is fired after every POST to the instrument, successful or not
type CommandSent struct {
	baseEvent
	Command string
	Err     error
}

// Bus provides simple event publish/subscribe
type Bus struct {
	mu          sync.RWMutex
	subscribers []chan Event
}

// NewBus creates a new event bus
func NewBus() *Bus {
	return &Bus{}
}

// Subscribe creates a new event channel for receiving events
func (b *Bus) Subscribe(bufferSize int) chan Event {
	ch := make(chan Event, bufferSize)
	b.mu.Lock()
	defer b.mu.Unlock()
	b.subscribers = append(b.subscribers, ch)
	return ch
}

// Publish sends an event to all subscribers (non-blocking). A nil bus drops the event.
func (b *Bus) Publish(event Event) {
	if b == nil {
		return
	}
	b.mu.RLock()
	defer b.mu.RUnlock()
	for _, ch := range b.subscribers {
		select {
		case ch <- event:
		default:
			// Skip slow subscribers - prevents handlers from blocking on the UI
		}
	}
}
