package ui

import (
	"context"

	"github.com/go-logr/logr"
)

type job struct {
	name string
	fn   func(context.Context)
}

// dispatcher runs handlers one at a time, in submission order, on a single
// goroutine.
type dispatcher struct {
	jobs chan job
	log  logr.Logger
}

func newDispatcher(depth int, log logr.Logger) *dispatcher {
	return &dispatcher{
		jobs: make(chan job, depth),
		log:  log,
	}
}

// submit queues fn. When the queue is full the job is dropped; the operator
// is clicking faster than the instrument answers.
func (d *dispatcher) submit(name string, fn func(context.Context)) bool {
	select {
	case d.jobs <- job{name: name, fn: fn}:
		return true
	default:
		d.log.Info("Handler queue full, dropping", "handler", name)
		return false
	}
}

func (d *dispatcher) run(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			return
		case j := <-d.jobs:
			d.log.V(1).Info("Running handler", "handler", j.name)
			d.runOne(ctx, j)
		}
	}
}

func (d *dispatcher) runOne(ctx context.Context, j job) {
	defer func() {
		if r := recover(); r != nil {
			d.log.Info("Handler panicked", "handler", j.name, "panic", r)
		}
	}()
	j.fn(ctx)
}
