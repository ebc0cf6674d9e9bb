package ui

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/go-logr/logr"
)

func TestDispatcherRunsInOrder(t *testing.T) {
	d := newDispatcher(8, logr.Discard())
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var (
		mu  sync.Mutex
		got []int
		wg  sync.WaitGroup
	)
	for i := 0; i < 5; i++ {
		i := i
		wg.Add(1)
		d.submit("step", func(context.Context) {
			defer wg.Done()
			mu.Lock()
			got = append(got, i)
			mu.Unlock()
		})
	}
	go d.run(ctx)
	wg.Wait()

	for i, v := range got {
		if v != i {
			t.Fatalf("order = %v", got)
		}
	}
}

func TestDispatcherDropsWhenFull(t *testing.T) {
	d := newDispatcher(1, logr.Discard())
	if !d.submit("a", func(context.Context) {}) {
		t.Fatal("first submit should be queued")
	}
	if d.submit("b", func(context.Context) {}) {
		t.Error("second submit should be dropped")
	}
}

func TestDispatcherSurvivesPanic(t *testing.T) {
	d := newDispatcher(4, logr.Discard())
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	done := make(chan struct{})
	d.submit("boom", func(context.Context) { panic("boom") })
	d.submit("after", func(context.Context) { close(done) })
	go d.run(ctx)

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("worker stopped after a panicking handler")
	}
}
