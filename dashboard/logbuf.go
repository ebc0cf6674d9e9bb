package dashboard

import "sync"

// logBuf is a fixed-capacity ring of log entries; inserting into a full
// ring evicts the oldest entry.
type logBuf[T any] struct {
	mu   sync.RWMutex
	pl   []T
	head int
	tail int
	size int
}

func newLogBuf[T any](capacity int) *logBuf[T] {
	if capacity < 1 {
		capacity = 1
	}
	return &logBuf[T]{pl: make([]T, capacity)}
}

func (lb *logBuf[T]) insert(p T) {
	lb.mu.Lock()
	defer lb.mu.Unlock()
	lb.pl[lb.head] = p
	// head == tail with entries present means we just overwrote the oldest
	if lb.head == lb.tail && lb.size > 0 {
		lb.head = (lb.head + 1) % len(lb.pl)
		lb.tail = lb.head
	} else {
		lb.head = (lb.head + 1) % len(lb.pl)
		lb.size++
	}
}

// iter calls cb on every entry, oldest first.
func (lb *logBuf[T]) iter(cb func(*T)) {
	lb.mu.RLock()
	defer lb.mu.RUnlock()
	ptr := lb.tail
	for i := 0; i < lb.size; i++ {
		cb(&lb.pl[ptr])
		ptr = (ptr + 1) % len(lb.pl)
	}
}

func (lb *logBuf[T]) clear() {
	lb.mu.Lock()
	defer lb.mu.Unlock()
	var zero T
	for i := range lb.pl {
		lb.pl[i] = zero
	}
	lb.head, lb.tail, lb.size = 0, 0, 0
}

func (lb *logBuf[T]) len() int {
	lb.mu.RLock()
	defer lb.mu.RUnlock()
	return lb.size
}
