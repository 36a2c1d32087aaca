// Package asynchook decouples hook callbacks from the store's hot path.
// Events are handed to a bounded queue served by worker goroutines; when the
// queue is full the event is dropped rather than blocking the caller.
package asynchook

import (
	"sync"

	"github.com/keystow/keystow"
)

type Hooks struct {
	inner keystow.Hooks
	q     chan func()
	wg    sync.WaitGroup
	once  sync.Once
}

var _ keystow.Hooks = (*Hooks)(nil)

func New(inner keystow.Hooks, workers, qlen int) *Hooks {
	if workers <= 0 {
		workers = 1
	}
	if qlen <= 0 {
		qlen = 1024
	}

	h := &Hooks{inner: inner, q: make(chan func(), qlen)}
	h.wg.Add(workers)
	for i := 0; i < workers; i++ {
		go func() {
			defer h.wg.Done()
			for f := range h.q {
				f()
			}
		}()
	}
	return h
}

func (h *Hooks) Close() {
	h.once.Do(func() {
		close(h.q)
		h.wg.Wait()
	})
}

func (h *Hooks) try(f func()) {
	select {
	case h.q <- f:
	default: // drop
	}
}

func (h *Hooks) EntryWritten(name string, size int) {
	h.try(func() { h.inner.EntryWritten(name, size) })
}
func (h *Hooks) EntryRemoved(name string, existed bool) {
	h.try(func() { h.inner.EntryRemoved(name, existed) })
}
func (h *Hooks) TokenSkipped(token string) { h.try(func() { h.inner.TokenSkipped(token) }) }
func (h *Hooks) NamespaceCleared(removed int) {
	h.try(func() { h.inner.NamespaceCleared(removed) })
}
