// Package screen holds per-screen plan state that is refetched whenever a screen is entered
// or returned to, so a screen never shows data older than its last navigation.
package screen

import (
	"context"
	"sync"
)

// Status tags the state of a Loader.
type Status int

const (
	StatusIdle Status = iota
	StatusLoading
	StatusLoaded
	StatusErrored
)

func (s Status) String() string {
	switch s {
	case StatusIdle:
		return "idle"
	case StatusLoading:
		return "loading"
	case StatusLoaded:
		return "loaded"
	case StatusErrored:
		return "errored"
	default:
		return "unknown"
	}
}

// Snapshot is a tagged view of a Loader. Data is set only when Loaded, Err only when Errored.
type Snapshot[T any] struct {
	Status Status
	Data   T
	Err    error
}

// FetchFunc loads a screen's data from the store.
type FetchFunc[T any] func(ctx context.Context) (T, error)

// Loader runs at most one fetch at a time and publishes its outcome until the screen closes.
type Loader[T any] struct {
	fetch    FetchFunc[T]
	onChange func(Snapshot[T])

	mu     sync.Mutex
	status Status
	data   T
	err    error
	done   chan struct{} // non-nil while a fetch is in flight
	cancel context.CancelFunc
	closed bool
	seq    uint64 // bumped with every published snapshot

	// notifyMu serialises onChange; delivered is the seq of the last snapshot handed out
	notifyMu  sync.Mutex
	delivered uint64
}

// NewLoader creates an idle Loader. onChange, if set, is called after every transition,
// in transition order and never concurrently. It must not call Enter, Resume, Retry or
// Mutate on the same Loader synchronously.
func NewLoader[T any](fetch FetchFunc[T], onChange func(Snapshot[T])) *Loader[T] {
	return &Loader[T]{fetch: fetch, onChange: onChange}
}

// Enter starts a load for a newly shown screen.
func (l *Loader[T]) Enter(ctx context.Context) <-chan struct{} { return l.load(ctx) }

// Resume reloads after a child screen was dismissed; it never reuses the previous data.
// If a load is still in flight, that load is joined instead of starting another one.
func (l *Loader[T]) Resume(ctx context.Context) <-chan struct{} { return l.load(ctx) }

// Retry reloads after a failure.
func (l *Loader[T]) Retry(ctx context.Context) <-chan struct{} { return l.load(ctx) }

// load starts a fetch unless one is in flight, in which case the in-flight one's
// channel is returned. The channel closes once the outcome is applied or discarded.
func (l *Loader[T]) load(ctx context.Context) <-chan struct{} {
	l.mu.Lock()
	if l.closed {
		l.mu.Unlock()
		done := make(chan struct{})
		close(done)
		return done
	}
	if l.done != nil {
		done := l.done
		l.mu.Unlock()
		return done
	}

	fetchCtx, cancel := context.WithCancel(ctx)
	done := make(chan struct{})
	l.done = done
	l.cancel = cancel
	l.status = StatusLoading
	l.err = nil
	snap, seq := l.publishLocked()
	l.mu.Unlock()

	l.notify(seq, snap)
	go l.run(fetchCtx, cancel, done)
	return done
}

func (l *Loader[T]) run(ctx context.Context, cancel context.CancelFunc, done chan struct{}) {
	defer close(done)
	defer cancel()

	data, err := l.fetch(ctx)

	l.mu.Lock()
	l.done = nil
	l.cancel = nil
	if l.closed {
		// screen is gone: the result must not be applied
		l.mu.Unlock()
		return
	}
	if err != nil {
		var zero T
		l.status, l.data, l.err = StatusErrored, zero, err
	} else {
		l.status, l.data, l.err = StatusLoaded, data, nil
	}
	snap, seq := l.publishLocked()
	l.mu.Unlock()

	l.notify(seq, snap)
}

// publishLocked takes the snapshot for a transition and stamps its order. l.mu must be held.
func (l *Loader[T]) publishLocked() (Snapshot[T], uint64) {
	l.seq++
	return l.snapshotLocked(), l.seq
}

// notify hands s to onChange unless a later snapshot was already delivered.
func (l *Loader[T]) notify(seq uint64, s Snapshot[T]) {
	if l.onChange == nil {
		return
	}
	l.notifyMu.Lock()
	defer l.notifyMu.Unlock()
	if seq <= l.delivered {
		return
	}
	l.delivered = seq
	l.onChange(s)
}

func (l *Loader[T]) snapshotLocked() Snapshot[T] {
	s := Snapshot[T]{Status: l.status}
	switch l.status {
	case StatusLoaded:
		s.Data = l.data
	case StatusErrored:
		s.Err = l.err
	}
	return s
}

// Snapshot returns the current state.
func (l *Loader[T]) Snapshot() Snapshot[T] {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.snapshotLocked()
}

// Loading reports whether a fetch is in flight.
func (l *Loader[T]) Loading() bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.done != nil
}

// Mutate edits the loaded data in place. It is a no-op unless the Loader is Loaded.
func (l *Loader[T]) Mutate(fn func(data *T)) bool {
	l.mu.Lock()
	if l.closed || l.status != StatusLoaded {
		l.mu.Unlock()
		return false
	}
	fn(&l.data)
	snap, seq := l.publishLocked()
	l.mu.Unlock()

	l.notify(seq, snap)
	return true
}

// Close tears the screen down. An in-flight fetch is cancelled and its result dropped.
func (l *Loader[T]) Close() {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.closed {
		return
	}
	l.closed = true
	if l.cancel != nil {
		l.cancel()
	}
}
