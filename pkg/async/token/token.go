package token

import (
	"context"
	"sync"
	"time"
)

// CancellationSource is a shared, triggerable cancellation signal. It
// triggers at most once: concurrent or repeated triggers fire each
// registered callback exactly one time. After triggering it stays
// queryable, but callbacks never re-fire.
type CancellationSource struct {
	mu        sync.Mutex
	ctx       context.Context
	cancel    context.CancelFunc
	timer     *time.Timer
	regs      []*Registration
	triggered bool
}

// Registration is one callback registered against a source. Dispose revokes
// it; a disposed callback does not fire on trigger.
type Registration struct {
	src      *CancellationSource
	callback func()
	disposed bool
}

// Source creates a fresh, untriggered cancellation source.
func Source() *CancellationSource {
	ctx, cancel := context.WithCancel(context.Background())
	return &CancellationSource{ctx: ctx, cancel: cancel}
}

// SourceAfter creates a source that auto-triggers once d has elapsed,
// measured on the monotonic clock from creation. d <= 0 triggers
// immediately.
func SourceAfter(d time.Duration) *CancellationSource {
	s := Source()
	s.CancelAfter(d)
	return s
}

// Register creates a fresh source with one callback registered against it,
// returning both so the caller can trigger or dispose later.
func Register(callback func()) (*CancellationSource, *Registration) {
	s := Source()
	regs := s.RegisterAll(callback)
	return s, regs[0]
}

// Cancel triggers the source now. Idempotent.
func (s *CancellationSource) Cancel() {
	s.mu.Lock()
	if s.triggered {
		s.mu.Unlock()
		return
	}
	s.triggered = true
	if s.timer != nil {
		s.timer.Stop()
		s.timer = nil
	}
	pending := make([]func(), 0, len(s.regs))
	for _, r := range s.regs {
		if !r.disposed {
			pending = append(pending, r.callback)
		}
	}
	s.cancel()
	s.mu.Unlock()

	// registration order, outside the lock so callbacks may touch the source
	for _, cb := range pending {
		cb()
	}
}

// CancelAfter (re)schedules the auto-trigger for d from now, replacing any
// pending schedule. A no-op on an already triggered source.
func (s *CancellationSource) CancelAfter(d time.Duration) {
	if d <= 0 {
		s.Cancel()
		return
	}

	s.mu.Lock()
	if s.triggered {
		s.mu.Unlock()
		return
	}
	if s.timer != nil {
		s.timer.Stop()
	}
	s.timer = time.AfterFunc(d, s.Cancel)
	s.mu.Unlock()
}

// RegisterAll registers each callback, in order, against this source's
// cancellation signal. On trigger the surviving callbacks fire in
// registration order. Registering against an already triggered source fires
// the callback immediately.
func (s *CancellationSource) RegisterAll(callbacks ...func()) []*Registration {
	out := make([]*Registration, 0, len(callbacks))

	s.mu.Lock()
	fired := s.triggered
	for _, cb := range callbacks {
		r := &Registration{src: s, callback: cb, disposed: fired}
		if !fired {
			s.regs = append(s.regs, r)
		}
		out = append(out, r)
	}
	s.mu.Unlock()

	if fired {
		for _, r := range out {
			r.callback()
		}
	}
	return out
}

// Context is cancelled when the source triggers; the bridge to code that
// consumes cancellation as a context.
func (s *CancellationSource) Context() context.Context {
	return s.ctx
}

func (s *CancellationSource) Triggered() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.triggered
}

// Dispose revokes the registration. Disposing after the callback has fired,
// or disposing twice, is a no-op.
func (r *Registration) Dispose() {
	r.src.mu.Lock()
	r.disposed = true
	r.src.mu.Unlock()
}

var (
	defaultOnce sync.Once
	defaultSrc  *CancellationSource
)

// Default is the process-wide ambient source, created on first use and
// never implicitly replaced. Combinators fall back to it when no explicit
// source is supplied.
func Default() *CancellationSource {
	defaultOnce.Do(func() {
		defaultSrc = Source()
	})
	return defaultSrc
}
