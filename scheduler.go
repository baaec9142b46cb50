package droplist

import (
	"sync"
	"time"
)

// SyncScheduler runs frame callbacks inline and delays on real timers. It is
// the default scheduler and suits hosts that drive the panel from a single
// goroutine and have no repaint phase of their own.
type SyncScheduler struct{}

// RequestFrame runs fn immediately.
func (SyncScheduler) RequestFrame(fn func()) {
	fn()
}

// After runs fn on its own timer goroutine once the delay elapses. Hosts
// that require strict single-threading should use a FrameScheduler drained
// from their event loop instead.
func (SyncScheduler) After(delay time.Duration, fn func()) *Subscription {
	t := time.AfterFunc(delay, fn)
	return NewSubscription(func() { t.Stop() })
}

// FrameScheduler coalesces presentation callbacks into a queue drained by
// the host's event loop, one batch per frame. Callbacks submitted while a
// frame is being drained join the same drain, so sequential callbacks from a
// single stabilization run stay causally ordered.
type FrameScheduler struct {
	mu    sync.Mutex
	queue []func()
	wake  chan struct{}
}

// NewFrameScheduler returns an empty scheduler.
func NewFrameScheduler() *FrameScheduler {
	return &FrameScheduler{wake: make(chan struct{}, 1)}
}

// RequestFrame schedules fn to run on the next DrainFrame call.
func (s *FrameScheduler) RequestFrame(fn func()) {
	s.mu.Lock()
	s.queue = append(s.queue, fn)
	s.mu.Unlock()
	select {
	case s.wake <- struct{}{}:
	default:
	}
}

// After schedules fn onto the frame queue once the delay elapses. Disposing
// the subscription before the delay elapses drops the callback.
func (s *FrameScheduler) After(delay time.Duration, fn func()) *Subscription {
	var mu sync.Mutex
	cancelled := false
	t := time.AfterFunc(delay, func() {
		mu.Lock()
		dropped := cancelled
		mu.Unlock()
		if !dropped {
			s.RequestFrame(fn)
		}
	})
	return NewSubscription(func() {
		mu.Lock()
		cancelled = true
		mu.Unlock()
		t.Stop()
	})
}

// Wake returns a channel that receives a signal when callbacks are pending.
// Hosts select on it alongside their input events.
func (s *FrameScheduler) Wake() <-chan struct{} {
	return s.wake
}

// DrainFrame runs all pending callbacks in submission order, including any
// queued by the callbacks themselves. Call it once per frame, before
// presenting.
func (s *FrameScheduler) DrainFrame() {
	for {
		s.mu.Lock()
		if len(s.queue) == 0 {
			s.mu.Unlock()
			return
		}
		fn := s.queue[0]
		s.queue = s.queue[1:]
		s.mu.Unlock()
		fn()
	}
}
