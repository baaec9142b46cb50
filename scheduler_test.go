package droplist

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSyncSchedulerRunsFramesInline(t *testing.T) {
	var order []int
	SyncScheduler{}.RequestFrame(func() { order = append(order, 1) })
	order = append(order, 2)
	assert.Equal(t, []int{1, 2}, order)
}

func TestSyncSchedulerAfterFires(t *testing.T) {
	done := make(chan struct{})
	SyncScheduler{}.After(time.Millisecond, func() { close(done) })
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("timer callback never fired")
	}
}

func TestSyncSchedulerAfterDisposeStopsTimer(t *testing.T) {
	sub := SyncScheduler{}.After(time.Hour, func() {
		t.Error("disposed timer fired")
	})
	sub.Dispose()
	sub.Dispose()
}

func TestFrameSchedulerDrainsInSubmissionOrder(t *testing.T) {
	s := NewFrameScheduler()

	var order []int
	s.RequestFrame(func() { order = append(order, 1) })
	s.RequestFrame(func() { order = append(order, 2) })
	assert.Empty(t, order)

	s.DrainFrame()
	assert.Equal(t, []int{1, 2}, order)
}

func TestFrameSchedulerDrainsReentrantCallbacks(t *testing.T) {
	s := NewFrameScheduler()

	var order []int
	s.RequestFrame(func() {
		order = append(order, 1)
		s.RequestFrame(func() { order = append(order, 3) })
		order = append(order, 2)
	})

	// A callback queued during the drain joins the same drain.
	s.DrainFrame()
	assert.Equal(t, []int{1, 2, 3}, order)
}

func TestFrameSchedulerSignalsWake(t *testing.T) {
	s := NewFrameScheduler()
	s.RequestFrame(func() {})
	s.RequestFrame(func() {}) // coalesces into the pending signal

	select {
	case <-s.Wake():
	case <-time.After(time.Second):
		t.Fatal("no wake signal for pending callbacks")
	}
}

func TestFrameSchedulerAfterEnqueuesOntoFrameQueue(t *testing.T) {
	s := NewFrameScheduler()

	called := false
	s.After(time.Millisecond, func() { called = true })

	select {
	case <-s.Wake():
	case <-time.After(time.Second):
		t.Fatal("timer never reached the frame queue")
	}
	require.False(t, called)

	s.DrainFrame()
	assert.True(t, called)
}

func TestFrameSchedulerAfterDisposeDropsCallback(t *testing.T) {
	s := NewFrameScheduler()

	sub := s.After(50*time.Millisecond, func() {
		t.Error("disposed delay callback reached the queue")
	})
	sub.Dispose()

	time.Sleep(100 * time.Millisecond)
	s.DrainFrame()
}
