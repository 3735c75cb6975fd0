package service

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// spyBoard counts Reload calls. The embedded interface covers the methods
// the job never touches.
type spyBoard struct {
	BoardService
	calls atomic.Int64
}

func (s *spyBoard) Reload(_ context.Context) (bool, error) {
	s.calls.Add(1)
	return false, nil
}

func TestRefreshJob_Start_ReloadsOnTicker(t *testing.T) {
	spy := &spyBoard{}
	job := NewRefreshJob(spy)

	job.Start(context.Background(), 10*time.Millisecond)
	time.Sleep(55 * time.Millisecond)
	job.Stop()

	got := spy.calls.Load()
	assert.GreaterOrEqual(t, got, int64(3), "reload should run several times, ran: %d", got)
}

func TestRefreshJob_Stop_StopsGoroutine(t *testing.T) {
	spy := &spyBoard{}
	job := NewRefreshJob(spy)

	job.Start(context.Background(), 10*time.Millisecond)
	time.Sleep(30 * time.Millisecond)
	job.Stop()

	callsAfterStop := spy.calls.Load()
	time.Sleep(30 * time.Millisecond)

	assert.Equal(t, callsAfterStop, spy.calls.Load(), "no reloads after Stop")
}

func TestRefreshJob_ZeroIntervalStaysIdle(t *testing.T) {
	spy := &spyBoard{}
	job := NewRefreshJob(spy)

	job.Start(context.Background(), 0)
	time.Sleep(20 * time.Millisecond)
	job.Stop()

	assert.Equal(t, int64(0), spy.calls.Load())
}

func TestRefreshJob_StopBeforeStart_NoPanic(t *testing.T) {
	job := NewRefreshJob(&spyBoard{})
	assert.NotPanics(t, func() { job.Stop() })
}

func TestRefreshJob_DoubleStop_NoPanic(t *testing.T) {
	job := NewRefreshJob(&spyBoard{})
	job.Start(context.Background(), 10*time.Millisecond)
	job.Stop()
	assert.NotPanics(t, func() { job.Stop() })
}

func TestRefreshJob_ContextCancelStopsJob(t *testing.T) {
	spy := &spyBoard{}
	job := NewRefreshJob(spy)
	ctx, cancel := context.WithCancel(context.Background())

	job.Start(ctx, 10*time.Millisecond)
	time.Sleep(30 * time.Millisecond)
	cancel()

	done := make(chan struct{})
	go func() {
		job.Stop()
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Stop hung after context cancellation")
	}
}

func TestRefreshJob_Restart_StopsPrevious(t *testing.T) {
	spy := &spyBoard{}
	job := NewRefreshJob(spy)

	job.Start(context.Background(), 10*time.Millisecond)
	time.Sleep(30 * time.Millisecond)
	callsBefore := spy.calls.Load()
	require.Greater(t, callsBefore, int64(0))

	job.Start(context.Background(), 10*time.Millisecond)
	time.Sleep(30 * time.Millisecond)
	job.Stop()

	assert.Greater(t, spy.calls.Load(), callsBefore, "second Start keeps reloading")
}
