package impl

import (
	"context"
	"io"
	"log/slog"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestLanes(idle time.Duration) *deviceLanes {
	return newDeviceLanes(slog.New(slog.NewTextHandler(io.Discard, nil)), 4, idle)
}

func TestDeviceLanes_PreservesOrderPerDevice(t *testing.T) {
	lanes := newTestLanes(time.Minute)
	deviceID := uuid.New()
	ctx := context.Background()

	var (
		mu    sync.Mutex
		order []int
		wg    sync.WaitGroup
	)
	for i := range 50 {
		wg.Add(1)
		require.NoError(t, lanes.Submit(ctx, deviceID, func() {
			defer wg.Done()
			mu.Lock()
			order = append(order, i)
			mu.Unlock()
		}))
	}
	wg.Wait()

	for i, got := range order {
		assert.Equal(t, i, got)
	}
	require.NoError(t, lanes.Close(ctx))
}

func TestDeviceLanes_DevicesRunInParallel(t *testing.T) {
	lanes := newTestLanes(time.Minute)
	ctx := context.Background()
	release := make(chan struct{})
	done := make(chan struct{})

	// The first device blocks until the second device's task has run.
	require.NoError(t, lanes.Submit(ctx, uuid.New(), func() { <-release }))
	require.NoError(t, lanes.Submit(ctx, uuid.New(), func() {
		close(release)
		close(done)
	}))

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("second device was blocked by the first")
	}
	require.NoError(t, lanes.Close(ctx))
}

func TestDeviceLanes_RecoversPanics(t *testing.T) {
	lanes := newTestLanes(time.Minute)
	deviceID := uuid.New()
	ctx := context.Background()
	ran := make(chan struct{})

	require.NoError(t, lanes.Submit(ctx, deviceID, func() { panic("boom") }))
	require.NoError(t, lanes.Submit(ctx, deviceID, func() { close(ran) }))

	select {
	case <-ran:
	case <-time.After(2 * time.Second):
		t.Fatal("lane stopped after a panic")
	}
	require.NoError(t, lanes.Close(ctx))
}

func TestDeviceLanes_ReapsIdleLanes(t *testing.T) {
	lanes := newTestLanes(20 * time.Millisecond)
	ctx := context.Background()

	require.NoError(t, lanes.Submit(ctx, uuid.New(), func() {}))
	require.NoError(t, lanes.Submit(ctx, uuid.New(), func() {}))

	assert.Eventually(t, func() bool { return lanes.Active() == 0 }, 2*time.Second, 10*time.Millisecond)
	require.NoError(t, lanes.Close(ctx))
}

func TestDeviceLanes_CloseDrainsAndRejects(t *testing.T) {
	lanes := newTestLanes(time.Minute)
	deviceID := uuid.New()
	ctx := context.Background()

	var (
		mu    sync.Mutex
		count int
	)
	for range 3 {
		require.NoError(t, lanes.Submit(ctx, deviceID, func() {
			time.Sleep(5 * time.Millisecond)
			mu.Lock()
			count++
			mu.Unlock()
		}))
	}

	require.NoError(t, lanes.Close(ctx))
	assert.Equal(t, 3, count)
	assert.ErrorIs(t, lanes.Submit(ctx, deviceID, func() {}), ErrLanesClosed)
}

func TestDeviceLanes_CloseNoticesAbandonedSubmit(t *testing.T) {
	lanes := newTestLanes(time.Minute)
	deviceID := uuid.New()
	ctx := context.Background()
	ran := make(chan struct{})

	require.NoError(t, lanes.Submit(ctx, deviceID, func() { close(ran) }))
	<-ran

	// A submitter has reserved a slot on the lane but not handed over a task.
	lanes.mu.Lock()
	ln := lanes.lanes[deviceID]
	ln.pending++
	lanes.mu.Unlock()

	closeCtx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()
	closed := make(chan error, 1)
	go func() {
		closed <- lanes.Close(closeCtx)
	}()
	time.Sleep(20 * time.Millisecond)

	// The submitter's ctx fires and it gives the slot back.
	lanes.finish(ln)

	require.NoError(t, <-closed)
	assert.Zero(t, lanes.Active())
}
