package impl

import (
	"context"
	"log/slog"
	"runtime/debug"
	"sync"
	"time"

	"pawtrack/internal/errors"

	"github.com/google/uuid"
)

// ErrLanesClosed is returned when work is submitted after shutdown began.
var ErrLanesClosed = errors.New("device lanes are closed")

type laneTask func()

// deviceLanes runs tasks for one device strictly in submission order while
// different devices proceed in parallel. Each device gets its own goroutine,
// which exits after sitting idle.
type deviceLanes struct {
	logger *slog.Logger
	buffer int
	idle   time.Duration

	mu     sync.Mutex
	lanes  map[uuid.UUID]*lane
	closed bool
	done   chan struct{}
	wg     sync.WaitGroup
}

type lane struct {
	tasks chan laneTask
	// wake is signalled whenever pending drops, so a draining lane notices
	// submitters that gave up before handing over their task.
	wake chan struct{}
	// pending counts tasks submitted but not finished. Guarded by deviceLanes.mu.
	pending int
}

func newDeviceLanes(logger *slog.Logger, buffer int, idle time.Duration) *deviceLanes {
	if buffer <= 0 {
		buffer = 1
	}

	return &deviceLanes{
		logger: logger,
		buffer: buffer,
		idle:   idle,
		lanes:  make(map[uuid.UUID]*lane),
		done:   make(chan struct{}),
	}
}

// Submit queues task on the lane of deviceID. It blocks while the lane's
// buffer is full, until ctx is done.
func (l *deviceLanes) Submit(ctx context.Context, deviceID uuid.UUID, task laneTask) error {
	l.mu.Lock()
	if l.closed {
		l.mu.Unlock()

		return ErrLanesClosed
	}
	ln, ok := l.lanes[deviceID]
	if !ok {
		ln = &lane{tasks: make(chan laneTask, l.buffer), wake: make(chan struct{}, 1)}
		l.lanes[deviceID] = ln
		l.wg.Add(1)
		go l.run(deviceID, ln)
	}
	ln.pending++
	l.mu.Unlock()

	select {
	case ln.tasks <- task:
		return nil
	case <-ctx.Done():
		l.finish(ln)

		return errors.WithStack(ctx.Err())
	}
}

// Active reports the number of live lanes.
func (l *deviceLanes) Active() int {
	l.mu.Lock()
	defer l.mu.Unlock()

	return len(l.lanes)
}

// Close stops accepting work and waits for queued tasks to drain.
func (l *deviceLanes) Close(ctx context.Context) error {
	l.mu.Lock()
	if !l.closed {
		l.closed = true
		close(l.done)
	}
	l.mu.Unlock()

	drained := make(chan struct{})
	go func() {
		l.wg.Wait()
		close(drained)
	}()

	select {
	case <-drained:
		return nil
	case <-ctx.Done():
		return errors.Wrap(ctx.Err(), "device lanes did not drain")
	}
}

func (l *deviceLanes) run(deviceID uuid.UUID, ln *lane) {
	defer l.wg.Done()

	timer := time.NewTimer(l.idle)
	defer timer.Stop()

	for {
		select {
		case task := <-ln.tasks:
			l.execute(deviceID, task)
			l.finish(ln)
			timer.Reset(l.idle)
		case <-timer.C:
			if l.reap(deviceID, ln) {
				return
			}
			timer.Reset(l.idle)
		case <-l.done:
			l.drain(deviceID, ln)

			return
		}
	}
}

func (l *deviceLanes) drain(deviceID uuid.UUID, ln *lane) {
	for !l.reap(deviceID, ln) {
		select {
		case task := <-ln.tasks:
			l.execute(deviceID, task)
			l.finish(ln)
		case <-ln.wake:
		}
	}
}

// reap removes the lane when nothing is pending on it.
func (l *deviceLanes) reap(deviceID uuid.UUID, ln *lane) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	if ln.pending > 0 {
		return false
	}
	delete(l.lanes, deviceID)

	return true
}

func (l *deviceLanes) finish(ln *lane) {
	l.mu.Lock()
	ln.pending--
	l.mu.Unlock()

	select {
	case ln.wake <- struct{}{}:
	default:
	}
}

func (l *deviceLanes) execute(deviceID uuid.UUID, task laneTask) {
	defer func() {
		if r := recover(); r != nil {
			l.logger.Error("device lane task panicked",
				slog.String("device_id", deviceID.String()),
				slog.Any("panic", r),
				slog.String("stack", string(debug.Stack())),
			)
		}
	}()

	task()
}
