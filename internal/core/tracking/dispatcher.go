package tracking

import (
	"context"
	"sync"
	"time"
)

// Logger is the subset of *zap.SugaredLogger the tracking package writes to
type Logger interface {
	Debugw(msg string, keysAndValues ...interface{})
	Infow(msg string, keysAndValues ...interface{})
	Warnw(msg string, keysAndValues ...interface{})
	Errorw(msg string, keysAndValues ...interface{})
}

// Task is one fire-and-forget write
type Task struct {
	Name string
	Run  func(ctx context.Context) error
}

// Dispatcher runs tracking writes on a fixed pool of background workers.
// Results never travel back to the submitter: failures are logged and dropped.
type Dispatcher struct {
	tasks   chan Task
	logger  Logger
	timeout time.Duration

	mu     sync.RWMutex
	closed bool
	wg     sync.WaitGroup
}

// NewDispatcher starts workers goroutines draining a queue of queueSize tasks.
// timeout bounds each store write; zero means no bound.
func NewDispatcher(workers, queueSize int, timeout time.Duration, logger Logger) *Dispatcher {
	if workers < 1 {
		workers = 1
	}
	if queueSize < 0 {
		queueSize = 0
	}

	d := &Dispatcher{
		tasks:   make(chan Task, queueSize),
		logger:  logger,
		timeout: timeout,
	}

	d.wg.Add(workers)
	for i := 0; i < workers; i++ {
		go d.work()
	}

	return d
}

func (d *Dispatcher) work() {
	defer d.wg.Done()

	for task := range d.tasks {
		d.run(task)
	}
}

func (d *Dispatcher) run(task Task) {
	defer func() {
		if r := recover(); r != nil {
			d.logger.Errorw("tracking task panicked", "task", task.Name, "panic", r)
		}
	}()

	ctx := context.Background()
	if d.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, d.timeout)
		defer cancel()
	}

	if err := task.Run(ctx); err != nil {
		d.logger.Errorw("tracking write failed", "task", task.Name, "error", err)
	}
}

// Submit queues a task without blocking. It returns false when the task was
// dropped because the queue is full or the dispatcher is closed.
func (d *Dispatcher) Submit(task Task) bool {
	d.mu.RLock()
	defer d.mu.RUnlock()

	if d.closed {
		d.logger.Warnw("tracking dispatcher closed, dropping task", "task", task.Name)
		return false
	}

	select {
	case d.tasks <- task:
		return true
	default:
		d.logger.Warnw("tracking queue full, dropping task", "task", task.Name)
		return false
	}
}

// Close stops accepting tasks and waits until the queued ones have run
func (d *Dispatcher) Close() {
	d.mu.Lock()
	if d.closed {
		d.mu.Unlock()
		return
	}
	d.closed = true
	close(d.tasks)
	d.mu.Unlock()

	d.wg.Wait()
}
