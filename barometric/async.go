package barometric

import (
	"context"
	"log/slog"
	"sync"

	"github.com/mklimuk/virtualdev"
	"github.com/mklimuk/virtualdev/device"
)

const defaultQueueDepth = 4

type AsyncOpts struct {
	QueueDepth int
	Logger     *slog.Logger
}

type AsyncOpt func(*AsyncOpts)

func WithQueueDepth(n int) AsyncOpt {
	return func(o *AsyncOpts) {
		o.QueueDepth = n
	}
}

func WithLogger(log *slog.Logger) AsyncOpt {
	return func(o *AsyncOpts) {
		o.Logger = log
	}
}

// Async is the asynchronous barometer variant: RequestSample never blocks
// on the measurement itself, it only enqueues a request. A worker goroutine
// performs the reads; results are observable exclusively through the
// notifier's listeners. Async implements device.Driver.
type Async struct {
	notifier *Notifier
	log      *slog.Logger
	depth    int

	mu       sync.Mutex
	requests chan struct{}
	cancel   context.CancelFunc
	done     chan struct{}
}

func NewAsync(notifier *Notifier, opts ...AsyncOpt) *Async {
	o := AsyncOpts{QueueDepth: defaultQueueDepth, Logger: slog.Default()}
	for _, opt := range opts {
		opt(&o)
	}
	if o.QueueDepth <= 0 {
		o.QueueDepth = defaultQueueDepth
	}
	return &Async{notifier: notifier, log: o.Logger, depth: o.QueueDepth}
}

// RequestSample enqueues a request for a new pressure/altitude sample.
// It returns virtualdev.ErrQueueFull when the request queue is full and
// virtualdev.ErrNotStarted when the worker is not running.
func (a *Async) RequestSample() error {
	a.mu.Lock()
	requests := a.requests
	a.mu.Unlock()
	if requests == nil {
		return virtualdev.ErrNotStarted
	}
	select {
	case requests <- struct{}{}:
		return nil
	default:
		return virtualdev.ErrQueueFull
	}
}

func (a *Async) Start() error {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.cancel != nil {
		return device.ErrAlreadyStarted
	}
	ctx, cancel := context.WithCancel(context.Background())
	a.cancel = cancel
	a.requests = make(chan struct{}, a.depth)
	a.done = make(chan struct{})
	go a.run(ctx, a.requests, a.done)
	return nil
}

func (a *Async) run(ctx context.Context, requests <-chan struct{}, done chan struct{}) {
	defer close(done)
	for {
		select {
		case <-ctx.Done():
			return
		case <-requests:
			if _, err := a.notifier.measure(ctx); err != nil {
				// error listeners were already notified
				a.log.Debug("async measurement failed", "error", err)
			}
		}
	}
}

func (a *Async) Stop() error {
	a.mu.Lock()
	cancel, done := a.cancel, a.done
	a.cancel, a.done, a.requests = nil, nil, nil
	a.mu.Unlock()
	if cancel == nil {
		return nil
	}
	cancel()
	<-done
	return nil
}

func (a *Async) Restart() error {
	if err := a.Stop(); err != nil {
		return err
	}
	return a.Start()
}

func (a *Async) Started() bool {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.cancel != nil
}

func (a *Async) Kind() device.Kind {
	return device.Barometer
}

var _ device.Driver = &Async{}
