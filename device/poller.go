package device

import (
	"context"
	"log/slog"
	"sync"
	"time"
)

// PollFunc performs one poll of a producer. For notifier-wrapped devices
// the read itself dispatches samples and errors to registered listeners,
// so the returned error is only used for logging.
type PollFunc func(ctx context.Context) error

type PollerOpts struct {
	Interval time.Duration
	Kind     Kind
	Logger   *slog.Logger
}

type PollerOpt func(*PollerOpts)

func WithInterval(interval time.Duration) PollerOpt {
	return func(o *PollerOpts) {
		o.Interval = interval
	}
}

func WithKind(kind Kind) PollerOpt {
	return func(o *PollerOpts) {
		o.Kind = kind
	}
}

func WithLogger(log *slog.Logger) PollerOpt {
	return func(o *PollerOpts) {
		o.Logger = log
	}
}

// Poller is a producer loop: it calls a poll function at a fixed interval
// for as long as the driver is started. It implements Driver so it can be
// managed through a Registry.
type Poller struct {
	poll     PollFunc
	interval time.Duration
	kind     Kind
	log      *slog.Logger

	mu     sync.Mutex
	cancel context.CancelFunc
	done   chan struct{}
}

func NewPoller(poll PollFunc, opts ...PollerOpt) *Poller {
	o := PollerOpts{
		Interval: time.Second,
		Kind:     Temperature,
		Logger:   slog.Default(),
	}
	for _, opt := range opts {
		opt(&o)
	}
	return &Poller{
		poll:     poll,
		interval: o.Interval,
		kind:     o.Kind,
		log:      o.Logger,
	}
}

func (p *Poller) Start() error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.cancel != nil {
		return ErrAlreadyStarted
	}
	ctx, cancel := context.WithCancel(context.Background())
	p.cancel = cancel
	p.done = make(chan struct{})
	go p.run(ctx, p.done)
	return nil
}

func (p *Poller) run(ctx context.Context, done chan struct{}) {
	defer close(done)
	ticker := time.NewTicker(p.interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if err := p.poll(ctx); err != nil {
				// listeners were already notified through the error set
				p.log.Debug("poll failed", "kind", p.kind, "error", err)
			}
		}
	}
}

func (p *Poller) Stop() error {
	p.mu.Lock()
	cancel, done := p.cancel, p.done
	p.cancel, p.done = nil, nil
	p.mu.Unlock()
	if cancel == nil {
		return nil
	}
	cancel()
	<-done
	return nil
}

func (p *Poller) Restart() error {
	if err := p.Stop(); err != nil {
		return err
	}
	return p.Start()
}

func (p *Poller) Started() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.cancel != nil
}

func (p *Poller) Kind() Kind {
	return p.kind
}

var _ Driver = &Poller{}
