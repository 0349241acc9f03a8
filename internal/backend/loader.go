package backend

import (
	"context"
	"sync"
	"time"

	"github.com/atomicstack/stream-status/internal/logging/events"
	"github.com/atomicstack/stream-status/internal/twitch"
)

// Kind identifies which fetch stage produced an event.
type Kind int

const (
	KindProfile Kind = iota
	KindStream
)

func (k Kind) String() string {
	if k == KindStream {
		return "stream"
	}
	return "profile"
}

// Request names the record a fetch belongs to.
type Request struct {
	Name  string
	Token string
}

// Event carries the outcome of one fetch stage. Data holds a twitch.User for
// KindProfile and a twitch.StreamStatus for KindStream.
type Event struct {
	Kind    Kind
	Request Request
	Data    interface{}
	Err     error
}

// API is the subset of twitch.Client used by the loader.
type API interface {
	FetchUser(ctx context.Context, name string) (twitch.User, error)
	FetchStream(ctx context.Context, name string) (twitch.StreamStatus, error)
}

// Loader runs fetch stages on background goroutines and publishes their
// results on a single channel consumed by the UI loop.
type Loader struct {
	api      API
	timeout  time.Duration
	throttle *throttle

	ctx    context.Context
	cancel context.CancelFunc

	mu      sync.Mutex
	stopped bool
	events  chan Event
	wg      sync.WaitGroup
}

// NewLoader creates a loader. Requests are spaced at least interval apart and
// each stage is bounded by timeout.
func NewLoader(api API, timeout, interval time.Duration) *Loader {
	if timeout <= 0 {
		timeout = twitch.DefaultTimeout
	}
	ctx, cancel := context.WithCancel(context.Background())
	return &Loader{
		api:      api,
		timeout:  timeout,
		throttle: newThrottle(interval),
		ctx:      ctx,
		cancel:   cancel,
		events:   make(chan Event, 32),
	}
}

// Events returns the channel of fetch results. It is closed after Stop once
// every in-flight fetch has exited.
func (l *Loader) Events() <-chan Event {
	return l.events
}

// FetchProfile queues the first stage for req.
func (l *Loader) FetchProfile(req Request) {
	l.start(KindProfile, req, func(ctx context.Context) (interface{}, error) {
		return l.api.FetchUser(ctx, req.Name)
	})
}

// FetchStream queues the second stage for req.
func (l *Loader) FetchStream(req Request) {
	l.start(KindStream, req, func(ctx context.Context) (interface{}, error) {
		return l.api.FetchStream(ctx, req.Name)
	})
}

// Stop cancels outstanding fetches and closes the event channel once they
// have exited.
func (l *Loader) Stop() {
	l.mu.Lock()
	if l.stopped {
		l.mu.Unlock()
		return
	}
	l.stopped = true
	l.mu.Unlock()
	l.cancel()
	go func() {
		l.wg.Wait()
		close(l.events)
	}()
}

// Wait blocks until all fetch goroutines have exited.
func (l *Loader) Wait() {
	l.wg.Wait()
}

func (l *Loader) start(kind Kind, req Request, fetch func(context.Context) (interface{}, error)) {
	l.mu.Lock()
	if l.stopped {
		l.mu.Unlock()
		return
	}
	l.wg.Add(1)
	l.mu.Unlock()
	events.Fetch.Queue(kind.String(), req.Name)
	go l.run(kind, req, fetch)
}

func (l *Loader) run(kind Kind, req Request, fetch func(context.Context) (interface{}, error)) {
	defer l.wg.Done()

	if err := l.throttle.wait(l.ctx); err != nil {
		return
	}
	ctx, cancel := context.WithTimeout(l.ctx, l.timeout)
	data, err := fetch(ctx)
	cancel()
	if l.ctx.Err() != nil {
		return
	}
	evt := Event{Kind: kind, Request: req, Data: data, Err: err}
	select {
	case <-l.ctx.Done():
	case l.events <- evt:
	}
}
