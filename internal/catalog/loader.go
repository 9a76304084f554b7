package catalog

import (
	"context"
	"errors"
	"sync"
)

// Status is the phase of a Loader.
type Status int

const (
	StatusLoading Status = iota
	StatusSuccess
	StatusError
)

func (s Status) String() string {
	switch s {
	case StatusLoading:
		return "loading"
	case StatusSuccess:
		return "success"
	case StatusError:
		return "error"
	default:
		return "unknown"
	}
}

// State is a snapshot of a Loader. Products is set for StatusSuccess and
// Message for StatusError.
type State struct {
	Status   Status
	Products []Product
	Message  string
}

// Fetcher retrieves the product list. *Client implements it.
type Fetcher interface {
	FetchProducts(ctx context.Context) ([]Product, error)
}

// ErrAlreadyMounted is returned by Mount while a previous mount is active.
var ErrAlreadyMounted = errors.New("catalog: loader already mounted")

// Loader runs one product fetch per mount and holds its outcome. The fetch
// is bound to the mount: Unmount cancels it, and once Unmount returns the
// state is never written by that fetch.
type Loader struct {
	fetcher Fetcher

	mu         sync.Mutex
	state      State
	mounted    bool
	generation uint64
	cancel     context.CancelFunc
	done       chan struct{}
}

// NewLoader returns an unmounted Loader in the loading state.
func NewLoader(f Fetcher) *Loader {
	done := make(chan struct{})
	close(done)
	return &Loader{
		fetcher: f,
		state:   State{Status: StatusLoading},
		done:    done,
	}
}

// Mount resets the state to loading and starts a fetch bound to ctx.
func (l *Loader) Mount(ctx context.Context) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.mounted {
		return ErrAlreadyMounted
	}
	fetchCtx, cancel := context.WithCancel(ctx)
	l.mounted = true
	l.generation++
	l.state = State{Status: StatusLoading}
	l.cancel = cancel
	l.done = make(chan struct{})

	go l.run(fetchCtx, l.generation, l.done)
	return nil
}

func (l *Loader) run(ctx context.Context, generation uint64, done chan struct{}) {
	defer close(done)

	products, err := l.fetcher.FetchProducts(ctx)
	next := State{Status: StatusSuccess, Products: products}
	if err != nil {
		next = State{Status: StatusError, Message: err.Error()}
	}

	l.mu.Lock()
	defer l.mu.Unlock()
	if !l.mounted || l.generation != generation {
		return
	}
	l.state = next
}

// Unmount cancels the in-flight fetch and discards its result. It is a no-op
// when the loader is not mounted.
func (l *Loader) Unmount() {
	l.mu.Lock()
	defer l.mu.Unlock()

	if !l.mounted {
		return
	}
	l.mounted = false
	l.cancel()
	l.cancel = nil
}

// State returns the current snapshot.
func (l *Loader) State() State {
	l.mu.Lock()
	defer l.mu.Unlock()
	s := l.state
	if s.Products != nil {
		s.Products = append([]Product(nil), s.Products...)
	}
	return s
}

// Done is closed when the fetch goroutine of the latest mount has exited.
func (l *Loader) Done() <-chan struct{} {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.done
}

// Wait blocks until the current fetch settles or ctx ends.
func (l *Loader) Wait(ctx context.Context) (State, error) {
	select {
	case <-l.Done():
		return l.State(), nil
	case <-ctx.Done():
		return State{}, ctx.Err()
	}
}
