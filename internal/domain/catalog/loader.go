// internal/domain/catalog/loader.go
package catalog

import (
	"context"
	"errors"
	"sync"

	"github.com/sirupsen/logrus"
)

// ErrNotStarted is returned by Wait before Start has been called
var ErrNotStarted = errors.New("catalog loader not started")

// Loader fetches the catalog exactly once per mount and exposes its state.
//
// idle -> loading -> loaded | errored. Close tears the mount down; a fetch
// that settles afterwards is dropped without touching the state.
type Loader struct {
	source Source
	logger *logrus.Logger

	mu      sync.RWMutex
	state   State
	started bool
	closed  bool
	cancel  context.CancelFunc
	done    chan struct{}
}

// NewLoader creates an idle loader
func NewLoader(source Source, logger *logrus.Logger) *Loader {
	return &Loader{
		source: source,
		logger: logger,
		state:  State{Products: []Product{}, Status: StatusIdle},
		done:   make(chan struct{}),
	}
}

// Start begins the single fetch for this mount. It returns false when the
// loader was already started or closed.
func (l *Loader) Start(ctx context.Context) bool {
	l.mu.Lock()
	if l.started || l.closed {
		l.mu.Unlock()
		return false
	}

	fetchCtx, cancel := context.WithCancel(ctx)
	l.started = true
	l.cancel = cancel
	l.state = State{Products: []Product{}, Status: StatusLoading, IsLoading: true}
	l.mu.Unlock()

	l.logger.Info("Loading product catalog")

	go l.fetch(fetchCtx)
	return true
}

// State returns a snapshot of the catalog state. The product slice is a copy.
func (l *Loader) State() State {
	l.mu.RLock()
	defer l.mu.RUnlock()

	snapshot := l.state
	if l.state.Products != nil {
		snapshot.Products = make([]Product, len(l.state.Products))
		copy(snapshot.Products, l.state.Products)
	}
	return snapshot
}

// Wait blocks until the fetch has settled or ctx is done
func (l *Loader) Wait(ctx context.Context) error {
	l.mu.RLock()
	started := l.started
	l.mu.RUnlock()

	if !started {
		return ErrNotStarted
	}

	select {
	case <-l.done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Close tears the mount down and cancels an in-flight fetch
func (l *Loader) Close() {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.closed {
		return
	}
	l.closed = true
	if l.cancel != nil {
		l.cancel()
	}
}

func (l *Loader) fetch(ctx context.Context) {
	defer close(l.done)

	products, err := l.source.FetchProducts(ctx)

	l.mu.Lock()
	defer l.mu.Unlock()

	if l.closed {
		l.logger.Debug("Discarding catalog result after teardown")
		return
	}

	if err != nil {
		l.state = State{Products: []Product{}, Status: StatusErrored, Error: errorMessage(err)}
		l.logger.WithError(err).Error("Failed to load product catalog")
		return
	}

	if products == nil {
		products = []Product{}
	}
	l.state = State{Products: products, Status: StatusLoaded}
	l.logger.WithField("products", len(products)).Info("Product catalog loaded")
}

func errorMessage(err error) string {
	if msg := err.Error(); msg != "" {
		return msg
	}
	return "Unknown error"
}
