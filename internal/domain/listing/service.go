// internal/domain/listing/service.go
package listing

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/your-org/storefront/internal/domain/catalog"
	"github.com/your-org/storefront/internal/pkg/session"
)

// CatalogReader exposes the current catalog snapshot
type CatalogReader interface {
	State() catalog.State
}

// Service keeps one FilterState per browser session and derives views from the catalog
type Service struct {
	store           session.Store
	catalog         CatalogReader
	defaultPageSize int
	pageSizeOptions []int
	ttl             time.Duration
	locks           *session.Locker
	logger          *logrus.Logger
}

// Options configures a listing Service
type Options struct {
	DefaultPageSize int
	PageSizeOptions []int
	TTL             time.Duration
}

// NewService creates a new listing service
func NewService(store session.Store, reader CatalogReader, opts Options, logger *logrus.Logger) *Service {
	return &Service{
		store:           store,
		catalog:         reader,
		defaultPageSize: opts.DefaultPageSize,
		pageSizeOptions: opts.PageSizeOptions,
		ttl:             opts.TTL,
		locks:           session.NewLocker(),
		logger:          logger,
	}
}

// FilterUpdate carries the fields a client wants to change; nil fields are left alone
type FilterUpdate struct {
	Search   *string `json:"search"`
	Category *string `json:"category"`
	PageSize *int    `json:"page_size"`
}

// BrowseResponse pairs the catalog status with the derived view.
// View is nil until the catalog has loaded.
type BrowseResponse struct {
	Status          catalog.Status `json:"status"`
	IsLoading       bool           `json:"is_loading"`
	Error           string         `json:"error,omitempty"`
	PageSizeOptions []int          `json:"page_size_options"`
	View            *View          `json:"view,omitempty"`
}

// DefaultFilter returns the initial FilterState for new sessions
func (s *Service) DefaultFilter() FilterState {
	return NewFilterState(s.defaultPageSize)
}

// SearchParams is a one-off browse request that does not touch session state.
// Zero PageSize means the default; zero Page means the first page.
type SearchParams struct {
	Search   string
	Category string
	PageSize int
	Page     int
}

// Search derives a view for explicit parameters, clamping Page into range
func (s *Service) Search(params SearchParams) (*BrowseResponse, error) {
	f := s.DefaultFilter().SetSearch(params.Search).SetCategory(params.Category)
	if params.PageSize != 0 {
		var err error
		if f, err = f.SetPageSize(params.PageSize); err != nil {
			return nil, err
		}
	}

	state := s.catalog.State()
	if params.Page != 0 {
		f = f.GoTo(params.Page, totalPagesFor(state, f))
	}
	return s.respond(state, f), nil
}

// Get returns the session's current view
func (s *Service) Get(ctx context.Context, sessionID string) (*BrowseResponse, error) {
	f, err := s.load(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	return s.respond(s.catalog.State(), f), nil
}

// UpdateFilter applies search, category and page size changes
func (s *Service) UpdateFilter(ctx context.Context, sessionID string, update FilterUpdate) (*BrowseResponse, error) {
	return s.mutate(ctx, sessionID, func(f FilterState, _ catalog.State) (FilterState, error) {
		if update.Search != nil {
			f = f.SetSearch(*update.Search)
		}
		if update.Category != nil {
			f = f.SetCategory(*update.Category)
		}
		if update.PageSize != nil {
			return f.SetPageSize(*update.PageSize)
		}
		return f, nil
	})
}

// Next moves the session one page forward
func (s *Service) Next(ctx context.Context, sessionID string) (*BrowseResponse, error) {
	return s.mutate(ctx, sessionID, func(f FilterState, state catalog.State) (FilterState, error) {
		return f.Next(totalPagesFor(state, f)), nil
	})
}

// Previous moves the session one page back
func (s *Service) Previous(ctx context.Context, sessionID string) (*BrowseResponse, error) {
	return s.mutate(ctx, sessionID, func(f FilterState, _ catalog.State) (FilterState, error) {
		return f.Previous(), nil
	})
}

// GoTo jumps the session to page
func (s *Service) GoTo(ctx context.Context, sessionID string, page int) (*BrowseResponse, error) {
	return s.mutate(ctx, sessionID, func(f FilterState, state catalog.State) (FilterState, error) {
		return f.GoTo(page, totalPagesFor(state, f)), nil
	})
}

func (s *Service) mutate(ctx context.Context, sessionID string, fn func(FilterState, catalog.State) (FilterState, error)) (*BrowseResponse, error) {
	unlock := s.locks.Lock(sessionID)
	defer unlock()

	f, err := s.load(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	state := s.catalog.State()
	next, err := fn(f, state)
	if err != nil {
		return nil, err
	}

	if err := s.store.SetJSON(ctx, session.Key("listing", sessionID), next, s.ttl); err != nil {
		return nil, fmt.Errorf("failed to save browse state: %w", err)
	}

	s.logger.WithFields(logrus.Fields{
		"session_id": sessionID,
		"page":       next.CurrentPage,
		"category":   next.SelectedCategory,
	}).Debug("Browse state updated")

	return s.respond(state, next), nil
}

func (s *Service) load(ctx context.Context, sessionID string) (FilterState, error) {
	var f FilterState
	err := s.store.GetJSON(ctx, session.Key("listing", sessionID), &f)
	if errors.Is(err, session.ErrNotFound) {
		return s.DefaultFilter(), nil
	}
	if err != nil {
		return FilterState{}, fmt.Errorf("failed to load browse state: %w", err)
	}
	return f, nil
}

func (s *Service) respond(state catalog.State, f FilterState) *BrowseResponse {
	resp := &BrowseResponse{
		Status:          state.Status,
		IsLoading:       state.IsLoading,
		Error:           state.Error,
		PageSizeOptions: s.pageSizeOptions,
	}
	if state.Status == catalog.StatusLoaded {
		view := Derive(state.Products, f)
		resp.View = &view
	}
	return resp
}

func totalPagesFor(state catalog.State, f FilterState) int {
	return TotalPages(len(Filter(state.Products, f)), f.PageSize)
}
