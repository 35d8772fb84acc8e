// internal/domain/cart/repository.go
package cart

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/your-org/storefront/internal/pkg/session"
)

// Repository persists one cart per browser session
type Repository interface {
	// Load returns the session's cart, or an empty cart if none is stored
	Load(ctx context.Context, sessionID string) (State, error)
	Save(ctx context.Context, sessionID string, state State) error
	Delete(ctx context.Context, sessionID string) error
}

// SessionRepository stores carts as JSON documents in a session store
// (memory or Redis) under "cart:session:<id>".
type SessionRepository struct {
	store session.Store
	ttl   time.Duration
}

// NewSessionRepository creates a cart repository on top of a session store
func NewSessionRepository(store session.Store, ttl time.Duration) *SessionRepository {
	return &SessionRepository{
		store: store,
		ttl:   ttl,
	}
}

// Load implements Repository
func (r *SessionRepository) Load(ctx context.Context, sessionID string) (State, error) {
	var state State
	err := r.store.GetJSON(ctx, session.Key("cart", sessionID), &state)
	if errors.Is(err, session.ErrNotFound) {
		return State{Items: []CartItem{}}, nil
	}
	if err != nil {
		return State{}, fmt.Errorf("failed to load cart: %w", err)
	}

	if state.Items == nil {
		state.Items = []CartItem{}
	}
	return state, nil
}

// Save implements Repository
func (r *SessionRepository) Save(ctx context.Context, sessionID string, state State) error {
	if err := r.store.SetJSON(ctx, session.Key("cart", sessionID), state, r.ttl); err != nil {
		return fmt.Errorf("failed to save cart: %w", err)
	}
	return nil
}

// Delete implements Repository
func (r *SessionRepository) Delete(ctx context.Context, sessionID string) error {
	if err := r.store.Delete(ctx, session.Key("cart", sessionID)); err != nil {
		return fmt.Errorf("failed to delete cart: %w", err)
	}
	return nil
}
