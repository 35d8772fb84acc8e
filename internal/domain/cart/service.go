// internal/domain/cart/service.go
package cart

import (
	"context"
	"errors"
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/your-org/storefront/internal/pkg/session"
)

// ErrEmptyCart is returned by Checkout when there is nothing to check out
var ErrEmptyCart = errors.New("cart is empty")

// Service handles cart business logic for browser sessions
type Service struct {
	repo    Repository
	taxRate float64
	locks   *session.Locker
	logger  *logrus.Logger
}

// NewService creates a new cart service
func NewService(repo Repository, taxRate float64, logger *logrus.Logger) *Service {
	return &Service{
		repo:    repo,
		taxRate: taxRate,
		locks:   session.NewLocker(),
		logger:  logger,
	}
}

// CartResponse represents a shopping cart with items and summary
type CartResponse struct {
	SessionID string        `json:"session_id,omitempty"`
	Items     []CartItem    `json:"items"`
	Totals    CartTotals    `json:"totals"`
	Display   DisplayTotals `json:"display"`
	IsEmpty   bool          `json:"is_empty"`
}

// GetCart retrieves the cart for a session
func (s *Service) GetCart(ctx context.Context, sessionID string) (*CartResponse, error) {
	state, err := s.repo.Load(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	return s.response(sessionID, state), nil
}

// AddItem adds one unit of a product to the cart
func (s *Service) AddItem(ctx context.Context, sessionID string, item ItemPayload) (*CartResponse, error) {
	return s.apply(ctx, sessionID, Action{Type: ActionAddItem, Item: item})
}

// RemoveItem removes a product line regardless of its quantity
func (s *Service) RemoveItem(ctx context.Context, sessionID, itemID string) (*CartResponse, error) {
	return s.apply(ctx, sessionID, Action{Type: ActionRemoveItem, ID: itemID})
}

// DecreaseItemQuantity removes one unit of a product
func (s *Service) DecreaseItemQuantity(ctx context.Context, sessionID, itemID string) (*CartResponse, error) {
	return s.apply(ctx, sessionID, Action{Type: ActionDecreaseItemQuantity, ID: itemID})
}

// ClearCart removes all items from the cart
func (s *Service) ClearCart(ctx context.Context, sessionID string) (*CartResponse, error) {
	unlock := s.locks.Lock(sessionID)
	defer unlock()

	if err := s.repo.Delete(ctx, sessionID); err != nil {
		return nil, err
	}
	return s.response(sessionID, ClearCart(State{})), nil
}

// GetCartItemCount returns the sum of quantities in the cart
func (s *Service) GetCartItemCount(ctx context.Context, sessionID string) (int, error) {
	state, err := s.repo.Load(ctx, sessionID)
	if err != nil {
		return 0, err
	}
	return CalculateTotals(state, s.taxRate).TotalQuantity, nil
}

// Checkout is a no-op beyond logging: the cart is left untouched
func (s *Service) Checkout(ctx context.Context, sessionID string) (*CartResponse, error) {
	cartResponse, err := s.GetCart(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if cartResponse.IsEmpty {
		return nil, ErrEmptyCart
	}

	s.logger.WithFields(logrus.Fields{
		"session_id":   sessionID,
		"item_count":   cartResponse.Totals.ItemCount,
		"total_amount": cartResponse.Display.TotalAmount,
	}).Info("Checkout requested")

	return cartResponse, nil
}

func (s *Service) apply(ctx context.Context, sessionID string, action Action) (*CartResponse, error) {
	unlock := s.locks.Lock(sessionID)
	defer unlock()

	state, err := s.repo.Load(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	next := Reduce(state, action)
	if err := s.repo.Save(ctx, sessionID, next); err != nil {
		return nil, fmt.Errorf("failed to apply %s: %w", action.Type, err)
	}

	s.logger.WithFields(logrus.Fields{
		"session_id": sessionID,
		"action":     action.Type,
		"items":      len(next.Items),
	}).Debug("Cart updated")

	return s.response(sessionID, next), nil
}

func (s *Service) response(sessionID string, state State) *CartResponse {
	items := state.Items
	if items == nil {
		items = []CartItem{}
	}

	totals := CalculateTotals(state, s.taxRate)
	return &CartResponse{
		SessionID: sessionID,
		Items:     items,
		Totals:    totals,
		Display:   totals.Display(),
		IsEmpty:   len(items) == 0,
	}
}
