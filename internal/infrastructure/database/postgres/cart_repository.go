// internal/infrastructure/database/postgres/cart_repository.go
package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/your-org/storefront/internal/domain/cart"
	"gorm.io/gorm"
)

// CartRepository stores cart lines as rows, one per item, ordered by position.
// Every Save rewrites a cart's rows, so updated_at marks the cart's last change;
// carts untouched for longer than ttl read as empty until PurgeExpired removes them.
type CartRepository struct {
	db  *gorm.DB
	ttl time.Duration
	now func() time.Time
}

var _ cart.Repository = (*CartRepository)(nil)

// NewCartRepository creates a gorm-backed cart repository. A zero ttl keeps carts forever.
func NewCartRepository(db *gorm.DB, ttl time.Duration) *CartRepository {
	return &CartRepository{
		db:  db,
		ttl: ttl,
		now: time.Now,
	}
}

// Load implements cart.Repository
func (r *CartRepository) Load(ctx context.Context, sessionID string) (cart.State, error) {
	query := r.db.WithContext(ctx).Where("session_id = ?", sessionID)
	if r.ttl > 0 {
		query = query.Where("updated_at >= ?", r.cutoff())
	}

	var records []cart.CartItemRecord
	err := query.Order("position ASC").Find(&records).Error
	if err != nil {
		return cart.State{}, fmt.Errorf("failed to load cart: %w", err)
	}

	items := make([]cart.CartItem, 0, len(records))
	for _, rec := range records {
		items = append(items, cart.CartItem{
			ID:       rec.ItemID,
			Title:    rec.Title,
			Price:    rec.Price,
			Quantity: rec.Quantity,
		})
	}
	return cart.State{Items: items}, nil
}

// Save replaces the session's rows with state in a single transaction
func (r *CartRepository) Save(ctx context.Context, sessionID string, state cart.State) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("session_id = ?", sessionID).Delete(&cart.CartItemRecord{}).Error; err != nil {
			return err
		}
		if len(state.Items) == 0 {
			return nil
		}

		records := make([]cart.CartItemRecord, 0, len(state.Items))
		for i, item := range state.Items {
			records = append(records, cart.CartItemRecord{
				SessionID: sessionID,
				Position:  i,
				ItemID:    item.ID,
				Title:     item.Title,
				Price:     item.Price,
				Quantity:  item.Quantity,
			})
		}
		return tx.Create(&records).Error
	})
	if err != nil {
		return fmt.Errorf("failed to save cart: %w", err)
	}
	return nil
}

// Delete implements cart.Repository
func (r *CartRepository) Delete(ctx context.Context, sessionID string) error {
	err := r.db.WithContext(ctx).
		Where("session_id = ?", sessionID).
		Delete(&cart.CartItemRecord{}).Error
	if err != nil {
		return fmt.Errorf("failed to delete cart: %w", err)
	}
	return nil
}

// PurgeExpired deletes the rows of every cart not saved within ttl
func (r *CartRepository) PurgeExpired(ctx context.Context) (int64, error) {
	if r.ttl <= 0 {
		return 0, nil
	}

	result := r.db.WithContext(ctx).
		Where("updated_at < ?", r.cutoff()).
		Delete(&cart.CartItemRecord{})
	if result.Error != nil {
		return 0, fmt.Errorf("failed to purge expired carts: %w", result.Error)
	}
	return result.RowsAffected, nil
}

func (r *CartRepository) cutoff() time.Time {
	return r.now().Add(-r.ttl)
}
