package cart

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/your-org/storefront/internal/pkg/logger"
	"github.com/your-org/storefront/internal/pkg/session"
)

func newTestService() (*Service, *session.MemoryStore) {
	store := session.NewMemoryStore()
	return NewService(NewSessionRepository(store, time.Hour), DefaultTaxRate, logger.Discard()), store
}

type failingRepository struct {
	err error
}

func (f failingRepository) Load(context.Context, string) (State, error) { return State{}, f.err }
func (f failingRepository) Save(context.Context, string, State) error   { return f.err }
func (f failingRepository) Delete(context.Context, string) error        { return f.err }

func TestService_AddAndRead(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestService()

	empty, err := svc.GetCart(ctx, "s1")
	require.NoError(t, err)
	assert.True(t, empty.IsEmpty)
	assert.NotNil(t, empty.Items)

	resp, err := svc.AddItem(ctx, "s1", widget)
	require.NoError(t, err)
	require.Len(t, resp.Items, 1)
	assert.Equal(t, 1, resp.Items[0].Quantity)
	assert.Equal(t, 100.0, resp.Totals.SubTotal)
	assert.Equal(t, "18.00", resp.Display.TaxAmount)
	assert.Equal(t, "118.00", resp.Display.TotalAmount)

	again, err := svc.GetCart(ctx, "s1")
	require.NoError(t, err)
	assert.Equal(t, resp.Items, again.Items)

	other, err := svc.GetCart(ctx, "s2")
	require.NoError(t, err)
	assert.True(t, other.IsEmpty)
}

func TestService_DecreaseRemoveClear(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestService()

	_, err := svc.AddItem(ctx, "s1", widget)
	require.NoError(t, err)

	resp, err := svc.DecreaseItemQuantity(ctx, "s1", "A")
	require.NoError(t, err)
	assert.True(t, resp.IsEmpty)

	resp, err = svc.DecreaseItemQuantity(ctx, "s1", "A")
	require.NoError(t, err)
	assert.True(t, resp.IsEmpty)

	_, err = svc.AddItem(ctx, "s1", widget)
	require.NoError(t, err)
	_, err = svc.AddItem(ctx, "s1", widget)
	require.NoError(t, err)

	resp, err = svc.RemoveItem(ctx, "s1", "A")
	require.NoError(t, err)
	assert.True(t, resp.IsEmpty)

	_, err = svc.AddItem(ctx, "s1", widget)
	require.NoError(t, err)
	resp, err = svc.ClearCart(ctx, "s1")
	require.NoError(t, err)
	assert.True(t, resp.IsEmpty)

	count, err := svc.GetCartItemCount(ctx, "s1")
	require.NoError(t, err)
	assert.Zero(t, count)
}

func TestService_GetCartItemCount(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestService()

	for i := 0; i < 3; i++ {
		_, err := svc.AddItem(ctx, "s1", widget)
		require.NoError(t, err)
	}
	_, err := svc.AddItem(ctx, "s1", ItemPayload{ID: "B", Title: "Gadget", Price: 2})
	require.NoError(t, err)

	count, err := svc.GetCartItemCount(ctx, "s1")
	require.NoError(t, err)
	assert.Equal(t, 4, count)
}

func TestService_Checkout(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestService()

	_, err := svc.Checkout(ctx, "s1")
	assert.ErrorIs(t, err, ErrEmptyCart)

	_, err = svc.AddItem(ctx, "s1", widget)
	require.NoError(t, err)

	resp, err := svc.Checkout(ctx, "s1")
	require.NoError(t, err)
	assert.Len(t, resp.Items, 1)

	after, err := svc.GetCart(ctx, "s1")
	require.NoError(t, err)
	assert.Len(t, after.Items, 1, "checkout must not change the cart")
}

func TestService_ConcurrentAddsAreAtomic(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestService()

	var wg sync.WaitGroup
	for i := 0; i < 40; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := svc.AddItem(ctx, "s1", widget)
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	resp, err := svc.GetCart(ctx, "s1")
	require.NoError(t, err)
	require.Len(t, resp.Items, 1)
	assert.Equal(t, 40, resp.Items[0].Quantity)
}

func TestService_RepositoryErrors(t *testing.T) {
	ctx := context.Background()
	boom := errors.New("boom")
	svc := NewService(failingRepository{err: boom}, DefaultTaxRate, logger.Discard())

	_, err := svc.GetCart(ctx, "s1")
	assert.ErrorIs(t, err, boom)

	_, err = svc.AddItem(ctx, "s1", widget)
	assert.ErrorIs(t, err, boom)

	_, err = svc.ClearCart(ctx, "s1")
	assert.ErrorIs(t, err, boom)
}

func TestSessionRepository_CorruptDocument(t *testing.T) {
	ctx := context.Background()
	store := session.NewMemoryStore()
	require.NoError(t, store.SetJSON(ctx, session.Key("cart", "s1"), "not a cart", 0))

	repo := NewSessionRepository(store, 0)
	_, err := repo.Load(ctx, "s1")
	assert.Error(t, err)
}
