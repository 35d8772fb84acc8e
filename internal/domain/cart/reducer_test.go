package cart

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var widget = ItemPayload{ID: "A", Title: "Widget", Price: 100}

func TestAddItem(t *testing.T) {
	t.Run("appends new items with quantity 1", func(t *testing.T) {
		s := AddItem(State{}, widget)
		s = AddItem(s, ItemPayload{ID: "B", Title: "Gadget", Price: 5})

		require.Len(t, s.Items, 2)
		assert.Equal(t, CartItem{ID: "A", Title: "Widget", Price: 100, Quantity: 1}, s.Items[0])
		assert.Equal(t, "B", s.Items[1].ID)
	})

	t.Run("repeated adds increment one line", func(t *testing.T) {
		s := State{}
		for i := 0; i < 7; i++ {
			s = AddItem(s, widget)
		}

		require.Len(t, s.Items, 1)
		assert.Equal(t, 7, s.Items[0].Quantity)
	})

	t.Run("first seen title and price win", func(t *testing.T) {
		s := AddItem(State{}, widget)
		s = AddItem(s, ItemPayload{ID: "A", Title: "Renamed", Price: 1})

		item, ok := s.Find("A")
		require.True(t, ok)
		assert.Equal(t, "Widget", item.Title)
		assert.Equal(t, 100.0, item.Price)
		assert.Equal(t, 2, item.Quantity)
	})

	t.Run("does not mutate the input state", func(t *testing.T) {
		before := AddItem(State{}, widget)
		after := AddItem(before, widget)

		assert.Equal(t, 1, before.Items[0].Quantity)
		assert.Equal(t, 2, after.Items[0].Quantity)
	})
}

func TestRemoveItem(t *testing.T) {
	s := AddItem(AddItem(AddItem(State{}, widget), widget), ItemPayload{ID: "B", Title: "Gadget", Price: 5})

	t.Run("removes regardless of quantity", func(t *testing.T) {
		next := RemoveItem(s, "A")
		require.Len(t, next.Items, 1)
		assert.Equal(t, "B", next.Items[0].ID)
	})

	t.Run("is idempotent", func(t *testing.T) {
		once := RemoveItem(s, "A")
		twice := RemoveItem(once, "A")
		assert.Equal(t, once, twice)
	})

	t.Run("absent id is a no-op", func(t *testing.T) {
		assert.Equal(t, s, RemoveItem(s, "missing"))
	})

	t.Run("keeps the order of remaining items", func(t *testing.T) {
		three := AddItem(s, ItemPayload{ID: "C", Title: "Gizmo", Price: 1})
		next := RemoveItem(three, "B")
		require.Len(t, next.Items, 2)
		assert.Equal(t, "A", next.Items[0].ID)
		assert.Equal(t, "C", next.Items[1].ID)
		assert.Len(t, three.Items, 3)
	})
}

func TestDecreaseItemQuantity(t *testing.T) {
	t.Run("decrements above one", func(t *testing.T) {
		s := AddItem(AddItem(State{}, widget), widget)
		next := DecreaseItemQuantity(s, "A")

		item, ok := next.Find("A")
		require.True(t, ok)
		assert.Equal(t, 1, item.Quantity)
		assert.Equal(t, 2, s.Items[0].Quantity)
	})

	t.Run("removes at quantity one", func(t *testing.T) {
		s := AddItem(State{}, widget)
		next := DecreaseItemQuantity(s, "A")
		assert.True(t, next.IsEmpty())
	})

	t.Run("quantity calls remove the item and one more is a no-op", func(t *testing.T) {
		s := State{}
		for i := 0; i < 4; i++ {
			s = AddItem(s, widget)
		}
		for i := 0; i < 4; i++ {
			s = DecreaseItemQuantity(s, "A")
		}
		_, ok := s.Find("A")
		assert.False(t, ok)

		assert.Equal(t, s, DecreaseItemQuantity(s, "A"))
	})

	t.Run("absent id is a no-op", func(t *testing.T) {
		s := AddItem(State{}, widget)
		assert.Equal(t, s, DecreaseItemQuantity(s, "missing"))
	})
}

func TestClearCart(t *testing.T) {
	s := AddItem(AddItem(State{}, widget), ItemPayload{ID: "B", Title: "Gadget", Price: 5})
	cleared := ClearCart(s)

	assert.True(t, cleared.IsEmpty())
	assert.NotNil(t, cleared.Items)
	assert.Len(t, s.Items, 2)
}

func TestReduce(t *testing.T) {
	s := Reduce(State{}, Action{Type: ActionAddItem, Item: widget})
	s = Reduce(s, Action{Type: ActionAddItem, Item: widget})
	assert.Equal(t, 2, s.Items[0].Quantity)

	s = Reduce(s, Action{Type: ActionDecreaseItemQuantity, ID: "A"})
	assert.Equal(t, 1, s.Items[0].Quantity)

	assert.Equal(t, s, Reduce(s, Action{Type: "unknown"}))

	s = Reduce(s, Action{Type: ActionAddItem, Item: ItemPayload{ID: "B", Title: "Gadget", Price: 5}})
	s = Reduce(s, Action{Type: ActionRemoveItem, ID: "A"})
	require.Len(t, s.Items, 1)

	s = Reduce(s, Action{Type: ActionClearCart})
	assert.True(t, s.IsEmpty())
}

func TestAddItemKeepsIDsUnique(t *testing.T) {
	ids := []string{"A", "B", "A", "C", "B", "A"}
	s := State{}
	for _, id := range ids {
		s = AddItem(s, ItemPayload{ID: id, Title: id, Price: 1})
	}

	seen := map[string]int{}
	for _, item := range s.Items {
		seen[item.ID]++
		assert.GreaterOrEqual(t, item.Quantity, 1)
	}
	assert.Equal(t, map[string]int{"A": 1, "B": 1, "C": 1}, seen)
	assert.Equal(t, []string{"A", "B", "C"}, []string{s.Items[0].ID, s.Items[1].ID, s.Items[2].ID})
	assert.Equal(t, 3, s.Items[0].Quantity)
}
