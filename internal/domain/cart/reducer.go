// internal/domain/cart/reducer.go
package cart

// ActionType names a cart transition
type ActionType string

const (
	ActionAddItem              ActionType = "add_item"
	ActionRemoveItem           ActionType = "remove_item"
	ActionDecreaseItemQuantity ActionType = "decrease_item_quantity"
	ActionClearCart            ActionType = "clear_cart"
)

// Action is a transition request. Item is used by ActionAddItem, ID by
// ActionRemoveItem and ActionDecreaseItemQuantity.
type Action struct {
	Type ActionType
	Item ItemPayload
	ID   string
}

// Reduce applies a to s and returns the next state. Unknown actions leave s unchanged.
func Reduce(s State, a Action) State {
	switch a.Type {
	case ActionAddItem:
		return AddItem(s, a.Item)
	case ActionRemoveItem:
		return RemoveItem(s, a.ID)
	case ActionDecreaseItemQuantity:
		return DecreaseItemQuantity(s, a.ID)
	case ActionClearCart:
		return ClearCart(s)
	default:
		return s
	}
}

// AddItem increments the quantity of an existing line or appends a new one.
// Title and price of an existing line are kept as first added.
func AddItem(s State, p ItemPayload) State {
	items := s.cloneItems()
	if idx := s.indexOf(p.ID); idx >= 0 {
		items[idx].Quantity++
		return State{Items: items}
	}

	items = append(items, CartItem{
		ID:       p.ID,
		Title:    p.Title,
		Price:    p.Price,
		Quantity: 1,
	})
	return State{Items: items}
}

// RemoveItem drops the whole line for id
func RemoveItem(s State, id string) State {
	idx := s.indexOf(id)
	if idx < 0 {
		return s
	}

	items := make([]CartItem, 0, len(s.Items)-1)
	items = append(items, s.Items[:idx]...)
	items = append(items, s.Items[idx+1:]...)
	return State{Items: items}
}

// DecreaseItemQuantity takes one unit off a line, removing it at quantity 1
func DecreaseItemQuantity(s State, id string) State {
	idx := s.indexOf(id)
	if idx < 0 {
		return s
	}
	if s.Items[idx].Quantity <= 1 {
		return RemoveItem(s, id)
	}

	items := s.cloneItems()
	items[idx].Quantity--
	return State{Items: items}
}

// ClearCart empties the cart
func ClearCart(State) State {
	return State{Items: []CartItem{}}
}

// Find returns the line for id
func (s State) Find(id string) (CartItem, bool) {
	if idx := s.indexOf(id); idx >= 0 {
		return s.Items[idx], true
	}
	return CartItem{}, false
}

// IsEmpty reports whether the cart has no lines
func (s State) IsEmpty() bool {
	return len(s.Items) == 0
}

func (s State) indexOf(id string) int {
	for i := range s.Items {
		if s.Items[i].ID == id {
			return i
		}
	}
	return -1
}

func (s State) cloneItems() []CartItem {
	items := make([]CartItem, len(s.Items), len(s.Items)+1)
	copy(items, s.Items)
	return items
}
