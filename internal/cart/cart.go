// Package cart is the in-memory cart state machine. All mutations are
// synchronous and leave the derived totals consistent with the item list.
package cart

import (
	"store499_app/internal/apperrors"
	"store499_app/internal/models"
	"store499_app/internal/pricing"

	"github.com/shopspring/decimal"
)

// State holds the line items in insertion order plus the derived totals.
// Operations are dispatched from a single UI goroutine, so there is no
// locking here.
type State struct {
	items      []models.LineItem
	totalItems int
	totalPrice decimal.Decimal
}

func New() *State {
	return &State{totalPrice: decimal.Zero}
}

// Items returns a copy of the line items in display order.
func (s *State) Items() []models.LineItem {
	out := make([]models.LineItem, len(s.items))
	copy(out, s.items)
	return out
}

func (s *State) TotalItems() int { return s.totalItems }

func (s *State) TotalPrice() decimal.Decimal { return s.totalPrice }

func (s *State) IsEmpty() bool { return len(s.items) == 0 }

// AddItem merges the candidate into an existing slot with the same
// (product, size, color) identity, or appends it at the end. A merge only
// bumps the quantity; the existing slot keeps its price and variant fields.
func (s *State) AddItem(candidate models.LineItem) error {
	if candidate.Quantity < 1 {
		return apperrors.Validation("quantity", "Quantity must be at least 1")
	}
	if candidate.UnitPrice.IsNegative() {
		return apperrors.Validation("price", "Price cannot be negative")
	}

	key := candidate.Key()
	for i := range s.items {
		if s.items[i].Key() == key {
			s.items[i].Quantity += candidate.Quantity
			s.recompute()
			return nil
		}
	}

	s.items = append(s.items, candidate)
	s.recompute()
	return nil
}

// RemoveItem drops the slot matching key. Removing an absent identity is a
// no-op, not an error.
func (s *State) RemoveItem(key models.ItemKey) {
	for i := range s.items {
		if s.items[i].Key() == key {
			s.items = append(s.items[:i], s.items[i+1:]...)
			s.recompute()
			return
		}
	}
}

// UpdateQuantity sets the matching slot's quantity. A quantity of zero or
// less removes the slot; the confirmation prompt lives in the UI, the state
// machine's contract is simply "set to <= 0 means remove".
func (s *State) UpdateQuantity(key models.ItemKey, quantity int) {
	if quantity <= 0 {
		s.RemoveItem(key)
		return
	}
	for i := range s.items {
		if s.items[i].Key() == key {
			s.items[i].Quantity = quantity
			s.recompute()
			return
		}
	}
}

// Clear empties the cart. Always succeeds, idempotent.
func (s *State) Clear() {
	s.items = nil
	s.recompute()
}

func (s *State) recompute() {
	total := 0
	price := decimal.Zero
	for _, item := range s.items {
		total += item.Quantity
		price = price.Add(item.UnitPrice.Mul(decimal.NewFromInt(int64(item.Quantity))))
	}
	s.totalItems = total
	s.totalPrice = price
}

// ItemFromProduct copies catalog data into a new line item, applying the
// discounted→retail price fallback at add-time.
func ItemFromProduct(p models.Product, size, color string, quantity int) models.LineItem {
	return models.LineItem{
		ProductID:     p.ID,
		Name:          p.Name,
		Brand:         p.Brand,
		Images:        append([]string(nil), p.Images...),
		UnitPrice:     pricing.UnitPrice(p),
		RetailPrice:   decimal.NullDecimal{Decimal: p.RetailPrice, Valid: !p.RetailPrice.IsZero()},
		SelectedSize:  size,
		SelectedColor: color,
		Quantity:      quantity,
	}
}
