package models

import "github.com/shopspring/decimal"

// LineItem is one distinct product+variant entry in the cart. Catalog fields
// are copied in at add-time and are not re-synced if the catalog changes.
type LineItem struct {
	ProductID     string              `json:"_id"`
	Name          string              `json:"product_name"`
	Brand         string              `json:"brand"`
	Images        []string            `json:"image"`
	UnitPrice     decimal.Decimal     `json:"discounted_price"`
	RetailPrice   decimal.NullDecimal `json:"retail_price"`
	SelectedSize  string              `json:"selectedSize,omitempty"`
	SelectedColor string              `json:"selectedColor,omitempty"`
	Quantity      int                 `json:"quantity"`
}

// ItemKey is the cart-slot identity: two additions merge iff their keys are
// equal. Empty size/color stand for "no variant selected" and compare equal.
type ItemKey struct {
	ProductID string
	Size      string
	Color     string
}

func (li LineItem) Key() ItemKey {
	return ItemKey{ProductID: li.ProductID, Size: li.SelectedSize, Color: li.SelectedColor}
}
