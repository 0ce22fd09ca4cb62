package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product is one catalog row as served by GET /api/products. Prices come in
// as plain JSON numbers; DiscountedPrice may be absent, which is why it is a
// NullDecimal rather than a zero value.
type Product struct {
	ID              string              `json:"_id"`
	Name            string              `json:"product_name"`
	Brand           string              `json:"brand"`
	Description     string              `json:"description"`
	Category        string              `json:"category,omitempty"`
	RetailPrice     decimal.Decimal     `json:"retail_price"`
	DiscountedPrice decimal.NullDecimal `json:"discounted_price"`
	Images          []string            `json:"image"`
	Sizes           []string            `json:"sizes,omitempty"`
	Colors          []string            `json:"colors,omitempty"`
	Rating          string              `json:"product_rating,omitempty"`
	CreatedAt       time.Time           `json:"createdAt,omitempty"`
}
