// Package pricing encodes the price fallback order in one place so the cart
// and the product screens cannot drift apart.
package pricing

import (
	"store499_app/internal/models"

	"github.com/shopspring/decimal"
)

// UnitPrice is the price a product sells at: the discounted price when
// present, otherwise the retail price.
func UnitPrice(p models.Product) decimal.Decimal {
	if p.DiscountedPrice.Valid {
		return p.DiscountedPrice.Decimal
	}
	return p.RetailPrice
}

// Savings is the retail-minus-discounted difference shown as "You save ₹…".
// Zero when there is no discount or the discount is not a saving.
func Savings(p models.Product) decimal.Decimal {
	if !p.DiscountedPrice.Valid {
		return decimal.Zero
	}
	diff := p.RetailPrice.Sub(p.DiscountedPrice.Decimal)
	if diff.IsNegative() {
		return decimal.Zero
	}
	return diff
}

// DiscountPercent is the rounded percentage badge on the product screen.
func DiscountPercent(p models.Product) int {
	if !p.DiscountedPrice.Valid || p.RetailPrice.IsZero() {
		return 0
	}
	if !p.RetailPrice.GreaterThan(p.DiscountedPrice.Decimal) {
		return 0
	}
	pct := p.RetailPrice.Sub(p.DiscountedPrice.Decimal).
		Div(p.RetailPrice).
		Mul(decimal.NewFromInt(100)).
		Round(0)
	return int(pct.IntPart())
}
