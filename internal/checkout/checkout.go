// Package checkout holds the order-summary math and the guard between the
// cart screen and the checkout flow.
package checkout

import (
	"store499_app/internal/apperrors"

	"github.com/shopspring/decimal"
)

var (
	freeShippingAbove = decimal.NewFromInt(1000)
	flatShipping      = decimal.NewFromInt(40)
	taxRate           = decimal.NewFromFloat(0.05)
)

// OrderSummary is the cart-screen breakdown. It is computed on demand and
// never stored in cart state.
type OrderSummary struct {
	Subtotal   decimal.Decimal
	Shipping   decimal.Decimal
	Tax        decimal.Decimal
	GrandTotal decimal.Decimal
}

// Summarize derives the summary from the pre-tax subtotal. Shipping and tax
// are both computed from the subtotal independently; this ordering is part
// of the numeric contract with the existing screens.
func Summarize(subtotal decimal.Decimal) OrderSummary {
	shipping := flatShipping
	if subtotal.GreaterThan(freeShippingAbove) || subtotal.IsZero() {
		shipping = decimal.Zero
	}
	tax := subtotal.Mul(taxRate).Round(2)
	return OrderSummary{
		Subtotal:   subtotal,
		Shipping:   shipping,
		Tax:        tax,
		GrandTotal: subtotal.Add(shipping).Add(tax).Round(2),
	}
}

// TokenSource is the read-only view of the session the gate needs.
type TokenSource interface {
	Token() string
}

// CanCheckout allows the cart→checkout transition iff a session token is
// present. It must be re-evaluated at every attempt: the session can change
// between the cart view and the checkout tap.
func CanCheckout(s TokenSource) error {
	if s == nil || s.Token() == "" {
		return apperrors.ErrAuthRequired
	}
	return nil
}
