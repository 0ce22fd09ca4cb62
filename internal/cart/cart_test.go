package cart

import (
	"testing"

	"store499_app/internal/apperrors"
	"store499_app/internal/models"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func item(id, size, color string, price int64, qty int) models.LineItem {
	return models.LineItem{
		ProductID:     id,
		Name:          "Product " + id,
		Brand:         "BrandCo",
		UnitPrice:     decimal.NewFromInt(price),
		SelectedSize:  size,
		SelectedColor: color,
		Quantity:      qty,
	}
}

// checkTotals re-derives the totals from the item list and compares them to
// the stored derived fields.
func checkTotals(t *testing.T, s *State) {
	t.Helper()
	items := s.Items()
	wantItems := 0
	wantPrice := decimal.Zero
	for _, it := range items {
		wantItems += it.Quantity
		wantPrice = wantPrice.Add(it.UnitPrice.Mul(decimal.NewFromInt(int64(it.Quantity))))
	}
	assert.Equal(t, wantItems, s.TotalItems())
	assert.True(t, wantPrice.Equal(s.TotalPrice()),
		"totalPrice drifted: items say %s, state says %s", wantPrice, s.TotalPrice())
}

func TestAddItemAppends(t *testing.T) {
	s := New()
	require.NoError(t, s.AddItem(item("P1", "M", "Black", 500, 3)))

	require.Len(t, s.Items(), 1)
	assert.Equal(t, 3, s.TotalItems())
	assert.Equal(t, "1500", s.TotalPrice().String())
	checkTotals(t, s)
}

func TestAddItemMergesSameIdentity(t *testing.T) {
	s := New()
	require.NoError(t, s.AddItem(item("P1", "M", "Black", 500, 1)))
	require.NoError(t, s.AddItem(item("P1", "M", "Black", 500, 1)))

	items := s.Items()
	require.Len(t, items, 1, "identical identity must merge, not duplicate")
	assert.Equal(t, 2, items[0].Quantity)
	checkTotals(t, s)
}

func TestAddItemMergeKeepsExistingSlotFields(t *testing.T) {
	s := New()
	require.NoError(t, s.AddItem(item("P1", "M", "Black", 500, 1)))

	// Same identity but a different price: the merge bumps quantity only.
	changed := item("P1", "M", "Black", 450, 2)
	require.NoError(t, s.AddItem(changed))

	items := s.Items()
	require.Len(t, items, 1)
	assert.Equal(t, 3, items[0].Quantity)
	assert.Equal(t, "500", items[0].UnitPrice.String())
	checkTotals(t, s)
}

func TestAddItemDifferentVariantsAreSeparateSlots(t *testing.T) {
	s := New()
	require.NoError(t, s.AddItem(item("P1", "M", "Black", 500, 1)))
	require.NoError(t, s.AddItem(item("P1", "L", "Black", 500, 1)))
	require.NoError(t, s.AddItem(item("P1", "M", "White", 500, 1)))
	require.NoError(t, s.AddItem(item("P1", "", "", 500, 1)))

	assert.Len(t, s.Items(), 4)
	checkTotals(t, s)
}

func TestAddItemPreservesInsertionOrder(t *testing.T) {
	s := New()
	require.NoError(t, s.AddItem(item("P3", "", "", 100, 1)))
	require.NoError(t, s.AddItem(item("P1", "", "", 100, 1)))
	require.NoError(t, s.AddItem(item("P2", "", "", 100, 1)))
	require.NoError(t, s.AddItem(item("P1", "", "", 100, 1))) // merge, no reorder

	items := s.Items()
	require.Len(t, items, 3)
	assert.Equal(t, "P3", items[0].ProductID)
	assert.Equal(t, "P1", items[1].ProductID)
	assert.Equal(t, "P2", items[2].ProductID)
}

func TestAddItemRejectsInvalidInput(t *testing.T) {
	s := New()

	err := s.AddItem(item("P1", "", "", 500, 0))
	var ve *apperrors.ValidationError
	require.ErrorAs(t, err, &ve)
	assert.Equal(t, "quantity", ve.Field)

	bad := item("P1", "", "", 0, 1)
	bad.UnitPrice = decimal.NewFromInt(-1)
	err = s.AddItem(bad)
	require.ErrorAs(t, err, &ve)
	assert.Equal(t, "price", ve.Field)

	assert.True(t, s.IsEmpty(), "rejected input must not mutate state")
}

func TestRemoveItem(t *testing.T) {
	s := New()
	require.NoError(t, s.AddItem(item("P1", "M", "", 500, 2)))
	require.NoError(t, s.AddItem(item("P2", "", "", 300, 1)))

	s.RemoveItem(models.ItemKey{ProductID: "P1", Size: "M"})
	items := s.Items()
	require.Len(t, items, 1)
	assert.Equal(t, "P2", items[0].ProductID)
	checkTotals(t, s)

	// Absent identity is a no-op, not an error.
	s.RemoveItem(models.ItemKey{ProductID: "missing"})
	assert.Len(t, s.Items(), 1)
	checkTotals(t, s)
}

func TestUpdateQuantity(t *testing.T) {
	s := New()
	require.NoError(t, s.AddItem(item("P1", "", "", 200, 2)))

	s.UpdateQuantity(models.ItemKey{ProductID: "P1"}, 5)
	assert.Equal(t, 5, s.TotalItems())
	assert.Equal(t, "1000", s.TotalPrice().String())
	checkTotals(t, s)

	// Unknown identity: no-op.
	s.UpdateQuantity(models.ItemKey{ProductID: "missing"}, 3)
	assert.Equal(t, 5, s.TotalItems())
}

func TestUpdateQuantityZeroBehavesLikeRemove(t *testing.T) {
	viaUpdate := New()
	require.NoError(t, viaUpdate.AddItem(item("P1", "M", "", 500, 2)))
	viaUpdate.UpdateQuantity(models.ItemKey{ProductID: "P1", Size: "M"}, 0)

	viaRemove := New()
	require.NoError(t, viaRemove.AddItem(item("P1", "M", "", 500, 2)))
	viaRemove.RemoveItem(models.ItemKey{ProductID: "P1", Size: "M"})

	assert.Equal(t, viaRemove.Items(), viaUpdate.Items())
	assert.Equal(t, viaRemove.TotalItems(), viaUpdate.TotalItems())
	assert.True(t, viaRemove.TotalPrice().Equal(viaUpdate.TotalPrice()))

	// Negative quantities follow the same contract.
	neg := New()
	require.NoError(t, neg.AddItem(item("P1", "", "", 500, 2)))
	neg.UpdateQuantity(models.ItemKey{ProductID: "P1"}, -3)
	assert.True(t, neg.IsEmpty())
}

func TestClearIsIdempotent(t *testing.T) {
	s := New()
	require.NoError(t, s.AddItem(item("P1", "", "", 500, 2)))

	s.Clear()
	first := s.Items()
	assert.Empty(t, first)
	assert.Equal(t, 0, s.TotalItems())
	assert.True(t, s.TotalPrice().IsZero())

	s.Clear()
	assert.Equal(t, first, s.Items())
	assert.Equal(t, 0, s.TotalItems())
	assert.True(t, s.TotalPrice().IsZero())
}

func TestTotalsNeverDriftAcrossMixedSequence(t *testing.T) {
	s := New()
	require.NoError(t, s.AddItem(item("P1", "M", "Black", 499, 2)))
	checkTotals(t, s)
	require.NoError(t, s.AddItem(item("P2", "", "", 1299, 1)))
	checkTotals(t, s)
	require.NoError(t, s.AddItem(item("P1", "M", "Black", 499, 1)))
	checkTotals(t, s)
	s.UpdateQuantity(models.ItemKey{ProductID: "P2"}, 4)
	checkTotals(t, s)
	s.RemoveItem(models.ItemKey{ProductID: "P1", Size: "M", Color: "Black"})
	checkTotals(t, s)
	s.UpdateQuantity(models.ItemKey{ProductID: "P2"}, 0)
	checkTotals(t, s)
	s.Clear()
	checkTotals(t, s)
}

func TestItemFromProductAppliesPriceFallback(t *testing.T) {
	discounted := models.Product{
		ID:              "P1",
		Name:            "Tee",
		Brand:           "BrandCo",
		RetailPrice:     decimal.NewFromInt(799),
		DiscountedPrice: decimal.NewNullDecimal(decimal.NewFromInt(499)),
		Images:          []string{"/a.jpg", "/b.jpg"},
	}
	li := ItemFromProduct(discounted, "M", "Black", 2)
	assert.Equal(t, "499", li.UnitPrice.String())
	assert.Equal(t, "M", li.SelectedSize)
	assert.Equal(t, "Black", li.SelectedColor)
	assert.Equal(t, 2, li.Quantity)
	require.True(t, li.RetailPrice.Valid)
	assert.Equal(t, "799", li.RetailPrice.Decimal.String())

	fullPrice := models.Product{ID: "P2", RetailPrice: decimal.NewFromInt(1299)}
	li = ItemFromProduct(fullPrice, "", "", 1)
	assert.Equal(t, "1299", li.UnitPrice.String())
}
