package catalog

import (
	"context"
	"net/http/httptest"
	"testing"
	"time"

	"store499_app/internal/api"
	"store499_app/internal/apperrors"
	"store499_app/internal/models"
	"store499_app/internal/stubapi"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	m.Run()
}

func TestFetchFillsCache(t *testing.T) {
	backend := httptest.NewServer(stubapi.NewServer("test_secret").Router())
	t.Cleanup(backend.Close)

	c := New(api.NewClient(backend.URL))
	require.NoError(t, c.Fetch(context.Background()))

	assert.False(t, c.Loading())
	assert.NoError(t, c.Err())
	assert.NotEmpty(t, c.Products())
}

func TestFetchFailureSetsError(t *testing.T) {
	c := New(api.NewClient("http://127.0.0.1:1"))
	err := c.Fetch(context.Background())
	require.Error(t, err)

	var ne *apperrors.NetworkError
	assert.ErrorAs(t, c.Err(), &ne)
	assert.False(t, c.Loading())
	assert.Empty(t, c.Products())
}

func seeded() *Cache {
	c := New(nil)
	c.products = []models.Product{
		{
			ID: "P1", Name: "Classic Cotton T-Shirt", Brand: "Wearhouse",
			Category: "T-Shirts & Polos", Description: "Crew neck tee",
			RetailPrice: decimal.NewFromInt(799),
			CreatedAt:   time.Date(2026, 1, 10, 0, 0, 0, 0, time.UTC),
		},
		{
			ID: "P2", Name: "Slim Fit Trousers", Brand: "Urbane",
			Category: "Trousers", Description: "Stretch chino",
			RetailPrice: decimal.NewFromInt(1299),
			CreatedAt:   time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC),
		},
		{
			ID: "P3", Name: "Polo Shirt", Brand: "Wearhouse",
			Category: "T-Shirts & Polos", Description: "Pique polo",
			RetailPrice: decimal.NewFromInt(999),
			CreatedAt:   time.Date(2026, 1, 20, 0, 0, 0, 0, time.UTC),
		},
	}
	return c
}

func TestSearch(t *testing.T) {
	c := seeded()

	assert.Len(t, c.Search(""), 3, "blank query returns everything")
	assert.Len(t, c.Search("   "), 3)

	byName := c.Search("trousers")
	require.Len(t, byName, 1)
	assert.Equal(t, "P2", byName[0].ID)

	byBrand := c.Search("wearhouse")
	assert.Len(t, byBrand, 2)

	byDescription := c.Search("pique")
	require.Len(t, byDescription, 1)
	assert.Equal(t, "P3", byDescription[0].ID)

	assert.Empty(t, c.Search("sneakers"))
}

func TestFilterByCategorySubstring(t *testing.T) {
	c := seeded()

	shirts := c.FilterByCategory("Shirts")
	assert.Len(t, shirts, 2, "substring match catches T-Shirts & Polos")

	trousers := c.FilterByCategory("trousers")
	require.Len(t, trousers, 1)
	assert.Equal(t, "P2", trousers[0].ID)
}

func TestNewest(t *testing.T) {
	c := seeded()

	newest := c.Newest(2)
	require.Len(t, newest, 2)
	assert.Equal(t, "P2", newest[0].ID)
	assert.Equal(t, "P3", newest[1].ID)

	all := c.Newest(10)
	assert.Len(t, all, 3)
}

func TestFind(t *testing.T) {
	c := seeded()

	p, ok := c.Find("P2")
	require.True(t, ok)
	assert.Equal(t, "Slim Fit Trousers", p.Name)

	_, ok = c.Find("missing")
	assert.False(t, ok)
}
