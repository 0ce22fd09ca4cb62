// Package catalog caches the last-fetched product list. The cart reads it,
// never writes it.
package catalog

import (
	"context"
	"sort"
	"strings"

	"store499_app/internal/api"
	"store499_app/internal/models"
)

type Cache struct {
	api      *api.Client
	products []models.Product
	loading  bool
	lastErr  error
}

func New(client *api.Client) *Cache {
	return &Cache{api: client}
}

// Fetch replaces the cached list with the backend's. One outstanding request
// at a time per the UI's dispatch model; no retry here.
func (c *Cache) Fetch(ctx context.Context) error {
	c.loading = true
	c.lastErr = nil

	products, err := c.api.FetchProducts(ctx)
	c.loading = false
	if err != nil {
		c.lastErr = err
		return err
	}

	c.products = products
	return nil
}

func (c *Cache) Loading() bool { return c.loading }

func (c *Cache) Err() error { return c.lastErr }

// Products returns a copy of the cached list.
func (c *Cache) Products() []models.Product {
	out := make([]models.Product, len(c.products))
	copy(out, c.products)
	return out
}

// Find returns the cached product with the given id.
func (c *Cache) Find(id string) (models.Product, bool) {
	for _, p := range c.products {
		if p.ID == id {
			return p, true
		}
	}
	return models.Product{}, false
}

// Search filters by case-insensitive substring over name, brand, category
// and description. A blank query returns everything.
func (c *Cache) Search(query string) []models.Product {
	query = strings.TrimSpace(strings.ToLower(query))
	if query == "" {
		return c.Products()
	}

	var out []models.Product
	for _, p := range c.products {
		if containsFold(p.Name, query) ||
			containsFold(p.Brand, query) ||
			containsFold(p.Category, query) ||
			containsFold(p.Description, query) {
			out = append(out, p)
		}
	}
	return out
}

// FilterByCategory matches by substring so "Shirts" also catches
// "T-Shirts & Polos".
func (c *Cache) FilterByCategory(name string) []models.Product {
	name = strings.ToLower(name)
	var out []models.Product
	for _, p := range c.products {
		if strings.Contains(strings.ToLower(p.Category), name) {
			out = append(out, p)
		}
	}
	return out
}

// Newest returns up to n products, most recently added first.
func (c *Cache) Newest(n int) []models.Product {
	out := c.Products()
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	if n < len(out) {
		out = out[:n]
	}
	return out
}

func containsFold(haystack, lowered string) bool {
	return strings.Contains(strings.ToLower(haystack), lowered)
}
