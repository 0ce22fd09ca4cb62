// Package stubapi is a development stand-in for the 499 Store backend. It
// serves the same REST surface the app core talks to, backed by in-memory
// maps, so the client can be run and integration-tested without the real
// server.
package stubapi

import (
	"log"
	"sync"

	"store499_app/internal/models"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type account struct {
	models.User
	passwordHash string
}

type Server struct {
	secret []byte

	mu       sync.RWMutex
	users    map[string]*account // keyed by email
	products []models.Product
	stores   map[string][]models.StoreAddress // keyed by user id
}

func NewServer(jwtSecret string) *Server {
	s := &Server{
		secret: []byte(jwtSecret),
		users:  make(map[string]*account),
		stores: make(map[string][]models.StoreAddress),
	}
	s.seed()
	return s
}

// seed provisions the superadmin and a small catalog so the app has
// something to show on first run.
func (s *Server) seed() {
	hash, err := hashPassword("super499")
	if err != nil {
		log.Fatalf("❌ Cannot seed superadmin: %v", err)
	}
	s.users["super@499store.in"] = &account{
		User: models.User{
			ID:    uuid.NewString(),
			Name:  "Super Admin",
			Email: "super@499store.in",
			Phone: "9876543210",
			Role:  models.RoleSuperAdmin,
		},
		passwordHash: hash,
	}

	s.products = []models.Product{
		{
			ID:              uuid.NewString(),
			Name:            "Classic Cotton T-Shirt",
			Brand:           "Wearhouse",
			Description:     "Regular fit crew-neck tee",
			Category:        "T-Shirts & Polos",
			RetailPrice:     decimal.NewFromInt(799),
			DiscountedPrice: decimal.NewNullDecimal(decimal.NewFromInt(499)),
			Images:          []string{"/images/tshirt-1.jpg"},
			Sizes:           []string{"S", "M", "L", "XL"},
			Colors:          []string{"Black", "White"},
		},
		{
			ID:          uuid.NewString(),
			Name:        "Slim Fit Trousers",
			Brand:       "Urbane",
			Description: "Stretch chino trousers",
			Category:    "Trousers",
			RetailPrice: decimal.NewFromInt(1299),
			Images:      []string{"/images/trousers-1.jpg"},
			Sizes:       []string{"30", "32", "34"},
		},
	}

	log.Println("✅ Stub backend seeded (1 superadmin, 2 products)")
}

func (s *Server) findByEmail(email string) *account {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.users[email]
}

func (s *Server) findByID(id string) *account {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, acc := range s.users {
		if acc.ID == id {
			return acc
		}
	}
	return nil
}
