package stubapi

import (
	"net/http"

	"store499_app/internal/models"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// 🟢 GET /api/products
func (s *Server) listProducts(c *gin.Context) {
	s.mu.RLock()
	out := make([]models.Product, len(s.products))
	copy(out, s.products)
	s.mu.RUnlock()

	c.JSON(http.StatusOK, out)
}

// 🔴 POST /api/products (admin)
func (s *Server) createProduct(c *gin.Context) {
	var p models.Product
	if err := c.ShouldBindJSON(&p); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid request body"})
		return
	}
	if p.Name == "" || p.RetailPrice.IsZero() {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Name and retail price are required"})
		return
	}

	p.ID = uuid.NewString()

	s.mu.Lock()
	s.products = append(s.products, p)
	s.mu.Unlock()

	c.JSON(http.StatusCreated, p)
}
