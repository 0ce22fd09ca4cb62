package stubapi

import (
	"net/http"

	"store499_app/internal/models"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// 🟢 GET /api/stores
func (s *Server) listStores(c *gin.Context) {
	userID := c.GetString("user_id")

	s.mu.RLock()
	out := make([]models.StoreAddress, len(s.stores[userID]))
	copy(out, s.stores[userID])
	s.mu.RUnlock()

	c.JSON(http.StatusOK, out)
}

// 🟢 POST /api/stores
func (s *Server) addStore(c *gin.Context) {
	userID := c.GetString("user_id")

	var addr models.StoreAddress
	if err := c.ShouldBindJSON(&addr); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid request body"})
		return
	}

	addr.ID = uuid.NewString()

	s.mu.Lock()
	s.stores[userID] = append(s.stores[userID], addr)
	s.mu.Unlock()

	c.JSON(http.StatusCreated, addr)
}

// 🟡 PUT /api/stores/:id
func (s *Server) updateStore(c *gin.Context) {
	userID := c.GetString("user_id")
	id := c.Param("id")

	var addr models.StoreAddress
	if err := c.ShouldBindJSON(&addr); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid request body"})
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.stores[userID] {
		if s.stores[userID][i].ID == id {
			addr.ID = id
			s.stores[userID][i] = addr
			c.JSON(http.StatusOK, addr)
			return
		}
	}

	c.JSON(http.StatusNotFound, gin.H{"message": "Store not found"})
}

// ❌ DELETE /api/stores/:id
func (s *Server) deleteStore(c *gin.Context) {
	userID := c.GetString("user_id")
	id := c.Param("id")

	s.mu.Lock()
	defer s.mu.Unlock()
	kept := s.stores[userID][:0]
	for _, addr := range s.stores[userID] {
		if addr.ID != id {
			kept = append(kept, addr)
		}
	}
	s.stores[userID] = kept

	c.JSON(http.StatusOK, gin.H{"message": "Store deleted"})
}
