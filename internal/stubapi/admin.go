package stubapi

import (
	"net/http"

	"store499_app/internal/models"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// 🔴 POST /api/users/create-admin (superadmin only)
func (s *Server) createAdmin(c *gin.Context) {
	if c.GetString("role") != string(models.RoleSuperAdmin) {
		c.JSON(http.StatusForbidden, gin.H{"message": "Only superadmins can create admins"})
		return
	}

	var input struct {
		Name     string `json:"name"`
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid request body"})
		return
	}

	if s.findByEmail(input.Email) != nil {
		c.JSON(http.StatusConflict, gin.H{"message": "An account with this email already exists"})
		return
	}

	hash, err := hashPassword(input.Password)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Could not create account"})
		return
	}

	user := models.User{
		ID:    uuid.NewString(),
		Name:  input.Name,
		Email: input.Email,
		Role:  models.RoleAdmin,
	}

	s.mu.Lock()
	s.users[input.Email] = &account{User: user, passwordHash: hash}
	s.mu.Unlock()

	c.JSON(http.StatusCreated, gin.H{"message": "Admin created", "user": user})
}
