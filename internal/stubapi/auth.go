package stubapi

import (
	"net/http"

	"store499_app/internal/models"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// 🟢 POST /api/auth/login
func (s *Server) login(c *gin.Context) {
	var input struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid request body"})
		return
	}

	acc := s.findByEmail(input.Email)
	if acc == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "Invalid email or password"})
		return
	}
	ok, err := verifyPassword(input.Password, acc.passwordHash)
	if err != nil || !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "Invalid email or password"})
		return
	}

	s.respondWithSession(c, http.StatusOK, acc.User)
}

// 🟢 POST /api/auth/register
func (s *Server) register(c *gin.Context) {
	var input struct {
		Name     string `json:"name"`
		Email    string `json:"email"`
		Phone    string `json:"phone"`
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
		Phone: input.Phone,
		Role:  models.RoleCustomer,
	}

	s.mu.Lock()
	s.users[input.Email] = &account{User: user, passwordHash: hash}
	s.mu.Unlock()

	s.respondWithSession(c, http.StatusCreated, user)
}

// 🟡 PUT /api/users/update
func (s *Server) updateUser(c *gin.Context) {
	var input struct {
		Name  string `json:"name"`
		Email string `json:"email"`
		Phone string `json:"phone"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid request body"})
		return
	}

	acc := s.findByID(c.GetString("user_id"))
	if acc == nil {
		c.JSON(http.StatusNotFound, gin.H{"message": "User not found"})
		return
	}

	s.mu.Lock()
	if input.Email != "" && input.Email != acc.Email {
		delete(s.users, acc.Email)
		acc.Email = input.Email
		s.users[acc.Email] = acc
	}
	if input.Name != "" {
		acc.Name = input.Name
	}
	if input.Phone != "" {
		acc.Phone = input.Phone
	}
	updated := acc.User
	s.mu.Unlock()

	c.JSON(http.StatusOK, gin.H{"message": "Profile updated", "user": updated})
}

// respondWithSession returns the auth payload the app persists.
func (s *Server) respondWithSession(c *gin.Context, status int, user models.User) {
	token, err := s.generateJWT(user)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Could not issue token"})
		return
	}
	user.Token = token
	c.JSON(status, user)
}
