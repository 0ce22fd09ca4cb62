package stubapi

import (
	"time"

	"store499_app/internal/models"

	"github.com/golang-jwt/jwt/v5"
)

func (s *Server) generateJWT(u models.User) (string, error) {
	claims := jwt.MapClaims{
		"user_id": u.ID,
		"email":   u.Email,
		"role":    string(u.Role),
		"exp":     time.Now().Add(24 * time.Hour).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.secret)
}
