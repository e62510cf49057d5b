package middlewares

import (
	"time"

	"github.com/Kariqs/vkusnyashka/models"
	"github.com/golang-jwt/jwt/v5"
)

const TokenLifetime = 30 * 24 * time.Hour

// IssueToken signs a session token for user, valid from now for TokenLifetime.
func IssueToken(user models.User, secret string, now time.Time) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"user_id":  user.ID,
		"email":    user.Email,
		"username": user.Username,
		"role":     user.Role,
		"iat":      now.Unix(),
		"exp":      now.Add(TokenLifetime).Unix(),
	})
	return token.SignedString([]byte(secret))
}
