package utils

import (
	"time"

	"jurisight/internal/workflow"

	"github.com/golang-jwt/jwt/v5"
)

// GenerateToken creates a signed HS256 access token.
func GenerateToken(secret string, userID int64, role workflow.Role, duration time.Duration) (string, error) {
	claims := jwt.MapClaims{
		"user_id":    userID,
		"role":       string(role),
		"exp":        time.Now().Add(duration).Unix(),
		"iat":        time.Now().Unix(),
		"token_type": "access",
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}
