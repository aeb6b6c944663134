package utils

import (
	"fmt"
	"time"

	"losmecanics_booking/internal/model"

	"github.com/golang-jwt/jwt/v5"
)

// SessionClaims carries the full mock session in the token. There is no
// user store to look identities up in, so the token IS the session.
type SessionClaims struct {
	UserID string `json:"user_id"`
	Email  string `json:"email"`
	Name   string `json:"name"`
	Role   string `json:"role"`
	jwt.RegisteredClaims
}

// Session rebuilds the session value the claims were minted from.
func (c *SessionClaims) Session() *model.Session {
	return &model.Session{
		ID:    c.UserID,
		Email: c.Email,
		Name:  c.Name,
		Role:  c.Role,
	}
}

// JWTUtil provides session token generation and validation
type JWTUtil struct {
	secretKey       string
	expirationHours int64
}

// NewJWTUtil creates a new JWTUtil
func NewJWTUtil(secretKey string, expirationHours int64) *JWTUtil {
	return &JWTUtil{secretKey: secretKey, expirationHours: expirationHours}
}

// GenerateToken signs a token for the given session
func (ju *JWTUtil) GenerateToken(session *model.Session) (string, error) {
	claims := &SessionClaims{
		UserID: session.ID,
		Email:  session.Email,
		Name:   session.Name,
		Role:   session.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour * time.Duration(ju.expirationHours))),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			Subject:   session.ID,
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString([]byte(ju.secretKey))
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}
	return tokenString, nil
}

// ValidateToken validates the token and returns its claims
func (ju *JWTUtil) ValidateToken(tokenString string) (*SessionClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &SessionClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(ju.secretKey), nil
	})

	if err != nil {
		return nil, fmt.Errorf("failed to parse token: %w", err)
	}

	if claims, ok := token.Claims.(*SessionClaims); ok && token.Valid {
		return claims, nil
	}

	return nil, fmt.Errorf("invalid token")
}
