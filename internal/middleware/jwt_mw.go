package middleware

import (
	"errors"
	"net/http"
	"strings"

	"losmecanics_booking/internal/model"
	"losmecanics_booking/internal/utils"

	"github.com/gin-gonic/gin"
)

const AuthSessionKey = "authSession"

var (
	errAuthHeaderRequired = errors.New("Authorization header required")
	errAuthHeaderFormat   = errors.New("Invalid authorization header format")
	errInvalidToken       = errors.New("Invalid or expired token")
)

// JWTAuthMiddleware creates a middleware that requires a valid session token
func JWTAuthMiddleware(jwtUtil *utils.JWTUtil) gin.HandlerFunc {
	return func(c *gin.Context) {
		session, err := sessionFromHeader(c, jwtUtil)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
			return
		}

		c.Set(AuthSessionKey, session)
		c.Next()
	}
}

// OptionalJWTAuthMiddleware resolves a session when a token is present but
// lets anonymous requests through. The view endpoint routes anonymous
// navigation, so it cannot demand a token.
func OptionalJWTAuthMiddleware(jwtUtil *utils.JWTUtil) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.GetHeader("Authorization") != "" {
			session, err := sessionFromHeader(c, jwtUtil)
			if err != nil {
				c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
				return
			}
			c.Set(AuthSessionKey, session)
		}
		c.Next()
	}
}

// SessionFromContext returns the authenticated session, nil when anonymous.
func SessionFromContext(c *gin.Context) *model.Session {
	val, exists := c.Get(AuthSessionKey)
	if !exists {
		return nil
	}
	session, ok := val.(*model.Session)
	if !ok {
		return nil
	}
	return session
}

func sessionFromHeader(c *gin.Context, jwtUtil *utils.JWTUtil) (*model.Session, error) {
	authHeader := c.GetHeader("Authorization")
	if authHeader == "" {
		return nil, errAuthHeaderRequired
	}

	parts := strings.Split(authHeader, " ")
	if len(parts) != 2 || strings.ToLower(parts[0]) != "bearer" {
		return nil, errAuthHeaderFormat
	}

	claims, err := jwtUtil.ValidateToken(parts[1])
	if err != nil {
		return nil, errInvalidToken
	}
	return claims.Session(), nil
}
