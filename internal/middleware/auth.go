package middleware

import (
	"errors"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/jenniferhuangg/ConcertCloud/pkg/response"
)

const userIDKey = "user_id"

var (
	errMissingToken = errors.New("missing bearer token")
	errInvalidToken = errors.New("invalid token")
)

// Auth returns a gin middleware that authenticates requests with a JWT
// bearer token. The token's subject is the user's UUID and is stored in
// the request context for handlers.
func Auth(secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, err := authenticate(c.GetHeader("Authorization"), secret)
		if err != nil {
			response.Unauthorized(c, err.Error())
			c.Abort()
			return
		}
		c.Set(userIDKey, userID)
		c.Next()
	}
}

func authenticate(header, secret string) (string, error) {
	if header == "" {
		return "", errMissingToken
	}
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return "", errMissingToken
	}

	token, err := jwt.Parse(parts[1], func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errInvalidToken
		}
		return []byte(secret), nil
	})
	if err != nil || !token.Valid {
		return "", errInvalidToken
	}

	subject, err := token.Claims.GetSubject()
	if err != nil || subject == "" {
		return "", errInvalidToken
	}
	if _, err := uuid.Parse(subject); err != nil {
		return "", errInvalidToken
	}
	return subject, nil
}

// GetUserID returns the authenticated user's ID from the request context
func GetUserID(c *gin.Context) (string, bool) {
	userID, ok := c.Get(userIDKey)
	if !ok {
		return "", false
	}
	id, ok := userID.(string)
	return id, ok && id != ""
}
