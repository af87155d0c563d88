package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/golang-jwt/jwt/v5"
	"github.com/wb-go/wbf/ginext"
)

const (
	RoleAdmin = "admin"

	userIDKey = "user_id"
	roleKey   = "role"
)

// Auth проверяет Bearer JWT (HS256) и кладёт sub и role в контекст.
// Токены выпускает внешний сервис.
func Auth(secret string) ginext.HandlerFunc {
	return func(c *ginext.Context) {
		header := c.GetHeader("Authorization")
		if !strings.HasPrefix(header, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, ginext.H{"error": "missing bearer token"})
			return
		}

		claims := jwt.MapClaims{}
		_, err := jwt.ParseWithClaims(
			strings.TrimPrefix(header, "Bearer "),
			claims,
			func(t *jwt.Token) (any, error) {
				return []byte(secret), nil
			},
			jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, ginext.H{"error": "invalid token"})
			return
		}

		sub, err := claims.GetSubject()
		if err != nil || sub == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, ginext.H{"error": "invalid token subject"})
			return
		}
		role, _ := claims["role"].(string)

		c.Set(userIDKey, sub)
		c.Set(roleKey, role)
		c.Next()
	}
}

// RequireRole must run after Auth.
func RequireRole(role string) ginext.HandlerFunc {
	return func(c *ginext.Context) {
		if Role(c) != role {
			c.AbortWithStatusJSON(http.StatusForbidden, ginext.H{"error": "forbidden"})
			return
		}
		c.Next()
	}
}

var ErrNoIdentity = errors.New("no authenticated user")

func UserID(c *ginext.Context) (string, error) {
	id := c.GetString(userIDKey)
	if id == "" {
		return "", ErrNoIdentity
	}
	return id, nil
}

func Role(c *ginext.Context) string {
	return c.GetString(roleKey)
}
