package handler

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	jwt "github.com/golang-jwt/jwt/v5"
)

const (
	ctxUserID   = "user_id"
	ctxUsername = "username"
)

// AuthRequired validates the Bearer token and stores the caller's identity in
// the request context.
func (h *Handler) AuthRequired() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		tokenString, ok := strings.CutPrefix(authHeader, "Bearer ")
		if !ok || tokenString == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Authorization token missing"})
			return
		}

		userID, username, err := h.parseToken(tokenString)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid token or expired"})
			return
		}

		c.Set(ctxUserID, userID)
		c.Set(ctxUsername, username)
		c.Next()
	}
}

func (h *Handler) parseToken(tokenString string) (uint, string, error) {
	token, err := jwt.Parse(tokenString, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return h.jwtSecret, nil
	})
	if err != nil || !token.Valid {
		return 0, "", errors.New("invalid token")
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return 0, "", errors.New("invalid claims")
	}
	idFloat, ok := claims["user_id"].(float64)
	if !ok {
		return 0, "", errors.New("missing user_id claim")
	}
	username, ok := claims["username"].(string)
	if !ok {
		return 0, "", errors.New("missing username claim")
	}
	return uint(idFloat), username, nil
}

func currentUserID(c *gin.Context) uint {
	return c.GetUint(ctxUserID)
}

func currentUsername(c *gin.Context) string {
	return c.GetString(ctxUsername)
}
