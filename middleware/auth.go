package middleware

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"

	"portfolio-monitor/models"
	"portfolio-monitor/store"
)

// userKey is the gin context key holding the resolved *models.User.
const userKey = "current_user"

// RequireUser verifies the bearer token, resolves its subject against the
// user store and aborts with 401 (plus the WWW-Authenticate header the
// bearer scheme calls for) on any failure. A token for a disabled user is
// valid but the account is unusable, so that case is 400.
func RequireUser(users store.UserStore, secret []byte) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if !strings.HasPrefix(authHeader, "Bearer ") {
			unauthorized(c, "Not authenticated")
			return
		}
		tokenString := strings.TrimPrefix(authHeader, "Bearer ")

		token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
			}
			return secret, nil
		})
		if err != nil || !token.Valid {
			unauthorized(c, "Could not validate credentials")
			return
		}

		claims, ok := token.Claims.(jwt.MapClaims)
		if !ok {
			unauthorized(c, "Could not validate credentials")
			return
		}
		username, ok := claims["sub"].(string)
		if !ok || username == "" {
			unauthorized(c, "Could not validate credentials")
			return
		}

		user, err := users.GetByUsername(c.Request.Context(), username)
		if errors.Is(err, store.ErrNotFound) {
			unauthorized(c, "Could not validate credentials")
			return
		}
		if err != nil {
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "Failed to resolve user"})
			return
		}
		if user.Disabled {
			c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "Inactive user"})
			return
		}

		c.Set(userKey, user)
		c.Next()
	}
}

// CurrentUser returns the user stashed by RequireUser. Calling it on a
// route outside the authenticated group is a programming error.
func CurrentUser(c *gin.Context) *models.User {
	return c.MustGet(userKey).(*models.User)
}

func unauthorized(c *gin.Context, msg string) {
	c.Header("WWW-Authenticate", "Bearer")
	c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": msg})
}
