package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/terzigolu/taskboard-go/pkg/models"
	"github.com/terzigolu/taskboard-go/pkg/repository"
	"gorm.io/gorm"
)

// UserKey is the gin context key holding the authenticated user.
const UserKey = "auth.user"

// TokenAuth authenticates requests carrying an "Authorization: Token <key>"
// header. Requests without a valid token are rejected with 401.
func TokenAuth(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		key, ok := tokenFromHeader(c.GetHeader("Authorization"))
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
			return
		}

		user, err := repository.UserByToken(db, key)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid token"})
			return
		}

		c.Set(UserKey, user)
		c.Next()
	}
}

// CurrentUser returns the user set by TokenAuth, or nil outside an
// authenticated context.
func CurrentUser(c *gin.Context) *models.User {
	v, ok := c.Get(UserKey)
	if !ok {
		return nil
	}
	user, _ := v.(*models.User)
	return user
}

func tokenFromHeader(header string) (string, bool) {
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Token") {
		return "", false
	}
	key := strings.TrimSpace(parts[1])
	return key, key != ""
}
