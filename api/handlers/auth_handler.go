package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/terzigolu/taskboard-go/api/middleware"
	"github.com/terzigolu/taskboard-go/pkg/repository"
	"gorm.io/gorm"
)

// LoginInput DTO for the login endpoint
type LoginInput struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// Login checks a username/password pair and returns the user's token,
// creating one on first login. Unknown usernames and wrong passwords answer
// the same 401 so the endpoint cannot be used to enumerate users.
func Login(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input LoginInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Username and password required"})
			return
		}
		if input.Username == "" || input.Password == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Username and password required"})
			return
		}

		user, err := repository.UserByCredentials(db, input.Username, input.Password)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid credentials"})
			return
		}

		token, err := repository.GetOrCreateToken(db, user)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to issue token"})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"token":    token.Key,
			"user_id":  user.ID,
			"username": user.Username,
		})
	}
}

// ValidateToken confirms the token from the Authorization header resolves to
// a user. Authentication itself happens in the middleware.
func ValidateToken() gin.HandlerFunc {
	return func(c *gin.Context) {
		user := middleware.CurrentUser(c)
		c.JSON(http.StatusOK, gin.H{
			"valid":    true,
			"user_id":  user.ID,
			"username": user.Username,
		})
	}
}
