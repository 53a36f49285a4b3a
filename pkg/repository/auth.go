package repository

import (
	"errors"
	"fmt"

	"github.com/terzigolu/taskboard-go/pkg/models"
	"gorm.io/gorm"
)

// GetOrCreateToken returns the user's auth token, creating one on first
// login. A user holds at most one token; repeated logins reuse it.
func GetOrCreateToken(db *gorm.DB, user *models.User) (*models.AuthToken, error) {
	var token models.AuthToken
	err := db.Where("user_id = ?", user.ID).First(&token).Error
	if err == nil {
		return &token, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to look up token: %w", err)
	}

	key, err := models.GenerateTokenKey()
	if err != nil {
		return nil, fmt.Errorf("failed to generate token key: %w", err)
	}
	token = models.AuthToken{Key: key, UserID: user.ID}
	if err := db.Create(&token).Error; err != nil {
		return nil, fmt.Errorf("failed to create token: %w", err)
	}
	return &token, nil
}

// UserByToken resolves a token key to its user. Unknown keys return
// gorm.ErrRecordNotFound.
func UserByToken(db *gorm.DB, key string) (*models.User, error) {
	var token models.AuthToken
	if err := db.Where("key = ?", key).First(&token).Error; err != nil {
		return nil, err
	}
	var user models.User
	if err := db.First(&user, "id = ?", token.UserID).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

// UserByCredentials checks a username/password pair. Unknown usernames and
// wrong passwords are indistinguishable to the caller.
func UserByCredentials(db *gorm.DB, username, password string) (*models.User, error) {
	var user models.User
	if err := db.Where("username = ?", username).First(&user).Error; err != nil {
		return nil, gorm.ErrRecordNotFound
	}
	if !user.CheckPassword(password) {
		return nil, gorm.ErrRecordNotFound
	}
	return &user, nil
}
