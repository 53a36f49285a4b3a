package models

import (
	"crypto/rand"
	"encoding/hex"
	"time"

	"github.com/google/uuid"
)

// AuthToken is a long-lived opaque credential bound 1:1 to a user.
// Repeated logins reuse the existing row rather than issuing duplicates.
type AuthToken struct {
	Key       string    `json:"key" gorm:"primaryKey;type:varchar(40)"`
	UserID    uuid.UUID `json:"user_id" gorm:"not null;type:uuid;uniqueIndex:idx_auth_tokens_user"`
	CreatedAt time.Time `json:"created_at" gorm:"not null;default:CURRENT_TIMESTAMP"`

	// Foreign Key Relations
	User *User `json:"user,omitempty" gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
}

// GenerateTokenKey returns a new random 40-character hex token key.
func GenerateTokenKey() (string, error) {
	raw := make([]byte, 20)
	if _, err := rand.Read(raw); err != nil {
		return "", err
	}
	return hex.EncodeToString(raw), nil
}
