package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Task represents a user-owned grouping of todos
type Task struct {
	ID          uuid.UUID `json:"id" gorm:"primaryKey;type:uuid"`
	Title       string    `json:"title" gorm:"not null;type:varchar(200)"`
	Description *string   `json:"description"`
	UserID      uuid.UUID `json:"user_id" gorm:"not null;type:uuid;index:idx_tasks_user"`
	CreatedAt   time.Time `json:"created_at" gorm:"not null;default:CURRENT_TIMESTAMP"`
	UpdatedAt   time.Time `json:"updated_at" gorm:"not null;default:CURRENT_TIMESTAMP"`

	// Foreign Key Relations
	User *User `json:"user,omitempty" gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`

	// One-to-Many Relations
	Todos []*Todo `json:"todos,omitempty" gorm:"foreignKey:TaskID;constraint:OnDelete:CASCADE"`
}

// BeforeCreate assigns the id.
func (t *Task) BeforeCreate(tx *gorm.DB) error {
	if t.ID == uuid.Nil {
		t.ID = uuid.New()
	}
	return nil
}
