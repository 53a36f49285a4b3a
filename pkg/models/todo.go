package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// DefaultTags returns the tag list applied to todos created without tags.
func DefaultTags() datatypes.JSONSlice[string] {
	return datatypes.NewJSONSlice([]string{"general"})
}

// Todo represents a task item, optionally grouped under a Task
type Todo struct {
	ID          uuid.UUID                  `json:"id" gorm:"primaryKey;type:uuid"`
	Title       string                     `json:"title" gorm:"not null;type:varchar(200)"`
	Description *string                    `json:"description"`
	Completed   bool                       `json:"completed" gorm:"not null;default:false"`
	DueDate     *time.Time                 `json:"due_date"`
	UserID      uuid.UUID                  `json:"user_id" gorm:"not null;type:uuid;index:idx_todos_user"`
	TaskID      *uuid.UUID                 `json:"task_id" gorm:"type:uuid;index:idx_todos_task"`
	Tags        datatypes.JSONSlice[string] `json:"tags"`
	CreatedAt   time.Time                  `json:"created_at" gorm:"not null;default:CURRENT_TIMESTAMP"`
	UpdatedAt   time.Time                  `json:"updated_at" gorm:"not null;default:CURRENT_TIMESTAMP"`

	// Foreign Key Relations
	User *User `json:"user,omitempty" gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
	Task *Task `json:"task,omitempty" gorm:"foreignKey:TaskID;constraint:OnDelete:CASCADE"`
}

// BeforeCreate assigns the id and applies the default tag list when none was
// supplied.
func (t *Todo) BeforeCreate(tx *gorm.DB) error {
	if t.ID == uuid.Nil {
		t.ID = uuid.New()
	}
	if t.Tags == nil {
		t.Tags = DefaultTags()
	}
	return nil
}
