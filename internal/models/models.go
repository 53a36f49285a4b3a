package models

import (
	"time"

	"github.com/google/uuid"
)

// Task mirrors the task representation returned by the API.
type Task struct {
	ID          uuid.UUID `json:"id"`
	Title       string    `json:"title"`
	Description *string   `json:"description"`
	User        uuid.UUID `json:"user"`
	Todos       []Todo    `json:"todos,omitempty"`
	TodosCount  int64     `json:"todos_count"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// Todo mirrors the todo representation returned by the API.
type Todo struct {
	ID          uuid.UUID  `json:"id"`
	Title       string     `json:"title"`
	Completed   bool       `json:"completed"`
	Description *string    `json:"description"`
	DueDate     *time.Time `json:"due_date"`
	User        uuid.UUID  `json:"user"`
	Task        *uuid.UUID `json:"task"`
	TaskTitle   *string    `json:"task_title"`
	Tags        []string   `json:"tags"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

// LoginResult is the response of POST /auth/login.
type LoginResult struct {
	Token    string    `json:"token"`
	UserID   uuid.UUID `json:"user_id"`
	Username string    `json:"username"`
}

// ValidateResult is the response of GET /auth/validate.
type ValidateResult struct {
	Valid    bool      `json:"valid"`
	UserID   uuid.UUID `json:"user_id"`
	Username string    `json:"username"`
}
