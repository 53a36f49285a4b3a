package handlers

import (
	"time"

	"github.com/google/uuid"
	"github.com/terzigolu/taskboard-go/pkg/models"
	"github.com/terzigolu/taskboard-go/pkg/repository"
	"gorm.io/gorm"
)

// TodoResponse is the full wire representation of a todo.
type TodoResponse struct {
	ID          uuid.UUID  `json:"id"`
	Title       string     `json:"title"`
	Completed   bool       `json:"completed"`
	CreatedAt   time.Time  `json:"created_at"`
	Description *string    `json:"description"`
	DueDate     *time.Time `json:"due_date"`
	UpdatedAt   time.Time  `json:"updated_at"`
	User        uuid.UUID  `json:"user"`
	Task        *uuid.UUID `json:"task"`
	TaskTitle   *string    `json:"task_title"`
	Tags        []string   `json:"tags"`
}

// NestedTodoResponse is the reduced representation used for todos nested
// inside a task: no user, no task, to avoid redundant and circular data.
type NestedTodoResponse struct {
	ID          uuid.UUID  `json:"id"`
	Title       string     `json:"title"`
	Description *string    `json:"description"`
	Completed   bool       `json:"completed"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
	Tags        []string   `json:"tags"`
	DueDate     *time.Time `json:"due_date"`
}

// TaskResponse is the wire representation of a task. Todos is present only
// when the client asked for it with include_todos=1; TodosCount always is.
type TaskResponse struct {
	ID          uuid.UUID             `json:"id"`
	Title       string                `json:"title"`
	Description *string               `json:"description"`
	CreatedAt   time.Time             `json:"created_at"`
	UpdatedAt   time.Time             `json:"updated_at"`
	User        uuid.UUID             `json:"user"`
	Todos       *[]NestedTodoResponse `json:"todos,omitempty"`
	TodosCount  int64                 `json:"todos_count"`
}

func newTodoResponse(todo *models.Todo) TodoResponse {
	resp := TodoResponse{
		ID:          todo.ID,
		Title:       todo.Title,
		Completed:   todo.Completed,
		CreatedAt:   todo.CreatedAt,
		Description: todo.Description,
		DueDate:     todo.DueDate,
		UpdatedAt:   todo.UpdatedAt,
		User:        todo.UserID,
		Task:        todo.TaskID,
		Tags:        todo.Tags,
	}
	if todo.Task != nil {
		title := todo.Task.Title
		resp.TaskTitle = &title
	}
	return resp
}

func newNestedTodoResponse(todo *models.Todo) NestedTodoResponse {
	return NestedTodoResponse{
		ID:          todo.ID,
		Title:       todo.Title,
		Description: todo.Description,
		Completed:   todo.Completed,
		CreatedAt:   todo.CreatedAt,
		UpdatedAt:   todo.UpdatedAt,
		Tags:        todo.Tags,
		DueDate:     todo.DueDate,
	}
}

// newTaskResponse shapes a task for the wire. The nested todo list and the
// count are both filtered to the requester's own todos, even for superusers.
func newTaskResponse(db *gorm.DB, task *models.Task, requester *models.User, includeTodos bool) (TaskResponse, error) {
	count, err := repository.CountTaskTodos(db, task, requester)
	if err != nil {
		return TaskResponse{}, err
	}

	resp := TaskResponse{
		ID:          task.ID,
		Title:       task.Title,
		Description: task.Description,
		CreatedAt:   task.CreatedAt,
		UpdatedAt:   task.UpdatedAt,
		User:        task.UserID,
		TodosCount:  count,
	}

	if includeTodos {
		todos, err := repository.TaskTodos(db, task, requester)
		if err != nil {
			return TaskResponse{}, err
		}
		nested := make([]NestedTodoResponse, 0, len(todos))
		for _, todo := range todos {
			nested = append(nested, newNestedTodoResponse(todo))
		}
		resp.Todos = &nested
	}

	return resp, nil
}
