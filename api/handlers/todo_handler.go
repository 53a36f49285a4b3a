package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/terzigolu/taskboard-go/api/middleware"
	"github.com/terzigolu/taskboard-go/pkg/models"
	"github.com/terzigolu/taskboard-go/pkg/repository"
	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// CreateTodoInput DTO for creating a new todo. Task optionally attaches the
// todo to one of the requester's visible tasks.
type CreateTodoInput struct {
	Title       string     `json:"title" binding:"required,max=200"`
	Description *string    `json:"description"`
	Completed   *bool      `json:"completed"`
	DueDate     *time.Time `json:"due_date"`
	Task        *uuid.UUID `json:"task"`
	Tags        []string   `json:"tags"`
}

// UpdateTodoInput DTO for partially updating a todo. The owner is immutable;
// the task reference may be reassigned or cleared.
type UpdateTodoInput struct {
	Title       *string    `json:"title" binding:"omitempty,max=200"`
	Description *string    `json:"description"`
	Completed   *bool      `json:"completed"`
	DueDate     *time.Time `json:"due_date"`
	Task        *uuid.UUID `json:"task"`
	Tags        []string   `json:"tags"`
}

// ListTodos returns the todos visible to the requester, newest first.
func ListTodos(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		user := middleware.CurrentUser(c)

		var todos []*models.Todo
		if err := repository.VisibleTodos(db, user).Preload("Task").Find(&todos).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve todos"})
			return
		}

		resp := make([]TodoResponse, 0, len(todos))
		for _, todo := range todos {
			resp = append(resp, newTodoResponse(todo))
		}
		c.JSON(http.StatusOK, resp)
	}
}

// CreateTodo creates a new todo owned by the requester.
func CreateTodo(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		user := middleware.CurrentUser(c)

		var input CreateTodoInput
		if err := c.ShouldBindJSON(&input); err != nil {
			bindError(c, err)
			return
		}

		todo := models.Todo{
			Title:       input.Title,
			Description: input.Description,
			DueDate:     input.DueDate,
			UserID:      user.ID,
		}
		if input.Completed != nil {
			todo.Completed = *input.Completed
		}
		if input.Tags != nil {
			todo.Tags = datatypes.NewJSONSlice(input.Tags)
		}
		if input.Task != nil {
			task, err := repository.FindVisibleTask(db, user, *input.Task)
			if err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"errors": gin.H{"task": []string{"Invalid task reference."}}})
				return
			}
			todo.TaskID = &task.ID
		}

		if err := db.Create(&todo).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create todo"})
			return
		}

		created, err := repository.FindVisibleTodo(db, user, todo.ID)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create todo"})
			return
		}
		c.JSON(http.StatusCreated, newTodoResponse(created))
	}
}

// GetTodo retrieves a single todo by its ID, 404 outside the visible set.
func GetTodo(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		user := middleware.CurrentUser(c)

		todo, ok := findTodo(c, db, user)
		if !ok {
			return
		}
		c.JSON(http.StatusOK, newTodoResponse(todo))
	}
}

// UpdateTodo applies a partial update to a todo.
func UpdateTodo(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		user := middleware.CurrentUser(c)

		todo, ok := findTodo(c, db, user)
		if !ok {
			return
		}

		var input UpdateTodoInput
		if err := c.ShouldBindJSON(&input); err != nil {
			bindError(c, err)
			return
		}
		if blankTitle(c, input.Title) {
			return
		}

		if input.Title != nil {
			todo.Title = *input.Title
		}
		if input.Description != nil {
			todo.Description = input.Description
		}
		if input.Completed != nil {
			todo.Completed = *input.Completed
		}
		if input.DueDate != nil {
			todo.DueDate = input.DueDate
		}
		if input.Tags != nil {
			todo.Tags = datatypes.NewJSONSlice(input.Tags)
		}
		if input.Task != nil {
			task, err := repository.FindVisibleTask(db, user, *input.Task)
			if err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"errors": gin.H{"task": []string{"Invalid task reference."}}})
				return
			}
			todo.TaskID = &task.ID
		}

		// The preloaded Task association must not be written back.
		if err := db.Omit(clause.Associations).Save(todo).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update todo"})
			return
		}

		updated, err := repository.FindVisibleTodo(db, user, todo.ID)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update todo"})
			return
		}
		c.JSON(http.StatusOK, newTodoResponse(updated))
	}
}

// DeleteTodo deletes a todo from the database.
func DeleteTodo(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		user := middleware.CurrentUser(c)

		todo, ok := findTodo(c, db, user)
		if !ok {
			return
		}

		if err := db.Delete(todo).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete todo"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"message": "Todo deleted successfully"})
	}
}

func findTodo(c *gin.Context, db *gorm.DB, user *models.User) (*models.Todo, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Todo not found"})
		return nil, false
	}
	todo, err := repository.FindVisibleTodo(db, user, id)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Todo not found"})
		return nil, false
	}
	return todo, true
}
