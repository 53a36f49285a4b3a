package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/terzigolu/taskboard-go/api/middleware"
	"github.com/terzigolu/taskboard-go/pkg/models"
	"github.com/terzigolu/taskboard-go/pkg/repository"
	"gorm.io/gorm"
)

// CreateTaskInput DTO for creating a new task
type CreateTaskInput struct {
	Title       string  `json:"title" binding:"required,max=200"`
	Description *string `json:"description"`
}

// UpdateTaskInput DTO for updating a task. Todos is the nested patch list
// handed to the reconciliation merge; omitting it leaves existing todos
// untouched.
type UpdateTaskInput struct {
	Title       *string                `json:"title" binding:"omitempty,max=200"`
	Description *string                `json:"description"`
	Todos       []repository.TodoPatch `json:"todos"`
}

func includeTodos(c *gin.Context) bool {
	return c.Query("include_todos") == "1"
}

// ListTasks returns the tasks visible to the requester, newest first.
func ListTasks(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		user := middleware.CurrentUser(c)

		var tasks []*models.Task
		if err := repository.VisibleTasks(db, user).Find(&tasks).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve tasks"})
			return
		}

		include := includeTodos(c)
		resp := make([]TaskResponse, 0, len(tasks))
		for _, task := range tasks {
			tr, err := newTaskResponse(db, task, user, include)
			if err != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve tasks"})
				return
			}
			resp = append(resp, tr)
		}

		c.JSON(http.StatusOK, resp)
	}
}

// CreateTask creates a new task owned by the requester.
func CreateTask(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		user := middleware.CurrentUser(c)

		var input CreateTaskInput
		if err := c.ShouldBindJSON(&input); err != nil {
			bindError(c, err)
			return
		}

		task := models.Task{
			Title:       input.Title,
			Description: input.Description,
			UserID:      user.ID,
		}
		if err := db.Create(&task).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create task"})
			return
		}

		resp, err := newTaskResponse(db, &task, user, false)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create task"})
			return
		}
		c.JSON(http.StatusCreated, resp)
	}
}

// GetTask retrieves a single task by its ID. Tasks outside the requester's
// visible set answer 404; existence is never revealed to non-owners.
func GetTask(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		user := middleware.CurrentUser(c)

		task, ok := findTask(c, db, user)
		if !ok {
			return
		}

		resp, err := newTaskResponse(db, task, user, includeTodos(c))
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve task"})
			return
		}
		c.JSON(http.StatusOK, resp)
	}
}

// UpdateTask applies a partial update to a task and merges any nested todo
// patches through the reconciliation engine.
func UpdateTask(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		user := middleware.CurrentUser(c)

		task, ok := findTask(c, db, user)
		if !ok {
			return
		}

		var input UpdateTaskInput
		if err := c.ShouldBindJSON(&input); err != nil {
			bindError(c, err)
			return
		}
		if blankTitle(c, input.Title) {
			return
		}

		if input.Title != nil {
			task.Title = *input.Title
		}
		if input.Description != nil {
			task.Description = input.Description
		}
		if err := db.Save(task).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update task"})
			return
		}

		if err := repository.ReconcileTodos(db, task, user, input.Todos); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update todos"})
			return
		}

		resp, err := newTaskResponse(db, task, user, includeTodos(c))
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update task"})
			return
		}
		c.JSON(http.StatusOK, resp)
	}
}

// DeleteTask deletes a task and every todo attached to it.
func DeleteTask(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		user := middleware.CurrentUser(c)

		task, ok := findTask(c, db, user)
		if !ok {
			return
		}

		if err := repository.DeleteTaskCascade(db, task); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete task"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"message": "Task deleted successfully"})
	}
}

// findTask resolves the :id param within the requester's visible set. On
// failure it writes the 404 response and returns ok=false. Malformed ids get
// the same 404 as unknown ones.
func findTask(c *gin.Context, db *gorm.DB, user *models.User) (*models.Task, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Task not found"})
		return nil, false
	}
	task, err := repository.FindVisibleTask(db, user, id)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Task not found"})
		return nil, false
	}
	return task, true
}
