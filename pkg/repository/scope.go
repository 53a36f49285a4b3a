package repository

import (
	"github.com/google/uuid"
	"github.com/terzigolu/taskboard-go/pkg/models"
	"gorm.io/gorm"
)

// VisibleTasks returns the task query scoped to the given user: superusers
// see every task, everyone else only their own. Newest first.
func VisibleTasks(db *gorm.DB, user *models.User) *gorm.DB {
	q := db.Model(&models.Task{}).Order("created_at DESC")
	if user.IsSuperuser {
		return q
	}
	return q.Where("user_id = ?", user.ID)
}

// VisibleTodos returns the todo query scoped to the given user, newest first.
func VisibleTodos(db *gorm.DB, user *models.User) *gorm.DB {
	q := db.Model(&models.Todo{}).Order("created_at DESC")
	if user.IsSuperuser {
		return q
	}
	return q.Where("user_id = ?", user.ID)
}

// FindVisibleTask fetches a single task by id within the user's visible set.
// A task outside the visible set is indistinguishable from a missing one:
// both return gorm.ErrRecordNotFound.
func FindVisibleTask(db *gorm.DB, user *models.User, id uuid.UUID) (*models.Task, error) {
	var task models.Task
	if err := VisibleTasks(db, user).First(&task, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &task, nil
}

// FindVisibleTodo fetches a single todo by id within the user's visible set.
func FindVisibleTodo(db *gorm.DB, user *models.User, id uuid.UUID) (*models.Todo, error) {
	var todo models.Todo
	if err := VisibleTodos(db, user).Preload("Task").First(&todo, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &todo, nil
}

// TaskTodos returns the todos under a task that are owned by the given user,
// newest first. The nested list is always owner-filtered, superuser or not.
func TaskTodos(db *gorm.DB, task *models.Task, user *models.User) ([]*models.Todo, error) {
	var todos []*models.Todo
	err := db.Where("task_id = ? AND user_id = ?", task.ID, user.ID).
		Order("created_at DESC").
		Find(&todos).Error
	if err != nil {
		return nil, err
	}
	return todos, nil
}

// CountTaskTodos returns the number of todos under a task owned by the user.
func CountTaskTodos(db *gorm.DB, task *models.Task, user *models.User) (int64, error) {
	var count int64
	err := db.Model(&models.Todo{}).
		Where("task_id = ? AND user_id = ?", task.ID, user.ID).
		Count(&count).Error
	return count, err
}
