package repository

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/terzigolu/taskboard-go/pkg/models"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// TodoPatch describes one element of a task update's todos list. Nil fields
// were absent from the payload and leave the target field unchanged.
type TodoPatch struct {
	ID          *uuid.UUID `json:"id"`
	Title       *string    `json:"title"`
	Description *string    `json:"description"`
	Completed   *bool      `json:"completed"`
	DueDate     *time.Time `json:"due_date"`
	Tags        []string   `json:"tags"`
}

// ReconcileTodos merges a list of todo patches into the todos of a task.
//
// Patches are processed in input order, each persisted independently. A patch
// without an id creates a new todo owned by the requester and attached to the
// task. A patch whose id resolves to a todo owned by the requester updates
// that todo in place, reattaching it to the task if it currently points
// elsewhere; owner and id are never touched. A patch whose id resolves to
// nothing the requester owns is skipped silently.
//
// Todos of the task that no patch mentions are left untouched and stay
// associated; this is a merge, never a delete-and-replace.
func ReconcileTodos(db *gorm.DB, task *models.Task, requester *models.User, patches []TodoPatch) error {
	for i, patch := range patches {
		if patch.ID == nil {
			if err := createPatchedTodo(db, task, requester, patch); err != nil {
				return fmt.Errorf("todos[%d]: %w", i, err)
			}
			continue
		}

		var todo models.Todo
		err := db.Where("id = ? AND user_id = ?", *patch.ID, requester.ID).First(&todo).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			// Unknown id, or a todo owned by someone else. Skip.
			continue
		}
		if err != nil {
			return fmt.Errorf("todos[%d]: %w", i, err)
		}

		applyPatch(&todo, patch)
		if todo.TaskID == nil || *todo.TaskID != task.ID {
			taskID := task.ID
			todo.TaskID = &taskID
		}
		if err := db.Save(&todo).Error; err != nil {
			return fmt.Errorf("todos[%d]: %w", i, err)
		}
	}
	return nil
}

func createPatchedTodo(db *gorm.DB, task *models.Task, requester *models.User, patch TodoPatch) error {
	taskID := task.ID
	todo := models.Todo{
		UserID: requester.ID,
		TaskID: &taskID,
	}
	applyPatch(&todo, patch)
	return db.Create(&todo).Error
}

// applyPatch copies every present patch field onto the todo. Ownership and
// task attachment are handled by the caller, never by the patch.
func applyPatch(todo *models.Todo, patch TodoPatch) {
	if patch.Title != nil {
		todo.Title = *patch.Title
	}
	if patch.Description != nil {
		todo.Description = patch.Description
	}
	if patch.Completed != nil {
		todo.Completed = *patch.Completed
	}
	if patch.DueDate != nil {
		todo.DueDate = patch.DueDate
	}
	if patch.Tags != nil {
		todo.Tags = datatypes.NewJSONSlice(patch.Tags)
	}
}
