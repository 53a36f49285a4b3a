package repository

import (
	"fmt"

	"github.com/terzigolu/taskboard-go/pkg/models"
	"gorm.io/gorm"
)

// DeleteTaskCascade deletes every todo attached to the task, then the task
// itself. Deletion authority follows ownership of the task, not of each todo:
// the cascade removes attached todos regardless of who owns them. The two
// steps are separate statements, not a single transaction; the schema-level
// ON DELETE CASCADE on todo.task_id is a backstop should the first step be
// interrupted.
func DeleteTaskCascade(db *gorm.DB, task *models.Task) error {
	if err := db.Where("task_id = ?", task.ID).Delete(&models.Todo{}).Error; err != nil {
		return fmt.Errorf("failed to delete todos of task %s: %w", task.ID, err)
	}
	if err := db.Delete(task).Error; err != nil {
		return fmt.Errorf("failed to delete task %s: %w", task.ID, err)
	}
	return nil
}
