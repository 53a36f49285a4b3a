package repository

import (
	"errors"
	"testing"

	"github.com/terzigolu/taskboard-go/pkg/models"
	"gorm.io/gorm"
)

func TestDeleteTaskCascadeMixedOwners(t *testing.T) {
	db := newTestDB(t)
	alice := createTestUser(t, db, "alice", false)
	bob := createTestUser(t, db, "bob", false)

	task := createTestTask(t, db, alice, "doomed")
	mine := createTestTodo(t, db, alice, task, "mine")
	theirs := createTestTodo(t, db, bob, task, "theirs")
	unrelated := createTestTodo(t, db, alice, nil, "unrelated")

	if err := DeleteTaskCascade(db, task); err != nil {
		t.Fatalf("DeleteTaskCascade() error = %v", err)
	}

	// Every attached todo is gone, whoever owned it.
	for _, id := range []string{mine.ID.String(), theirs.ID.String()} {
		var todo models.Todo
		if err := db.First(&todo, "id = ?", id).Error; !errors.Is(err, gorm.ErrRecordNotFound) {
			t.Errorf("todo %s still resolves after cascade, err = %v", id, err)
		}
	}
	var gone models.Task
	if err := db.First(&gone, "id = ?", task.ID).Error; !errors.Is(err, gorm.ErrRecordNotFound) {
		t.Errorf("task still resolves after cascade, err = %v", err)
	}

	var survivor models.Todo
	if err := db.First(&survivor, "id = ?", unrelated.ID).Error; err != nil {
		t.Errorf("unattached todo deleted by cascade: %v", err)
	}
}

func TestDeleteTaskCascadeWithoutTodos(t *testing.T) {
	db := newTestDB(t)
	alice := createTestUser(t, db, "alice", false)
	task := createTestTask(t, db, alice, "empty")

	if err := DeleteTaskCascade(db, task); err != nil {
		t.Fatalf("DeleteTaskCascade() error = %v", err)
	}

	var got models.Task
	if err := db.First(&got, "id = ?", task.ID).Error; !errors.Is(err, gorm.ErrRecordNotFound) {
		t.Errorf("task still resolves after delete, err = %v", err)
	}
}
