package repository

import (
	"fmt"
	"sync/atomic"
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/terzigolu/taskboard-go/pkg/models"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var testDBCounter int64

// newTestDB opens a fresh in-memory database with the full schema migrated.
// Each test gets its own named shared-cache DB so pooled connections see the
// same data.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	n := atomic.AddInt64(&testDBCounter, 1)
	dsn := fmt.Sprintf("file:repo_test_%d?mode=memory&cache=shared", n)
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}
	if err := AutoMigrate(db); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}
	return db
}

func createTestUser(t *testing.T, db *gorm.DB, username string, superuser bool) *models.User {
	t.Helper()

	user := models.User{Username: username, IsSuperuser: superuser}
	if err := user.SetPassword("secret123"); err != nil {
		t.Fatalf("failed to hash password: %v", err)
	}
	if err := db.Create(&user).Error; err != nil {
		t.Fatalf("failed to create user %s: %v", username, err)
	}
	return &user
}

// testClock hands out strictly increasing timestamps so created_at ordering
// is deterministic even when records are created in the same instant.
var testClock int64

func nextTimestamp() time.Time {
	n := atomic.AddInt64(&testClock, 1)
	return time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC).Add(time.Duration(n) * time.Second)
}

func createTestTask(t *testing.T, db *gorm.DB, owner *models.User, title string) *models.Task {
	t.Helper()

	task := models.Task{Title: title, UserID: owner.ID, CreatedAt: nextTimestamp()}
	if err := db.Create(&task).Error; err != nil {
		t.Fatalf("failed to create task %s: %v", title, err)
	}
	return &task
}

func createTestTodo(t *testing.T, db *gorm.DB, owner *models.User, task *models.Task, title string) *models.Todo {
	t.Helper()

	todo := models.Todo{Title: title, UserID: owner.ID, CreatedAt: nextTimestamp()}
	if task != nil {
		taskID := task.ID
		todo.TaskID = &taskID
	}
	if err := db.Create(&todo).Error; err != nil {
		t.Fatalf("failed to create todo %s: %v", title, err)
	}
	return &todo
}
