package repository

import (
	"errors"
	"testing"

	"github.com/terzigolu/taskboard-go/pkg/models"
	"gorm.io/gorm"
)

func TestVisibleTasksOwnerScoping(t *testing.T) {
	db := newTestDB(t)
	alice := createTestUser(t, db, "alice", false)
	bob := createTestUser(t, db, "bob", false)

	createTestTask(t, db, alice, "alice-1")
	createTestTask(t, db, bob, "bob-1")
	createTestTask(t, db, alice, "alice-2")

	var tasks []models.Task
	if err := VisibleTasks(db, alice).Find(&tasks).Error; err != nil {
		t.Fatalf("VisibleTasks() error = %v", err)
	}

	if len(tasks) != 2 {
		t.Fatalf("VisibleTasks() returned %d tasks, want 2", len(tasks))
	}
	// Newest first
	if tasks[0].Title != "alice-2" || tasks[1].Title != "alice-1" {
		t.Errorf("VisibleTasks() order = [%s, %s], want [alice-2, alice-1]", tasks[0].Title, tasks[1].Title)
	}
	for _, task := range tasks {
		if task.UserID != alice.ID {
			t.Errorf("VisibleTasks() leaked task %s owned by %s", task.Title, task.UserID)
		}
	}
}

func TestVisibleTasksSuperuserSeesAll(t *testing.T) {
	db := newTestDB(t)
	alice := createTestUser(t, db, "alice", false)
	bob := createTestUser(t, db, "bob", false)
	admin := createTestUser(t, db, "admin", true)

	createTestTask(t, db, alice, "alice-1")
	createTestTask(t, db, bob, "bob-1")

	var tasks []models.Task
	if err := VisibleTasks(db, admin).Find(&tasks).Error; err != nil {
		t.Fatalf("VisibleTasks() error = %v", err)
	}
	if len(tasks) != 2 {
		t.Errorf("VisibleTasks() for superuser returned %d tasks, want 2", len(tasks))
	}
}

func TestFindVisibleTaskHidesForeignRecords(t *testing.T) {
	db := newTestDB(t)
	alice := createTestUser(t, db, "alice", false)
	bob := createTestUser(t, db, "bob", false)

	task := createTestTask(t, db, bob, "bob-task")

	// The record exists but is outside alice's visible set; she gets the
	// same not-found as for a random id.
	_, err := FindVisibleTask(db, alice, task.ID)
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		t.Errorf("FindVisibleTask() error = %v, want ErrRecordNotFound", err)
	}

	if _, err := FindVisibleTask(db, bob, task.ID); err != nil {
		t.Errorf("FindVisibleTask() for owner error = %v", err)
	}

	if _, err := FindVisibleTask(db, createTestUser(t, db, "admin", true), task.ID); err != nil {
		t.Errorf("FindVisibleTask() for superuser error = %v", err)
	}
}

func TestVisibleTodosOwnerScoping(t *testing.T) {
	db := newTestDB(t)
	alice := createTestUser(t, db, "alice", false)
	bob := createTestUser(t, db, "bob", false)

	createTestTodo(t, db, alice, nil, "alice-todo")
	foreign := createTestTodo(t, db, bob, nil, "bob-todo")

	var todos []models.Todo
	if err := VisibleTodos(db, alice).Find(&todos).Error; err != nil {
		t.Fatalf("VisibleTodos() error = %v", err)
	}
	if len(todos) != 1 || todos[0].Title != "alice-todo" {
		t.Errorf("VisibleTodos() = %v, want only alice-todo", todos)
	}

	_, err := FindVisibleTodo(db, alice, foreign.ID)
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		t.Errorf("FindVisibleTodo() error = %v, want ErrRecordNotFound", err)
	}
}

func TestTaskTodosAlwaysOwnerFiltered(t *testing.T) {
	db := newTestDB(t)
	alice := createTestUser(t, db, "alice", false)
	bob := createTestUser(t, db, "bob", false)
	admin := createTestUser(t, db, "admin", true)

	task := createTestTask(t, db, alice, "shared")
	createTestTodo(t, db, alice, task, "alice-todo")
	createTestTodo(t, db, bob, task, "bob-todo")

	todos, err := TaskTodos(db, task, alice)
	if err != nil {
		t.Fatalf("TaskTodos() error = %v", err)
	}
	if len(todos) != 1 || todos[0].Title != "alice-todo" {
		t.Errorf("TaskTodos() for alice = %d todos, want just alice-todo", len(todos))
	}

	// The nested list stays owner-filtered even for superusers.
	todos, err = TaskTodos(db, task, admin)
	if err != nil {
		t.Fatalf("TaskTodos() error = %v", err)
	}
	if len(todos) != 0 {
		t.Errorf("TaskTodos() for superuser = %d todos, want 0", len(todos))
	}

	count, err := CountTaskTodos(db, task, alice)
	if err != nil {
		t.Fatalf("CountTaskTodos() error = %v", err)
	}
	if count != 1 {
		t.Errorf("CountTaskTodos() = %d, want 1", count)
	}
}
