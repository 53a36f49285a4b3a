package repository

import (
	"testing"

	"github.com/google/uuid"
	"github.com/terzigolu/taskboard-go/pkg/models"
)

func strptr(s string) *string { return &s }

func boolptr(b bool) *bool { return &b }

// The canonical mixed-payload scenario: one patch updates an owned todo, one
// names a foreign todo and must be skipped, one creates a new todo.
func TestReconcileMixedPatches(t *testing.T) {
	db := newTestDB(t)
	alice := createTestUser(t, db, "alice", false)
	bob := createTestUser(t, db, "bob", false)

	task := createTestTask(t, db, alice, "trip")
	owned := createTestTodo(t, db, alice, task, "pack bags")
	foreign := createTestTodo(t, db, bob, task, "bob's todo")

	ownedID := owned.ID
	foreignID := foreign.ID
	patches := []TodoPatch{
		{ID: &ownedID, Title: strptr("new")},
		{ID: &foreignID, Title: strptr("hack")},
		{Title: strptr("brand new")},
	}

	if err := ReconcileTodos(db, task, alice, patches); err != nil {
		t.Fatalf("ReconcileTodos() error = %v", err)
	}

	var got models.Todo
	if err := db.First(&got, "id = ?", owned.ID).Error; err != nil {
		t.Fatalf("owned todo vanished: %v", err)
	}
	if got.Title != "new" {
		t.Errorf("owned todo title = %q, want %q", got.Title, "new")
	}
	if got.TaskID == nil || *got.TaskID != task.ID {
		t.Errorf("owned todo detached from task")
	}

	// The foreign todo was skipped, not mutated and not deleted.
	got = models.Todo{}
	if err := db.First(&got, "id = ?", foreign.ID).Error; err != nil {
		t.Fatalf("foreign todo vanished: %v", err)
	}
	if got.Title != "bob's todo" {
		t.Errorf("foreign todo title = %q, want unchanged", got.Title)
	}
	if got.UserID != bob.ID {
		t.Errorf("foreign todo owner changed to %s", got.UserID)
	}

	var count int64
	if err := db.Model(&models.Todo{}).Where("task_id = ?", task.ID).Count(&count).Error; err != nil {
		t.Fatalf("count error = %v", err)
	}
	if count != 3 {
		t.Errorf("todos under task = %d, want 3", count)
	}

	var created models.Todo
	if err := db.Where("title = ?", "brand new").First(&created).Error; err != nil {
		t.Fatalf("created todo missing: %v", err)
	}
	if created.UserID != alice.ID {
		t.Errorf("created todo owner = %s, want requester", created.UserID)
	}
	if created.TaskID == nil || *created.TaskID != task.ID {
		t.Errorf("created todo not attached to task")
	}
}

func TestReconcileEmptyPayloadLeavesTodosUntouched(t *testing.T) {
	db := newTestDB(t)
	alice := createTestUser(t, db, "alice", false)
	task := createTestTask(t, db, alice, "trip")
	createTestTodo(t, db, alice, task, "a")
	createTestTodo(t, db, alice, task, "b")

	if err := ReconcileTodos(db, task, alice, nil); err != nil {
		t.Fatalf("ReconcileTodos() error = %v", err)
	}

	var count int64
	if err := db.Model(&models.Todo{}).Where("task_id = ?", task.ID).Count(&count).Error; err != nil {
		t.Fatalf("count error = %v", err)
	}
	if count != 2 {
		t.Errorf("todos under task = %d, want 2 (merge, not replace)", count)
	}
}

func TestReconcileCreateAppliesDefaults(t *testing.T) {
	db := newTestDB(t)
	alice := createTestUser(t, db, "alice", false)
	task := createTestTask(t, db, alice, "trip")

	patches := []TodoPatch{
		{Title: strptr("no tags"), Completed: boolptr(true)},
		{Title: strptr("tagged"), Tags: []string{"work", "urgent"}},
	}
	if err := ReconcileTodos(db, task, alice, patches); err != nil {
		t.Fatalf("ReconcileTodos() error = %v", err)
	}

	var plain models.Todo
	if err := db.Where("title = ?", "no tags").First(&plain).Error; err != nil {
		t.Fatalf("todo missing: %v", err)
	}
	if len(plain.Tags) != 1 || plain.Tags[0] != "general" {
		t.Errorf("default tags = %v, want [general]", []string(plain.Tags))
	}
	if !plain.Completed {
		t.Errorf("completed flag not applied on create")
	}

	var tagged models.Todo
	if err := db.Where("title = ?", "tagged").First(&tagged).Error; err != nil {
		t.Fatalf("todo missing: %v", err)
	}
	if len(tagged.Tags) != 2 || tagged.Tags[0] != "work" {
		t.Errorf("tags = %v, want [work urgent]", []string(tagged.Tags))
	}
}

func TestReconcileReattachesTodoFromOtherTask(t *testing.T) {
	db := newTestDB(t)
	alice := createTestUser(t, db, "alice", false)
	task1 := createTestTask(t, db, alice, "first")
	task2 := createTestTask(t, db, alice, "second")

	standalone := createTestTodo(t, db, alice, nil, "standalone")
	elsewhere := createTestTodo(t, db, alice, task1, "elsewhere")

	standaloneID := standalone.ID
	elsewhereID := elsewhere.ID
	patches := []TodoPatch{
		{ID: &standaloneID},
		{ID: &elsewhereID, Completed: boolptr(true)},
	}
	if err := ReconcileTodos(db, task2, alice, patches); err != nil {
		t.Fatalf("ReconcileTodos() error = %v", err)
	}

	for _, id := range []uuid.UUID{standalone.ID, elsewhere.ID} {
		var got models.Todo
		if err := db.First(&got, "id = ?", id).Error; err != nil {
			t.Fatalf("todo %s missing: %v", id, err)
		}
		if got.TaskID == nil || *got.TaskID != task2.ID {
			t.Errorf("todo %s not reattached to target task", id)
		}
	}
}

func TestReconcilePartialPatchLeavesOtherFields(t *testing.T) {
	db := newTestDB(t)
	alice := createTestUser(t, db, "alice", false)
	task := createTestTask(t, db, alice, "trip")

	todo := createTestTodo(t, db, alice, task, "keep me")
	todoID := todo.ID

	if err := ReconcileTodos(db, task, alice, []TodoPatch{{ID: &todoID, Completed: boolptr(true)}}); err != nil {
		t.Fatalf("ReconcileTodos() error = %v", err)
	}

	var got models.Todo
	if err := db.First(&got, "id = ?", todo.ID).Error; err != nil {
		t.Fatalf("todo missing: %v", err)
	}
	if got.Title != "keep me" {
		t.Errorf("title = %q, want unchanged", got.Title)
	}
	if !got.Completed {
		t.Errorf("completed not applied")
	}
}

func TestReconcileUnknownIDIsSkipped(t *testing.T) {
	db := newTestDB(t)
	alice := createTestUser(t, db, "alice", false)
	task := createTestTask(t, db, alice, "trip")

	bogus := uuid.New()
	if err := ReconcileTodos(db, task, alice, []TodoPatch{{ID: &bogus, Title: strptr("ghost")}}); err != nil {
		t.Fatalf("ReconcileTodos() error = %v, want silent skip", err)
	}

	var count int64
	if err := db.Model(&models.Todo{}).Count(&count).Error; err != nil {
		t.Fatalf("count error = %v", err)
	}
	if count != 0 {
		t.Errorf("todo count = %d, want 0", count)
	}
}
