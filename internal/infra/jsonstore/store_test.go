package jsonstore

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/ytakei/taskwarden/internal/domain"
)

func TestStore_Initialize(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "tasks.json")

	store := New(path)

	// Initialize should create the file
	if err := store.Initialize(); err != nil {
		t.Fatalf("Initialize() error = %v", err)
	}

	if _, err := os.Stat(path); err != nil {
		t.Errorf("store file not created: %v", err)
	}

	// Initialize again should be idempotent
	if err := store.Initialize(); err != nil {
		t.Fatalf("Initialize() second call error = %v", err)
	}
}

func TestStore_LoadMissingFile(t *testing.T) {
	store := New(filepath.Join(t.TempDir(), "tasks.json"))

	doc, err := store.Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if doc == nil {
		t.Fatal("Load() returned nil document")
	}
	if len(doc.Requests) != 0 {
		t.Errorf("Load() returned %d requests, want 0", len(doc.Requests))
	}
}

func TestStore_SaveAndLoad(t *testing.T) {
	store := newTestStore(t)

	doc := &domain.Document{Requests: []*domain.Request{
		{
			RequestID:       "req-1",
			OriginalRequest: "Build the thing",
			SplitDetails:    "Build the thing",
			Tasks: []*domain.Task{
				{
					ID:          "req-1-task-1",
					Title:       "First task",
					Description: "Do the first thing",
					Subtasks: []*domain.Subtask{
						{ID: "req-1-task-1-subtask-1", Content: "step one", Status: domain.StatusPending},
					},
				},
			},
		},
	}}

	if err := store.Save(doc); err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	got, err := store.Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if len(got.Requests) != 1 {
		t.Fatalf("Load() returned %d requests, want 1", len(got.Requests))
	}

	req := got.Requests[0]
	if req.RequestID != "req-1" {
		t.Errorf("RequestID = %q, want %q", req.RequestID, "req-1")
	}
	if req.OriginalRequest != "Build the thing" {
		t.Errorf("OriginalRequest = %q, want %q", req.OriginalRequest, "Build the thing")
	}
	if len(req.Tasks) != 1 {
		t.Fatalf("Tasks = %d, want 1", len(req.Tasks))
	}
	task := req.Tasks[0]
	if task.ID != "req-1-task-1" {
		t.Errorf("Task.ID = %q, want %q", task.ID, "req-1-task-1")
	}
	if len(task.Subtasks) != 1 {
		t.Fatalf("Subtasks = %d, want 1", len(task.Subtasks))
	}
	if task.Subtasks[0].Status != domain.StatusPending {
		t.Errorf("Subtask.Status = %q, want %q", task.Subtasks[0].Status, domain.StatusPending)
	}
}

func TestStore_SaveReplacesDocument(t *testing.T) {
	store := newTestStore(t)

	first := &domain.Document{Requests: []*domain.Request{
		{RequestID: "req-1", OriginalRequest: "one"},
		{RequestID: "req-2", OriginalRequest: "two"},
	}}
	if err := store.Save(first); err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	second := &domain.Document{Requests: []*domain.Request{
		{RequestID: "req-1", OriginalRequest: "one"},
	}}
	if err := store.Save(second); err != nil {
		t.Fatalf("Save() update error = %v", err)
	}

	got, err := store.Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if len(got.Requests) != 1 {
		t.Errorf("Load() returned %d requests after replace, want 1", len(got.Requests))
	}
}

func TestStore_SaveCreatesParentDirs(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "deeper", "tasks.json")
	store := New(path)

	if err := store.Save(&domain.Document{}); err != nil {
		t.Fatalf("Save() error = %v", err)
	}
	if _, err := os.Stat(path); err != nil {
		t.Errorf("store file not created: %v", err)
	}
}

func TestStore_LoadCorruptFileQuarantined(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "tasks.json")
	if err := os.WriteFile(path, []byte("{not json"), 0o600); err != nil {
		t.Fatalf("write corrupt file: %v", err)
	}

	store := New(path)
	doc, err := store.Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if len(doc.Requests) != 0 {
		t.Errorf("Load() returned %d requests from corrupt file, want 0", len(doc.Requests))
	}

	// The broken file is moved aside, not destroyed.
	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatalf("ReadDir() error = %v", err)
	}
	found := false
	for _, e := range entries {
		if strings.HasPrefix(e.Name(), "tasks.json.corrupt-") {
			found = true
		}
		if e.Name() == "tasks.json" {
			t.Error("corrupt file left in place")
		}
	}
	if !found {
		t.Error("no quarantined copy of the corrupt file")
	}
}

func TestStore_NoTempFileLeftBehind(t *testing.T) {
	store := newTestStore(t)

	if err := store.Save(&domain.Document{}); err != nil {
		t.Fatalf("Save() error = %v", err)
	}
	if _, err := os.Stat(store.Path() + ".tmp"); !os.IsNotExist(err) {
		t.Error("temp file left behind after Save()")
	}
}

// newTestStore creates a new store with a temporary file for testing.
func newTestStore(t *testing.T) *Store {
	t.Helper()
	path := filepath.Join(t.TempDir(), "tasks.json")
	store := New(path)
	if err := store.Initialize(); err != nil {
		t.Fatalf("Initialize() error = %v", err)
	}
	return store
}
