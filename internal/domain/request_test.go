package domain

import (
	"testing"
	"time"
)

func pct(t *Task) int {
	if t.CompletionPercentage == nil {
		return -1
	}
	return *t.CompletionPercentage
}

func TestTask_RecomputeCompletion(t *testing.T) {
	task := &Task{ID: "req-1-task-1"}

	// No subtasks: percentage is absent.
	task.RecomputeCompletion()
	if task.CompletionPercentage != nil {
		t.Errorf("CompletionPercentage = %d, want absent", *task.CompletionPercentage)
	}

	task.Subtasks = []*Subtask{
		{ID: "a", Status: StatusCompleted},
		{ID: "b", Status: StatusPending},
		{ID: "c", Status: StatusInProgress},
		{ID: "d", Status: StatusCancelled},
	}
	task.RecomputeCompletion()
	if got := pct(task); got != 25 {
		t.Errorf("CompletionPercentage = %d, want 25", got)
	}

	task.Subtasks[1].Status = StatusCompleted
	task.RecomputeCompletion()
	if got := pct(task); got != 50 {
		t.Errorf("CompletionPercentage = %d, want 50", got)
	}

	// Rounding: 2 of 3 completed is 66.67, rounded to 67.
	task.Subtasks = task.Subtasks[:3]
	task.RecomputeCompletion()
	if got := pct(task); got != 67 {
		t.Errorf("CompletionPercentage = %d, want 67", got)
	}

	// Dropping the last subtask clears the field entirely.
	task.Subtasks = nil
	task.RecomputeCompletion()
	if task.CompletionPercentage != nil {
		t.Error("CompletionPercentage should be cleared when no subtasks remain")
	}
}

func TestTask_AllSubtasksCompleted(t *testing.T) {
	task := &Task{}
	if !task.AllSubtasksCompleted() {
		t.Error("task without subtasks should count as all completed")
	}

	task.Subtasks = []*Subtask{
		{Status: StatusCompleted},
		{Status: StatusCancelled},
	}
	if task.AllSubtasksCompleted() {
		t.Error("cancelled subtask should block completion")
	}
	if got := task.RemainingSubtasks(); got != 1 {
		t.Errorf("RemainingSubtasks = %d, want 1", got)
	}

	task.Subtasks[1].Status = StatusCompleted
	if !task.AllSubtasksCompleted() {
		t.Error("all completed subtasks should pass")
	}
}

func TestTask_SortedSubtasks_TieBreakByID(t *testing.T) {
	base := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)
	task := &Task{Subtasks: []*Subtask{
		{ID: "req-1-task-1-subtask-3", CreatedAt: base.Add(time.Minute)},
		{ID: "req-1-task-1-subtask-2", CreatedAt: base},
		{ID: "req-1-task-1-subtask-1", CreatedAt: base}, // same tick as subtask-2
	}}

	sorted := task.SortedSubtasks()
	want := []string{"req-1-task-1-subtask-1", "req-1-task-1-subtask-2", "req-1-task-1-subtask-3"}
	for i, s := range sorted {
		if s.ID != want[i] {
			t.Errorf("sorted[%d] = %s, want %s", i, s.ID, want[i])
		}
	}

	if got := task.DisplayNumber("req-1-task-1-subtask-2"); got != 2 {
		t.Errorf("DisplayNumber = %d, want 2", got)
	}
	if got := task.DisplayNumber("missing"); got != 0 {
		t.Errorf("DisplayNumber(missing) = %d, want 0", got)
	}
}

func TestRequest_Gating(t *testing.T) {
	r := &Request{RequestID: "req-1", Tasks: []*Task{
		{ID: "req-1-task-1", Done: true, Approved: true},
		{ID: "req-1-task-2", Done: true},
	}}

	if !r.AllTasksDone() {
		t.Error("AllTasksDone should be true")
	}
	if r.AllTasksApproved() {
		t.Error("AllTasksApproved should be false")
	}

	r.Tasks[1].Approved = true
	if !r.AllTasksApproved() {
		t.Error("AllTasksApproved should be true")
	}
}

func TestDocument_FindTask(t *testing.T) {
	doc := &Document{Requests: []*Request{
		{RequestID: "req-1", Tasks: []*Task{{ID: "req-1-task-1"}}},
		{RequestID: "req-2", Tasks: []*Task{{ID: "req-2-task-1"}}},
	}}

	req, task := doc.FindTask("req-2-task-1")
	if req == nil || req.RequestID != "req-2" {
		t.Fatal("owning request not found")
	}
	if task == nil || task.ID != "req-2-task-1" {
		t.Fatal("task not found")
	}

	if req, task := doc.FindTask("req-9-task-9"); req != nil || task != nil {
		t.Error("expected nil, nil for unknown task")
	}
}

func TestTask_RemoveSubtask(t *testing.T) {
	task := &Task{Subtasks: []*Subtask{{ID: "a"}, {ID: "b"}}}
	if !task.RemoveSubtask("a") {
		t.Error("RemoveSubtask(a) = false, want true")
	}
	if len(task.Subtasks) != 1 || task.Subtasks[0].ID != "b" {
		t.Errorf("unexpected subtasks after removal: %v", task.Subtasks)
	}
	if task.RemoveSubtask("a") {
		t.Error("removing twice should return false")
	}
}
