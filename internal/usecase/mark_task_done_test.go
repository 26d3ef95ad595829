package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/ytakei/taskwarden/internal/domain"
	"github.com/ytakei/taskwarden/internal/testutil"
)

func TestMarkTaskDone_Execute_Success(t *testing.T) {
	store := seedStore(&domain.Task{ID: "req-1-task-1", Title: "a"})
	uc := NewMarkTaskDone(store, testutil.MockLogger{})

	out, err := uc.Execute(context.Background(), MarkTaskDoneInput{
		RequestID:        "req-1",
		TaskID:           "req-1-task-1",
		CompletedDetails: "shipped in v1.2",
	})

	require.NoError(t, err)
	assert.Equal(t, StatusTaskMarkedDone, out.Status)
	assert.True(t, out.Task.Done)
	assert.Equal(t, "shipped in v1.2", out.Task.CompletedDetails)

	saved := store.Doc.Requests[0].Tasks[0]
	assert.True(t, saved.Done)
	assert.False(t, saved.Approved, "approval is a separate gate")
}

func TestMarkTaskDone_Execute_AlreadyDone(t *testing.T) {
	store := seedStore(&domain.Task{ID: "req-1-task-1", Done: true})
	uc := NewMarkTaskDone(store, testutil.MockLogger{})

	_, err := uc.Execute(context.Background(), MarkTaskDoneInput{
		RequestID: "req-1",
		TaskID:    "req-1-task-1",
	})

	assert.ErrorIs(t, err, domain.ErrTaskAlreadyDone)
}

func TestMarkTaskDone_Execute_SubtasksIncomplete(t *testing.T) {
	store := seedStore(&domain.Task{ID: "req-1-task-1", Subtasks: []*domain.Subtask{
		{ID: "s1", Content: "one", Status: domain.StatusCompleted},
		{ID: "s2", Content: "two", Status: domain.StatusPending},
		{ID: "s3", Content: "three", Status: domain.StatusInProgress},
		{ID: "s4", Content: "four", Status: domain.StatusCancelled},
	}})
	uc := NewMarkTaskDone(store, testutil.MockLogger{})

	_, err := uc.Execute(context.Background(), MarkTaskDoneInput{
		RequestID: "req-1",
		TaskID:    "req-1-task-1",
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrSubtasksIncomplete)

	var incomplete *domain.SubtasksIncompleteError
	require.True(t, errors.As(err, &incomplete))
	assert.Equal(t, 25, incomplete.CompletionPercentage)
	assert.Equal(t, 3, incomplete.RemainingSubtasks)

	assert.False(t, store.Doc.Requests[0].Tasks[0].Done, "no partial change applied")
}

func TestMarkTaskDone_Execute_AllSubtasksCompleted(t *testing.T) {
	store := seedStore(&domain.Task{ID: "req-1-task-1", Subtasks: []*domain.Subtask{
		{ID: "s1", Content: "one", Status: domain.StatusCompleted},
		{ID: "s2", Content: "two", Status: domain.StatusCompleted},
	}})
	uc := NewMarkTaskDone(store, testutil.MockLogger{})

	out, err := uc.Execute(context.Background(), MarkTaskDoneInput{
		RequestID: "req-1",
		TaskID:    "req-1-task-1",
	})

	require.NoError(t, err)
	assert.True(t, out.Task.Done)
}

func TestApproveTask_Execute_RequiresDone(t *testing.T) {
	store := seedStore(&domain.Task{ID: "req-1-task-1"})
	uc := NewApproveTask(store, testutil.MockLogger{})

	_, err := uc.Execute(context.Background(), ApproveTaskInput{
		RequestID: "req-1",
		TaskID:    "req-1-task-1",
	})

	assert.ErrorIs(t, err, domain.ErrTaskNotDone)
	assert.False(t, store.Doc.Requests[0].Tasks[0].Approved, "no not-done -> approved shortcut")
}

func TestApproveTask_Execute_Success(t *testing.T) {
	store := seedStore(&domain.Task{ID: "req-1-task-1", Done: true})
	uc := NewApproveTask(store, testutil.MockLogger{})

	out, err := uc.Execute(context.Background(), ApproveTaskInput{
		RequestID: "req-1",
		TaskID:    "req-1-task-1",
	})

	require.NoError(t, err)
	assert.Equal(t, StatusTaskApproved, out.Status)
	assert.True(t, store.Doc.Requests[0].Tasks[0].Approved)
}

func TestApproveTask_Execute_Twice(t *testing.T) {
	store := seedStore(&domain.Task{ID: "req-1-task-1", Done: true, Approved: true})
	uc := NewApproveTask(store, testutil.MockLogger{})

	saves := store.SaveCalls
	_, err := uc.Execute(context.Background(), ApproveTaskInput{
		RequestID: "req-1",
		TaskID:    "req-1-task-1",
	})

	assert.ErrorIs(t, err, domain.ErrTaskAlreadyApproved)
	assert.Equal(t, saves, store.SaveCalls, "no side effects on repeated approval")
}

func TestApproveRequest_Execute_Gating(t *testing.T) {
	store := seedStore(
		&domain.Task{ID: "req-1-task-1", Done: true, Approved: true},
		&domain.Task{ID: "req-1-task-2", Done: false},
	)
	uc := NewApproveRequest(store, testutil.MockLogger{})

	_, err := uc.Execute(context.Background(), ApproveRequestInput{RequestID: "req-1"})
	assert.ErrorIs(t, err, domain.ErrTasksNotDone)

	store.Doc.Requests[0].Tasks[1].Done = true
	_, err = uc.Execute(context.Background(), ApproveRequestInput{RequestID: "req-1"})
	assert.ErrorIs(t, err, domain.ErrTasksNotApproved)

	store.Doc.Requests[0].Tasks[1].Approved = true
	out, err := uc.Execute(context.Background(), ApproveRequestInput{RequestID: "req-1"})
	require.NoError(t, err)
	assert.Equal(t, StatusRequestApproved, out.Status)
	assert.True(t, store.Doc.Requests[0].Completed)

	// Completed exactly once: a second approval is rejected.
	_, err = uc.Execute(context.Background(), ApproveRequestInput{RequestID: "req-1"})
	assert.ErrorIs(t, err, domain.ErrRequestCompleted)
}
