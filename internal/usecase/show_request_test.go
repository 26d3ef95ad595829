package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/ytakei/taskwarden/internal/domain"
)

func TestShowRequest_Execute(t *testing.T) {
	store := seedStore(
		&domain.Task{ID: "req-1-task-1", Title: "first", Done: true, Approved: true},
		&domain.Task{ID: "req-1-task-2", Title: "second", Subtasks: []*domain.Subtask{
			{ID: "s1", Content: "one", Status: domain.StatusPending},
		}},
	)
	uc := NewShowRequest(store)

	out, err := uc.Execute(context.Background(), ShowRequestInput{RequestID: "req-1"})

	require.NoError(t, err)
	assert.Equal(t, StatusRequestDetails, out.Status)
	assert.Equal(t, 2, out.Request.TotalTasks)
	assert.Equal(t, 1, out.Request.DoneTasks)
	require.Len(t, out.Tasks, 2)
	assert.Equal(t, "first", out.Tasks[0].Title)
	require.Len(t, out.Tasks[1].Subtasks, 1)
}

func TestShowRequest_Execute_NotFound(t *testing.T) {
	uc := NewShowRequest(seedStore())

	_, err := uc.Execute(context.Background(), ShowRequestInput{RequestID: "req-9"})

	assert.ErrorIs(t, err, domain.ErrRequestNotFound)
}
