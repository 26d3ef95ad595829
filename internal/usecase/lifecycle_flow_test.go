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

// TestLifecycle_MobileAppFlow drives one request end to end: plan, break a
// task into four subtasks, complete them one by one, and watch the done and
// approval gates open in order.
func TestLifecycle_MobileAppFlow(t *testing.T) {
	ctx := context.Background()
	store := testutil.NewMockDocumentStore()
	clock := testutil.NewMockClock()
	logger := testutil.MockLogger{}

	plan := NewPlanRequest(store, logger)
	breakDown := NewBreakDownTask(store, clock, logger)
	complete := NewCompleteSubtask(store, clock, logger)
	markDone := NewMarkTaskDone(store, logger)
	approveTask := NewApproveTask(store, logger)
	approveReq := NewApproveRequest(store, logger)

	planned, err := plan.Execute(ctx, PlanRequestInput{
		OriginalRequest: "Build Mobile App",
		Tasks:           []TaskSpec{{Title: "Build Mobile App"}},
	})
	require.NoError(t, err)
	taskID := planned.Tasks[0].ID

	broken, err := breakDown.Execute(ctx, BreakDownTaskInput{
		RequestID: planned.RequestID,
		TaskID:    taskID,
		Subtasks: []domain.SubtaskSpec{
			{Content: "Design UI"},
			{Content: "Implement screens"},
			{Content: "Wire up API"},
			{Content: "Write tests"},
		},
	})
	require.NoError(t, err)
	require.Len(t, broken.Task.Subtasks, 4)

	// Complete the first subtask: 25%.
	first, err := complete.Execute(ctx, CompleteSubtaskInput{
		RequestID: planned.RequestID,
		TaskID:    taskID,
		SubtaskID: broken.Task.Subtasks[0].ID,
	})
	require.NoError(t, err)
	assert.Equal(t, 25, *first.Task.CompletionPercentage)

	// Marking the task done now fails with percentage and remaining count.
	_, err = markDone.Execute(ctx, MarkTaskDoneInput{
		RequestID: planned.RequestID,
		TaskID:    taskID,
	})
	var incomplete *domain.SubtasksIncompleteError
	require.True(t, errors.As(err, &incomplete))
	assert.Equal(t, 25, incomplete.CompletionPercentage)
	assert.Equal(t, 3, incomplete.RemainingSubtasks)

	// Complete the remaining three: 100%.
	var last *CompleteSubtaskOutput
	for _, sub := range broken.Task.Subtasks[1:] {
		last, err = complete.Execute(ctx, CompleteSubtaskInput{
			RequestID: planned.RequestID,
			TaskID:    taskID,
			SubtaskID: sub.ID,
		})
		require.NoError(t, err)
	}
	assert.Equal(t, 100, *last.Task.CompletionPercentage)

	// Done, then approve, then close out the request.
	done, err := markDone.Execute(ctx, MarkTaskDoneInput{
		RequestID:        planned.RequestID,
		TaskID:           taskID,
		CompletedDetails: "all subtasks finished",
	})
	require.NoError(t, err)
	assert.True(t, done.Task.Done)

	// Approving the request before task approval is rejected.
	_, err = approveReq.Execute(ctx, ApproveRequestInput{RequestID: planned.RequestID})
	assert.ErrorIs(t, err, domain.ErrTasksNotApproved)

	_, err = approveTask.Execute(ctx, ApproveTaskInput{
		RequestID: planned.RequestID,
		TaskID:    taskID,
	})
	require.NoError(t, err)

	closed, err := approveReq.Execute(ctx, ApproveRequestInput{RequestID: planned.RequestID})
	require.NoError(t, err)
	assert.Equal(t, StatusRequestApproved, closed.Status)
	assert.True(t, store.Doc.Requests[0].Completed)
}
