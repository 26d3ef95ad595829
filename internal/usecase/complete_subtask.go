package usecase

import (
	"context"
	"fmt"

	"github.com/ytakei/taskwarden/internal/domain"
	"github.com/ytakei/taskwarden/internal/usecase/shared"
)

// CompleteSubtaskInput contains the parameters for completing a subtask.
type CompleteSubtaskInput struct {
	RequestID string
	TaskID    string
	SubtaskID string
}

// CompleteSubtaskOutput contains the task after the subtask completion.
type CompleteSubtaskOutput struct {
	Status    string      `json:"status"`
	RequestID string      `json:"requestId"`
	Subtask   SubtaskView `json:"subtask"`
	Task      TaskView    `json:"task"`
}

// CompleteSubtask is the use case for the complete subtask action.
type CompleteSubtask struct {
	store  domain.DocumentStore
	clock  domain.Clock
	logger domain.Logger
}

// NewCompleteSubtask creates a new CompleteSubtask use case.
func NewCompleteSubtask(store domain.DocumentStore, clock domain.Clock, logger domain.Logger) *CompleteSubtask {
	return &CompleteSubtask{store: store, clock: clock, logger: logger}
}

// Execute transitions the subtask to completed, stamps CompletedAt, and
// recomputes the task's completion percentage. The action collapses the
// pending -> in_progress -> completed chain into one call, so it accepts
// pending as well as in_progress sources. Already-completed and cancelled
// subtasks are rejected as illegal transitions.
func (uc *CompleteSubtask) Execute(_ context.Context, in CompleteSubtaskInput) (*CompleteSubtaskOutput, error) {
	var out *CompleteSubtaskOutput
	err := shared.Mutate(uc.store, uc.logger, func(doc *domain.Document) error {
		req, task, err := shared.GetTask(doc, in.RequestID, in.TaskID)
		if err != nil {
			return err
		}
		sub, err := shared.GetSubtask(task, in.SubtaskID)
		if err != nil {
			return err
		}
		if sub.Status != domain.StatusPending && !sub.Status.CanTransitionTo(domain.StatusCompleted) {
			return &domain.TransitionError{From: sub.Status, To: domain.StatusCompleted}
		}

		applyStatus(sub, domain.StatusCompleted, uc.clock)
		task.RecomputeCompletion()

		out = &CompleteSubtaskOutput{
			Status:    StatusSubtaskCompleted,
			RequestID: req.RequestID,
			Subtask:   NewSubtaskView(task, sub),
			Task:      NewTaskView(task),
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	if uc.logger != nil {
		uc.logger.Info("subtask", fmt.Sprintf("completed %s (%d%%)", out.Subtask.ID, *out.Task.CompletionPercentage))
	}
	return out, nil
}
