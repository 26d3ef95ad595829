package usecase

import (
	"context"
	"fmt"

	"github.com/ytakei/taskwarden/internal/domain"
	"github.com/ytakei/taskwarden/internal/usecase/shared"
)

// BreakDownTaskInput contains the parameters for breaking a task down.
type BreakDownTaskInput struct {
	RequestID string
	TaskID    string
	Subtasks  []domain.SubtaskSpec
}

// BreakDownTaskOutput contains the task after its subtask set was replaced.
type BreakDownTaskOutput struct {
	Status    string   `json:"status"`
	RequestID string   `json:"requestId"`
	Task      TaskView `json:"task"`
}

// BreakDownTask is the use case for the break_down subtask action.
type BreakDownTask struct {
	store  domain.DocumentStore
	clock  domain.Clock
	logger domain.Logger
}

// NewBreakDownTask creates a new BreakDownTask use case.
func NewBreakDownTask(store domain.DocumentStore, clock domain.Clock, logger domain.Logger) *BreakDownTask {
	return &BreakDownTask{store: store, clock: clock, logger: logger}
}

// Execute replaces the task's entire subtask set with the batch. This is
// deliberately total replacement, not append: callers use it to convert a
// task into a fresh decomposition. Batch contents only need to be unique
// pairwise, since the existing set is discarded.
func (uc *BreakDownTask) Execute(_ context.Context, in BreakDownTaskInput) (*BreakDownTaskOutput, error) {
	var out *BreakDownTaskOutput
	err := shared.Mutate(uc.store, uc.logger, func(doc *domain.Document) error {
		req, task, err := shared.GetTask(doc, in.RequestID, in.TaskID)
		if err != nil {
			return err
		}

		if violations := domain.ValidateSubtaskBatch(in.Subtasks, task.Subtasks, true); violations != nil {
			return violations
		}

		// Take the counter before discarding the old set so numbers keep
		// increasing past the replaced subtasks.
		next := domain.NextSubtaskNumber(doc)
		task.Subtasks = nil
		appendSubtasks(task, in.Subtasks, uc.clock, next)
		task.RecomputeCompletion()

		out = &BreakDownTaskOutput{
			Status:    StatusTaskBrokenDown,
			RequestID: req.RequestID,
			Task:      NewTaskView(task),
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	if uc.logger != nil {
		uc.logger.Info("subtask", fmt.Sprintf("broke %s down into %d subtask(s)", out.Task.ID, len(out.Task.Subtasks)))
	}
	return out, nil
}
