package usecase

import (
	"context"
	"fmt"

	"github.com/ytakei/taskwarden/internal/domain"
	"github.com/ytakei/taskwarden/internal/usecase/shared"
)

// MarkTaskDoneInput contains the parameters for marking a task done.
type MarkTaskDoneInput struct {
	RequestID        string
	TaskID           string
	CompletedDetails string
}

// MarkTaskDoneOutput contains the result of marking a task done.
type MarkTaskDoneOutput struct {
	Status    string   `json:"status"`
	RequestID string   `json:"requestId"`
	Task      TaskView `json:"task"`
}

// MarkTaskDone is the use case for finishing a task's work phase.
type MarkTaskDone struct {
	store  domain.DocumentStore
	logger domain.Logger
}

// NewMarkTaskDone creates a new MarkTaskDone use case.
func NewMarkTaskDone(store domain.DocumentStore, logger domain.Logger) *MarkTaskDone {
	return &MarkTaskDone{store: store, logger: logger}
}

// Execute sets done=true and stores the completion details. A task with
// subtasks can only become done once every subtask is completed; the failure
// reports the current percentage and the number of unfinished subtasks, and
// applies no partial change.
func (uc *MarkTaskDone) Execute(_ context.Context, in MarkTaskDoneInput) (*MarkTaskDoneOutput, error) {
	var out *MarkTaskDoneOutput
	err := shared.Mutate(uc.store, uc.logger, func(doc *domain.Document) error {
		req, task, err := shared.GetTask(doc, in.RequestID, in.TaskID)
		if err != nil {
			return err
		}
		if task.Done {
			return domain.ErrTaskAlreadyDone
		}
		if task.HasSubtasks() && !task.AllSubtasksCompleted() {
			task.RecomputeCompletion()
			return &domain.SubtasksIncompleteError{
				CompletionPercentage: *task.CompletionPercentage,
				RemainingSubtasks:    task.RemainingSubtasks(),
			}
		}

		task.Done = true
		task.CompletedDetails = in.CompletedDetails

		out = &MarkTaskDoneOutput{
			Status:    StatusTaskMarkedDone,
			RequestID: req.RequestID,
			Task:      NewTaskView(task),
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	if uc.logger != nil {
		uc.logger.Info("task", fmt.Sprintf("marked %s done", out.Task.ID))
	}
	return out, nil
}
