package usecase

import (
	"context"
	"fmt"

	"github.com/ytakei/taskwarden/internal/domain"
	"github.com/ytakei/taskwarden/internal/usecase/shared"
)

// DeleteSubtaskInput contains the parameters for deleting a subtask.
type DeleteSubtaskInput struct {
	RequestID string
	TaskID    string
	SubtaskID string
}

// DeleteSubtaskOutput contains the task after the subtask removal.
type DeleteSubtaskOutput struct {
	Status    string   `json:"status"`
	RequestID string   `json:"requestId"`
	SubtaskID string   `json:"subtaskId"`
	Task      TaskView `json:"task"`
}

// DeleteSubtask is the use case for the delete subtask action.
type DeleteSubtask struct {
	store  domain.DocumentStore
	logger domain.Logger
}

// NewDeleteSubtask creates a new DeleteSubtask use case.
func NewDeleteSubtask(store domain.DocumentStore, logger domain.Logger) *DeleteSubtask {
	return &DeleteSubtask{store: store, logger: logger}
}

// Execute removes the subtask and recomputes the completion percentage.
// Completed subtasks cannot be deleted; cancelled ones can.
func (uc *DeleteSubtask) Execute(_ context.Context, in DeleteSubtaskInput) (*DeleteSubtaskOutput, error) {
	var out *DeleteSubtaskOutput
	err := shared.Mutate(uc.store, uc.logger, func(doc *domain.Document) error {
		req, task, err := shared.GetTask(doc, in.RequestID, in.TaskID)
		if err != nil {
			return err
		}
		sub, err := shared.GetSubtask(task, in.SubtaskID)
		if err != nil {
			return err
		}
		if sub.Status == domain.StatusCompleted {
			return domain.ErrCannotDeleteCompleted
		}

		task.RemoveSubtask(sub.ID)
		task.RecomputeCompletion()

		out = &DeleteSubtaskOutput{
			Status:    StatusSubtaskDeleted,
			RequestID: req.RequestID,
			SubtaskID: sub.ID,
			Task:      NewTaskView(task),
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	if uc.logger != nil {
		uc.logger.Info("subtask", fmt.Sprintf("deleted %s", out.SubtaskID))
	}
	return out, nil
}
