package usecase

import (
	"context"
	"fmt"

	"github.com/ytakei/taskwarden/internal/domain"
	"github.com/ytakei/taskwarden/internal/usecase/shared"
)

// DeleteTaskInput contains the parameters for deleting a task.
type DeleteTaskInput struct {
	RequestID string
	TaskID    string
}

// DeleteTaskOutput contains the result of deleting a task.
type DeleteTaskOutput struct {
	Status    string `json:"status"`
	RequestID string `json:"requestId"`
	TaskID    string `json:"taskId"`
}

// DeleteTask is the use case for removing a task from its request.
type DeleteTask struct {
	store  domain.DocumentStore
	logger domain.Logger
}

// NewDeleteTask creates a new DeleteTask use case.
func NewDeleteTask(store domain.DocumentStore, logger domain.Logger) *DeleteTask {
	return &DeleteTask{store: store, logger: logger}
}

// Execute removes the task. Done tasks cannot be deleted.
func (uc *DeleteTask) Execute(_ context.Context, in DeleteTaskInput) (*DeleteTaskOutput, error) {
	var out *DeleteTaskOutput
	err := shared.Mutate(uc.store, uc.logger, func(doc *domain.Document) error {
		req, task, err := shared.GetTask(doc, in.RequestID, in.TaskID)
		if err != nil {
			return err
		}
		if task.Done {
			return domain.ErrTaskAlreadyDone
		}

		req.RemoveTask(task.ID)

		out = &DeleteTaskOutput{
			Status:    StatusTaskDeleted,
			RequestID: req.RequestID,
			TaskID:    task.ID,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	if uc.logger != nil {
		uc.logger.Info("task", fmt.Sprintf("deleted %s", out.TaskID))
	}
	return out, nil
}
