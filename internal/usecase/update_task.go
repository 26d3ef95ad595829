package usecase

import (
	"context"

	"github.com/ytakei/taskwarden/internal/domain"
	"github.com/ytakei/taskwarden/internal/usecase/shared"
)

// UpdateTaskInput contains the parameters for updating a task.
// Nil fields are left unchanged; at least one must be set.
type UpdateTaskInput struct {
	Title       *string
	Description *string
	RequestID   string
	TaskID      string
}

// UpdateTaskOutput contains the result of updating a task.
type UpdateTaskOutput struct {
	Status    string   `json:"status"`
	RequestID string   `json:"requestId"`
	Task      TaskView `json:"task"`
}

// UpdateTask is the use case for editing a task's title or description.
type UpdateTask struct {
	store  domain.DocumentStore
	logger domain.Logger
}

// NewUpdateTask creates a new UpdateTask use case.
func NewUpdateTask(store domain.DocumentStore, logger domain.Logger) *UpdateTask {
	return &UpdateTask{store: store, logger: logger}
}

// Execute mutates the task's title and/or description. Done tasks are
// immutable.
func (uc *UpdateTask) Execute(_ context.Context, in UpdateTaskInput) (*UpdateTaskOutput, error) {
	if in.Title == nil && in.Description == nil {
		return nil, domain.ErrNoFieldsToUpdate
	}

	var out *UpdateTaskOutput
	err := shared.Mutate(uc.store, uc.logger, func(doc *domain.Document) error {
		req, task, err := shared.GetTask(doc, in.RequestID, in.TaskID)
		if err != nil {
			return err
		}
		if task.Done {
			return domain.ErrTaskAlreadyDone
		}

		if in.Title != nil {
			task.Title = *in.Title
		}
		if in.Description != nil {
			task.Description = *in.Description
		}

		out = &UpdateTaskOutput{
			Status:    StatusTaskUpdated,
			RequestID: req.RequestID,
			Task:      NewTaskView(task),
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}
