package usecase

import (
	"context"
	"fmt"

	"github.com/ytakei/taskwarden/internal/domain"
	"github.com/ytakei/taskwarden/internal/usecase/shared"
)

// ApproveTaskInput contains the parameters for approving a done task.
type ApproveTaskInput struct {
	RequestID string
	TaskID    string
}

// ApproveTaskOutput contains the result of approving a task.
type ApproveTaskOutput struct {
	Status    string   `json:"status"`
	RequestID string   `json:"requestId"`
	Task      TaskView `json:"task"`
}

// ApproveTask is the use case for the human approval gate after done.
type ApproveTask struct {
	store  domain.DocumentStore
	logger domain.Logger
}

// NewApproveTask creates a new ApproveTask use case.
func NewApproveTask(store domain.DocumentStore, logger domain.Logger) *ApproveTask {
	return &ApproveTask{store: store, logger: logger}
}

// Execute sets approved=true. Only done tasks can be approved, and approving
// twice is rejected without side effects.
func (uc *ApproveTask) Execute(_ context.Context, in ApproveTaskInput) (*ApproveTaskOutput, error) {
	var out *ApproveTaskOutput
	err := shared.Mutate(uc.store, uc.logger, func(doc *domain.Document) error {
		req, task, err := shared.GetTask(doc, in.RequestID, in.TaskID)
		if err != nil {
			return err
		}
		if !task.Done {
			return domain.ErrTaskNotDone
		}
		if task.Approved {
			return domain.ErrTaskAlreadyApproved
		}

		task.Approved = true

		out = &ApproveTaskOutput{
			Status:    StatusTaskApproved,
			RequestID: req.RequestID,
			Task:      NewTaskView(task),
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	if uc.logger != nil {
		uc.logger.Info("task", fmt.Sprintf("approved %s", out.Task.ID))
	}
	return out, nil
}
