package usecase

import (
	"context"

	"github.com/ytakei/taskwarden/internal/domain"
	"github.com/ytakei/taskwarden/internal/usecase/shared"
)

// GetNextTaskInput contains the parameters for locating the next task.
type GetNextTaskInput struct {
	RequestID string
}

// GetNextTaskOutput contains the next actionable task, or the all-done
// signal when nothing is left. Message distinguishes "done, awaiting
// approval" from "fully completed".
type GetNextTaskOutput struct {
	Task      *TaskView `json:"task,omitempty"`
	Status    string    `json:"status"`
	RequestID string    `json:"requestId"`
	Message   string    `json:"message,omitempty"`
}

// GetNextTask is the use case for advancing through a request's tasks in order.
type GetNextTask struct {
	store domain.DocumentStore
}

// NewGetNextTask creates a new GetNextTask use case.
func NewGetNextTask(store domain.DocumentStore) *GetNextTask {
	return &GetNextTask{store: store}
}

// Execute returns the first task that is not yet done, in task order.
func (uc *GetNextTask) Execute(_ context.Context, in GetNextTaskInput) (*GetNextTaskOutput, error) {
	var out *GetNextTaskOutput
	err := shared.Load(uc.store, func(doc *domain.Document) error {
		req, err := shared.GetRequest(doc, in.RequestID)
		if err != nil {
			return err
		}

		for _, task := range req.Tasks {
			if task.Done {
				continue
			}
			view := NewTaskView(task)
			out = &GetNextTaskOutput{
				Status:    StatusNextTaskLocated,
				RequestID: req.RequestID,
				Task:      &view,
			}
			return nil
		}

		msg := "all tasks are done and approved"
		if !req.Completed {
			if !req.AllTasksApproved() {
				msg = "all tasks are done; some still await approval"
			} else {
				msg = "all tasks are done and approved; request completion not yet approved"
			}
		}
		out = &GetNextTaskOutput{
			Status:    StatusAllTasksDone,
			RequestID: req.RequestID,
			Message:   msg,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}
