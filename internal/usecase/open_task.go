package usecase

import (
	"context"

	"github.com/ytakei/taskwarden/internal/domain"
	"github.com/ytakei/taskwarden/internal/usecase/shared"
)

// OpenTaskInput contains the parameters for opening task details.
type OpenTaskInput struct {
	TaskID string
}

// OpenTaskOutput contains the full task details, including subtasks with
// their derived display numbers.
type OpenTaskOutput struct {
	Status    string   `json:"status"`
	RequestID string   `json:"requestId"`
	Task      TaskView `json:"task"`
}

// OpenTask is the use case for inspecting one task by ID, across all requests.
type OpenTask struct {
	store domain.DocumentStore
}

// NewOpenTask creates a new OpenTask use case.
func NewOpenTask(store domain.DocumentStore) *OpenTask {
	return &OpenTask{store: store}
}

// Execute locates the task anywhere in the document.
func (uc *OpenTask) Execute(_ context.Context, in OpenTaskInput) (*OpenTaskOutput, error) {
	var out *OpenTaskOutput
	err := shared.Load(uc.store, func(doc *domain.Document) error {
		req, task := doc.FindTask(in.TaskID)
		if task == nil {
			return domain.ErrTaskNotFound
		}
		out = &OpenTaskOutput{
			Status:    StatusTaskDetails,
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
