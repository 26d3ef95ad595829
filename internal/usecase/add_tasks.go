package usecase

import (
	"context"
	"fmt"

	"github.com/ytakei/taskwarden/internal/domain"
	"github.com/ytakei/taskwarden/internal/usecase/shared"
)

// AddTasksInput contains the parameters for appending tasks to a request.
type AddTasksInput struct {
	RequestID string
	Tasks     []TaskSpec
}

// AddTasksOutput contains the result of adding tasks.
type AddTasksOutput struct {
	Status    string     `json:"status"`
	RequestID string     `json:"requestId"`
	Tasks     []TaskView `json:"tasks"` // Only the newly added tasks
}

// AddTasks is the use case for appending tasks to an existing request.
type AddTasks struct {
	store  domain.DocumentStore
	logger domain.Logger
}

// NewAddTasks creates a new AddTasks use case.
func NewAddTasks(store domain.DocumentStore, logger domain.Logger) *AddTasks {
	return &AddTasks{store: store, logger: logger}
}

// Execute appends tasks to the request. Task numbering continues from the
// maximum existing number, so numbers are never reused after deletions.
func (uc *AddTasks) Execute(_ context.Context, in AddTasksInput) (*AddTasksOutput, error) {
	if len(in.Tasks) == 0 {
		return nil, domain.ErrEmptyTaskList
	}
	for _, spec := range in.Tasks {
		if spec.Title == "" {
			return nil, fmt.Errorf("task title is required: %w", domain.ErrValidation)
		}
	}

	var out *AddTasksOutput
	err := shared.Mutate(uc.store, uc.logger, func(doc *domain.Document) error {
		req, err := shared.GetRequest(doc, in.RequestID)
		if err != nil {
			return err
		}
		if req.Completed {
			return domain.ErrRequestCompleted
		}

		next := domain.NextTaskNumber(req)
		added := make([]*domain.Task, 0, len(in.Tasks))
		for i, spec := range in.Tasks {
			task := &domain.Task{
				ID:          domain.NewTaskID(req.RequestID, next+i),
				Title:       spec.Title,
				Description: spec.Description,
			}
			req.Tasks = append(req.Tasks, task)
			added = append(added, task)
		}

		out = &AddTasksOutput{
			Status:    StatusTasksAdded,
			RequestID: req.RequestID,
			Tasks:     NewTaskViews(added),
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	if uc.logger != nil {
		uc.logger.Info("request", fmt.Sprintf("added %d task(s) to %s", len(out.Tasks), out.RequestID))
	}
	return out, nil
}
