package usecase

import (
	"context"
	"fmt"

	"github.com/ytakei/taskwarden/internal/domain"
	"github.com/ytakei/taskwarden/internal/usecase/shared"
)

// CreateSubtasksInput contains the parameters for appending subtasks.
type CreateSubtasksInput struct {
	RequestID string
	TaskID    string
	Subtasks  []domain.SubtaskSpec
}

// CreateSubtasksOutput contains the task after the new subtasks were added.
type CreateSubtasksOutput struct {
	Status    string   `json:"status"`
	RequestID string   `json:"requestId"`
	Task      TaskView `json:"task"`
}

// CreateSubtasks is the use case for the create subtask action.
type CreateSubtasks struct {
	store  domain.DocumentStore
	clock  domain.Clock
	logger domain.Logger
}

// NewCreateSubtasks creates a new CreateSubtasks use case.
func NewCreateSubtasks(store domain.DocumentStore, clock domain.Clock, logger domain.Logger) *CreateSubtasks {
	return &CreateSubtasks{store: store, clock: clock, logger: logger}
}

// Execute appends the subtasks and recomputes the completion percentage.
// All violations in the batch are collected and returned together.
func (uc *CreateSubtasks) Execute(_ context.Context, in CreateSubtasksInput) (*CreateSubtasksOutput, error) {
	var out *CreateSubtasksOutput
	err := shared.Mutate(uc.store, uc.logger, func(doc *domain.Document) error {
		req, task, err := shared.GetTask(doc, in.RequestID, in.TaskID)
		if err != nil {
			return err
		}

		if violations := domain.ValidateSubtaskBatch(in.Subtasks, task.Subtasks, false); violations != nil {
			return violations
		}

		appendSubtasks(task, in.Subtasks, uc.clock, domain.NextSubtaskNumber(doc))
		task.RecomputeCompletion()

		out = &CreateSubtasksOutput{
			Status:    StatusSubtasksCreated,
			RequestID: req.RequestID,
			Task:      NewTaskView(task),
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	if uc.logger != nil {
		uc.logger.Info("subtask", fmt.Sprintf("created %d subtask(s) under %s", len(in.Subtasks), out.Task.ID))
	}
	return out, nil
}

// appendSubtasks materializes specs as subtasks on the task, numbering
// generated IDs from next upward; caller-supplied IDs are used verbatim.
// Each subtask gets its own creation timestamp.
func appendSubtasks(task *domain.Task, specs []domain.SubtaskSpec, clock domain.Clock, next int) {
	for _, spec := range specs {
		id := spec.ID
		if id == "" {
			id = domain.NewSubtaskID(task.ID, next)
			next++
		}
		task.Subtasks = append(task.Subtasks, &domain.Subtask{
			ID:        id,
			Content:   domain.NormalizeContent(spec.Content),
			Status:    domain.StatusPending,
			CreatedAt: clock.Now(),
		})
	}
}
