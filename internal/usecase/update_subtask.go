package usecase

import (
	"context"

	"github.com/ytakei/taskwarden/internal/domain"
	"github.com/ytakei/taskwarden/internal/usecase/shared"
)

// UpdateSubtaskInput contains the parameters for updating a subtask.
// Nil fields are left unchanged; at least one must be set.
type UpdateSubtaskInput struct {
	Content   *string
	Status    *domain.SubtaskStatus
	RequestID string
	TaskID    string
	SubtaskID string
}

// UpdateSubtaskOutput contains the task after the subtask update.
type UpdateSubtaskOutput struct {
	Status    string      `json:"status"`
	RequestID string      `json:"requestId"`
	Subtask   SubtaskView `json:"subtask"`
	Task      TaskView    `json:"task"`
}

// UpdateSubtask is the use case for the update subtask action.
type UpdateSubtask struct {
	store  domain.DocumentStore
	clock  domain.Clock
	logger domain.Logger
}

// NewUpdateSubtask creates a new UpdateSubtask use case.
func NewUpdateSubtask(store domain.DocumentStore, clock domain.Clock, logger domain.Logger) *UpdateSubtask {
	return &UpdateSubtask{store: store, clock: clock, logger: logger}
}

// Execute applies content and/or status changes, enforcing content
// uniqueness and the status transition table, then recomputes the task's
// completion percentage. Entering completed stamps CompletedAt; leaving it
// clears the stamp.
func (uc *UpdateSubtask) Execute(_ context.Context, in UpdateSubtaskInput) (*UpdateSubtaskOutput, error) {
	if in.Content == nil && in.Status == nil {
		return nil, domain.ErrNoFieldsToUpdate
	}

	var out *UpdateSubtaskOutput
	err := shared.Mutate(uc.store, uc.logger, func(doc *domain.Document) error {
		req, task, err := shared.GetTask(doc, in.RequestID, in.TaskID)
		if err != nil {
			return err
		}
		sub, err := shared.GetSubtask(task, in.SubtaskID)
		if err != nil {
			return err
		}

		// Collect every violation before touching anything.
		var violations domain.ValidationErrors
		if in.Content != nil {
			violations = append(violations, domain.ValidateContentUpdate(*in.Content, task.Subtasks, sub.ID)...)
		}
		if in.Status != nil {
			violations = append(violations, domain.ValidateStatus(*in.Status)...)
		}
		if violations != nil {
			return violations
		}
		if in.Status != nil && !sub.Status.CanTransitionTo(*in.Status) {
			return &domain.TransitionError{From: sub.Status, To: *in.Status}
		}

		if in.Content != nil {
			sub.Content = domain.NormalizeContent(*in.Content)
		}
		if in.Status != nil {
			applyStatus(sub, *in.Status, uc.clock)
		}
		task.RecomputeCompletion()

		out = &UpdateSubtaskOutput{
			Status:    StatusSubtaskUpdated,
			RequestID: req.RequestID,
			Subtask:   NewSubtaskView(task, sub),
			Task:      NewTaskView(task),
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// applyStatus performs a validated status change, maintaining CompletedAt.
func applyStatus(sub *domain.Subtask, target domain.SubtaskStatus, clock domain.Clock) {
	leaving := sub.Status == domain.StatusCompleted
	sub.Status = target
	switch {
	case target == domain.StatusCompleted:
		now := clock.Now()
		sub.CompletedAt = &now
	case leaving:
		sub.CompletedAt = nil
	}
}
