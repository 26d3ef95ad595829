package usecase

import (
	"context"
	"fmt"

	"github.com/ytakei/taskwarden/internal/domain"
	"github.com/ytakei/taskwarden/internal/usecase/shared"
)

// Result status discriminators returned in every output envelope.
const (
	StatusPlanned          = "planned"
	StatusTasksAdded       = "tasks_added"
	StatusTaskUpdated      = "task_updated"
	StatusTaskDeleted      = "task_deleted"
	StatusTaskMarkedDone   = "task_marked_done"
	StatusTaskApproved     = "task_approved"
	StatusRequestApproved  = "request_approved"
	StatusNextTaskLocated  = "next_task_located"
	StatusAllTasksDone     = "all_tasks_done"
	StatusTaskDetails      = "task_details"
	StatusRequestDetails   = "request_details"
	StatusRequestsListed   = "requests_listed"
	StatusSubtasksCreated  = "subtasks_created"
	StatusSubtaskUpdated   = "subtask_updated"
	StatusSubtaskCompleted = "subtask_completed"
	StatusSubtaskDeleted   = "subtask_deleted"
	StatusTaskBrokenDown   = "task_broken_down"
)

// TaskSpec is a caller-supplied task description for planning and add-tasks.
type TaskSpec struct {
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
}

// PlanRequestInput contains the parameters for planning a new request.
type PlanRequestInput struct {
	OriginalRequest string
	SplitDetails    string // Defaults to OriginalRequest when empty
	Tasks           []TaskSpec
}

// PlanRequestOutput contains the result of planning a request.
type PlanRequestOutput struct {
	Status    string     `json:"status"`
	RequestID string     `json:"requestId"`
	Tasks     []TaskView `json:"tasks"`
}

// PlanRequest is the use case for registering a request with its task split.
type PlanRequest struct {
	store  domain.DocumentStore
	logger domain.Logger
}

// NewPlanRequest creates a new PlanRequest use case.
func NewPlanRequest(store domain.DocumentStore, logger domain.Logger) *PlanRequest {
	return &PlanRequest{store: store, logger: logger}
}

// Execute creates a request plus its tasks and advances the counters.
func (uc *PlanRequest) Execute(_ context.Context, in PlanRequestInput) (*PlanRequestOutput, error) {
	if len(in.Tasks) == 0 {
		return nil, domain.ErrEmptyTaskList
	}
	for _, spec := range in.Tasks {
		if spec.Title == "" {
			return nil, fmt.Errorf("task title is required: %w", domain.ErrValidation)
		}
	}

	var out *PlanRequestOutput
	err := shared.Mutate(uc.store, uc.logger, func(doc *domain.Document) error {
		requestID := domain.NewRequestID(domain.NextRequestNumber(doc))

		splitDetails := in.SplitDetails
		if splitDetails == "" {
			splitDetails = in.OriginalRequest
		}

		req := &domain.Request{
			RequestID:       requestID,
			OriginalRequest: in.OriginalRequest,
			SplitDetails:    splitDetails,
		}
		for i, spec := range in.Tasks {
			req.Tasks = append(req.Tasks, &domain.Task{
				ID:          domain.NewTaskID(requestID, i+1),
				Title:       spec.Title,
				Description: spec.Description,
			})
		}
		doc.Requests = append(doc.Requests, req)

		out = &PlanRequestOutput{
			Status:    StatusPlanned,
			RequestID: requestID,
			Tasks:     NewTaskViews(req.Tasks),
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	if uc.logger != nil {
		uc.logger.Info("request", fmt.Sprintf("planned %s with %d task(s)", out.RequestID, len(out.Tasks)))
	}
	return out, nil
}
