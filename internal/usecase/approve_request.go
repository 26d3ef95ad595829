package usecase

import (
	"context"
	"fmt"

	"github.com/ytakei/taskwarden/internal/domain"
	"github.com/ytakei/taskwarden/internal/usecase/shared"
)

// ApproveRequestInput contains the parameters for approving request completion.
type ApproveRequestInput struct {
	RequestID string
}

// ApproveRequestOutput contains the result of approving a request.
type ApproveRequestOutput struct {
	Status  string         `json:"status"`
	Request RequestSummary `json:"request"`
}

// ApproveRequest is the use case for closing out a whole request.
type ApproveRequest struct {
	store  domain.DocumentStore
	logger domain.Logger
}

// NewApproveRequest creates a new ApproveRequest use case.
func NewApproveRequest(store domain.DocumentStore, logger domain.Logger) *ApproveRequest {
	return &ApproveRequest{store: store, logger: logger}
}

// Execute sets completed=true once every task is both done and approved.
// Both conditions are re-verified here, not cached, so tasks added after an
// earlier check are accounted for.
func (uc *ApproveRequest) Execute(_ context.Context, in ApproveRequestInput) (*ApproveRequestOutput, error) {
	var out *ApproveRequestOutput
	err := shared.Mutate(uc.store, uc.logger, func(doc *domain.Document) error {
		req, err := shared.GetRequest(doc, in.RequestID)
		if err != nil {
			return err
		}
		if req.Completed {
			return domain.ErrRequestCompleted
		}
		if !req.AllTasksDone() {
			return domain.ErrTasksNotDone
		}
		if !req.AllTasksApproved() {
			return domain.ErrTasksNotApproved
		}

		req.Completed = true

		out = &ApproveRequestOutput{
			Status:  StatusRequestApproved,
			Request: NewRequestSummary(req),
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	if uc.logger != nil {
		uc.logger.Info("request", fmt.Sprintf("completed %s", out.Request.RequestID))
	}
	return out, nil
}
