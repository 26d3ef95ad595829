package usecase

import (
	"context"

	"github.com/ytakei/taskwarden/internal/domain"
	"github.com/ytakei/taskwarden/internal/usecase/shared"
)

// ShowRequestInput contains the parameters for showing a request.
type ShowRequestInput struct {
	RequestID string
}

// ShowRequestOutput contains one request with all of its tasks.
type ShowRequestOutput struct {
	Status  string         `json:"status"`
	Request RequestSummary `json:"request"`
	Tasks   []TaskView     `json:"tasks"`
}

// ShowRequest is the use case for inspecting one request in full.
type ShowRequest struct {
	store domain.DocumentStore
}

// NewShowRequest creates a new ShowRequest use case.
func NewShowRequest(store domain.DocumentStore) *ShowRequest {
	return &ShowRequest{store: store}
}

// Execute returns the request summary plus every task with its subtasks.
func (uc *ShowRequest) Execute(_ context.Context, in ShowRequestInput) (*ShowRequestOutput, error) {
	var out *ShowRequestOutput
	err := shared.Load(uc.store, func(doc *domain.Document) error {
		req, err := shared.GetRequest(doc, in.RequestID)
		if err != nil {
			return err
		}
		out = &ShowRequestOutput{
			Status:  StatusRequestDetails,
			Request: NewRequestSummary(req),
			Tasks:   NewTaskViews(req.Tasks),
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}
