package usecase

import (
	"context"

	"github.com/ytakei/taskwarden/internal/domain"
	"github.com/ytakei/taskwarden/internal/usecase/shared"
)

// ListRequestsOutput contains a summary of every request in the document.
type ListRequestsOutput struct {
	Status   string           `json:"status"`
	Requests []RequestSummary `json:"requests"`
}

// ListRequests is the use case for the request overview.
type ListRequests struct {
	store domain.DocumentStore
}

// NewListRequests creates a new ListRequests use case.
func NewListRequests(store domain.DocumentStore) *ListRequests {
	return &ListRequests{store: store}
}

// Execute summarizes all requests in document order.
func (uc *ListRequests) Execute(_ context.Context) (*ListRequestsOutput, error) {
	out := &ListRequestsOutput{Status: StatusRequestsListed, Requests: []RequestSummary{}}
	err := shared.Load(uc.store, func(doc *domain.Document) error {
		for _, req := range doc.Requests {
			out.Requests = append(out.Requests, NewRequestSummary(req))
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}
