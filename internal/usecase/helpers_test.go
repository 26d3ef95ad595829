package usecase

import (
	"github.com/ytakei/taskwarden/internal/domain"
	"github.com/ytakei/taskwarden/internal/testutil"
)

// seedStore returns a mock store holding one request with the given tasks.
func seedStore(tasks ...*domain.Task) *testutil.MockDocumentStore {
	store := testutil.NewMockDocumentStore()
	store.Doc.Requests = []*domain.Request{{
		RequestID:       "req-1",
		OriginalRequest: "Build the thing",
		SplitDetails:    "Build the thing",
		Tasks:           tasks,
	}}
	return store
}

func strPtr(s string) *string {
	return &s
}

func statusPtr(s domain.SubtaskStatus) *domain.SubtaskStatus {
	return &s
}
