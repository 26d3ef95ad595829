package shared

import (
	"github.com/ytakei/taskwarden/internal/domain"
)

// GetRequest retrieves a request by ID and returns domain.ErrRequestNotFound
// if absent. This centralizes the common lookup-or-fail pattern of the
// mutating use cases.
func GetRequest(doc *domain.Document, requestID string) (*domain.Request, error) {
	req := doc.FindRequest(requestID)
	if req == nil {
		return nil, domain.ErrRequestNotFound
	}
	return req, nil
}

// GetTask retrieves a task within a request, returning
// domain.ErrRequestNotFound or domain.ErrTaskNotFound as appropriate.
func GetTask(doc *domain.Document, requestID, taskID string) (*domain.Request, *domain.Task, error) {
	req, err := GetRequest(doc, requestID)
	if err != nil {
		return nil, nil, err
	}
	task := req.FindTaskIn(taskID)
	if task == nil {
		return nil, nil, domain.ErrTaskNotFound
	}
	return req, task, nil
}

// GetSubtask retrieves a subtask within a task and returns
// domain.ErrSubtaskNotFound if absent.
func GetSubtask(task *domain.Task, subtaskID string) (*domain.Subtask, error) {
	sub := task.FindSubtask(subtaskID)
	if sub == nil {
		return nil, domain.ErrSubtaskNotFound
	}
	return sub, nil
}
