// Package usecase contains application use cases.
package usecase

import (
	"time"

	"github.com/ytakei/taskwarden/internal/domain"
)

// SubtaskView is the caller-facing projection of a subtask. DisplayNumber is
// the 1-based rank by creation time among siblings, derived on every read.
type SubtaskView struct {
	CreatedAt     time.Time            `json:"createdAt"`
	CompletedAt   *time.Time           `json:"completedAt,omitempty"`
	ID            string               `json:"id"`
	Content       string               `json:"content"`
	Status        domain.SubtaskStatus `json:"status"`
	DisplayNumber int                  `json:"displayNumber"`
}

// TaskView is the caller-facing projection of a task, carrying everything a
// renderer needs to reconstruct a progress view.
type TaskView struct {
	ID                   string        `json:"id"`
	Title                string        `json:"title"`
	Description          string        `json:"description"`
	CompletedDetails     string        `json:"completedDetails,omitempty"`
	Subtasks             []SubtaskView `json:"subtasks,omitempty"`
	CompletionPercentage *int          `json:"completionPercentage,omitempty"`
	DisplayNumber        int           `json:"displayNumber"`
	Done                 bool          `json:"done"`
	Approved             bool          `json:"approved"`
}

// RequestSummary is the per-request roll-up returned by list operations.
type RequestSummary struct {
	RequestID       string `json:"requestId"`
	OriginalRequest string `json:"originalRequest"`
	TotalTasks      int    `json:"totalTasks"`
	DoneTasks       int    `json:"doneTasks"`
	ApprovedTasks   int    `json:"approvedTasks"`
	Completed       bool   `json:"completed"`
}

// NewSubtaskView builds a SubtaskView with its derived display number.
func NewSubtaskView(task *domain.Task, sub *domain.Subtask) SubtaskView {
	return SubtaskView{
		ID:            sub.ID,
		Content:       sub.Content,
		Status:        sub.Status,
		CreatedAt:     sub.CreatedAt,
		CompletedAt:   sub.CompletedAt,
		DisplayNumber: task.DisplayNumber(sub.ID),
	}
}

// NewTaskView builds a TaskView, with subtasks in display order.
func NewTaskView(task *domain.Task) TaskView {
	view := TaskView{
		ID:                   task.ID,
		Title:                task.Title,
		Description:          task.Description,
		CompletedDetails:     task.CompletedDetails,
		CompletionPercentage: task.CompletionPercentage,
		DisplayNumber:        domain.TaskNumber(task.ID),
		Done:                 task.Done,
		Approved:             task.Approved,
	}
	for _, sub := range task.SortedSubtasks() {
		view.Subtasks = append(view.Subtasks, NewSubtaskView(task, sub))
	}
	return view
}

// NewTaskViews builds views for a task list in order.
func NewTaskViews(tasks []*domain.Task) []TaskView {
	out := make([]TaskView, len(tasks))
	for i, t := range tasks {
		out[i] = NewTaskView(t)
	}
	return out
}

// NewRequestSummary builds the roll-up for one request.
func NewRequestSummary(r *domain.Request) RequestSummary {
	s := RequestSummary{
		RequestID:       r.RequestID,
		OriginalRequest: r.OriginalRequest,
		TotalTasks:      len(r.Tasks),
		Completed:       r.Completed,
	}
	for _, t := range r.Tasks {
		if t.Done {
			s.DoneTasks++
		}
		if t.Approved {
			s.ApprovedTasks++
		}
	}
	return s
}
