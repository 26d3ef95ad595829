// Package domain contains core business entities and interfaces.
package domain

import (
	"math"
	"sort"
	"time"
)

// Request is the top-level unit of work submitted by a caller.
// Fields are ordered to minimize memory padding.
type Request struct {
	RequestID       string  `json:"requestId"`       // Unique ID (req-<n>)
	OriginalRequest string  `json:"originalRequest"` // Free text as submitted
	SplitDetails    string  `json:"splitDetails"`    // How the request was split (defaults to OriginalRequest)
	Tasks           []*Task `json:"tasks"`           // Ordered tasks
	Completed       bool    `json:"completed"`       // True only when every task is done and approved
}

// Task is a unit of work within a request.
// Fields are ordered to minimize memory padding.
type Task struct {
	ID                   string     `json:"id"`                             // Unique ID (req-<n>-task-<k>)
	Title                string     `json:"title"`                          // Title (required)
	Description          string     `json:"description"`                    // Description
	CompletedDetails     string     `json:"completedDetails"`               // Set when marked done
	Subtasks             []*Subtask `json:"subtasks,omitempty"`             // Optional decomposition
	CompletionPercentage *int       `json:"completionPercentage,omitempty"` // Present iff subtasks exist
	Done                 bool       `json:"done"`                           // Work finished
	Approved             bool       `json:"approved"`                       // Approved after done
}

// Subtask is the finest-grained unit of work, owned by exactly one task.
// Fields are ordered to minimize memory padding.
type Subtask struct {
	CreatedAt   time.Time     `json:"createdAt"`             // Creation time, sole ordering key
	CompletedAt *time.Time    `json:"completedAt,omitempty"` // Present iff status is completed
	ID          string        `json:"id"`                    // Unique ID (<taskId>-subtask-<g>) or caller-supplied
	Content     string        `json:"content"`               // 1-500 chars, unique within the task
	Status      SubtaskStatus `json:"status"`                // Current status
}

// Document is the entire persisted dataset. Every operation loads it whole,
// mutates it in memory, and saves it whole.
type Document struct {
	Requests []*Request `json:"requests"`
}

// FindRequest returns the request with the given ID, or nil.
func (d *Document) FindRequest(requestID string) *Request {
	for _, r := range d.Requests {
		if r.RequestID == requestID {
			return r
		}
	}
	return nil
}

// FindTask locates a task by ID across all requests.
// Returns the owning request and the task, or nil, nil.
func (d *Document) FindTask(taskID string) (*Request, *Task) {
	for _, r := range d.Requests {
		for _, t := range r.Tasks {
			if t.ID == taskID {
				return r, t
			}
		}
	}
	return nil, nil
}

// FindTaskIn returns the task with the given ID within the request, or nil.
func (r *Request) FindTaskIn(taskID string) *Task {
	for _, t := range r.Tasks {
		if t.ID == taskID {
			return t
		}
	}
	return nil
}

// RemoveTask removes a task by ID. Returns false if not present.
func (r *Request) RemoveTask(taskID string) bool {
	for i, t := range r.Tasks {
		if t.ID == taskID {
			r.Tasks = append(r.Tasks[:i], r.Tasks[i+1:]...)
			return true
		}
	}
	return false
}

// AllTasksDone returns true if every task is done. True for an empty task list.
func (r *Request) AllTasksDone() bool {
	for _, t := range r.Tasks {
		if !t.Done {
			return false
		}
	}
	return true
}

// AllTasksApproved returns true if every task is approved.
func (r *Request) AllTasksApproved() bool {
	for _, t := range r.Tasks {
		if !t.Approved {
			return false
		}
	}
	return true
}

// HasSubtasks returns true if the task has at least one subtask.
func (t *Task) HasSubtasks() bool {
	return len(t.Subtasks) > 0
}

// AllSubtasksCompleted returns true if every subtask has status completed.
// True for a task without subtasks.
func (t *Task) AllSubtasksCompleted() bool {
	for _, s := range t.Subtasks {
		if s.Status != StatusCompleted {
			return false
		}
	}
	return true
}

// RemainingSubtasks returns the count of subtasks not yet completed.
func (t *Task) RemainingSubtasks() int {
	n := 0
	for _, s := range t.Subtasks {
		if s.Status != StatusCompleted {
			n++
		}
	}
	return n
}

// FindSubtask returns the subtask with the given ID, or nil.
func (t *Task) FindSubtask(subtaskID string) *Subtask {
	for _, s := range t.Subtasks {
		if s.ID == subtaskID {
			return s
		}
	}
	return nil
}

// RemoveSubtask removes a subtask by ID. Returns false if not present.
func (t *Task) RemoveSubtask(subtaskID string) bool {
	for i, s := range t.Subtasks {
		if s.ID == subtaskID {
			t.Subtasks = append(t.Subtasks[:i], t.Subtasks[i+1:]...)
			return true
		}
	}
	return false
}

// RecomputeCompletion refreshes CompletionPercentage from the current subtask
// set: round(100 * completed / total). The field is cleared when the task has
// no subtasks. Must be called after every subtask mutation.
func (t *Task) RecomputeCompletion() {
	if len(t.Subtasks) == 0 {
		t.CompletionPercentage = nil
		return
	}
	completed := 0
	for _, s := range t.Subtasks {
		if s.Status == StatusCompleted {
			completed++
		}
	}
	pct := int(math.Round(100 * float64(completed) / float64(len(t.Subtasks))))
	t.CompletionPercentage = &pct
}

// SortedSubtasks returns the subtasks ordered by CreatedAt, falling back to
// lexical ID order when two subtasks share the same timestamp. Display
// numbers are the 1-based ranks in this ordering.
func (t *Task) SortedSubtasks() []*Subtask {
	out := make([]*Subtask, len(t.Subtasks))
	copy(out, t.Subtasks)
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].ID < out[j].ID
		}
		return out[i].CreatedAt.Before(out[j].CreatedAt)
	})
	return out
}

// DisplayNumber returns the subtask's 1-based position among its siblings,
// or 0 if the subtask is not in the task.
func (t *Task) DisplayNumber(subtaskID string) int {
	for i, s := range t.SortedSubtasks() {
		if s.ID == subtaskID {
			return i + 1
		}
	}
	return 0
}
