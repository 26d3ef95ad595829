package domain

import (
	"fmt"
	"strconv"
	"strings"
)

// Identifier scheme:
//
//	request: req-<n>                 n from the global request counter
//	task:    req-<n>-task-<k>        k restarts at 1 per request
//	subtask: <taskId>-subtask-<g>    g from the global subtask counter
//
// Counters are never stored. They are recomputed as the maximum value seen
// in the loaded document, so a hand-edited or partially written document
// cannot leave them behind the actual data.

const (
	requestIDPrefix = "req-"
	taskIDInfix     = "-task-"
	subtaskIDInfix  = "-subtask-"
)

// NewRequestID formats a request ID from a counter value.
func NewRequestID(n int) string {
	return fmt.Sprintf("req-%d", n)
}

// NewTaskID formats a task ID from its owning request ID and per-request number.
func NewTaskID(requestID string, k int) string {
	return fmt.Sprintf("%s%s%d", requestID, taskIDInfix, k)
}

// NewSubtaskID formats a subtask ID from its owning task ID and the global counter.
func NewSubtaskID(taskID string, g int) string {
	return fmt.Sprintf("%s%s%d", taskID, subtaskIDInfix, g)
}

// RequestNumber parses the counter out of a request ID.
// Returns 0 if the ID does not follow the req-<n> scheme.
func RequestNumber(requestID string) int {
	rest, ok := strings.CutPrefix(requestID, requestIDPrefix)
	if !ok {
		return 0
	}
	n, err := strconv.Atoi(rest)
	if err != nil || n < 0 {
		return 0
	}
	return n
}

// TaskNumber parses the per-request number out of a task ID's trailing
// -task-<k> suffix. This is also the task's display number. Returns 0 if
// the ID does not follow the scheme.
func TaskNumber(taskID string) int {
	idx := strings.LastIndex(taskID, taskIDInfix)
	if idx < 0 {
		return 0
	}
	rest := taskID[idx+len(taskIDInfix):]
	k, err := strconv.Atoi(rest)
	if err != nil || k < 0 {
		return 0
	}
	return k
}

// SubtaskNumber parses the global counter out of a subtask ID's trailing
// -subtask-<g> suffix. Returns 0 for caller-supplied IDs that do not follow
// the scheme.
func SubtaskNumber(subtaskID string) int {
	idx := strings.LastIndex(subtaskID, subtaskIDInfix)
	if idx < 0 {
		return 0
	}
	rest := subtaskID[idx+len(subtaskIDInfix):]
	g, err := strconv.Atoi(rest)
	if err != nil || g < 0 {
		return 0
	}
	return g
}

// NextRequestNumber returns the next request counter value for the document:
// one past the maximum request number in use.
func NextRequestNumber(d *Document) int {
	maxN := 0
	for _, r := range d.Requests {
		if n := RequestNumber(r.RequestID); n > maxN {
			maxN = n
		}
	}
	return maxN + 1
}

// NextTaskNumber returns the next per-request task number: one past the
// maximum task number in the request. Numbers are strictly increasing and
// never reused, even after deletions.
func NextTaskNumber(r *Request) int {
	maxK := 0
	for _, t := range r.Tasks {
		if k := TaskNumber(t.ID); k > maxK {
			maxK = k
		}
	}
	return maxK + 1
}

// NextSubtaskNumber returns the next global subtask counter value: one past
// the maximum subtask number anywhere in the document. The counter is shared
// across all requests and only ever increments, so generated subtask IDs are
// globally unique.
func NextSubtaskNumber(d *Document) int {
	maxG := 0
	for _, r := range d.Requests {
		for _, t := range r.Tasks {
			for _, s := range t.Subtasks {
				if g := SubtaskNumber(s.ID); g > maxG {
					maxG = g
				}
			}
		}
	}
	return maxG + 1
}
