package domain

import "strings"

// SubtaskStatus represents the lifecycle state of a subtask.
type SubtaskStatus string

const (
	StatusPending    SubtaskStatus = "pending"     // Created, not started
	StatusInProgress SubtaskStatus = "in_progress" // Work underway
	StatusCompleted  SubtaskStatus = "completed"   // Finished
	StatusCancelled  SubtaskStatus = "cancelled"   // Abandoned, restartable
)

// AllStatuses returns all valid status values.
func AllStatuses() []SubtaskStatus {
	return []SubtaskStatus{
		StatusPending,
		StatusInProgress,
		StatusCompleted,
		StatusCancelled,
	}
}

// transitions defines the allowed status transitions.
// Flow: pending → in_progress → completed
//
//	completed → pending (reopen)
//	cancelled → pending (restart)
//
// Identity transitions (e.g. pending → pending) are not listed and are
// rejected, keeping the transition function total and explicit.
var transitions = map[SubtaskStatus][]SubtaskStatus{
	StatusPending:    {StatusInProgress, StatusCancelled},
	StatusInProgress: {StatusCompleted, StatusPending, StatusCancelled},
	StatusCompleted:  {StatusPending},
	StatusCancelled:  {StatusPending},
}

// CanTransitionTo returns true if the status can transition to the target status.
func (s SubtaskStatus) CanTransitionTo(target SubtaskStatus) bool {
	allowed, ok := transitions[s]
	if !ok {
		return false
	}
	for _, t := range allowed {
		if t == target {
			return true
		}
	}
	return false
}

// AllowedTransitions returns the legal destination statuses from this status.
// Reported alongside transition errors so callers can self-correct.
func (s SubtaskStatus) AllowedTransitions() []SubtaskStatus {
	allowed, ok := transitions[s]
	if !ok {
		return nil
	}
	out := make([]SubtaskStatus, len(allowed))
	copy(out, allowed)
	return out
}

// IsValid returns true if the status is a known valid value.
func (s SubtaskStatus) IsValid() bool {
	switch s {
	case StatusPending, StatusInProgress, StatusCompleted, StatusCancelled:
		return true
	default:
		return false
	}
}

// Display returns a human-readable representation of the status.
func (s SubtaskStatus) Display() string {
	switch s {
	case StatusPending:
		return "Pending"
	case StatusInProgress:
		return "In Progress"
	case StatusCompleted:
		return "Completed"
	case StatusCancelled:
		return "Cancelled"
	default:
		return string(s)
	}
}

// FormatStatusList renders statuses as a comma-separated list for messages.
func FormatStatusList(statuses []SubtaskStatus) string {
	parts := make([]string, len(statuses))
	for i, s := range statuses {
		parts[i] = string(s)
	}
	return strings.Join(parts, ", ")
}
