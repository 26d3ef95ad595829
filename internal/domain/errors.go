package domain

import (
	"errors"
	"fmt"
)

// Domain errors.
var (
	ErrRequestNotFound       = errors.New("request not found")
	ErrTaskNotFound          = errors.New("task not found")
	ErrSubtaskNotFound       = errors.New("subtask not found")
	ErrRequestCompleted      = errors.New("request already completed")
	ErrTaskAlreadyDone       = errors.New("task already done")
	ErrTaskNotDone           = errors.New("task not marked done yet")
	ErrTaskAlreadyApproved   = errors.New("task already approved")
	ErrTasksNotDone          = errors.New("not all tasks are done")
	ErrTasksNotApproved      = errors.New("not all done tasks are approved")
	ErrSubtasksIncomplete    = errors.New("subtasks incomplete")
	ErrInvalidTransition     = errors.New("invalid status transition")
	ErrCannotDeleteCompleted = errors.New("cannot delete a completed subtask")
	ErrValidation            = errors.New("validation failed")
	ErrEmptyTaskList         = errors.New("tasks list cannot be empty")
	ErrNoFieldsToUpdate      = errors.New("no fields to update")
	ErrInvalidStatus         = errors.New("invalid status")
)

// Error codes returned in result envelopes alongside human-readable messages.
const (
	CodeRequestNotFound       = "REQUEST_NOT_FOUND"
	CodeTaskNotFound          = "TASK_NOT_FOUND"
	CodeSubtaskNotFound       = "SUBTASK_NOT_FOUND"
	CodeRequestCompleted      = "REQUEST_ALREADY_COMPLETED"
	CodeTaskAlreadyDone       = "TASK_ALREADY_DONE"
	CodeTaskNotDone           = "TASK_NOT_DONE"
	CodeTaskAlreadyApproved   = "TASK_ALREADY_APPROVED"
	CodeTasksNotDone          = "TASKS_NOT_DONE"
	CodeTasksNotApproved      = "TASKS_NOT_APPROVED"
	CodeSubtasksIncomplete    = "SUBTASKS_INCOMPLETE"
	CodeInvalidTransition     = "INVALID_TRANSITION"
	CodeCannotDeleteCompleted = "CANNOT_DELETE_COMPLETED"
	CodeValidation            = "VALIDATION_ERROR"
	CodeEmptyTaskList         = "EMPTY_TASK_LIST"
	CodeNoFieldsToUpdate      = "NO_FIELDS_TO_UPDATE"
	CodeInvalidStatus         = "INVALID_STATUS"
	CodeInternal              = "INTERNAL_ERROR"
)

// ErrorCode maps a domain error to its machine-readable code.
// Unknown errors map to CodeInternal.
func ErrorCode(err error) string {
	switch {
	case errors.Is(err, ErrRequestNotFound):
		return CodeRequestNotFound
	case errors.Is(err, ErrTaskNotFound):
		return CodeTaskNotFound
	case errors.Is(err, ErrSubtaskNotFound):
		return CodeSubtaskNotFound
	case errors.Is(err, ErrRequestCompleted):
		return CodeRequestCompleted
	case errors.Is(err, ErrTaskAlreadyDone):
		return CodeTaskAlreadyDone
	case errors.Is(err, ErrTaskNotDone):
		return CodeTaskNotDone
	case errors.Is(err, ErrTaskAlreadyApproved):
		return CodeTaskAlreadyApproved
	case errors.Is(err, ErrTasksNotDone):
		return CodeTasksNotDone
	case errors.Is(err, ErrTasksNotApproved):
		return CodeTasksNotApproved
	case errors.Is(err, ErrSubtasksIncomplete):
		return CodeSubtasksIncomplete
	case errors.Is(err, ErrInvalidTransition):
		return CodeInvalidTransition
	case errors.Is(err, ErrCannotDeleteCompleted):
		return CodeCannotDeleteCompleted
	case errors.Is(err, ErrValidation):
		return CodeValidation
	case errors.Is(err, ErrEmptyTaskList):
		return CodeEmptyTaskList
	case errors.Is(err, ErrNoFieldsToUpdate):
		return CodeNoFieldsToUpdate
	case errors.Is(err, ErrInvalidStatus):
		return CodeInvalidStatus
	default:
		return CodeInternal
	}
}

// TransitionError reports an illegal status change together with the legal
// destinations for the source status.
type TransitionError struct {
	From SubtaskStatus
	To   SubtaskStatus
}

// Error implements the error interface.
func (e *TransitionError) Error() string {
	allowed := e.From.AllowedTransitions()
	if len(allowed) == 0 {
		return fmt.Sprintf("cannot transition from %s to %s", e.From, e.To)
	}
	return fmt.Sprintf("cannot transition from %s to %s (allowed: %s)",
		e.From, e.To, FormatStatusList(allowed))
}

// Is makes the error match ErrInvalidTransition for errors.Is.
func (e *TransitionError) Is(target error) bool {
	return target == ErrInvalidTransition
}

// SubtasksIncompleteError reports why a task cannot be marked done: the
// current completion percentage and how many subtasks remain.
type SubtasksIncompleteError struct {
	CompletionPercentage int
	RemainingSubtasks    int
}

// Error implements the error interface.
func (e *SubtasksIncompleteError) Error() string {
	return fmt.Sprintf("%d subtask(s) not completed (%d%% done)",
		e.RemainingSubtasks, e.CompletionPercentage)
}

// Is makes the error match ErrSubtasksIncomplete for errors.Is.
func (e *SubtasksIncompleteError) Is(target error) bool {
	return target == ErrSubtasksIncomplete
}
