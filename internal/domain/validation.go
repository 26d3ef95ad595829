package domain

import (
	"fmt"
	"strings"
)

// Validation limits.
const (
	MaxSubtaskContentLen = 500 // Characters, after trimming
	MaxSubtaskBatch      = 50  // Specs per create/break_down call
)

// Violation codes carried inside aggregated validation errors.
const (
	ViolationEmptyContent     = "EMPTY_CONTENT"
	ViolationContentTooLong   = "CONTENT_TOO_LONG"
	ViolationDuplicateContent = "DUPLICATE_CONTENT"
	ViolationInvalidStatus    = "INVALID_STATUS"
	ViolationBatchTooLarge    = "BATCH_TOO_LARGE"
)

// Violation describes a single validation failure. Index is the position of
// the offending spec within the batch, or -1 when the check is not
// batch-scoped.
type Violation struct {
	Field   string `json:"field"`
	Code    string `json:"code"`
	Message string `json:"message"`
	Index   int    `json:"index"`
}

// ValidationErrors aggregates every violation found in one call; mutating
// operations collect all of them before rejecting, never failing fast.
type ValidationErrors []Violation

// Error implements the error interface.
func (v ValidationErrors) Error() string {
	if len(v) == 1 {
		return "validation failed: " + v[0].Message
	}
	return fmt.Sprintf("validation failed: %d violations", len(v))
}

// Is makes the aggregate match ErrValidation for errors.Is.
func (v ValidationErrors) Is(target error) bool {
	return target == ErrValidation
}

// SubtaskSpec is a caller-supplied subtask description for create and
// break_down. ID is optional; when set it is used verbatim.
type SubtaskSpec struct {
	ID      string `json:"id,omitempty"`
	Content string `json:"content"`
}

// NormalizeContent trims surrounding whitespace from subtask content.
// All storage and comparison happens on the normalized form.
func NormalizeContent(content string) string {
	return strings.TrimSpace(content)
}

// contentEqual reports whether two contents collide: case-insensitive
// comparison of the trimmed forms.
func contentEqual(a, b string) bool {
	return strings.EqualFold(NormalizeContent(a), NormalizeContent(b))
}

// checkContent validates a single content value and appends any violations.
func checkContent(out ValidationErrors, content string, index int) ValidationErrors {
	trimmed := NormalizeContent(content)
	if trimmed == "" {
		out = append(out, Violation{
			Field:   "content",
			Code:    ViolationEmptyContent,
			Message: "content cannot be empty or whitespace-only",
			Index:   index,
		})
		return out
	}
	if len([]rune(trimmed)) > MaxSubtaskContentLen {
		out = append(out, Violation{
			Field:   "content",
			Code:    ViolationContentTooLong,
			Message: fmt.Sprintf("content exceeds %d characters", MaxSubtaskContentLen),
			Index:   index,
		})
	}
	return out
}

// ValidateSubtaskBatch validates a create/break_down batch: size bounds,
// per-item content rules, pairwise duplicates within the batch, and, unless
// the batch replaces the existing set, duplicates against existing siblings.
// Returns nil when the batch is clean.
func ValidateSubtaskBatch(specs []SubtaskSpec, existing []*Subtask, replacing bool) ValidationErrors {
	var out ValidationErrors

	if len(specs) == 0 {
		out = append(out, Violation{
			Field:   "subtasks",
			Code:    ViolationEmptyContent,
			Message: "at least one subtask is required",
			Index:   -1,
		})
		return out
	}
	if len(specs) > MaxSubtaskBatch {
		out = append(out, Violation{
			Field:   "subtasks",
			Code:    ViolationBatchTooLarge,
			Message: fmt.Sprintf("at most %d subtasks per call", MaxSubtaskBatch),
			Index:   -1,
		})
		return out
	}

	for i, spec := range specs {
		out = checkContent(out, spec.Content, i)

		// Pairwise duplicates within the batch
		for j := 0; j < i; j++ {
			if contentEqual(spec.Content, specs[j].Content) {
				out = append(out, Violation{
					Field:   "content",
					Code:    ViolationDuplicateContent,
					Message: fmt.Sprintf("duplicates subtask %d in this batch", j+1),
					Index:   i,
				})
				break
			}
		}

		if replacing {
			continue
		}
		for _, sib := range existing {
			if contentEqual(spec.Content, sib.Content) {
				out = append(out, Violation{
					Field:   "content",
					Code:    ViolationDuplicateContent,
					Message: fmt.Sprintf("duplicates existing subtask %q", sib.ID),
					Index:   i,
				})
				break
			}
		}
	}

	return out
}

// ValidateContentUpdate validates new content for an existing subtask:
// content rules plus case-insensitive uniqueness against siblings, excluding
// the subtask being updated. Returns nil when the update is clean.
func ValidateContentUpdate(content string, siblings []*Subtask, selfID string) ValidationErrors {
	var out ValidationErrors
	out = checkContent(out, content, -1)
	for _, sib := range siblings {
		if sib.ID == selfID {
			continue
		}
		if contentEqual(content, sib.Content) {
			out = append(out, Violation{
				Field:   "content",
				Code:    ViolationDuplicateContent,
				Message: fmt.Sprintf("duplicates existing subtask %q", sib.ID),
				Index:   -1,
			})
			break
		}
	}
	return out
}

// ValidateStatus checks that a status value is one of the defined statuses.
func ValidateStatus(status SubtaskStatus) ValidationErrors {
	if status.IsValid() {
		return nil
	}
	return ValidationErrors{{
		Field:   "status",
		Code:    ViolationInvalidStatus,
		Message: fmt.Sprintf("unknown status %q (valid: %s)", status, FormatStatusList(AllStatuses())),
		Index:   -1,
	}}
}
