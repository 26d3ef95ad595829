package domain

import (
	"fmt"
	"strings"
	"testing"
)

func violationCodes(v ValidationErrors) []string {
	codes := make([]string, len(v))
	for i, viol := range v {
		codes[i] = viol.Code
	}
	return codes
}

func TestValidateSubtaskBatch_Clean(t *testing.T) {
	specs := []SubtaskSpec{
		{Content: "Design schema"},
		{Content: "Write migrations"},
	}
	if got := ValidateSubtaskBatch(specs, nil, false); got != nil {
		t.Errorf("expected clean batch, got %v", got)
	}
}

func TestValidateSubtaskBatch_Empty(t *testing.T) {
	got := ValidateSubtaskBatch(nil, nil, false)
	if len(got) != 1 {
		t.Fatalf("expected 1 violation, got %v", got)
	}
}

func TestValidateSubtaskBatch_TooLarge(t *testing.T) {
	specs := make([]SubtaskSpec, MaxSubtaskBatch+1)
	for i := range specs {
		specs[i] = SubtaskSpec{Content: fmt.Sprintf("item %d", i)}
	}
	got := ValidateSubtaskBatch(specs, nil, false)
	if len(got) != 1 || got[0].Code != ViolationBatchTooLarge {
		t.Fatalf("expected BATCH_TOO_LARGE, got %v", got)
	}
}

func TestValidateSubtaskBatch_AggregatesAllViolations(t *testing.T) {
	specs := []SubtaskSpec{
		{Content: "   "}, // whitespace-only
		{Content: strings.Repeat("x", MaxSubtaskContentLen+1)},
		{Content: "Fix bug"},
		{Content: "fix bug "}, // duplicate of previous, case/whitespace-insensitive
	}
	got := ValidateSubtaskBatch(specs, nil, false)
	codes := violationCodes(got)
	want := []string{ViolationEmptyContent, ViolationContentTooLong, ViolationDuplicateContent}
	if len(codes) != len(want) {
		t.Fatalf("violations = %v, want codes %v", got, want)
	}
	for i, c := range want {
		if codes[i] != c {
			t.Errorf("violation[%d] code = %s, want %s", i, codes[i], c)
		}
	}
	// The duplicate is attributed to the later item.
	if got[2].Index != 3 {
		t.Errorf("duplicate index = %d, want 3", got[2].Index)
	}
}

func TestValidateSubtaskBatch_DuplicateAgainstExisting(t *testing.T) {
	existing := []*Subtask{{ID: "s1", Content: "Fix bug"}}
	specs := []SubtaskSpec{{Content: "FIX BUG"}}

	got := ValidateSubtaskBatch(specs, existing, false)
	if len(got) != 1 || got[0].Code != ViolationDuplicateContent {
		t.Fatalf("expected duplicate violation, got %v", got)
	}

	// A replacing batch discards the existing set, so no collision.
	if got := ValidateSubtaskBatch(specs, existing, true); got != nil {
		t.Errorf("replacing batch should ignore existing contents, got %v", got)
	}
}

func TestValidateSubtaskBatch_MaxLengthBoundary(t *testing.T) {
	specs := []SubtaskSpec{{Content: strings.Repeat("x", MaxSubtaskContentLen)}}
	if got := ValidateSubtaskBatch(specs, nil, false); got != nil {
		t.Errorf("exactly %d chars should pass, got %v", MaxSubtaskContentLen, got)
	}
}

func TestValidateContentUpdate(t *testing.T) {
	siblings := []*Subtask{
		{ID: "s1", Content: "Fix bug"},
		{ID: "s2", Content: "Add tests"},
	}

	// Updating s1 to its own content is allowed (self excluded).
	if got := ValidateContentUpdate("Fix bug", siblings, "s1"); got != nil {
		t.Errorf("self-collision should be allowed, got %v", got)
	}

	// Colliding with a sibling is rejected.
	got := ValidateContentUpdate("add tests", siblings, "s1")
	if len(got) != 1 || got[0].Code != ViolationDuplicateContent {
		t.Fatalf("expected duplicate violation, got %v", got)
	}

	// Empty content is rejected.
	got = ValidateContentUpdate("  ", siblings, "s1")
	if len(got) != 1 || got[0].Code != ViolationEmptyContent {
		t.Fatalf("expected empty-content violation, got %v", got)
	}
}

func TestValidateStatus(t *testing.T) {
	if got := ValidateStatus(StatusInProgress); got != nil {
		t.Errorf("expected valid, got %v", got)
	}
	got := ValidateStatus(SubtaskStatus("done"))
	if len(got) != 1 || got[0].Code != ViolationInvalidStatus {
		t.Fatalf("expected invalid-status violation, got %v", got)
	}
}

func TestValidationErrors_ErrorAndIs(t *testing.T) {
	v := ValidationErrors{{Code: ViolationEmptyContent, Message: "content cannot be empty"}}
	if !strings.Contains(v.Error(), "content cannot be empty") {
		t.Errorf("single violation message not surfaced: %q", v.Error())
	}

	many := ValidationErrors{{}, {}}
	if !strings.Contains(many.Error(), "2 violations") {
		t.Errorf("aggregate message = %q", many.Error())
	}
}
