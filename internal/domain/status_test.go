package domain

import "testing"

func TestSubtaskStatus_CanTransitionTo(t *testing.T) {
	tests := []struct {
		name   string
		from   SubtaskStatus
		to     SubtaskStatus
		expect bool
	}{
		// From pending
		{"pending -> in_progress", StatusPending, StatusInProgress, true},
		{"pending -> cancelled", StatusPending, StatusCancelled, true},
		{"pending -> completed", StatusPending, StatusCompleted, false},
		{"pending -> pending", StatusPending, StatusPending, false},

		// From in_progress
		{"in_progress -> completed", StatusInProgress, StatusCompleted, true},
		{"in_progress -> pending", StatusInProgress, StatusPending, true},
		{"in_progress -> cancelled", StatusInProgress, StatusCancelled, true},
		{"in_progress -> in_progress", StatusInProgress, StatusInProgress, false},

		// From completed (reopen only)
		{"completed -> pending", StatusCompleted, StatusPending, true},
		{"completed -> in_progress", StatusCompleted, StatusInProgress, false},
		{"completed -> cancelled", StatusCompleted, StatusCancelled, false},
		{"completed -> completed", StatusCompleted, StatusCompleted, false},

		// From cancelled (restart only)
		{"cancelled -> pending", StatusCancelled, StatusPending, true},
		{"cancelled -> in_progress", StatusCancelled, StatusInProgress, false},
		{"cancelled -> completed", StatusCancelled, StatusCompleted, false},
		{"cancelled -> cancelled", StatusCancelled, StatusCancelled, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.from.CanTransitionTo(tt.to)
			if got != tt.expect {
				t.Errorf("CanTransitionTo(%s, %s) = %v, want %v", tt.from, tt.to, got, tt.expect)
			}
		})
	}
}

func TestSubtaskStatus_CanTransitionTo_UnknownStatus(t *testing.T) {
	unknown := SubtaskStatus("unknown")
	if unknown.CanTransitionTo(StatusPending) {
		t.Error("unknown status should not transition to any status")
	}
}

func TestSubtaskStatus_AllowedTransitions(t *testing.T) {
	got := StatusCompleted.AllowedTransitions()
	if len(got) != 1 || got[0] != StatusPending {
		t.Errorf("AllowedTransitions(completed) = %v, want [pending]", got)
	}

	if got := SubtaskStatus("bogus").AllowedTransitions(); got != nil {
		t.Errorf("AllowedTransitions(bogus) = %v, want nil", got)
	}
}

func TestSubtaskStatus_IsValid(t *testing.T) {
	for _, s := range AllStatuses() {
		if !s.IsValid() {
			t.Errorf("IsValid(%s) = false, want true", s)
		}
	}
	if SubtaskStatus("done").IsValid() {
		t.Error("IsValid(done) = true, want false")
	}
	if SubtaskStatus("").IsValid() {
		t.Error("IsValid(empty) = true, want false")
	}
}

func TestSubtaskStatus_Display(t *testing.T) {
	tests := []struct {
		status SubtaskStatus
		want   string
	}{
		{StatusPending, "Pending"},
		{StatusInProgress, "In Progress"},
		{StatusCompleted, "Completed"},
		{StatusCancelled, "Cancelled"},
		{SubtaskStatus("weird"), "weird"},
	}
	for _, tt := range tests {
		if got := tt.status.Display(); got != tt.want {
			t.Errorf("Display(%s) = %q, want %q", tt.status, got, tt.want)
		}
	}
}
