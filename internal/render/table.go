// Package render turns use case results into human-readable progress views.
// The plain variants are appended to MCP tool responses so agents can show
// users where a request stands; the styled variants back the CLI and TUI.
package render

import (
	"fmt"
	"strings"

	"github.com/ytakei/taskwarden/internal/domain"
	"github.com/ytakei/taskwarden/internal/usecase"
)

// taskStatusText returns the status cell for a task row.
func taskStatusText(t usecase.TaskView) string {
	if t.Done {
		return "✅ Done"
	}
	return "🔄 In Progress"
}

// taskApprovalText returns the approval cell for a task row.
func taskApprovalText(t usecase.TaskView) string {
	if t.Approved {
		return "✅ Approved"
	}
	return "⏳ Pending"
}

// taskProgressText returns the progress cell for a task row.
// Tasks without subtasks have no percentage.
func taskProgressText(t usecase.TaskView) string {
	if t.CompletionPercentage == nil {
		return "-"
	}
	return fmt.Sprintf("%d%%", *t.CompletionPercentage)
}

// subtaskStatusText returns the status cell for a subtask row.
func subtaskStatusText(s usecase.SubtaskView) string {
	switch s.Status {
	case domain.StatusPending:
		return "○ Pending"
	case domain.StatusInProgress:
		return "● In Progress"
	case domain.StatusCompleted:
		return "✓ Completed"
	case domain.StatusCancelled:
		return "✗ Cancelled"
	default:
		return string(s.Status)
	}
}

// ProgressTable renders the tasks of one request as a markdown table, with
// subtask rows nested under their task.
func ProgressTable(tasks []usecase.TaskView) string {
	var b strings.Builder
	b.WriteString("\nProgress Status:\n")
	b.WriteString("| Task | Title | Status | Approval | Progress |\n")
	b.WriteString("|------|-------|--------|----------|----------|\n")

	for _, t := range tasks {
		fmt.Fprintf(&b, "| %d (%s) | %s | %s | %s | %s |\n",
			t.DisplayNumber, t.ID, cell(t.Title), taskStatusText(t), taskApprovalText(t), taskProgressText(t))
		for _, s := range t.Subtasks {
			fmt.Fprintf(&b, "| %d.%d (%s) | ↳ %s | %s | | |\n",
				t.DisplayNumber, s.DisplayNumber, s.ID, cell(s.Content), subtaskStatusText(s))
		}
	}
	return b.String()
}

// RequestsTable renders the roll-up of every request as a markdown table.
func RequestsTable(summaries []usecase.RequestSummary) string {
	var b strings.Builder
	b.WriteString("\nRequests List:\n")
	b.WriteString("| Request | Original Request | Total | Done | Approved | Completed |\n")
	b.WriteString("|---------|------------------|-------|------|----------|-----------|\n")

	for _, s := range summaries {
		completed := "No"
		if s.Completed {
			completed = "Yes"
		}
		fmt.Fprintf(&b, "| %s | %s | %d | %d | %d | %s |\n",
			s.RequestID, cell(s.OriginalRequest), s.TotalTasks, s.DoneTasks, s.ApprovedTasks, completed)
	}
	return b.String()
}

// cell sanitizes free text for a markdown table cell.
func cell(s string) string {
	s = strings.ReplaceAll(s, "\n", " ")
	return strings.ReplaceAll(s, "|", "\\|")
}
