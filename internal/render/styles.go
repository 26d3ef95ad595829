package render

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/ytakei/taskwarden/internal/domain"
	"github.com/ytakei/taskwarden/internal/usecase"
)

// Colors defines the color palette shared by the CLI renderer and the TUI.
var Colors = struct {
	Primary lipgloss.Color
	Muted   lipgloss.Color
	Error   lipgloss.Color
	Success lipgloss.Color
	Warning lipgloss.Color

	Pending    lipgloss.Color
	InProgress lipgloss.Color
	Completed  lipgloss.Color
	Cancelled  lipgloss.Color
}{
	Primary: lipgloss.Color("#6C5CE7"), // Purple
	Muted:   lipgloss.Color("#636E72"), // Gray
	Error:   lipgloss.Color("#D63031"), // Red
	Success: lipgloss.Color("#00B894"), // Green
	Warning: lipgloss.Color("#FDCB6E"), // Yellow

	Pending:    lipgloss.Color("#74B9FF"), // Light blue
	InProgress: lipgloss.Color("#FDCB6E"), // Yellow
	Completed:  lipgloss.Color("#00B894"), // Green
	Cancelled:  lipgloss.Color("#636E72"), // Gray
}

// Styles contains the lipgloss styles for the CLI renderer.
type Styles struct {
	Header  lipgloss.Style
	ID      lipgloss.Style
	Title   lipgloss.Style
	Muted   lipgloss.Style
	Done    lipgloss.Style
	Pending lipgloss.Style

	StatusPending    lipgloss.Style
	StatusInProgress lipgloss.Style
	StatusCompleted  lipgloss.Style
	StatusCancelled  lipgloss.Style
}

// DefaultStyles returns the default styles for the CLI renderer.
func DefaultStyles() Styles {
	return Styles{
		Header: lipgloss.NewStyle().
			Bold(true).
			Foreground(Colors.Primary),

		ID: lipgloss.NewStyle().
			Foreground(Colors.Muted),

		Title: lipgloss.NewStyle().
			Bold(true),

		Muted: lipgloss.NewStyle().
			Foreground(Colors.Muted),

		Done: lipgloss.NewStyle().
			Foreground(Colors.Success),

		Pending: lipgloss.NewStyle().
			Foreground(Colors.Warning),

		StatusPending: lipgloss.NewStyle().
			Foreground(Colors.Pending),

		StatusInProgress: lipgloss.NewStyle().
			Foreground(Colors.InProgress),

		StatusCompleted: lipgloss.NewStyle().
			Foreground(Colors.Completed),

		StatusCancelled: lipgloss.NewStyle().
			Foreground(Colors.Cancelled),
	}
}

// StatusStyle returns the style for a given subtask status.
func (s Styles) StatusStyle(status domain.SubtaskStatus) lipgloss.Style {
	switch status {
	case domain.StatusPending:
		return s.StatusPending
	case domain.StatusInProgress:
		return s.StatusInProgress
	case domain.StatusCompleted:
		return s.StatusCompleted
	case domain.StatusCancelled:
		return s.StatusCancelled
	default:
		return s.StatusPending
	}
}

// StatusIcon returns an icon for a given subtask status.
func StatusIcon(status domain.SubtaskStatus) string {
	switch status {
	case domain.StatusPending:
		return "○"
	case domain.StatusInProgress:
		return "●"
	case domain.StatusCompleted:
		return "✓"
	case domain.StatusCancelled:
		return "✗"
	default:
		return "?"
	}
}

// StyledRequest renders one request with its tasks and subtasks for the CLI.
func StyledRequest(styles Styles, summary usecase.RequestSummary, tasks []usecase.TaskView) string {
	var b strings.Builder

	header := fmt.Sprintf("%s  %s", summary.RequestID, summary.OriginalRequest)
	b.WriteString(styles.Header.Render(header))
	b.WriteString("\n")
	b.WriteString(styles.Muted.Render(fmt.Sprintf("%d tasks, %d done, %d approved",
		summary.TotalTasks, summary.DoneTasks, summary.ApprovedTasks)))
	if summary.Completed {
		b.WriteString("  ")
		b.WriteString(styles.Done.Render("completed"))
	}
	b.WriteString("\n")

	for _, t := range tasks {
		b.WriteString(StyledTask(styles, t))
	}
	return b.String()
}

// StyledTask renders one task line plus its subtask lines for the CLI.
func StyledTask(styles Styles, t usecase.TaskView) string {
	var b strings.Builder

	mark := styles.Pending.Render("·")
	if t.Done {
		mark = styles.Done.Render("✓")
	}
	line := fmt.Sprintf("  %s %s %s", mark, styles.ID.Render(t.ID), styles.Title.Render(t.Title))
	if t.CompletionPercentage != nil {
		line += "  " + styles.Muted.Render(fmt.Sprintf("%d%%", *t.CompletionPercentage))
	}
	if t.Approved {
		line += "  " + styles.Done.Render("approved")
	}
	b.WriteString(line)
	b.WriteString("\n")

	for _, s := range t.Subtasks {
		icon := styles.StatusStyle(s.Status).Render(StatusIcon(s.Status))
		fmt.Fprintf(&b, "      %s %s %s\n", icon, styles.ID.Render(fmt.Sprintf("%d.", s.DisplayNumber)), s.Content)
	}
	return b.String()
}
