package tui

import (
	"fmt"
	"strings"

	"github.com/ytakei/taskwarden/internal/render"
)

// View renders the TUI.
func (m *Model) View() string {
	if m.width == 0 {
		return "Loading..."
	}

	var b strings.Builder

	b.WriteString(m.styles.Header.Render("Taskwarden"))
	b.WriteString("\n\n")

	if m.err != nil {
		b.WriteString(m.styles.Muted.Render("Error: " + m.err.Error()))
		b.WriteString("\n\n")
	}

	switch m.mode {
	case ModeList:
		b.WriteString(m.viewList())
	case ModeDetail:
		b.WriteString(m.viewDetail())
	}

	b.WriteString("\n")
	b.WriteString(m.help.View(m.keys))
	return b.String()
}

// viewList renders the request overview with the cursor.
func (m *Model) viewList() string {
	if len(m.requests) == 0 {
		return m.styles.Muted.Render("  No requests yet")
	}

	var b strings.Builder
	for i, req := range m.requests {
		cursor := "  "
		line := fmt.Sprintf("%s  %s", req.RequestID, req.OriginalRequest)
		counts := fmt.Sprintf("%d/%d done", req.DoneTasks, req.TotalTasks)
		if req.Completed {
			counts += ", completed"
		}

		if i == m.cursor {
			cursor = m.styles.Done.Render("> ")
			line = m.styles.Title.Render(line)
		}
		b.WriteString(cursor + line + "  " + m.styles.Muted.Render(counts))
		b.WriteString("\n")
	}
	return b.String()
}

// viewDetail renders one request with its tasks and subtasks.
func (m *Model) viewDetail() string {
	if m.detail == nil {
		return ""
	}
	return render.StyledRequest(m.styles, m.detail.Request, m.detail.Tasks)
}
