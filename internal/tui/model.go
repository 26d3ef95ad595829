// Package tui provides a read-only progress viewer for requests and tasks.
package tui

import (
	"context"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/ytakei/taskwarden/internal/app"
	"github.com/ytakei/taskwarden/internal/render"
	"github.com/ytakei/taskwarden/internal/usecase"
)

// Mode is the current view mode.
type Mode int

// View modes.
const (
	ModeList Mode = iota
	ModeDetail
)

// MsgRequestsLoaded carries the request summaries after a refresh.
type MsgRequestsLoaded struct {
	Requests []usecase.RequestSummary
}

// MsgRequestOpened carries one request's full task list.
type MsgRequestOpened struct {
	Request usecase.RequestSummary
	Tasks   []usecase.TaskView
}

// MsgError carries a load failure.
type MsgError struct {
	Err error
}

// Model is the bubbletea model for the progress viewer.
type Model struct {
	container *app.Container
	err       error

	requests []usecase.RequestSummary
	detail   *MsgRequestOpened

	keys   KeyMap
	styles render.Styles
	help   help.Model

	mode   Mode
	cursor int
	width  int
	height int
}

// New creates a new TUI Model with the given container.
func New(c *app.Container) *Model {
	return &Model{
		container: c,
		keys:      DefaultKeyMap(),
		styles:    render.DefaultStyles(),
		help:      help.New(),
		mode:      ModeList,
	}
}

// Init initializes the model and returns the initial command.
func (m *Model) Init() tea.Cmd {
	return m.loadRequests()
}

// loadRequests returns a command that loads the request summaries.
func (m *Model) loadRequests() tea.Cmd {
	return func() tea.Msg {
		out, err := m.container.ListRequestsUseCase().Execute(context.Background())
		if err != nil {
			return MsgError{Err: err}
		}
		return MsgRequestsLoaded{Requests: out.Requests}
	}
}

// openRequest returns a command that loads the selected request in full.
func (m *Model) openRequest(requestID string) tea.Cmd {
	return func() tea.Msg {
		out, err := m.container.ShowRequestUseCase().Execute(context.Background(),
			usecase.ShowRequestInput{RequestID: requestID})
		if err != nil {
			return MsgError{Err: err}
		}
		return MsgRequestOpened{Request: out.Request, Tasks: out.Tasks}
	}
}

// SelectedRequest returns the request under the cursor, or nil if none.
func (m *Model) SelectedRequest() *usecase.RequestSummary {
	if m.cursor < 0 || m.cursor >= len(m.requests) {
		return nil
	}
	return &m.requests[m.cursor]
}

// Update handles messages.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case MsgRequestsLoaded:
		m.err = nil
		m.requests = msg.Requests
		if m.cursor >= len(m.requests) {
			m.cursor = len(m.requests) - 1
		}
		if m.cursor < 0 {
			m.cursor = 0
		}
		return m, nil

	case MsgRequestOpened:
		m.err = nil
		detail := msg
		m.detail = &detail
		m.mode = ModeDetail
		return m, nil

	case MsgError:
		m.err = msg.Err
		return m, nil

	case tea.KeyMsg:
		return m.updateKeys(msg)
	}

	return m, nil
}

func (m *Model) updateKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil

	case key.Matches(msg, m.keys.Refresh):
		if m.mode == ModeDetail && m.detail != nil {
			return m, m.openRequest(m.detail.Request.RequestID)
		}
		return m, m.loadRequests()

	case key.Matches(msg, m.keys.Back):
		if m.mode == ModeDetail {
			m.mode = ModeList
			m.detail = nil
			return m, m.loadRequests()
		}
		return m, nil

	case key.Matches(msg, m.keys.Up):
		if m.mode == ModeList && m.cursor > 0 {
			m.cursor--
		}
		return m, nil

	case key.Matches(msg, m.keys.Down):
		if m.mode == ModeList && m.cursor < len(m.requests)-1 {
			m.cursor++
		}
		return m, nil

	case key.Matches(msg, m.keys.Open):
		if m.mode == ModeList {
			if req := m.SelectedRequest(); req != nil {
				return m, m.openRequest(req.RequestID)
			}
		}
		return m, nil
	}

	return m, nil
}

// Run starts the TUI program and blocks until it exits.
func Run(c *app.Container) error {
	p := tea.NewProgram(New(c), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
