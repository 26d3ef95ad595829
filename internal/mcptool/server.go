// Package mcptool wires the use cases into an MCP server over stdio.
//
// This is the tool boundary: handlers decode tool arguments, run a use case,
// and encode the result envelope. Use case errors never cross the boundary as
// Go errors; they are converted to error envelopes with a machine-readable
// code. Protocol-level errors (malformed JSON-RPC) are left to the library.
package mcptool

import (
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	"github.com/ytakei/taskwarden/internal/domain"
)

// NewServer creates the MCP server with every tool registered.
func NewServer(version string, store domain.DocumentStore, clock domain.Clock, logger domain.Logger) *server.MCPServer {
	s := server.NewMCPServer(
		"taskwarden",
		version,
		server.WithToolCapabilities(true),
		server.WithRecovery(),
		server.WithInstructions(serverInstructions()),
	)

	h := NewHandlers(store, clock, logger)

	s.AddTool(mcp.NewTool("request_planning",
		mcp.WithDescription("Register a new user request and plan its associated tasks. Every workflow starts here."),
		mcp.WithString("originalRequest", mcp.Required(), mcp.Description("The user's request, verbatim")),
		mcp.WithString("splitDetails", mcp.Description("How the request was split into tasks; defaults to originalRequest")),
		mcp.WithArray("tasks", mcp.Required(), mcp.Description("Tasks to create, in execution order"),
			mcp.Items(taskSpecSchema())),
	), h.RequestPlanning)

	s.AddTool(mcp.NewTool("get_next_task",
		mcp.WithDescription("Return the first not-done task of a request, or report that all tasks are done."),
		mcp.WithString("requestId", mcp.Required(), mcp.Description("The request to look in")),
	), h.GetNextTask)

	s.AddTool(mcp.NewTool("mark_task_done",
		mcp.WithDescription("Mark a task as done. Fails while the task still has uncompleted subtasks."),
		mcp.WithString("requestId", mcp.Required(), mcp.Description("The request owning the task")),
		mcp.WithString("taskId", mcp.Required(), mcp.Description("The task to mark done")),
		mcp.WithString("completedDetails", mcp.Description("What was accomplished")),
	), h.MarkTaskDone)

	s.AddTool(mcp.NewTool("approve_task_completion",
		mcp.WithDescription("Approve a done task. Requires the user's explicit confirmation."),
		mcp.WithString("requestId", mcp.Required(), mcp.Description("The request owning the task")),
		mcp.WithString("taskId", mcp.Required(), mcp.Description("The done task to approve")),
	), h.ApproveTaskCompletion)

	s.AddTool(mcp.NewTool("approve_request_completion",
		mcp.WithDescription("Close a request once every task is done and approved. Requires the user's explicit confirmation."),
		mcp.WithString("requestId", mcp.Required(), mcp.Description("The request to close")),
	), h.ApproveRequestCompletion)

	s.AddTool(mcp.NewTool("open_task_details",
		mcp.WithDescription("Look up a task by id across all requests, including its subtasks."),
		mcp.WithString("taskId", mcp.Required(), mcp.Description("The task to open")),
	), h.OpenTaskDetails)

	s.AddTool(mcp.NewTool("list_requests",
		mcp.WithDescription("List every request with task counts and completion state."),
	), h.ListRequests)

	s.AddTool(mcp.NewTool("add_tasks_to_request",
		mcp.WithDescription("Append tasks to an existing request. Rejected once the request is completed."),
		mcp.WithString("requestId", mcp.Required(), mcp.Description("The request to extend")),
		mcp.WithArray("tasks", mcp.Required(), mcp.Description("Tasks to append, in execution order"),
			mcp.Items(taskSpecSchema())),
	), h.AddTasksToRequest)

	s.AddTool(mcp.NewTool("update_task",
		mcp.WithDescription("Update the title and/or description of a task that is not done yet."),
		mcp.WithString("requestId", mcp.Required(), mcp.Description("The request owning the task")),
		mcp.WithString("taskId", mcp.Required(), mcp.Description("The task to update")),
		mcp.WithString("title", mcp.Description("New title")),
		mcp.WithString("description", mcp.Description("New description")),
	), h.UpdateTask)

	s.AddTool(mcp.NewTool("delete_task",
		mcp.WithDescription("Delete a task that is not done yet."),
		mcp.WithString("requestId", mcp.Required(), mcp.Description("The request owning the task")),
		mcp.WithString("taskId", mcp.Required(), mcp.Description("The task to delete")),
	), h.DeleteTask)

	s.AddTool(mcp.NewTool("manage_subtasks",
		mcp.WithDescription("Create, update, complete, or delete subtasks of a task, or break a task down into a fresh subtask set (break_down replaces all existing subtasks)."),
		mcp.WithString("action", mcp.Required(),
			mcp.Description("One of: create, update, complete, delete, break_down"),
			mcp.Enum(actionCreate, actionUpdate, actionComplete, actionDelete, actionBreakDown)),
		mcp.WithString("requestId", mcp.Required(), mcp.Description("The request owning the task")),
		mcp.WithString("taskId", mcp.Required(), mcp.Description("The task owning the subtasks")),
		mcp.WithString("subtaskId", mcp.Description("The subtask to update, complete, or delete")),
		mcp.WithString("content", mcp.Description("New content (update action)")),
		mcp.WithString("status", mcp.Description("New status: pending, in_progress, completed, cancelled (update action)")),
		mcp.WithArray("subtasks", mcp.Description("Subtasks to create (create and break_down actions)"),
			mcp.Items(subtaskSpecSchema())),
	), h.ManageSubtasks)

	return s
}

// ServeStdio runs the server over stdin/stdout until the client disconnects.
func ServeStdio(s *server.MCPServer) error {
	return server.ServeStdio(s)
}

// taskSpecSchema is the JSON schema for one task in a tasks array.
func taskSpecSchema() map[string]any {
	return map[string]any{
		"type": "object",
		"properties": map[string]any{
			"title":       map[string]any{"type": "string", "description": "Task title"},
			"description": map[string]any{"type": "string", "description": "Task description"},
		},
		"required": []string{"title"},
	}
}

// subtaskSpecSchema is the JSON schema for one subtask in a subtasks array.
func subtaskSpecSchema() map[string]any {
	return map[string]any{
		"type": "object",
		"properties": map[string]any{
			"content": map[string]any{"type": "string", "description": "Subtask content, 1-500 characters"},
			"id":      map[string]any{"type": "string", "description": "Optional explicit subtask id"},
		},
		"required": []string{"content"},
	}
}

// serverInstructions tells the calling agent how the approval workflow works.
func serverInstructions() string {
	return `Taskwarden tracks user requests as ordered tasks with optional subtasks.

Workflow:
1. Call request_planning with the user's request and a task split.
2. Call get_next_task to fetch the next task to work on.
3. Optionally break the task into subtasks with manage_subtasks (action
   "create" or "break_down") and complete them one by one (action "complete").
4. Call mark_task_done when the work is finished. This fails while subtasks
   remain uncompleted.
5. Ask the user to confirm, then call approve_task_completion. Never approve
   on the user's behalf.
6. After every task is done and approved, ask the user again and call
   approve_request_completion to close the request.

Failed calls return an envelope with status "error" and a machine-readable
code such as TASK_NOT_FOUND or SUBTASKS_INCOMPLETE. Inspect the code, fix the
call, and retry; do not retry verbatim.`
}
