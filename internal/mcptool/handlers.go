package mcptool

import (
	"context"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/ytakei/taskwarden/internal/domain"
	"github.com/ytakei/taskwarden/internal/render"
	"github.com/ytakei/taskwarden/internal/usecase"
)

// Subtask management actions accepted by the manage_subtasks tool.
const (
	actionCreate    = "create"
	actionUpdate    = "update"
	actionComplete  = "complete"
	actionDelete    = "delete"
	actionBreakDown = "break_down"
)

// Handlers owns one instance of every use case and exposes them as MCP tool
// handlers. All validation and state logic lives in the use cases; handlers
// only decode arguments and encode results.
type Handlers struct {
	plan        *usecase.PlanRequest
	getNext     *usecase.GetNextTask
	markDone    *usecase.MarkTaskDone
	approveTask *usecase.ApproveTask
	approveReq  *usecase.ApproveRequest
	openTask    *usecase.OpenTask
	list        *usecase.ListRequests
	addTasks    *usecase.AddTasks
	updateTask  *usecase.UpdateTask
	deleteTask  *usecase.DeleteTask
	createSubs  *usecase.CreateSubtasks
	updateSub   *usecase.UpdateSubtask
	completeSub *usecase.CompleteSubtask
	deleteSub   *usecase.DeleteSubtask
	breakDown   *usecase.BreakDownTask
}

// NewHandlers wires the use cases against the given dependencies.
func NewHandlers(store domain.DocumentStore, clock domain.Clock, logger domain.Logger) *Handlers {
	return &Handlers{
		plan:        usecase.NewPlanRequest(store, logger),
		getNext:     usecase.NewGetNextTask(store),
		markDone:    usecase.NewMarkTaskDone(store, logger),
		approveTask: usecase.NewApproveTask(store, logger),
		approveReq:  usecase.NewApproveRequest(store, logger),
		openTask:    usecase.NewOpenTask(store),
		list:        usecase.NewListRequests(store),
		addTasks:    usecase.NewAddTasks(store, logger),
		updateTask:  usecase.NewUpdateTask(store, logger),
		deleteTask:  usecase.NewDeleteTask(store, logger),
		createSubs:  usecase.NewCreateSubtasks(store, clock, logger),
		updateSub:   usecase.NewUpdateSubtask(store, clock, logger),
		completeSub: usecase.NewCompleteSubtask(store, clock, logger),
		deleteSub:   usecase.NewDeleteSubtask(store, logger),
		breakDown:   usecase.NewBreakDownTask(store, clock, logger),
	}
}

// RequestPlanning handles the request_planning tool.
func (h *Handlers) RequestPlanning(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := req.GetArguments()

	originalRequest, err := argString(args, "originalRequest")
	if err != nil {
		return errorResult(err)
	}
	splitDetails, err := argOptString(args, "splitDetails")
	if err != nil {
		return errorResult(err)
	}
	tasks, err := argTaskSpecs(args, "tasks")
	if err != nil {
		return errorResult(err)
	}

	in := usecase.PlanRequestInput{OriginalRequest: originalRequest, Tasks: tasks}
	if splitDetails != nil {
		in.SplitDetails = *splitDetails
	}

	out, err := h.plan.Execute(ctx, in)
	if err != nil {
		return errorResult(err)
	}
	return textResult(out, render.ProgressTable(out.Tasks))
}

// GetNextTask handles the get_next_task tool.
func (h *Handlers) GetNextTask(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	requestID, err := argString(req.GetArguments(), "requestId")
	if err != nil {
		return errorResult(err)
	}

	out, err := h.getNext.Execute(ctx, usecase.GetNextTaskInput{RequestID: requestID})
	if err != nil {
		return errorResult(err)
	}
	table := ""
	if out.Task != nil {
		table = render.ProgressTable([]usecase.TaskView{*out.Task})
	}
	return textResult(out, table)
}

// MarkTaskDone handles the mark_task_done tool.
func (h *Handlers) MarkTaskDone(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := req.GetArguments()

	requestID, err := argString(args, "requestId")
	if err != nil {
		return errorResult(err)
	}
	taskID, err := argString(args, "taskId")
	if err != nil {
		return errorResult(err)
	}
	details, err := argOptString(args, "completedDetails")
	if err != nil {
		return errorResult(err)
	}

	in := usecase.MarkTaskDoneInput{RequestID: requestID, TaskID: taskID}
	if details != nil {
		in.CompletedDetails = *details
	}

	out, err := h.markDone.Execute(ctx, in)
	if err != nil {
		return errorResult(err)
	}
	return textResult(out, render.ProgressTable([]usecase.TaskView{out.Task}))
}

// ApproveTaskCompletion handles the approve_task_completion tool.
func (h *Handlers) ApproveTaskCompletion(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := req.GetArguments()

	requestID, err := argString(args, "requestId")
	if err != nil {
		return errorResult(err)
	}
	taskID, err := argString(args, "taskId")
	if err != nil {
		return errorResult(err)
	}

	out, err := h.approveTask.Execute(ctx, usecase.ApproveTaskInput{RequestID: requestID, TaskID: taskID})
	if err != nil {
		return errorResult(err)
	}
	return textResult(out, render.ProgressTable([]usecase.TaskView{out.Task}))
}

// ApproveRequestCompletion handles the approve_request_completion tool.
func (h *Handlers) ApproveRequestCompletion(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	requestID, err := argString(req.GetArguments(), "requestId")
	if err != nil {
		return errorResult(err)
	}

	out, err := h.approveReq.Execute(ctx, usecase.ApproveRequestInput{RequestID: requestID})
	if err != nil {
		return errorResult(err)
	}
	return textResult(out, render.RequestsTable([]usecase.RequestSummary{out.Request}))
}

// OpenTaskDetails handles the open_task_details tool.
func (h *Handlers) OpenTaskDetails(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	taskID, err := argString(req.GetArguments(), "taskId")
	if err != nil {
		return errorResult(err)
	}

	out, err := h.openTask.Execute(ctx, usecase.OpenTaskInput{TaskID: taskID})
	if err != nil {
		return errorResult(err)
	}
	return textResult(out, render.ProgressTable([]usecase.TaskView{out.Task}))
}

// ListRequests handles the list_requests tool.
func (h *Handlers) ListRequests(ctx context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	out, err := h.list.Execute(ctx)
	if err != nil {
		return errorResult(err)
	}
	return textResult(out, render.RequestsTable(out.Requests))
}

// AddTasksToRequest handles the add_tasks_to_request tool.
func (h *Handlers) AddTasksToRequest(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := req.GetArguments()

	requestID, err := argString(args, "requestId")
	if err != nil {
		return errorResult(err)
	}
	tasks, err := argTaskSpecs(args, "tasks")
	if err != nil {
		return errorResult(err)
	}

	out, err := h.addTasks.Execute(ctx, usecase.AddTasksInput{RequestID: requestID, Tasks: tasks})
	if err != nil {
		return errorResult(err)
	}
	return textResult(out, render.ProgressTable(out.Tasks))
}

// UpdateTask handles the update_task tool.
func (h *Handlers) UpdateTask(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := req.GetArguments()

	requestID, err := argString(args, "requestId")
	if err != nil {
		return errorResult(err)
	}
	taskID, err := argString(args, "taskId")
	if err != nil {
		return errorResult(err)
	}
	title, err := argOptString(args, "title")
	if err != nil {
		return errorResult(err)
	}
	description, err := argOptString(args, "description")
	if err != nil {
		return errorResult(err)
	}

	out, err := h.updateTask.Execute(ctx, usecase.UpdateTaskInput{
		RequestID:   requestID,
		TaskID:      taskID,
		Title:       title,
		Description: description,
	})
	if err != nil {
		return errorResult(err)
	}
	return textResult(out, render.ProgressTable([]usecase.TaskView{out.Task}))
}

// DeleteTask handles the delete_task tool.
func (h *Handlers) DeleteTask(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := req.GetArguments()

	requestID, err := argString(args, "requestId")
	if err != nil {
		return errorResult(err)
	}
	taskID, err := argString(args, "taskId")
	if err != nil {
		return errorResult(err)
	}

	out, err := h.deleteTask.Execute(ctx, usecase.DeleteTaskInput{RequestID: requestID, TaskID: taskID})
	if err != nil {
		return errorResult(err)
	}
	return textResult(out, "")
}

// ManageSubtasks handles the manage_subtasks tool, dispatching on action.
func (h *Handlers) ManageSubtasks(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := req.GetArguments()

	action, err := argString(args, "action")
	if err != nil {
		return errorResult(err)
	}
	requestID, err := argString(args, "requestId")
	if err != nil {
		return errorResult(err)
	}
	taskID, err := argString(args, "taskId")
	if err != nil {
		return errorResult(err)
	}

	switch action {
	case actionCreate:
		return h.subtasksCreate(ctx, args, requestID, taskID)
	case actionUpdate:
		return h.subtaskUpdate(ctx, args, requestID, taskID)
	case actionComplete:
		return h.subtaskComplete(ctx, args, requestID, taskID)
	case actionDelete:
		return h.subtaskDelete(ctx, args, requestID, taskID)
	case actionBreakDown:
		return h.taskBreakDown(ctx, args, requestID, taskID)
	default:
		return errorResult(fmt.Errorf("unknown action %q: %w", action, domain.ErrValidation))
	}
}

func (h *Handlers) subtasksCreate(ctx context.Context, args map[string]any, requestID, taskID string) (*mcp.CallToolResult, error) {
	specs, err := argSubtaskSpecs(args, "subtasks")
	if err != nil {
		return errorResult(err)
	}

	out, err := h.createSubs.Execute(ctx, usecase.CreateSubtasksInput{
		RequestID: requestID,
		TaskID:    taskID,
		Subtasks:  specs,
	})
	if err != nil {
		return errorResult(err)
	}
	return textResult(out, render.ProgressTable([]usecase.TaskView{out.Task}))
}

func (h *Handlers) subtaskUpdate(ctx context.Context, args map[string]any, requestID, taskID string) (*mcp.CallToolResult, error) {
	subtaskID, err := argString(args, "subtaskId")
	if err != nil {
		return errorResult(err)
	}
	content, err := argOptString(args, "content")
	if err != nil {
		return errorResult(err)
	}
	statusStr, err := argOptString(args, "status")
	if err != nil {
		return errorResult(err)
	}

	in := usecase.UpdateSubtaskInput{
		RequestID: requestID,
		TaskID:    taskID,
		SubtaskID: subtaskID,
		Content:   content,
	}
	if statusStr != nil {
		status := domain.SubtaskStatus(*statusStr)
		in.Status = &status
	}

	out, err := h.updateSub.Execute(ctx, in)
	if err != nil {
		return errorResult(err)
	}
	return textResult(out, render.ProgressTable([]usecase.TaskView{out.Task}))
}

func (h *Handlers) subtaskComplete(ctx context.Context, args map[string]any, requestID, taskID string) (*mcp.CallToolResult, error) {
	subtaskID, err := argString(args, "subtaskId")
	if err != nil {
		return errorResult(err)
	}

	out, err := h.completeSub.Execute(ctx, usecase.CompleteSubtaskInput{
		RequestID: requestID,
		TaskID:    taskID,
		SubtaskID: subtaskID,
	})
	if err != nil {
		return errorResult(err)
	}
	return textResult(out, render.ProgressTable([]usecase.TaskView{out.Task}))
}

func (h *Handlers) subtaskDelete(ctx context.Context, args map[string]any, requestID, taskID string) (*mcp.CallToolResult, error) {
	subtaskID, err := argString(args, "subtaskId")
	if err != nil {
		return errorResult(err)
	}

	out, err := h.deleteSub.Execute(ctx, usecase.DeleteSubtaskInput{
		RequestID: requestID,
		TaskID:    taskID,
		SubtaskID: subtaskID,
	})
	if err != nil {
		return errorResult(err)
	}
	return textResult(out, render.ProgressTable([]usecase.TaskView{out.Task}))
}

func (h *Handlers) taskBreakDown(ctx context.Context, args map[string]any, requestID, taskID string) (*mcp.CallToolResult, error) {
	specs, err := argSubtaskSpecs(args, "subtasks")
	if err != nil {
		return errorResult(err)
	}

	out, err := h.breakDown.Execute(ctx, usecase.BreakDownTaskInput{
		RequestID: requestID,
		TaskID:    taskID,
		Subtasks:  specs,
	})
	if err != nil {
		return errorResult(err)
	}
	return textResult(out, render.ProgressTable([]usecase.TaskView{out.Task}))
}
