package mcptool

import (
	"encoding/json"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/ytakei/taskwarden/internal/domain"
)

// errorEnvelope is the wire shape of a failed tool call. Callers dispatch on
// code; message is for humans.
type errorEnvelope struct {
	Status  string `json:"status"`
	Code    string `json:"code"`
	Message string `json:"message"`
}

// textResult marshals a use case output as pretty JSON, optionally followed
// by a rendered progress table for agent display.
func textResult(v any, table string) (*mcp.CallToolResult, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, err
	}
	text := string(data)
	if table != "" {
		text += "\n" + table
	}
	return mcp.NewToolResultText(text), nil
}

// errorResult converts a use case error into an error envelope. The error
// never propagates past the tool boundary as a Go error: the protocol reply
// carries it as an isError result.
func errorResult(err error) (*mcp.CallToolResult, error) {
	env := errorEnvelope{
		Status:  "error",
		Code:    domain.ErrorCode(err),
		Message: err.Error(),
	}
	data, merr := json.Marshal(env)
	if merr != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return mcp.NewToolResultError(string(data)), nil
}
