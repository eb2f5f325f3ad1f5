package mcpserver

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/crystaldolphin/discordmcp/internal/dispatch"
)

// Render converts an envelope into the tool result sent to the client:
// indented JSON text on success, "Error: <message>" flagged as an error
// otherwise.
func Render(env dispatch.Envelope) *mcp.CallToolResult {
	if !env.IsOk() {
		return mcp.NewToolResultError("Error: " + env.Message())
	}
	text, err := marshalIndent(env.Value())
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("Error: encode result: %v", err))
	}
	return mcp.NewToolResultText(text)
}

// marshalIndent is json.MarshalIndent with two spaces and without escaping
// <, > and &.
func marshalIndent(v any) (string, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return "", err
	}
	return string(bytes.TrimRight(buf.Bytes(), "\n")), nil
}
