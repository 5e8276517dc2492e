package main

import (
	"context"
	"fmt"
	"log"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/vcstools/commitmsg/internal/message"
)

// ReadMessageParams defines the input for read_commit_message (none).
type ReadMessageParams struct{}

// UpdateMessageParams defines the input for update_commit_message
type UpdateMessageParams struct {
	Message string `json:"message" jsonschema:"The text to merge into the staged commit message"`
	Mode    string `json:"mode,omitempty" jsonschema:"How to merge: append (default), prepend, or replace"`
}

// Handler bridges the MCP tool calls to the message service
type Handler struct {
	svc *message.Service
}

// NewHandler creates a handler over the given service
func NewHandler(svc *message.Service) *Handler {
	return &Handler{svc: svc}
}

// HandleReadMessage handles the read_commit_message tool call
func (h *Handler) HandleReadMessage(
	ctx context.Context,
	req *mcp.CallToolRequest,
	params ReadMessageParams,
) (*mcp.CallToolResult, any, error) {
	log.Printf("[Commitmsg Server] Received read_commit_message request")

	text, err := h.svc.Read(ctx)
	if err != nil {
		log.Printf("[Commitmsg Server] Read failed: %v", err)
		return errorResult(err), nil, nil
	}

	return &mcp.CallToolResult{
		Content: []mcp.Content{
			&mcp.TextContent{Text: text},
		},
	}, nil, nil
}

// HandleUpdateMessage handles the update_commit_message tool call
func (h *Handler) HandleUpdateMessage(
	ctx context.Context,
	req *mcp.CallToolRequest,
	params UpdateMessageParams,
) (*mcp.CallToolResult, any, error) {
	log.Printf("[Commitmsg Server] Received update_commit_message request (mode=%q, %d characters)", params.Mode, len(params.Message))

	// An empty message is legal and merged verbatim, so no emptiness
	// validation happens here.
	result, err := h.svc.Update(ctx, params.Message, message.ParseMode(params.Mode))
	if err != nil {
		log.Printf("[Commitmsg Server] Update failed: %v", err)
		return errorResult(err), nil, nil
	}

	log.Printf("[Commitmsg Server] %s commit message for %q (%d characters)", result.Action, result.Repo, len(result.NewValue))

	return &mcp.CallToolResult{
		Content: []mcp.Content{
			&mcp.TextContent{Text: result.Description()},
		},
	}, nil, nil
}

// errorResult wraps an operational failure so the calling agent receives
// the guidance message instead of a protocol fault.
func errorResult(err error) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		Content: []mcp.Content{
			&mcp.TextContent{Text: fmt.Sprintf("Error: %v", err)},
		},
		IsError: true,
	}
}
