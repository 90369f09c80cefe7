package mcp

import (
	"encoding/json"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/standardbeagle/hangulnum/internal/codec"
	hnerrors "github.com/standardbeagle/hangulnum/internal/errors"
)

// EncodeResponse is returned by the encode tool.
type EncodeResponse struct {
	Value   uint64 `json:"value"`
	Seed    int    `json:"seed"`
	Encoded string `json:"encoded"`
	Symbols int    `json:"symbols"`
}

// EncodeAllResponse is returned by the encode_all tool. Variants is only
// filled when verification was requested.
type EncodeAllResponse struct {
	Value     uint64          `json:"value"`
	Encodings []string        `json:"encodings"`
	Variants  []codec.Variant `json:"variants,omitempty"`
	AllOK     *bool           `json:"all_ok,omitempty"`
}

// DecodeResult is one decoded input.
type DecodeResult struct {
	Input       string   `json:"input"`
	Value       uint64   `json:"value"`
	Seed        int      `json:"seed"`
	Error       string   `json:"error,omitempty"`
	Kind        string   `json:"kind,omitempty"`
	Suggestions []string `json:"suggestions,omitempty"`
}

// DecodeBatchResponse is returned by the decode tool for an inputs array.
type DecodeBatchResponse struct {
	Results []DecodeResult `json:"results"`
	Failed  int            `json:"failed"`
}

// AlphabetResponse is returned by the alphabet tool.
type AlphabetResponse struct {
	Size    int      `json:"size"`
	Symbols []string `json:"symbols"`
}

// createJSONResponse creates a standardized JSON response for MCP tools
func createJSONResponse(data interface{}) (*mcp.CallToolResult, error) {
	content, err := json.Marshal(data)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal response data: %v", err)
	}

	return &mcp.CallToolResult{
		Content: []mcp.Content{
			&mcp.TextContent{Text: string(content)},
		},
	}, nil
}

// createErrorResponse reports a tool failure inside the result with IsError
// set, so the calling model sees the failure and can correct its arguments.
// Codec errors carry their kind, and symbol errors carry suggestions.
func (s *Server) createErrorResponse(operation string, err error) (*mcp.CallToolResult, error) {
	errorData := map[string]interface{}{
		"success":   false,
		"error":     err.Error(),
		"operation": operation,
	}
	if kind, ok := hnerrors.KindOf(err); ok {
		errorData["kind"] = kind.String()
	}
	if hints := s.codec.SuggestFor(err, SuggestionLimit); len(hints) > 0 {
		errorData["suggestions"] = hints
	}

	response, marshalErr := createJSONResponse(errorData)
	if marshalErr != nil {
		return nil, marshalErr
	}
	response.IsError = true
	return response, nil
}
