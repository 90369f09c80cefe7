// Package mcp exposes the codec as Model Context Protocol tools over stdio.
package mcp

import (
	"context"
	"errors"

	"github.com/google/jsonschema-go/jsonschema"
	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/standardbeagle/hangulnum/internal/codec"
	"github.com/standardbeagle/hangulnum/internal/config"
	"github.com/standardbeagle/hangulnum/internal/debug"
	"github.com/standardbeagle/hangulnum/internal/version"
)

// Server wraps an MCP server whose tools call a single codec.
type Server struct {
	codec  *codec.Codec
	cfg    *config.Config
	server *mcp.Server
}

// NewServer creates the MCP server and registers its tools. A nil cfg uses
// config.Default().
func NewServer(c *codec.Codec, cfg *config.Config) (*Server, error) {
	if c == nil {
		return nil, errors.New("mcp: codec is required")
	}
	if cfg == nil {
		cfg = config.Default()
	}

	s := &Server{
		codec: c,
		cfg:   cfg,
		server: mcp.NewServer(&mcp.Implementation{
			Name:    ServerName,
			Version: version.Version,
		}, nil),
	}
	s.registerTools()
	return s, nil
}

func (s *Server) registerTools() {
	s.server.AddTool(&mcp.Tool{
		Name:        ToolEncode,
		Description: "Encode a non-negative integer as a Hangul string. The first symbol carries the seed. Omit 'seed' for a random one.",
		InputSchema: &jsonschema.Schema{
			Type: "object",
			Properties: map[string]*jsonschema.Schema{
				"value": {
					Types:       []string{"integer", "string"},
					Description: "Value to encode, 0 to 18446744073709551615. Pass large values as a decimal string.",
				},
				"seed": {
					Type:        "integer",
					Description: "Seed 0-127 (optional)",
				},
			},
			Required: []string{"value"},
		},
	}, s.handleEncode)

	s.server.AddTool(&mcp.Tool{
		Name:        ToolEncodeAll,
		Description: "List all 128 encodings of a value, one per seed, in seed order. Set 'verify' to decode each one again.",
		InputSchema: &jsonschema.Schema{
			Type: "object",
			Properties: map[string]*jsonschema.Schema{
				"value": {
					Types:       []string{"integer", "string"},
					Description: "Value to encode",
				},
				"verify": {
					Type:        "boolean",
					Description: "Include a round-trip check per seed",
				},
			},
			Required: []string{"value"},
		},
	}, s.handleEncodeAll)

	s.server.AddTool(&mcp.Tool{
		Name:        ToolDecode,
		Description: "Decode a Hangul string back to its integer. Pass 'input' for one string or 'inputs' for a batch.",
		InputSchema: &jsonschema.Schema{
			Type: "object",
			Properties: map[string]*jsonschema.Schema{
				"input": {
					Type:        "string",
					Description: "Encoded string",
				},
				"inputs": {
					Type:        "array",
					Items:       &jsonschema.Schema{Type: "string"},
					Description: "Encoded strings, decoded concurrently",
				},
			},
		},
	}, s.handleDecode)

	s.server.AddTool(&mcp.Tool{
		Name:        ToolAlphabet,
		Description: "List the 128 symbols of the active alphabet in index order.",
		InputSchema: &jsonschema.Schema{
			Type:       "object",
			Properties: map[string]*jsonschema.Schema{},
		},
	}, s.handleAlphabet)
}

// Start serves the tools over stdio until ctx is done or the client disconnects.
func (s *Server) Start(ctx context.Context) error {
	debug.LogMCP("starting %s with stdio transport\n", version.FullInfo())
	return s.server.Run(ctx, &mcp.StdioTransport{})
}
