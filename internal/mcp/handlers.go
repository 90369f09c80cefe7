package mcp

import (
	"context"
	"errors"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/standardbeagle/hangulnum/internal/codec"
	"github.com/standardbeagle/hangulnum/internal/debug"
	hnerrors "github.com/standardbeagle/hangulnum/internal/errors"
)

func (s *Server) handleEncode(ctx context.Context, req *mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	var params EncodeParams
	if err := parseParams(req.Params.Arguments, &params); err != nil {
		return s.createErrorResponse(ToolEncode, fmt.Errorf("invalid parameters: %w", err))
	}
	if params.Value == nil {
		return s.createErrorResponse(ToolEncode, errors.New("'value' is required"))
	}

	var (
		encoded string
		err     error
	)
	if params.Seed != nil {
		encoded, err = s.codec.EncodeWithSeed(params.Value.Value, *params.Seed)
	} else {
		encoded, err = s.codec.Encode(params.Value.Value)
	}
	if err != nil {
		return s.createErrorResponse(ToolEncode, err)
	}

	seed, err := s.codec.SeedOf(encoded)
	if err != nil {
		return s.createErrorResponse(ToolEncode, err)
	}

	debug.LogMCP("encode %d -> %s\n", params.Value.Value, encoded)
	return createJSONResponse(EncodeResponse{
		Value:   params.Value.Value,
		Seed:    seed,
		Encoded: encoded,
		Symbols: len(codec.Split(encoded)),
	})
}

func (s *Server) handleEncodeAll(ctx context.Context, req *mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	var params EncodeAllParams
	if err := parseParams(req.Params.Arguments, &params); err != nil {
		return s.createErrorResponse(ToolEncodeAll, fmt.Errorf("invalid parameters: %w", err))
	}
	if params.Value == nil {
		return s.createErrorResponse(ToolEncodeAll, errors.New("'value' is required"))
	}
	value := params.Value.Value

	if !params.Verify {
		all, err := s.codec.EncodeAll(value)
		if err != nil {
			return s.createErrorResponse(ToolEncodeAll, err)
		}
		return createJSONResponse(EncodeAllResponse{Value: value, Encodings: all})
	}

	variants, err := s.codec.Verify(value)
	if err != nil {
		return s.createErrorResponse(ToolEncodeAll, err)
	}
	all := make([]string, len(variants))
	for i, v := range variants {
		all[i] = v.Encoded
	}
	ok := codec.AllOK(variants)
	return createJSONResponse(EncodeAllResponse{Value: value, Encodings: all, Variants: variants, AllOK: &ok})
}

func (s *Server) handleDecode(ctx context.Context, req *mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	var params DecodeParams
	if err := parseParams(req.Params.Arguments, &params); err != nil {
		return s.createErrorResponse(ToolDecode, fmt.Errorf("invalid parameters: %w", err))
	}

	switch {
	case params.Input != "" && len(params.Inputs) > 0:
		return s.createErrorResponse(ToolDecode, errors.New("pass either 'input' or 'inputs', not both"))
	case len(params.Inputs) > DecodeMaxInputs:
		return s.createErrorResponse(ToolDecode, fmt.Errorf("at most %d inputs per call, got %d", DecodeMaxInputs, len(params.Inputs)))
	case len(params.Inputs) > 0:
		return s.decodeBatch(ctx, params.Inputs)
	}

	value, err := s.codec.Decode(params.Input)
	if err != nil {
		return s.createErrorResponse(ToolDecode, err)
	}
	seed, _ := s.codec.SeedOf(params.Input)
	return createJSONResponse(DecodeResult{Input: params.Input, Value: value, Seed: seed})
}

func (s *Server) decodeBatch(ctx context.Context, inputs []string) (*mcp.CallToolResult, error) {
	results, err := s.codec.DecodeBatch(ctx, inputs, s.cfg.Batch.Workers)
	if err != nil {
		return s.createErrorResponse(ToolDecode, err)
	}

	resp := DecodeBatchResponse{Results: make([]DecodeResult, len(results))}
	for i, r := range results {
		out := DecodeResult{Input: inputs[i], Value: r.Value}
		if r.Err != nil {
			resp.Failed++
			out.Value = 0
			out.Error = r.Err.Error()
			if kind, ok := hnerrors.KindOf(r.Err); ok {
				out.Kind = kind.String()
			}
			out.Suggestions = s.codec.SuggestFor(r.Err, SuggestionLimit)
		} else {
			out.Seed, _ = s.codec.SeedOf(inputs[i])
		}
		resp.Results[i] = out
	}

	debug.LogMCP("decoded batch of %d (%d failed)\n", len(inputs), resp.Failed)
	return createJSONResponse(resp)
}

func (s *Server) handleAlphabet(ctx context.Context, req *mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	a := s.codec.Alphabet()
	return createJSONResponse(AlphabetResponse{Size: a.Size(), Symbols: a.Symbols()})
}
