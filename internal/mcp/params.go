package mcp

import (
	"bytes"
	"encoding/json"
	"errors"

	"github.com/standardbeagle/hangulnum/internal/codec"
)

// NumberArg is a non-negative integer argument. It accepts a JSON number or
// a decimal string, so clients limited to float64 can still send values
// above 2^53.
type NumberArg struct {
	Value uint64
}

func (n *NumberArg) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		return errors.New("value must not be null")
	}

	var s string
	if len(data) > 0 && data[0] == '"' {
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
	} else {
		s = string(data)
	}

	v, err := codec.ParseNumber(s, codec.DefaultSeparators)
	if err != nil {
		return err
	}
	n.Value = v
	return nil
}

// EncodeParams are the arguments of the encode tool.
type EncodeParams struct {
	Value *NumberArg `json:"value"`
	Seed  *int       `json:"seed,omitempty"` // random when omitted
}

// EncodeAllParams are the arguments of the encode_all tool.
type EncodeAllParams struct {
	Value  *NumberArg `json:"value"`
	Verify bool       `json:"verify,omitempty"`
}

// DecodeParams are the arguments of the decode tool. Exactly one of Input
// and Inputs must be set.
type DecodeParams struct {
	Input  string   `json:"input,omitempty"`
	Inputs []string `json:"inputs,omitempty"`
}

// parseParams unmarshals raw tool arguments, treating empty input as {}.
func parseParams(raw json.RawMessage, dst interface{}) error {
	if len(bytes.TrimSpace(raw)) == 0 {
		return nil
	}
	return json.Unmarshal(raw, dst)
}
