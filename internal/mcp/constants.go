package mcp

// Tool names exposed by the server
const (
	ToolEncode    = "encode"
	ToolEncodeAll = "encode_all"
	ToolDecode    = "decode"
	ToolAlphabet  = "alphabet"
)

const (
	// ServerName is reported to clients during initialization.
	ServerName = "hnum-mcp-server"

	// DecodeMaxInputs bounds a single batch decode call.
	DecodeMaxInputs = 10000

	// SuggestionLimit caps the symbol suggestions attached to a decode error.
	SuggestionLimit = 3
)
