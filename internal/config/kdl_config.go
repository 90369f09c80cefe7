package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	kdl "github.com/sblinch/kdl-go"
	"github.com/sblinch/kdl-go/document"
)

// LoadKDL loads dir/.hnum.kdl. It returns (nil, nil) when the file does not exist.
func LoadKDL(dir string) (*Config, error) {
	kdlPath := filepath.Join(dir, FileName)

	if _, err := os.Stat(kdlPath); os.IsNotExist(err) {
		return nil, nil // No KDL config found, use defaults
	}
	return LoadKDLFile(kdlPath)
}

// LoadKDLFile loads a KDL config from an explicit path.
func LoadKDLFile(path string) (*Config, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}

	cfg, err := parseKDL(string(content))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	cfg.Source = path
	return cfg, nil
}

// parseKDL overlays the settings in content on Default().
//
//	alphabet { symbols "가" "간" ... }
//	display { columns 8; color true; separators "," "_"; check_mark "✓"; cross_mark "✗" }
//	batch { workers 4 }
func parseKDL(content string) (*Config, error) {
	cfg := Default()

	doc, err := kdl.Parse(strings.NewReader(content))
	if err != nil {
		return nil, fmt.Errorf("failed to parse KDL config: %w", err)
	}

	for _, n := range doc.Nodes {
		switch nodeName(n) {
		case "version":
			if v, ok := firstIntArg(n); ok {
				cfg.Version = v
			}
		case "alphabet":
			for _, cn := range n.Children {
				if nodeName(cn) == "symbols" {
					cfg.Alphabet.Symbols = collectStringArgs(cn)
				}
			}
		case "display":
			if err := parseDisplaySection(cfg, n); err != nil {
				return nil, err
			}
		case "batch":
			for _, cn := range n.Children {
				if nodeName(cn) != "workers" {
					continue
				}
				v, ok := firstIntArg(cn)
				if !ok {
					return nil, typeError("batch.workers", "integer", cn)
				}
				cfg.Batch.Workers = v
			}
		}
	}

	return cfg, nil
}

func parseDisplaySection(cfg *Config, n *document.Node) error {
	for _, cn := range n.Children {
		name := nodeName(cn)
		switch name {
		case "columns":
			v, ok := firstIntArg(cn)
			if !ok {
				return typeError("display.columns", "integer", cn)
			}
			cfg.Display.Columns = v
		case "color":
			v, ok := firstBoolArg(cn)
			if !ok {
				return typeError("display.color", "boolean", cn)
			}
			cfg.Display.Color = v
		case "separators":
			cfg.Display.Separators = strings.Join(collectStringArgs(cn), "")
		case "check_mark":
			assignSimpleString(cn, name, func(v string) { cfg.Display.CheckMark = v })
		case "cross_mark":
			assignSimpleString(cn, name, func(v string) { cfg.Display.CrossMark = v })
		}
	}
	return nil
}

func typeError(field, want string, n *document.Node) error {
	var got interface{}
	if len(n.Arguments) > 0 {
		got = n.Arguments[0].Value
	}
	return fmt.Errorf("invalid value for '%s' in KDL config, expected %s but got %T", field, want, got)
}

func nodeName(n *document.Node) string {
	if n == nil || n.Name == nil {
		return ""
	}
	return n.Name.NodeNameString()
}
func firstIntArg(n *document.Node) (int, bool) {
	if len(n.Arguments) == 0 {
		return 0, false
	}
	switch v := n.Arguments[0].Value.(type) {
	case int64:
		return int(v), true
	case float64:
		return int(v), true
	default:
		return 0, false
	}
}
func firstStringArg(n *document.Node) (string, bool) {
	if len(n.Arguments) == 0 {
		return "", false
	}
	if s, ok := n.Arguments[0].Value.(string); ok {
		return s, true
	}
	return "", false
}
func firstBoolArg(n *document.Node) (bool, bool) {
	if len(n.Arguments) == 0 {
		return false, false
	}
	if b, ok := n.Arguments[0].Value.(bool); ok {
		return b, true
	}
	return false, false
}
func collectStringArgs(n *document.Node) []string {
	if n == nil {
		return nil
	}
	// First try to collect from arguments (for inline format)
	out := make([]string, 0, len(n.Arguments))
	for _, a := range n.Arguments {
		if s, ok := a.Value.(string); ok {
			out = append(out, s)
		}
	}

	// If no arguments, collect from children (for block format like symbols { "가" "간" })
	// In KDL block format, strings are child nodes where the node name is the string value
	if len(out) == 0 && len(n.Children) > 0 {
		out = make([]string, 0, len(n.Children))
		for _, child := range n.Children {
			if s, ok := firstStringArg(child); ok {
				out = append(out, s)
			} else if child.Name != nil {
				if s, ok := child.Name.Value.(string); ok {
					out = append(out, s)
				}
			}
		}
	}

	return out
}
func assignSimpleString(n *document.Node, target string, set func(string)) {
	if nodeName(n) == target {
		if s, ok := firstStringArg(n); ok {
			set(s)
		}
	}
}
