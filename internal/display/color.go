package display

import (
	"github.com/fatih/color"
)

// fatih/color starts with NoColor set when stdout is not a terminal or
// NO_COLOR is present.

var (
	green = color.New(color.FgGreen)
	red   = color.New(color.FgRed, color.Bold)
)

// DisableColor turns off colouring for every formatter in the process.
func DisableColor() {
	color.NoColor = true
}

// ForceColor turns colouring on even when stdout is not a terminal.
func ForceColor() {
	color.NoColor = false
}

func paint(c *color.Color, enabled bool, s string) string {
	if !enabled || color.NoColor {
		return s
	}
	return c.Sprint(s)
}
