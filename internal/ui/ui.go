// Package ui holds the terminal color palette and small print helpers
// shared by the CLI commands.
package ui

import (
	"fmt"

	"github.com/fatih/color"
)

// Palette.
var (
	Brand  = color.New(color.FgHiCyan, color.Bold)
	Subtle = color.New(color.FgHiBlack)
	Warn   = color.New(color.FgYellow)
	Good   = color.New(color.FgGreen)
	Bad    = color.New(color.FgRed)
)

// Warning prints a non-fatal warning line to stderr-style output.
func Warning(format string, a ...interface{}) {
	fmt.Printf("%s %s\n", Warn.Sprint("⚠"), fmt.Sprintf(format, a...))
}

// WarnIcon returns the warning icon.
func WarnIcon() string {
	return Warn.Sprint("⚠")
}
