// Package styles provides the named colour tokens and lipgloss styles used
// for the menu and its status lines.
//
// The values are replaced by [Init] when a theme is selected; call it once
// after loading config and before rendering anything.
package styles

import (
	"image/color"

	"charm.land/lipgloss/v2"
)

// Colour tokens
var (
	// Accent highlights the selected menu entry
	Accent color.Color = lipgloss.Color("6")

	// Success colours "Executing ..." lines
	Success color.Color = lipgloss.Color("2")

	// Error colours failure and farewell messages
	Error color.Color = lipgloss.Color("1")
)

// Common styles
var (
	AccentStyle  = lipgloss.NewStyle().Foreground(Accent).Bold(true)
	SuccessStyle = lipgloss.NewStyle().Foreground(Success).Bold(true)
	ErrorStyle   = lipgloss.NewStyle().Foreground(Error).Bold(true)
)
