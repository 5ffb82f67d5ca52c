package tui

import "github.com/charmbracelet/lipgloss"

type cellStyle = lipgloss.Style

// Styles
var (
	baseFg    = lipgloss.Color("#E6E6E6")
	baseDimFg = lipgloss.AdaptiveColor{Light: "#6B7280", Dark: "#6B7280"}
	accentFg  = lipgloss.Color("#0EA5E9")
	borderCol = lipgloss.Color("#243141")

	appStyle   = lipgloss.NewStyle().Foreground(baseFg)
	boxStyle   = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(borderCol).Padding(0, 1)
	titleStyle = lipgloss.NewStyle().Foreground(accentFg).Bold(true)
	dimStyle   = lipgloss.NewStyle().Foreground(baseDimFg)

	tabStyle       = lipgloss.NewStyle().Foreground(baseDimFg).Padding(0, 1)
	tabActiveStyle = lipgloss.NewStyle().Foreground(accentFg).Bold(true).Padding(0, 1)

	savedStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#F43F5E"))
	errStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("#EF4444"))
	correctStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#22C55E")).Bold(true)
	wrongStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#EF4444")).Bold(true)
)

// Marker palette. Indices are what cellBuf stores per cell; order must
// match the markerStyleIndex mapping in render.go. The dim entries stand
// in for the 0.8 opacity of unfocused markers, which a terminal cannot
// blend.
var markerPalette = []cellStyle{
	lipgloss.NewStyle().Foreground(lipgloss.Color("#0EA5E9")), // default
	lipgloss.NewStyle().Foreground(lipgloss.Color("#0369A1")), // default, dimmed
	lipgloss.NewStyle().Foreground(lipgloss.Color("#F59E0B")), // hovered
	lipgloss.NewStyle().Foreground(lipgloss.Color("#EF4444")), // selected
	dimStyle, // overlay text (legend, placeholders)
}

const (
	styleMarkerDefault    uint8 = 1
	styleMarkerDefaultDim uint8 = 2
	styleMarkerHovered    uint8 = 3
	styleMarkerSelected   uint8 = 4
	styleOverlayText      uint8 = 5
)
