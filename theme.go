package main

import "github.com/charmbracelet/lipgloss"

// ---------------------------------------------------------------------------
// Catppuccin Mocha palette — true-color hex values
// https://catppuccin.com/palette
// ---------------------------------------------------------------------------

const (
	colorPink     lipgloss.Color = "#f5c2e7"
	colorMauve    lipgloss.Color = "#cba6f7"
	colorRed      lipgloss.Color = "#f38ba8"
	colorPeach    lipgloss.Color = "#fab387"
	colorYellow   lipgloss.Color = "#f9e2af"
	colorGreen    lipgloss.Color = "#a6e3a1"
	colorTeal     lipgloss.Color = "#94e2d5"
	colorLavender lipgloss.Color = "#b4befe"

	colorText     lipgloss.Color = "#cdd6f4"
	colorSubtext0 lipgloss.Color = "#a6adc8"
	colorOverlay1 lipgloss.Color = "#7f849c"
	colorSurface1 lipgloss.Color = "#45475a"
	colorSurface0 lipgloss.Color = "#313244"
	colorBase     lipgloss.Color = "#1e1e2e"
)

// Semantic aliases
const (
	colorAccent  = colorPink
	colorFocus   = colorLavender
	colorSuccess = colorGreen
	colorError   = colorRed
	colorWarning = colorYellow
	colorInfo    = colorTeal
)

// ---------------------------------------------------------------------------
// Shared styles
// ---------------------------------------------------------------------------

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorAccent)

	sectionStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorSurface1).
			Padding(0, 1)

	labelStyle = lipgloss.NewStyle().
			Foreground(colorSubtext0)

	mutedStyle = lipgloss.NewStyle().
			Foreground(colorOverlay1)

	roomCodeStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorYellow)

	gridCellStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorText).
			Background(colorSurface0).
			Padding(0, 1)

	scoreStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorTeal)

	clockStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorLavender)

	clockUrgentStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(colorRed)

	winnerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorYellow)

	youStyle = lipgloss.NewStyle().
			Foreground(colorMauve)

	footerStyle = lipgloss.NewStyle().
			Foreground(colorOverlay1)

	msgInfoStyle = lipgloss.NewStyle().
			Foreground(colorInfo)

	msgSuccessStyle = lipgloss.NewStyle().
			Foreground(colorSuccess)

	msgErrorStyle = lipgloss.NewStyle().
			Foreground(colorError)
)
