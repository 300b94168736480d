// Package styles provides shared lipgloss styles for CLI and REPL output.
package styles

import "github.com/charmbracelet/lipgloss"

// CurrentPalette holds the active theme palette.
var CurrentPalette Palette

// Style exports.
var (
	// CLI styles.
	SuccessStyle lipgloss.Style
	InfoStyle    lipgloss.Style
	ErrorStyle   lipgloss.Style
	MutedStyle   lipgloss.Style

	// REPL styles.
	PromptStyle     lipgloss.Style
	PromptDirStyle  lipgloss.Style
	CommandStyle    lipgloss.Style
	WarningStyle    lipgloss.Style
	SuggestionStyle lipgloss.Style
	StatusBarStyle  lipgloss.Style
	BusyStyle       lipgloss.Style
)

// SetTheme sets the active palette and rebuilds all global styles.
func SetTheme(p Palette) {
	CurrentPalette = p

	SuccessStyle = lipgloss.NewStyle().Foreground(p.Success)
	InfoStyle = lipgloss.NewStyle().Foreground(p.Secondary)
	ErrorStyle = lipgloss.NewStyle().Foreground(p.Error)
	MutedStyle = lipgloss.NewStyle().Foreground(p.Muted)

	PromptStyle = lipgloss.NewStyle().
		Foreground(p.Success).
		Bold(true)
	PromptDirStyle = lipgloss.NewStyle().
		Foreground(p.Primary).
		Bold(true)
	CommandStyle = lipgloss.NewStyle().
		Foreground(p.Foreground)
	WarningStyle = lipgloss.NewStyle().
		Foreground(p.Warning)
	SuggestionStyle = lipgloss.NewStyle().
		Foreground(p.Secondary).
		Italic(true)
	StatusBarStyle = lipgloss.NewStyle().
		Foreground(p.Muted).
		Background(p.Surface).
		Padding(0, 1)
	BusyStyle = lipgloss.NewStyle().
		Foreground(p.Warning).
		Italic(true)
}

// nolint:gochecknoinits // bootstrap default theme before any style is accessed.
func init() {
	SetTheme(themes[DefaultTheme])
}
