package tui

import (
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"

	"github.com/abhinav4568482/pyterminal/internal/core/result"
	"github.com/abhinav4568482/pyterminal/internal/core/styles"
)

const bannerMarkdown = `# PyTerminal

*designed by Abhinav*

Type ` + "`help`" + ` for available commands.
`

// Banner renders the welcome header. Rendering falls back to plain text when
// the markdown renderer cannot be built.
func Banner(width int) string {
	if width <= 0 {
		width = 80
	}

	r, err := glamour.NewTermRenderer(
		glamour.WithStyles(styles.GlamourStyle()),
		glamour.WithWordWrap(width),
	)
	if err == nil {
		if out, err := r.Render(bannerMarkdown); err == nil {
			return strings.TrimRight(out, "\n")
		}
	}

	rule := strings.Repeat("=", 60)
	return rule + "\n            PyTerminal\n                designed by Abhinav\nType 'help' for available commands.\n" + rule
}

// RenderResult formats a dispatch outcome for the transcript. Clear-screen
// results render nothing; callers handle them.
func RenderResult(res result.Result) string {
	var lines []string

	if res.Translated != "" {
		lines = append(lines, styles.SuggestionStyle.Render("AI Suggestion: "+res.Translated), "")
	}

	switch res.Status {
	case result.StatusClearScreen:
		return ""
	case result.StatusExit:
		lines = append(lines, res.Output)
	case result.StatusError:
		lines = append(lines, renderLines(styles.ErrorStyle, "Error: "+strings.TrimRight(res.Err.Message, "\n")))
		if out := strings.TrimRight(res.Output, "\n"); out != "" {
			lines = append(lines, "Output: "+out)
		}
	default:
		if out := strings.TrimRight(res.Output, "\n"); out != "" {
			lines = append(lines, out)
		}
		if warn := strings.TrimRight(res.Warning, "\n"); warn != "" {
			lines = append(lines, renderLines(styles.WarningStyle, "Warning: "+warn))
		}
	}

	return strings.Join(lines, "\n")
}

// renderLines styles each line on its own so multi-line text is not padded
// to a common width.
func renderLines(style lipgloss.Style, s string) string {
	lines := strings.Split(s, "\n")
	for i, l := range lines {
		lines[i] = style.Render(l)
	}
	return strings.Join(lines, "\n")
}
