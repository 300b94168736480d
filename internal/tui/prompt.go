package tui

import (
	"github.com/abhinav4568482/pyterminal/internal/core/styles"
)

const (
	maxPromptDir  = 50
	keptPromptDir = 47
)

// PromptDir shortens dir for display, keeping its tail.
func PromptDir(dir string) string {
	runes := []rune(dir)
	if len(runes) <= maxPromptDir {
		return dir
	}
	return "..." + string(runes[len(runes)-keptPromptDir:])
}

// Prompt renders the input prompt for dir.
func Prompt(dir string) string {
	return styles.PromptDirStyle.Render("["+PromptDir(dir)+"]") + " " + styles.PromptStyle.Render("$ ")
}
