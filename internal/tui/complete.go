package tui

import (
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
)

// replWords are accepted at the prompt but handled before dispatch.
var replWords = []string{"exit", "quit", "q"}

// Completer suggests the word under the cursor: command names for the first
// word, file and directory names for the rest.
type Completer struct {
	commands []string
	homeDir  string
}

// NewCompleter builds a completer over the given command names.
func NewCompleter(commands []string, homeDir string) *Completer {
	all := append(slices.Clone(commands), replWords...)
	slices.Sort(all)
	return &Completer{commands: slices.Compact(all), homeDir: homeDir}
}

// Complete returns the candidates for the last word of line. Relative paths
// are matched against dir. Directories carry a trailing slash.
func (c *Completer) Complete(line, dir string) []string {
	word, first := lastWord(line)
	if first {
		var out []string
		for _, name := range c.commands {
			if strings.HasPrefix(name, strings.ToLower(word)) {
				out = append(out, name)
			}
		}
		return out
	}
	return c.paths(word, dir)
}

func (c *Completer) paths(word, dir string) []string {
	dirPart, filePart := splitWord(word)

	searchDir := dirPart
	switch {
	case dirPart == "":
		searchDir = dir
	case strings.HasPrefix(dirPart, "~/") && c.homeDir != "":
		searchDir = filepath.Join(c.homeDir, dirPart[2:])
	case !filepath.IsAbs(dirPart):
		searchDir = filepath.Join(dir, dirPart)
	}

	fsys := os.DirFS(searchDir)
	matches, err := doublestar.Glob(fsys, escapeMeta(filePart)+"*")
	if err != nil {
		return nil
	}

	out := make([]string, 0, len(matches))
	for _, name := range matches {
		if strings.HasPrefix(name, ".") && !strings.HasPrefix(filePart, ".") {
			continue
		}
		candidate := dirPart + name
		if info, err := fs.Stat(fsys, name); err == nil && info.IsDir() {
			candidate += "/"
		}
		out = append(out, candidate)
	}
	slices.Sort(out)
	return out
}

// Apply replaces the last word of line with the completion of candidates: the
// single candidate when there is one, otherwise their common prefix.
func Apply(line string, candidates []string) string {
	if len(candidates) == 0 {
		return line
	}

	word, _ := lastWord(line)
	head := line[:len(line)-len(word)]

	if len(candidates) == 1 {
		c := candidates[0]
		if !strings.HasSuffix(c, "/") {
			c += " "
		}
		return head + c
	}

	prefix := commonPrefix(candidates)
	if len(prefix) <= len(word) {
		return line
	}
	return head + prefix
}

// lastWord returns the word being typed and whether it is the command word.
func lastWord(line string) (string, bool) {
	i := strings.LastIndexAny(line, " \t")
	if i < 0 {
		return line, true
	}
	return line[i+1:], strings.TrimSpace(line[:i]) == ""
}

// splitWord splits a partial path after its last slash.
func splitWord(word string) (dir, file string) {
	i := strings.LastIndex(word, "/")
	if i < 0 {
		return "", word
	}
	return word[:i+1], word[i+1:]
}

func escapeMeta(s string) string {
	var b strings.Builder
	for _, r := range s {
		if strings.ContainsRune(`*?[]{}\`, r) {
			b.WriteByte('\\')
		}
		b.WriteRune(r)
	}
	return b.String()
}

func commonPrefix(words []string) string {
	prefix := words[0]
	for _, w := range words[1:] {
		for !strings.HasPrefix(w, prefix) {
			prefix = prefix[:len(prefix)-1]
		}
	}
	return prefix
}
