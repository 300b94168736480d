package tui

// recall walks previously entered lines with up and down.
type recall struct {
	lines []string
	pos   int
	draft string
}

func (r *recall) add(line string) {
	if n := len(r.lines); n == 0 || r.lines[n-1] != line {
		r.lines = append(r.lines, line)
	}
	r.pos = len(r.lines)
	r.draft = ""
}

// prev moves one line back. current is stashed when leaving the draft.
func (r *recall) prev(current string) (string, bool) {
	if r.pos == 0 {
		return "", false
	}
	if r.pos == len(r.lines) {
		r.draft = current
	}
	r.pos--
	return r.lines[r.pos], true
}

// next moves one line forward, ending at the stashed draft.
func (r *recall) next() (string, bool) {
	if r.pos >= len(r.lines) {
		return "", false
	}
	r.pos++
	if r.pos == len(r.lines) {
		return r.draft, true
	}
	return r.lines[r.pos], true
}
