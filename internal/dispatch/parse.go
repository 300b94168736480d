package dispatch

import (
	"strings"
	"unicode"
)

// ParsedInput is one tokenized input line.
type ParsedInput struct {
	// Command is the lower-cased first token.
	Command string
	Args    []string
	// Raw is the line exactly as submitted.
	Raw string
}

// Tokens returns the number of tokens in the line, command included.
func (p ParsedInput) Tokens() int {
	if p.Command == "" {
		return 0
	}
	return 1 + len(p.Args)
}

// Parse splits a line into a command word and arguments. Single quotes,
// double quotes and backslash escapes group words the way a POSIX shell
// would; a line with an unterminated quote falls back to plain whitespace
// splitting.
func Parse(line string) ParsedInput {
	tokens, ok := tokenize(line)
	if !ok {
		tokens = strings.Fields(line)
	}

	if len(tokens) == 0 {
		return ParsedInput{Raw: line}
	}

	return ParsedInput{
		Command: strings.ToLower(tokens[0]),
		Args:    tokens[1:],
		Raw:     line,
	}
}

type quoteState int

const (
	stateOutside quoteState = iota
	stateSingle
	stateDouble
)

// tokenize reports false when a quote is left open.
func tokenize(line string) ([]string, bool) {
	var (
		tokens   []string
		buf      strings.Builder
		state    = stateOutside
		escaping bool
		inToken  bool
	)

	flush := func() {
		if inToken {
			tokens = append(tokens, buf.String())
			buf.Reset()
			inToken = false
		}
	}

	for _, ch := range line {
		switch state {
		case stateOutside:
			switch {
			case escaping:
				buf.WriteRune(ch)
				escaping = false
			case unicode.IsSpace(ch):
				flush()
			case ch == '\'':
				state = stateSingle
				inToken = true
			case ch == '"':
				state = stateDouble
				inToken = true
			case ch == '\\':
				escaping = true
				inToken = true
			default:
				buf.WriteRune(ch)
				inToken = true
			}

		case stateSingle:
			if ch == '\'' {
				state = stateOutside
			} else {
				buf.WriteRune(ch)
			}

		case stateDouble:
			switch {
			case escaping:
				// Inside double quotes only \" and \\ are escapes.
				if ch != '\\' && ch != '"' {
					buf.WriteRune('\\')
				}
				buf.WriteRune(ch)
				escaping = false
			case ch == '"':
				state = stateOutside
			case ch == '\\':
				escaping = true
			default:
				buf.WriteRune(ch)
			}
		}
	}

	if state != stateOutside {
		return nil, false
	}
	if escaping {
		buf.WriteRune('\\')
	}
	flush()
	return tokens, true
}
