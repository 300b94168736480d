package dispatch

import "strings"

// Route names the execution path chosen for a line.
type Route int

const (
	RouteBuiltin Route = iota
	RouteTranslate
	RouteExternal
)

func (r Route) String() string {
	switch r {
	case RouteBuiltin:
		return "builtin"
	case RouteTranslate:
		return "translate"
	case RouteExternal:
		return "external"
	default:
		return "unknown"
	}
}

// naturalLanguagePhrases send a line to the translator regardless of length.
var naturalLanguagePhrases = []string{
	"show me",
	"list all",
	"create a",
	"what is",
	"how to",
	"can you",
}

// maxCommandTokens is the longest line that is still taken literally when
// its first word is not a builtin.
const maxCommandTokens = 2

// Classify picks the route for a parsed line. It has no side effects.
//
// Precedence: a natural-language phrase, then a long line led by a
// non-builtin word (both only when translation is available), then a builtin
// word, then the host shell.
func Classify(in ParsedInput, reserved func(string) bool, translatorEnabled bool) Route {
	if translatorEnabled && hasNaturalLanguagePhrase(in.Raw) {
		return RouteTranslate
	}

	isBuiltin := reserved(in.Command)

	if translatorEnabled && in.Tokens() > maxCommandTokens && !isBuiltin {
		return RouteTranslate
	}

	if isBuiltin {
		return RouteBuiltin
	}
	return RouteExternal
}

func hasNaturalLanguagePhrase(line string) bool {
	lower := strings.ToLower(line)
	for _, phrase := range naturalLanguagePhrases {
		if strings.Contains(lower, phrase) {
			return true
		}
	}
	return false
}
