// Package translate turns natural-language instructions into shell command
// lines using a hosted language model.
package translate

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/abhinav4568482/pyterminal/internal/core/result"
)

// Provider names accepted in configuration.
const (
	ProviderOpenAI = "openai"
	ProviderGemini = "gemini"
)

// SystemPrompt is sent with every translation request.
const SystemPrompt = `You are a helpful assistant that converts natural language requests into terminal commands.
Return ONLY the terminal commands needed to accomplish the task, nothing else.
Use standard shell commands. If multiple commands are needed, separate them with &&.
Do not add explanations, comments or markdown.
Example:
Input: "create a folder called documents and make a file notes.txt inside it"
Output: mkdir documents && cd documents && touch notes.txt`

// Translator maps a free-text instruction to a shell command line.
//
// Translate returns a *result.Error carrying one of the translation codes on
// failure. Implementations make exactly one attempt per call.
type Translator interface {
	Enabled() bool
	Provider() string
	Translate(ctx context.Context, instruction string) (string, error)
}

// Options configures a translator.
type Options struct {
	Provider    string
	Model       string
	BaseURL     string
	APIKeyEnv   string
	MaxTokens   int
	Temperature float64
	Timeout     time.Duration
}

// New builds the translator described by opts. The credential is read from
// the environment variable opts.APIKeyEnv via getenv; when it is unset the
// returned translator is Disabled.
func New(ctx context.Context, opts Options, getenv func(string) string) (Translator, error) {
	apiKey := strings.TrimSpace(getenv(opts.APIKeyEnv))
	if apiKey == "" {
		return Disabled{ProviderName: opts.Provider, EnvVar: opts.APIKeyEnv}, nil
	}

	switch opts.Provider {
	case ProviderOpenAI, "":
		return NewOpenAI(apiKey, opts), nil
	case ProviderGemini:
		return NewGemini(ctx, apiKey, opts)
	default:
		return nil, fmt.Errorf("unknown translator provider %q", opts.Provider)
	}
}

// Status renders a one-line description of the translator for help output.
func Status(t Translator) string {
	if t == nil || !t.Enabled() {
		return "Disabled"
	}
	return "Enabled (" + t.Provider() + ")"
}

// Disabled is used when no credential is configured. Every call fails with
// TranslationDisabled.
type Disabled struct {
	ProviderName string
	EnvVar       string
}

func (d Disabled) Enabled() bool    { return false }
func (d Disabled) Provider() string { return d.ProviderName }

func (d Disabled) Translate(context.Context, string) (string, error) {
	env := d.EnvVar
	if env == "" {
		env = "OPENAI_API_KEY"
	}
	return "", result.Errorf(result.CodeTranslationDisabled,
		"AI features are disabled. Set %s to enable natural-language commands.", env)
}

// Func adapts a function into an enabled Translator.
type Func func(ctx context.Context, instruction string) (string, error)

func (f Func) Enabled() bool    { return true }
func (f Func) Provider() string { return "func" }

func (f Func) Translate(ctx context.Context, instruction string) (string, error) {
	return f(ctx, instruction)
}

// cleanCommand trims model output down to the bare command line, dropping
// surrounding markdown code fences and inline backticks.
func cleanCommand(s string) string {
	s = strings.TrimSpace(s)

	if strings.HasPrefix(s, "```") {
		s = strings.TrimPrefix(s, "```")
		// Drop the language tag on the opening fence.
		if i := strings.IndexByte(s, '\n'); i >= 0 {
			s = s[i+1:]
		} else {
			s = ""
		}
		s = strings.TrimSpace(strings.TrimSuffix(strings.TrimSpace(s), "```"))
	}

	if len(s) >= 2 && strings.HasPrefix(s, "`") && strings.HasSuffix(s, "`") {
		s = strings.TrimSpace(strings.Trim(s, "`"))
	}

	return s
}

func malformed(provider string) *result.Error {
	return result.Errorf(result.CodeTranslationMalformedResponse,
		"AI error: %s could not generate a valid command", provider)
}

// statusError maps a non-2xx HTTP status onto a translation error.
func statusError(provider, envVar string, status int, detail string) *result.Error {
	if detail == "" {
		detail = fmt.Sprintf("HTTP %d", status)
	}
	switch {
	case status == 401 || status == 403:
		return result.Errorf(result.CodeTranslationAuthFailure,
			"AI error: invalid API key, check %s (%s)", envVar, detail)
	case status == 429:
		return result.Errorf(result.CodeTranslationRateLimited,
			"AI error: rate limit exceeded, try again in a moment (%s)", detail)
	case status >= 500:
		return result.Errorf(result.CodeTranslationNetworkFailure,
			"AI error: %s service error (%s)", provider, detail)
	default:
		return result.Errorf(result.CodeTranslationMalformedResponse,
			"AI error: invalid request (%s)", detail)
	}
}
