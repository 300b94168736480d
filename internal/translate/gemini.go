package translate

import (
	"context"
	"errors"
	"fmt"
	"time"

	"google.golang.org/genai"

	"github.com/abhinav4568482/pyterminal/internal/core/logging"
	"github.com/abhinav4568482/pyterminal/internal/core/result"
)

// DefaultGeminiModel is used when the gemini provider has no model configured.
const DefaultGeminiModel = "gemini-2.0-flash"

// Gemini translates through the Gemini API.
type Gemini struct {
	client      *genai.Client
	envVar      string
	model       string
	maxTokens   int32
	temperature float32
	timeout     time.Duration
}

var _ Translator = (*Gemini)(nil)

// NewGemini creates a Gemini client. opts.BaseURL overrides the API endpoint.
func NewGemini(ctx context.Context, apiKey string, opts Options) (*Gemini, error) {
	cfg := &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	}
	if opts.BaseURL != "" {
		cfg.HTTPOptions = genai.HTTPOptions{BaseURL: opts.BaseURL}
	}

	client, err := genai.NewClient(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("create gemini client: %w", err)
	}

	g := &Gemini{
		client:      client,
		envVar:      opts.APIKeyEnv,
		model:       opts.Model,
		maxTokens:   int32(opts.MaxTokens),
		temperature: float32(opts.Temperature),
		timeout:     opts.Timeout,
	}
	if g.model == "" {
		g.model = DefaultGeminiModel
	}
	if g.maxTokens <= 0 {
		g.maxTokens = DefaultMaxTokens
	}
	if g.timeout <= 0 {
		g.timeout = DefaultTimeout
	}
	if g.envVar == "" {
		g.envVar = "GEMINI_API_KEY"
	}
	return g, nil
}

func (g *Gemini) Enabled() bool    { return true }
func (g *Gemini) Provider() string { return ProviderGemini }

// Translate sends one GenerateContent request.
func (g *Gemini) Translate(ctx context.Context, instruction string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, g.timeout)
	defer cancel()

	start := time.Now()
	resp, err := g.client.Models.GenerateContent(ctx, g.model,
		genai.Text(instruction),
		&genai.GenerateContentConfig{
			SystemInstruction: genai.NewContentFromText(SystemPrompt, genai.RoleUser),
			MaxOutputTokens:   g.maxTokens,
			Temperature:       genai.Ptr(g.temperature),
		},
	)

	logging.Component("translate").Debug().Ctx(ctx).
		Err(err).
		Dur("latency", time.Since(start)).
		Str("model", g.model).
		Msg("gemini response")

	if err != nil {
		return "", g.mapError(err)
	}

	command := cleanCommand(resp.Text())
	if command == "" {
		return "", malformed("Gemini")
	}
	return command, nil
}

func (g *Gemini) mapError(err error) *result.Error {
	var apiErr genai.APIError
	if errors.As(err, &apiErr) {
		return statusError("Gemini", g.envVar, apiErr.Code, apiErr.Message)
	}
	var apiErrPtr *genai.APIError
	if errors.As(err, &apiErrPtr) {
		return statusError("Gemini", g.envVar, apiErrPtr.Code, apiErrPtr.Message)
	}
	return result.Wrap(result.CodeTranslationNetworkFailure, err,
		"AI error: unable to connect to the Gemini service, check your internet connection")
}
