package translate

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/abhinav4568482/pyterminal/internal/core/logging"
	"github.com/abhinav4568482/pyterminal/internal/core/result"
)

// Defaults for the OpenAI-compatible client.
const (
	DefaultOpenAIBaseURL = "https://api.openai.com/v1"
	DefaultOpenAIModel   = "gpt-3.5-turbo"
	DefaultMaxTokens     = 150
	DefaultTemperature   = 0.1
	DefaultTimeout       = 30 * time.Second

	maxResponseBytes = 1 << 20
)

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatRequest struct {
	Model       string        `json:"model"`
	Messages    []chatMessage `json:"messages"`
	MaxTokens   int           `json:"max_tokens"`
	Temperature float64       `json:"temperature"`
}

type chatResponse struct {
	Choices []struct {
		Message chatMessage `json:"message"`
	} `json:"choices"`
}

type apiErrorBody struct {
	Error struct {
		Message string `json:"message"`
	} `json:"error"`
}

// OpenAI translates through any OpenAI-compatible /chat/completions endpoint.
type OpenAI struct {
	apiKey      string
	envVar      string
	baseURL     string
	model       string
	maxTokens   int
	temperature float64
	httpClient  *http.Client
}

var _ Translator = (*OpenAI)(nil)

// NewOpenAI creates a client. Zero option values select the defaults.
func NewOpenAI(apiKey string, opts Options) *OpenAI {
	c := &OpenAI{
		apiKey:      apiKey,
		envVar:      opts.APIKeyEnv,
		baseURL:     strings.TrimRight(opts.BaseURL, "/"),
		model:       opts.Model,
		maxTokens:   opts.MaxTokens,
		temperature: opts.Temperature,
		httpClient:  &http.Client{Timeout: opts.Timeout},
	}
	if c.baseURL == "" {
		c.baseURL = DefaultOpenAIBaseURL
	}
	if c.model == "" {
		c.model = DefaultOpenAIModel
	}
	if c.maxTokens <= 0 {
		c.maxTokens = DefaultMaxTokens
	}
	if c.httpClient.Timeout <= 0 {
		c.httpClient.Timeout = DefaultTimeout
	}
	if c.envVar == "" {
		c.envVar = "OPENAI_API_KEY"
	}
	return c
}

func (c *OpenAI) Enabled() bool    { return true }
func (c *OpenAI) Provider() string { return ProviderOpenAI }

// Translate sends one chat completion request.
func (c *OpenAI) Translate(ctx context.Context, instruction string) (string, error) {
	log := logging.Component("translate")
	start := time.Now()

	body, err := json.Marshal(chatRequest{
		Model: c.model,
		Messages: []chatMessage{
			{Role: "system", Content: SystemPrompt},
			{Role: "user", Content: instruction},
		},
		MaxTokens:   c.maxTokens,
		Temperature: c.temperature,
	})
	if err != nil {
		return "", result.Wrap(result.CodeGenericIO, err, "marshal request: %v", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/chat/completions", bytes.NewReader(body))
	if err != nil {
		return "", result.Wrap(result.CodeTranslationNetworkFailure, err, "AI error: build request: %v", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		log.Debug().Ctx(ctx).Err(err).Msg("openai request failed")
		return "", result.Wrap(result.CodeTranslationNetworkFailure, err,
			"AI error: unable to connect to the OpenAI service, check your internet connection")
	}
	defer func() { _ = resp.Body.Close() }()

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return "", result.Wrap(result.CodeTranslationNetworkFailure, err, "AI error: read response: %v", err)
	}

	log.Debug().Ctx(ctx).
		Int("status", resp.StatusCode).
		Dur("latency", time.Since(start)).
		Str("model", c.model).
		Msg("openai response")

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		var apiErr apiErrorBody
		_ = json.Unmarshal(data, &apiErr)
		return "", statusError("OpenAI", c.envVar, resp.StatusCode, apiErr.Error.Message)
	}

	var parsed chatResponse
	if err := json.Unmarshal(data, &parsed); err != nil || len(parsed.Choices) == 0 {
		return "", malformed("OpenAI")
	}

	command := cleanCommand(parsed.Choices[0].Message.Content)
	if command == "" {
		return "", malformed("OpenAI")
	}
	return command, nil
}
