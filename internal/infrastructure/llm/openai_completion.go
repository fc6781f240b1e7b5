package llm

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"seguros_xpto/internal/usecase/interfaces"

	"github.com/sashabaranov/go-openai"
	"golang.org/x/time/rate"
)

var ErrMissingCompletionAPIKey = errors.New("missing COMPLETION_API_KEY")

const (
	defaultModel       = openai.GPT4oMini
	defaultTimeout     = 30 * time.Second
	defaultMaxTokens   = 1000
	defaultRatePerSec  = 2.0
	defaultRateBurst   = 4
	defaultTemperature = 0.3
)

// OpenAICompletion implements interfaces.ICompletionService on the OpenAI
// Chat Completions API.
//
// Every call is wrapped in a bounded timeout and throttled by a client-side
// rate limiter so quota pressure surfaces as a wait here instead of a burst of
// 429 responses. Provider failures are classified onto the interface
// sentinels; caller context cancellation is propagated untouched.

type OpenAICompletion struct {
	client  *openai.Client
	model   string
	timeout time.Duration
	limiter *rate.Limiter
}

var _ interfaces.ICompletionService = (*OpenAICompletion)(nil)

// NewOpenAICompletionFromEnv builds the client from environment variables.
//
// Supported env vars:
//   - COMPLETION_API_KEY (required; OPENAI_API_KEY also accepted)
//   - COMPLETION_BASE_URL (optional; custom/compatible endpoints)
//   - COMPLETION_MODEL (default: gpt-4o-mini)
//   - COMPLETION_TIMEOUT_SECONDS (default: 30)
//   - COMPLETION_RATE_PER_SECOND (default: 2)
func NewOpenAICompletionFromEnv() (*OpenAICompletion, error) {
	apiKey := os.Getenv("COMPLETION_API_KEY")
	if apiKey == "" {
		apiKey = os.Getenv("OPENAI_API_KEY")
	}
	if apiKey == "" {
		return nil, ErrMissingCompletionAPIKey
	}

	clientConfig := openai.DefaultConfig(apiKey)
	if baseURL := os.Getenv("COMPLETION_BASE_URL"); baseURL != "" {
		clientConfig.BaseURL = baseURL
	}

	timeout := defaultTimeout
	if v := os.Getenv("COMPLETION_TIMEOUT_SECONDS"); v != "" {
		if secs, err := strconv.Atoi(v); err == nil && secs > 0 {
			timeout = time.Duration(secs) * time.Second
		}
	}

	perSecond := defaultRatePerSec
	if v := os.Getenv("COMPLETION_RATE_PER_SECOND"); v != "" {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil && parsed > 0 {
			perSecond = parsed
		}
	}

	model := os.Getenv("COMPLETION_MODEL")
	if model == "" {
		model = defaultModel
	}

	log.Printf("[completion][infra] OpenAI client initialized model=%s timeout=%s", model, timeout)
	return &OpenAICompletion{
		client:  openai.NewClientWithConfig(clientConfig),
		model:   model,
		timeout: timeout,
		limiter: rate.NewLimiter(rate.Limit(perSecond), defaultRateBurst),
	}, nil
}

func (s *OpenAICompletion) Complete(ctx context.Context, prompt string) (string, error) {
	if err := s.limiter.Wait(ctx); err != nil {
		// Wait only fails on context cancellation or an unreachable deadline.
		if ctx.Err() != nil {
			return "", ctx.Err()
		}
		return "", fmt.Errorf("%w: %v", interfaces.ErrCompletionTimeout, err)
	}

	callCtx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	resp, err := s.client.CreateChatCompletion(callCtx, openai.ChatCompletionRequest{
		Model: s.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleUser, Content: prompt},
		},
		MaxTokens:   defaultMaxTokens,
		Temperature: defaultTemperature,
	})
	if err != nil {
		return "", s.classify(ctx, err)
	}

	if len(resp.Choices) == 0 {
		return "", interfaces.ErrCompletionEmpty
	}
	text := strings.TrimSpace(resp.Choices[0].Message.Content)
	if text == "" {
		return "", interfaces.ErrCompletionEmpty
	}
	return text, nil
}

// classify maps a provider error onto exactly one interface sentinel. The
// caller's own cancellation wins over any classification.
func (s *OpenAICompletion) classify(ctx context.Context, err error) error {
	if ctx.Err() != nil {
		return ctx.Err()
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return fmt.Errorf("%w: %v", interfaces.ErrCompletionTimeout, err)
	}

	var apiErr *openai.APIError
	if errors.As(err, &apiErr) {
		switch apiErr.HTTPStatusCode {
		case 429:
			return fmt.Errorf("%w: %v", interfaces.ErrCompletionRateLimited, err)
		case 500, 502, 503, 504:
			return fmt.Errorf("%w: %v", interfaces.ErrCompletionUnavailable, err)
		}
		return fmt.Errorf("%w: %v", interfaces.ErrCompletionUnavailable, err)
	}
	return fmt.Errorf("%w: %v", interfaces.ErrCompletionUnavailable, err)
}
