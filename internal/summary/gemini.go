package summary

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
	"google.golang.org/genai"
)

var log = logrus.WithField("package", "summary")

// DefaultModels are tried in order while a model is rate limited or unavailable.
var DefaultModels = []string{"gemini-2.5-flash", "gemini-2.5-flash-lite"} // nolint:gochecknoglobals

// Gemini generates summaries with Gemini API.
type Gemini struct {
	client *genai.Client
	models []string
}

// NewGemini creates new instance of Gemini.
func NewGemini(ctx context.Context, apiKey string, timeout time.Duration, models ...string) (*Gemini, error) {
	if apiKey == "" {
		return nil, &ProviderError{Kind: AuthKind, Err: ErrMissingCredential}
	}

	if len(models) == 0 {
		models = DefaultModels
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:     apiKey,
		Backend:    genai.BackendGeminiAPI,
		HTTPClient: &http.Client{Timeout: timeout},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create genai client: %w", err)
	}

	return &Gemini{
		client: client,
		models: models,
	}, nil
}

// Generate ...
func (g *Gemini) Generate(ctx context.Context, prompt string) (string, error) {
	var lastErr error

	for _, model := range g.models {
		resp, err := g.client.Models.GenerateContent(ctx, model, genai.Text(prompt), nil)
		if err != nil {
			if isModelUnavailable(err) {
				log.WithField("model", model).WithError(err).Debug("model is unavailable, trying next one")
				lastErr = err
				continue
			}
			return "", &ProviderError{Kind: classify(err), Err: err}
		}

		text, err := extractText(resp)
		if err != nil {
			return "", &ProviderError{Kind: MalformedKind, Err: err}
		}

		return text, nil
	}

	if lastErr == nil {
		lastErr = errors.New("no models configured")
	}

	return "", &ProviderError{Kind: NetworkKind, Err: fmt.Errorf("all models failed: %w", lastErr)}
}

func extractText(resp *genai.GenerateContentResponse) (string, error) {
	if resp == nil || len(resp.Candidates) == 0 {
		return "", ErrEmptyResponse
	}

	c := resp.Candidates[0]
	if c == nil || c.Content == nil {
		return "", ErrEmptyResponse
	}

	var sb strings.Builder
	for _, p := range c.Content.Parts {
		if p != nil {
			sb.WriteString(p.Text)
		}
	}

	text := strings.TrimSpace(sb.String())
	if text == "" {
		return "", ErrEmptyResponse
	}

	return text, nil
}

func isModelUnavailable(err error) bool {
	s := strings.ToLower(err.Error())
	for _, v := range []string{"429", "rate limit", "exhausted", "404", "not found"} {
		if strings.Contains(s, v) {
			return true
		}
	}
	return false
}

func classify(err error) ErrorKind {
	s := strings.ToLower(err.Error())
	for _, v := range []string{"401", "403", "api key", "api_key", "permission", "unauthenticated"} {
		if strings.Contains(s, v) {
			return AuthKind
		}
	}
	return NetworkKind
}
