// Package summary contains the trending summary generator contract and its adapters.
package summary

import (
	"context"
	"errors"
	"fmt"
	"strings"
)

//go:generate mockgen -destination=./mock/summary.go -package=mock -source=summary.go

// Prompt is the fixed prompt sent to the generator.
const Prompt = "Generate a short, punchy 2-sentence summary of the current trending topics in the Solana ecosystem for a mobile social app. Focus on Saga, Seeker, and DeFi."

// Fallback is stored instead of the generated summary on any failure.
const Fallback = "Solana ecosystem is buzzing with the new Seeker mobile device and Jupiter's latest updates."

// ErrMissingCredential returned when generator has no api key.
var ErrMissingCredential = errors.New("missing credential")

// ErrEmptyResponse returned when provider responded without text.
var ErrEmptyResponse = errors.New("empty response")

// Generator generates text for the prompt.
type Generator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

// ErrorKind ...
type ErrorKind int

const (
	// NetworkKind is transport failure or provider side error.
	NetworkKind ErrorKind = iota
	// AuthKind is missing or rejected credential.
	AuthKind
	// MalformedKind is response without usable text.
	MalformedKind
)

// String ...
func (k ErrorKind) String() string {
	switch k {
	case NetworkKind:
		return "network"
	case AuthKind:
		return "auth"
	case MalformedKind:
		return "malformed"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// ProviderError ...
type ProviderError struct {
	Kind ErrorKind
	Err  error
}

// Error ...
func (e *ProviderError) Error() string {
	return fmt.Sprintf("%s provider error: %s", e.Kind, e.Err)
}

// Unwrap ...
func (e *ProviderError) Unwrap() error {
	return e.Err
}

// Result is the resolved value of a generation request.
type Result struct {
	text string
	err  error
}

// NewResult ...
func NewResult(text string, err error) Result {
	return Result{text: text, err: err}
}

// Text returns generated text, or Fallback when generation failed or returned blank text.
func (r Result) Text() string {
	if r.Fallback() {
		return Fallback
	}
	return strings.TrimSpace(r.text)
}

// Err returns generation error, or ErrEmptyResponse when provider returned blank text.
func (r Result) Err() error {
	if r.err == nil && strings.TrimSpace(r.text) == "" {
		return ErrEmptyResponse
	}
	return r.err
}

// Fallback reports whether Text returns Fallback.
func (r Result) Fallback() bool {
	return r.err != nil || strings.TrimSpace(r.text) == ""
}

// Async runs generation in background. The returned channel yields exactly one Result.
func Async(ctx context.Context, g Generator, prompt string) <-chan Result {
	ch := make(chan Result, 1)

	go func() {
		defer func() {
			if r := recover(); r != nil {
				ch <- NewResult("", fmt.Errorf("generator panicked: %v", r))
			}
		}()

		ch <- NewResult(g.Generate(ctx, prompt))
	}()

	return ch
}

// Unavailable is a Generator used when no credential is configured.
type Unavailable struct{}

// Generate ...
func (Unavailable) Generate(context.Context, string) (string, error) {
	return "", &ProviderError{Kind: AuthKind, Err: ErrMissingCredential}
}
