package summary

import (
	"context"
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/require"
	"google.golang.org/genai"

	"github.com/Decentr-net/seeker/internal/summary/mock"
)

var errTest = errors.New("test")

func TestResult_Text(t *testing.T) {
	tt := []struct {
		name     string
		text     string
		err      error
		expected string
		fallback bool
		cause    error
	}{
		{name: "success", text: "Seeker ships.", expected: "Seeker ships."},
		{name: "trimmed", text: "  Seeker ships.\n", expected: "Seeker ships."},
		{name: "error", text: "partial", err: errTest, expected: Fallback, fallback: true, cause: errTest},
		{name: "blank", text: " \n ", expected: Fallback, fallback: true, cause: ErrEmptyResponse},
		{name: "provider_error", err: &ProviderError{Kind: AuthKind, Err: ErrMissingCredential}, expected: Fallback, fallback: true, cause: &ProviderError{Kind: AuthKind, Err: ErrMissingCredential}},
	}

	for i := range tt {
		tc := tt[i]

		t.Run(tc.name, func(t *testing.T) {
			r := NewResult(tc.text, tc.err)
			require.Equal(t, tc.expected, r.Text())
			require.Equal(t, tc.fallback, r.Fallback())
			require.Equal(t, tc.cause, r.Err())
		})
	}
}

func TestAsync(t *testing.T) {
	ctrl := gomock.NewController(t)

	g := mock.NewMockGenerator(ctrl)
	g.EXPECT().Generate(gomock.Any(), Prompt).Return("buzz", nil)

	r := <-Async(context.Background(), g, Prompt)
	require.NoError(t, r.Err())
	require.Equal(t, "buzz", r.Text())
}

func TestAsync_Error(t *testing.T) {
	ctrl := gomock.NewController(t)

	g := mock.NewMockGenerator(ctrl)
	g.EXPECT().Generate(gomock.Any(), Prompt).Return("", &ProviderError{Kind: NetworkKind, Err: errTest})

	r := <-Async(context.Background(), g, Prompt)
	require.True(t, errors.Is(r.Err(), errTest))
	require.Equal(t, Fallback, r.Text())
}

func TestAsync_Panic(t *testing.T) {
	ctrl := gomock.NewController(t)

	g := mock.NewMockGenerator(ctrl)
	g.EXPECT().Generate(gomock.Any(), Prompt).DoAndReturn(func(context.Context, string) (string, error) {
		panic("boom")
	})

	r := <-Async(context.Background(), g, Prompt)
	require.Error(t, r.Err())
	require.Equal(t, Fallback, r.Text())
}

func TestUnavailable(t *testing.T) {
	_, err := Unavailable{}.Generate(context.Background(), Prompt)

	var perr *ProviderError
	require.True(t, errors.As(err, &perr))
	require.Equal(t, AuthKind, perr.Kind)
	require.True(t, errors.Is(err, ErrMissingCredential))
}

func TestNewGemini_MissingKey(t *testing.T) {
	_, err := NewGemini(context.Background(), "", 0)
	require.True(t, errors.Is(err, ErrMissingCredential))
}

func TestClassify(t *testing.T) {
	tt := []struct {
		err      string
		expected ErrorKind
	}{
		{err: "Error 401, Message: API key not valid", expected: AuthKind},
		{err: "Error 403, Status: PERMISSION_DENIED", expected: AuthKind},
		{err: "dial tcp: i/o timeout", expected: NetworkKind},
		{err: "Error 500, Message: internal", expected: NetworkKind},
	}

	for _, tc := range tt {
		t.Run(tc.err, func(t *testing.T) {
			require.Equal(t, tc.expected, classify(errors.New(tc.err)))
		})
	}
}

func TestIsModelUnavailable(t *testing.T) {
	require.True(t, isModelUnavailable(errors.New("Error 429, RESOURCE_EXHAUSTED")))
	require.True(t, isModelUnavailable(errors.New("Error 404, model not found")))
	require.False(t, isModelUnavailable(errors.New("Error 401")))
}

func TestExtractText(t *testing.T) {
	_, err := extractText(nil)
	require.Equal(t, ErrEmptyResponse, err)

	_, err = extractText(&genai.GenerateContentResponse{Candidates: []*genai.Candidate{{}}})
	require.Equal(t, ErrEmptyResponse, err)

	text, err := extractText(&genai.GenerateContentResponse{
		Candidates: []*genai.Candidate{
			{Content: &genai.Content{Parts: []*genai.Part{{Text: "Seeker "}, {Text: "ships."}}}},
		},
	})
	require.NoError(t, err)
	require.Equal(t, "Seeker ships.", text)
}

func TestErrorKind_String(t *testing.T) {
	require.Equal(t, "network", NetworkKind.String())
	require.Equal(t, "auth", AuthKind.String())
	require.Equal(t, "malformed", MalformedKind.String())
}
