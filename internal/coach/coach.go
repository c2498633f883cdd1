// ABOUTME: AI coach gateway for the Gemini generateContent endpoint.
// ABOUTME: One best-effort call per prompt; failures map to typed errors.
package coach

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
)

const (
	defaultEndpoint = "https://generativelanguage.googleapis.com/v1beta/models/gemini-1.0-pro:generateContent"

	// personaPrefix frames every prompt before it reaches the model.
	personaPrefix = "You are a fitness coach AI assistant named FitVerse AI Coach. " +
		"Respond to the following fitness query in a helpful, motivational and concise way: "

	// fallbackReply is returned when the provider sends a well-formed
	// payload with no generated candidates.
	fallbackReply = "Sorry, I couldn't generate a response."
)

var (
	// ErrMissingAPIKey is returned before any network call when no
	// credential is supplied.
	ErrMissingAPIKey = errors.New("API key is required")

	// ErrInvalidAPIKey is returned when the provider rejects the
	// credential.
	ErrInvalidAPIKey = errors.New("invalid API key")

	// ErrConnection wraps transport and decode failures. The gateway
	// never surfaces anything outside this taxonomy.
	ErrConnection = errors.New("failed to connect to the coach service")
)

// RemoteError carries a provider error that is not a credential
// rejection.
type RemoteError struct {
	Code    int
	Status  string
	Message string
}

func (e *RemoteError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return "coach service error"
}

// Gateway sends prompts to the generative endpoint. It keeps no state
// between calls; the credential travels with each request.
type Gateway struct {
	endpoint string
	client   *http.Client
}

// Option configures a Gateway.
type Option func(*Gateway)

// WithEndpoint overrides the remote endpoint, used by tests.
func WithEndpoint(url string) Option {
	return func(g *Gateway) { g.endpoint = url }
}

// WithHTTPClient overrides the HTTP client.
func WithHTTPClient(c *http.Client) Option {
	return func(g *Gateway) { g.client = c }
}

// NewGateway creates a gateway against the default endpoint.
func NewGateway(opts ...Option) *Gateway {
	g := &Gateway{
		endpoint: defaultEndpoint,
		client:   http.DefaultClient,
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Wire types for the generateContent contract.

type generateRequest struct {
	Contents         []content        `json:"contents"`
	GenerationConfig generationConfig `json:"generationConfig"`
}

type content struct {
	Parts []part `json:"parts"`
}

type part struct {
	Text string `json:"text"`
}

type generationConfig struct {
	Temperature     float64 `json:"temperature"`
	TopK            int     `json:"topK"`
	TopP            float64 `json:"topP"`
	MaxOutputTokens int     `json:"maxOutputTokens"`
}

type generateResponse struct {
	Error      *apiError   `json:"error,omitempty"`
	Candidates []candidate `json:"candidates,omitempty"`
}

type apiError struct {
	Code    int    `json:"code"`
	Status  string `json:"status"`
	Message string `json:"message"`
}

type candidate struct {
	Content content `json:"content"`
}

// Chat sends one prompt and returns the first generated reply. An
// empty API key fails immediately with ErrMissingAPIKey and no network
// call. There is no retry; each call is a single best-effort attempt.
func (g *Gateway) Chat(ctx context.Context, prompt, apiKey string) (string, error) {
	if apiKey == "" {
		return "", ErrMissingAPIKey
	}

	reqBody := generateRequest{
		Contents: []content{{Parts: []part{{Text: personaPrefix + prompt}}}},
		GenerationConfig: generationConfig{
			Temperature:     0.7,
			TopK:            40,
			TopP:            0.95,
			MaxOutputTokens: 1024,
		},
	}

	payload, err := json.Marshal(reqBody)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrConnection, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, g.endpoint, bytes.NewReader(payload))
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrConnection, err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+apiKey)

	resp, err := g.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrConnection, err)
	}
	defer resp.Body.Close()

	var body generateResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return "", fmt.Errorf("%w: %v", ErrConnection, err)
	}

	if body.Error != nil {
		if isAuthError(body.Error) {
			return "", ErrInvalidAPIKey
		}
		return "", &RemoteError{
			Code:    body.Error.Code,
			Status:  body.Error.Status,
			Message: body.Error.Message,
		}
	}

	if len(body.Candidates) == 0 || len(body.Candidates[0].Content.Parts) == 0 {
		return fallbackReply, nil
	}
	return body.Candidates[0].Content.Parts[0].Text, nil
}

func isAuthError(e *apiError) bool {
	return e.Code == http.StatusUnauthorized ||
		e.Status == "UNAUTHENTICATED" ||
		strings.Contains(e.Message, "API key")
}
