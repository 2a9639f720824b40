package llm

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// OllamaClient talks to a local Ollama server's /api/generate endpoint.
// Streaming is never requested; the full completion arrives in one payload.
type OllamaClient struct {
	httpClient *http.Client
	endpoint   string
	model      string
	verbose    bool
}

type generateRequest struct {
	Model  string `json:"model"`
	Prompt string `json:"prompt"`
	System string `json:"system,omitempty"`
	Stream bool   `json:"stream"`
}

type generateResponse struct {
	// Response is a pointer to tell "field absent" apart from an empty
	// completion.
	Response *string `json:"response"`
	Error    string  `json:"error,omitempty"`
}

func NewOllama(endpoint, model string, timeout time.Duration, verbose bool) *OllamaClient {
	return &OllamaClient{
		httpClient: &http.Client{Timeout: timeout},
		endpoint:   endpoint,
		model:      model,
		verbose:    verbose,
	}
}

// Generate sends one completion request and blocks until the full response
// arrives or the transport gives up. A single attempt, no retry.
func (c *OllamaClient) Generate(ctx context.Context, messages []Message) (Response, error) {
	var system, prompt []string
	for _, m := range messages {
		if m.Role == RoleSystem {
			system = append(system, m.Content)
		} else {
			prompt = append(prompt, m.Content)
		}
	}
	body := generateRequest{
		Model:  c.model,
		Prompt: strings.Join(prompt, "\n\n"),
		System: strings.Join(system, "\n\n"),
		Stream: false,
	}
	payload, err := json.Marshal(body)
	if err != nil {
		return Response{}, fmt.Errorf("failed to marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(payload))
	if err != nil {
		return Response{}, fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	if c.verbose {
		log.Printf("POST %s model=%s prompt_bytes=%d", c.endpoint, c.model, len(body.Prompt))
	}
	resp, err := c.httpClient.Do(req)
	if err != nil {
		var ue *url.Error
		if errors.As(err, &ue) && ue.Timeout() {
			return Response{}, &ConnectError{Endpoint: c.endpoint, Timeout: true, Err: err}
		}
		return Response{}, &ConnectError{Endpoint: c.endpoint, Err: err}
	}
	defer func() { _ = resp.Body.Close() }()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return Response{}, &ConnectError{Endpoint: c.endpoint, Err: err}
	}
	if c.verbose {
		log.Printf("%s from %s (%d bytes)", resp.Status, c.endpoint, len(data))
	}
	if resp.StatusCode != http.StatusOK {
		return Response{}, c.statusError(resp.StatusCode, data)
	}

	var out generateResponse
	if err := json.Unmarshal(data, &out); err != nil {
		return Response{}, &ServerError{StatusCode: resp.StatusCode, Message: "response body is not valid JSON"}
	}
	if out.Response == nil {
		return Response{}, ErrMissingResponse
	}
	return Response{Content: *out.Response, Model: c.model}, nil
}

func (c *OllamaClient) statusError(code int, body []byte) error {
	var payload generateResponse
	msg := ""
	if json.Unmarshal(body, &payload) == nil {
		msg = payload.Error
	}
	if msg == "" {
		switch {
		case code == http.StatusNotFound:
			msg = fmt.Sprintf("model %q not found, try another model", c.model)
		case code >= 500:
			msg = "the server might be having issues"
		}
	}
	return &ServerError{StatusCode: code, Message: msg}
}
