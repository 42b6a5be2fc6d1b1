// Package ollama talks to a local Ollama server and registers it as the
// "ollama" text generator.
package ollama

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/chriscow/charla/pkg/ai"
	"github.com/chriscow/charla/pkg/ai/llm"
)

const (
	DefaultBaseURL = "http://localhost:11434"
	DefaultModel   = "llama3.2"
)

type generateRequest struct {
	Model  string `json:"model"`
	Prompt string `json:"prompt"`
	Stream bool   `json:"stream"`
}

type generateResponse struct {
	Model     string  `json:"model"`
	Response  *string `json:"response"`
	Done      bool    `json:"done"`
	EvalCount int     `json:"eval_count"`
}

// Client is a minimal Ollama HTTP client.
type Client struct {
	BaseURL string
	Model   string
	HTTP    *http.Client
}

// New returns a client for baseURL using model by default.
func New(baseURL, model string) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	if model == "" {
		model = DefaultModel
	}
	return &Client{
		BaseURL: strings.TrimRight(baseURL, "/"),
		Model:   model,
		// deadlines come from the request context
		HTTP: &http.Client{},
	}
}

// Generate posts a non-streaming /api/generate request.
func (c *Client) Generate(ctx context.Context, req llm.GenerateRequest) (llm.GenerateResponse, error) {
	model := req.Model
	if model == "" {
		model = c.Model
	}

	body, err := json.Marshal(generateRequest{
		Model:  model,
		Prompt: req.Prompt,
		Stream: false,
	})
	if err != nil {
		return llm.GenerateResponse{}, ai.NewFatalError(err, "encode ollama request")
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.BaseURL+"/api/generate", bytes.NewReader(body))
	if err != nil {
		return llm.GenerateResponse{}, ai.NewFatalError(err, "build ollama request")
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := c.HTTP.Do(httpReq)
	if err != nil {
		return llm.GenerateResponse{}, ai.NewRecoverableError(err, "ollama generate")
	}
	defer resp.Body.Close()

	if err := statusError(resp); err != nil {
		return llm.GenerateResponse{}, err
	}

	var out generateResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return llm.GenerateResponse{}, ai.NewRecoverableError(err, "decode ollama response")
	}

	result := llm.GenerateResponse{
		Model:      out.Model,
		TokensUsed: out.EvalCount,
	}
	if out.Response != nil {
		result.Text = *out.Response
		result.HasText = true
	}
	return result, nil
}

// Ping checks that the server answers /api/tags.
func (c *Client) Ping(ctx context.Context) error {
	_, err := c.ListModels(ctx)
	return err
}

// ListModels returns the names of locally available models.
func (c *Client) ListModels(ctx context.Context) (map[string]struct{}, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.BaseURL+"/api/tags", nil)
	if err != nil {
		return nil, ai.NewFatalError(err, "build ollama request")
	}
	resp, err := c.HTTP.Do(req)
	if err != nil {
		return nil, ai.NewRecoverableError(err, "ollama tags")
	}
	defer resp.Body.Close()

	if err := statusError(resp); err != nil {
		return nil, err
	}

	var parsed struct {
		Models []struct {
			Name string `json:"name"`
		} `json:"models"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return nil, ai.NewRecoverableError(err, "decode ollama tags")
	}

	out := make(map[string]struct{}, len(parsed.Models))
	for _, m := range parsed.Models {
		if name := strings.TrimSpace(m.Name); name != "" {
			out[name] = struct{}{}
		}
	}
	return out, nil
}

// Capabilities returns the Ollama provider's capabilities.
func (c *Client) Capabilities() llm.Capabilities {
	return llm.Capabilities{
		DefaultModel:    c.Model,
		SupportedModels: []string{c.Model},
		Local:           true,
	}
}

func statusError(resp *http.Response) error {
	if resp.StatusCode < 400 {
		return nil
	}
	snippet, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
	err := fmt.Errorf("ollama http status %s: %s", resp.Status, strings.TrimSpace(string(snippet)))
	if resp.StatusCode >= 500 || resp.StatusCode == http.StatusTooManyRequests {
		return ai.NewRecoverableError(err, "")
	}
	return ai.NewFatalError(err, "")
}
