// Package genai is the caption-generation collaborator: a prompt goes
// out, opaque text comes back. Failures surface once and are never fatal.
package genai

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"tableflip.dev/planner/pkg/glyph"
)

// DefaultModel matches the model the planner was tuned against.
const DefaultModel = "gemini-2.5-flash"

const defaultBaseURL = "https://generativelanguage.googleapis.com/v1beta"

// Generator produces caption text for a prompt.
type Generator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

// Prompt interpolates the platform and title into the caption request.
func Prompt(platform glyph.Platform, title string) string {
	return fmt.Sprintf(
		"You are a social media expert. Write an engaging %s caption for the topic %q, with emojis and plenty of hashtags. Reply with only the caption text and hashtags.",
		platform, title)
}

// Client calls the Gemini generateContent endpoint. One attempt per call;
// retries are a caller decision.
type Client struct {
	Model   string
	APIKey  string
	BaseURL string
	HTTP    *http.Client
}

// NewClient builds a Client for the given model and key. An empty model
// falls back to DefaultModel.
func NewClient(model, apiKey string) *Client {
	if model == "" {
		model = DefaultModel
	}
	return &Client{Model: model, APIKey: apiKey}
}

type generateRequest struct {
	Contents []content `json:"contents"`
}

type content struct {
	Parts []part `json:"parts"`
}

type part struct {
	Text string `json:"text"`
}

type generateResponse struct {
	Candidates []struct {
		Content content `json:"content"`
	} `json:"candidates"`
	Error *struct {
		Message string `json:"message"`
	} `json:"error"`
}

// Generate sends the prompt and returns the first candidate's text.
func (c *Client) Generate(ctx context.Context, prompt string) (string, error) {
	if c.APIKey == "" {
		return "", errors.New("genai: no api key configured")
	}

	model := c.Model
	if model == "" {
		model = DefaultModel
	}
	base := c.BaseURL
	if base == "" {
		base = defaultBaseURL
	}

	body, err := json.Marshal(generateRequest{
		Contents: []content{{Parts: []part{{Text: prompt}}}},
	})
	if err != nil {
		return "", fmt.Errorf("genai: encode request: %w", err)
	}

	url := fmt.Sprintf("%s/models/%s:generateContent", base, model)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("genai: build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("x-goog-api-key", c.APIKey)

	client := c.HTTP
	if client == nil {
		client = http.DefaultClient
	}
	resp, err := client.Do(req)
	if err != nil {
		return "", fmt.Errorf("genai: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("genai: read response: %w", err)
	}

	var out generateResponse
	if err := json.Unmarshal(raw, &out); err != nil {
		return "", fmt.Errorf("genai: decode response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		if out.Error != nil && out.Error.Message != "" {
			return "", fmt.Errorf("genai: %s", out.Error.Message)
		}
		return "", fmt.Errorf("genai: unexpected status %d", resp.StatusCode)
	}
	if len(out.Candidates) == 0 || len(out.Candidates[0].Content.Parts) == 0 {
		return "", errors.New("genai: empty response")
	}

	text := ""
	for _, p := range out.Candidates[0].Content.Parts {
		text += p.Text
	}
	return text, nil
}
