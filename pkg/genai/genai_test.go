package genai

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"tableflip.dev/planner/pkg/glyph"
)

func TestPromptInterpolation(t *testing.T) {
	p := Prompt(glyph.LinkedIn, "Weekly Tips")
	if !strings.Contains(p, "linkedin") {
		t.Fatalf("prompt missing platform: %s", p)
	}
	if !strings.Contains(p, `"Weekly Tips"`) {
		t.Fatalf("prompt missing title: %s", p)
	}
}

func TestGenerateParsesCandidate(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("x-goog-api-key") != "test-key" {
			t.Errorf("missing api key header")
		}
		if !strings.Contains(r.URL.Path, "gemini-2.5-flash:generateContent") {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		var req generateRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Errorf("decode request: %v", err)
		}
		_ = json.NewEncoder(w).Encode(map[string]any{
			"candidates": []map[string]any{
				{"content": map[string]any{"parts": []map[string]string{{"text": "Fresh caption "}, {"text": "#launch"}}}},
			},
		})
	}))
	defer srv.Close()

	c := NewClient("", "test-key")
	c.BaseURL = srv.URL

	got, err := c.Generate(context.Background(), "write me a caption")
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if got != "Fresh caption #launch" {
		t.Fatalf("unexpected text %q", got)
	}
}

func TestGenerateSurfacesAPIError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"error":{"message":"model overloaded"}}`))
	}))
	defer srv.Close()

	c := NewClient("", "test-key")
	c.BaseURL = srv.URL

	if _, err := c.Generate(context.Background(), "x"); err == nil || !strings.Contains(err.Error(), "model overloaded") {
		t.Fatalf("expected api error to surface, got %v", err)
	}
}

func TestGenerateRequiresKey(t *testing.T) {
	c := NewClient("", "")
	if _, err := c.Generate(context.Background(), "x"); err == nil {
		t.Fatalf("expected error without api key")
	}
}
