package llm

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestNewGeminiClientRequiresKey(t *testing.T) {
	if _, err := NewGeminiClient("", "", "", 0); err == nil {
		t.Error("expected error for empty api key")
	}
}

func TestGenerate(t *testing.T) {
	var gotBody map[string]any
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !strings.HasSuffix(r.URL.Path, "/chat/completions") {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		body, _ := io.ReadAll(r.Body)
		_ = json.Unmarshal(body, &gotBody)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"choices":[{"message":{"role":"assistant","content":"Use neem oil. [lang:en]"}}]}`))
	}))
	defer srv.Close()

	client, err := NewGeminiClient("test-key", srv.URL+"/", "gemini-2.0-flash", 0.2)
	if err != nil {
		t.Fatal(err)
	}

	reply, err := client.Generate(context.Background(), "system text", "user text")
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}
	if reply != "Use neem oil. [lang:en]" {
		t.Errorf("unexpected reply %q", reply)
	}
	if gotBody["model"] != "gemini-2.0-flash" {
		t.Errorf("expected model in request, got %v", gotBody["model"])
	}
	if temp, ok := gotBody["temperature"].(float64); !ok || temp != 0.2 {
		t.Errorf("expected temperature 0.2, got %v", gotBody["temperature"])
	}
}

func TestGenerateNoChoices(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"choices":[]}`))
	}))
	defer srv.Close()

	client, err := NewGeminiClient("test-key", srv.URL+"/", "", 0)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := client.Generate(context.Background(), "s", "u"); err == nil {
		t.Error("expected error when no choices returned")
	}
}

func TestGenerateServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "quota exceeded", http.StatusTooManyRequests)
	}))
	defer srv.Close()

	client, err := NewGeminiClient("test-key", srv.URL+"/", "", 0)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := client.Generate(context.Background(), "s", "u"); err == nil {
		t.Error("expected error on 429 response")
	}
}
