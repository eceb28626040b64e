// Package draft_test
package draft_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/ziyabeey1-ai/mysite/internal/config"
	"github.com/ziyabeey1-ai/mysite/internal/draft"
)

func TestGenerateEmailDraft(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("x-goog-api-key") != "test-key" {
			t.Errorf("missing api key header")
		}
		var req map[string]string
		_ = json.NewDecoder(r.Body).Decode(&req)
		if !strings.Contains(req["contents"], "Ada") {
			t.Errorf("prompt missing prospect name: %q", req["contents"])
		}
		_ = json.NewEncoder(w).Encode(map[string]string{"text": "Merhaba Ada"})
	}))
	defer srv.Close()

	c := draft.NewClient(config.DraftConfig{Endpoint: srv.URL, APIKey: "test-key", Model: "m"})
	got := c.GenerateEmailDraft(context.Background(), "Ada", "E-Ticaret")
	if got != "Merhaba Ada" {
		t.Errorf("draft = %q", got)
	}
}

func TestGenerateEmailDraftMissingKey(t *testing.T) {
	c := draft.NewClient(config.DraftConfig{})
	got := c.GenerateEmailDraft(context.Background(), "Ada", "SaaS")
	if !strings.Contains(got, "API Anahtarı") {
		t.Errorf("missing-key fallback = %q", got)
	}
}

func TestGenerateEmailDraftServiceFailure(t *testing.T) {
	tests := []struct {
		name    string
		handler http.HandlerFunc
	}{
		{"server error", func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
		}},
		{"garbage body", func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte("not json"))
		}},
		{"empty text", func(w http.ResponseWriter, r *http.Request) {
			_ = json.NewEncoder(w).Encode(map[string]string{"text": ""})
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(tt.handler)
			defer srv.Close()

			c := draft.NewClient(config.DraftConfig{Endpoint: srv.URL, APIKey: "k", Model: "m"})
			got := c.GenerateEmailDraft(context.Background(), "Ada", "SaaS")
			if !strings.Contains(got, "ulaşılamıyor") {
				t.Errorf("failure fallback = %q", got)
			}
		})
	}
}

func TestGenerateEmailDraftUnreachable(t *testing.T) {
	c := draft.NewClient(config.DraftConfig{Endpoint: "http://127.0.0.1:1", APIKey: "k"})
	got := c.GenerateEmailDraft(context.Background(), "Ada", "SaaS")
	if !strings.Contains(got, "ulaşılamıyor") {
		t.Errorf("unreachable fallback = %q", got)
	}
}
