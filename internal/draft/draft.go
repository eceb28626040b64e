// Package draft calls the generative-text service for email drafts.
// The call is best-effort: any failure resolves to a fallback string
// so the caller's flow never observes an error.
package draft

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"go.uber.org/zap"

	"github.com/ziyabeey1-ai/mysite/internal/config"
	"github.com/ziyabeey1-ai/mysite/internal/logging"
)

// Fallback copy for the two failure modes
const (
	fallbackNoKey       = "API Anahtarı eksik olduğu için taslak oluşturulamadı."
	fallbackUnavailable = "Yapay zeka servisine şu an ulaşılamıyor."
)

// Client calls the draft service
type Client struct {
	cfg        config.DraftConfig
	httpClient *http.Client
}

// NewClient creates a draft client
func NewClient(cfg config.DraftConfig) *Client {
	return &Client{
		cfg:        cfg,
		httpClient: &http.Client{Timeout: 15 * time.Second},
	}
}

type generateRequest struct {
	Model    string `json:"model"`
	Contents string `json:"contents"`
}

type generateResponse struct {
	Text string `json:"text"`
}

// GenerateEmailDraft drafts an introduction email for a prospect.
// Missing credentials or any transport/decoding failure returns
// fallback copy, never an error.
func (c *Client) GenerateEmailDraft(ctx context.Context, userName, projectType string) string {
	if c.cfg.Endpoint == "" || c.cfg.APIKey == "" {
		return fallbackNoKey
	}

	prompt := fmt.Sprintf(
		"Sen profesyonel bir dijital ajans sahibisin (Yusuf Ziya Terzioğlu).\n"+
			"Müşteri adayı ismi: %s\n"+
			"İlgilendiği proje türü: %s\n\n"+
			"Bu müşteriye göndermek için kısa, profesyonel, \"Apple tarzı\" sade ve etkileyici bir tanışma e-postası taslağı yaz.\n"+
			"E-posta konusu ve içeriği olsun. Türkçe olsun.",
		userName, projectType)

	payload, err := json.Marshal(generateRequest{Model: c.cfg.Model, Contents: prompt})
	if err != nil {
		return fallbackUnavailable
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.cfg.Endpoint, bytes.NewReader(payload))
	if err != nil {
		return fallbackUnavailable
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("x-goog-api-key", c.cfg.APIKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		logging.Warn("draft service unreachable", zap.Error(err))
		return fallbackUnavailable
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		logging.Warn("draft service error", zap.Int("status", resp.StatusCode))
		return fallbackUnavailable
	}

	var out generateResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return fallbackUnavailable
	}
	if out.Text == "" {
		return fallbackUnavailable
	}
	return out.Text
}
