package synthesis

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"
)

// GoogleConfig holds configuration for the Google Translate TTS backend.
type GoogleConfig struct {
	BaseURL string // default: "https://translate.google.com"
}

// GoogleSynthesizer produces MP3 speech through the Google Translate TTS
// endpoint. It needs no credentials, which makes it the default backend.
type GoogleSynthesizer struct {
	cfg        GoogleConfig
	httpClient *http.Client
}

// NewGoogleSynthesizer creates a GoogleSynthesizer with defaults applied.
func NewGoogleSynthesizer(cfg GoogleConfig) *GoogleSynthesizer {
	if cfg.BaseURL == "" {
		cfg.BaseURL = "https://translate.google.com"
	}
	return &GoogleSynthesizer{
		cfg: cfg,
		httpClient: &http.Client{
			Timeout: 60 * time.Second,
		},
	}
}

func (g *GoogleSynthesizer) Name() string { return "google-tts" }

// Synthesize fetches MP3 audio for the text at normal speaking rate.
func (g *GoogleSynthesizer) Synthesize(ctx context.Context, req Request) ([]byte, error) {
	params := url.Values{}
	params.Set("ie", "UTF-8")
	params.Set("client", "tw-ob")
	params.Set("tl", req.Language)
	params.Set("q", req.Text)
	params.Set("textlen", fmt.Sprintf("%d", len([]rune(req.Text))))

	reqURL := g.cfg.BaseURL + "/translate_tts?" + params.Encode()
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, err
	}

	resp, err := g.httpClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("synthesis request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		respBody, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("synthesis failed (status %d): %s", resp.StatusCode, string(respBody))
	}

	audio, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read audio: %w", err)
	}
	if len(audio) == 0 {
		return nil, fmt.Errorf("empty audio response")
	}

	return audio, nil
}
