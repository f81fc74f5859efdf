package speech

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"strings"
	"time"
)

// GoogleConfig holds configuration for the Google Speech backend.
type GoogleConfig struct {
	APIKey  string
	BaseURL string // default: "https://speech.googleapis.com/v1"
}

// GoogleRecognizer transcribes audio through the Google Cloud
// Speech-to-Text REST API using API key authentication.
type GoogleRecognizer struct {
	cfg        GoogleConfig
	httpClient *http.Client
}

// NewGoogleRecognizer creates a GoogleRecognizer with defaults applied.
func NewGoogleRecognizer(cfg GoogleConfig) *GoogleRecognizer {
	if cfg.BaseURL == "" {
		cfg.BaseURL = "https://speech.googleapis.com/v1"
	}
	return &GoogleRecognizer{
		cfg: cfg,
		httpClient: &http.Client{
			Timeout: 90 * time.Second,
		},
	}
}

func (g *GoogleRecognizer) Name() string { return "google-speech" }

type googleRecognizeRequest struct {
	Config googleRecognitionConfig `json:"config"`
	Audio  googleRecognitionAudio  `json:"audio"`
}

type googleRecognitionConfig struct {
	LanguageCode               string `json:"languageCode"`
	EnableAutomaticPunctuation bool   `json:"enableAutomaticPunctuation"`
}

type googleRecognitionAudio struct {
	Content string `json:"content"` // base64-encoded
}

type googleRecognizeResponse struct {
	Results []struct {
		Alternatives []struct {
			Transcript string  `json:"transcript"`
			Confidence float64 `json:"confidence"`
		} `json:"alternatives"`
	} `json:"results"`
}

// Recognize uploads the audio file for synchronous recognition. The audio
// encoding is left unset so the API reads it from the file header (WAV/FLAC).
func (g *GoogleRecognizer) Recognize(ctx context.Context, req Request) (string, error) {
	audio, err := os.ReadFile(req.FilePath)
	if err != nil {
		return "", fmt.Errorf("read audio file: %w", err)
	}

	body, err := json.Marshal(googleRecognizeRequest{
		Config: googleRecognitionConfig{
			LanguageCode:               req.Language,
			EnableAutomaticPunctuation: true,
		},
		Audio: googleRecognitionAudio{
			Content: base64.StdEncoding.EncodeToString(audio),
		},
	})
	if err != nil {
		return "", fmt.Errorf("marshal request: %w", err)
	}

	reqURL := fmt.Sprintf("%s/speech:recognize?key=%s", g.cfg.BaseURL, url.QueryEscape(g.cfg.APIKey))
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, reqURL, bytes.NewReader(body))
	if err != nil {
		return "", err
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := g.httpClient.Do(httpReq)
	if err != nil {
		return "", fmt.Errorf("recognition request: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("read response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("recognition failed (status %d): %s", resp.StatusCode, string(respBody))
	}

	var apiResp googleRecognizeResponse
	if err := json.Unmarshal(respBody, &apiResp); err != nil {
		return "", fmt.Errorf("parse response: %w", err)
	}

	var parts []string
	for _, result := range apiResp.Results {
		if len(result.Alternatives) > 0 && result.Alternatives[0].Transcript != "" {
			parts = append(parts, result.Alternatives[0].Transcript)
		}
	}
	if len(parts) == 0 {
		return "", ErrNoSpeech
	}

	return strings.Join(parts, " "), nil
}
