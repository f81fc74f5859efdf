package speech

import (
	"context"
	"fmt"
	"strings"

	openai "github.com/sashabaranov/go-openai"
)

// WhisperConfig holds configuration for the OpenAI Whisper backend.
type WhisperConfig struct {
	APIKey  string
	BaseURL string // default: OpenAI's public endpoint
	Model   string // default: "whisper-1"
}

// WhisperRecognizer transcribes audio through OpenAI's Whisper API (or a
// compatible endpoint).
type WhisperRecognizer struct {
	client *openai.Client
	model  string
}

// NewWhisperRecognizer creates a WhisperRecognizer with defaults applied.
func NewWhisperRecognizer(cfg WhisperConfig) *WhisperRecognizer {
	clientCfg := openai.DefaultConfig(cfg.APIKey)
	if cfg.BaseURL != "" {
		clientCfg.BaseURL = cfg.BaseURL
	}
	model := cfg.Model
	if model == "" {
		model = openai.Whisper1
	}
	return &WhisperRecognizer{
		client: openai.NewClientWithConfig(clientCfg),
		model:  model,
	}
}

func (w *WhisperRecognizer) Name() string { return "openai-whisper" }

func (w *WhisperRecognizer) Recognize(ctx context.Context, req Request) (string, error) {
	resp, err := w.client.CreateTranscription(ctx, openai.AudioRequest{
		Model:    w.model,
		FilePath: req.FilePath,
		// Whisper takes a bare ISO 639-1 code, not a BCP-47 tag.
		Language: baseLanguage(req.Language),
	})
	if err != nil {
		return "", fmt.Errorf("transcription: %w", err)
	}

	text := strings.TrimSpace(resp.Text)
	if text == "" {
		return "", ErrNoSpeech
	}
	return text, nil
}

// baseLanguage strips a regional suffix: "hi-IN" → "hi".
func baseLanguage(tag string) string {
	if i := strings.IndexByte(tag, '-'); i > 0 {
		return tag[:i]
	}
	return tag
}
