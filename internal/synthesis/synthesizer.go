package synthesis

import (
	"context"
	"fmt"

	"github.com/vaani-labs/vaani-backend/internal/config"
)

// Request holds the parameters for one synthesis call.
type Request struct {
	Text string
	// Language is the target language code, passed through uninterpreted.
	Language string
}

// Synthesizer is the interface for text-to-speech backends. Synthesize
// returns MP3 audio at normal speaking rate.
type Synthesizer interface {
	Synthesize(ctx context.Context, req Request) ([]byte, error)
	Name() string
}

// New creates the text-to-speech backend selected by cfg.Backend.
func New(cfg config.SynthesisConfig) (Synthesizer, error) {
	switch cfg.Backend {
	case "google", "":
		return NewGoogleSynthesizer(GoogleConfig{BaseURL: cfg.GoogleBaseURL}), nil
	case "openai":
		if cfg.OpenAIKey == "" {
			return nil, fmt.Errorf("OPENAI_API_KEY is required for the openai synthesis backend")
		}
		return NewOpenAISynthesizer(OpenAIConfig{
			APIKey:  cfg.OpenAIKey,
			BaseURL: cfg.OpenAIBaseURL,
			Model:   cfg.OpenAIModel,
		}), nil
	default:
		return nil, fmt.Errorf("unsupported synthesis backend: %s (supported: google, openai)", cfg.Backend)
	}
}
