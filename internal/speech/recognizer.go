package speech

import (
	"context"
	"errors"
	"fmt"

	"github.com/vaani-labs/vaani-backend/internal/config"
)

// ErrNoSpeech is returned when the backend could not extract any speech from
// the audio. Handlers map it to a 400 rather than a 500.
var ErrNoSpeech = errors.New("no speech could be recognized")

// Request holds the parameters for one recognition call.
type Request struct {
	// FilePath points at the audio file to recognize. The file is owned by
	// the caller and may be deleted as soon as Recognize returns.
	FilePath string
	// Language is the BCP-47 recognition hint, e.g. "hi-IN".
	Language string
}

// Recognizer is the interface for speech-to-text backends.
type Recognizer interface {
	Recognize(ctx context.Context, req Request) (string, error)
	Name() string
}

// New creates the speech-to-text backend selected by cfg.Backend.
func New(cfg config.SpeechConfig) (Recognizer, error) {
	switch cfg.Backend {
	case "google", "":
		if cfg.GoogleAPIKey == "" {
			return nil, fmt.Errorf("GOOGLE_SPEECH_API_KEY is required for the google speech backend")
		}
		return NewGoogleRecognizer(GoogleConfig{
			APIKey:  cfg.GoogleAPIKey,
			BaseURL: cfg.GoogleBaseURL,
		}), nil
	case "openai":
		if cfg.OpenAIKey == "" {
			return nil, fmt.Errorf("OPENAI_API_KEY is required for the openai speech backend")
		}
		return NewWhisperRecognizer(WhisperConfig{
			APIKey:  cfg.OpenAIKey,
			BaseURL: cfg.OpenAIBaseURL,
			Model:   cfg.OpenAIModel,
		}), nil
	default:
		return nil, fmt.Errorf("unsupported speech backend: %s (supported: google, openai)", cfg.Backend)
	}
}
