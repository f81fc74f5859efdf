package translation

import (
	"context"
	"fmt"

	"github.com/vaani-labs/vaani-backend/internal/config"
)

// Request holds the parameters for one translation call. Language codes are
// passed through to the backend uninterpreted.
type Request struct {
	Text       string `json:"text"`
	SourceLang string `json:"source_lang"`
	TargetLang string `json:"target_lang"`
}

// Translator is the interface for translation backends.
type Translator interface {
	Translate(ctx context.Context, req Request) (string, error)
	Name() string
}

// New creates the translation backend selected by cfg.Backend.
func New(ctx context.Context, cfg config.TranslationConfig) (Translator, error) {
	switch cfg.Backend {
	case "mymemory", "":
		return NewMyMemory(cfg.MyMemoryEmail), nil
	case "google":
		return NewGoogle(ctx, cfg.CredentialsFile)
	default:
		return nil, fmt.Errorf("unsupported translation backend: %s (supported: mymemory, google)", cfg.Backend)
	}
}
