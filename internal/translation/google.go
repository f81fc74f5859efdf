package translation

import (
	"context"
	"fmt"

	translate "cloud.google.com/go/translate"
	"golang.org/x/text/language"
	"google.golang.org/api/option"
)

// GoogleTranslator translates text through the official Google Cloud
// Translation API.
type GoogleTranslator struct {
	client *translate.Client
}

// NewGoogle creates a GoogleTranslator. With an empty credentialsFile the
// client falls back to application default credentials.
func NewGoogle(ctx context.Context, credentialsFile string) (*GoogleTranslator, error) {
	var opts []option.ClientOption
	if credentialsFile != "" {
		opts = append(opts, option.WithCredentialsFile(credentialsFile))
	}

	client, err := translate.NewClient(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("create translate client: %w", err)
	}

	return &GoogleTranslator{client: client}, nil
}

func (g *GoogleTranslator) Name() string { return "google" }

func (g *GoogleTranslator) Translate(ctx context.Context, req Request) (string, error) {
	target, err := language.Parse(req.TargetLang)
	if err != nil {
		return "", fmt.Errorf("invalid target language %q: %w", req.TargetLang, err)
	}

	var opts *translate.Options
	if req.SourceLang != "" && req.SourceLang != "auto" {
		if source, err := language.Parse(req.SourceLang); err == nil {
			opts = &translate.Options{Source: source}
		}
	}

	translations, err := g.client.Translate(ctx, []string{req.Text}, target, opts)
	if err != nil {
		return "", fmt.Errorf("translate: %w", err)
	}
	if len(translations) == 0 {
		return "", fmt.Errorf("no translation returned")
	}

	return translations[0].Text, nil
}

// Close releases the underlying API client.
func (g *GoogleTranslator) Close() error {
	return g.client.Close()
}
