package language

import (
	"strings"

	lingua "github.com/pemistahl/lingua-go"
)

// Detector identifies the language of a piece of text. Detection is
// best-effort metadata: its output is a generic ISO 639-1 code and is not
// validated against the catalog.
type Detector struct {
	detector lingua.LanguageDetector
}

func NewDetector() *Detector {
	detector := lingua.NewLanguageDetectorBuilder().
		FromAllLanguages().
		Build()

	return &Detector{detector: detector}
}

// Detect returns the lowercase ISO 639-1 code of the text's most likely
// language. The second return value is false when the text is empty or no
// language can be determined.
func (d *Detector) Detect(text string) (string, bool) {
	if strings.TrimSpace(text) == "" {
		return "", false
	}

	lang, ok := d.detector.DetectLanguageOf(text)
	if !ok {
		return "", false
	}
	return strings.ToLower(lang.IsoCode639_1().String()), true
}
