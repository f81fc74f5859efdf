package handlers

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/vaani-labs/vaani-backend/internal/translation"
)

type TranslateHandler struct {
	translator translation.Translator
}

func NewTranslateHandler(translator translation.Translator) *TranslateHandler {
	return &TranslateHandler{translator: translator}
}

type translateRequest struct {
	Text       string `json:"text"`
	SourceLang string `json:"source_lang"`
	TargetLang string `json:"target_lang"`
}

type translateResponse struct {
	TranslatedText string `json:"translated_text"`
	OriginalText   string `json:"original_text"`
	SourceLang     string `json:"source_lang"`
	TargetLang     string `json:"target_lang"`
	Status         string `json:"status"`
}

// Translate forwards text to the translation backend. Language codes are
// passed through without catalog validation, matching the published contract.
func (h *TranslateHandler) Translate(w http.ResponseWriter, r *http.Request) {
	var req translateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeDetail(w, http.StatusBadRequest, "invalid request body")
		return
	}

	text := strings.TrimSpace(req.Text)
	if text == "" {
		writeDetail(w, http.StatusBadRequest, "Text is required")
		return
	}

	translated, err := h.translator.Translate(r.Context(), translation.Request{
		Text:       text,
		SourceLang: req.SourceLang,
		TargetLang: req.TargetLang,
	})
	if err != nil {
		writeDetail(w, http.StatusInternalServerError, "Translation failed: "+err.Error())
		return
	}

	writeJSON(w, http.StatusOK, translateResponse{
		TranslatedText: translated,
		OriginalText:   text,
		SourceLang:     req.SourceLang,
		TargetLang:     req.TargetLang,
		Status:         statusSuccess,
	})
}
