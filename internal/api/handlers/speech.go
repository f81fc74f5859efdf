package handlers

import (
	"errors"
	"io"
	"net/http"

	"github.com/vaani-labs/vaani-backend/internal/speech"
	"github.com/vaani-labs/vaani-backend/internal/tempfile"
)

// maxAudioBytes caps the multipart form held in memory.
const maxAudioBytes = 32 << 20

// LanguageDetector identifies the language of recognized text. The result is
// best-effort metadata only.
type LanguageDetector interface {
	Detect(text string) (string, bool)
}

type SpeechToTextHandler struct {
	recognizer speech.Recognizer
	detector   LanguageDetector
}

func NewSpeechToTextHandler(recognizer speech.Recognizer, detector LanguageDetector) *SpeechToTextHandler {
	return &SpeechToTextHandler{recognizer: recognizer, detector: detector}
}

type speechToTextResponse struct {
	RecognizedText string  `json:"recognized_text"`
	SourceLang     string  `json:"source_lang"`
	DetectedLang   *string `json:"detected_lang"`
	Status         string  `json:"status"`
}

// SpeechToText accepts a multipart audio upload plus a source_lang field,
// persists the payload to a scoped temp file, and runs recognition with an
// India-regional language hint. The temp file is removed on every exit path.
func (h *SpeechToTextHandler) SpeechToText(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(maxAudioBytes); err != nil {
		writeDetail(w, http.StatusBadRequest, "invalid multipart form")
		return
	}

	file, _, err := r.FormFile("audio")
	if err != nil {
		writeDetail(w, http.StatusBadRequest, "audio file is required")
		return
	}
	defer file.Close()

	sourceLang := r.FormValue("source_lang")
	if sourceLang == "" {
		writeDetail(w, http.StatusBadRequest, "source_lang is required")
		return
	}

	audio, err := io.ReadAll(file)
	if err != nil {
		writeDetail(w, http.StatusInternalServerError, "Speech recognition failed: "+err.Error())
		return
	}

	path, cleanup, err := tempfile.Write(".wav", audio)
	if err != nil {
		writeDetail(w, http.StatusInternalServerError, "Speech recognition failed: "+err.Error())
		return
	}
	defer cleanup()

	text, err := h.recognizer.Recognize(r.Context(), speech.Request{
		FilePath: path,
		Language: sourceLang + "-IN",
	})
	if errors.Is(err, speech.ErrNoSpeech) {
		writeDetail(w, http.StatusBadRequest, "Could not understand the speech")
		return
	}
	if err != nil {
		writeDetail(w, http.StatusInternalServerError, "Speech recognition failed: "+err.Error())
		return
	}

	var detectedLang *string
	if code, ok := h.detector.Detect(text); ok {
		detectedLang = &code
	}

	writeJSON(w, http.StatusOK, speechToTextResponse{
		RecognizedText: text,
		SourceLang:     sourceLang,
		DetectedLang:   detectedLang,
		Status:         statusSuccess,
	})
}
