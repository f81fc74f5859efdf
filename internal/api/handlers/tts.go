package handlers

import (
	"encoding/base64"
	"encoding/json"
	"net/http"
	"os"
	"strings"

	"github.com/vaani-labs/vaani-backend/internal/synthesis"
	"github.com/vaani-labs/vaani-backend/internal/tempfile"
)

type TextToSpeechHandler struct {
	synthesizer synthesis.Synthesizer
}

func NewTextToSpeechHandler(synthesizer synthesis.Synthesizer) *TextToSpeechHandler {
	return &TextToSpeechHandler{synthesizer: synthesizer}
}

type textToSpeechRequest struct {
	Text       string `json:"text"`
	TargetLang string `json:"target_lang"`
}

type textToSpeechResponse struct {
	AudioData  string `json:"audio_data"`
	TargetLang string `json:"target_lang"`
	Status     string `json:"status"`
}

// TextToSpeech synthesizes speech for the text, stages the audio through a
// scoped temp file, and returns it base64-encoded. The temp file is removed
// on every exit path.
func (h *TextToSpeechHandler) TextToSpeech(w http.ResponseWriter, r *http.Request) {
	var req textToSpeechRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeDetail(w, http.StatusBadRequest, "invalid request body")
		return
	}

	text := strings.TrimSpace(req.Text)
	if text == "" {
		writeDetail(w, http.StatusBadRequest, "Text is required")
		return
	}

	audio, err := h.synthesizer.Synthesize(r.Context(), synthesis.Request{
		Text:     text,
		Language: req.TargetLang,
	})
	if err != nil {
		writeDetail(w, http.StatusInternalServerError, "Text-to-speech failed: "+err.Error())
		return
	}

	path, cleanup, err := tempfile.Write(".mp3", audio)
	if err != nil {
		writeDetail(w, http.StatusInternalServerError, "Text-to-speech failed: "+err.Error())
		return
	}
	defer cleanup()

	data, err := os.ReadFile(path)
	if err != nil {
		writeDetail(w, http.StatusInternalServerError, "Text-to-speech failed: "+err.Error())
		return
	}

	writeJSON(w, http.StatusOK, textToSpeechResponse{
		AudioData:  base64.StdEncoding.EncodeToString(data),
		TargetLang: req.TargetLang,
		Status:     statusSuccess,
	})
}
