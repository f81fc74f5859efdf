package handlers

import "net/http"

// Root serves the service banner and endpoint directory.
func Root(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"message": "Vaani Voice Translation Backend",
		"status":  "running",
		"endpoints": map[string]string{
			"translate":      "/api/translate",
			"speech_to_text": "/api/speech-to-text",
			"text_to_speech": "/api/text-to-speech",
			"languages":      "/api/languages",
			"health":         "/health",
		},
	})
}

// Health serves a static liveness payload. The gateway holds no connections
// of its own, so there is nothing deeper to probe.
func Health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{
		"status":  "Voice Translation service is running",
		"message": "All systems operational",
	})
}
