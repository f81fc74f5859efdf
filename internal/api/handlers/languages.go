package handlers

import (
	"net/http"

	"github.com/vaani-labs/vaani-backend/internal/language"
)

// Languages serves the full catalog of supported languages.
func Languages(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"languages": language.Catalog(),
		"status":    statusSuccess,
	})
}
