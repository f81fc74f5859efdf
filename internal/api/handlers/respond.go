package handlers

import (
	"encoding/json"
	"net/http"
)

const statusSuccess = "success"

func writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

// writeDetail sends the uniform error envelope. Success and failure are
// distinguished solely by the HTTP status code plus `status:"success"` vs
// `detail` in the body.
func writeDetail(w http.ResponseWriter, status int, detail string) {
	writeJSON(w, status, map[string]string{"detail": detail})
}
