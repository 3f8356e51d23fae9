package utils

import (
	"encoding/json"
	"net/http"
)

// JSON writes a JSON response with status code.
func JSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if payload != nil {
		json.NewEncoder(w).Encode(payload)
	}
}

// Fail writes the uniform failure body used by every endpoint.
func Fail(w http.ResponseWriter, status int, message string) {
	JSON(w, status, map[string]any{"message": message, "success": false})
}
