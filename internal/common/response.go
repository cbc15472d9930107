package common

import (
	"encoding/json"
	"log"
	"net/http"

	"instapost/internal/apperror"
)

type errorBody struct {
	Message string `json:"message"`
	Status  int    `json:"status"`
}

// WriteJSON writes v as a JSON response.
func WriteJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("failed to encode response: %v", err)
	}
}

// WriteError maps an error to its HTTP status and writes the standard error
// envelope. Internal details are logged, not leaked.
func WriteError(w http.ResponseWriter, err error) {
	status := apperror.StatusCode(err)
	message := err.Error()
	if status == http.StatusInternalServerError {
		log.Printf("internal error: %v", err)
		message = "internal server error"
	}
	WriteJSON(w, status, map[string]errorBody{"error": {Message: message, Status: status}})
}
