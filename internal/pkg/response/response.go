package response

import (
	"encoding/json"
	"net/http"
)

// ErrorResponse is the body of every non-2xx answer
type ErrorResponse struct {
	Error string `json:"error"`
}

// JSON writes data as the JSON body with the given status
func JSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if data == nil {
		return
	}
	// Headers are already sent, an encoding failure can only be dropped
	_ = json.NewEncoder(w).Encode(data)
}

// Error writes {"error": message}
func Error(w http.ResponseWriter, status int, message string) {
	JSON(w, status, ErrorResponse{Error: message})
}

// Success writes a 200 response
func Success(w http.ResponseWriter, data any) {
	JSON(w, http.StatusOK, data)
}
