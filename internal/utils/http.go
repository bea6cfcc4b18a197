package utils

import (
	"encoding/json"
	"fmt"
	"net/http"
)

// ErrorResponse is the body of every error reply except variable rule
// failures, which carry their own message payload.
type ErrorResponse struct {
	Error string `json:"error"`
}

// encodeFailureBody is sent when a response value cannot be encoded.
var encodeFailureBody = []byte(`{"error":"Internal Server Error"}`)

// WriteJSON encodes data and writes it with statusCode. When data cannot be
// encoded the client gets a 500 with an [ErrorResponse] body instead and the
// encoding error is returned.
func WriteJSON(w http.ResponseWriter, data any, statusCode int) error {
	body, err := json.Marshal(data)
	if err != nil {
		writeBody(w, encodeFailureBody, http.StatusInternalServerError)
		return fmt.Errorf("error encoding %T response: %w", data, err)
	}

	return writeBody(w, body, statusCode)
}

// WriteError writes {"error": message} with statusCode.
func WriteError(w http.ResponseWriter, message string, statusCode int) error {
	return WriteJSON(w, ErrorResponse{Error: message}, statusCode)
}

func writeBody(w http.ResponseWriter, body []byte, statusCode int) error {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)

	_, err := w.Write(body)
	return err
}
