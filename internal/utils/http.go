package utils

import (
	"encoding/json"
	"fmt"
	"net/http"
)

const (
	contentTypeJSON = "application/json"
	contentTypeText = "text/plain; charset=utf-8"
)

// WriteJSON encodes data and writes it with the given status code.
//
// The body is marshaled before anything is written, so a value that cannot
// be encoded turns into a plain 500 instead of a half written response.
//
//	WriteJSON(w, models.Greeting{Message: app.MsgHelloWorld}, http.StatusOK)
func WriteJSON(w http.ResponseWriter, data any, statusCode int) (int, error) {
	body, err := json.Marshal(data)
	if err != nil {
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return 0, fmt.Errorf("error writing data to JSON: %w", err)
	}

	return write(w, contentTypeJSON, body, statusCode)
}

// WriteText writes text as a plain text response with the given status code.
func WriteText(w http.ResponseWriter, text string, statusCode int) (int, error) {
	return write(w, contentTypeText, []byte(text), statusCode)
}

func write(w http.ResponseWriter, contentType string, body []byte, statusCode int) (int, error) {
	w.Header().Set("Content-Type", contentType)
	w.WriteHeader(statusCode)

	return w.Write(body)
}
