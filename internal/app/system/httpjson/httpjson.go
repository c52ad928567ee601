// Package httpjson holds the small helpers the API handlers share for
// writing JSON responses and error envelopes.
package httpjson

import (
	"encoding/json"
	"net/http"
)

// errorBody is the JSON error envelope every failed request gets.
type errorBody struct {
	Error string `json:"error"`
}

// Write encodes v as JSON with the given status code.
func Write(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// Error writes a JSON error envelope with the given status code.
func Error(w http.ResponseWriter, status int, msg string) {
	Write(w, status, errorBody{Error: msg})
}

// Decode reads the request body as JSON into v, enforcing unknown-field
// rejection so typos in admin form payloads surface as errors instead
// of silently dropped data.
func Decode(r *http.Request, v any) error {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	return dec.Decode(v)
}
