package response

import (
	"encoding/json"
	"net/http"
)

type Response struct {
	Status  string `json:"status"`
	Kind    string `json:"kind,omitempty"`
	Message string `json:"message,omitempty"`
	Data    any    `json:"data,omitempty"`
}

func SuccessResponse(w http.ResponseWriter, code int, data any) {
	writeJSON(w, code, Response{Status: "success", Data: data})
}

func ErrorResponse(w http.ResponseWriter, code int, message string) {
	writeJSON(w, code, Response{Status: "error", Message: message})
}

// KindErrorResponse is ErrorResponse tagged with the error kind.
func KindErrorResponse(w http.ResponseWriter, code int, kind, message string) {
	writeJSON(w, code, Response{Status: "error", Kind: kind, Message: message})
}

func writeJSON(w http.ResponseWriter, code int, body Response) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(body)
}
