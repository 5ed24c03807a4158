package httputil

import (
	"encoding/json"
	"net/http"
)

const (
	StatusSuccess = "success"
	StatusError   = "error"
)

// Envelope is the {status, message} body every JSON reply uses.
type Envelope struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

// RespondWithSuccess writes a success envelope
func RespondWithSuccess(w http.ResponseWriter, code int, message string) {
	RespondWithJSON(w, code, Envelope{Status: StatusSuccess, Message: message})
}

// RespondWithError writes an error envelope
func RespondWithError(w http.ResponseWriter, code int, message string) {
	RespondWithJSON(w, code, Envelope{Status: StatusError, Message: message})
}

// RespondWithJSON writes a JSON response
func RespondWithJSON(w http.ResponseWriter, code int, payload interface{}) {
	response, err := json.Marshal(payload)
	if err != nil {
		code = http.StatusInternalServerError
		response = []byte(`{"status":"error","message":"An internal server error occurred."}`)
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	w.Write(response)
}
