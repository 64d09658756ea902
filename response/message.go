// Package response maps handler outcomes to HTTP status codes and JSON bodies.
package response

import (
	"encoding/json"
	"net/http"

	"TareasWebService/validation"
)

// Fixed message bodies for the identifier and lookup error cases.
const (
	MsgInvalidID = "invalid identifier"
	MsgNotFound  = "not found"
	MsgDeleted   = "deleted"
)

// Message is the body of every single-message response.
type Message struct {
	Message string `json:"message"`
}

// ValidationFailure is the body of a 400 carrying field violations.
type ValidationFailure struct {
	Errors []validation.Violation `json:"errors"`
}

// WriteJSON writes v as the JSON body with the given status code.
func WriteJSON(res http.ResponseWriter, status int, v any) {
	res.Header().Set("Content-Type", "application/json")
	res.WriteHeader(status)
	_ = json.NewEncoder(res).Encode(v)
}

// WriteMessage writes a fixed single-message body with the given status code.
func WriteMessage(res http.ResponseWriter, status int, message string) {
	WriteJSON(res, status, Message{Message: message})
}

// WriteValidationFailure writes a 400 with the violation list under "errors".
func WriteValidationFailure(res http.ResponseWriter, violations []validation.Violation) {
	WriteJSON(res, http.StatusBadRequest, ValidationFailure{Errors: violations})
}
