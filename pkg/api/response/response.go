// Package response defines the service's response envelope and the
// internal-code message table every endpoint resolves its message through.
package response

import (
	"encoding/json"
	"fmt"
	"net/http"
)

// CodePrefix prefixes every internal response code.
const CodePrefix = "PRODUCT-"

// Internal response codes.
const (
	CodeCalculated    = CodePrefix + "10" // successful calculation
	CodeMalformedBody = CodePrefix + "11" // request body could not be decoded
	CodeInvalidInput  = CodePrefix + "12" // input failed engine validation
)

// messages maps internal codes to their user-facing message text.
var messages = map[string]string{
	CodeCalculated:    "list found",
	CodeMalformedBody: "request body is not valid JSON",
	CodeInvalidInput:  "invalid calculation input",
}

// Envelope is the uniform wire shape for success and failure alike.
type Envelope struct {
	Status       string      `json:"status"`
	HTTPStatus   int         `json:"httpStatus"`
	Message      string      `json:"message"`
	InternalCode string      `json:"internalCode"`
	Data         interface{} `json:"data"`
	Error        string      `json:"error,omitempty"`
}

// MessageFor resolves an internal code through the message table.
func MessageFor(code string) string {
	if msg, ok := messages[code]; ok {
		return msg
	}
	return "unknown response code"
}

// OK wraps a payload in a 200 envelope.
func OK(data interface{}, code string) Envelope {
	return Envelope{
		Status:       "OK",
		HTTPStatus:   http.StatusOK,
		Message:      MessageFor(code),
		InternalCode: code,
		Data:         data,
	}
}

// BadRequest wraps a caller error in a 400 envelope.
func BadRequest(code string, err error) Envelope {
	env := Envelope{
		Status:       "BAD_REQUEST",
		HTTPStatus:   http.StatusBadRequest,
		Message:      MessageFor(code),
		InternalCode: code,
	}
	if err != nil {
		env.Error = err.Error()
	}
	return env
}

// Write serializes the envelope with its embedded HTTP status.
func Write(w http.ResponseWriter, env Envelope) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(env.HTTPStatus)
	if err := json.NewEncoder(w).Encode(env); err != nil {
		fmt.Printf("[RESPONSE] encode failed: %v\n", err)
	}
}
