package httputil

import (
	"encoding/json"
	"net/http"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/notewall/pkg/errors"
)

// ErrorBody is the JSON shape of every error response.
type ErrorBody struct {
	Code    errors.Code `json:"code"`
	Message string      `json:"message"`
}

// Status maps an error to its HTTP status code.
func Status(err error) int {
	if errors.IsInvalid(err) {
		return http.StatusBadRequest
	}
	switch errors.GetCode(err) {
	case errors.ErrCodeNotFound:
		return http.StatusNotFound
	case errors.ErrCodeUnavailable:
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

// WriteJSON writes data with the given status.
func WriteJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		log.Warn("encode json response", "err", err)
	}
}

// WriteError writes err as an ErrorBody. Errors without a code are reported
// as INTERNAL_ERROR and their text is not exposed.
func WriteError(w http.ResponseWriter, err error) {
	status := Status(err)
	body := ErrorBody{Code: errors.GetCode(err), Message: errors.UserMessage(err)}
	if body.Code == "" {
		body.Code = errors.ErrCodeInternal
		body.Message = http.StatusText(status)
	}
	WriteJSON(w, status, body)
}

// BadRequest writes a 400 response with an INVALID_INPUT code.
func BadRequest(w http.ResponseWriter, format string, args ...any) {
	WriteError(w, errors.New(errors.ErrCodeInvalidInput, format, args...))
}

// NotFound writes a 404 response.
func NotFound(w http.ResponseWriter, format string, args ...any) {
	WriteError(w, errors.New(errors.ErrCodeNotFound, format, args...))
}
