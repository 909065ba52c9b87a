package mockapi

import (
	"encoding/json"
	"errors"
	"net/http"

	"finboard/internal/core"
	"finboard/internal/log"
)

// envelope is the body of every /api response.
type envelope struct {
	Success bool   `json:"success"`
	Data    any    `json:"data,omitempty"`
	Message string `json:"message,omitempty"`
	Error   string `json:"error,omitempty"`
}

// responseBuilder assembles an envelope response.
type responseBuilder struct {
	status int
	env    envelope
}

func respond() *responseBuilder {
	return &responseBuilder{status: http.StatusOK, env: envelope{Success: true}}
}

func (b *responseBuilder) Status(code int) *responseBuilder {
	b.status = code
	return b
}

func (b *responseBuilder) Data(v any) *responseBuilder {
	b.env.Data = v
	return b
}

func (b *responseBuilder) Message(msg string) *responseBuilder {
	b.env.Message = msg
	return b
}

// Fail turns the response into an error envelope.
func (b *responseBuilder) Fail(code int, msg string) *responseBuilder {
	b.status = code
	b.env.Success = false
	b.env.Data = nil
	b.env.Error = msg
	return b
}

func (b *responseBuilder) Send(w http.ResponseWriter) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(b.status)
	_ = json.NewEncoder(w).Encode(b.env)
}

func writeError(w http.ResponseWriter, code int, msg string) {
	respond().Fail(code, msg).Send(w)
}

// errorResponse maps a store error to a status and client-facing message.
func errorResponse(err error, resource string) (int, string) {
	switch {
	case errors.Is(err, ErrNotFound):
		return http.StatusNotFound, resource + " not found"
	case errors.Is(err, ErrEmailTaken):
		return http.StatusConflict, "Email already registered"
	case errors.Is(err, ErrInvalidCredentials):
		return http.StatusUnauthorized, "Invalid email or password"
	case errors.Is(err, ErrUnauthorized):
		return http.StatusUnauthorized, "Unauthorized"
	case errors.Is(err, errBadBody):
		return http.StatusBadRequest, "Invalid request body"
	}
	if msg, ok := core.ValidationMessage(err); ok {
		return http.StatusBadRequest, msg
	}
	return http.StatusInternalServerError, "Internal server error"
}

// fail writes the envelope for err and logs server-side failures.
func (s *Server) fail(w http.ResponseWriter, r *http.Request, err error, resource string) {
	code, msg := errorResponse(err, resource)
	if code >= http.StatusInternalServerError {
		s.logger.ErrorContext(r.Context(), "Request failed",
			log.FieldError, err, log.FieldPath, r.URL.Path, log.FieldResource, resource)
	}
	writeError(w, code, msg)
}
