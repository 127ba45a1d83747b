package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-register-form/internal/logger"
	"github.com/MKhiriev/go-register-form/internal/utils"
	"github.com/MKhiriev/go-register-form/internal/validators"
)

var errorStatusMap = map[error]int{
	ErrInvalidJSON:  http.StatusBadRequest,
	ErrBodyTooLarge: http.StatusRequestEntityTooLarge,

	validators.ErrUnknownField: http.StatusNotFound,
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}

type errorResponse struct {
	Error   string `json:"error"`
	TraceID string `json:"traceId,omitempty"`
}

// writeError logs err and answers with its mapped status. Internal errors
// are not echoed to the client.
func writeError(w http.ResponseWriter, r *http.Request, err error) {
	status := statusFromError(err)

	log := logger.FromRequest(r)
	log.Err(err).Int("status", status).Msg("request failed")

	msg := err.Error()
	if status >= http.StatusInternalServerError {
		msg = http.StatusText(status)
	}
	traceID, _ := utils.GetTraceIDFromContext(r.Context())

	utils.WriteJSON(w, errorResponse{Error: msg, TraceID: traceID}, status)
}
