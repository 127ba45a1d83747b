package http

import (
	"io"
	"net/http"

	"github.com/MKhiriev/go-register-form/internal/logger"
)

// version answers with the configured application version as plain text.
func (h *Handler) version(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)

	if _, err := io.WriteString(w, h.services.AppInfoService.GetAppVersion(r.Context())); err != nil {
		logger.FromRequest(r).Err(err).Msg("error writing version")
	}
}
