package http

import (
	"html"
	"html/template"
	"time"

	"github.com/microcosm-cc/bluemonday"

	"github.com/MKhiriev/go-register-form/internal/logger"
	"github.com/MKhiriev/go-register-form/internal/service"
	"github.com/MKhiriev/go-register-form/internal/utils"
)

type Handler struct {
	services *service.Services

	// sanitizer strips markup from values echoed back into the page or
	// API responses; see stripMarkup.
	sanitizer      *bluemonday.Policy
	page           *template.Template
	traceIDs       *utils.UUIDGenerator
	requestTimeout time.Duration

	logger *logger.Logger
}

func NewHandler(services *service.Services, requestTimeout time.Duration, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services:       services,
		sanitizer:      bluemonday.StrictPolicy(),
		page:           registerPageTemplate,
		traceIDs:       utils.NewUUIDGenerator(),
		requestTimeout: requestTimeout,
		logger:         logger,
	}
}

// stripMarkup removes tags from s and returns plain text. The entities
// bluemonday emits are decoded, so escaping is left to the writer of the
// response (html/template or encoding/json) and happens exactly once.
func (h *Handler) stripMarkup(s string) string {
	return html.UnescapeString(h.sanitizer.Sanitize(s))
}
