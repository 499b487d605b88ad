package public

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/sirupsen/logrus"

	"github.com/havenrealty/listings-api/internal/interfaces/http/common"
	catalogapp "github.com/havenrealty/listings-api/internal/catalog/application"
	inquiryapp "github.com/havenrealty/listings-api/internal/inquiry/application"
)

// Handler wires public HTTP endpoints to application services.
type Handler struct {
	logger    *logrus.Logger
	listings  catalogapp.QueryService
	inquiries inquiryapp.CommandService
}

// Config defines dependencies required by Handler.
type Config struct {
	Logger    *logrus.Logger
	Listings  catalogapp.QueryService
	Inquiries inquiryapp.CommandService
}

// NewHandler constructs a public HTTP handler set.
func NewHandler(cfg Config) *Handler {
	logger := cfg.Logger
	if logger == nil {
		logger = logrus.StandardLogger()
	}
	return &Handler{
		logger:    logger,
		listings:  cfg.Listings,
		inquiries: cfg.Inquiries,
	}
}

// Register mounts all public routes onto the router.
func (h *Handler) Register(r chi.Router) {
	r.Get("/properties", h.propertyListHandler())
	r.Get("/properties/featured", h.propertyFeaturedHandler())
	r.Get("/properties/nearby", h.propertyNearbyHandler())
	r.Get("/properties/{id}", h.propertyDetailHandler())
	r.Get("/properties/{id}/similar", h.propertySimilarHandler())
	r.Get("/agents", h.agentListHandler())
	r.Get("/agents/{id}", h.agentDetailHandler())
	r.Get("/amenities", h.taxonomyHandler())
	r.Post("/inquiries", h.inquiryCreateHandler())
	r.Get("/inquiries/status", h.inquiryStatusHandler())
}

func (h *Handler) fail(w http.ResponseWriter, err error, message string, fields logrus.Fields) {
	h.logger.WithError(err).WithFields(fields).Error(message)
	common.WriteError(h.logger, w, http.StatusInternalServerError, message)
}
