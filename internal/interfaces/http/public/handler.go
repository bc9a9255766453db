package public

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"

	"github.com/vitrinalocal/services/api/internal/application"
)

// Handler wires the public HTTP endpoints to application services.
type Handler struct {
	logger         zerolog.Logger
	storeQueries   application.StoreQueryService
	storeCommands  application.StoreCommandService
	reviewQueries  application.ReviewQueryService
	reviewCommands application.ReviewCommandService
}

// Config defines dependencies required by Handler.
type Config struct {
	Logger         zerolog.Logger
	StoreQueries   application.StoreQueryService
	StoreCommands  application.StoreCommandService
	ReviewQueries  application.ReviewQueryService
	ReviewCommands application.ReviewCommandService
}

// NewHandler constructs the public HTTP handler set.
func NewHandler(cfg Config) *Handler {
	return &Handler{
		logger:         cfg.Logger,
		storeQueries:   cfg.StoreQueries,
		storeCommands:  cfg.StoreCommands,
		reviewQueries:  cfg.ReviewQueries,
		reviewCommands: cfg.ReviewCommands,
	}
}

// Register mounts all routes onto the router, including the liveness
// endpoint and the fallback for unmatched paths.
func (h *Handler) Register(r chi.Router) {
	// NotFound must be set before mounting subrouters so they inherit it.
	r.NotFound(h.notFoundHandler())

	r.Get("/health", h.healthHandler())

	r.Route("/api", func(api chi.Router) {
		api.Get("/categorias", h.categoriesHandler())
		api.Post("/tiendas", h.storeCreateHandler())
		api.Get("/tiendas", h.storeListHandler())
		api.Get("/tiendas/categoria/{categoria}", h.storeByCategoryHandler())
		api.Get("/tiendas/{id}", h.storeDetailHandler())
		api.Get("/tiendas/{id}/reviews", h.reviewListHandler())
		api.Post("/tiendas/{id}/reviews", h.reviewCreateHandler())
	})
}

func (h *Handler) healthHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(h.logger, w, http.StatusOK, healthResponse{
			Status:    "OK",
			Message:   "Servicio de tiendas en funcionamiento",
			Timestamp: time.Now().Format(time.RFC3339),
		})
	}
}

func (h *Handler) notFoundHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(h.logger, w, http.StatusNotFound, map[string]string{"error": "ruta no encontrada"})
	}
}
