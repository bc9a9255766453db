package public

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/vitrinalocal/services/api/internal/application"
)

func (h *Handler) reviewListHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		idParam := strings.TrimSpace(chi.URLParam(r, "id"))
		if _, err := primitive.ObjectIDFromHex(idParam); err != nil {
			writeJSON(h.logger, w, http.StatusBadRequest, map[string]string{"error": "el ID de la tienda es inválido"})
			return
		}

		reviews, err := h.reviewQueries.ListByStore(ctx, idParam)
		if err != nil {
			if errors.Is(err, mongo.ErrNoDocuments) {
				writeJSON(h.logger, w, http.StatusNotFound, map[string]string{"error": "tienda no encontrada"})
				return
			}
			h.logger.Error().Err(err).Str("id", idParam).Msg("fallo al obtener las reseñas")
			writeJSON(h.logger, w, http.StatusInternalServerError, map[string]string{"error": "no se pudieron obtener las reseñas"})
			return
		}

		writeJSON(h.logger, w, http.StatusOK, buildReviewResponses(reviews))
	}
}

func (h *Handler) reviewCreateHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		idParam := strings.TrimSpace(chi.URLParam(r, "id"))
		if _, err := primitive.ObjectIDFromHex(idParam); err != nil {
			writeJSON(h.logger, w, http.StatusBadRequest, map[string]string{"error": "el ID de la tienda es inválido"})
			return
		}

		defer r.Body.Close()

		var req submitReviewRequest
		decoder := json.NewDecoder(io.LimitReader(r.Body, MaxReviewRequestBody))
		if err := decoder.Decode(&req); err != nil {
			writeJSON(h.logger, w, http.StatusBadRequest, map[string]string{"error": "el cuerpo de la petición es inválido"})
			return
		}

		if strings.TrimSpace(req.User) == "" {
			writeJSON(h.logger, w, http.StatusBadRequest, map[string]string{"error": "el campo user es obligatorio"})
			return
		}
		if req.Rating == nil {
			writeJSON(h.logger, w, http.StatusBadRequest, map[string]string{"error": "el campo rating es obligatorio"})
			return
		}

		cmd := application.SubmitReviewCommand{
			User:    req.User,
			Comment: req.Comment,
			Rating:  *req.Rating,
		}

		review, err := h.reviewCommands.Append(ctx, idParam, cmd)
		if err != nil {
			if errors.Is(err, mongo.ErrNoDocuments) {
				writeJSON(h.logger, w, http.StatusNotFound, map[string]string{"error": "tienda no encontrada"})
				return
			}
			h.logger.Error().Err(err).Str("id", idParam).Msg("fallo al guardar la reseña")
			writeJSON(h.logger, w, http.StatusInternalServerError, map[string]string{"error": "no se pudo guardar la reseña"})
			return
		}

		writeJSON(h.logger, w, http.StatusCreated, createReviewResponse{
			Message: "Reseña agregada exitosamente",
			Review:  buildReviewResponse(*review),
		})
	}
}
