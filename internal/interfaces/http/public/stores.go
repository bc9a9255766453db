package public

import (
	"context"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/vitrinalocal/services/api/internal/application"
	"github.com/vitrinalocal/services/api/internal/domain"
)

func (h *Handler) categoriesHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(h.logger, w, http.StatusOK, domain.Categories)
	}
}

func (h *Handler) storeCreateHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		// Uploads plus insert can take a while on slow connections.
		ctx, cancel := context.WithTimeout(r.Context(), 30*time.Second)
		defer cancel()

		r.Body = http.MaxBytesReader(w, r.Body, MaxCreateRequestBody)
		if err := r.ParseMultipartForm(MaxCreateRequestBody); err != nil {
			writeJSON(h.logger, w, http.StatusBadRequest, map[string]string{"error": "el formulario multipart es inválido"})
			return
		}

		cmd := application.CreateStoreCommand{
			Name:             strings.TrimSpace(r.FormValue("name")),
			Address:          strings.TrimSpace(r.FormValue("address")),
			Category:         strings.TrimSpace(r.FormValue("category")),
			WhatsappPhone:    strings.TrimSpace(r.FormValue("whatsappPhone")),
			SalesDescription: strings.TrimSpace(r.FormValue("salesDescription")),
			Website:          strings.TrimSpace(r.FormValue("website")),
			SocialMedia:      strings.TrimSpace(r.FormValue("socialMedia")),
		}

		if err := validateCreateStore(cmd); err != nil {
			writeJSON(h.logger, w, http.StatusBadRequest, map[string]string{"error": err.Error()})
			return
		}

		attachments, err := readPhotoAttachments(r.MultipartForm.File["photos"])
		if err != nil {
			writeJSON(h.logger, w, http.StatusBadRequest, map[string]string{"error": err.Error()})
			return
		}
		cmd.Photos = attachments

		store, err := h.storeCommands.Create(ctx, cmd)
		if err != nil {
			h.logger.Error().Err(err).Str("name", cmd.Name).Msg("fallo al registrar la tienda")
			writeJSON(h.logger, w, http.StatusInternalServerError, map[string]string{"error": "no se pudo registrar la tienda"})
			return
		}

		writeJSON(h.logger, w, http.StatusCreated, createStoreResponse{
			Message: "Tienda registrada exitosamente",
			Store:   buildStoreResponse(*store),
		})
	}
}

func validateCreateStore(cmd application.CreateStoreCommand) error {
	required := []struct {
		value string
		label string
	}{
		{cmd.Name, "name"},
		{cmd.Address, "address"},
		{cmd.Category, "category"},
		{cmd.WhatsappPhone, "whatsappPhone"},
		{cmd.SalesDescription, "salesDescription"},
	}
	for _, field := range required {
		if field.value == "" {
			return fmt.Errorf("el campo %s es obligatorio", field.label)
		}
	}
	if !domain.IsValidCategory(cmd.Category) {
		return fmt.Errorf("la categoría %q no es válida", cmd.Category)
	}
	return nil
}

// readPhotoAttachments loads the uploaded files into memory, preserving
// the order in which the client sent them.
func readPhotoAttachments(files []*multipart.FileHeader) ([]application.PhotoAttachment, error) {
	if len(files) > MaxStorePhotoCount {
		return nil, fmt.Errorf("se permiten máximo %d fotos por tienda", MaxStorePhotoCount)
	}

	attachments := make([]application.PhotoAttachment, 0, len(files))
	for _, header := range files {
		if header.Size > MaxPhotoBytes {
			return nil, fmt.Errorf("la foto %s supera el límite de 5MB", header.Filename)
		}

		file, err := header.Open()
		if err != nil {
			return nil, fmt.Errorf("no se pudo leer la foto %s", header.Filename)
		}
		data, err := io.ReadAll(file)
		file.Close()
		if err != nil {
			return nil, fmt.Errorf("no se pudo leer la foto %s", header.Filename)
		}

		attachments = append(attachments, application.PhotoAttachment{
			Filename:    header.Filename,
			ContentType: header.Header.Get("Content-Type"),
			Data:        data,
		})
	}
	return attachments, nil
}

func (h *Handler) storeListHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		stores, err := h.storeQueries.List(ctx)
		if err != nil {
			h.logger.Error().Err(err).Msg("fallo al listar tiendas")
			writeJSON(h.logger, w, http.StatusInternalServerError, map[string]string{"error": "no se pudieron obtener las tiendas"})
			return
		}

		writeJSON(h.logger, w, http.StatusOK, buildStoreResponses(stores))
	}
}

func (h *Handler) storeByCategoryHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		category := chi.URLParam(r, "categoria")
		stores, err := h.storeQueries.ListByCategory(ctx, category)
		if err != nil {
			h.logger.Error().Err(err).Str("category", category).Msg("fallo al listar tiendas por categoría")
			writeJSON(h.logger, w, http.StatusInternalServerError, map[string]string{"error": "no se pudieron obtener las tiendas"})
			return
		}

		writeJSON(h.logger, w, http.StatusOK, buildStoreResponses(stores))
	}
}

func (h *Handler) storeDetailHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		idParam := strings.TrimSpace(chi.URLParam(r, "id"))
		if _, err := primitive.ObjectIDFromHex(idParam); err != nil {
			writeJSON(h.logger, w, http.StatusBadRequest, map[string]string{"error": "el ID de la tienda es inválido"})
			return
		}

		store, err := h.storeQueries.Detail(ctx, idParam)
		if err != nil {
			if errors.Is(err, mongo.ErrNoDocuments) {
				writeJSON(h.logger, w, http.StatusNotFound, map[string]string{"error": "tienda no encontrada"})
				return
			}
			h.logger.Error().Err(err).Str("id", idParam).Msg("fallo al obtener la tienda")
			writeJSON(h.logger, w, http.StatusInternalServerError, map[string]string{"error": "no se pudo obtener la tienda"})
			return
		}

		writeJSON(h.logger, w, http.StatusOK, buildStoreResponse(*store))
	}
}
