package application

import (
	"context"
	"fmt"
	"strings"
	"time"
	"unicode"

	"github.com/rs/zerolog"
	"github.com/vitrinalocal/services/api/internal/domain"
)

// storeQueryService is the concrete implementation of StoreQueryService.
type storeQueryService struct {
	repo StoreRepository
}

// NewStoreQueryService creates a new store query service.
func NewStoreQueryService(repo StoreRepository) StoreQueryService {
	return &storeQueryService{repo: repo}
}

func (s *storeQueryService) List(ctx context.Context) ([]domain.Store, error) {
	return s.repo.FindActive(ctx)
}

func (s *storeQueryService) ListByCategory(ctx context.Context, category string) ([]domain.Store, error) {
	return s.repo.FindActiveByCategory(ctx, strings.TrimSpace(category))
}

func (s *storeQueryService) Detail(ctx context.Context, id string) (*domain.Store, error) {
	return s.repo.FindByID(ctx, id)
}

type storeCommandService struct {
	repo     StoreRepository
	uploader PhotoUploader
	logger   zerolog.Logger
}

// NewStoreCommandService creates the store registration service.
func NewStoreCommandService(repo StoreRepository, uploader PhotoUploader, logger zerolog.Logger) StoreCommandService {
	return &storeCommandService{repo: repo, uploader: uploader, logger: logger}
}

// Create uploads the attached photos one at a time, in input order, and
// persists the store. A failed upload drops that photo and continues;
// only a persistence failure aborts the request.
func (s *storeCommandService) Create(ctx context.Context, cmd CreateStoreCommand) (*domain.Store, error) {
	name := strings.TrimSpace(cmd.Name)
	batch := time.Now().UnixMilli()

	photos := make([]domain.Photo, 0, len(cmd.Photos))
	for i, attachment := range cmd.Photos {
		publicID := fmt.Sprintf("%d_%d_%s", batch, i, sanitizePublicID(name))
		photo, err := s.uploader.Upload(ctx, PhotoUpload{
			Data:        attachment.Data,
			ContentType: attachment.ContentType,
			PublicID:    publicID,
		})
		if err != nil {
			s.logger.Error().Err(err).
				Int("index", i).
				Str("filename", attachment.Filename).
				Msg("no se pudo subir la foto, se omite")
			continue
		}
		photos = append(photos, photo)
	}

	store := &domain.Store{
		Name:             name,
		Address:          strings.TrimSpace(cmd.Address),
		Category:         strings.TrimSpace(cmd.Category),
		WhatsappPhone:    digitsOnly(cmd.WhatsappPhone),
		Photos:           photos,
		SalesDescription: strings.TrimSpace(cmd.SalesDescription),
		Website:          strings.TrimSpace(cmd.Website),
		SocialMedia:      strings.TrimSpace(cmd.SocialMedia),
		CreatedAt:        time.Now().UTC(),
		Active:           true,
		Reviews:          []domain.Review{},
	}

	if err := s.repo.Insert(ctx, store); err != nil {
		return nil, err
	}
	return store, nil
}

// digitsOnly strips every non-digit rune from the stored phone number.
func digitsOnly(value string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsDigit(r) {
			return r
		}
		return -1
	}, value)
}

// sanitizePublicID collapses whitespace runs in the store name into
// underscores so the identifier is safe as an object key segment.
func sanitizePublicID(name string) string {
	return strings.Join(strings.Fields(name), "_")
}
