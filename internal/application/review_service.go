package application

import (
	"context"
	"strings"
	"time"

	"github.com/vitrinalocal/services/api/internal/domain"
)

type reviewQueryService struct {
	repo StoreRepository
}

// NewReviewQueryService creates the review read service.
func NewReviewQueryService(repo StoreRepository) ReviewQueryService {
	return &reviewQueryService{repo: repo}
}

func (s *reviewQueryService) ListByStore(ctx context.Context, storeID string) ([]domain.Review, error) {
	return s.repo.FindReviews(ctx, storeID)
}

type reviewCommandService struct {
	repo StoreRepository
}

// NewReviewCommandService creates the review append service.
func NewReviewCommandService(repo StoreRepository) ReviewCommandService {
	return &reviewCommandService{repo: repo}
}

// Append attaches one review to the store's embedded sequence. The
// rating bound is enforced by the persistence layer, not here.
func (s *reviewCommandService) Append(ctx context.Context, storeID string, cmd SubmitReviewCommand) (*domain.Review, error) {
	review := domain.Review{
		User:    strings.TrimSpace(cmd.User),
		Comment: strings.TrimSpace(cmd.Comment),
		Rating:  cmd.Rating,
		Date:    time.Now().UTC(),
	}

	if err := s.repo.AppendReview(ctx, storeID, review); err != nil {
		return nil, err
	}
	return &review, nil
}
