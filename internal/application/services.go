package application

import (
	"context"

	"github.com/vitrinalocal/services/api/internal/domain"
)

// StoreRepository abstracts persistence of stores and their embedded reviews.
type StoreRepository interface {
	Insert(ctx context.Context, store *domain.Store) error
	FindActive(ctx context.Context) ([]domain.Store, error)
	FindActiveByCategory(ctx context.Context, category string) ([]domain.Store, error)
	FindByID(ctx context.Context, id string) (*domain.Store, error)
	FindReviews(ctx context.Context, storeID string) ([]domain.Review, error)
	AppendReview(ctx context.Context, storeID string, review domain.Review) error
}

// PhotoUploader is the port to the external media hosting collaborator.
type PhotoUploader interface {
	Upload(ctx context.Context, upload PhotoUpload) (domain.Photo, error)
}

// PhotoUpload carries one image binary to the uploader together with
// the identifier it should be stored under.
type PhotoUpload struct {
	Data        []byte
	ContentType string
	PublicID    string
}

// PhotoAttachment is one file received with a create-store request.
type PhotoAttachment struct {
	Filename    string
	ContentType string
	Data        []byte
}

// CreateStoreCommand captures the validated multipart input for
// registering a store.
type CreateStoreCommand struct {
	Name             string
	Address          string
	Category         string
	WhatsappPhone    string
	SalesDescription string
	Website          string
	SocialMedia      string
	Photos           []PhotoAttachment
}

// SubmitReviewCommand captures the input for appending one review.
type SubmitReviewCommand struct {
	User    string
	Comment string
	Rating  int
}

// StoreQueryService describes store read use-cases.
type StoreQueryService interface {
	List(ctx context.Context) ([]domain.Store, error)
	ListByCategory(ctx context.Context, category string) ([]domain.Store, error)
	Detail(ctx context.Context, id string) (*domain.Store, error)
}

// StoreCommandService handles store registration.
type StoreCommandService interface {
	Create(ctx context.Context, cmd CreateStoreCommand) (*domain.Store, error)
}

// ReviewQueryService describes review read use-cases.
type ReviewQueryService interface {
	ListByStore(ctx context.Context, storeID string) ([]domain.Review, error)
}

// ReviewCommandService appends reviews to existing stores.
type ReviewCommandService interface {
	Append(ctx context.Context, storeID string, cmd SubmitReviewCommand) (*domain.Review, error)
}
