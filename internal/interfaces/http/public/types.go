package public

import (
	"time"

	"github.com/vitrinalocal/services/api/internal/domain"
)

type healthResponse struct {
	Status    string `json:"status"`
	Message   string `json:"message"`
	Timestamp string `json:"timestamp"`
}

type photoResponse struct {
	URL       string `json:"url"`
	StorageID string `json:"storageId"`
}

type reviewResponse struct {
	User    string    `json:"user"`
	Comment string    `json:"comment"`
	Rating  int       `json:"rating"`
	Date    time.Time `json:"date"`
}

type storeResponse struct {
	ID               string           `json:"id"`
	Name             string           `json:"name"`
	Address          string           `json:"address"`
	Category         string           `json:"category"`
	WhatsappPhone    string           `json:"whatsappPhone"`
	Photos           []photoResponse  `json:"photos"`
	SalesDescription string           `json:"salesDescription"`
	Website          string           `json:"website"`
	SocialMedia      string           `json:"socialMedia"`
	CreatedAt        time.Time        `json:"createdAt"`
	Active           bool             `json:"active"`
	Reviews          []reviewResponse `json:"reviews"`
}

type createStoreResponse struct {
	Message string        `json:"message"`
	Store   storeResponse `json:"store"`
}

type createReviewResponse struct {
	Message string         `json:"message"`
	Review  reviewResponse `json:"review"`
}

type submitReviewRequest struct {
	User    string `json:"user"`
	Comment string `json:"comment"`
	Rating  *int   `json:"rating"`
}

func buildStoreResponse(store domain.Store) storeResponse {
	photos := make([]photoResponse, 0, len(store.Photos))
	for _, photo := range store.Photos {
		photos = append(photos, photoResponse{URL: photo.URL, StorageID: photo.StorageID})
	}

	return storeResponse{
		ID:               store.ID,
		Name:             store.Name,
		Address:          store.Address,
		Category:         store.Category,
		WhatsappPhone:    store.WhatsappPhone,
		Photos:           photos,
		SalesDescription: store.SalesDescription,
		Website:          store.Website,
		SocialMedia:      store.SocialMedia,
		CreatedAt:        store.CreatedAt,
		Active:           store.Active,
		Reviews:          buildReviewResponses(store.Reviews),
	}
}

func buildStoreResponses(stores []domain.Store) []storeResponse {
	items := make([]storeResponse, 0, len(stores))
	for _, store := range stores {
		items = append(items, buildStoreResponse(store))
	}
	return items
}

func buildReviewResponse(review domain.Review) reviewResponse {
	return reviewResponse{
		User:    review.User,
		Comment: review.Comment,
		Rating:  review.Rating,
		Date:    review.Date,
	}
}

func buildReviewResponses(reviews []domain.Review) []reviewResponse {
	items := make([]reviewResponse, 0, len(reviews))
	for _, review := range reviews {
		items = append(items, buildReviewResponse(review))
	}
	return items
}
