package mongo

import (
	"context"
	"errors"
	"testing"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/vitrinalocal/services/api/internal/domain"
)

func TestAppendReviewRejectsMalformedID(t *testing.T) {
	repo := &StoreRepository{}
	err := repo.AppendReview(context.Background(), "abc", domain.Review{User: "Ana", Rating: 3})
	if err == nil {
		t.Fatal("expected an error for a malformed identifier")
	}
}

func TestAppendReviewEnforcesRatingBound(t *testing.T) {
	// The bound check runs before any collection access, so a zero-value
	// repository is enough to exercise it.
	repo := &StoreRepository{}
	for _, rating := range []int{0, -1, 6, 9} {
		err := repo.AppendReview(context.Background(), "65a1b2c3d4e5f6a7b8c9d0e1", domain.Review{User: "Ana", Rating: rating})
		if !errors.Is(err, ErrDocumentValidation) {
			t.Fatalf("rating %d: expected ErrDocumentValidation, got %v", rating, err)
		}
	}
}

func TestStoreDocumentRoundTrip(t *testing.T) {
	now := time.Now().UTC().Truncate(time.Millisecond)
	store := domain.Store{
		Name:             "Pizzería Don Carlos",
		Address:          "Calle 45 #12-30",
		Category:         "Pizzerías",
		WhatsappPhone:    "573001234567",
		Photos:           []domain.Photo{{URL: "https://cdn.example/a.jpg", StorageID: "tiendas/a.jpg"}},
		SalesDescription: "Pizza artesanal.",
		Website:          "https://pizzeria.example",
		SocialMedia:      "https://instagram.com/pizzeria",
		CreatedAt:        now,
		Active:           true,
		Reviews: []domain.Review{
			{User: "Ana", Comment: "Excelente", Rating: 5, Date: now},
		},
	}

	doc := toStoreDocument(store)
	doc.ID = primitive.NewObjectID()
	got := mapStoreDocument(doc)

	if got.ID != doc.ID.Hex() {
		t.Fatalf("expected hex id %q, got %q", doc.ID.Hex(), got.ID)
	}
	if got.Name != store.Name || got.Address != store.Address || got.Category != store.Category {
		t.Fatalf("identity fields mangled: %+v", got)
	}
	if got.WhatsappPhone != store.WhatsappPhone {
		t.Fatalf("phone mangled: %q", got.WhatsappPhone)
	}
	if len(got.Photos) != 1 || got.Photos[0] != store.Photos[0] {
		t.Fatalf("photos mangled: %+v", got.Photos)
	}
	if !got.Active {
		t.Fatal("active flag mangled")
	}
	if len(got.Reviews) != 1 || got.Reviews[0] != store.Reviews[0] {
		t.Fatalf("reviews mangled: %+v", got.Reviews)
	}
	if !got.CreatedAt.Equal(now) {
		t.Fatalf("createdAt mangled: %v", got.CreatedAt)
	}
}

func TestMapReviewDocumentsEmpty(t *testing.T) {
	reviews := mapReviewDocuments(nil)
	if reviews == nil || len(reviews) != 0 {
		t.Fatalf("expected empty non-nil slice, got %v", reviews)
	}
}
