package application

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/vitrinalocal/services/api/internal/domain"
)

type fakeUploader struct {
	failIndexes map[int]bool
	calls       []PhotoUpload
}

func (f *fakeUploader) Upload(_ context.Context, upload PhotoUpload) (domain.Photo, error) {
	index := len(f.calls)
	f.calls = append(f.calls, upload)
	if f.failIndexes[index] {
		return domain.Photo{}, errors.New("upload rechazado")
	}
	return domain.Photo{
		URL:       "https://cdn.example/" + upload.PublicID,
		StorageID: upload.PublicID,
	}, nil
}

type fakeRepo struct {
	inserted  []domain.Store
	insertErr error
}

func (f *fakeRepo) Insert(_ context.Context, store *domain.Store) error {
	if f.insertErr != nil {
		return f.insertErr
	}
	store.ID = fmt.Sprintf("%024x", len(f.inserted)+1)
	f.inserted = append(f.inserted, *store)
	return nil
}

func (f *fakeRepo) FindActive(context.Context) ([]domain.Store, error) {
	return nil, nil
}

func (f *fakeRepo) FindActiveByCategory(context.Context, string) ([]domain.Store, error) {
	return nil, nil
}

func (f *fakeRepo) FindByID(context.Context, string) (*domain.Store, error) {
	return nil, mongo.ErrNoDocuments
}

func (f *fakeRepo) FindReviews(context.Context, string) ([]domain.Review, error) {
	return nil, mongo.ErrNoDocuments
}

func (f *fakeRepo) AppendReview(context.Context, string, domain.Review) error {
	return mongo.ErrNoDocuments
}

func newCreateCommand(photos ...PhotoAttachment) CreateStoreCommand {
	return CreateStoreCommand{
		Name:             "  Pizzería Don Carlos  ",
		Address:          "Calle 45 #12-30",
		Category:         "Pizzerías",
		WhatsappPhone:    "+57 (300) 123-4567",
		SalesDescription: "Pizza artesanal.",
		Photos:           photos,
	}
}

func TestCreateNormalizesFields(t *testing.T) {
	repo := &fakeRepo{}
	service := NewStoreCommandService(repo, &fakeUploader{}, zerolog.Nop())

	store, err := service.Create(context.Background(), newCreateCommand())
	if err != nil {
		t.Fatal(err)
	}

	if store.Name != "Pizzería Don Carlos" {
		t.Fatalf("expected trimmed name, got %q", store.Name)
	}
	if store.WhatsappPhone != "573001234567" {
		t.Fatalf("expected digit-only phone, got %q", store.WhatsappPhone)
	}
	if !store.Active {
		t.Fatal("new stores must be active")
	}
	if store.CreatedAt.IsZero() {
		t.Fatal("createdAt must be set")
	}
	if store.Reviews == nil || len(store.Reviews) != 0 {
		t.Fatalf("expected empty reviews, got %v", store.Reviews)
	}
	if store.ID == "" {
		t.Fatal("expected identifier assigned on insert")
	}
	if len(repo.inserted) != 1 {
		t.Fatalf("expected 1 insert, got %d", len(repo.inserted))
	}
}

func TestCreateUploadsSequentiallyInOrder(t *testing.T) {
	uploader := &fakeUploader{}
	service := NewStoreCommandService(&fakeRepo{}, uploader, zerolog.Nop())

	cmd := newCreateCommand(
		PhotoAttachment{Filename: "a.jpg", ContentType: "image/jpeg", Data: []byte("a")},
		PhotoAttachment{Filename: "b.jpg", ContentType: "image/jpeg", Data: []byte("b")},
		PhotoAttachment{Filename: "c.jpg", ContentType: "image/jpeg", Data: []byte("c")},
	)

	store, err := service.Create(context.Background(), cmd)
	if err != nil {
		t.Fatal(err)
	}

	if len(store.Photos) != 3 {
		t.Fatalf("expected 3 photos, got %d", len(store.Photos))
	}
	for i, upload := range uploader.calls {
		if !strings.Contains(upload.PublicID, fmt.Sprintf("_%d_", i)) {
			t.Fatalf("publicID %q missing index %d", upload.PublicID, i)
		}
		if !strings.HasSuffix(upload.PublicID, "Pizzería_Don_Carlos") {
			t.Fatalf("publicID %q missing sanitized store name", upload.PublicID)
		}
	}
}

func TestCreateSkipsFailedUploads(t *testing.T) {
	uploader := &fakeUploader{failIndexes: map[int]bool{1: true}}
	service := NewStoreCommandService(&fakeRepo{}, uploader, zerolog.Nop())

	cmd := newCreateCommand(
		PhotoAttachment{Filename: "a.jpg", ContentType: "image/jpeg", Data: []byte("a")},
		PhotoAttachment{Filename: "b.jpg", ContentType: "image/jpeg", Data: []byte("b")},
		PhotoAttachment{Filename: "c.jpg", ContentType: "image/jpeg", Data: []byte("c")},
	)

	store, err := service.Create(context.Background(), cmd)
	if err != nil {
		t.Fatal(err)
	}

	if len(store.Photos) != 2 {
		t.Fatalf("expected 2 photos after one failure, got %d", len(store.Photos))
	}
	// Survivors keep input order: index 0 then index 2.
	if !strings.Contains(store.Photos[0].StorageID, "_0_") {
		t.Fatalf("first surviving photo out of order: %q", store.Photos[0].StorageID)
	}
	if !strings.Contains(store.Photos[1].StorageID, "_2_") {
		t.Fatalf("second surviving photo out of order: %q", store.Photos[1].StorageID)
	}
	if len(uploader.calls) != 3 {
		t.Fatalf("expected 3 upload attempts, got %d", len(uploader.calls))
	}
}

func TestCreatePropagatesInsertFailure(t *testing.T) {
	repo := &fakeRepo{insertErr: errors.New("mongo caído")}
	service := NewStoreCommandService(repo, &fakeUploader{}, zerolog.Nop())

	if _, err := service.Create(context.Background(), newCreateCommand()); err == nil {
		t.Fatal("expected insert failure to propagate")
	}
}

func TestDigitsOnly(t *testing.T) {
	cases := map[string]string{
		"+1 (555) 123-4567": "15551234567",
		"573001234567":      "573001234567",
		"tel: 300.111.22":   "30011122",
		"":                  "",
	}
	for input, want := range cases {
		if got := digitsOnly(input); got != want {
			t.Fatalf("digitsOnly(%q) = %q, want %q", input, got, want)
		}
	}
}

func TestSanitizePublicID(t *testing.T) {
	if got := sanitizePublicID("La  Tienda   de Ana"); got != "La_Tienda_de_Ana" {
		t.Fatalf("unexpected sanitized id %q", got)
	}
}
