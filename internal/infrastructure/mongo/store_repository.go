package mongo

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/vitrinalocal/services/api/internal/domain"
)

// ErrDocumentValidation is returned when a document violates the
// collection schema, e.g. a review rating outside 1-5. Handlers treat
// it as a persistence failure, not as client input error.
var ErrDocumentValidation = errors.New("el documento no cumple el esquema")

// StoreRepository implements application.StoreRepository using MongoDB.
type StoreRepository struct {
	collection *mongo.Collection
}

// NewStoreRepository creates a new Mongo-backed store repository.
func NewStoreRepository(db *mongo.Database, collectionName string) *StoreRepository {
	return &StoreRepository{collection: db.Collection(collectionName)}
}

// Insert persists a new store document and writes the generated
// identifier back into the domain entity.
func (r *StoreRepository) Insert(ctx context.Context, store *domain.Store) error {
	doc := toStoreDocument(*store)
	doc.ID = primitive.NewObjectID()
	if _, err := r.collection.InsertOne(ctx, doc); err != nil {
		return err
	}
	store.ID = doc.ID.Hex()
	return nil
}

// FindActive returns every active store, ascending by name.
func (r *StoreRepository) FindActive(ctx context.Context) ([]domain.Store, error) {
	return r.findSorted(ctx, bson.M{"active": true})
}

// FindActiveByCategory returns active stores with an exact category
// match, ascending by name. Unknown categories yield an empty slice.
func (r *StoreRepository) FindActiveByCategory(ctx context.Context, category string) ([]domain.Store, error) {
	return r.findSorted(ctx, bson.M{"active": true, "category": category})
}

func (r *StoreRepository) findSorted(ctx context.Context, filter bson.M) ([]domain.Store, error) {
	opts := options.Find().SetSort(bson.D{{Key: "name", Value: 1}})
	cursor, err := r.collection.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	stores := make([]domain.Store, 0)
	for cursor.Next(ctx) {
		var doc StoreDocument
		if err := cursor.Decode(&doc); err != nil {
			return nil, err
		}
		stores = append(stores, mapStoreDocument(doc))
	}
	if err := cursor.Err(); err != nil {
		return nil, err
	}
	return stores, nil
}

// FindByID returns a single store by its identifier. Direct fetches do
// not filter on the active flag.
func (r *StoreRepository) FindByID(ctx context.Context, id string) (*domain.Store, error) {
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, err
	}
	var doc StoreDocument
	if err := r.collection.FindOne(ctx, bson.M{"_id": objectID}).Decode(&doc); err != nil {
		return nil, err
	}
	store := mapStoreDocument(doc)
	return &store, nil
}

// FindReviews returns only the embedded reviews of one store.
func (r *StoreRepository) FindReviews(ctx context.Context, storeID string) ([]domain.Review, error) {
	objectID, err := primitive.ObjectIDFromHex(storeID)
	if err != nil {
		return nil, err
	}

	opts := options.FindOne().SetProjection(bson.M{"reviews": 1})
	var doc StoreDocument
	if err := r.collection.FindOne(ctx, bson.M{"_id": objectID}, opts).Decode(&doc); err != nil {
		return nil, err
	}
	return mapReviewDocuments(doc.Reviews), nil
}

// AppendReview pushes one review onto the store's embedded sequence.
// The push is atomic, so concurrent appends to the same store do not
// overwrite each other. Returns mongo.ErrNoDocuments when the store is
// absent.
func (r *StoreRepository) AppendReview(ctx context.Context, storeID string, review domain.Review) error {
	objectID, err := primitive.ObjectIDFromHex(storeID)
	if err != nil {
		return err
	}
	if review.Rating < domain.MinRating || review.Rating > domain.MaxRating {
		return fmt.Errorf("%w: rating %d fuera del rango %d-%d",
			ErrDocumentValidation, review.Rating, domain.MinRating, domain.MaxRating)
	}

	update := bson.M{"$push": bson.M{"reviews": toReviewDocument(review)}}
	result, err := r.collection.UpdateByID(ctx, objectID, update)
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}

func toStoreDocument(store domain.Store) StoreDocument {
	photos := make([]PhotoDocument, 0, len(store.Photos))
	for _, photo := range store.Photos {
		photos = append(photos, PhotoDocument{URL: photo.URL, StorageID: photo.StorageID})
	}
	reviews := make([]ReviewDocument, 0, len(store.Reviews))
	for _, review := range store.Reviews {
		reviews = append(reviews, toReviewDocument(review))
	}

	return StoreDocument{
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
		Reviews:          reviews,
	}
}

func toReviewDocument(review domain.Review) ReviewDocument {
	return ReviewDocument{
		User:    review.User,
		Comment: review.Comment,
		Rating:  review.Rating,
		Date:    review.Date,
	}
}

func mapStoreDocument(doc StoreDocument) domain.Store {
	photos := make([]domain.Photo, 0, len(doc.Photos))
	for _, photo := range doc.Photos {
		photos = append(photos, domain.Photo{URL: photo.URL, StorageID: photo.StorageID})
	}

	return domain.Store{
		ID:               doc.ID.Hex(),
		Name:             doc.Name,
		Address:          doc.Address,
		Category:         doc.Category,
		WhatsappPhone:    doc.WhatsappPhone,
		Photos:           photos,
		SalesDescription: doc.SalesDescription,
		Website:          doc.Website,
		SocialMedia:      doc.SocialMedia,
		CreatedAt:        doc.CreatedAt,
		Active:           doc.Active,
		Reviews:          mapReviewDocuments(doc.Reviews),
	}
}

func mapReviewDocuments(docs []ReviewDocument) []domain.Review {
	reviews := make([]domain.Review, 0, len(docs))
	for _, doc := range docs {
		reviews = append(reviews, domain.Review{
			User:    doc.User,
			Comment: doc.Comment,
			Rating:  doc.Rating,
			Date:    doc.Date,
		})
	}
	return reviews
}
