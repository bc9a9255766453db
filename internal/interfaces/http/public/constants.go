package public

const (
	// MaxStorePhotoCount limits the photos accepted per store.
	MaxStorePhotoCount = 3
	// MaxPhotoBytes limits each uploaded photo file.
	MaxPhotoBytes = 5 << 20
	// MaxCreateRequestBody limits the whole multipart create request.
	MaxCreateRequestBody = 10 << 20
	// MaxReviewRequestBody limits JSON bodies on the review endpoint.
	MaxReviewRequestBody = 1 << 20
)
