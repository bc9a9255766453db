package domain

import "time"

const (
	// MinRating is the lowest rating a review may carry.
	MinRating = 1
	// MaxRating is the highest rating a review may carry.
	MaxRating = 5
)

// Review is an immutable user rating embedded in exactly one store.
// Reviews have no identifier of their own and no independent lifecycle.
type Review struct {
	User    string
	Comment string
	Rating  int
	Date    time.Time
}
