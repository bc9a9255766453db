package domain

import "time"

// Photo holds the public URL and storage identifier returned by the
// media hosting service for one uploaded image.
type Photo struct {
	URL       string
	StorageID string
}

// Store represents one registered business listing.
type Store struct {
	ID               string
	Name             string
	Address          string
	Category         string
	WhatsappPhone    string
	Photos           []Photo
	SalesDescription string
	Website          string
	SocialMedia      string
	CreatedAt        time.Time
	Active           bool
	Reviews          []Review
}
