package mongo

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// StoreDocument is the MongoDB schema of one registered store.
type StoreDocument struct {
	ID               primitive.ObjectID `bson:"_id"`
	Name             string             `bson:"name"`
	Address          string             `bson:"address"`
	Category         string             `bson:"category"`
	WhatsappPhone    string             `bson:"whatsappPhone"`
	Photos           []PhotoDocument    `bson:"photos"`
	SalesDescription string             `bson:"salesDescription"`
	Website          string             `bson:"website,omitempty"`
	SocialMedia      string             `bson:"socialMedia,omitempty"`
	CreatedAt        time.Time          `bson:"createdAt"`
	Active           bool               `bson:"active"`
	Reviews          []ReviewDocument   `bson:"reviews"`
}

// PhotoDocument stores the media service's answer for one uploaded image.
type PhotoDocument struct {
	URL       string `bson:"url"`
	StorageID string `bson:"storageId"`
}

// ReviewDocument is the embedded schema of one review. Reviews carry no
// `_id`: they exist only inside their parent store.
type ReviewDocument struct {
	User    string    `bson:"user"`
	Comment string    `bson:"comment,omitempty"`
	Rating  int       `bson:"rating"`
	Date    time.Time `bson:"date"`
}
