package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Contact represents a contact request left through the portfolio form
type Contact struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name      string             `bson:"name" json:"name"`
	Email     string             `bson:"email" json:"email"`
	CreatedAt time.Time          `bson:"createdAt" json:"createdAt"`
}

// CollectionName returns the collection contact requests are written to
func (Contact) CollectionName() string {
	return ContactCollection
}
