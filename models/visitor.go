package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Visitor represents feedback left by a site visitor.
// LinkedIn and Feedback are nil when the visitor did not send them.
type Visitor struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name      string             `bson:"name" json:"name"`
	LinkedIn  *string            `bson:"linkedin,omitempty" json:"linkedin,omitempty"`
	Feedback  *string            `bson:"feedback,omitempty" json:"feedback,omitempty"`
	CreatedAt time.Time          `bson:"createdAt" json:"createdAt"`
}

func (Visitor) CollectionName() string {
	return VisitorCollection
}
