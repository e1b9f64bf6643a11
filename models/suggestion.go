package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Suggestion represents a book suggestion
type Suggestion struct {
	ID         primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Suggestion string             `bson:"suggestion" json:"suggestion"`
	CreatedAt  time.Time          `bson:"createdAt" json:"createdAt"`
}

func (Suggestion) CollectionName() string {
	return SuggestionCollection
}
