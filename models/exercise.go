package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// A catalog entry. Exercises are global, not owned by a user.
type Exercise struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name        string             `bson:"name" json:"name"`
	Type        string             `bson:"type,omitempty" json:"type,omitempty"` // "strength" | "cardio" | ...
	Description string             `bson:"description,omitempty" json:"description,omitempty"`
	Category    string             `bson:"category,omitempty" json:"category,omitempty"`
	CreatedAt   time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt   time.Time          `bson:"updatedAt" json:"updatedAt"`
}
