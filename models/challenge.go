package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Challenges are global; any authenticated user may read or join.
type Challenge struct {
	ID           primitive.ObjectID   `bson:"_id,omitempty" json:"id"`
	Title        string               `bson:"title" json:"title"`
	Description  string               `bson:"description" json:"description"`
	StartDate    time.Time            `bson:"startDate" json:"startDate"`
	EndDate      time.Time            `bson:"endDate" json:"endDate"`
	Participants []primitive.ObjectID `bson:"participants" json:"participants"`
	CreatedAt    time.Time            `bson:"createdAt" json:"createdAt"`
	UpdatedAt    time.Time            `bson:"updatedAt" json:"updatedAt"`
}
