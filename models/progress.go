package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// One body-metrics entry. BodyFatPercentage and MuscleMass are optional;
// absent values are excluded from per-day averages.
type ProgressTracking struct {
	ID                primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	UserID            primitive.ObjectID `bson:"userId" json:"userId"`
	Date              time.Time          `bson:"date" json:"date"`
	Weight            float64            `bson:"weight" json:"weight"` // kg
	BodyFatPercentage *float64           `bson:"bodyFatPercentage,omitempty" json:"bodyFatPercentage,omitempty"`
	MuscleMass        *float64           `bson:"muscleMass,omitempty" json:"muscleMass,omitempty"`
	Notes             string             `bson:"notes,omitempty" json:"notes,omitempty"`
	CreatedAt         time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt         time.Time          `bson:"updatedAt" json:"updatedAt"`
}

// One point of the per-day averaged progress series.
type ProgressPoint struct {
	Date              string   `bson:"_id" json:"date"` // YYYY-MM-DD
	Weight            float64  `bson:"weight" json:"weight"`
	BodyFatPercentage *float64 `bson:"bodyFatPercentage" json:"bodyFatPercentage"`
}
