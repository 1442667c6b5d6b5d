package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// PlanExercise is embedded in a plan; it has no identity of its own.
type PlanExercise struct {
	ExerciseID primitive.ObjectID `bson:"exerciseId" json:"exerciseId"`
	Sets       int                `bson:"sets" json:"sets"`
	Reps       int                `bson:"reps" json:"reps"`
}

type WorkoutPlan struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	UserID      primitive.ObjectID `bson:"userId" json:"userId"`
	Title       string             `bson:"title" json:"title"`
	Description string             `bson:"description,omitempty" json:"description,omitempty"`
	Exercises   []PlanExercise     `bson:"exercises" json:"exercises"`
	Duration    int                `bson:"duration" json:"duration"` // weeks
	CreatedAt   time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt   time.Time          `bson:"updatedAt" json:"updatedAt"`
}
