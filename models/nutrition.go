package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Nutrition is one tracked day of eating.
type Nutrition struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	UserID    primitive.ObjectID `bson:"userId" json:"userId"`
	Date      time.Time          `bson:"date" json:"date"`
	Notes     string             `bson:"notes,omitempty" json:"notes,omitempty"`
	CreatedAt time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt time.Time          `bson:"updatedAt" json:"updatedAt"`
}

// NutritionMeal is one meal inside a tracked day. TotalCalories is derived
// from the food items and recomputed server-side on every write that
// touches FoodItems; it is never trusted from the client.
type NutritionMeal struct {
	ID            primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	NutritionID   primitive.ObjectID `bson:"nutritionId" json:"nutritionId"`
	MealType      string             `bson:"mealType" json:"mealType"`
	FoodItems     []MealFoodItem     `bson:"foodItems" json:"foodItems"`
	TotalCalories float64            `bson:"totalCalories" json:"totalCalories"`
	CreatedAt     time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt     time.Time          `bson:"updatedAt" json:"updatedAt"`
}
