package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// MealFoodItem is one line of a meal: a food reference and a quantity
// multiplier applied to the food's per-100g values.
type MealFoodItem struct {
	FoodID   primitive.ObjectID `bson:"foodId" json:"foodId"`
	Quantity float64            `bson:"quantity" json:"quantity"`
}

// PlanMeal is embedded in a meal plan; no identity outside its parent.
type PlanMeal struct {
	MealType  string         `bson:"mealType" json:"mealType"` // "breakfast" | "lunch" | ...
	FoodItems []MealFoodItem `bson:"foodItems" json:"foodItems"`
}

type MealPlan struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	UserID      primitive.ObjectID `bson:"userId" json:"userId"`
	Title       string             `bson:"title" json:"title"`
	Description string             `bson:"description,omitempty" json:"description,omitempty"`
	Meals       []PlanMeal         `bson:"meals" json:"meals"`
	Duration    int                `bson:"duration" json:"duration"` // days
	CreatedAt   time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt   time.Time          `bson:"updatedAt" json:"updatedAt"`
}
