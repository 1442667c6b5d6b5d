package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Macronutrients struct {
	Proteins      float64 `bson:"proteins" json:"proteins"`
	Carbohydrates float64 `bson:"carbohydrates" json:"carbohydrates"`
	Fats          float64 `bson:"fats" json:"fats"`
}

// A catalog entry. Calories and macros are per 100g.
type FoodItem struct {
	ID             primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name           string             `bson:"name" json:"name"`
	Calories       float64            `bson:"calories" json:"calories"`
	Macronutrients Macronutrients     `bson:"macronutrients" json:"macronutrients"`
	CreatedAt      time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt      time.Time          `bson:"updatedAt" json:"updatedAt"`
}
