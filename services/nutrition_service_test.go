package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/niravp-mindfire/fitness-tracking-app-sub001/models"
)

func TestSumCaloriesEmpty(t *testing.T) {
	assert.Zero(t, sumCalories(nil, nil))
	assert.Zero(t, sumCalories([]models.MealFoodItem{}, map[primitive.ObjectID]float64{}))
}

func TestSumCaloriesMultipliesByQuantity(t *testing.T) {
	rice := primitive.NewObjectID()
	egg := primitive.NewObjectID()
	calories := map[primitive.ObjectID]float64{rice: 130, egg: 78}

	items := []models.MealFoodItem{
		{FoodID: rice, Quantity: 2},
		{FoodID: egg, Quantity: 3},
	}
	assert.InDelta(t, 2*130+3*78, sumCalories(items, calories), 1e-9)
}

func TestSumCaloriesZeroQuantity(t *testing.T) {
	rice := primitive.NewObjectID()
	calories := map[primitive.ObjectID]float64{rice: 130}

	items := []models.MealFoodItem{{FoodID: rice, Quantity: 0}}
	assert.Zero(t, sumCalories(items, calories))
}

// A food id with no catalog entry contributes zero rather than failing
// the whole meal, matching how stale references are tolerated on reads.
func TestSumCaloriesMissingFoodContributesZero(t *testing.T) {
	rice := primitive.NewObjectID()
	gone := primitive.NewObjectID()
	calories := map[primitive.ObjectID]float64{rice: 130}

	items := []models.MealFoodItem{
		{FoodID: rice, Quantity: 1},
		{FoodID: gone, Quantity: 5},
	}
	assert.InDelta(t, 130, sumCalories(items, calories), 1e-9)
}

func TestSumCaloriesFractionalQuantity(t *testing.T) {
	oats := primitive.NewObjectID()
	calories := map[primitive.ObjectID]float64{oats: 380}

	items := []models.MealFoodItem{{FoodID: oats, Quantity: 0.5}}
	assert.InDelta(t, 190, sumCalories(items, calories), 1e-9)
}
