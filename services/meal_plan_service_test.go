package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestPlanMealsFromInput(t *testing.T) {
	rice := primitive.NewObjectID()
	egg := primitive.NewObjectID()

	meals, err := planMealsFromInput([]PlanMealInput{
		{MealType: "breakfast", FoodItems: []MealFoodItemInput{
			{FoodID: egg.Hex(), Quantity: 2},
		}},
		{MealType: "lunch", FoodItems: []MealFoodItemInput{
			{FoodID: rice.Hex(), Quantity: 1.5},
		}},
	})
	require.NoError(t, err)
	require.Len(t, meals, 2)

	assert.Equal(t, "breakfast", meals[0].MealType)
	require.Len(t, meals[0].FoodItems, 1)
	assert.Equal(t, egg, meals[0].FoodItems[0].FoodID)
	assert.Equal(t, 2.0, meals[0].FoodItems[0].Quantity)

	assert.Equal(t, rice, meals[1].FoodItems[0].FoodID)
	assert.Equal(t, 1.5, meals[1].FoodItems[0].Quantity)
}

func TestPlanMealsFromInputBadFoodID(t *testing.T) {
	_, err := planMealsFromInput([]PlanMealInput{
		{MealType: "dinner", FoodItems: []MealFoodItemInput{
			{FoodID: "nope", Quantity: 1},
		}},
	})
	require.Error(t, err)
	assert.EqualError(t, err, "invalid foodId")
}

func TestPlanMealsFromInputEmpty(t *testing.T) {
	meals, err := planMealsFromInput(nil)
	require.NoError(t, err)
	assert.Empty(t, meals)
	assert.NotNil(t, meals)
}
