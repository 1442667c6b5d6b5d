package services

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/niravp-mindfire/fitness-tracking-app-sub001/models"
	"github.com/niravp-mindfire/fitness-tracking-app-sub001/store"
)

// NutritionService manages tracked eating days and their meals. A meal's
// totalCalories is derived server-side from the food catalog on every
// write that touches its food items.
type NutritionService struct {
	db *mongo.Database
}

func NewNutritionService(db *mongo.Database) *NutritionService {
	return &NutritionService{db: db}
}

func (s *NutritionService) days() *mongo.Collection {
	return s.db.Collection("nutrition")
}

func (s *NutritionService) meals() *mongo.Collection {
	return s.db.Collection("nutrition_meals")
}

func (s *NutritionService) List(ctx context.Context, userID primitive.ObjectID, p store.ListParams) ([]models.Nutrition, store.PageInfo, error) {
	spec := store.Spec{
		Scope:        bson.M{"userId": userID},
		SearchFields: []string{"notes"},
		DateField:    "date",
		DefaultSort:  "date",
		DefaultDesc:  true,
	}
	filter := spec.Filter(p)

	total, err := s.days().CountDocuments(ctx, filter)
	if err != nil {
		return nil, store.PageInfo{}, err
	}
	cursor, err := s.days().Find(ctx, filter, spec.FindOptions(p))
	if err != nil {
		return nil, store.PageInfo{}, err
	}
	entries := []models.Nutrition{}
	if err := cursor.All(ctx, &entries); err != nil {
		return nil, store.PageInfo{}, err
	}
	return entries, store.NewPageInfo(p, total), nil
}

func (s *NutritionService) GetByID(ctx context.Context, userID, id primitive.ObjectID) (*models.Nutrition, error) {
	var day models.Nutrition
	err := s.days().FindOne(ctx, bson.M{"_id": id, "userId": userID}).Decode(&day)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &day, nil
}

type CreateNutritionInput struct {
	Date  time.Time `json:"date" binding:"required"`
	Notes string    `json:"notes"`
}

func (s *NutritionService) Create(ctx context.Context, userID primitive.ObjectID, input CreateNutritionInput) (*models.Nutrition, error) {
	now := time.Now().UTC()
	day := &models.Nutrition{
		UserID:    userID,
		Date:      input.Date,
		Notes:     input.Notes,
		CreatedAt: now,
		UpdatedAt: now,
	}
	res, err := s.days().InsertOne(ctx, day)
	if err != nil {
		return nil, err
	}
	day.ID = res.InsertedID.(primitive.ObjectID)
	return day, nil
}

type UpdateNutritionInput struct {
	Date  *time.Time `json:"date"`
	Notes *string    `json:"notes"`
}

func (s *NutritionService) Update(ctx context.Context, userID, id primitive.ObjectID, input UpdateNutritionInput) (*models.Nutrition, error) {
	set := bson.M{"updatedAt": time.Now().UTC()}
	if input.Date != nil {
		set["date"] = *input.Date
	}
	if input.Notes != nil {
		set["notes"] = *input.Notes
	}

	res, err := s.days().UpdateOne(ctx, bson.M{"_id": id, "userId": userID}, bson.M{"$set": set})
	if err != nil {
		return nil, err
	}
	if res.MatchedCount == 0 {
		return nil, ErrNotFound
	}
	return s.GetByID(ctx, userID, id)
}

func (s *NutritionService) Delete(ctx context.Context, userID, id primitive.ObjectID) error {
	res, err := s.days().DeleteOne(ctx, bson.M{"_id": id, "userId": userID})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}
	// meals have no life without their day
	_, err = s.meals().DeleteMany(ctx, bson.M{"nutritionId": id})
	return err
}

// --- meals within a tracked day ---

func (s *NutritionService) ListMeals(ctx context.Context, userID, nutritionID primitive.ObjectID) ([]models.NutritionMeal, error) {
	if _, err := s.GetByID(ctx, userID, nutritionID); err != nil {
		return nil, err
	}
	cursor, err := s.meals().Find(ctx, bson.M{"nutritionId": nutritionID})
	if err != nil {
		return nil, err
	}
	meals := []models.NutritionMeal{}
	if err := cursor.All(ctx, &meals); err != nil {
		return nil, err
	}
	return meals, nil
}

type CreateNutritionMealInput struct {
	MealType  string              `json:"mealType" binding:"required"`
	FoodItems []MealFoodItemInput `json:"foodItems" binding:"dive"`
}

func (s *NutritionService) CreateMeal(ctx context.Context, userID, nutritionID primitive.ObjectID, input CreateNutritionMealInput) (*models.NutritionMeal, error) {
	if _, err := s.GetByID(ctx, userID, nutritionID); err != nil {
		return nil, err
	}
	items, err := mealFoodItemsFromInput(input.FoodItems)
	if err != nil {
		return nil, err
	}
	total, err := s.computeTotalCalories(ctx, items)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	meal := &models.NutritionMeal{
		NutritionID:   nutritionID,
		MealType:      input.MealType,
		FoodItems:     items,
		TotalCalories: total,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	res, err := s.meals().InsertOne(ctx, meal)
	if err != nil {
		return nil, err
	}
	meal.ID = res.InsertedID.(primitive.ObjectID)
	return meal, nil
}

// getOwnedMeal resolves a meal and checks that its parent day belongs to
// the caller. A miss either way reads as not-found.
func (s *NutritionService) getOwnedMeal(ctx context.Context, userID, id primitive.ObjectID) (*models.NutritionMeal, error) {
	var meal models.NutritionMeal
	err := s.meals().FindOne(ctx, bson.M{"_id": id}).Decode(&meal)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	if _, err := s.GetByID(ctx, userID, meal.NutritionID); err != nil {
		return nil, err
	}
	return &meal, nil
}

func (s *NutritionService) GetMeal(ctx context.Context, userID, id primitive.ObjectID) (*models.NutritionMeal, error) {
	return s.getOwnedMeal(ctx, userID, id)
}

type UpdateNutritionMealInput struct {
	MealType  *string              `json:"mealType"`
	FoodItems *[]MealFoodItemInput `json:"foodItems" binding:"omitempty,dive"`
}

// UpdateMeal recomputes totalCalories whenever foodItems change; the
// stored value is never taken from the client.
func (s *NutritionService) UpdateMeal(ctx context.Context, userID, id primitive.ObjectID, input UpdateNutritionMealInput) (*models.NutritionMeal, error) {
	meal, err := s.getOwnedMeal(ctx, userID, id)
	if err != nil {
		return nil, err
	}

	set := bson.M{"updatedAt": time.Now().UTC()}
	if input.MealType != nil {
		set["mealType"] = *input.MealType
	}
	if input.FoodItems != nil {
		items, err := mealFoodItemsFromInput(*input.FoodItems)
		if err != nil {
			return nil, err
		}
		total, err := s.computeTotalCalories(ctx, items)
		if err != nil {
			return nil, err
		}
		set["foodItems"] = items
		set["totalCalories"] = total
	}

	if _, err := s.meals().UpdateByID(ctx, meal.ID, bson.M{"$set": set}); err != nil {
		return nil, err
	}

	var updated models.NutritionMeal
	if err := s.meals().FindOne(ctx, bson.M{"_id": meal.ID}).Decode(&updated); err != nil {
		return nil, err
	}
	return &updated, nil
}

func (s *NutritionService) DeleteMeal(ctx context.Context, userID, id primitive.ObjectID) error {
	meal, err := s.getOwnedMeal(ctx, userID, id)
	if err != nil {
		return err
	}
	_, err = s.meals().DeleteOne(ctx, bson.M{"_id": meal.ID})
	return err
}

// computeTotalCalories batches the food lookups into one $in query and
// sums calories × quantity.
func (s *NutritionService) computeTotalCalories(ctx context.Context, items []models.MealFoodItem) (float64, error) {
	ids := make([]primitive.ObjectID, 0, len(items))
	for _, it := range items {
		ids = append(ids, it.FoodID)
	}
	caloriesByID, err := fetchFoodCalories(ctx, s.db, ids)
	if err != nil {
		return 0, err
	}
	return sumCalories(items, caloriesByID), nil
}

// sumCalories treats quantity as a direct multiplier of the food's
// calorie value. A dangling food reference contributes zero instead of
// failing the whole computation.
func sumCalories(items []models.MealFoodItem, caloriesByID map[primitive.ObjectID]float64) float64 {
	var total float64
	for _, it := range items {
		total += caloriesByID[it.FoodID] * it.Quantity
	}
	return total
}
