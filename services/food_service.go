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

// FoodService manages the global food catalog (per-100g values).
type FoodService struct {
	db *mongo.Database
}

func NewFoodService(db *mongo.Database) *FoodService {
	return &FoodService{db: db}
}

func (s *FoodService) coll() *mongo.Collection {
	return s.db.Collection("food_items")
}

func (s *FoodService) List(ctx context.Context, p store.ListParams) ([]models.FoodItem, store.PageInfo, error) {
	spec := store.Spec{
		SearchFields: []string{"name"},
		DateField:    "createdAt",
		DefaultSort:  "name",
	}
	filter := spec.Filter(p)

	total, err := s.coll().CountDocuments(ctx, filter)
	if err != nil {
		return nil, store.PageInfo{}, err
	}
	cursor, err := s.coll().Find(ctx, filter, spec.FindOptions(p))
	if err != nil {
		return nil, store.PageInfo{}, err
	}
	foods := []models.FoodItem{}
	if err := cursor.All(ctx, &foods); err != nil {
		return nil, store.PageInfo{}, err
	}
	return foods, store.NewPageInfo(p, total), nil
}

func (s *FoodService) GetByID(ctx context.Context, id primitive.ObjectID) (*models.FoodItem, error) {
	var food models.FoodItem
	if err := s.coll().FindOne(ctx, bson.M{"_id": id}).Decode(&food); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &food, nil
}

type CreateFoodItemInput struct {
	Name           string                 `json:"name" binding:"required"`
	Calories       *float64               `json:"calories" binding:"required,gte=0"`
	Macronutrients *models.Macronutrients `json:"macronutrients" binding:"required"`
}

func (s *FoodService) Create(ctx context.Context, input CreateFoodItemInput) (*models.FoodItem, error) {
	now := time.Now().UTC()
	food := &models.FoodItem{
		Name:           input.Name,
		Calories:       *input.Calories,
		Macronutrients: *input.Macronutrients,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	res, err := s.coll().InsertOne(ctx, food)
	if err != nil {
		return nil, err
	}
	food.ID = res.InsertedID.(primitive.ObjectID)
	return food, nil
}

type UpdateFoodItemInput struct {
	Name           *string                `json:"name"`
	Calories       *float64               `json:"calories" binding:"omitempty,gte=0"`
	Macronutrients *models.Macronutrients `json:"macronutrients"`
}

func (s *FoodService) Update(ctx context.Context, id primitive.ObjectID, input UpdateFoodItemInput) (*models.FoodItem, error) {
	set := bson.M{"updatedAt": time.Now().UTC()}
	if input.Name != nil {
		set["name"] = *input.Name
	}
	if input.Calories != nil {
		set["calories"] = *input.Calories
	}
	if input.Macronutrients != nil {
		set["macronutrients"] = *input.Macronutrients
	}

	res, err := s.coll().UpdateByID(ctx, id, bson.M{"$set": set})
	if err != nil {
		return nil, err
	}
	if res.MatchedCount == 0 {
		return nil, ErrNotFound
	}
	return s.GetByID(ctx, id)
}

func (s *FoodService) Delete(ctx context.Context, id primitive.ObjectID) error {
	res, err := s.coll().DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}

// fetchFoodCalories is the batched fan-out read behind totalCalories and
// the populated meal-plan views.
func fetchFoodCalories(ctx context.Context, db *mongo.Database, ids []primitive.ObjectID) (map[primitive.ObjectID]float64, error) {
	byID := map[primitive.ObjectID]float64{}
	if len(ids) == 0 {
		return byID, nil
	}
	cursor, err := db.Collection("food_items").Find(ctx, bson.M{"_id": bson.M{"$in": ids}})
	if err != nil {
		return nil, err
	}
	var foods []models.FoodItem
	if err := cursor.All(ctx, &foods); err != nil {
		return nil, err
	}
	for _, f := range foods {
		byID[f.ID] = f.Calories
	}
	return byID, nil
}

func fetchFoodItems(ctx context.Context, db *mongo.Database, ids []primitive.ObjectID) ([]models.FoodItem, error) {
	if len(ids) == 0 {
		return []models.FoodItem{}, nil
	}
	cursor, err := db.Collection("food_items").Find(ctx, bson.M{"_id": bson.M{"$in": ids}})
	if err != nil {
		return nil, err
	}
	foods := []models.FoodItem{}
	if err := cursor.All(ctx, &foods); err != nil {
		return nil, err
	}
	return foods, nil
}
