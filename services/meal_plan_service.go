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

type MealPlanService struct {
	db *mongo.Database
}

func NewMealPlanService(db *mongo.Database) *MealPlanService {
	return &MealPlanService{db: db}
}

func (s *MealPlanService) coll() *mongo.Collection {
	return s.db.Collection("meal_plans")
}

func (s *MealPlanService) List(ctx context.Context, userID primitive.ObjectID, p store.ListParams) ([]models.MealPlan, store.PageInfo, error) {
	spec := store.Spec{
		Scope:        bson.M{"userId": userID},
		SearchFields: []string{"title", "description"},
		DateField:    "createdAt",
		DefaultSort:  "createdAt",
		DefaultDesc:  true,
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
	plans := []models.MealPlan{}
	if err := cursor.All(ctx, &plans); err != nil {
		return nil, store.PageInfo{}, err
	}
	return plans, store.NewPageInfo(p, total), nil
}

// MealPlanDetail resolves every referenced food item in one batched read
// after the primary fetch.
type MealPlanDetail struct {
	models.MealPlan
	FoodCatalog []models.FoodItem `json:"foodCatalog"`
}

func (s *MealPlanService) GetByID(ctx context.Context, userID, id primitive.ObjectID) (*MealPlanDetail, error) {
	var plan models.MealPlan
	err := s.coll().FindOne(ctx, bson.M{"_id": id, "userId": userID}).Decode(&plan)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	seen := map[primitive.ObjectID]bool{}
	ids := []primitive.ObjectID{}
	for _, m := range plan.Meals {
		for _, fi := range m.FoodItems {
			if !seen[fi.FoodID] {
				seen[fi.FoodID] = true
				ids = append(ids, fi.FoodID)
			}
		}
	}
	foods, err := fetchFoodItems(ctx, s.db, ids)
	if err != nil {
		return nil, err
	}
	return &MealPlanDetail{MealPlan: plan, FoodCatalog: foods}, nil
}

type MealFoodItemInput struct {
	FoodID   string  `json:"foodId" binding:"required"`
	Quantity float64 `json:"quantity" binding:"required,gt=0"`
}

type PlanMealInput struct {
	MealType  string              `json:"mealType" binding:"required"`
	FoodItems []MealFoodItemInput `json:"foodItems" binding:"dive"`
}

func mealFoodItemsFromInput(in []MealFoodItemInput) ([]models.MealFoodItem, error) {
	out := make([]models.MealFoodItem, 0, len(in))
	for _, fi := range in {
		oid, err := primitive.ObjectIDFromHex(fi.FoodID)
		if err != nil {
			return nil, errors.New("invalid foodId")
		}
		out = append(out, models.MealFoodItem{FoodID: oid, Quantity: fi.Quantity})
	}
	return out, nil
}

func planMealsFromInput(in []PlanMealInput) ([]models.PlanMeal, error) {
	out := make([]models.PlanMeal, 0, len(in))
	for _, m := range in {
		items, err := mealFoodItemsFromInput(m.FoodItems)
		if err != nil {
			return nil, err
		}
		out = append(out, models.PlanMeal{MealType: m.MealType, FoodItems: items})
	}
	return out, nil
}

type CreateMealPlanInput struct {
	Title       string          `json:"title" binding:"required"`
	Description string          `json:"description"`
	Meals       []PlanMealInput `json:"meals" binding:"dive"`
	Duration    int             `json:"duration" binding:"omitempty,gt=0"`
}

func (s *MealPlanService) Create(ctx context.Context, userID primitive.ObjectID, input CreateMealPlanInput) (*models.MealPlan, error) {
	meals, err := planMealsFromInput(input.Meals)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	plan := &models.MealPlan{
		UserID:      userID,
		Title:       input.Title,
		Description: input.Description,
		Meals:       meals,
		Duration:    input.Duration,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	res, err := s.coll().InsertOne(ctx, plan)
	if err != nil {
		return nil, err
	}
	plan.ID = res.InsertedID.(primitive.ObjectID)
	return plan, nil
}

type UpdateMealPlanInput struct {
	Title       *string          `json:"title"`
	Description *string          `json:"description"`
	Meals       *[]PlanMealInput `json:"meals" binding:"omitempty,dive"`
	Duration    *int             `json:"duration" binding:"omitempty,gt=0"`
}

func (s *MealPlanService) Update(ctx context.Context, userID, id primitive.ObjectID, input UpdateMealPlanInput) (*models.MealPlan, error) {
	set := bson.M{"updatedAt": time.Now().UTC()}
	if input.Title != nil {
		set["title"] = *input.Title
	}
	if input.Description != nil {
		set["description"] = *input.Description
	}
	if input.Meals != nil {
		meals, err := planMealsFromInput(*input.Meals)
		if err != nil {
			return nil, err
		}
		set["meals"] = meals
	}
	if input.Duration != nil {
		set["duration"] = *input.Duration
	}

	res, err := s.coll().UpdateOne(ctx, bson.M{"_id": id, "userId": userID}, bson.M{"$set": set})
	if err != nil {
		return nil, err
	}
	if res.MatchedCount == 0 {
		return nil, ErrNotFound
	}

	var plan models.MealPlan
	if err := s.coll().FindOne(ctx, bson.M{"_id": id}).Decode(&plan); err != nil {
		return nil, err
	}
	return &plan, nil
}

func (s *MealPlanService) Delete(ctx context.Context, userID, id primitive.ObjectID) error {
	res, err := s.coll().DeleteOne(ctx, bson.M{"_id": id, "userId": userID})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}
