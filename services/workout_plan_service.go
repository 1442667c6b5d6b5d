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

type WorkoutPlanService struct {
	db *mongo.Database
}

func NewWorkoutPlanService(db *mongo.Database) *WorkoutPlanService {
	return &WorkoutPlanService{db: db}
}

func (s *WorkoutPlanService) coll() *mongo.Collection {
	return s.db.Collection("workout_plans")
}

func (s *WorkoutPlanService) List(ctx context.Context, userID primitive.ObjectID, p store.ListParams) ([]models.WorkoutPlan, store.PageInfo, error) {
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
	plans := []models.WorkoutPlan{}
	if err := cursor.All(ctx, &plans); err != nil {
		return nil, store.PageInfo{}, err
	}
	return plans, store.NewPageInfo(p, total), nil
}

// WorkoutPlanDetail resolves the referenced catalog exercises alongside
// the plan in one batched read.
type WorkoutPlanDetail struct {
	models.WorkoutPlan
	ExerciseCatalog []models.Exercise `json:"exerciseCatalog"`
}

func (s *WorkoutPlanService) GetByID(ctx context.Context, userID, id primitive.ObjectID) (*WorkoutPlanDetail, error) {
	var plan models.WorkoutPlan
	err := s.coll().FindOne(ctx, bson.M{"_id": id, "userId": userID}).Decode(&plan)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	ids := make([]primitive.ObjectID, 0, len(plan.Exercises))
	for _, e := range plan.Exercises {
		ids = append(ids, e.ExerciseID)
	}
	byID, err := fetchExercises(ctx, s.db, ids)
	if err != nil {
		return nil, err
	}
	catalog := make([]models.Exercise, 0, len(byID))
	for _, e := range plan.Exercises {
		if ex, ok := byID[e.ExerciseID]; ok {
			catalog = append(catalog, ex)
		}
	}
	return &WorkoutPlanDetail{WorkoutPlan: plan, ExerciseCatalog: catalog}, nil
}

type PlanExerciseInput struct {
	ExerciseID string `json:"exerciseId" binding:"required"`
	Sets       int    `json:"sets" binding:"required,gt=0"`
	Reps       int    `json:"reps" binding:"required,gt=0"`
}

type CreateWorkoutPlanInput struct {
	Title       string              `json:"title" binding:"required"`
	Description string              `json:"description"`
	Exercises   []PlanExerciseInput `json:"exercises" binding:"dive"`
	Duration    int                 `json:"duration" binding:"omitempty,gt=0"`
}

func planExercisesFromInput(in []PlanExerciseInput) ([]models.PlanExercise, error) {
	out := make([]models.PlanExercise, 0, len(in))
	for _, e := range in {
		oid, err := primitive.ObjectIDFromHex(e.ExerciseID)
		if err != nil {
			return nil, errors.New("invalid exerciseId")
		}
		out = append(out, models.PlanExercise{ExerciseID: oid, Sets: e.Sets, Reps: e.Reps})
	}
	return out, nil
}

func (s *WorkoutPlanService) Create(ctx context.Context, userID primitive.ObjectID, input CreateWorkoutPlanInput) (*models.WorkoutPlan, error) {
	exercises, err := planExercisesFromInput(input.Exercises)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	plan := &models.WorkoutPlan{
		UserID:      userID,
		Title:       input.Title,
		Description: input.Description,
		Exercises:   exercises,
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

type UpdateWorkoutPlanInput struct {
	Title       *string              `json:"title"`
	Description *string              `json:"description"`
	Exercises   *[]PlanExerciseInput `json:"exercises" binding:"omitempty,dive"`
	Duration    *int                 `json:"duration" binding:"omitempty,gt=0"`
}

func (s *WorkoutPlanService) Update(ctx context.Context, userID, id primitive.ObjectID, input UpdateWorkoutPlanInput) (*models.WorkoutPlan, error) {
	set := bson.M{"updatedAt": time.Now().UTC()}
	if input.Title != nil {
		set["title"] = *input.Title
	}
	if input.Description != nil {
		set["description"] = *input.Description
	}
	if input.Exercises != nil {
		exercises, err := planExercisesFromInput(*input.Exercises)
		if err != nil {
			return nil, err
		}
		set["exercises"] = exercises
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

	var plan models.WorkoutPlan
	if err := s.coll().FindOne(ctx, bson.M{"_id": id}).Decode(&plan); err != nil {
		return nil, err
	}
	return &plan, nil
}

func (s *WorkoutPlanService) Delete(ctx context.Context, userID, id primitive.ObjectID) error {
	res, err := s.coll().DeleteOne(ctx, bson.M{"_id": id, "userId": userID})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}
