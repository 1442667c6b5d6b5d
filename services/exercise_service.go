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

// ExerciseService manages the global exercise catalog. Entries are shared
// across users, so there is no ownership scope here.
type ExerciseService struct {
	db *mongo.Database
}

func NewExerciseService(db *mongo.Database) *ExerciseService {
	return &ExerciseService{db: db}
}

func (s *ExerciseService) coll() *mongo.Collection {
	return s.db.Collection("exercises")
}

func (s *ExerciseService) List(ctx context.Context, p store.ListParams) ([]models.Exercise, store.PageInfo, error) {
	spec := store.Spec{
		SearchFields: []string{"name", "type", "category"},
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
	exercises := []models.Exercise{}
	if err := cursor.All(ctx, &exercises); err != nil {
		return nil, store.PageInfo{}, err
	}
	return exercises, store.NewPageInfo(p, total), nil
}

func (s *ExerciseService) GetByID(ctx context.Context, id primitive.ObjectID) (*models.Exercise, error) {
	var exercise models.Exercise
	if err := s.coll().FindOne(ctx, bson.M{"_id": id}).Decode(&exercise); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &exercise, nil
}

type CreateExerciseInput struct {
	Name        string `json:"name" binding:"required"`
	Type        string `json:"type"`
	Description string `json:"description"`
	Category    string `json:"category"`
}

func (s *ExerciseService) Create(ctx context.Context, input CreateExerciseInput) (*models.Exercise, error) {
	now := time.Now().UTC()
	exercise := &models.Exercise{
		Name:        input.Name,
		Type:        input.Type,
		Description: input.Description,
		Category:    input.Category,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	res, err := s.coll().InsertOne(ctx, exercise)
	if err != nil {
		return nil, err
	}
	exercise.ID = res.InsertedID.(primitive.ObjectID)
	return exercise, nil
}

type UpdateExerciseInput struct {
	Name        *string `json:"name"`
	Type        *string `json:"type"`
	Description *string `json:"description"`
	Category    *string `json:"category"`
}

func (s *ExerciseService) Update(ctx context.Context, id primitive.ObjectID, input UpdateExerciseInput) (*models.Exercise, error) {
	set := bson.M{"updatedAt": time.Now().UTC()}
	if input.Name != nil {
		set["name"] = *input.Name
	}
	if input.Type != nil {
		set["type"] = *input.Type
	}
	if input.Description != nil {
		set["description"] = *input.Description
	}
	if input.Category != nil {
		set["category"] = *input.Category
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

func (s *ExerciseService) Delete(ctx context.Context, id primitive.ObjectID) error {
	res, err := s.coll().DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}
