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

type ProgressService struct {
	db *mongo.Database
}

func NewProgressService(db *mongo.Database) *ProgressService {
	return &ProgressService{db: db}
}

func (s *ProgressService) coll() *mongo.Collection {
	return s.db.Collection("progress")
}

func (s *ProgressService) List(ctx context.Context, userID primitive.ObjectID, p store.ListParams) ([]models.ProgressTracking, store.PageInfo, error) {
	spec := store.Spec{
		Scope:        bson.M{"userId": userID},
		SearchFields: []string{"notes"},
		DateField:    "date",
		DefaultSort:  "date",
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
	entries := []models.ProgressTracking{}
	if err := cursor.All(ctx, &entries); err != nil {
		return nil, store.PageInfo{}, err
	}
	return entries, store.NewPageInfo(p, total), nil
}

func (s *ProgressService) GetByID(ctx context.Context, userID, id primitive.ObjectID) (*models.ProgressTracking, error) {
	var entry models.ProgressTracking
	err := s.coll().FindOne(ctx, bson.M{"_id": id, "userId": userID}).Decode(&entry)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &entry, nil
}

type CreateProgressInput struct {
	Date              time.Time `json:"date" binding:"required"`
	Weight            *float64  `json:"weight" binding:"required,gte=0"`
	BodyFatPercentage *float64  `json:"bodyFatPercentage" binding:"omitempty,gte=0"`
	MuscleMass        *float64  `json:"muscleMass" binding:"omitempty,gte=0"`
	Notes             string    `json:"notes"`
}

func (s *ProgressService) Create(ctx context.Context, userID primitive.ObjectID, input CreateProgressInput) (*models.ProgressTracking, error) {
	now := time.Now().UTC()
	entry := &models.ProgressTracking{
		UserID:            userID,
		Date:              input.Date,
		Weight:            *input.Weight,
		BodyFatPercentage: input.BodyFatPercentage,
		MuscleMass:        input.MuscleMass,
		Notes:             input.Notes,
		CreatedAt:         now,
		UpdatedAt:         now,
	}
	res, err := s.coll().InsertOne(ctx, entry)
	if err != nil {
		return nil, err
	}
	entry.ID = res.InsertedID.(primitive.ObjectID)
	return entry, nil
}

type UpdateProgressInput struct {
	Date              *time.Time `json:"date"`
	Weight            *float64   `json:"weight" binding:"omitempty,gte=0"`
	BodyFatPercentage *float64   `json:"bodyFatPercentage" binding:"omitempty,gte=0"`
	MuscleMass        *float64   `json:"muscleMass" binding:"omitempty,gte=0"`
	Notes             *string    `json:"notes"`
}

func (s *ProgressService) Update(ctx context.Context, userID, id primitive.ObjectID, input UpdateProgressInput) (*models.ProgressTracking, error) {
	set := bson.M{"updatedAt": time.Now().UTC()}
	if input.Date != nil {
		set["date"] = *input.Date
	}
	if input.Weight != nil {
		set["weight"] = *input.Weight
	}
	if input.BodyFatPercentage != nil {
		set["bodyFatPercentage"] = *input.BodyFatPercentage
	}
	if input.MuscleMass != nil {
		set["muscleMass"] = *input.MuscleMass
	}
	if input.Notes != nil {
		set["notes"] = *input.Notes
	}

	res, err := s.coll().UpdateOne(ctx, bson.M{"_id": id, "userId": userID}, bson.M{"$set": set})
	if err != nil {
		return nil, err
	}
	if res.MatchedCount == 0 {
		return nil, ErrNotFound
	}
	return s.GetByID(ctx, userID, id)
}

func (s *ProgressService) Delete(ctx context.Context, userID, id primitive.ObjectID) error {
	res, err := s.coll().DeleteOne(ctx, bson.M{"_id": id, "userId": userID})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}

// dailyAveragesPipeline buckets one user's entries by calendar day and
// averages weight and body fat per bucket, ascending. $avg skips absent
// bodyFatPercentage values, so partial data still averages correctly.
func dailyAveragesPipeline(userID primitive.ObjectID) mongo.Pipeline {
	return mongo.Pipeline{
		{{Key: "$match", Value: bson.M{"userId": userID}}},
		{{Key: "$group", Value: bson.M{
			"_id": bson.M{"$dateToString": bson.M{
				"format": "%Y-%m-%d",
				"date":   "$date",
			}},
			"weight":            bson.M{"$avg": "$weight"},
			"bodyFatPercentage": bson.M{"$avg": "$bodyFatPercentage"},
		}}},
		{{Key: "$sort", Value: bson.M{"_id": 1}}},
	}
}

// Track returns the averaged per-day series for the user.
func (s *ProgressService) Track(ctx context.Context, userID primitive.ObjectID) ([]models.ProgressPoint, error) {
	cursor, err := s.coll().Aggregate(ctx, dailyAveragesPipeline(userID))
	if err != nil {
		return nil, err
	}
	points := []models.ProgressPoint{}
	if err := cursor.All(ctx, &points); err != nil {
		return nil, err
	}
	if len(points) == 0 {
		return nil, ErrNotFound
	}
	return points, nil
}
