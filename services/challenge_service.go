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

// ChallengeService manages global challenges readable by any
// authenticated user.
type ChallengeService struct {
	db *mongo.Database
}

func NewChallengeService(db *mongo.Database) *ChallengeService {
	return &ChallengeService{db: db}
}

func (s *ChallengeService) coll() *mongo.Collection {
	return s.db.Collection("challenges")
}

func (s *ChallengeService) List(ctx context.Context, p store.ListParams) ([]models.Challenge, store.PageInfo, error) {
	spec := store.Spec{
		SearchFields: []string{"title", "description"},
		DateField:    "startDate",
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
	challenges := []models.Challenge{}
	if err := cursor.All(ctx, &challenges); err != nil {
		return nil, store.PageInfo{}, err
	}
	return challenges, store.NewPageInfo(p, total), nil
}

func (s *ChallengeService) GetByID(ctx context.Context, id primitive.ObjectID) (*models.Challenge, error) {
	var challenge models.Challenge
	if err := s.coll().FindOne(ctx, bson.M{"_id": id}).Decode(&challenge); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &challenge, nil
}

type CreateChallengeInput struct {
	Title        string    `json:"title" binding:"required"`
	Description  string    `json:"description" binding:"required"`
	StartDate    time.Time `json:"startDate" binding:"required"`
	EndDate      time.Time `json:"endDate" binding:"required"`
	Participants []string  `json:"participants" binding:"required,min=1"`
}

func (s *ChallengeService) Create(ctx context.Context, input CreateChallengeInput) (*models.Challenge, error) {
	participants := make([]primitive.ObjectID, 0, len(input.Participants))
	for _, p := range input.Participants {
		oid, err := primitive.ObjectIDFromHex(p)
		if err != nil {
			return nil, errors.New("invalid participant id")
		}
		participants = append(participants, oid)
	}

	now := time.Now().UTC()
	challenge := &models.Challenge{
		Title:        input.Title,
		Description:  input.Description,
		StartDate:    input.StartDate,
		EndDate:      input.EndDate,
		Participants: participants,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	res, err := s.coll().InsertOne(ctx, challenge)
	if err != nil {
		return nil, err
	}
	challenge.ID = res.InsertedID.(primitive.ObjectID)
	return challenge, nil
}

type UpdateChallengeInput struct {
	Title       *string    `json:"title"`
	Description *string    `json:"description"`
	StartDate   *time.Time `json:"startDate"`
	EndDate     *time.Time `json:"endDate"`
}

func (s *ChallengeService) Update(ctx context.Context, id primitive.ObjectID, input UpdateChallengeInput) (*models.Challenge, error) {
	set := bson.M{"updatedAt": time.Now().UTC()}
	if input.Title != nil {
		set["title"] = *input.Title
	}
	if input.Description != nil {
		set["description"] = *input.Description
	}
	if input.StartDate != nil {
		set["startDate"] = *input.StartDate
	}
	if input.EndDate != nil {
		set["endDate"] = *input.EndDate
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

func (s *ChallengeService) Delete(ctx context.Context, id primitive.ObjectID) error {
	res, err := s.coll().DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}

// Join is idempotent thanks to $addToSet.
func (s *ChallengeService) Join(ctx context.Context, userID, id primitive.ObjectID) (*models.Challenge, error) {
	res, err := s.coll().UpdateByID(ctx, id, bson.M{
		"$addToSet": bson.M{"participants": userID},
		"$set":      bson.M{"updatedAt": time.Now().UTC()},
	})
	if err != nil {
		return nil, err
	}
	if res.MatchedCount == 0 {
		return nil, ErrNotFound
	}
	return s.GetByID(ctx, id)
}

func (s *ChallengeService) Leave(ctx context.Context, userID, id primitive.ObjectID) (*models.Challenge, error) {
	res, err := s.coll().UpdateByID(ctx, id, bson.M{
		"$pull": bson.M{"participants": userID},
		"$set":  bson.M{"updatedAt": time.Now().UTC()},
	})
	if err != nil {
		return nil, err
	}
	if res.MatchedCount == 0 {
		return nil, ErrNotFound
	}
	return s.GetByID(ctx, id)
}
