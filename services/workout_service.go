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

type WorkoutService struct {
	db *mongo.Database
}

func NewWorkoutService(db *mongo.Database) *WorkoutService {
	return &WorkoutService{db: db}
}

func (s *WorkoutService) workouts() *mongo.Collection {
	return s.db.Collection("workouts")
}

func (s *WorkoutService) workoutExercises() *mongo.Collection {
	return s.db.Collection("workout_exercises")
}

func (s *WorkoutService) List(ctx context.Context, userID primitive.ObjectID, p store.ListParams) ([]models.Workout, store.PageInfo, error) {
	spec := store.Spec{
		Scope:        bson.M{"userId": userID},
		SearchFields: []string{"notes"},
		DateField:    "date",
		DefaultSort:  "date",
		DefaultDesc:  true,
	}
	filter := spec.Filter(p)

	total, err := s.workouts().CountDocuments(ctx, filter)
	if err != nil {
		return nil, store.PageInfo{}, err
	}
	cursor, err := s.workouts().Find(ctx, filter, spec.FindOptions(p))
	if err != nil {
		return nil, store.PageInfo{}, err
	}
	workouts := []models.Workout{}
	if err := cursor.All(ctx, &workouts); err != nil {
		return nil, store.PageInfo{}, err
	}
	return workouts, store.NewPageInfo(p, total), nil
}

func (s *WorkoutService) GetByID(ctx context.Context, userID, id primitive.ObjectID) (*models.Workout, error) {
	var workout models.Workout
	err := s.workouts().FindOne(ctx, bson.M{"_id": id, "userId": userID}).Decode(&workout)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &workout, nil
}

type CreateWorkoutInput struct {
	Date     time.Time `json:"date" binding:"required"`
	Duration int       `json:"duration" binding:"required,gt=0"`
	Notes    string    `json:"notes"`
}

func (s *WorkoutService) Create(ctx context.Context, userID primitive.ObjectID, input CreateWorkoutInput) (*models.Workout, error) {
	now := time.Now().UTC()
	workout := &models.Workout{
		UserID:    userID,
		Date:      input.Date,
		Duration:  input.Duration,
		Notes:     input.Notes,
		CreatedAt: now,
		UpdatedAt: now,
	}
	res, err := s.workouts().InsertOne(ctx, workout)
	if err != nil {
		return nil, err
	}
	workout.ID = res.InsertedID.(primitive.ObjectID)
	return workout, nil
}

type UpdateWorkoutInput struct {
	Date     *time.Time `json:"date"`
	Duration *int       `json:"duration" binding:"omitempty,gt=0"`
	Notes    *string    `json:"notes"`
}

func (s *WorkoutService) Update(ctx context.Context, userID, id primitive.ObjectID, input UpdateWorkoutInput) (*models.Workout, error) {
	set := bson.M{"updatedAt": time.Now().UTC()}
	if input.Date != nil {
		set["date"] = *input.Date
	}
	if input.Duration != nil {
		set["duration"] = *input.Duration
	}
	if input.Notes != nil {
		set["notes"] = *input.Notes
	}

	res, err := s.workouts().UpdateOne(ctx, bson.M{"_id": id, "userId": userID}, bson.M{"$set": set})
	if err != nil {
		return nil, err
	}
	if res.MatchedCount == 0 {
		return nil, ErrNotFound
	}
	return s.GetByID(ctx, userID, id)
}

func (s *WorkoutService) Delete(ctx context.Context, userID, id primitive.ObjectID) error {
	res, err := s.workouts().DeleteOne(ctx, bson.M{"_id": id, "userId": userID})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}
	// exercise lines have no life without their workout
	_, err = s.workoutExercises().DeleteMany(ctx, bson.M{"workoutId": id})
	return err
}

// WorkoutExerciseDetail carries the exercise line with its catalog entry
// resolved, so clients don't have to chase the reference.
type WorkoutExerciseDetail struct {
	models.WorkoutExercise
	Exercise *models.Exercise `json:"exercise,omitempty"`
}

// ListExercises returns the exercise lines of a workout with their catalog
// entries resolved in a single batched read, not one lookup per row.
func (s *WorkoutService) ListExercises(ctx context.Context, userID, workoutID primitive.ObjectID) ([]WorkoutExerciseDetail, error) {
	if _, err := s.GetByID(ctx, userID, workoutID); err != nil {
		return nil, err
	}

	cursor, err := s.workoutExercises().Find(ctx, bson.M{"workoutId": workoutID})
	if err != nil {
		return nil, err
	}
	lines := []models.WorkoutExercise{}
	if err := cursor.All(ctx, &lines); err != nil {
		return nil, err
	}

	ids := make([]primitive.ObjectID, 0, len(lines))
	for _, l := range lines {
		ids = append(ids, l.ExerciseID)
	}
	byID, err := fetchExercises(ctx, s.db, ids)
	if err != nil {
		return nil, err
	}

	out := make([]WorkoutExerciseDetail, 0, len(lines))
	for _, l := range lines {
		d := WorkoutExerciseDetail{WorkoutExercise: l}
		if ex, ok := byID[l.ExerciseID]; ok {
			e := ex
			d.Exercise = &e
		}
		out = append(out, d)
	}
	return out, nil
}

type WorkoutExerciseInput struct {
	WorkoutID  string  `json:"workoutId" binding:"required"`
	ExerciseID string  `json:"exerciseId" binding:"required"`
	Sets       int     `json:"sets" binding:"required,gt=0"`
	Reps       int     `json:"reps" binding:"required,gt=0"`
	Weight     float64 `json:"weight" binding:"gte=0"`
}

func (s *WorkoutService) AddExercise(ctx context.Context, userID primitive.ObjectID, input WorkoutExerciseInput) (*models.WorkoutExercise, error) {
	workoutID, err := primitive.ObjectIDFromHex(input.WorkoutID)
	if err != nil {
		return nil, ErrNotFound
	}
	exerciseID, err := primitive.ObjectIDFromHex(input.ExerciseID)
	if err != nil {
		return nil, ErrNotFound
	}

	// both references must resolve, and the workout must be the caller's
	if _, err := s.GetByID(ctx, userID, workoutID); err != nil {
		return nil, err
	}
	count, err := s.db.Collection("exercises").CountDocuments(ctx, bson.M{"_id": exerciseID})
	if err != nil {
		return nil, err
	}
	if count == 0 {
		return nil, ErrNotFound
	}

	now := time.Now().UTC()
	line := &models.WorkoutExercise{
		WorkoutID:  workoutID,
		ExerciseID: exerciseID,
		Sets:       input.Sets,
		Reps:       input.Reps,
		Weight:     input.Weight,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	res, err := s.workoutExercises().InsertOne(ctx, line)
	if err != nil {
		return nil, err
	}
	line.ID = res.InsertedID.(primitive.ObjectID)
	return line, nil
}

// getOwnedExerciseLine resolves a workout_exercise id and checks that its
// parent workout belongs to the caller.
func (s *WorkoutService) getOwnedExerciseLine(ctx context.Context, userID, id primitive.ObjectID) (*models.WorkoutExercise, error) {
	var line models.WorkoutExercise
	err := s.workoutExercises().FindOne(ctx, bson.M{"_id": id}).Decode(&line)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	if _, err := s.GetByID(ctx, userID, line.WorkoutID); err != nil {
		return nil, err
	}
	return &line, nil
}

type UpdateWorkoutExerciseInput struct {
	Sets   *int     `json:"sets" binding:"omitempty,gt=0"`
	Reps   *int     `json:"reps" binding:"omitempty,gt=0"`
	Weight *float64 `json:"weight" binding:"omitempty,gte=0"`
}

func (s *WorkoutService) UpdateExercise(ctx context.Context, userID, id primitive.ObjectID, input UpdateWorkoutExerciseInput) (*models.WorkoutExercise, error) {
	line, err := s.getOwnedExerciseLine(ctx, userID, id)
	if err != nil {
		return nil, err
	}

	set := bson.M{"updatedAt": time.Now().UTC()}
	if input.Sets != nil {
		set["sets"] = *input.Sets
	}
	if input.Reps != nil {
		set["reps"] = *input.Reps
	}
	if input.Weight != nil {
		set["weight"] = *input.Weight
	}
	if _, err := s.workoutExercises().UpdateByID(ctx, line.ID, bson.M{"$set": set}); err != nil {
		return nil, err
	}

	var updated models.WorkoutExercise
	if err := s.workoutExercises().FindOne(ctx, bson.M{"_id": line.ID}).Decode(&updated); err != nil {
		return nil, err
	}
	return &updated, nil
}

func (s *WorkoutService) DeleteExercise(ctx context.Context, userID, id primitive.ObjectID) error {
	line, err := s.getOwnedExerciseLine(ctx, userID, id)
	if err != nil {
		return err
	}
	_, err = s.workoutExercises().DeleteOne(ctx, bson.M{"_id": line.ID})
	return err
}

// fetchExercises is the batched fan-out read shared by workout and plan
// views.
func fetchExercises(ctx context.Context, db *mongo.Database, ids []primitive.ObjectID) (map[primitive.ObjectID]models.Exercise, error) {
	byID := map[primitive.ObjectID]models.Exercise{}
	if len(ids) == 0 {
		return byID, nil
	}
	cursor, err := db.Collection("exercises").Find(ctx, bson.M{"_id": bson.M{"$in": ids}})
	if err != nil {
		return nil, err
	}
	var exercises []models.Exercise
	if err := cursor.All(ctx, &exercises); err != nil {
		return nil, err
	}
	for _, e := range exercises {
		byID[e.ID] = e
	}
	return byID, nil
}
