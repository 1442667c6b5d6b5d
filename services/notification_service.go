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

// NotificationService persists notifications and fans them out to
// connected websockets and registered devices. Hub and push are optional
// collaborators; persistence never depends on them.
type NotificationService struct {
	db   *mongo.Database
	hub  *RealtimeHub
	push *PushService
}

func NewNotificationService(db *mongo.Database, hub *RealtimeHub, push *PushService) *NotificationService {
	return &NotificationService{db: db, hub: hub, push: push}
}

func (s *NotificationService) coll() *mongo.Collection {
	return s.db.Collection("notifications")
}

func (s *NotificationService) List(ctx context.Context, userID primitive.ObjectID, p store.ListParams) ([]models.Notification, store.PageInfo, error) {
	spec := store.Spec{
		Scope:        bson.M{"userId": userID},
		SearchFields: []string{"message"},
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
	notifications := []models.Notification{}
	if err := cursor.All(ctx, &notifications); err != nil {
		return nil, store.PageInfo{}, err
	}
	return notifications, store.NewPageInfo(p, total), nil
}

func (s *NotificationService) GetByID(ctx context.Context, userID, id primitive.ObjectID) (*models.Notification, error) {
	var n models.Notification
	err := s.coll().FindOne(ctx, bson.M{"_id": id, "userId": userID}).Decode(&n)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &n, nil
}

type CreateNotificationInput struct {
	Message string `json:"message" binding:"required"`
}

func (s *NotificationService) Create(ctx context.Context, userID primitive.ObjectID, input CreateNotificationInput) (*models.Notification, error) {
	now := time.Now().UTC()
	n := &models.Notification{
		UserID:    userID,
		Message:   input.Message,
		IsRead:    false,
		CreatedAt: now,
		UpdatedAt: now,
	}
	res, err := s.coll().InsertOne(ctx, n)
	if err != nil {
		return nil, err
	}
	n.ID = res.InsertedID.(primitive.ObjectID)

	if s.hub != nil {
		s.hub.Broadcast(userID.Hex(), n)
	}
	if s.push != nil {
		s.push.PushToUser(ctx, userID, "FitTrack", n.Message, map[string]string{"notificationId": n.ID.Hex()})
	}
	return n, nil
}

func (s *NotificationService) MarkRead(ctx context.Context, userID, id primitive.ObjectID) (*models.Notification, error) {
	res, err := s.coll().UpdateOne(ctx, bson.M{"_id": id, "userId": userID}, bson.M{
		"$set": bson.M{"isRead": true, "updatedAt": time.Now().UTC()},
	})
	if err != nil {
		return nil, err
	}
	if res.MatchedCount == 0 {
		return nil, ErrNotFound
	}
	return s.GetByID(ctx, userID, id)
}

func (s *NotificationService) MarkAllRead(ctx context.Context, userID primitive.ObjectID) (int64, error) {
	res, err := s.coll().UpdateMany(ctx, bson.M{"userId": userID, "isRead": false}, bson.M{
		"$set": bson.M{"isRead": true, "updatedAt": time.Now().UTC()},
	})
	if err != nil {
		return 0, err
	}
	return res.ModifiedCount, nil
}

func (s *NotificationService) Delete(ctx context.Context, userID, id primitive.ObjectID) error {
	res, err := s.coll().DeleteOne(ctx, bson.M{"_id": id, "userId": userID})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}
