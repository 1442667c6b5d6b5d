package services

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"os"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	awssns "github.com/aws/aws-sdk-go-v2/service/sns"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/niravp-mindfire/fitness-tracking-app-sub001/models"
)

// PushService registers devices as SNS platform endpoints and publishes
// notification payloads to them. Delivery is best-effort.
type PushService struct {
	db             *mongo.Database
	sns            *awssns.Client
	fcmPlatformArn string
}

func NewPushService(ctx context.Context, db *mongo.Database) (*PushService, error) {
	region := os.Getenv("AWS_REGION")
	if region == "" {
		region = "ap-south-1"
	}
	cfg, err := config.LoadDefaultConfig(ctx, config.WithRegion(region))
	if err != nil {
		return nil, err
	}
	return &PushService{
		db:             db,
		sns:            awssns.NewFromConfig(cfg),
		fcmPlatformArn: os.Getenv("SNS_FCM_ARN"),
	}, nil
}

func (p *PushService) devices() *mongo.Collection {
	return p.db.Collection("devices")
}

type RegisterDeviceReq struct {
	Platform string `json:"platform" binding:"required"` // "android" | "ios"
	Token    string `json:"token" binding:"required"`
}

func tokenHash(tok string) string {
	h := sha256.Sum256([]byte(tok))
	return hex.EncodeToString(h[:])
}

func (p *PushService) platformArn(platform string) (string, error) {
	switch strings.ToLower(platform) {
	case "android", "ios":
		if p.fcmPlatformArn == "" {
			return "", errors.New("SNS_FCM_ARN not set")
		}
		return p.fcmPlatformArn, nil
	default:
		return "", errors.New("unknown platform")
	}
}

func (p *PushService) RegisterDevice(ctx context.Context, userID primitive.ObjectID, platform, token string) (*models.UserDevice, error) {
	appArn, err := p.platformArn(platform)
	if err != nil {
		return nil, err
	}

	out, err := p.sns.CreatePlatformEndpoint(ctx, &awssns.CreatePlatformEndpointInput{
		PlatformApplicationArn: aws.String(appArn),
		Token:                  aws.String(token),
	})
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	dev := &models.UserDevice{
		UserID:      userID,
		Platform:    strings.ToLower(platform),
		TokenHash:   tokenHash(token),
		EndpointARN: aws.ToString(out.EndpointArn),
		Enabled:     true,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	// same physical device re-registering just refreshes its endpoint
	var existing models.UserDevice
	err = p.devices().FindOne(ctx, bson.M{"userId": userID, "tokenHash": dev.TokenHash}).Decode(&existing)
	if err == nil {
		_, err = p.devices().UpdateByID(ctx, existing.ID, bson.M{"$set": bson.M{
			"endpointArn": dev.EndpointARN,
			"platform":    dev.Platform,
			"updatedAt":   now,
		}})
		if err != nil {
			return nil, err
		}
		existing.EndpointARN = dev.EndpointARN
		existing.Platform = dev.Platform
		return &existing, nil
	}
	if !errors.Is(err, mongo.ErrNoDocuments) {
		return nil, err
	}

	res, err := p.devices().InsertOne(ctx, dev)
	if err != nil {
		return nil, err
	}
	dev.ID = res.InsertedID.(primitive.ObjectID)
	return dev, nil
}

func (p *PushService) ToggleDevices(ctx context.Context, userID primitive.ObjectID, enabled bool) error {
	_, err := p.devices().UpdateMany(ctx, bson.M{"userId": userID}, bson.M{
		"$set": bson.M{"enabled": enabled, "updatedAt": time.Now().UTC()},
	})
	return err
}

func (p *PushService) PushToUser(ctx context.Context, userID primitive.ObjectID, title, body string, data map[string]string) {
	cursor, err := p.devices().Find(ctx, bson.M{"userId": userID, "enabled": true})
	if err != nil {
		return
	}
	var endpoints []models.UserDevice
	if err := cursor.All(ctx, &endpoints); err != nil || len(endpoints) == 0 {
		return
	}

	// with MessageStructure "json" the per-protocol payloads are nested
	// JSON strings, not objects
	gcm, _ := json.Marshal(map[string]any{
		"notification": map[string]string{
			"title": title,
			"body":  body,
		},
		"data": data,
	})
	raw, _ := json.Marshal(map[string]string{
		"default": body,
		"GCM":     string(gcm),
	})
	for _, d := range endpoints {
		_, _ = p.sns.Publish(ctx, &awssns.PublishInput{
			MessageStructure: aws.String("json"),
			Message:          aws.String(string(raw)),
			TargetArn:        aws.String(d.EndpointARN),
		})
	}
}
