package config

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// App holds the process-wide handles built once at startup and passed by
// reference to whatever needs them. Close must be awaited during teardown.
type App struct {
	Client *mongo.Client
	DB     *mongo.Database
}

func Connect(uri, dbName string) (*App, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, fmt.Errorf("error connecting to MongoDB: %v", err)
	}

	if err := client.Ping(ctx, nil); err != nil {
		return nil, fmt.Errorf("error pinging MongoDB: %v", err)
	}

	db := client.Database(dbName)

	users := db.Collection("users")
	for _, field := range []string{"email", "username"} {
		_, err = users.Indexes().CreateOne(ctx, mongo.IndexModel{
			Keys:    bson.M{field: 1},
			Options: options.Index().SetUnique(true),
		})
		if err != nil {
			return nil, fmt.Errorf("error creating %s index: %v", field, err)
		}
	}

	return &App{Client: client, DB: db}, nil
}

func (a *App) Close() error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return a.Client.Disconnect(ctx)
}
