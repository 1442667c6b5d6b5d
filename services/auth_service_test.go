package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/integration/mtest"
)

// The forgot-password answer must be identical whether the email is
// unknown, the token could not be persisted, or the mail could not be
// sent. Any divergence is an account-existence oracle.
func TestForgotPasswordUniformOutcome(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("unknown email", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateCursorResponse(0, "fitness.users", mtest.FirstBatch))

		svc := NewAuthService(mt.DB, nil, nil)
		assert.NoError(mt.T, svc.ForgotPassword(context.Background(), "nobody@example.com"))
	})

	mt.Run("token persist failure", func(mt *mtest.T) {
		user := bson.D{
			{Key: "_id", Value: primitive.NewObjectID()},
			{Key: "email", Value: "someone@example.com"},
		}
		mt.AddMockResponses(
			mtest.CreateCursorResponse(0, "fitness.users", mtest.FirstBatch, user),
			mtest.CreateCommandErrorResponse(mtest.CommandError{
				Code:    11600,
				Name:    "InterruptedAtShutdown",
				Message: "server is shutting down",
			}),
		)

		svc := NewAuthService(mt.DB, nil, nil)
		assert.NoError(mt.T, svc.ForgotPassword(context.Background(), "someone@example.com"))
	})

	mt.Run("mailer not configured", func(mt *mtest.T) {
		user := bson.D{
			{Key: "_id", Value: primitive.NewObjectID()},
			{Key: "email", Value: "someone@example.com"},
		}
		mt.AddMockResponses(
			mtest.CreateCursorResponse(0, "fitness.users", mtest.FirstBatch, user),
			mtest.CreateSuccessResponse(),
		)

		svc := NewAuthService(mt.DB, nil, nil)
		assert.NoError(mt.T, svc.ForgotPassword(context.Background(), "someone@example.com"))
	})
}
