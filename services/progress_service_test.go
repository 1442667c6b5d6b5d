package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/integration/mtest"
)

// Two entries on the same day must collapse into one averaged point:
// {2024-01-01 w=70}, {2024-01-01 w=72}, {2024-01-02 w=71} yields
// [{2024-01-01 71}, {2024-01-02 71}], ascending. The shape below is what
// makes the server do exactly that.
func TestDailyAveragesPipeline(t *testing.T) {
	uid := primitive.NewObjectID()
	pipeline := dailyAveragesPipeline(uid)
	require.Len(t, pipeline, 3)

	match := pipeline[0][0]
	assert.Equal(t, "$match", match.Key)
	assert.Equal(t, bson.M{"userId": uid}, match.Value)

	group := pipeline[1][0]
	assert.Equal(t, "$group", group.Key)
	fields, ok := group.Value.(bson.M)
	require.True(t, ok)
	// calendar-day bucket key, not the raw timestamp
	assert.Equal(t, bson.M{"$dateToString": bson.M{"format": "%Y-%m-%d", "date": "$date"}}, fields["_id"])
	// $avg excludes absent bodyFatPercentage values from the mean
	assert.Equal(t, bson.M{"$avg": "$weight"}, fields["weight"])
	assert.Equal(t, bson.M{"$avg": "$bodyFatPercentage"}, fields["bodyFatPercentage"])

	sort := pipeline[2][0]
	assert.Equal(t, "$sort", sort.Key)
	assert.Equal(t, bson.M{"_id": 1}, sort.Value)
}

func TestTrackDecodesSeries(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("averaged points come back ascending", func(mt *mtest.T) {
		bf := 18.5
		mt.AddMockResponses(mtest.CreateCursorResponse(0, "fitness.progress", mtest.FirstBatch,
			bson.D{{Key: "_id", Value: "2024-01-01"}, {Key: "weight", Value: 71.0}, {Key: "bodyFatPercentage", Value: bf}},
			bson.D{{Key: "_id", Value: "2024-01-02"}, {Key: "weight", Value: 71.0}, {Key: "bodyFatPercentage", Value: nil}},
		))

		svc := NewProgressService(mt.DB)
		points, err := svc.Track(context.Background(), primitive.NewObjectID())
		require.NoError(mt.T, err)
		require.Len(mt.T, points, 2)

		assert.Equal(mt.T, "2024-01-01", points[0].Date)
		assert.Equal(mt.T, 71.0, points[0].Weight)
		require.NotNil(mt.T, points[0].BodyFatPercentage)
		assert.Equal(mt.T, bf, *points[0].BodyFatPercentage)

		assert.Equal(mt.T, "2024-01-02", points[1].Date)
		assert.Nil(mt.T, points[1].BodyFatPercentage)
	})

	mt.Run("no entries is not found", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateCursorResponse(0, "fitness.progress", mtest.FirstBatch))

		svc := NewProgressService(mt.DB)
		_, err := svc.Track(context.Background(), primitive.NewObjectID())
		assert.ErrorIs(mt.T, err, ErrNotFound)
	})
}
