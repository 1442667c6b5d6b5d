package controllers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/integration/mtest"

	"github.com/niravp-mindfire/fitness-tracking-app-sub001/services"
)

func TestNutritionListPayloadKey(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("results keyed nutritionEntries", func(mt *mtest.T) {
		uid := primitive.NewObjectID()
		day := bson.D{
			{Key: "_id", Value: primitive.NewObjectID()},
			{Key: "userId", Value: uid},
			{Key: "date", Value: time.Now().UTC()},
		}
		mt.AddMockResponses(
			// CountDocuments then Find
			mtest.CreateCursorResponse(0, "fitness.nutrition", mtest.FirstBatch, bson.D{{Key: "n", Value: 1}}),
			mtest.CreateCursorResponse(0, "fitness.nutrition", mtest.FirstBatch, day),
		)

		gin.SetMode(gin.TestMode)
		r := gin.New()
		ctl := NewNutritionController(services.NewNutritionService(mt.DB))
		r.GET("/nutrition", func(c *gin.Context) { c.Set("userID", uid) }, ctl.List)

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/nutrition", nil))
		require.Equal(mt.T, http.StatusOK, w.Code)

		var body map[string]interface{}
		require.NoError(mt.T, json.Unmarshal(w.Body.Bytes(), &body))
		data, ok := body["data"].(map[string]interface{})
		require.True(mt.T, ok)

		entries, ok := data["nutritionEntries"].([]interface{})
		require.True(mt.T, ok)
		assert.Len(mt.T, entries, 1)
		assert.Equal(mt.T, float64(1), data["total"])
	})
}
