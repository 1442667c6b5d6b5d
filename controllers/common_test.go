package controllers

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/niravp-mindfire/fitness-tracking-app-sub001/services"
	"github.com/niravp-mindfire/fitness-tracking-app-sub001/store"
	"github.com/niravp-mindfire/fitness-tracking-app-sub001/utils"
)

func recordedContext(t *testing.T) (*gin.Context, *httptest.ResponseRecorder) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/", nil)
	return c, w
}

func TestIdParam(t *testing.T) {
	oid := primitive.NewObjectID()

	c, _ := recordedContext(t)
	c.Params = gin.Params{{Key: "id", Value: oid.Hex()}}
	got, ok := idParam(c, "id")
	require.True(t, ok)
	assert.Equal(t, oid, got)
}

// A malformed id is indistinguishable from an absent document.
func TestIdParamMalformedReadsAsNotFound(t *testing.T) {
	c, w := recordedContext(t)
	c.Params = gin.Params{{Key: "id", Value: "zz-not-hex"}}

	_, ok := idParam(c, "id")
	assert.False(t, ok)
	assert.Equal(t, http.StatusNotFound, w.Code)

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "Resource not found", body["message"])
}

func TestRespondServiceError(t *testing.T) {
	cases := []struct {
		name    string
		err     error
		status  int
		message string
	}{
		{"not found", services.ErrNotFound, http.StatusNotFound, "Resource not found"},
		{"ownership wrapped as not found", services.ErrNotFound, http.StatusNotFound, "Resource not found"},
		{"forbidden", services.ErrForbidden, http.StatusForbidden, "Forbidden"},
		{"invalid token", utils.ErrInvalidToken, http.StatusUnauthorized, "Invalid or expired token"},
		{"store failure", errors.New("connection reset"), http.StatusInternalServerError, "Failed to fetch workout"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			c, w := recordedContext(t)
			respondServiceError(c, tc.err, "Failed to fetch workout")
			assert.Equal(t, tc.status, w.Code)

			var body map[string]interface{}
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
			assert.Equal(t, "error", body["status"])
			assert.Equal(t, tc.message, body["message"])
		})
	}
}

func TestListDataShape(t *testing.T) {
	page := store.PageInfo{Total: 21, Page: 2, Limit: 10, TotalPages: 3}
	data := listData(page, "workouts", []string{"a", "b"})

	assert.Equal(t, int64(21), data["total"])
	assert.Equal(t, int64(2), data["page"])
	assert.Equal(t, int64(10), data["limit"])
	assert.Equal(t, int64(3), data["totalPages"])
	assert.Equal(t, []string{"a", "b"}, data["workouts"])
}
