package middlewares

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/niravp-mindfire/fitness-tracking-app-sub001/utils"
)

type stubUserLookup struct {
	exists bool
	err    error
	seen   primitive.ObjectID
}

func (s *stubUserLookup) UserExists(_ context.Context, id primitive.ObjectID) (bool, error) {
	s.seen = id
	return s.exists, s.err
}

func newTestRouter(users UserLookup) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/protected", AuthMiddleware(users), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"userId": CurrentUserID(c).Hex(),
			"role":   c.MustGet("role"),
		})
	})
	return r
}

func doRequest(t *testing.T, r *gin.Engine, authHeader string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestAuthMiddlewareMissingHeader(t *testing.T) {
	r := newTestRouter(&stubUserLookup{exists: true})

	w := doRequest(t, r, "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = doRequest(t, r, "Basic abc123")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuthMiddlewareBadToken(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	r := newTestRouter(&stubUserLookup{exists: true})

	w := doRequest(t, r, "Bearer not-a-jwt")
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "error", body["status"])
	assert.Equal(t, "Invalid or expired token", body["message"])
}

func TestAuthMiddlewareNonHexSubject(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	token, err := utils.GenerateAccessToken("definitely-not-hex", "user")
	require.NoError(t, err)

	r := newTestRouter(&stubUserLookup{exists: true})
	w := doRequest(t, r, "Bearer "+token)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuthMiddlewareDeletedUser(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	id := primitive.NewObjectID()
	token, err := utils.GenerateAccessToken(id.Hex(), "user")
	require.NoError(t, err)

	users := &stubUserLookup{exists: false}
	w := doRequest(t, newTestRouter(users), "Bearer "+token)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, id, users.seen)
}

func TestAuthMiddlewareLookupFailure(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	token, err := utils.GenerateAccessToken(primitive.NewObjectID().Hex(), "user")
	require.NoError(t, err)

	users := &stubUserLookup{err: errors.New("store down")}
	w := doRequest(t, newTestRouter(users), "Bearer "+token)
	assert.Equal(t, http.StatusInternalServerError, w.Code)
}

func TestAuthMiddlewareSetsPrincipal(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	id := primitive.NewObjectID()
	token, err := utils.GenerateAccessToken(id.Hex(), "admin")
	require.NoError(t, err)

	users := &stubUserLookup{exists: true}
	w := doRequest(t, newTestRouter(users), "Bearer "+token)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, id, users.seen)

	var body map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, id.Hex(), body["userId"])
	assert.Equal(t, "admin", body["role"])
}
