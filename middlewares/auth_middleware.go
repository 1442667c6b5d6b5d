package middlewares

import (
	"context"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/niravp-mindfire/fitness-tracking-app-sub001/utils"
)

// UserLookup resolves a token subject against the user store; a token for
// a deleted user is as good as no token.
type UserLookup interface {
	UserExists(ctx context.Context, id primitive.ObjectID) (bool, error)
}

// AuthMiddleware gates every resource handler. It never partially
// authenticates: either userID and role land in the context, or the
// request is aborted with 401.
func AuthMiddleware(users UserLookup) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			utils.ErrorResponse(c, http.StatusUnauthorized, "Authorization header required", nil)
			c.Abort()
			return
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		userID, role, err := utils.ParseToken(tokenString)
		if err != nil {
			utils.ErrorResponse(c, http.StatusUnauthorized, "Invalid or expired token", nil)
			c.Abort()
			return
		}

		oid, err := primitive.ObjectIDFromHex(userID)
		if err != nil {
			utils.ErrorResponse(c, http.StatusUnauthorized, "Invalid token subject", nil)
			c.Abort()
			return
		}

		exists, err := users.UserExists(c.Request.Context(), oid)
		if err != nil {
			utils.ErrorResponse(c, http.StatusInternalServerError, "Failed to verify user", err)
			c.Abort()
			return
		}
		if !exists {
			utils.ErrorResponse(c, http.StatusUnauthorized, "User not found", nil)
			c.Abort()
			return
		}

		c.Set("userID", oid)
		c.Set("role", role)
		c.Next()
	}
}

// CurrentUserID reads the authenticated principal set by AuthMiddleware.
func CurrentUserID(c *gin.Context) primitive.ObjectID {
	return c.MustGet("userID").(primitive.ObjectID)
}
