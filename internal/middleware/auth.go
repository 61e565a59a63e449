package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/snnyvrz/bookdesk/internal/auth"
	"github.com/snnyvrz/bookdesk/internal/validation"
)

const userIDKey = "user_id"

// RequireAuth validates the Bearer token and stores the authenticated
// user's ID on the request context. Requests without a valid token are
// rejected.
func RequireAuth(jwtManager *auth.JWTManager) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString, ok := bearerToken(c)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, validation.ErrorResponse{
				Code:    "UNAUTHENTICATED",
				Message: auth.ErrMissingToken.Error(),
			})
			return
		}

		claims, err := jwtManager.Validate(tokenString)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, validation.ErrorResponse{
				Code:    "UNAUTHENTICATED",
				Message: auth.ErrInvalidToken.Error(),
			})
			return
		}

		if id, err := uuid.Parse(claims.UserID); err == nil {
			c.Set(userIDKey, id)
		}

		c.Next()
	}
}

// ActorID returns the authenticated user's ID, or nil for anonymous
// requests.
func ActorID(c *gin.Context) *uuid.UUID {
	v, ok := c.Get(userIDKey)
	if !ok {
		return nil
	}
	id, ok := v.(uuid.UUID)
	if !ok {
		return nil
	}
	return &id
}

func bearerToken(c *gin.Context) (string, bool) {
	header := c.GetHeader("Authorization")
	if header == "" {
		return "", false
	}

	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || parts[0] != "Bearer" || parts[1] == "" {
		return "", false
	}
	return parts[1], true
}
