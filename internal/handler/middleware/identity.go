package middleware

import (
	"net/http"

	"innbook/internal/handler/httperr"
	"innbook/internal/pkg/errs"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// UserIDHeader carries the caller identity resolved by the edge in
// front of this service. Authentication itself happens upstream.
const UserIDHeader = "X-User-ID"

const userIDKey = "user_id"

var errMissingUserID = errs.New("missing or invalid user id header")

type IdentityMiddleware struct{}

func NewIdentityMiddleware() *IdentityMiddleware {
	return &IdentityMiddleware{}
}

// RequireUser rejects requests whose identity header is missing or not
// a UUID, and stashes the parsed ID for handlers.
func (m *IdentityMiddleware) RequireUser() gin.HandlerFunc {
	return func(c *gin.Context) {
		raw := c.GetHeader(UserIDHeader)
		if raw == "" {
			httperr.AbortWithError(c, http.StatusUnauthorized, errMissingUserID, "User identity required", nil)
			return
		}

		userID, err := uuid.Parse(raw)
		if err != nil {
			httperr.AbortWithError(c, http.StatusUnauthorized, errMissingUserID, "User identity required", nil)
			return
		}

		c.Set(userIDKey, userID)
		c.Next()
	}
}

func GetUserID(c *gin.Context) (uuid.UUID, bool) {
	value, exists := c.Get(userIDKey)
	if !exists {
		return uuid.Nil, false
	}
	id, ok := value.(uuid.UUID)
	return id, ok
}
