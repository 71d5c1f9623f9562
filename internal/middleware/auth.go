package middleware

import (
	"context"
	"errors"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
	"github.com/yukikurage/kiroku/internal/constants"
	apierrors "github.com/yukikurage/kiroku/internal/errors"
	"github.com/yukikurage/kiroku/internal/models"
	"gorm.io/gorm"
)

// UserFinder resolves the owner named by a session.
type UserFinder interface {
	FindByID(ctx context.Context, id uint64) (*models.User, error)
}

// RequireAuth resolves the session's owner id and rejects requests without one.
// A session naming a user that no longer exists is cleared and rejected.
// The id is stored in the gin context as a uint64 for GetUserID.
func RequireAuth(users UserFinder) gin.HandlerFunc {
	return func(c *gin.Context) {
		session := sessions.Default(c)
		userID, ok := sessionUserID(session)
		if !ok {
			apierrors.Unauthorized(c, "")
			return
		}

		if _, err := users.FindByID(c.Request.Context(), userID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				session.Clear()
				session.Options(sessions.Options{Path: "/", MaxAge: -1})
				_ = session.Save()
				apierrors.Unauthorized(c, "Session user no longer exists")
				return
			}
			_ = c.Error(err)
			apierrors.InternalError(c, "Failed to resolve session")
			return
		}

		c.Set(constants.ContextKeyUserID, userID)
		c.Next()
	}
}

// GetUserID retrieves the current user ID from context
func GetUserID(c *gin.Context) (uint64, bool) {
	v, exists := c.Get(constants.ContextKeyUserID)
	if !exists {
		return 0, false
	}

	userID, ok := v.(uint64)
	return userID, ok && userID != 0
}

// sessionUserID reads the owner id written at login. Stores that round-trip
// values through a different encoding may hand back another integer type.
func sessionUserID(session sessions.Session) (uint64, bool) {
	switch v := session.Get(constants.ContextKeyUserID).(type) {
	case uint64:
		return v, v != 0
	case int64:
		return uint64(v), v > 0
	case int:
		return uint64(v), v > 0
	default:
		return 0, false
	}
}
