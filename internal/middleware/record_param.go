package middleware

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/yukikurage/kiroku/internal/constants"
	apierrors "github.com/yukikurage/kiroku/internal/errors"
)

// RequireRecordID parses the :id path parameter of record routes.
// Ownership is checked by the record service, which distinguishes a missing
// record (404) from another owner's record (403).
func RequireRecordID() gin.HandlerFunc {
	return func(c *gin.Context) {
		recordID, err := strconv.ParseUint(c.Param("id"), 10, 64)
		if err != nil || recordID == 0 {
			apierrors.BadRequest(c, "Invalid record ID")
			return
		}

		c.Set(constants.ContextKeyRecordID, recordID)
		c.Next()
	}
}

// GetRecordID retrieves the record ID parsed by RequireRecordID
func GetRecordID(c *gin.Context) (uint64, bool) {
	recordID, exists := c.Get(constants.ContextKeyRecordID)
	if !exists {
		return 0, false
	}

	id, ok := recordID.(uint64)
	return id, ok
}
