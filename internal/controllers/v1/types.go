package v1

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/pocketwise/backend/internal/httputil"
	"github.com/pocketwise/backend/internal/types"
)

// parseID parses the id URI parameter. On error, the response has
// already been written.
func parseID(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(status(httputil.ErrInvalidUUID), httpError{
			Error: httputil.ErrInvalidUUID.Error(),
		})
		return uuid.Nil, false
	}

	return id, true
}

// parseMonthQuery parses the month query parameter in YYYY-MM format.
func parseMonthQuery(c *gin.Context) (types.Month, error) {
	raw, ok := c.GetQuery("month")
	if !ok || raw == "" {
		return types.Month{}, httputil.ErrMonthNotSet
	}

	month, err := types.ParseMonth(raw)
	if err != nil {
		return types.Month{}, httputil.ErrInvalidMonth
	}

	return month, nil
}
