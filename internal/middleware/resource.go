package middleware

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/listas-tarefas/task-manager/internal/constants"
	apierrors "github.com/listas-tarefas/task-manager/internal/errors"
)

// RequireResourceID parses the :id path parameter. Ownership of the
// resource is checked by the service the handler calls.
func RequireResourceID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.ParseUint(c.Param("id"), 10, 64)
		if err != nil || id == 0 {
			apierrors.BadRequest(c, "Invalid ID")
			c.Abort()
			return
		}

		c.Set(constants.ContextKeyResourceID, id)
		c.Next()
	}
}

// GetResourceID retrieves the ID parsed by RequireResourceID
func GetResourceID(c *gin.Context) (uint64, bool) {
	id, exists := c.Get(constants.ContextKeyResourceID)
	if !exists {
		return 0, false
	}

	v, ok := id.(uint64)
	return v, ok
}
