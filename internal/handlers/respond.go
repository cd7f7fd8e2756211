package handlers

import (
	"errors"
	"log"

	"github.com/gin-gonic/gin"
	"github.com/listas-tarefas/task-manager/internal/dto"
	apierrors "github.com/listas-tarefas/task-manager/internal/errors"
	"github.com/listas-tarefas/task-manager/internal/middleware"
	"github.com/listas-tarefas/task-manager/internal/services"
)

// currentUserID returns the authenticated user, responding 401 when absent.
func currentUserID(c *gin.Context) (uint64, bool) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		apierrors.Unauthorized(c, "Not authenticated")
		return 0, false
	}
	return userID, true
}

// resourceID returns the :id parsed by middleware.RequireResourceID.
func resourceID(c *gin.Context) (uint64, bool) {
	id, exists := middleware.GetResourceID(c)
	if !exists {
		apierrors.BadRequest(c, "Invalid ID")
		return 0, false
	}
	return id, true
}

// flashFromQuery reads the one-time message a client carries over from the
// redirect of a mutation.
func flashFromQuery(c *gin.Context) dto.FlashDTO {
	return dto.NewFlash(c.Query("flash_success"), c.Query("flash_error"))
}

// respondServiceError maps domain errors onto API errors.
func respondServiceError(c *gin.Context, err error) {
	if verr, ok := services.AsValidationError(err); ok {
		apierrors.ValidationFailed(c, verr.Fields)
		return
	}

	switch {
	case errors.Is(err, services.ErrForbidden):
		apierrors.Forbidden(c, "You do not have access to this resource")
	case errors.Is(err, services.ErrListaNotFound),
		errors.Is(err, services.ErrTarefaNotFound):
		apierrors.NotFound(c, err.Error())
	default:
		log.Printf("request %s failed: %v", middleware.GetRequestID(c), err)
		apierrors.InternalError(c, "")
	}
}

// bindJSON binds the request body, answering 422 for field errors and 400
// for anything unparseable.
func bindJSON(c *gin.Context, req interface{}) bool {
	if err := c.ShouldBindJSON(req); err != nil {
		if fields, ok := bindingErrors(err); ok {
			apierrors.ValidationFailed(c, fields)
		} else {
			apierrors.BadRequest(c, "Invalid request body")
		}
		return false
	}
	return true
}
