package handlers

import (
	stderrors "errors"
	"strconv"

	"github.com/gin-gonic/gin"

	apierrors "github.com/projects-tool/project-management-api/internal/errors"
	"github.com/projects-tool/project-management-api/internal/services"
	"github.com/projects-tool/project-management-api/internal/validation"
)

// respondServiceError translates a service error into the matching HTTP
// response. Violation lists with a uniqueness failure map to 409, any other
// violation list to 400 with the full detail list.
func respondServiceError(c *gin.Context, err error) {
	var violations validation.Violations
	if stderrors.As(err, &violations) {
		if violations.Has(validation.CodeAlreadyExists) {
			apierrors.ConflictWithDetails(c, "Resource already exists", violations)
			return
		}
		apierrors.ValidationFailed(c, violations)
		return
	}

	switch {
	case stderrors.Is(err, services.ErrProjectNotFound),
		stderrors.Is(err, services.ErrBoardNotFound),
		stderrors.Is(err, services.ErrLabelNotFound),
		stderrors.Is(err, services.ErrListNotFound),
		stderrors.Is(err, services.ErrTaskNotFound):
		apierrors.NotFound(c, err.Error())
	case stderrors.Is(err, services.ErrNoLabelIDsProvided),
		stderrors.Is(err, services.ErrLabelNotInProject):
		apierrors.BadRequest(c, err.Error())
	case stderrors.Is(err, services.ErrImageStoreNotConfigured):
		apierrors.ServiceUnavailable(c, err.Error())
	default:
		apierrors.InternalError(c, "")
	}
}

// parseIDParam reads a numeric path parameter. It writes the 400 response
// itself when the value is not a number.
func parseIDParam(c *gin.Context, name string) (uint64, bool) {
	id, err := strconv.ParseUint(c.Param(name), 10, 64)
	if err != nil {
		apierrors.BadRequest(c, "Invalid "+name)
		return 0, false
	}
	return id, true
}
