package handlers

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/BruksfildServices01/cafe-api/internal/httperr"
	"github.com/BruksfildServices01/cafe-api/internal/middleware"
)

const (
	msgNotFound  = "Sorry a cafe with that id was not found in the database."
	msgNoCafes   = "Sorry, there are no cafes in the database."
	msgNoLoc     = "Sorry, we don't have a cafe at that location."
	msgForbidden = "Sorry, that's not allowed. Make sure you have the correct api-key."
	msgDuplicate = "A cafe with that name already exists."
	msgInternal  = "Something went wrong, please try again later."
)

// writeError maps service errors to responses. notFoundStatus lets a route
// report an unknown id with something other than 404.
func (h *CafeHandler) writeError(c *gin.Context, err error, notFoundStatus int) {
	switch {
	case httperr.IsBusiness(err, httperr.CodeCafeNotFound):
		httperr.Write(c, notFoundStatus, "Not Found", msgNotFound)

	case httperr.IsBusiness(err, httperr.CodeEmptyCollection):
		httperr.NotFound(c, msgNoCafes)

	case httperr.IsBusiness(err, httperr.CodeForbidden):
		httperr.Forbidden(c, msgForbidden)

	case httperr.IsBusiness(err, httperr.CodeMissingField):
		httperr.BadRequest(c, "Missing required field: "+httperr.FieldOf(err))

	case httperr.IsBusiness(err, httperr.CodeInvalidField):
		httperr.BadRequest(c, "Field is too long: "+httperr.FieldOf(err))

	case httperr.IsBusiness(err, httperr.CodeDuplicateName):
		httperr.Conflict(c, msgDuplicate)

	default:
		h.log.Error("request failed",
			zap.String("path", c.FullPath()),
			zap.String("request_id", c.GetString(middleware.ContextRequestID)),
			zap.Error(err),
		)
		httperr.Internal(c, msgInternal)
	}
}
