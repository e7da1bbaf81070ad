package rest

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	apierrors "github.com/feral-file/ff-donate/internal/api/shared/errors"
	"github.com/feral-file/ff-donate/internal/logger"
)

// respondWithError sends a standardized error response
func respondWithError(c *gin.Context, apiErr *apierrors.APIError) {
	c.JSON(apiErr.Status(), apierrors.ErrorResponse{Error: apiErr})
}

// respondError maps err onto the error envelope. Internal errors are logged and their cause withheld.
func respondError(c *gin.Context, err error, fields ...zap.Field) {
	apiErr := apierrors.FromError(err)
	if apiErr.Code == apierrors.ErrCodeInternalError {
		logger.ErrorCtx(c.Request.Context(), err, append(fields, zap.String("route", c.FullPath()))...)
	}
	respondWithError(c, apiErr)
}

// respondMalformedBody sends a 400 for a request body that could not be decoded
func respondMalformedBody(c *gin.Context, err error) {
	respondWithError(c, apierrors.NewMalformedBodyError(err))
}
