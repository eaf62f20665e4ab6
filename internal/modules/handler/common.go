package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/formastudio/forma-api/internal/modules/serializer"
	"github.com/formastudio/forma-api/internal/modules/service"
)

// parseID reads the :id path param; on failure it writes the 400 response and
// reports false.
func parseID(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, serializer.ParamErr("invalid id", err))
		return uuid.Nil, false
	}
	return id, true
}

// abortWithServiceError maps service-layer errors onto the response envelope.
// Upload failures are reported distinctly from row-mutation failures.
func abortWithServiceError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrNotFound):
		c.JSON(http.StatusNotFound, serializer.NotFoundErr(""))
	case errors.Is(err, service.ErrUnsupportedMedia):
		c.JSON(http.StatusBadRequest, serializer.ParamErr("unsupported media type", err))
	case errors.Is(err, service.ErrUploadFailed):
		c.JSON(http.StatusBadGateway, serializer.UploadErr(err))
	default:
		c.JSON(http.StatusInternalServerError, serializer.DBErr("", err))
	}
}
