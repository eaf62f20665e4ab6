package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/formastudio/forma-api/internal/modules/serializer"
	"github.com/formastudio/forma-api/internal/modules/service"
)

type DashboardHandler struct {
	svc service.DashboardService
}

func NewDashboardHandler(s service.DashboardService) *DashboardHandler {
	return &DashboardHandler{svc: s}
}

func (h *DashboardHandler) Stats(c *gin.Context) {
	stats, err := h.svc.Stats(c.Request.Context())
	if err != nil {
		abortWithServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, serializer.Response{Data: stats})
}
