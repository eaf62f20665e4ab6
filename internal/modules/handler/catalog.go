package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/formastudio/forma-api/internal/modules/serializer"
	"github.com/formastudio/forma-api/internal/modules/service"
)

// CatalogHandler exposes the service-offering catalog to the admin panel.
type CatalogHandler struct {
	svc service.CatalogService
}

func NewCatalogHandler(s service.CatalogService) *CatalogHandler {
	return &CatalogHandler{svc: s}
}

func (h *CatalogHandler) List(c *gin.Context) {
	items, err := h.svc.List(c.Request.Context())
	if err != nil {
		abortWithServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, serializer.Response{Data: items})
}

type CreateServiceReq struct {
	Title        string   `json:"title" binding:"required"`
	Subtitle     string   `json:"subtitle"`
	Description  string   `json:"description" binding:"required"`
	ImageURL     string   `json:"image_url"`
	Features     []string `json:"features"`
	DisplayOrder int      `json:"display_order"`
}

func (h *CatalogHandler) Create(c *gin.Context) {
	var req CreateServiceReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, serializer.ParamErr("", err))
		return
	}

	out, err := h.svc.Create(c.Request.Context(), service.CreateServiceInput{
		Title:        req.Title,
		Subtitle:     req.Subtitle,
		Description:  req.Description,
		ImageURL:     req.ImageURL,
		Features:     req.Features,
		DisplayOrder: req.DisplayOrder,
	})
	if err != nil {
		abortWithServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, serializer.Response{Data: out})
}

type UpdateServiceReq struct {
	Title        *string   `json:"title"`
	Subtitle     *string   `json:"subtitle"`
	Description  *string   `json:"description"`
	ImageURL     *string   `json:"image_url"`
	Features     *[]string `json:"features"`
	DisplayOrder *int      `json:"display_order"`
}

func (h *CatalogHandler) Update(c *gin.Context) {
	var req UpdateServiceReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, serializer.ParamErr("", err))
		return
	}

	id, ok := parseID(c)
	if !ok {
		return
	}

	out, err := h.svc.Update(c.Request.Context(), id, service.UpdateServiceInput{
		Title:        req.Title,
		Subtitle:     req.Subtitle,
		Description:  req.Description,
		ImageURL:     req.ImageURL,
		Features:     req.Features,
		DisplayOrder: req.DisplayOrder,
	})
	if err != nil {
		abortWithServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, serializer.Response{Data: out})
}

func (h *CatalogHandler) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	if err := h.svc.Delete(c.Request.Context(), id); err != nil {
		abortWithServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, serializer.Response{Msg: "deleted"})
}
