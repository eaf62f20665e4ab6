package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/formastudio/forma-api/internal/modules/serializer"
	"github.com/formastudio/forma-api/internal/modules/service"
)

type TestimonialHandler struct {
	svc service.TestimonialService
}

func NewTestimonialHandler(s service.TestimonialService) *TestimonialHandler {
	return &TestimonialHandler{svc: s}
}

func (h *TestimonialHandler) List(c *gin.Context) {
	items, err := h.svc.List(c.Request.Context())
	if err != nil {
		abortWithServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, serializer.Response{Data: items})
}

type CreateTestimonialReq struct {
	Name     string `json:"name" binding:"required"`
	Role     string `json:"role"`
	Content  string `json:"content" binding:"required"`
	Rating   int    `json:"rating" binding:"required,min=1,max=5"`
	Featured bool   `json:"featured"`
}

func (h *TestimonialHandler) Create(c *gin.Context) {
	var req CreateTestimonialReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, serializer.ParamErr("", err))
		return
	}

	out, err := h.svc.Create(c.Request.Context(), service.CreateTestimonialInput{
		Name:     req.Name,
		Role:     req.Role,
		Content:  req.Content,
		Rating:   req.Rating,
		Featured: req.Featured,
	})
	if err != nil {
		abortWithServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, serializer.Response{Data: out})
}

type UpdateTestimonialReq struct {
	Name     *string `json:"name"`
	Role     *string `json:"role"`
	Content  *string `json:"content"`
	Rating   *int    `json:"rating" binding:"omitempty,min=1,max=5"`
	Featured *bool   `json:"featured"`
}

func (h *TestimonialHandler) Update(c *gin.Context) {
	var req UpdateTestimonialReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, serializer.ParamErr("", err))
		return
	}

	id, ok := parseID(c)
	if !ok {
		return
	}

	out, err := h.svc.Update(c.Request.Context(), id, service.UpdateTestimonialInput{
		Name:     req.Name,
		Role:     req.Role,
		Content:  req.Content,
		Rating:   req.Rating,
		Featured: req.Featured,
	})
	if err != nil {
		abortWithServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, serializer.Response{Data: out})
}

func (h *TestimonialHandler) Delete(c *gin.Context) {
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
