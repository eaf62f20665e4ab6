package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/formastudio/forma-api/internal/modules/serializer"
	"github.com/formastudio/forma-api/internal/modules/service"
)

type ConsultationHandler struct {
	svc service.ConsultationService
}

func NewConsultationHandler(s service.ConsultationService) *ConsultationHandler {
	return &ConsultationHandler{svc: s}
}

func (h *ConsultationHandler) List(c *gin.Context) {
	items, err := h.svc.List(c.Request.Context())
	if err != nil {
		abortWithServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, serializer.Response{Data: items})
}

type UpdateConsultationReq struct {
	Status *string `json:"status" binding:"omitempty,oneof=pending contacted scheduled completed cancelled"`
	Notes  *string `json:"notes"`
}

// Update godoc
//
//	@Summary		Update a consultation request
//	@Description	Partial patch: only supplied fields change. Inline status changes from the list send just the status.
//	@Tags			admin
//	@Accept			json
//	@Produce		json
//	@Param			id		path		string					true	"Consultation ID"	format(uuid)
//	@Param			body	body		UpdateConsultationReq	true	"Fields to change"
//	@Security		BearerAuth
//	@Success		200	{object}	serializer.Response{data=model.ConsultationRequest}
//	@Failure		404	{object}	serializer.Response
//	@Router			/admin/consultations/{id} [patch]
func (h *ConsultationHandler) Update(c *gin.Context) {
	var req UpdateConsultationReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, serializer.ParamErr("", err))
		return
	}

	id, ok := parseID(c)
	if !ok {
		return
	}

	out, err := h.svc.Update(c.Request.Context(), id, service.UpdateConsultationInput{
		Status: req.Status,
		Notes:  req.Notes,
	})
	if err != nil {
		abortWithServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, serializer.Response{Data: out})
}

func (h *ConsultationHandler) Delete(c *gin.Context) {
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
