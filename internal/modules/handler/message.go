package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/formastudio/forma-api/internal/modules/serializer"
	"github.com/formastudio/forma-api/internal/modules/service"
)

type MessageHandler struct {
	svc service.MessageService
}

func NewMessageHandler(s service.MessageService) *MessageHandler {
	return &MessageHandler{svc: s}
}

func (h *MessageHandler) List(c *gin.Context) {
	items, err := h.svc.List(c.Request.Context())
	if err != nil {
		abortWithServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, serializer.Response{Data: items})
}

// Open godoc
//
//	@Summary		Open a contact message
//	@Description	Returns the message; an unread message transitions to read as a side effect of being opened.
//	@Tags			admin
//	@Produce		json
//	@Param			id	path	string	true	"Message ID"	format(uuid)
//	@Security		BearerAuth
//	@Success		200	{object}	serializer.Response{data=model.ContactMessage}
//	@Failure		404	{object}	serializer.Response
//	@Router			/admin/messages/{id} [get]
func (h *MessageHandler) Open(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	out, err := h.svc.Open(c.Request.Context(), id)
	if err != nil {
		abortWithServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, serializer.Response{Data: out})
}

type UpdateMessageStatusReq struct {
	Status string `json:"status" binding:"required,oneof=unread read replied"`
}

func (h *MessageHandler) UpdateStatus(c *gin.Context) {
	var req UpdateMessageStatusReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, serializer.ParamErr("invalid status value, must be one of: unread, read, replied", err))
		return
	}

	id, ok := parseID(c)
	if !ok {
		return
	}

	out, err := h.svc.UpdateStatus(c.Request.Context(), id, req.Status)
	if err != nil {
		abortWithServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, serializer.Response{Data: out})
}

func (h *MessageHandler) Delete(c *gin.Context) {
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
