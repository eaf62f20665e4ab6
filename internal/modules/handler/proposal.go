package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/formastudio/forma-api/internal/modules/serializer"
	"github.com/formastudio/forma-api/internal/modules/service"
)

type ProposalHandler struct {
	svc service.ProposalService
}

func NewProposalHandler(s service.ProposalService) *ProposalHandler {
	return &ProposalHandler{svc: s}
}

func (h *ProposalHandler) List(c *gin.Context) {
	items, err := h.svc.List(c.Request.Context())
	if err != nil {
		abortWithServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, serializer.Response{Data: items})
}

type CreateProposalReq struct {
	Title           string   `json:"title" binding:"required"`
	ClientName      string   `json:"client_name" binding:"required"`
	ClientEmail     string   `json:"client_email" binding:"omitempty,email"`
	ClientPhone     string   `json:"client_phone"`
	Description     string   `json:"description"`
	EstimatedBudget *float64 `json:"estimated_budget"`
	Status          string   `json:"status" binding:"omitempty,oneof=draft sent accepted rejected"`
	ValidUntil      string   `json:"valid_until"`
	Notes           string   `json:"notes"`
}

func (h *ProposalHandler) Create(c *gin.Context) {
	var req CreateProposalReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, serializer.ParamErr("", err))
		return
	}

	out, err := h.svc.Create(c.Request.Context(), service.CreateProposalInput{
		Title:           req.Title,
		ClientName:      req.ClientName,
		ClientEmail:     req.ClientEmail,
		ClientPhone:     req.ClientPhone,
		Description:     req.Description,
		EstimatedBudget: req.EstimatedBudget,
		Status:          req.Status,
		ValidUntil:      req.ValidUntil,
		Notes:           req.Notes,
	})
	if err != nil {
		abortWithServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, serializer.Response{Data: out})
}

type UpdateProposalReq struct {
	Title           *string  `json:"title"`
	ClientName      *string  `json:"client_name"`
	ClientEmail     *string  `json:"client_email" binding:"omitempty,email"`
	ClientPhone     *string  `json:"client_phone"`
	Description     *string  `json:"description"`
	EstimatedBudget *float64 `json:"estimated_budget"`
	Status          *string  `json:"status" binding:"omitempty,oneof=draft sent accepted rejected"`
	ValidUntil      *string  `json:"valid_until"`
	Notes           *string  `json:"notes"`
}

func (h *ProposalHandler) Update(c *gin.Context) {
	var req UpdateProposalReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, serializer.ParamErr("", err))
		return
	}

	id, ok := parseID(c)
	if !ok {
		return
	}

	out, err := h.svc.Update(c.Request.Context(), id, service.UpdateProposalInput{
		Title:           req.Title,
		ClientName:      req.ClientName,
		ClientEmail:     req.ClientEmail,
		ClientPhone:     req.ClientPhone,
		Description:     req.Description,
		EstimatedBudget: req.EstimatedBudget,
		Status:          req.Status,
		ValidUntil:      req.ValidUntil,
		Notes:           req.Notes,
	})
	if err != nil {
		abortWithServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, serializer.Response{Data: out})
}

func (h *ProposalHandler) Delete(c *gin.Context) {
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
