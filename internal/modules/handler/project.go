package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/formastudio/forma-api/internal/modules/serializer"
	"github.com/formastudio/forma-api/internal/modules/service"
)

type ProjectHandler struct {
	svc service.ProjectService
}

func NewProjectHandler(s service.ProjectService) *ProjectHandler {
	return &ProjectHandler{svc: s}
}

func (h *ProjectHandler) List(c *gin.Context) {
	items, err := h.svc.List(c.Request.Context())
	if err != nil {
		abortWithServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, serializer.Response{Data: items})
}

type CreateProjectReq struct {
	Title                string     `json:"title" binding:"required"`
	ClientName           string     `json:"client_name" binding:"required"`
	ClientEmail          string     `json:"client_email" binding:"omitempty,email"`
	ClientPhone          string     `json:"client_phone"`
	Description          string     `json:"description"`
	Status               string     `json:"status" binding:"omitempty,oneof=pending in_progress completed cancelled"`
	Budget               *float64   `json:"budget"`
	StartDate            string     `json:"start_date"`
	EndDate              string     `json:"end_date"`
	AssignedTeamMemberID *uuid.UUID `json:"assigned_team_member_id"`
	Notes                string     `json:"notes"`
}

func (h *ProjectHandler) Create(c *gin.Context) {
	var req CreateProjectReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, serializer.ParamErr("", err))
		return
	}

	out, err := h.svc.Create(c.Request.Context(), service.CreateProjectInput{
		Title:                req.Title,
		ClientName:           req.ClientName,
		ClientEmail:          req.ClientEmail,
		ClientPhone:          req.ClientPhone,
		Description:          req.Description,
		Status:               req.Status,
		Budget:               req.Budget,
		StartDate:            req.StartDate,
		EndDate:              req.EndDate,
		AssignedTeamMemberID: req.AssignedTeamMemberID,
		Notes:                req.Notes,
	})
	if err != nil {
		abortWithServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, serializer.Response{Data: out})
}

type UpdateProjectReq struct {
	Title                *string    `json:"title"`
	ClientName           *string    `json:"client_name"`
	ClientEmail          *string    `json:"client_email" binding:"omitempty,email"`
	ClientPhone          *string    `json:"client_phone"`
	Description          *string    `json:"description"`
	Status               *string    `json:"status" binding:"omitempty,oneof=pending in_progress completed cancelled"`
	Budget               *float64   `json:"budget"`
	StartDate            *string    `json:"start_date"`
	EndDate              *string    `json:"end_date"`
	AssignedTeamMemberID *uuid.UUID `json:"assigned_team_member_id"`
	Notes                *string    `json:"notes"`
}

func (h *ProjectHandler) Update(c *gin.Context) {
	var req UpdateProjectReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, serializer.ParamErr("", err))
		return
	}

	id, ok := parseID(c)
	if !ok {
		return
	}

	out, err := h.svc.Update(c.Request.Context(), id, service.UpdateProjectInput{
		Title:                req.Title,
		ClientName:           req.ClientName,
		ClientEmail:          req.ClientEmail,
		ClientPhone:          req.ClientPhone,
		Description:          req.Description,
		Status:               req.Status,
		Budget:               req.Budget,
		StartDate:            req.StartDate,
		EndDate:              req.EndDate,
		AssignedTeamMemberID: req.AssignedTeamMemberID,
		Notes:                req.Notes,
	})
	if err != nil {
		abortWithServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, serializer.Response{Data: out})
}

func (h *ProjectHandler) Delete(c *gin.Context) {
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
