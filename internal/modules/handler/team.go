package handler

import (
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/formastudio/forma-api/internal/modules/serializer"
	"github.com/formastudio/forma-api/internal/modules/service"
)

type TeamHandler struct {
	svc service.TeamService
}

func NewTeamHandler(s service.TeamService) *TeamHandler {
	return &TeamHandler{svc: s}
}

func (h *TeamHandler) List(c *gin.Context) {
	items, err := h.svc.List(c.Request.Context())
	if err != nil {
		abortWithServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, serializer.Response{Data: items})
}

type CreateTeamMemberReq struct {
	FullName     string `json:"full_name" binding:"required"`
	Role         string `json:"role" binding:"required"`
	Bio          string `json:"bio"`
	Email        string `json:"email" binding:"omitempty,email"`
	Phone        string `json:"phone"`
	PhotoURL     string `json:"photo_url"`
	VideoURL     string `json:"video_url"`
	IsLeader     bool   `json:"is_leader"`
	DisplayOrder int    `json:"display_order"`
}

func (h *TeamHandler) Create(c *gin.Context) {
	var req CreateTeamMemberReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, serializer.ParamErr("", err))
		return
	}

	out, err := h.svc.Create(c.Request.Context(), service.CreateTeamMemberInput{
		FullName:     req.FullName,
		Role:         req.Role,
		Bio:          req.Bio,
		Email:        req.Email,
		Phone:        req.Phone,
		PhotoURL:     req.PhotoURL,
		VideoURL:     req.VideoURL,
		IsLeader:     req.IsLeader,
		DisplayOrder: req.DisplayOrder,
	})
	if err != nil {
		abortWithServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, serializer.Response{Data: out})
}

type UpdateTeamMemberReq struct {
	FullName     *string `json:"full_name"`
	Role         *string `json:"role"`
	Bio          *string `json:"bio"`
	Email        *string `json:"email" binding:"omitempty,email"`
	Phone        *string `json:"phone"`
	PhotoURL     *string `json:"photo_url"`
	VideoURL     *string `json:"video_url"`
	IsLeader     *bool   `json:"is_leader"`
	DisplayOrder *int    `json:"display_order"`
}

func (h *TeamHandler) Update(c *gin.Context) {
	var req UpdateTeamMemberReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, serializer.ParamErr("", err))
		return
	}

	id, ok := parseID(c)
	if !ok {
		return
	}

	out, err := h.svc.Update(c.Request.Context(), id, service.UpdateTeamMemberInput{
		FullName:     req.FullName,
		Role:         req.Role,
		Bio:          req.Bio,
		Email:        req.Email,
		Phone:        req.Phone,
		PhotoURL:     req.PhotoURL,
		VideoURL:     req.VideoURL,
		IsLeader:     req.IsLeader,
		DisplayOrder: req.DisplayOrder,
	})
	if err != nil {
		abortWithServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, serializer.Response{Data: out})
}

func (h *TeamHandler) Delete(c *gin.Context) {
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

// Upload stores a member photo or intro video; the response carries the
// detected media type so the form knows which URL field to fill.
func (h *TeamHandler) Upload(c *gin.Context) {
	fh, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, serializer.ParamErr("missing file", err))
		return
	}

	f, err := fh.Open()
	if err != nil {
		c.JSON(http.StatusBadRequest, serializer.ParamErr("unreadable file", err))
		return
	}
	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil {
		c.JSON(http.StatusBadRequest, serializer.ParamErr("unreadable file", err))
		return
	}

	url, kind, err := h.svc.UploadMedia(c.Request.Context(), data)
	if err != nil {
		abortWithServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, serializer.Response{Data: UploadResult{URL: url, MediaType: kind}})
}
