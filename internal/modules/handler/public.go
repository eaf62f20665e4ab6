package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/formastudio/forma-api/internal/modules/serializer"
	"github.com/formastudio/forma-api/internal/modules/service"
)

// PublicHandler serves the marketing site: read-only content lists and the
// two lead-intake forms.
type PublicHandler struct {
	catalog      service.CatalogService
	portfolio    service.PortfolioService
	gallery      service.GalleryService
	testimonials service.TestimonialService
	team         service.TeamService
	intake       service.IntakeService
}

func NewPublicHandler(
	catalog service.CatalogService,
	portfolio service.PortfolioService,
	gallery service.GalleryService,
	testimonials service.TestimonialService,
	team service.TeamService,
	intake service.IntakeService,
) *PublicHandler {
	return &PublicHandler{
		catalog:      catalog,
		portfolio:    portfolio,
		gallery:      gallery,
		testimonials: testimonials,
		team:         team,
		intake:       intake,
	}
}

// ListServices godoc
//
//	@Summary	List service offerings in curated order
//	@Tags		public
//	@Produce	json
//	@Success	200	{object}	serializer.Response{data=[]model.Service}
//	@Router		/services [get]
func (h *PublicHandler) ListServices(c *gin.Context) {
	items, err := h.catalog.List(c.Request.Context())
	if err != nil {
		abortWithServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, serializer.Response{Data: items})
}

// ListPortfolio godoc
//
//	@Summary	List portfolio items, newest first
//	@Tags		public
//	@Produce	json
//	@Success	200	{object}	serializer.Response{data=[]model.PortfolioItem}
//	@Router		/portfolio [get]
func (h *PublicHandler) ListPortfolio(c *gin.Context) {
	items, err := h.portfolio.List(c.Request.Context())
	if err != nil {
		abortWithServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, serializer.Response{Data: items})
}

func (h *PublicHandler) ListGallery(c *gin.Context) {
	items, err := h.gallery.List(c.Request.Context())
	if err != nil {
		abortWithServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, serializer.Response{Data: items})
}

func (h *PublicHandler) ListTestimonials(c *gin.Context) {
	items, err := h.testimonials.List(c.Request.Context())
	if err != nil {
		abortWithServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, serializer.Response{Data: items})
}

func (h *PublicHandler) ListTeam(c *gin.Context) {
	items, err := h.team.List(c.Request.Context())
	if err != nil {
		abortWithServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, serializer.Response{Data: items})
}

type SubmitConsultationReq struct {
	Name          string `json:"name" binding:"required"`
	Email         string `json:"email" binding:"required,email"`
	Phone         string `json:"phone" binding:"required"`
	PreferredDate string `json:"preferred_date" binding:"required"`
	ProjectType   string `json:"project_type" binding:"required"`
	Message       string `json:"message"`
}

// SubmitConsultation godoc
//
//	@Summary		Submit a consultation request
//	@Description	Public intake form. The request is stored as "pending" for the studio to triage.
//	@Tags			public
//	@Accept			json
//	@Produce		json
//	@Param			body	body		SubmitConsultationReq	true	"Consultation request"
//	@Success		200		{object}	serializer.Response{data=model.ConsultationRequest}
//	@Failure		400		{object}	serializer.Response
//	@Router			/consultations [post]
func (h *PublicHandler) SubmitConsultation(c *gin.Context) {
	var req SubmitConsultationReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, serializer.ParamErr("", err))
		return
	}

	out, err := h.intake.SubmitConsultation(c.Request.Context(), service.SubmitConsultationInput{
		Name:          req.Name,
		Email:         req.Email,
		Phone:         req.Phone,
		PreferredDate: req.PreferredDate,
		ProjectType:   req.ProjectType,
		Message:       req.Message,
	})
	if err != nil {
		abortWithServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, serializer.Response{Data: out, Msg: "consultation request received"})
}

type SubmitMessageReq struct {
	Name    string `json:"name" binding:"required"`
	Email   string `json:"email" binding:"required,email"`
	Phone   string `json:"phone"`
	Subject string `json:"subject" binding:"required"`
	Message string `json:"message" binding:"required"`
}

func (h *PublicHandler) SubmitMessage(c *gin.Context) {
	var req SubmitMessageReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, serializer.ParamErr("", err))
		return
	}

	out, err := h.intake.SubmitMessage(c.Request.Context(), service.SubmitMessageInput{
		Name:    req.Name,
		Email:   req.Email,
		Phone:   req.Phone,
		Subject: req.Subject,
		Message: req.Message,
	})
	if err != nil {
		abortWithServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, serializer.Response{Data: out, Msg: "message received"})
}
