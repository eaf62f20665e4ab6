package router

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/formastudio/forma-api/internal/config"
	"github.com/formastudio/forma-api/internal/infra/authn"
	"github.com/formastudio/forma-api/internal/middleware"
	"github.com/formastudio/forma-api/internal/modules/handler"
	"github.com/formastudio/forma-api/internal/modules/repo"
	"github.com/formastudio/forma-api/internal/modules/serializer"
	"github.com/formastudio/forma-api/internal/telemetry"
)

type RouterDeps struct {
	Config   *config.Config
	Log      *zap.Logger
	Verifier authn.Verifier
	Users    repo.UserRepo

	Public       *handler.PublicHandler
	Consultation *handler.ConsultationHandler
	Message      *handler.MessageHandler
	Portfolio    *handler.PortfolioHandler
	Gallery      *handler.GalleryHandler
	Catalog      *handler.CatalogHandler
	Team         *handler.TeamHandler
	Testimonial  *handler.TestimonialHandler
	Project      *handler.ProjectHandler
	Proposal     *handler.ProposalHandler
	User         *handler.UserHandler
	Dashboard    *handler.DashboardHandler
}

func NewRouter(d RouterDeps) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())

	if d.Config.Telemetry.Enabled && d.Config.Telemetry.OtlpEndpoint != "" {
		r.Use(telemetry.GinMiddleware(d.Config.App.Name))
		r.Use(telemetry.TraceID())
	}

	r.Use(middleware.ZapLogger(d.Log))

	// health
	r.GET("/health", func(c *gin.Context) { c.JSON(http.StatusOK, serializer.Response{Msg: "ok"}) })

	v1 := r.Group("/api/v1")
	{
		// public site content
		v1.GET("/services", d.Public.ListServices)
		v1.GET("/portfolio", d.Public.ListPortfolio)
		v1.GET("/gallery", d.Public.ListGallery)
		v1.GET("/testimonials", d.Public.ListTestimonials)
		v1.GET("/team", d.Public.ListTeam)

		// visitor intake
		v1.POST("/consultations", d.Public.SubmitConsultation)
		v1.POST("/messages", d.Public.SubmitMessage)
	}

	admin := r.Group("/api/v1/admin")
	{
		admin.Use(middleware.UserAuth(d.Verifier, d.Users, d.Log))
		admin.Use(middleware.RequireAdmin())

		admin.GET("/dashboard", d.Dashboard.Stats)

		consultations := admin.Group("/consultations")
		{
			consultations.GET("", d.Consultation.List)
			consultations.PATCH("/:id", d.Consultation.Update)
			consultations.DELETE("/:id", d.Consultation.Delete)
		}

		messages := admin.Group("/messages")
		{
			messages.GET("", d.Message.List)
			messages.GET("/:id", d.Message.Open)
			messages.PATCH("/:id/status", d.Message.UpdateStatus)
			messages.DELETE("/:id", d.Message.Delete)
		}

		portfolio := admin.Group("/portfolio")
		{
			portfolio.GET("", d.Portfolio.List)
			portfolio.POST("", d.Portfolio.Create)
			portfolio.POST("/upload", d.Portfolio.Upload)
			portfolio.PATCH("/:id", d.Portfolio.Update)
			portfolio.DELETE("/:id", d.Portfolio.Delete)
		}

		gallery := admin.Group("/gallery")
		{
			gallery.GET("", d.Gallery.List)
			gallery.POST("/upload", d.Gallery.Upload)
			gallery.PATCH("/:id", d.Gallery.Update)
			gallery.DELETE("/:id", d.Gallery.Delete)
		}

		services := admin.Group("/services")
		{
			services.GET("", d.Catalog.List)
			services.POST("", d.Catalog.Create)
			services.PATCH("/:id", d.Catalog.Update)
			services.DELETE("/:id", d.Catalog.Delete)
		}

		team := admin.Group("/team")
		{
			team.GET("", d.Team.List)
			team.POST("", d.Team.Create)
			team.POST("/upload", d.Team.Upload)
			team.PATCH("/:id", d.Team.Update)
			team.DELETE("/:id", d.Team.Delete)
		}

		testimonials := admin.Group("/testimonials")
		{
			testimonials.GET("", d.Testimonial.List)
			testimonials.POST("", d.Testimonial.Create)
			testimonials.PATCH("/:id", d.Testimonial.Update)
			testimonials.DELETE("/:id", d.Testimonial.Delete)
		}

		projects := admin.Group("/projects")
		{
			projects.GET("", d.Project.List)
			projects.POST("", d.Project.Create)
			projects.PATCH("/:id", d.Project.Update)
			projects.DELETE("/:id", d.Project.Delete)
		}

		proposals := admin.Group("/proposals")
		{
			proposals.GET("", d.Proposal.List)
			proposals.POST("", d.Proposal.Create)
			proposals.PATCH("/:id", d.Proposal.Update)
			proposals.DELETE("/:id", d.Proposal.Delete)
		}

		users := admin.Group("/users")
		{
			users.GET("", d.User.List)
			users.PATCH("/:id/role", d.User.SetRole)
		}
	}

	return r
}
