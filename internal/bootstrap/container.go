package bootstrap

import (
	"context"

	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/redis/go-redis/v9"
	"github.com/samber/do"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/formastudio/forma-api/internal/config"
	"github.com/formastudio/forma-api/internal/infra/authn"
	"github.com/formastudio/forma-api/internal/infra/blob"
	"github.com/formastudio/forma-api/internal/infra/cache"
	"github.com/formastudio/forma-api/internal/infra/db"
	"github.com/formastudio/forma-api/internal/infra/logger"
	mq "github.com/formastudio/forma-api/internal/infra/queue"
	"github.com/formastudio/forma-api/internal/modules/handler"
	"github.com/formastudio/forma-api/internal/modules/model"
	"github.com/formastudio/forma-api/internal/modules/repo"
	"github.com/formastudio/forma-api/internal/modules/service"
)

func BuildContainer() *do.Injector {
	inj := do.New()

	// config
	do.Provide(inj, func(i *do.Injector) (*config.Config, error) {
		return config.Load()
	})

	// logger
	do.Provide(inj, func(i *do.Injector) (*zap.Logger, error) {
		cfg := do.MustInvoke[*config.Config](i)
		return logger.New(cfg.Log.Level)
	})

	// DB
	do.Provide(inj, func(i *do.Injector) (*gorm.DB, error) {
		cfg := do.MustInvoke[*config.Config](i)
		log := do.MustInvoke[*zap.Logger](i)
		d, err := db.New(cfg)
		if err != nil {
			return nil, err
		}

		if cfg.Database.AutoMigrate {
			_ = d.AutoMigrate(
				&model.ConsultationRequest{},
				&model.ContactMessage{},
				&model.PortfolioItem{},
				&model.GalleryItem{},
				&model.Service{},
				&model.TeamMember{},
				&model.Testimonial{},
				&model.Project{},
				&model.Proposal{},
				&model.Profile{},
				&model.UserRole{},
			)
		}

		if err := EnsureAdminRole(context.Background(), d, cfg, log); err != nil {
			return nil, err
		}

		return d, nil
	})

	// Redis (optional)
	do.Provide(inj, func(i *do.Injector) (*redis.Client, error) {
		cfg := do.MustInvoke[*config.Config](i)
		if !cfg.Redis.Enabled {
			return nil, nil
		}
		return cache.New(cfg)
	})

	// S3
	do.Provide(inj, func(i *do.Injector) (blob.Store, error) {
		cfg := do.MustInvoke[*config.Config](i)
		return blob.NewS3(context.Background(), cfg)
	})

	// Auth token verifier
	do.Provide(inj, func(i *do.Injector) (authn.Verifier, error) {
		cfg := do.MustInvoke[*config.Config](i)
		return authn.NewSupabaseVerifier(cfg), nil
	})

	// RabbitMQ (optional) lead-event publisher
	do.Provide(inj, func(i *do.Injector) (service.EventPublisher, error) {
		cfg := do.MustInvoke[*config.Config](i)
		if !cfg.RabbitMQ.Enabled {
			return nil, nil
		}
		log := do.MustInvoke[*zap.Logger](i)

		dialFn := mq.DialFunc(func() (*amqp.Connection, error) {
			return amqp.Dial(cfg.RabbitMQ.URL)
		})
		conn, err := dialFn()
		if err != nil {
			return nil, err
		}
		return mq.NewPublisher(conn, log, cfg, dialFn)
	})

	// Repo
	do.Provide(inj, func(i *do.Injector) (repo.ConsultationRepo, error) {
		return repo.NewConsultationRepo(do.MustInvoke[*gorm.DB](i)), nil
	})
	do.Provide(inj, func(i *do.Injector) (repo.MessageRepo, error) {
		return repo.NewMessageRepo(do.MustInvoke[*gorm.DB](i)), nil
	})
	do.Provide(inj, func(i *do.Injector) (repo.PortfolioRepo, error) {
		return repo.NewPortfolioRepo(do.MustInvoke[*gorm.DB](i)), nil
	})
	do.Provide(inj, func(i *do.Injector) (repo.GalleryRepo, error) {
		return repo.NewGalleryRepo(do.MustInvoke[*gorm.DB](i)), nil
	})
	do.Provide(inj, func(i *do.Injector) (repo.ServiceRepo, error) {
		return repo.NewServiceRepo(do.MustInvoke[*gorm.DB](i)), nil
	})
	do.Provide(inj, func(i *do.Injector) (repo.TeamRepo, error) {
		return repo.NewTeamRepo(do.MustInvoke[*gorm.DB](i)), nil
	})
	do.Provide(inj, func(i *do.Injector) (repo.TestimonialRepo, error) {
		return repo.NewTestimonialRepo(do.MustInvoke[*gorm.DB](i)), nil
	})
	do.Provide(inj, func(i *do.Injector) (repo.ProjectRepo, error) {
		return repo.NewProjectRepo(do.MustInvoke[*gorm.DB](i)), nil
	})
	do.Provide(inj, func(i *do.Injector) (repo.ProposalRepo, error) {
		return repo.NewProposalRepo(do.MustInvoke[*gorm.DB](i)), nil
	})
	do.Provide(inj, func(i *do.Injector) (repo.UserRepo, error) {
		return repo.NewUserRepo(do.MustInvoke[*gorm.DB](i)), nil
	})

	// Service
	do.Provide(inj, func(i *do.Injector) (service.IntakeService, error) {
		return service.NewIntakeService(
			do.MustInvoke[repo.ConsultationRepo](i),
			do.MustInvoke[repo.MessageRepo](i),
			do.MustInvoke[service.EventPublisher](i),
			do.MustInvoke[*config.Config](i),
			do.MustInvoke[*zap.Logger](i),
		), nil
	})
	do.Provide(inj, func(i *do.Injector) (service.ConsultationService, error) {
		return service.NewConsultationService(
			do.MustInvoke[repo.ConsultationRepo](i),
			do.MustInvoke[*zap.Logger](i),
		), nil
	})
	do.Provide(inj, func(i *do.Injector) (service.MessageService, error) {
		return service.NewMessageService(
			do.MustInvoke[repo.MessageRepo](i),
			do.MustInvoke[*zap.Logger](i),
		), nil
	})
	do.Provide(inj, func(i *do.Injector) (service.PortfolioService, error) {
		return service.NewPortfolioService(
			do.MustInvoke[repo.PortfolioRepo](i),
			do.MustInvoke[blob.Store](i),
			do.MustInvoke[*zap.Logger](i),
		), nil
	})
	do.Provide(inj, func(i *do.Injector) (service.GalleryService, error) {
		return service.NewGalleryService(
			do.MustInvoke[repo.GalleryRepo](i),
			do.MustInvoke[blob.Store](i),
			do.MustInvoke[*zap.Logger](i),
		), nil
	})
	do.Provide(inj, func(i *do.Injector) (service.CatalogService, error) {
		return service.NewCatalogService(do.MustInvoke[repo.ServiceRepo](i)), nil
	})
	do.Provide(inj, func(i *do.Injector) (service.TeamService, error) {
		return service.NewTeamService(
			do.MustInvoke[repo.TeamRepo](i),
			do.MustInvoke[blob.Store](i),
			do.MustInvoke[*zap.Logger](i),
		), nil
	})
	do.Provide(inj, func(i *do.Injector) (service.TestimonialService, error) {
		return service.NewTestimonialService(do.MustInvoke[repo.TestimonialRepo](i)), nil
	})
	do.Provide(inj, func(i *do.Injector) (service.ProjectService, error) {
		return service.NewProjectService(do.MustInvoke[repo.ProjectRepo](i)), nil
	})
	do.Provide(inj, func(i *do.Injector) (service.ProposalService, error) {
		return service.NewProposalService(do.MustInvoke[repo.ProposalRepo](i)), nil
	})
	do.Provide(inj, func(i *do.Injector) (service.UserService, error) {
		return service.NewUserService(do.MustInvoke[repo.UserRepo](i)), nil
	})
	do.Provide(inj, func(i *do.Injector) (service.DashboardService, error) {
		return service.NewDashboardService(
			do.MustInvoke[repo.ConsultationRepo](i),
			do.MustInvoke[repo.MessageRepo](i),
			do.MustInvoke[repo.PortfolioRepo](i),
			do.MustInvoke[repo.TestimonialRepo](i),
			do.MustInvoke[repo.ProjectRepo](i),
			do.MustInvoke[repo.ProposalRepo](i),
			do.MustInvoke[*redis.Client](i),
			do.MustInvoke[*zap.Logger](i),
		), nil
	})

	// Handler
	do.Provide(inj, func(i *do.Injector) (*handler.PublicHandler, error) {
		return handler.NewPublicHandler(
			do.MustInvoke[service.CatalogService](i),
			do.MustInvoke[service.PortfolioService](i),
			do.MustInvoke[service.GalleryService](i),
			do.MustInvoke[service.TestimonialService](i),
			do.MustInvoke[service.TeamService](i),
			do.MustInvoke[service.IntakeService](i),
		), nil
	})
	do.Provide(inj, func(i *do.Injector) (*handler.ConsultationHandler, error) {
		return handler.NewConsultationHandler(do.MustInvoke[service.ConsultationService](i)), nil
	})
	do.Provide(inj, func(i *do.Injector) (*handler.MessageHandler, error) {
		return handler.NewMessageHandler(do.MustInvoke[service.MessageService](i)), nil
	})
	do.Provide(inj, func(i *do.Injector) (*handler.PortfolioHandler, error) {
		return handler.NewPortfolioHandler(do.MustInvoke[service.PortfolioService](i)), nil
	})
	do.Provide(inj, func(i *do.Injector) (*handler.GalleryHandler, error) {
		return handler.NewGalleryHandler(do.MustInvoke[service.GalleryService](i)), nil
	})
	do.Provide(inj, func(i *do.Injector) (*handler.CatalogHandler, error) {
		return handler.NewCatalogHandler(do.MustInvoke[service.CatalogService](i)), nil
	})
	do.Provide(inj, func(i *do.Injector) (*handler.TeamHandler, error) {
		return handler.NewTeamHandler(do.MustInvoke[service.TeamService](i)), nil
	})
	do.Provide(inj, func(i *do.Injector) (*handler.TestimonialHandler, error) {
		return handler.NewTestimonialHandler(do.MustInvoke[service.TestimonialService](i)), nil
	})
	do.Provide(inj, func(i *do.Injector) (*handler.ProjectHandler, error) {
		return handler.NewProjectHandler(do.MustInvoke[service.ProjectService](i)), nil
	})
	do.Provide(inj, func(i *do.Injector) (*handler.ProposalHandler, error) {
		return handler.NewProposalHandler(do.MustInvoke[service.ProposalService](i)), nil
	})
	do.Provide(inj, func(i *do.Injector) (*handler.UserHandler, error) {
		return handler.NewUserHandler(do.MustInvoke[service.UserService](i)), nil
	})
	do.Provide(inj, func(i *do.Injector) (*handler.DashboardHandler, error) {
		return handler.NewDashboardHandler(do.MustInvoke[service.DashboardService](i)), nil
	})

	return inj
}
