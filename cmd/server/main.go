package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/samber/do"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/formastudio/forma-api/internal/bootstrap"
	"github.com/formastudio/forma-api/internal/config"
	"github.com/formastudio/forma-api/internal/infra/authn"
	"github.com/formastudio/forma-api/internal/infra/cache"
	"github.com/formastudio/forma-api/internal/infra/db"
	"github.com/formastudio/forma-api/internal/modules/handler"
	"github.com/formastudio/forma-api/internal/modules/repo"
	"github.com/formastudio/forma-api/internal/router"
	"github.com/formastudio/forma-api/internal/telemetry"
)

func main() {
	inj := bootstrap.BuildContainer()

	cfg := do.MustInvoke[*config.Config](inj)
	log := do.MustInvoke[*zap.Logger](inj)
	defer log.Sync()

	gin.SetMode(cfg.App.Mode)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if cfg.Telemetry.Enabled && cfg.Telemetry.OtlpEndpoint != "" {
		if _, err := telemetry.SetupTracing(cfg); err != nil {
			log.Warn("tracing setup failed", zap.Error(err))
		} else {
			defer func() {
				shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
				defer cancel()
				_ = telemetry.Shutdown(shutdownCtx)
			}()
		}
	}

	conn := do.MustInvoke[*gorm.DB](inj)
	if cfg.Telemetry.Enabled {
		if err := db.RegisterOpenTelemetryPlugin(conn); err != nil {
			log.Warn("db tracing plugin failed", zap.Error(err))
		}
	}

	if rdb := do.MustInvoke[*redis.Client](inj); rdb != nil && cfg.Telemetry.Enabled {
		if err := cache.RegisterOpenTelemetryPlugin(rdb); err != nil {
			log.Warn("redis tracing plugin failed", zap.Error(err))
		}
	}

	r := router.NewRouter(router.RouterDeps{
		Config:   cfg,
		Log:      log,
		Verifier: do.MustInvoke[authn.Verifier](inj),
		Users:    do.MustInvoke[repo.UserRepo](inj),

		Public:       do.MustInvoke[*handler.PublicHandler](inj),
		Consultation: do.MustInvoke[*handler.ConsultationHandler](inj),
		Message:      do.MustInvoke[*handler.MessageHandler](inj),
		Portfolio:    do.MustInvoke[*handler.PortfolioHandler](inj),
		Gallery:      do.MustInvoke[*handler.GalleryHandler](inj),
		Catalog:      do.MustInvoke[*handler.CatalogHandler](inj),
		Team:         do.MustInvoke[*handler.TeamHandler](inj),
		Testimonial:  do.MustInvoke[*handler.TestimonialHandler](inj),
		Project:      do.MustInvoke[*handler.ProjectHandler](inj),
		Proposal:     do.MustInvoke[*handler.ProposalHandler](inj),
		User:         do.MustInvoke[*handler.UserHandler](inj),
		Dashboard:    do.MustInvoke[*handler.DashboardHandler](inj),
	})

	srv := &http.Server{
		Addr:              cfg.App.Addr,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		log.Info("server listening", zap.String("addr", cfg.App.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal("server failed", zap.Error(err))
		}
	}()

	<-ctx.Done()
	log.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("graceful shutdown failed", zap.Error(err))
	}

	if err := inj.Shutdown(); err != nil {
		log.Error("container shutdown failed", zap.Error(err))
	}
}
