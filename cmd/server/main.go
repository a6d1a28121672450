package main // Entry point of the admin console

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"go.opentelemetry.io/otel"

	"github.com/iliyamo/car-rental-admin/internal/apiclient"
	"github.com/iliyamo/car-rental-admin/internal/config"
	"github.com/iliyamo/car-rental-admin/internal/handler"
	"github.com/iliyamo/car-rental-admin/internal/logger"
	"github.com/iliyamo/car-rental-admin/internal/middleware"
	"github.com/iliyamo/car-rental-admin/internal/repository"
	"github.com/iliyamo/car-rental-admin/internal/router"
	"github.com/iliyamo/car-rental-admin/internal/service"
	"github.com/iliyamo/car-rental-admin/internal/tracing"
	"github.com/iliyamo/car-rental-admin/internal/view"
)

const serviceName = "car-rental-admin"

func main() {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		log.Printf("read .env: %v", err)
	}
	cfg := config.Load()
	lg := logger.Init(cfg.Env, serviceName)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	shutdownTracing, err := tracing.Init(ctx, serviceName, cfg.OTelEndpoint, cfg.OTelEnabled)
	if err != nil {
		log.Fatalf("init tracing: %v", err)
	}

	api := apiclient.New(cfg.APIBaseURL, cfg.APITimeout)
	stores := handler.Stores{
		Cars:      repository.NewCarRepo(api),
		Customers: repository.NewCustomerRepo(api),
		Rentals:   repository.NewRentalRepo(api),
		Feedbacks: repository.NewFeedbackRepo(api),
	}

	var audit service.Auditor = service.NopAuditor{}
	if cfg.AuditEnabled {
		pub := service.NewAuditPublisher(cfg.AMQPURL, lg)
		defer pub.Close()
		audit = pub
	}

	rdb := config.NewRedisClient()
	if rdb == nil {
		lg.Warn("redis unavailable, submit throttle disabled")
	} else {
		defer rdb.Close()
	}

	e := echo.New()
	e.HideBanner = true
	e.Renderer = view.NewRenderer()
	e.HTTPErrorHandler = handler.ErrorHandler(lg)
	e.Use(echomw.Recover())
	e.Use(echomw.RequestIDWithConfig(echomw.RequestIDConfig{Generator: uuid.NewString}))
	e.Use(middleware.Tracing(serviceName, otel.GetTracerProvider()))
	e.Use(middleware.RequestLog(lg))

	router.RegisterRoutes(e)
	router.RegisterAuth(e, handler.NewAuthHandler(cfg, repository.NewAuthRepo(api), lg))
	router.RegisterConsole(e, handler.NewConsole(stores, audit, lg), cfg.JWTSecret, config.LoadSubmitLimitConfig(), rdb, lg)

	go func() {
		addr := ":" + cfg.Port
		lg.Info("listening", "addr", addr, "env", cfg.Env, "api", cfg.APIBaseURL)
		if err := e.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			lg.Error("server stopped", "error", err)
			stop()
		}
	}()

	<-ctx.Done()
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		lg.Error("shutdown", "error", err)
	}
	if err := shutdownTracing(shutdownCtx); err != nil {
		lg.Error("tracing shutdown", "error", err)
	}
}
