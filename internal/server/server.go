// Package server assembles the fiber application: middleware, routes and
// the listen/shutdown lifecycle.
package server

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/AnthoniusHendriyanto/shop-service/config"
	"github.com/AnthoniusHendriyanto/shop-service/db"
	authhandler "github.com/AnthoniusHendriyanto/shop-service/internal/auth/handler"
	authservice "github.com/AnthoniusHendriyanto/shop-service/internal/auth/service"
	"github.com/AnthoniusHendriyanto/shop-service/internal/httpx"
	"github.com/AnthoniusHendriyanto/shop-service/internal/logging"
	"github.com/AnthoniusHendriyanto/shop-service/internal/metrics"
	producthandler "github.com/AnthoniusHendriyanto/shop-service/internal/product/handler"
	productservice "github.com/AnthoniusHendriyanto/shop-service/internal/product/service"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
)

type Server struct {
	app     *fiber.App
	cfg     *config.Config
	logger  logging.Logger
	metrics *metrics.Metrics
}

func New(
	cfg *config.Config,
	store *db.Store,
	tokenService *authservice.TokenService,
	hasher authservice.PasswordHasher,
	logger logging.Logger,
) *Server {
	s := &Server{cfg: cfg, logger: logger, metrics: metrics.New()}

	s.app = fiber.New(fiber.Config{
		AppName:               "shop-service",
		DisableStartupMessage: true,
		ErrorHandler:          s.errorHandler,
	})

	s.app.Use(requestid.New())
	s.app.Use(s.requestLogger())
	s.app.Use(s.metrics.Middleware())
	s.app.Use(recover.New())
	s.app.Use(cors.New(cors.Config{AllowOrigins: cfg.CORSAllowOrigins}))

	userService := authservice.NewUserService(store.Users, store.RefreshTokens, tokenService, hasher, logger)
	authHandler := authhandler.NewAuthHandler(userService, tokenService, logger)
	productHandler := producthandler.NewProductHandler(productservice.NewProductService(store.Products, logger), logger)

	s.app.Get("/", index)
	s.app.Get("/metrics", s.metrics.Handler())
	authhandler.RegisterRoutes(s.app, authHandler)
	producthandler.RegisterRoutes(s.app, productHandler, authHandler.RequireAuth())

	s.app.Use(func(c *fiber.Ctx) error {
		return httpx.Message(c, fiber.StatusNotFound, "Endpoint not found")
	})

	s.metrics.Gauge("users", "Registered users.", func() float64 { return float64(store.Users.Len()) })
	s.metrics.Gauge("refresh_tokens_active", "Refresh tokens that can still be exchanged.", func() float64 { return float64(store.RefreshTokens.Len()) })
	s.metrics.Gauge("products", "Products in the catalog.", func() float64 { return float64(store.Products.Len()) })

	return s
}

func (s *Server) App() *fiber.App {
	return s.app
}

// Run serves until ctx is cancelled, then drains in-flight requests for at
// most the configured shutdown timeout.
func (s *Server) Run(ctx context.Context) error {
	errCh := make(chan error, 1)
	go func() {
		s.logger.Info(ctx, "server listening", "port", s.cfg.Port, "env", s.cfg.Env)
		errCh <- s.app.Listen(":" + s.cfg.Port)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("server stopped: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	s.logger.Info(ctx, "shutting down", "timeout_sec", s.cfg.ShutdownTimeoutSec)
	if err := s.app.ShutdownWithTimeout(time.Duration(s.cfg.ShutdownTimeoutSec) * time.Second); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	return nil
}

// errorHandler answers anything a handler returned instead of writing a
// response itself, including recovered panics.
func (s *Server) errorHandler(c *fiber.Ctx, err error) error {
	var fe *fiber.Error
	if errors.As(err, &fe) && fe.Code < fiber.StatusInternalServerError {
		return httpx.Message(c, fe.Code, fe.Message)
	}

	s.logger.Error(c.UserContext(), "unhandled error",
		"method", c.Method(),
		"path", c.Path(),
		"request_id", httpx.RequestID(c),
		"error", err,
	)
	return httpx.Message(c, fiber.StatusInternalServerError, "Internal server error")
}
