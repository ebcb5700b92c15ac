// Package server exposes a display session over HTTP.
package server

import (
	"context"
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	fiberlog "github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/midbel/heatmap/display"
)

const shutdownTimeout = 10 * time.Second

// Server serves the heatmap page of a single session.
type Server struct {
	app     *fiber.App
	session *display.Session
	logger  *zap.Logger
	metrics *Metrics
}

// New creates a server for the given session. Request metrics are registered
// in reg which is also the registry exposed by /metrics.
func New(session *display.Session, reg *prometheus.Registry, logger *zap.Logger) (*Server, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	logger = logger.Named("server")

	s := Server{
		session: session,
		logger:  logger,
		metrics: NewMetrics(),
	}
	if err := reg.Register(s.metrics); err != nil {
		return nil, err
	}
	s.app = fiber.New(fiber.Config{
		AppName:               "heatmap",
		DisableStartupMessage: true,
		ReadTimeout:           10 * time.Second,
		WriteTimeout:          10 * time.Second,
		ErrorHandler:          s.handleError,
	})
	s.app.Use(recover.New())
	s.app.Use(fiberlog.New(fiberlog.Config{
		Output: zap.NewStdLog(logger).Writer(),
	}))
	s.app.Use(s.count)

	s.app.Get("/", s.page)
	s.app.Get("/heatmap.svg", s.chart)
	s.app.Get("/health", s.health)
	s.app.Get("/metrics", adaptor.HTTPHandler(promhttp.HandlerFor(reg, promhttp.HandlerOpts{})))

	tip := s.app.Group("/tooltip")
	tip.Post("/enter", s.enter)
	tip.Post("/move", s.move)
	tip.Post("/leave", s.leave)

	return &s, nil
}

// App gives access to the underlying fiber application.
func (s *Server) App() *fiber.App {
	return s.app
}

// Run starts the session load and serves requests on addr until ctx is done.
func (s *Server) Run(ctx context.Context, addr string) error {
	s.session.Start(ctx)

	grp, ctx := errgroup.WithContext(ctx)
	grp.Go(func() error {
		s.logger.Info("listening", zap.String("addr", addr))
		return s.app.Listen(addr)
	})
	grp.Go(func() error {
		<-ctx.Done()
		sub, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		s.logger.Info("shutting down")
		return s.app.ShutdownWithContext(sub)
	})
	return grp.Wait()
}

func (s *Server) count(c *fiber.Ctx) error {
	err := c.Next()
	code := c.Response().StatusCode()
	if err != nil {
		code = statusOf(err)
	}
	s.metrics.observe(c.Route().Path, code)
	return err
}

func (s *Server) handleError(c *fiber.Ctx, err error) error {
	code := statusOf(err)
	if code >= fiber.StatusInternalServerError {
		s.logger.Error("request failed", zap.String("path", c.Path()), zap.Error(err))
	}
	return c.Status(code).JSON(fiber.Map{
		"error":   true,
		"message": err.Error(),
	})
}

func statusOf(err error) int {
	var e *fiber.Error
	if errors.As(err, &e) {
		return e.Code
	}
	return fiber.StatusInternalServerError
}
