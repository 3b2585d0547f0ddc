package api

import (
	"context"
	"io"
	"time"

	"github.com/CristiGvl/picoZramMon/internal/platform"
	"github.com/CristiGvl/picoZramMon/internal/usage"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
)

// SnapshotSource produces one aggregate snapshot per call
type SnapshotSource interface {
	Snapshot(ctx context.Context) (usage.Snapshot, error)
}

// Server represents the API server
type Server struct {
	app       *fiber.App
	source    SnapshotSource
	catalogue usage.Catalogue
}

// NewServer creates a new API server. Access logs are written to logOutput.
func NewServer(source SnapshotSource, logOutput io.Writer) *Server {
	app := fiber.New(fiber.Config{
		ReadTimeout:           30 * time.Second,
		WriteTimeout:          30 * time.Second,
		IdleTimeout:           120 * time.Second,
		ServerHeader:          "picoZramMon",
		AppName:               "picoZramMon v1.0",
		DisableStartupMessage: true,
	})

	// Middleware
	app.Use(logger.New(logger.Config{Output: logOutput}))
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,OPTIONS",
		MaxAge:       86400, // 24 hours
	}))

	server := &Server{
		app:       app,
		source:    source,
		catalogue: usage.NewCatalogue(),
	}

	server.setupRoutes()
	return server
}

// setupRoutes configures all API routes
func (s *Server) setupRoutes() {
	api := s.app.Group("/api")

	api.Get("/zram", s.getZram)
	api.Get("/zram/metrics", s.getMetrics)

	// Health check
	api.Get("/health", s.healthCheck)
}

// Start starts the API server
func (s *Server) Start(address string) error {
	return s.app.Listen(address)
}

// Shutdown gracefully shuts down the server
func (s *Server) Shutdown() error {
	return s.app.Shutdown()
}

// Health check endpoint
func (s *Server) healthCheck(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"status":    "ok",
		"platform":  platform.GetOS(),
		"timestamp": time.Now().Unix(),
	})
}
