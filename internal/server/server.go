// Package server exposes the parsing pipeline and expense store over HTTP.
package server

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"kharcha/internal/model"
	"kharcha/internal/storage"
)

// ExpenseParser converts free-form text into a structured expense.
type ExpenseParser interface {
	Parse(ctx context.Context, req model.ParseRequest) (model.ParsedExpense, error)
}

// Store is the persistence surface the server needs.
type Store interface {
	SaveExpense(ctx context.Context, exp *model.Expense) error
	ListExpenses(ctx context.Context, filter storage.ExpenseFilter) ([]model.Expense, error)
	GetStats(ctx context.Context, userID string) (model.Stats, error)
	GetCategories(ctx context.Context) ([]model.Category, error)
	GetCategoryNames(ctx context.Context) ([]string, error)
	CreateCategory(ctx context.Context, name string) (*model.Category, error)
}

// Server wires the HTTP routes to the parser and store.
type Server struct {
	app    *fiber.App
	parser ExpenseParser
	store  Store
	logger *slog.Logger
}

// New builds the fiber application with all routes registered.
func New(expenseParser ExpenseParser, store Store, logger *slog.Logger) *Server {
	app := fiber.New(fiber.Config{
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			code := fiber.StatusInternalServerError
			if e, ok := err.(*fiber.Error); ok {
				code = e.Code
			}
			return c.Status(code).JSON(fiber.Map{
				"error": err.Error(),
			})
		},
	})

	app.Use(recover.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,OPTIONS",
		AllowHeaders: "Origin,Content-Type,Accept",
	}))

	s := &Server{
		app:    app,
		parser: expenseParser,
		store:  store,
		logger: logger,
	}

	app.Get("/healthz", s.handleHealth)

	v1 := app.Group("/api/v1")
	v1.Post("/parse", s.handleParse)
	v1.Get("/expenses", s.handleListExpenses)
	v1.Get("/categories", s.handleListCategories)
	v1.Post("/categories", s.handleCreateCategory)
	v1.Get("/stats", s.handleStats)

	return s
}

// Listen serves HTTP on the given address until shutdown.
func (s *Server) Listen(addr string) error {
	s.logger.Info("http server listening", "addr", addr)
	if err := s.app.Listen(addr); err != nil {
		return fmt.Errorf("http server failed: %w", err)
	}
	return nil
}

// Shutdown gracefully stops the server.
func (s *Server) Shutdown() error {
	return s.app.Shutdown()
}
