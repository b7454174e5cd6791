package server

import (
	"errors"
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"

	"kharcha/internal/common"
	"kharcha/internal/model"
	"kharcha/internal/storage"
)

type parseRequest struct {
	Text     string `json:"text"`
	Language string `json:"language"`
	UserID   string `json:"user_id"`
	Save     bool   `json:"save"`
}

type parseResponse struct {
	ID              string  `json:"id,omitempty"`
	Title           string  `json:"title"`
	Category        string  `json:"category"`
	Date            string  `json:"date"`
	Language        string  `json:"language,omitempty"`
	CulturalContext string  `json:"cultural_context,omitempty"`
	Amount          float64 `json:"amount"`
	Confidence      float64 `json:"confidence"`
	Accuracy        float64 `json:"accuracy"`
	NeedsReview     bool    `json:"needs_review"`
}

func (s *Server) handleHealth(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"status": "ok"})
}

func (s *Server) handleParse(c *fiber.Ctx) error {
	var req parseRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "invalid request body",
		})
	}

	categories, err := s.store.GetCategoryNames(c.Context())
	if err != nil {
		s.logger.Error("failed to load categories", "error", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "failed to load categories",
		})
	}

	result, err := s.parser.Parse(c.Context(), model.ParseRequest{
		Text:            req.Text,
		LanguageHint:    req.Language,
		KnownCategories: categories,
	})
	if errors.Is(err, common.ErrEmptyText) {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "text is required",
		})
	}
	if err != nil {
		s.logger.Error("parse failed", "error", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "failed to parse expense",
		})
	}

	resp := parseResponse{
		Title:           result.Title,
		Category:        result.Category,
		Date:            result.Date.Format("2006-01-02"),
		Language:        result.Language,
		CulturalContext: result.CulturalContext,
		Amount:          result.Amount,
		Confidence:      result.Confidence,
		Accuracy:        result.Accuracy,
		NeedsReview:     result.NeedsReview(),
	}

	if req.Save {
		exp := expenseFromResult(result, req.UserID)
		if err := s.store.SaveExpense(c.Context(), &exp); err != nil {
			s.logger.Error("failed to save expense", "error", err)
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error": "failed to save expense",
			})
		}
		resp.ID = exp.ID
		return c.Status(fiber.StatusCreated).JSON(resp)
	}

	return c.JSON(resp)
}

func (s *Server) handleListExpenses(c *fiber.Ctx) error {
	filter := storage.ExpenseFilter{
		UserID:   c.Query("user_id"),
		Category: c.Query("category"),
	}
	if v := c.Query("needs_review"); v != "" {
		needsReview, err := strconv.ParseBool(v)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "needs_review must be a boolean",
			})
		}
		filter.NeedsReviewOnly = needsReview
	}
	if v := c.Query("limit"); v != "" {
		limit, err := strconv.Atoi(v)
		if err != nil || limit < 0 {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "limit must be a non-negative integer",
			})
		}
		filter.Limit = limit
	}

	expenses, err := s.store.ListExpenses(c.Context(), filter)
	if err != nil {
		s.logger.Error("failed to list expenses", "error", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "failed to list expenses",
		})
	}
	if expenses == nil {
		expenses = []model.Expense{}
	}

	return c.JSON(fiber.Map{"expenses": expenses, "count": len(expenses)})
}

func (s *Server) handleListCategories(c *fiber.Ctx) error {
	categories, err := s.store.GetCategories(c.Context())
	if err != nil {
		s.logger.Error("failed to list categories", "error", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "failed to list categories",
		})
	}
	if categories == nil {
		categories = []model.Category{}
	}

	return c.JSON(fiber.Map{"categories": categories})
}

func (s *Server) handleCreateCategory(c *fiber.Ctx) error {
	var req struct {
		Name string `json:"name"`
	}
	if err := c.BodyParser(&req); err != nil || req.Name == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "name is required",
		})
	}

	cat, err := s.store.CreateCategory(c.Context(), req.Name)
	if errors.Is(err, common.ErrDuplicateEntry) {
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{
			"error": "category already exists",
		})
	}
	if err != nil {
		s.logger.Error("failed to create category", "error", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "failed to create category",
		})
	}

	return c.Status(fiber.StatusCreated).JSON(cat)
}

func (s *Server) handleStats(c *fiber.Ctx) error {
	stats, err := s.store.GetStats(c.Context(), c.Query("user_id"))
	if err != nil {
		s.logger.Error("failed to compute stats", "error", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "failed to compute stats",
		})
	}

	return c.JSON(stats)
}

// expenseFromResult converts a parse result into a persistable expense.
func expenseFromResult(result model.ParsedExpense, userID string) model.Expense {
	return model.Expense{
		UserID:       userID,
		Title:        result.Title,
		Category:     result.Category,
		Amount:       result.Amount,
		Date:         result.Date,
		Language:     result.Language,
		OriginalText: result.OriginalText,
		Confidence:   result.Confidence,
		Accuracy:     result.Accuracy,
		NeedsReview:  result.NeedsReview(),
		CreatedAt:    time.Now().UTC(),
	}
}
