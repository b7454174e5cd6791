package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"kharcha/internal/common"
	"kharcha/internal/model"
)

// ExpenseFilter narrows a ListExpenses query. Zero values mean "no filter".
type ExpenseFilter struct {
	UserID          string
	Category        string
	NeedsReviewOnly bool
	Limit           int
}

// SaveExpense persists one expense. An empty ID is assigned a fresh UUID;
// the expense is updated with the assigned ID and creation time.
func (s *SQLiteStorage) SaveExpense(ctx context.Context, exp *model.Expense) error {
	if err := validateContext(ctx); err != nil {
		return err
	}
	if err := validateExpense(exp); err != nil {
		return err
	}

	if exp.ID == "" {
		exp.ID = uuid.New().String()
	}
	if exp.CreatedAt.IsZero() {
		exp.CreatedAt = time.Now().UTC()
	}

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO expenses (
			id, user_id, title, category, amount, date,
			language, original_text, confidence, accuracy, needs_review, created_at
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		exp.ID, exp.UserID, exp.Title, exp.Category, exp.Amount, exp.Date,
		exp.Language, exp.OriginalText, exp.Confidence, exp.Accuracy, exp.NeedsReview, exp.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to save expense: %w", err)
	}

	slog.Debug("saved expense",
		"id", exp.ID,
		"category", exp.Category,
		"amount", exp.Amount)
	return nil
}

// GetExpenseByID returns one expense by its ID.
func (s *SQLiteStorage) GetExpenseByID(ctx context.Context, id string) (*model.Expense, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}
	if err := validateString(id, "id"); err != nil {
		return nil, err
	}

	row := s.db.QueryRowContext(ctx, `
		SELECT id, user_id, title, category, amount, date,
		       language, original_text, confidence, accuracy, needs_review, created_at
		FROM expenses
		WHERE id = ?`, id)

	exp, err := scanExpense(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("expense %q: %w", id, common.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query expense: %w", err)
	}
	return exp, nil
}

// ListExpenses returns expenses matching the filter, newest first.
func (s *SQLiteStorage) ListExpenses(ctx context.Context, filter ExpenseFilter) ([]model.Expense, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}

	query := `
		SELECT id, user_id, title, category, amount, date,
		       language, original_text, confidence, accuracy, needs_review, created_at
		FROM expenses
		WHERE 1=1`
	args := []any{}

	if filter.UserID != "" {
		query += ` AND user_id = ?`
		args = append(args, filter.UserID)
	}
	if filter.Category != "" {
		query += ` AND category = ?`
		args = append(args, filter.Category)
	}
	if filter.NeedsReviewOnly {
		query += ` AND needs_review = 1`
	}
	query += ` ORDER BY date DESC, created_at DESC`
	if filter.Limit > 0 {
		query += ` LIMIT ?`
		args = append(args, filter.Limit)
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query expenses: %w", err)
	}
	defer rows.Close()

	var expenses []model.Expense
	for rows.Next() {
		exp, scanErr := scanExpense(rows)
		if scanErr != nil {
			return nil, fmt.Errorf("failed to scan expense: %w", scanErr)
		}
		expenses = append(expenses, *exp)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating expenses: %w", err)
	}

	return expenses, nil
}

// GetStats aggregates stored expenses. Undetermined amounts count toward the
// totals' row count but contribute nothing to the sums.
func (s *SQLiteStorage) GetStats(ctx context.Context, userID string) (model.Stats, error) {
	stats := model.Stats{
		ByCategory: make(map[string]float64),
		ByLanguage: make(map[string]int),
	}

	if err := validateContext(ctx); err != nil {
		return stats, err
	}

	where := ``
	args := []any{}
	if userID != "" {
		where = ` AND user_id = ?`
		args = append(args, userID)
	}

	row := s.db.QueryRowContext(ctx, fmt.Sprintf(`
		SELECT COUNT(*),
		       COALESCE(SUM(CASE WHEN amount >= 0 THEN amount ELSE 0 END), 0),
		       COALESCE(SUM(needs_review), 0),
		       COALESCE(AVG(accuracy), 0)
		FROM expenses
		WHERE 1=1%s`, where), args...)

	if err := row.Scan(&stats.Count, &stats.TotalAmount, &stats.NeedsReview, &stats.AvgAccuracy); err != nil {
		return stats, fmt.Errorf("failed to query expense totals: %w", err)
	}

	rows, err := s.db.QueryContext(ctx, fmt.Sprintf(`
		SELECT category, COALESCE(SUM(CASE WHEN amount >= 0 THEN amount ELSE 0 END), 0)
		FROM expenses
		WHERE 1=1%s
		GROUP BY category`, where), args...)
	if err != nil {
		return stats, fmt.Errorf("failed to query category totals: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var category string
		var total float64
		if err := rows.Scan(&category, &total); err != nil {
			return stats, fmt.Errorf("failed to scan category total: %w", err)
		}
		stats.ByCategory[category] = total
	}

	if err := rows.Err(); err != nil {
		return stats, fmt.Errorf("error iterating category totals: %w", err)
	}

	langRows, err := s.db.QueryContext(ctx, fmt.Sprintf(`
		SELECT COALESCE(NULLIF(language, ''), 'unknown'), COUNT(*)
		FROM expenses
		WHERE 1=1%s
		GROUP BY 1`, where), args...)
	if err != nil {
		return stats, fmt.Errorf("failed to query language counts: %w", err)
	}
	defer langRows.Close()

	for langRows.Next() {
		var language string
		var count int
		if err := langRows.Scan(&language, &count); err != nil {
			return stats, fmt.Errorf("failed to scan language count: %w", err)
		}
		stats.ByLanguage[language] = count
	}

	if err := langRows.Err(); err != nil {
		return stats, fmt.Errorf("error iterating language counts: %w", err)
	}

	return stats, nil
}

// scanner abstracts sql.Row and sql.Rows for scanExpense.
type scanner interface {
	Scan(dest ...any) error
}

func scanExpense(row scanner) (*model.Expense, error) {
	var exp model.Expense
	err := row.Scan(
		&exp.ID, &exp.UserID, &exp.Title, &exp.Category, &exp.Amount, &exp.Date,
		&exp.Language, &exp.OriginalText, &exp.Confidence, &exp.Accuracy, &exp.NeedsReview, &exp.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &exp, nil
}
