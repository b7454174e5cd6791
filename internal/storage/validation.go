package storage

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"kharcha/internal/model"
)

// Validation errors.
var (
	ErrNilContext     = errors.New("context cannot be nil")
	ErrEmptyString    = errors.New("string parameter cannot be empty")
	ErrNilParameter   = errors.New("parameter cannot be nil")
	ErrInvalidExpense = errors.New("invalid expense")
)

// validateContext ensures the context is not nil.
func validateContext(ctx context.Context) error {
	if ctx == nil {
		return ErrNilContext
	}
	return nil
}

// validateString ensures a string parameter is not empty.
func validateString(s string, paramName string) error {
	if strings.TrimSpace(s) == "" {
		return fmt.Errorf("%w: %s", ErrEmptyString, paramName)
	}
	return nil
}

// validateExpense validates a single expense before persisting it.
func validateExpense(exp *model.Expense) error {
	if exp == nil {
		return fmt.Errorf("%w: expense", ErrNilParameter)
	}
	if strings.TrimSpace(exp.Title) == "" {
		return fmt.Errorf("%w: title is required", ErrInvalidExpense)
	}
	if strings.TrimSpace(exp.Category) == "" {
		return fmt.Errorf("%w: category is required", ErrInvalidExpense)
	}
	if exp.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidExpense)
	}
	if exp.Amount < 0 && exp.Amount != model.AmountUndetermined {
		return fmt.Errorf("%w: amount must be non-negative", ErrInvalidExpense)
	}
	return nil
}
