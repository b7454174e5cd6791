package storage

import (
	"context"
	"fmt"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"kharcha/internal/common"
	"kharcha/internal/model"
)

// Helper function to create migrated test storage.
func createTestStorage(t *testing.T) *SQLiteStorage {
	t.Helper()
	dbPath := filepath.Join(t.TempDir(), "test.db")

	store, err := NewSQLiteStorage(dbPath)
	require.NoError(t, err, "failed to create storage")

	require.NoError(t, store.Migrate(context.Background()), "failed to migrate")
	t.Cleanup(func() { _ = store.Close() })
	return store
}

func makeTestExpense(num int) model.Expense {
	return model.Expense{
		UserID:       "user1",
		Title:        fmt.Sprintf("Expense #%d", num),
		Category:     "Food",
		Amount:       float64(num) * 10.50,
		Date:         time.Date(2025, 3, num, 0, 0, 0, 0, time.UTC),
		Language:     "en",
		OriginalText: fmt.Sprintf("spent %d on food", num),
		Confidence:   0.95,
		Accuracy:     0.95,
	}
}

func TestMigrate_SeedsDefaultCategories(t *testing.T) {
	store := createTestStorage(t)
	ctx := context.Background()

	names, err := store.GetCategoryNames(ctx)
	require.NoError(t, err)
	assert.Len(t, names, len(model.DefaultCategories()))
	assert.Contains(t, names, "Food")
	assert.Contains(t, names, model.CategoryOther)
}

func TestMigrate_Idempotent(t *testing.T) {
	store := createTestStorage(t)
	ctx := context.Background()

	require.NoError(t, store.Migrate(ctx), "second migrate must be a no-op")

	names, err := store.GetCategoryNames(ctx)
	require.NoError(t, err)
	assert.Len(t, names, len(model.DefaultCategories()), "seeding must not duplicate")
}

func TestCreateCategory(t *testing.T) {
	store := createTestStorage(t)
	ctx := context.Background()

	cat, err := store.CreateCategory(ctx, "Travel")
	require.NoError(t, err)
	assert.Equal(t, "Travel", cat.Name)
	assert.True(t, cat.IsActive)
	assert.NotZero(t, cat.ID)

	_, err = store.CreateCategory(ctx, "Travel")
	assert.ErrorIs(t, err, common.ErrDuplicateEntry)
}

func TestDeleteCategory_ReactivateOnCreate(t *testing.T) {
	store := createTestStorage(t)
	ctx := context.Background()

	require.NoError(t, store.DeleteCategory(ctx, "Shopping"))

	_, err := store.GetCategoryByName(ctx, "Shopping")
	assert.ErrorIs(t, err, common.ErrNotFound)

	cat, err := store.CreateCategory(ctx, "Shopping")
	require.NoError(t, err)
	assert.True(t, cat.IsActive)
}

func TestDeleteCategory_NotFound(t *testing.T) {
	store := createTestStorage(t)

	err := store.DeleteCategory(context.Background(), "NoSuchCategory")
	assert.ErrorIs(t, err, common.ErrNotFound)
}

func TestSaveExpense_AssignsID(t *testing.T) {
	store := createTestStorage(t)
	ctx := context.Background()

	exp := makeTestExpense(1)
	require.NoError(t, store.SaveExpense(ctx, &exp))
	assert.NotEmpty(t, exp.ID, "a fresh UUID is assigned on save")
	assert.False(t, exp.CreatedAt.IsZero())

	got, err := store.GetExpenseByID(ctx, exp.ID)
	require.NoError(t, err)
	assert.Equal(t, exp.Title, got.Title)
	assert.Equal(t, exp.Amount, got.Amount)
	assert.Equal(t, exp.Category, got.Category)
}

func TestSaveExpense_Validation(t *testing.T) {
	store := createTestStorage(t)
	ctx := context.Background()

	tests := []struct {
		mutate func(*model.Expense)
		name   string
	}{
		{name: "missing title", mutate: func(e *model.Expense) { e.Title = "" }},
		{name: "missing category", mutate: func(e *model.Expense) { e.Category = "" }},
		{name: "zero date", mutate: func(e *model.Expense) { e.Date = time.Time{} }},
		{name: "negative amount", mutate: func(e *model.Expense) { e.Amount = -42 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			exp := makeTestExpense(1)
			tt.mutate(&exp)
			err := store.SaveExpense(ctx, &exp)
			assert.ErrorIs(t, err, ErrInvalidExpense)
		})
	}
}

func TestSaveExpense_SentinelAmountAllowed(t *testing.T) {
	store := createTestStorage(t)
	ctx := context.Background()

	exp := makeTestExpense(1)
	exp.Amount = model.AmountUndetermined
	exp.NeedsReview = true
	require.NoError(t, store.SaveExpense(ctx, &exp))

	got, err := store.GetExpenseByID(ctx, exp.ID)
	require.NoError(t, err)
	assert.Equal(t, model.AmountUndetermined, got.Amount)
	assert.True(t, got.NeedsReview)
}

func TestGetExpenseByID_NotFound(t *testing.T) {
	store := createTestStorage(t)

	_, err := store.GetExpenseByID(context.Background(), "missing-id")
	assert.ErrorIs(t, err, common.ErrNotFound)
}

func TestListExpenses_Filters(t *testing.T) {
	store := createTestStorage(t)
	ctx := context.Background()

	for i := 1; i <= 3; i++ {
		exp := makeTestExpense(i)
		require.NoError(t, store.SaveExpense(ctx, &exp))
	}
	review := makeTestExpense(4)
	review.Category = "Transport"
	review.NeedsReview = true
	require.NoError(t, store.SaveExpense(ctx, &review))
	other := makeTestExpense(5)
	other.UserID = "user2"
	require.NoError(t, store.SaveExpense(ctx, &other))

	all, err := store.ListExpenses(ctx, ExpenseFilter{})
	require.NoError(t, err)
	assert.Len(t, all, 5)
	assert.Equal(t, "Expense #5", all[0].Title, "newest first")

	byUser, err := store.ListExpenses(ctx, ExpenseFilter{UserID: "user1"})
	require.NoError(t, err)
	assert.Len(t, byUser, 4)

	byCategory, err := store.ListExpenses(ctx, ExpenseFilter{Category: "Transport"})
	require.NoError(t, err)
	assert.Len(t, byCategory, 1)

	needsReview, err := store.ListExpenses(ctx, ExpenseFilter{NeedsReviewOnly: true})
	require.NoError(t, err)
	require.Len(t, needsReview, 1)
	assert.Equal(t, review.ID, needsReview[0].ID)

	limited, err := store.ListExpenses(ctx, ExpenseFilter{Limit: 2})
	require.NoError(t, err)
	assert.Len(t, limited, 2)
}

func TestGetStats(t *testing.T) {
	store := createTestStorage(t)
	ctx := context.Background()

	food := makeTestExpense(1) // 10.50
	require.NoError(t, store.SaveExpense(ctx, &food))

	transport := makeTestExpense(2) // 21.00
	transport.Category = "Transport"
	require.NoError(t, store.SaveExpense(ctx, &transport))

	undetermined := makeTestExpense(3)
	undetermined.Amount = model.AmountUndetermined
	undetermined.NeedsReview = true
	require.NoError(t, store.SaveExpense(ctx, &undetermined))

	stats, err := store.GetStats(ctx, "")
	require.NoError(t, err)
	assert.Equal(t, 3, stats.Count)
	assert.Equal(t, 1, stats.NeedsReview)
	assert.InDelta(t, 31.50, stats.TotalAmount, 0.001, "sentinel amounts are excluded from sums")
	assert.InDelta(t, 10.50, stats.ByCategory["Food"], 0.001)
	assert.InDelta(t, 21.00, stats.ByCategory["Transport"], 0.001)
	assert.Equal(t, 3, stats.ByLanguage["en"])
	assert.InDelta(t, 0.95, stats.AvgAccuracy, 0.001)
}

func TestGetStats_FilterByUser(t *testing.T) {
	store := createTestStorage(t)
	ctx := context.Background()

	mine := makeTestExpense(1)
	require.NoError(t, store.SaveExpense(ctx, &mine))
	theirs := makeTestExpense(2)
	theirs.UserID = "user2"
	require.NoError(t, store.SaveExpense(ctx, &theirs))

	stats, err := store.GetStats(ctx, "user1")
	require.NoError(t, err)
	assert.Equal(t, 1, stats.Count)
	assert.InDelta(t, 10.50, stats.TotalAmount, 0.001)
}
