package main

import (
	"fmt"
	"os"
	"sort"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"kharcha/internal/cli"
	"kharcha/internal/storage"
)

func expensesCmd() *cobra.Command {
	var (
		userID      string
		category    string
		limit       int
		needsReview bool
	)

	cmd := &cobra.Command{
		Use:   "expenses",
		Short: "List saved expenses",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			store, err := initStorage(ctx)
			if err != nil {
				return err
			}
			defer store.Close()

			expenses, err := store.ListExpenses(ctx, storage.ExpenseFilter{
				UserID:          userID,
				Category:        category,
				NeedsReviewOnly: needsReview,
				Limit:           limit,
			})
			if err != nil {
				return fmt.Errorf("failed to list expenses: %w", err)
			}

			if len(expenses) == 0 {
				fmt.Println(cli.SubtleStyle.Render("No expenses found."))
				return nil
			}

			w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
			defer w.Flush()

			fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n",
				cli.BoldStyle.Render("Date"),
				cli.BoldStyle.Render("Category"),
				cli.BoldStyle.Render("Amount"),
				cli.BoldStyle.Render("Title"),
				cli.BoldStyle.Render("Status"))

			for _, exp := range expenses {
				fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n",
					exp.Date.Format("2006-01-02"),
					exp.Category,
					cli.FormatAmount(exp.Amount),
					exp.Title,
					cli.ReviewBadge(exp.NeedsReview))
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&userID, "user", "", "only expenses for this user")
	cmd.Flags().StringVar(&category, "category", "", "only expenses in this category")
	cmd.Flags().IntVar(&limit, "limit", 0, "maximum number of expenses to show")
	cmd.Flags().BoolVar(&needsReview, "needs-review", false, "only expenses flagged for review")

	return cmd
}

func statsCmd() *cobra.Command {
	var userID string

	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Show spending totals by category",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			store, err := initStorage(ctx)
			if err != nil {
				return err
			}
			defer store.Close()

			stats, err := store.GetStats(ctx, userID)
			if err != nil {
				return fmt.Errorf("failed to compute stats: %w", err)
			}

			fmt.Println(cli.TitleStyle.Render("Spending summary"))
			fmt.Printf("  %s %d\n", cli.BoldStyle.Render("Expenses:"), stats.Count)
			fmt.Printf("  %s %s\n", cli.BoldStyle.Render("Total:"), cli.FormatAmount(stats.TotalAmount))
			fmt.Printf("  %s %.2f\n", cli.BoldStyle.Render("Avg accuracy:"), stats.AvgAccuracy)
			if stats.NeedsReview > 0 {
				fmt.Printf("  %s %d\n", cli.WarningStyle.Render("Need review:"), stats.NeedsReview)
			}

			if len(stats.ByCategory) == 0 {
				return nil
			}

			categories := make([]string, 0, len(stats.ByCategory))
			for name := range stats.ByCategory {
				categories = append(categories, name)
			}
			sort.Slice(categories, func(i, j int) bool {
				return stats.ByCategory[categories[i]] > stats.ByCategory[categories[j]]
			})

			fmt.Println()
			w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
			defer w.Flush()
			for _, name := range categories {
				fmt.Fprintf(w, "  %s\t%s\n", name, cli.FormatAmount(stats.ByCategory[name]))
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&userID, "user", "", "only expenses for this user")

	return cmd
}
