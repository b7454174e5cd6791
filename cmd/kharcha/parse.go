package main

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"kharcha/internal/cli"
	"kharcha/internal/model"
)

func parseCmd() *cobra.Command {
	var (
		language    string
		filePath    string
		userID      string
		save        bool
		asJSON      bool
		concurrency int
	)

	cmd := &cobra.Command{
		Use:   "parse [text]",
		Short: "Parse expense text into a structured expense",
		Long: `Parse natural-language expense text. Pass the sentence as an argument,
or use --file to parse one expense per line from a file.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			if filePath == "" && len(args) == 0 {
				return fmt.Errorf("provide expense text or --file")
			}

			store, err := initStorage(ctx)
			if err != nil {
				return err
			}
			defer store.Close()

			categories, err := store.GetCategoryNames(ctx)
			if err != nil {
				return fmt.Errorf("failed to load categories: %w", err)
			}

			p, extractor, err := initParser()
			if err != nil {
				return err
			}
			defer extractor.Close()

			saveResult := func(result model.ParsedExpense) error {
				if !save {
					return nil
				}
				exp := toExpense(result, userID)
				return store.SaveExpense(ctx, &exp)
			}

			if filePath != "" {
				return runBatch(ctx, p, filePath, language, categories, concurrency, asJSON, saveResult)
			}

			result, err := p.Parse(ctx, model.ParseRequest{
				Text:            args[0],
				LanguageHint:    language,
				KnownCategories: categories,
			})
			if err != nil {
				return err
			}
			if err := saveResult(result); err != nil {
				return fmt.Errorf("failed to save expense: %w", err)
			}

			if asJSON {
				return printJSON(result)
			}
			printResult(result)
			return nil
		},
	}

	cmd.Flags().StringVar(&language, "lang", "", "language hint (en, hi, mr, ...)")
	cmd.Flags().StringVar(&filePath, "file", "", "parse one expense per line from this file")
	cmd.Flags().StringVar(&userID, "user", "", "user to file saved expenses under")
	cmd.Flags().BoolVar(&save, "save", false, "save parsed expenses to the database")
	cmd.Flags().BoolVar(&asJSON, "json", false, "emit JSON instead of styled output")
	cmd.Flags().IntVar(&concurrency, "concurrency", 4, "parallel parses in batch mode")

	return cmd
}

// runBatch parses every non-empty line of the file. Line order is preserved
// in the output regardless of completion order.
func runBatch(ctx context.Context, p expenseParser, filePath, language string, categories []string, concurrency int, asJSON bool, saveResult func(model.ParsedExpense) error) error {
	file, err := os.Open(filePath)
	if err != nil {
		return fmt.Errorf("failed to open input file: %w", err)
	}
	defer file.Close()

	var lines []string
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		if line := strings.TrimSpace(scanner.Text()); line != "" {
			lines = append(lines, line)
		}
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("failed to read input file: %w", err)
	}
	if len(lines) == 0 {
		return fmt.Errorf("no expense lines found in %s", filePath)
	}

	bar := progressbar.NewOptions(len(lines),
		progressbar.OptionSetDescription("Parsing expenses"),
		progressbar.OptionSetWriter(os.Stderr),
		progressbar.OptionClearOnFinish(),
	)

	results := make([]model.ParsedExpense, len(lines))
	g, gctx := errgroup.WithContext(ctx)
	if concurrency < 1 {
		concurrency = 1
	}
	g.SetLimit(concurrency)

	for i, line := range lines {
		i, line := i, line
		g.Go(func() error {
			result, parseErr := p.Parse(gctx, model.ParseRequest{
				Text:            line,
				LanguageHint:    language,
				KnownCategories: categories,
			})
			if parseErr != nil {
				return fmt.Errorf("line %d: %w", i+1, parseErr)
			}
			results[i] = result
			_ = bar.Add(1)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return err
	}
	_ = bar.Finish()

	for _, result := range results {
		if err := saveResult(result); err != nil {
			return fmt.Errorf("failed to save expense: %w", err)
		}
	}

	if asJSON {
		return printJSON(results)
	}
	printBatchTable(results)
	return nil
}

// expenseParser is the minimal parse surface runBatch needs.
type expenseParser interface {
	Parse(ctx context.Context, req model.ParseRequest) (model.ParsedExpense, error)
}

func printResult(result model.ParsedExpense) {
	fmt.Println(cli.TitleStyle.Render("Parsed expense"))
	fmt.Printf("  %s %s\n", cli.BoldStyle.Render("Title:"), result.Title)
	fmt.Printf("  %s %s\n", cli.BoldStyle.Render("Amount:"), cli.FormatAmount(result.Amount))
	fmt.Printf("  %s %s\n", cli.BoldStyle.Render("Category:"), result.Category)
	fmt.Printf("  %s %s\n", cli.BoldStyle.Render("Date:"), result.Date.Format("2006-01-02"))
	fmt.Printf("  %s %.2f\n", cli.BoldStyle.Render("Confidence:"), result.Confidence)
	if result.CulturalContext != "" {
		fmt.Printf("  %s %s\n", cli.BoldStyle.Render("Context:"), cli.SubtleStyle.Render(result.CulturalContext))
	}
	if result.NeedsReview() {
		fmt.Println(cli.WarningStyle.Render("  This expense needs review before saving unattended."))
	}
}

func printBatchTable(results []model.ParsedExpense) {
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	defer w.Flush()

	fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n",
		cli.BoldStyle.Render("Date"),
		cli.BoldStyle.Render("Category"),
		cli.BoldStyle.Render("Amount"),
		cli.BoldStyle.Render("Title"),
		cli.BoldStyle.Render("Status"))

	var reviewCount int
	for _, result := range results {
		if result.NeedsReview() {
			reviewCount++
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n",
			result.Date.Format("2006-01-02"),
			result.Category,
			cli.FormatAmount(result.Amount),
			result.Title,
			cli.ReviewBadge(result.NeedsReview()))
	}

	fmt.Fprintf(w, "\n%s\n", cli.SubtleStyle.Render(
		fmt.Sprintf("%d parsed, %d need review", len(results), reviewCount)))
}

func printJSON(v any) error {
	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")
	return encoder.Encode(v)
}

// toExpense converts a parse result into a persistable expense.
func toExpense(result model.ParsedExpense, userID string) model.Expense {
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
