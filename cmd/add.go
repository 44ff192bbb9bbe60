package cmd

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"expenseai/internal/cli"
	"expenseai/internal/model"
	"expenseai/internal/pipeline"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"
)

var (
	flagAddTitle    string
	flagAddAmount   float64
	flagAddCategory string
	flagAddDate     string
)

var addCmd = &cobra.Command{
	Use:   "add",
	Short: "Record a new expense",
	Long:  "Record a new expense. With no flags, an interactive form is shown.",
	RunE:  runAdd,
}

func init() {
	addCmd.Flags().StringVarP(&flagAddTitle, "title", "t", "", "Expense title")
	addCmd.Flags().Float64VarP(&flagAddAmount, "amount", "a", 0, "Amount spent")
	addCmd.Flags().StringVarP(&flagAddCategory, "category", "c", model.CategoryOther, "Category (Food|Transport|Bills|Shopping|Other)")
	addCmd.Flags().StringVar(&flagAddDate, "date", "", "Date (YYYY-MM-DD, default today)")
	rootCmd.AddCommand(addCmd)
}

func runAdd(cmd *cobra.Command, _ []string) error {
	record := model.Record{
		Title:    flagAddTitle,
		Amount:   flagAddAmount,
		Category: flagAddCategory,
		Date:     flagAddDate,
	}

	interactive := !cmd.Flags().Changed("title") && !cmd.Flags().Changed("amount")
	if interactive {
		if err := promptRecord(&record); err != nil {
			return err
		}
	}

	if err := validateRecord(record); err != nil {
		return err
	}
	if record.Date == "" {
		record.Date = time.Now().Format("2006-01-02")
	}

	led, closeStore, err := openLedger()
	if err != nil {
		return err
	}
	defer closeStore()

	if err := led.Add(record); err != nil {
		return err
	}

	settings, err := led.Settings()
	if err != nil {
		return err
	}
	fmt.Printf("  Added %s %s (%s) on %s\n",
		cli.FormatMoney(record.Amount, settings), record.Title, record.Category, record.Date)
	return nil
}

// validateRecord applies the entry presence checks: a title and a positive
// numeric amount are required; anything else is accepted as-is.
func validateRecord(r model.Record) error {
	if r.Title == "" || r.Amount <= 0 {
		return errors.New("enter a title and a positive amount")
	}
	if r.Date != "" {
		if _, ok := pipeline.ParseDate(r.Date); !ok {
			return fmt.Errorf("unrecognized date %q (want YYYY-MM-DD)", r.Date)
		}
	}
	return nil
}

func promptRecord(record *model.Record) error {
	amountStr := ""
	if record.Amount > 0 {
		amountStr = strconv.FormatFloat(record.Amount, 'f', -1, 64)
	}

	categoryOptions := make([]huh.Option[string], 0, len(model.Categories))
	for _, c := range model.Categories {
		categoryOptions = append(categoryOptions, huh.NewOption(c, c))
	}

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Title").
				Value(&record.Title),
			huh.NewInput().
				Title("Amount").
				Value(&amountStr).
				Validate(func(s string) error {
					v, err := strconv.ParseFloat(s, 64)
					if err != nil || v <= 0 {
						return errors.New("enter a positive amount")
					}
					return nil
				}),
			huh.NewSelect[string]().
				Title("Category").
				Options(categoryOptions...).
				Value(&record.Category),
			huh.NewInput().
				Title("Date (YYYY-MM-DD, empty for today)").
				Value(&record.Date),
		),
	)

	if err := form.Run(); err != nil {
		return err
	}

	amount, err := strconv.ParseFloat(amountStr, 64)
	if err != nil {
		return errors.New("enter a title and a positive amount")
	}
	record.Amount = amount
	return nil
}
