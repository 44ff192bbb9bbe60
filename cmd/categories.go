package cmd

import (
	"fmt"

	"expenseai/internal/cli"
	"expenseai/internal/model"
	"expenseai/internal/pipeline"

	"github.com/spf13/cobra"
)

var categoriesCmd = &cobra.Command{
	Use:   "categories",
	Short: "All-time spend by category",
	RunE:  runCategories,
}

func init() {
	rootCmd.AddCommand(categoriesCmd)
}

func runCategories(_ *cobra.Command, _ []string) error {
	led, closeStore, err := openLedger()
	if err != nil {
		return err
	}
	defer closeStore()

	records, err := led.Records()
	if err != nil {
		return err
	}
	if len(records) == 0 {
		fmt.Println("\n  No expenses")
		return nil
	}

	settings, err := led.Settings()
	if err != nil {
		return err
	}

	totals := pipeline.PerCategory(records)

	fmt.Println()
	fmt.Println(cli.RenderTitle("SPEND BY CATEGORY"))
	fmt.Println()
	printBars(totals, settings)
	fmt.Println()
	return nil
}

func printBars(totals []model.CategoryTotal, settings model.Settings) {
	maxTotal := 0.0
	labelWidth := 0
	for _, ct := range totals {
		if ct.Total > maxTotal {
			maxTotal = ct.Total
		}
		if len(ct.Category) > labelWidth {
			labelWidth = len(ct.Category)
		}
	}
	for _, ct := range totals {
		fmt.Println(cli.RenderBarRow(ct.Category, ct.Total, maxTotal,
			labelWidth, 30, cli.FormatMoney(ct.Total, settings)))
	}
}
