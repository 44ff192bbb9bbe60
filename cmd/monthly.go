package cmd

import (
	"fmt"

	"expenseai/internal/cli"
	"expenseai/internal/pipeline"

	"github.com/spf13/cobra"
)

var monthlyCmd = &cobra.Command{
	Use:   "monthly",
	Short: "Spend by calendar month",
	RunE:  runMonthly,
}

func init() {
	rootCmd.AddCommand(monthlyCmd)
}

func runMonthly(_ *cobra.Command, _ []string) error {
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

	months := pipeline.PerMonth(records)
	if len(months) == 0 {
		fmt.Println("\n  No dated expenses")
		return nil
	}

	maxTotal := 0.0
	labelWidth := 0
	for _, mt := range months {
		if mt.Total > maxTotal {
			maxTotal = mt.Total
		}
		if len(mt.Label) > labelWidth {
			labelWidth = len(mt.Label)
		}
	}

	fmt.Println()
	fmt.Println(cli.RenderTitle("MONTHLY SPENDING"))
	fmt.Println()
	for _, mt := range months {
		fmt.Println(cli.RenderBarRow(mt.Label, mt.Total, maxTotal,
			labelWidth, 30, cli.FormatMoney(mt.Total, settings)))
	}
	fmt.Println()
	return nil
}
