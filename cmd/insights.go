package cmd

import (
	"fmt"
	"time"

	"expenseai/internal/cli"
	"expenseai/internal/insight"

	"github.com/spf13/cobra"
)

var insightsCmd = &cobra.Command{
	Use:   "insights",
	Short: "Spending insights for this month vs last month",
	RunE:  runInsights,
}

func init() {
	rootCmd.AddCommand(insightsCmd)
}

func runInsights(_ *cobra.Command, _ []string) error {
	led, closeStore, err := openLedger()
	if err != nil {
		return err
	}
	defer closeStore()

	records, err := led.Records()
	if err != nil {
		return err
	}

	fmt.Println()
	fmt.Println(cli.RenderTitle("INSIGHTS"))
	fmt.Println()
	for _, line := range insight.Generate(records, time.Now()) {
		fmt.Printf("  • %s\n", line)
	}
	fmt.Println()
	return nil
}
