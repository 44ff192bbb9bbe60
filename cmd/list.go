package cmd

import (
	"fmt"
	"strconv"

	"expenseai/internal/cli"

	"github.com/spf13/cobra"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "Show the full expense ledger",
	RunE:  runList,
}

func init() {
	rootCmd.AddCommand(listCmd)
}

func runList(_ *cobra.Command, _ []string) error {
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

	rows := recordRows(records, settings)
	for i := range rows {
		rows[i] = append([]string{strconv.Itoa(i)}, rows[i]...)
	}

	fmt.Println()
	fmt.Print(cli.RenderTable(cli.Table{
		Headers: []string{"#", "Title", "Category", "Amount", "Date"},
		Rows:    rows,
	}))
	return nil
}
