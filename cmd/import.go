package cmd

import (
	"fmt"
	"os"

	"expenseai/internal/export"

	"github.com/spf13/cobra"
)

var importCmd = &cobra.Command{
	Use:   "import <file.csv>",
	Short: "Import expenses from a previously exported CSV",
	Long: `Import expenses from a CSV in the export format
(Title,Category,Amount,Date). Imported records are appended at the head
of the ledger in file order.`,
	Args: cobra.ExactArgs(1),
	RunE: runImport,
}

func init() {
	rootCmd.AddCommand(importCmd)
}

func runImport(_ *cobra.Command, args []string) error {
	data, err := os.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("reading import file: %w", err)
	}

	records, err := export.ParseCSV(string(data))
	if err != nil {
		return err
	}
	if len(records) == 0 {
		return fmt.Errorf("no expenses found in %s", args[0])
	}

	led, closeStore, err := openLedger()
	if err != nil {
		return err
	}
	defer closeStore()

	existing, err := led.Records()
	if err != nil {
		return err
	}
	if err := led.ReplaceAll(append(records, existing...)); err != nil {
		return err
	}

	fmt.Printf("  Imported %d expenses from %s\n", len(records), args[0])
	return nil
}
