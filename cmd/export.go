package cmd

import (
	"fmt"
	"os"

	"expenseai/internal/export"
	"expenseai/internal/model"

	"github.com/spf13/cobra"
)

var flagExportOut string

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export the ledger",
}

var exportCSVCmd = &cobra.Command{
	Use:   "csv",
	Short: "Export the ledger as CSV",
	RunE: func(_ *cobra.Command, _ []string) error {
		return runExport("expenses.csv", export.CSV)
	},
}

var exportReportCmd = &cobra.Command{
	Use:   "report",
	Short: "Export the ledger as a printable HTML report",
	RunE: func(_ *cobra.Command, _ []string) error {
		return runExport("expenses.html", export.Report)
	},
}

func init() {
	exportCmd.PersistentFlags().StringVarP(&flagExportOut, "out", "o", "", "Output file (default expenses.csv / expenses.html)")
	exportCmd.AddCommand(exportCSVCmd)
	exportCmd.AddCommand(exportReportCmd)
	rootCmd.AddCommand(exportCmd)
}

func runExport(defaultName string, render func([]model.Record) (string, error)) error {
	led, closeStore, err := openLedger()
	if err != nil {
		return err
	}
	defer closeStore()

	records, err := led.Records()
	if err != nil {
		return err
	}

	out, err := render(records)
	if err != nil {
		return err
	}

	path := flagExportOut
	if path == "" {
		path = defaultName
	}
	if err := os.WriteFile(path, []byte(out), 0o644); err != nil {
		return fmt.Errorf("writing export: %w", err)
	}

	fmt.Printf("  Exported %d expenses to %s\n", len(records), path)
	return nil
}
