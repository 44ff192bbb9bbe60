package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"time"

	"expenseai/internal/cli"
	"expenseai/internal/model"
	"expenseai/internal/scan"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"
)

var scanCmd = &cobra.Command{
	Use:   "scan <receipt-image>",
	Short: "Analyze a receipt image (mock detection)",
	Long: `Analyze a receipt image and offer the detected amount and category
as a new expense. Detection is a placeholder: it picks from a small fixed
table after a short delay. Ctrl-C during analysis cancels it cleanly.`,
	Args: cobra.ExactArgs(1),
	RunE: runScan,
}

func init() {
	rootCmd.AddCommand(scanCmd)
}

func runScan(_ *cobra.Command, args []string) error {
	if _, err := os.Stat(args[0]); err != nil {
		return fmt.Errorf("opening receipt: %w", err)
	}

	// Cancellation is wired through the context: dismissing the analysis
	// (Ctrl-C) stops it before any result is reported.
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	fmt.Println("  Analyzing receipt...")
	detection, err := scan.New().Analyze(ctx)
	if err != nil {
		if ctx.Err() != nil {
			fmt.Println("  Analysis cancelled")
			return nil
		}
		return err
	}

	led, closeStore, err := openLedger()
	if err != nil {
		return err
	}
	defer closeStore()

	settings, err := led.Settings()
	if err != nil {
		return err
	}

	fmt.Printf("  Detected: %s — %s (%s)\n",
		cli.FormatMoney(detection.Amount, settings), detection.Category, detection.Note)

	confirmed := true
	confirm := huh.NewConfirm().
		Title("Add this expense?").
		Affirmative("Confirm").
		Negative("Dismiss").
		Value(&confirmed)
	if err := confirm.Run(); err != nil {
		return err
	}
	if !confirmed {
		fmt.Println("  Dismissed")
		return nil
	}

	record := model.Record{
		Title:    detection.Title(),
		Amount:   detection.Amount,
		Category: detection.Category,
		Date:     time.Now().Format("2006-01-02"),
	}
	if err := led.Add(record); err != nil {
		return err
	}
	fmt.Printf("  Added %s %s\n", cli.FormatMoney(record.Amount, settings), record.Title)
	return nil
}
