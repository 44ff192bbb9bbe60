package cmd

import (
	"fmt"
	"time"

	"expenseai/internal/cli"
	"expenseai/internal/pipeline"

	"github.com/spf13/cobra"
)

var streakCmd = &cobra.Command{
	Use:   "streak",
	Short: "Saving streak: consecutive days at or under the daily threshold",
	RunE:  runStreak,
}

func init() {
	rootCmd.AddCommand(streakCmd)
}

func runStreak(_ *cobra.Command, _ []string) error {
	led, closeStore, err := openLedger()
	if err != nil {
		return err
	}
	defer closeStore()

	records, err := led.Records()
	if err != nil {
		return err
	}
	settings, err := led.Settings()
	if err != nil {
		return err
	}

	now := time.Now()
	streak := pipeline.Streak(pipeline.PerDay(records), settings.Budget, now)
	thresh := pipeline.DailyThreshold(settings.Budget, now)

	fmt.Printf("\n  🔥 You're on a %d-day saving streak\n", streak)
	fmt.Printf("  Daily threshold: %s\n\n", cli.FormatMoney(thresh, settings))
	return nil
}
