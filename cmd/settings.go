package cmd

import (
	"fmt"

	"expenseai/internal/cli"
	"expenseai/internal/config"
	"expenseai/internal/model"

	"github.com/spf13/cobra"
)

var (
	flagSetBudget   float64
	flagSetCurrency string
)

var settingsCmd = &cobra.Command{
	Use:   "settings",
	Short: "Show or change budget and currency",
	RunE:  runSettings,
}

func init() {
	settingsCmd.Flags().Float64Var(&flagSetBudget, "budget", 0, "Monthly budget")
	settingsCmd.Flags().StringVar(&flagSetCurrency, "currency", "", "Display currency (INR or USD)")
	rootCmd.AddCommand(settingsCmd)
}

func runSettings(cmd *cobra.Command, _ []string) error {
	led, closeStore, err := openLedger()
	if err != nil {
		return err
	}
	defer closeStore()

	settings, err := led.Settings()
	if err != nil {
		return err
	}

	changed := false
	if cmd.Flags().Changed("budget") {
		if flagSetBudget <= 0 {
			return fmt.Errorf("budget must be positive, got %v", flagSetBudget)
		}
		settings.Budget = flagSetBudget
		changed = true
	}
	if cmd.Flags().Changed("currency") {
		if !model.ValidCurrency(flagSetCurrency) {
			return fmt.Errorf("unknown currency %q (want INR or USD)", flagSetCurrency)
		}
		settings.Currency = flagSetCurrency
		changed = true
	}

	if changed {
		if err := led.SaveSettings(settings); err != nil {
			return err
		}
		fmt.Println("  Settings saved")
	}

	cfg, _ := config.Load()
	fmt.Println()
	fmt.Println("  [Settings]")
	fmt.Printf("    Monthly budget: %s\n", cli.FormatMoney(settings.Budget, settings))
	fmt.Printf("    Currency:       %s\n", settings.Currency)
	fmt.Println()
	fmt.Println("  [Appearance]")
	fmt.Printf("    Theme: %s\n", cfg.Appearance.Theme)
	fmt.Println()
	fmt.Printf("  Config file: %s\n", config.Path())
	fmt.Printf("  Database:    %s\n", dbPath())
	return nil
}
