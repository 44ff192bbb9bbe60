package cmd

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	"expenseai/internal/config"
	"expenseai/internal/model"

	"github.com/spf13/cobra"
)

var setupCmd = &cobra.Command{
	Use:   "setup",
	Short: "First-time setup wizard",
	RunE:  runSetup,
}

func init() {
	rootCmd.AddCommand(setupCmd)
}

func runSetup(_ *cobra.Command, _ []string) error {
	reader := bufio.NewReader(os.Stdin)

	led, closeStore, err := openLedger()
	if err != nil {
		return err
	}
	defer closeStore()

	settings, err := led.Settings()
	if err != nil {
		return err
	}
	cfg, _ := config.Load()

	fmt.Println()
	fmt.Println("  Welcome to expenseai!")
	fmt.Println()

	// 1. Monthly budget
	fmt.Println("  1. Monthly budget")
	fmt.Printf("     Current: %.0f\n", settings.Budget)
	fmt.Print("     > ")
	budgetIn, _ := reader.ReadString('\n')
	budgetIn = strings.TrimSpace(budgetIn)
	if budgetIn != "" {
		if v, err := strconv.ParseFloat(budgetIn, 64); err == nil && v > 0 {
			settings.Budget = v
		}
	}
	fmt.Println()

	// 2. Currency
	fmt.Println("  2. Display currency")
	fmt.Println("     (1) INR ₹ [default]")
	fmt.Println("     (2) USD $")
	fmt.Print("     > ")
	curIn, _ := reader.ReadString('\n')
	switch strings.TrimSpace(curIn) {
	case "2":
		settings.Currency = model.CurrencyUSD
	default:
		settings.Currency = model.CurrencyINR
	}
	fmt.Println()

	// 3. Theme
	fmt.Println("  3. Color theme")
	fmt.Println("     (1) Light [default]")
	fmt.Println("     (2) Dark")
	fmt.Print("     > ")
	themeIn, _ := reader.ReadString('\n')
	switch strings.TrimSpace(themeIn) {
	case "2":
		cfg.Appearance.Theme = config.ThemeDark
	default:
		cfg.Appearance.Theme = config.ThemeLight
	}

	if err := led.SaveSettings(settings); err != nil {
		return err
	}
	if err := config.Save(cfg); err != nil {
		return fmt.Errorf("saving config: %w", err)
	}

	fmt.Println()
	fmt.Println("  Setup complete. Run `expenseai add` to record your first expense.")
	return nil
}
