package cmd

import (
	"fmt"

	"expenseai/internal/config"

	"github.com/spf13/cobra"
)

var themeCmd = &cobra.Command{
	Use:   "theme [dark|light]",
	Short: "Show, set, or toggle the color theme",
	Long:  "With no argument, toggles between dark and light. The choice persists in the config file.",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runTheme,
}

func init() {
	rootCmd.AddCommand(themeCmd)
}

func runTheme(_ *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	next := ""
	if len(args) == 1 {
		if !config.ValidTheme(args[0]) {
			return fmt.Errorf("unknown theme %q (want dark or light)", args[0])
		}
		next = args[0]
	} else if cfg.Appearance.Theme == config.ThemeDark {
		next = config.ThemeLight
	} else {
		next = config.ThemeDark
	}

	cfg.Appearance.Theme = next
	if err := config.Save(cfg); err != nil {
		return err
	}

	fmt.Printf("  Theme: %s\n", next)
	return nil
}
