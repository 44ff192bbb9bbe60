package cmd

import (
	"fmt"
	"strconv"

	"expenseai/internal/cli"

	"github.com/spf13/cobra"
)

var deleteCmd = &cobra.Command{
	Use:   "delete <index>",
	Short: "Delete the expense at the given ledger position",
	Long: `Delete the expense at the given ledger position, as shown by list.

Deletes are positional: if the ledger changed since you listed it, the
index may point at a different record. Run list again if in doubt.`,
	Args: cobra.ExactArgs(1),
	RunE: runDelete,
}

func init() {
	rootCmd.AddCommand(deleteCmd)
}

func runDelete(_ *cobra.Command, args []string) error {
	idx, err := strconv.Atoi(args[0])
	if err != nil {
		return fmt.Errorf("index must be a number, got %q", args[0])
	}

	led, closeStore, err := openLedger()
	if err != nil {
		return err
	}
	defer closeStore()

	removed, err := led.RemoveAt(idx)
	if err != nil {
		return err
	}

	settings, err := led.Settings()
	if err != nil {
		return err
	}
	fmt.Printf("  Deleted %s %s (%s)\n",
		cli.FormatMoney(removed.Amount, settings), removed.Title, removed.Category)
	return nil
}
