// Package cmd implements the expenseai CLI commands.
package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"expenseai/internal/cli"
	"expenseai/internal/config"
	"expenseai/internal/ledger"
	"expenseai/internal/model"
	"expenseai/internal/pipeline"
	"expenseai/internal/store"

	"github.com/spf13/cobra"
)

var flagDataDir string

var rootCmd = &cobra.Command{
	Use:   "expenseai",
	Short: "Personal expense tracker",
	Long:  "Track expenses against a monthly budget: ledger, charts, saving streak, and spending insights.",
	RunE:  runDashboard,
}

// Execute is the main entry point called from main.go.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&flagDataDir, "data-dir", "d", "", "Data directory (default XDG data dir)")
}

// dbPath resolves the database location: flag, then config override, then
// the XDG default.
func dbPath() string {
	if flagDataDir != "" {
		return filepath.Join(flagDataDir, "expenseai.db")
	}
	cfg, _ := config.Load()
	if cfg.General.DataDir != "" {
		return filepath.Join(cfg.General.DataDir, "expenseai.db")
	}
	return store.DefaultPath()
}

// openLedger is the shared data access path used by all commands. The
// returned close func must be called when done.
func openLedger() (*ledger.Ledger, func(), error) {
	st, err := store.Open(dbPath())
	if err != nil {
		return nil, nil, err
	}
	return ledger.New(st), func() { _ = st.Close() }, nil
}

func runDashboard(_ *cobra.Command, _ []string) error {
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
	stats := pipeline.Stats(records, settings)
	streak := pipeline.Streak(pipeline.PerDay(records), settings.Budget, now)

	fmt.Println()
	fmt.Println(cli.RenderTitle("EXPENSEAI"))
	fmt.Println()
	fmt.Printf("  Total spent: %s\n", cli.FormatMoney(stats.Total, settings))
	fmt.Printf("  Budget:      %s\n", cli.FormatMoney(stats.Budget, settings))
	fmt.Printf("  Remaining:   %s\n", cli.FormatSigned(stats.Remaining, settings))
	fmt.Println()
	if stats.OverBudget {
		fmt.Println(cli.RenderAlert("Budget exceeded!"))
		fmt.Println()
	}
	fmt.Printf("  🔥 You're on a %d-day saving streak\n", streak)
	fmt.Println()

	if spark := dailySparkline(records, now, 30); spark != "" {
		fmt.Printf("  Last 30 days: %s\n\n", spark)
	}

	if len(records) == 0 {
		fmt.Println("  No expenses recorded yet. Run `expenseai add` to get started.")
		return nil
	}

	recent := records
	if len(recent) > 5 {
		recent = recent[:5]
	}
	fmt.Print(cli.RenderTable(cli.Table{
		Title:   "Recent",
		Headers: []string{"Title", "Category", "Amount", "Date"},
		Rows:    recordRows(recent, settings),
	}))
	return nil
}

// dailySparkline renders per-day spend for the trailing window, oldest
// first. Empty when nothing in the window has spend.
func dailySparkline(records []model.Record, now time.Time, days int) string {
	perDay := pipeline.PerDay(records)
	values := make([]float64, days)
	any := false
	for i := 0; i < days; i++ {
		v := perDay[now.AddDate(0, 0, i-days+1).Format("2006-01-02")]
		values[i] = v
		if v > 0 {
			any = true
		}
	}
	if !any {
		return ""
	}
	return cli.RenderSparkline(values)
}

func recordRows(records []model.Record, settings model.Settings) [][]string {
	rows := make([][]string, 0, len(records))
	for _, r := range records {
		cat := r.Category
		if icon := model.CategoryIcon(r.Category); icon != "" {
			cat = icon + " " + r.Category
		}
		rows = append(rows, []string{
			r.Title,
			cat,
			cli.FormatMoney(r.Amount, settings),
			r.Date,
		})
	}
	return rows
}
