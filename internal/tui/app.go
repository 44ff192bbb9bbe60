// Package tui provides the interactive Bubble Tea dashboard for expenseai.
package tui

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"expenseai/internal/cli"
	"expenseai/internal/config"
	"expenseai/internal/insight"
	"expenseai/internal/ledger"
	"expenseai/internal/model"
	"expenseai/internal/pipeline"
	"expenseai/internal/tui/components"
	"expenseai/internal/tui/theme"

	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
)

const (
	tabOverview = iota
	tabLedger
	tabCharts
	tabInsights
	tabCount
)

var tabNames = []string{"Overview", "Ledger", "Charts", "Insights"}

// App is the root Bubble Tea model.
type App struct {
	led *ledger.Ledger

	// Ledger snapshot and derived views, recomputed after every mutation.
	records    []model.Record
	settings   model.Settings
	stats      model.LedgerStats
	summary    model.MonthSummary
	streak     int
	categories []model.CategoryTotal
	months     []model.MonthTotal
	insights   []string

	// UI state
	width     int
	height    int
	activeTab int
	ledger    table.Model

	// Add form (huh), non-nil while open
	form     *huh.Form
	formVals addFormValues

	err error
}

type addFormValues struct {
	title    string
	amount   string
	category string
	date     string
}

// NewApp builds the dashboard model over an open ledger.
func NewApp(led *ledger.Ledger) *App {
	app := &App{led: led}
	app.ledger = table.New(
		table.WithColumns(ledgerColumns(80)),
		table.WithFocused(true),
	)
	app.applyTableStyles()
	app.reload()
	return app
}

// reload re-reads the store and recomputes every derived view. There is no
// incremental path: any mutation pays for a full recompute.
func (a *App) reload() {
	records, err := a.led.Records()
	if err != nil {
		a.err = err
		return
	}
	settings, err := a.led.Settings()
	if err != nil {
		a.err = err
		return
	}

	now := time.Now()
	a.records = records
	a.settings = settings
	a.stats = pipeline.Stats(records, settings)
	a.summary = pipeline.Summarize(records, now)
	a.streak = pipeline.Streak(pipeline.PerDay(records), settings.Budget, now)
	a.categories = pipeline.PerCategory(records)
	a.months = pipeline.PerMonth(records)
	a.insights = insight.Generate(records, now)
	a.err = nil

	rows := make([]table.Row, 0, len(records))
	for i, r := range records {
		rows = append(rows, table.Row{
			strconv.Itoa(i),
			r.Title,
			r.Category,
			cli.FormatMoney(r.Amount, settings),
			r.Date,
		})
	}
	a.ledger.SetRows(rows)
}

func ledgerColumns(width int) []table.Column {
	title := width - 46
	if title < 12 {
		title = 12
	}
	return []table.Column{
		{Title: "#", Width: 4},
		{Title: "Title", Width: title},
		{Title: "Category", Width: 10},
		{Title: "Amount", Width: 12},
		{Title: "Date", Width: 12},
	}
}

func (a *App) applyTableStyles() {
	t := theme.Active
	styles := table.DefaultStyles()
	styles.Header = styles.Header.
		Bold(true).
		Foreground(t.Accent).
		BorderForeground(t.Border)
	styles.Selected = styles.Selected.
		Foreground(t.TextPrimary).
		Background(t.SurfaceHover).
		Bold(false)
	a.ledger.SetStyles(styles)
}

// Init implements tea.Model.
func (a *App) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.ledger.SetColumns(ledgerColumns(a.width - 6))
		h := a.height - 10
		if h < 3 {
			h = 3
		}
		a.ledger.SetHeight(h)
	}

	// Route everything to the add form while it is open.
	if a.form != nil {
		return a.updateForm(msg)
	}

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return a, tea.Quit
		case "tab", "right", "l":
			a.activeTab = (a.activeTab + 1) % tabCount
		case "shift+tab", "left", "h":
			a.activeTab = (a.activeTab + tabCount - 1) % tabCount
		case "1", "2", "3", "4":
			a.activeTab = int(msg.String()[0] - '1')
		case "t":
			next := theme.Toggle()
			a.applyTableStyles()
			cfg, _ := config.Load()
			cfg.Appearance.Theme = next
			_ = config.Save(cfg)
		case "r":
			a.reload()
		case "a":
			a.openAddForm()
			return a, a.form.Init()
		case "d":
			if a.activeTab == tabLedger && len(a.records) > 0 {
				if _, err := a.led.RemoveAt(a.ledger.Cursor()); err != nil {
					a.err = err
				} else {
					a.reload()
				}
			}
		}
	}

	if a.activeTab == tabLedger {
		var cmd tea.Cmd
		a.ledger, cmd = a.ledger.Update(msg)
		return a, cmd
	}
	return a, nil
}

func (a *App) openAddForm() {
	a.formVals = addFormValues{category: model.CategoryOther}

	categoryOptions := make([]huh.Option[string], 0, len(model.Categories))
	for _, c := range model.Categories {
		categoryOptions = append(categoryOptions, huh.NewOption(c, c))
	}

	a.form = huh.NewForm(
		huh.NewGroup(
			huh.NewInput().Title("Title").Value(&a.formVals.title),
			huh.NewInput().Title("Amount").Value(&a.formVals.amount).
				Validate(func(s string) error {
					v, err := strconv.ParseFloat(s, 64)
					if err != nil || v <= 0 {
						return errors.New("enter a positive amount")
					}
					return nil
				}),
			huh.NewSelect[string]().Title("Category").
				Options(categoryOptions...).
				Value(&a.formVals.category),
			huh.NewInput().Title("Date (YYYY-MM-DD, empty for today)").
				Value(&a.formVals.date),
		),
	)
}

func (a *App) updateForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok && key.String() == "esc" {
		a.form = nil
		return a, nil
	}

	form, cmd := a.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		a.form = f
	}

	if a.form.State == huh.StateCompleted {
		a.submitForm()
		a.form = nil
	} else if a.form.State == huh.StateAborted {
		a.form = nil
	}
	return a, cmd
}

func (a *App) submitForm() {
	amount, err := strconv.ParseFloat(a.formVals.amount, 64)
	if err != nil || a.formVals.title == "" || amount <= 0 {
		a.err = errors.New("enter a title and a positive amount")
		return
	}
	date := a.formVals.date
	if date == "" {
		date = time.Now().Format("2006-01-02")
	}
	record := model.Record{
		Title:    a.formVals.title,
		Amount:   amount,
		Category: a.formVals.category,
		Date:     date,
	}
	if err := a.led.Add(record); err != nil {
		a.err = err
		return
	}
	a.reload()
}

// View implements tea.Model.
func (a *App) View() string {
	if a.width == 0 {
		return "Loading..."
	}

	var sections []string
	sections = append(sections, a.renderTabBar())

	if a.form != nil {
		sections = append(sections, a.form.View())
	} else {
		switch a.activeTab {
		case tabOverview:
			sections = append(sections, a.renderOverview())
		case tabLedger:
			sections = append(sections, a.renderLedger())
		case tabCharts:
			sections = append(sections, a.renderCharts())
		case tabInsights:
			sections = append(sections, a.renderInsights())
		}
	}

	sections = append(sections, a.renderStatusBar())
	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (a *App) renderTabBar() string {
	t := theme.Active

	activeStyle := lipgloss.NewStyle().
		Padding(0, 2).
		Bold(true).
		Foreground(t.TextPrimary).
		Background(t.SurfaceHover)
	inactiveStyle := lipgloss.NewStyle().
		Padding(0, 2).
		Foreground(t.TextMuted)

	tabs := make([]string, len(tabNames))
	for i, name := range tabNames {
		if i == a.activeTab {
			tabs[i] = activeStyle.Render(name)
		} else {
			tabs[i] = inactiveStyle.Render(name)
		}
	}

	title := lipgloss.NewStyle().Bold(true).Foreground(t.Accent).Render(" expenseai ")
	return title + lipgloss.JoinHorizontal(lipgloss.Top, tabs...) + "\n"
}

func (a *App) renderOverview() string {
	t := theme.Active

	cardWidths := components.LayoutRow(min(a.width-2, 100), 3)
	remainingColor := t.Green
	if a.stats.OverBudget {
		remainingColor = t.Red
	}

	cards := lipgloss.JoinHorizontal(lipgloss.Top,
		components.MetricCard("Total spent",
			cli.FormatMoney(a.stats.Total, a.settings), "all time", cardWidths[0], ""),
		components.MetricCard("Budget",
			cli.FormatMoney(a.stats.Budget, a.settings), "monthly", cardWidths[1], ""),
		components.MetricCard("Remaining",
			cli.FormatSigned(a.stats.Remaining, a.settings), "", cardWidths[2], remainingColor),
	)

	var b strings.Builder
	b.WriteString(cards)
	b.WriteString("\n")
	if a.stats.OverBudget {
		b.WriteString(lipgloss.NewStyle().Bold(true).Foreground(t.Red).Render("  ⚠ Budget exceeded!"))
		b.WriteString("\n")
	}
	b.WriteString(fmt.Sprintf("  🔥 You're on a %d-day saving streak\n", a.streak))

	if a.summary.ThisMonthTotal > 0 {
		b.WriteString(fmt.Sprintf("\n  This month: %s",
			cli.FormatMoney(a.summary.ThisMonthTotal, a.settings)))
		if a.summary.TopCategory != "" {
			b.WriteString(fmt.Sprintf("   Top category: %s", a.summary.TopCategory))
		}
		b.WriteString("\n")
	}

	if a.err != nil {
		b.WriteString("\n" + lipgloss.NewStyle().Foreground(t.Red).Render("  "+a.err.Error()) + "\n")
	}
	return b.String()
}

func (a *App) renderLedger() string {
	if len(a.records) == 0 {
		return lipgloss.NewStyle().Foreground(theme.Active.TextMuted).Render("\n  No expenses\n")
	}
	return a.ledger.View() + "\n"
}

func (a *App) renderCharts() string {
	t := theme.Active
	header := lipgloss.NewStyle().Bold(true).Foreground(t.Accent)

	if len(a.records) == 0 {
		return lipgloss.NewStyle().Foreground(t.TextMuted).Render("\n  No expenses\n")
	}

	catItems := make([]components.BarItem, 0, len(a.categories))
	for _, ct := range a.categories {
		catItems = append(catItems, components.BarItem{
			Label:     ct.Category,
			Value:     ct.Total,
			Formatted: cli.FormatMoney(ct.Total, a.settings),
		})
	}
	monthItems := make([]components.BarItem, 0, len(a.months))
	for _, mt := range a.months {
		monthItems = append(monthItems, components.BarItem{
			Label:     mt.Label,
			Value:     mt.Total,
			Formatted: cli.FormatMoney(mt.Total, a.settings),
		})
	}

	var b strings.Builder
	b.WriteString(header.Render("  By category"))
	b.WriteString("\n")
	b.WriteString(indent(components.BarChart(catItems, 30), 2))
	b.WriteString("\n\n")
	b.WriteString(header.Render("  By month"))
	b.WriteString("\n")
	b.WriteString(indent(components.BarChart(monthItems, 30), 2))
	b.WriteString("\n")
	return b.String()
}

func (a *App) renderInsights() string {
	t := theme.Active
	var b strings.Builder
	b.WriteString("\n")
	for _, line := range a.insights {
		b.WriteString("  • ")
		b.WriteString(lipgloss.NewStyle().Foreground(t.TextPrimary).Render(line))
		b.WriteString("\n")
	}
	return b.String()
}

func (a *App) renderStatusBar() string {
	t := theme.Active
	hints := "tab: switch  a: add  d: delete  t: theme  r: reload  q: quit"
	return lipgloss.NewStyle().Foreground(t.TextDim).Render("  " + hints)
}

func indent(s string, n int) string {
	pad := strings.Repeat(" ", n)
	lines := strings.Split(s, "\n")
	for i := range lines {
		lines[i] = pad + lines[i]
	}
	return strings.Join(lines, "\n")
}
