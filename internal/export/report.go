package export

import (
	"html/template"
	"strings"

	"expenseai/internal/model"
)

var reportTmpl = template.Must(template.New("report").Parse(`<html>
<head>
<title>Expenses</title>
<style>table{width:100%;border-collapse:collapse}th,td{padding:8px;border:1px solid #ddd}</style>
</head>
<body>
<h2>ExpenseAI - Expenses</h2>
<table>
<thead><tr><th>Title</th><th>Category</th><th>Amount</th><th>Date</th></tr></thead>
<tbody>
{{- range .}}
<tr><td>{{.Title}}</td><td>{{.Category}}</td><td>{{.Amount}}</td><td>{{.Date}}</td></tr>
{{- end}}
</tbody>
</table>
</body>
</html>
`))

type reportRow struct {
	Title    string
	Category string
	Amount   string
	Date     string
}

// Report renders the records as a standalone printable HTML document.
// Returns ErrEmpty for an empty ledger.
func Report(records []model.Record) (string, error) {
	if len(records) == 0 {
		return "", ErrEmpty
	}

	rows := make([]reportRow, 0, len(records))
	for _, r := range records {
		rows = append(rows, reportRow{
			Title:    r.Title,
			Category: r.Category,
			Amount:   FormatAmount(r.Amount),
			Date:     r.Date,
		})
	}

	var b strings.Builder
	if err := reportTmpl.Execute(&b, rows); err != nil {
		return "", err
	}
	return b.String(), nil
}
