// Package export renders ledger snapshots into the CSV and printable
// report formats.
package export

import (
	"encoding/csv"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"expenseai/internal/model"
)

// ErrEmpty is returned when an export is requested for an empty ledger.
var ErrEmpty = errors.New("no expenses to export")

var csvHeader = []string{"Title", "Category", "Amount", "Date"}

// CSV renders the records as CSV with every field quoted and embedded
// quotes doubled. Returns ErrEmpty for an empty ledger; no output is
// produced in that case.
func CSV(records []model.Record) (string, error) {
	if len(records) == 0 {
		return "", ErrEmpty
	}

	var b strings.Builder
	b.WriteString(strings.Join(csvHeader, ","))
	for _, r := range records {
		b.WriteByte('\n')
		fields := []string{r.Title, r.Category, FormatAmount(r.Amount), r.Date}
		for i, f := range fields {
			if i > 0 {
				b.WriteByte(',')
			}
			b.WriteByte('"')
			b.WriteString(strings.ReplaceAll(f, `"`, `""`))
			b.WriteByte('"')
		}
	}
	b.WriteByte('\n')
	return b.String(), nil
}

// ParseCSV reads CSV produced by CSV back into records. Used to verify the
// round-trip property; it is not a general CSV importer.
func ParseCSV(data string) ([]model.Record, error) {
	reader := csv.NewReader(strings.NewReader(data))
	rows, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("parsing csv: %w", err)
	}
	if len(rows) == 0 {
		return nil, nil
	}

	var records []model.Record
	for _, row := range rows[1:] {
		if len(row) != len(csvHeader) {
			return nil, fmt.Errorf("row has %d fields, want %d", len(row), len(csvHeader))
		}
		amount, err := strconv.ParseFloat(row[2], 64)
		if err != nil {
			return nil, fmt.Errorf("parsing amount %q: %w", row[2], err)
		}
		records = append(records, model.Record{
			Title:    row[0],
			Category: row[1],
			Amount:   amount,
			Date:     row[3],
		})
	}
	return records, nil
}

// FormatAmount serializes an amount without forcing decimal places, the
// way the persisted JSON does ("200", "49.5").
func FormatAmount(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
