package export

import (
	"fmt"
	"strconv"
	"strings"

	"finboard/internal/models"
)

// DefaultColumns is the column set used when the caller supplies none.
var DefaultColumns = []string{"id", "user", "amount", "category", "status", "date"}

// Request is the export endpoint's body.
type Request struct {
	Columns []string `json:"columns"`
	Filters Filter   `json:"filters"`
}

// Row is one record keyed by column name. Values may be of any scalar
// type the store hands back.
type Row map[string]interface{}

// RowsFromTransactions projects typed transactions into rows.
func RowsFromTransactions(txns []models.Transaction) []Row {
	rows := make([]Row, 0, len(txns))
	for _, t := range txns {
		rows = append(rows, Row{
			"id":       t.ID,
			"user":     t.User,
			"amount":   t.Amount,
			"category": t.Category,
			"status":   t.Status,
			"date":     t.Date,
		})
	}
	return rows
}

// Render serializes rows to delimited text: a header of column names,
// then one line per row. Values containing a comma are wrapped in
// double quotes; embedded quote characters are not escaped, preserving
// the download format existing consumers parse.
func Render(rows []Row, columns []string) string {
	lines := make([]string, 0, len(rows)+1)
	lines = append(lines, strings.Join(columns, ","))

	for _, row := range rows {
		cells := make([]string, 0, len(columns))
		for _, col := range columns {
			cells = append(cells, formatCell(row[col]))
		}
		lines = append(lines, strings.Join(cells, ","))
	}

	return strings.Join(lines, "\n")
}

func formatCell(v interface{}) string {
	var s string
	switch val := v.(type) {
	case nil:
		return ""
	case string:
		s = val
	case float64:
		s = strconv.FormatFloat(val, 'f', -1, 64)
	case int64:
		s = strconv.FormatInt(val, 10)
	case int:
		s = strconv.Itoa(val)
	default:
		s = fmt.Sprint(val)
	}

	if strings.Contains(s, ",") {
		return `"` + s + `"`
	}
	return s
}
