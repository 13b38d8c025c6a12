// Package report builds the monthly statement view: the month's
// transactions with resolved category names plus the income/expense
// summary, and its CSV rendering for download.
package report

import (
	"strconv"
	"strings"
	"time"

	"github.com/jdelarosa/finanzas-api/internal/analytics"
)

// Line is one statement row. CategoryName is the display name when the
// category still exists, otherwise the raw category id.
type Line struct {
	ID           string    `json:"id"`
	Date         time.Time `json:"date"`
	Description  string    `json:"description"`
	Category     string    `json:"category"`
	CategoryName string    `json:"category_name"`
	Amount       float64   `json:"amount"`
}

// MonthlyReport is the statement of one calendar month.
type MonthlyReport struct {
	Month   string            `json:"month"`
	Summary analytics.Summary `json:"summary"`
	Lines   []Line            `json:"transactions"`
}

// csvHeader matches the export format consumed by existing spreadsheets.
const csvHeader = "Fecha,Descripción,Categoría,Monto"

// ToCSV renders the statement as dd/MM/yyyy rows under the Spanish header.
// Fields are written as-is: commas or line breaks inside a description
// shift the columns of that row. Known limitation, kept for compatibility
// with the files users already have.
func (r *MonthlyReport) ToCSV() string {
	var b strings.Builder
	b.WriteString(csvHeader)
	b.WriteString("\n")

	for _, line := range r.Lines {
		b.WriteString(line.Date.Format("02/01/2006"))
		b.WriteString(",")
		b.WriteString(line.Description)
		b.WriteString(",")
		b.WriteString(line.CategoryName)
		b.WriteString(",")
		b.WriteString(strconv.FormatFloat(line.Amount, 'f', -1, 64))
		b.WriteString("\n")
	}

	return b.String()
}
