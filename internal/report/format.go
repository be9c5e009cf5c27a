// Package report shapes a reconciliation report into presentation rows for
// the workbook renderer: fixed column order, display formatting for the TB
// amount, and per-column rendering hints.
package report

import (
	"strings"

	"github.com/shopspring/decimal"

	"github.com/iho/tbrecon/internal/domain"
)

// ColumnKind hints the renderer how to style a column.
type ColumnKind int

const (
	// ColumnText renders as centered bordered text.
	ColumnText ColumnKind = iota
	// ColumnAmount renders right-aligned with a #,##0.00 number format.
	ColumnAmount
)

// Headers is the fixed column header row.
var Headers = []string{
	"Name",
	"source file",
	"TB Code",
	"TB code amount column5(+),6(-)",
	"PDF actual amount",
	"Results",
	"Staff name",
}

// Kinds carries one rendering hint per column, aligned with Headers.
var Kinds = []ColumnKind{
	ColumnText,
	ColumnText,
	ColumnText,
	ColumnAmount,
	ColumnAmount,
	ColumnText,
	ColumnText,
}

// Cell is one presentation value. Text always holds the display string;
// Number is additionally set for numeric cells so the renderer can apply a
// native number format instead of the pre-formatted text.
type Cell struct {
	Text   string
	Number decimal.Decimal
	HasNum bool
}

// Table is a presentation-ready row set.
type Table struct {
	Headers []string
	Kinds   []ColumnKind
	Rows    [][]Cell
}

// Build converts report rows into the presentation table. Absent amounts
// render as empty cells, never as a "None" or "NaN" literal. Both amount
// columns carry the raw numeric value for the renderer's number format;
// the thousands-separated display string on the TB amount cell is what
// text surfaces (JSON, CLI) show, and is the only string form of that
// amount the report exposes.
func Build(r *domain.Report) *Table {
	table := &Table{
		Headers: Headers,
		Kinds:   Kinds,
		Rows:    make([][]Cell, 0, len(r.Rows)),
	}

	for _, row := range r.Rows {
		table.Rows = append(table.Rows, []Cell{
			{Text: row.Name},
			{Text: row.SourceFile},
			{Text: row.TBCode},
			amountCell(row.LedgerAmount),
			amountCell(row.Expected),
			{Text: row.Verdict.String()},
			{Text: row.StaffName},
		})
	}

	return table
}

// ColumnWidths returns per-column widths sized to the longest stringified
// cell (header included) plus a fixed padding of two characters.
func (t *Table) ColumnWidths() []int {
	widths := make([]int, len(t.Headers))
	for i, h := range t.Headers {
		widths[i] = len([]rune(h))
	}
	for _, row := range t.Rows {
		for i, cell := range row {
			if n := len([]rune(cell.Text)); n > widths[i] {
				widths[i] = n
			}
		}
	}
	for i := range widths {
		widths[i] += 2
	}
	return widths
}

func amountCell(d decimal.NullDecimal) Cell {
	if !d.Valid {
		return Cell{}
	}
	return Cell{
		Text:   FormatAmount(d.Decimal),
		Number: d.Decimal,
		HasNum: true,
	}
}

// FormatAmount renders a decimal as a thousands-separated string with two
// fraction digits, e.g. 5331520.94 -> "5,331,520.94".
func FormatAmount(d decimal.Decimal) string {
	s := d.StringFixed(2)

	neg := strings.HasPrefix(s, "-")
	if neg {
		s = s[1:]
	}

	intPart, fracPart, _ := strings.Cut(s, ".")

	var b strings.Builder
	if neg {
		b.WriteByte('-')
	}
	for i, ch := range intPart {
		if i > 0 && (len(intPart)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(ch)
	}
	b.WriteByte('.')
	b.WriteString(fracPart)

	return b.String()
}
