package excel

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/iho/tbrecon/internal/report"
)

const sheetName = "Summary"

// Renderer writes a presentation table as a styled xlsx workbook: gold
// header row, bordered cells, right-aligned #,##0.00 amounts, and column
// widths sized to content.
type Renderer struct{}

// NewRenderer creates a new Renderer.
func NewRenderer() *Renderer {
	return &Renderer{}
}

// Render produces the workbook bytes for one report.
func (r *Renderer) Render(table *report.Table) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", sheetName); err != nil {
		return nil, fmt.Errorf("rename sheet: %w", err)
	}

	headerStyle, cellStyle, amountStyle, err := buildStyles(f)
	if err != nil {
		return nil, err
	}

	for col, header := range table.Headers {
		cell, err := excelize.CoordinatesToCellName(col+1, 1)
		if err != nil {
			return nil, err
		}
		if err := f.SetCellValue(sheetName, cell, header); err != nil {
			return nil, err
		}
		if err := f.SetCellStyle(sheetName, cell, cell, headerStyle); err != nil {
			return nil, err
		}
	}

	for rowIdx, row := range table.Rows {
		for col, c := range row {
			cell, err := excelize.CoordinatesToCellName(col+1, rowIdx+2)
			if err != nil {
				return nil, err
			}

			if table.Kinds[col] == report.ColumnAmount && c.HasNum {
				if err := f.SetCellValue(sheetName, cell, c.Number.InexactFloat64()); err != nil {
					return nil, err
				}
				if err := f.SetCellStyle(sheetName, cell, cell, amountStyle); err != nil {
					return nil, err
				}
				continue
			}

			if err := f.SetCellValue(sheetName, cell, c.Text); err != nil {
				return nil, err
			}
			if err := f.SetCellStyle(sheetName, cell, cell, cellStyle); err != nil {
				return nil, err
			}
		}
	}

	for i, width := range table.ColumnWidths() {
		col, err := excelize.ColumnNumberToName(i + 1)
		if err != nil {
			return nil, err
		}
		if err := f.SetColWidth(sheetName, col, col, float64(width)); err != nil {
			return nil, err
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("write workbook: %w", err)
	}
	return buf.Bytes(), nil
}

func buildStyles(f *excelize.File) (header, cell, amount int, err error) {
	borders := []excelize.Border{
		{Type: "left", Color: "000000", Style: 1},
		{Type: "right", Color: "000000", Style: 1},
		{Type: "top", Color: "000000", Style: 1},
		{Type: "bottom", Color: "000000", Style: 1},
	}

	header, err = f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Color: "000000"},
		Fill:      excelize.Fill{Type: "pattern", Color: []string{"FFD700"}, Pattern: 1},
		Border:    borders,
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
	})
	if err != nil {
		return 0, 0, 0, err
	}

	cell, err = f.NewStyle(&excelize.Style{
		Border:    borders,
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
	})
	if err != nil {
		return 0, 0, 0, err
	}

	numFmt := "#,##0.00"
	amount, err = f.NewStyle(&excelize.Style{
		Border:       borders,
		Alignment:    &excelize.Alignment{Horizontal: "right", Vertical: "center"},
		CustomNumFmt: &numFmt,
	})
	if err != nil {
		return 0, 0, 0, err
	}

	return header, cell, amount, nil
}
