// Package excel adapts xlsx workbooks: reading the staff reference sheet
// and rendering the reconciliation report.
package excel

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/iho/tbrecon/internal/domain"
)

// Column headers accepted after normalization (lowercased, spaces removed).
var (
	companyHeaders = map[string]bool{"company": true, "companyname": true}
	staffHeaders   = map[string]bool{"staff": true, "staffname": true}
)

// StaffDirectory implements usecase.StaffDirectory over an xlsx reference
// sheet with a company-name column and a staff-name column.
type StaffDirectory struct{}

// NewStaffDirectory creates a new StaffDirectory.
func NewStaffDirectory() *StaffDirectory {
	return &StaffDirectory{}
}

// LookupStaff finds the staff name for a company. The match is a
// case-insensitive exact comparison against the company column; the first
// matching row wins.
func (d *StaffDirectory) LookupStaff(sheet []byte, company string) (string, error) {
	f, err := excelize.OpenReader(bytes.NewReader(sheet))
	if err != nil {
		return "", fmt.Errorf("%w: %v", domain.ErrSheetUnavailable, err)
	}
	defer f.Close()

	rows, err := f.GetRows(f.GetSheetName(0))
	if err != nil {
		return "", fmt.Errorf("%w: %v", domain.ErrSheetUnavailable, err)
	}
	if len(rows) == 0 {
		return "", domain.ErrSheetSchemaMismatch
	}

	companyCol, staffCol := -1, -1
	for i, header := range rows[0] {
		switch h := normalizeHeader(header); {
		case companyHeaders[h]:
			if companyCol < 0 {
				companyCol = i
			}
		case staffHeaders[h]:
			if staffCol < 0 {
				staffCol = i
			}
		}
	}
	if companyCol < 0 || staffCol < 0 {
		return "", domain.ErrSheetSchemaMismatch
	}

	want := strings.TrimSpace(company)
	for _, row := range rows[1:] {
		if companyCol >= len(row) {
			continue
		}
		if !strings.EqualFold(strings.TrimSpace(row[companyCol]), want) {
			continue
		}
		if staffCol >= len(row) {
			return "", domain.ErrStaffNotFound
		}
		return strings.TrimSpace(row[staffCol]), nil
	}

	return "", domain.ErrStaffNotFound
}

func normalizeHeader(h string) string {
	return strings.ReplaceAll(strings.ToLower(strings.TrimSpace(h)), " ", "")
}
