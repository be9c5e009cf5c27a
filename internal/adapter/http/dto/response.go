package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/iho/tbrecon/internal/domain"
	"github.com/iho/tbrecon/internal/report"
)

// RowResponse represents one reconciliation line in API responses.
type RowResponse struct {
	Name            string           `json:"name"`
	SourceFile      string           `json:"source_file"`
	TBCode          string           `json:"tb_code"`
	TBAmount        *decimal.Decimal `json:"tb_amount,omitempty"`
	TBAmountDisplay string           `json:"tb_amount_display"`
	ExpectedAmount  *decimal.Decimal `json:"expected_amount,omitempty"`
	Result          string           `json:"result"`
	StaffName       string           `json:"staff_name"`
}

// ReportResponse represents a reconciliation report in API responses.
type ReportResponse struct {
	ID        string        `json:"id"`
	Company   string        `json:"company"`
	Month     string        `json:"month"`
	StaffName string        `json:"staff_name"`
	Rows      []RowResponse `json:"rows"`
	Warnings  []string      `json:"warnings,omitempty"`
	CheckedAt time.Time     `json:"checked_at"`
}

// ReportFromDomain converts a domain report to a response.
func ReportFromDomain(r *domain.Report) *ReportResponse {
	rows := make([]RowResponse, len(r.Rows))
	for i, row := range r.Rows {
		rows[i] = RowResponse{
			Name:            row.Name,
			SourceFile:      row.SourceFile,
			TBCode:          row.TBCode,
			TBAmount:        nullableAmount(row.LedgerAmount),
			TBAmountDisplay: displayAmount(row.LedgerAmount),
			ExpectedAmount:  nullableAmount(row.Expected),
			Result:          row.Verdict.String(),
			StaffName:       row.StaffName,
		}
	}

	return &ReportResponse{
		ID:        r.ID,
		Company:   r.Company,
		Month:     r.Month,
		StaffName: r.StaffName,
		Rows:      rows,
		Warnings:  r.Warnings,
		CheckedAt: r.CheckedAt,
	}
}

func nullableAmount(d decimal.NullDecimal) *decimal.Decimal {
	if !d.Valid {
		return nil
	}
	v := d.Decimal
	return &v
}

func displayAmount(d decimal.NullDecimal) string {
	if !d.Valid {
		return ""
	}
	return report.FormatAmount(d.Decimal)
}

// ErrorResponse is the JSON body for failed requests.
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}
