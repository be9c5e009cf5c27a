// Package reftable provides the reference table of semantic reconciliation
// lines: which ledger code each externally collected "actual" amount maps
// to, and the source-file label printed next to it in the report. The table
// is static per run; it can be loaded from a YAML profile or fall back to
// the built-in default.
package reftable

import (
	"github.com/shopspring/decimal"

	"github.com/iho/tbrecon/internal/domain"
)

// Default returns the built-in 13-line reference table. Expected amounts
// left invalid mean "no external actual collected for this line"; the
// corresponding report rows come out indeterminate. Note PND3 and PND53
// deliberately share ledger code 2132-02.
func Default() *domain.ReferenceTable {
	return &domain.ReferenceTable{
		Entries: []domain.ReferenceEntry{
			{Name: "Bank1 amt", TBCode: "1112-01", Expected: expected("5331520.94"), SourceFile: "bank1_{company}_{month}.pdf"},
			{Name: "Bank2 amt", TBCode: "1113-01", SourceFile: "bank2_{company}_{month}.pdf"},
			{Name: "Bank3 amt", TBCode: "1114-01", SourceFile: "bank3_{company}_{month}.pdf"},
			{Name: "Bank4 amt", TBCode: "1115-01", SourceFile: "bank4_{company}_{month}.pdf"},
			{Name: "Bank5 amt", TBCode: "1116-01", SourceFile: "bank5_{company}_{month}.pdf"},
			{Name: "Bank6 amt", TBCode: "1117-01", SourceFile: "bank6_{company}_{month}.pdf"},
			{Name: "Bank7 amt", TBCode: "1118-01", SourceFile: "bank7_{company}_{month}.pdf"},
			{Name: "Bank8 amt", TBCode: "1119-01", SourceFile: "bank8_{company}_{month}.pdf"},
			{Name: "PND1 amt", TBCode: "2132-01", Expected: expected("1000.00"), SourceFile: "0.PND1_{month}.pdf"},
			{Name: "PND3 amt", TBCode: "2132-02", Expected: expected("165.00"), SourceFile: "1.PND3_{month}.pdf"},
			{Name: "PND53 amt", TBCode: "2132-02", Expected: expected("540.00"), SourceFile: "2.PND53_{month}.pdf"},
			{Name: "PP30 amt", TBCode: "2137-00", Expected: expected("44145.07"), SourceFile: "ภ.พ.30_{month}.pdf"},
			{Name: "SSO amt", TBCode: "2131-04", SourceFile: "สปส1-10_{month}.pdf"},
		},
	}
}

func expected(s string) decimal.NullDecimal {
	return decimal.NullDecimal{Decimal: decimal.RequireFromString(s), Valid: true}
}
