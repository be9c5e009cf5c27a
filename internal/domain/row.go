package domain

import (
	"github.com/shopspring/decimal"
)

// Verdict classifies one reconciliation line.
type Verdict int

const (
	// VerdictIndeterminate means the ledger or expected amount is missing.
	VerdictIndeterminate Verdict = iota
	// VerdictMatch means both amounts agree within Tolerance.
	VerdictMatch
	// VerdictMismatch means both amounts are present but disagree.
	VerdictMismatch
)

// Report literals carried verbatim from the reviewed workbook layout.
const (
	verdictMatchText    = "Match> Correct"
	verdictMismatchText = "Mismatch Wrong"
)

// String returns the report text for the verdict. Indeterminate renders as
// an empty cell.
func (v Verdict) String() string {
	switch v {
	case VerdictMatch:
		return verdictMatchText
	case VerdictMismatch:
		return verdictMismatchText
	default:
		return ""
	}
}

// Tolerance is the maximum absolute difference for two amounts to count as
// equal. The comparison is boundary-exclusive: a difference of exactly 0.01
// is a mismatch.
var Tolerance = decimal.New(1, -2)

// Judge compares a ledger amount against an expected amount. Sign is
// deliberately ignored: TB credit balances are stored negative while the
// externally collected actuals are unsigned.
func Judge(ledger, expected decimal.NullDecimal) Verdict {
	if !ledger.Valid || !expected.Valid {
		return VerdictIndeterminate
	}
	diff := ledger.Decimal.Abs().Sub(expected.Decimal.Abs()).Abs()
	if diff.LessThan(Tolerance) {
		return VerdictMatch
	}
	return VerdictMismatch
}

// ReconciliationRow is the outcome for one reference entry. Exactly one row
// exists per entry, in table order, whether or not a ledger record matched.
// Rows are immutable after construction.
type ReconciliationRow struct {
	Name         string
	SourceFile   string
	TBCode       string
	LedgerAmount decimal.NullDecimal
	Expected     decimal.NullDecimal
	Verdict      Verdict
	StaffName    string
}
