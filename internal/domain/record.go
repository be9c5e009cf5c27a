package domain

import (
	"strings"

	"github.com/shopspring/decimal"
)

// LedgerRecord is a single trial-balance line extracted from the TB document.
// Amount carries the sign convention of the source report: positive when the
// balance-debit column is nonzero, otherwise the negated balance-credit.
type LedgerRecord struct {
	Code   string
	Amount decimal.Decimal
}

// NormalizeCode canonicalizes a ledger account code. Some TB layouts print
// the code as "1112*01" instead of "1112-01".
func NormalizeCode(code string) string {
	return strings.ReplaceAll(code, "*", "-")
}

// IndexByCode builds a lookup from ledger code to the first record carrying
// that code. Document order determines precedence: later duplicates are
// ignored.
func IndexByCode(records []LedgerRecord) map[string]LedgerRecord {
	index := make(map[string]LedgerRecord, len(records))
	for _, rec := range records {
		if _, ok := index[rec.Code]; !ok {
			index[rec.Code] = rec
		}
	}
	return index
}
