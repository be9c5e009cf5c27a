// Package tbparse extracts structured trial-balance records from the plain
// text of a TB document. The document text is treated as newline-delimited
// lines; lines that do not look like ledger lines (headers, page breaks,
// totals) are skipped without error.
package tbparse

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/iho/tbrecon/internal/domain"
)

// A ledger line starts with a 4-digit/2-digit account code (separator "-"
// or "*"), an account label, and exactly six thousands-separated decimal
// fields with two fraction digits: opening debit/credit, period
// debit/credit, balance debit/credit.
var lineRe = regexp.MustCompile(
	`^(\d{4}[-*]\d{2})\s+.+?` +
		`([\d,]+\.\d{2})\s+([\d,]+\.\d{2})\s+([\d,]+\.\d{2})\s+` +
		`([\d,]+\.\d{2})\s+([\d,]+\.\d{2})\s+([\d,]+\.\d{2})\s*$`,
)

// Warning records a line that matched the ledger grammar but could not be
// converted. The line is skipped and parsing continues.
type Warning struct {
	LineNo int
	Line   string
	Err    error
}

func (w Warning) String() string {
	return fmt.Sprintf("line %d: %v", w.LineNo, w.Err)
}

// Result holds the ordered records of one parse pass together with any
// recoverable warnings.
type Result struct {
	Records  []domain.LedgerRecord
	Warnings []Warning
}

// Parse scans the extracted TB text and returns one record per ledger line,
// in order of appearance. Only the balance debit and balance credit columns
// feed the amount: balance debit when positive, otherwise the negated
// balance credit. An empty record set is not an error here; the caller
// decides whether that is fatal.
func Parse(text string) Result {
	var result Result

	for i, line := range strings.Split(text, "\n") {
		m := lineRe.FindStringSubmatch(line)
		if m == nil {
			continue
		}

		code := domain.NormalizeCode(m[1])

		balanceDebit, err := parseAmount(m[6])
		if err != nil {
			result.Warnings = append(result.Warnings, Warning{LineNo: i + 1, Line: line, Err: err})
			continue
		}
		balanceCredit, err := parseAmount(m[7])
		if err != nil {
			result.Warnings = append(result.Warnings, Warning{LineNo: i + 1, Line: line, Err: err})
			continue
		}

		amount := balanceDebit
		if !balanceDebit.IsPositive() {
			amount = balanceCredit.Neg()
		}

		result.Records = append(result.Records, domain.LedgerRecord{
			Code:   code,
			Amount: amount,
		})
	}

	return result
}

func parseAmount(field string) (decimal.Decimal, error) {
	d, err := decimal.NewFromString(strings.ReplaceAll(field, ",", ""))
	if err != nil {
		return decimal.Decimal{}, fmt.Errorf("invalid amount %q: %w", field, err)
	}
	return d, nil
}
