package domain

import (
	"strings"

	"github.com/shopspring/decimal"
)

// ReferenceEntry maps a semantic reconciliation line to its ledger code and
// the externally collected "actual" amount. Expected is invalid when no
// actual value was collected for the line. SourceFile is a label template
// used purely for report annotation; "{company}" and "{month}" placeholders
// are expanded per run.
type ReferenceEntry struct {
	Name       string
	TBCode     string
	Expected   decimal.NullDecimal
	SourceFile string
}

// ReferenceTable is the ordered set of reference entries for one company
// profile. Order is declaration order and is preserved all the way to the
// rendered report. Several entries may share one ledger code.
type ReferenceTable struct {
	Entries []ReferenceEntry
}

// Resolve expands the source-file label templates for a concrete run and
// returns the entries in table order.
func (t *ReferenceTable) Resolve(company, month string) []ReferenceEntry {
	replacer := strings.NewReplacer(
		"{company}", strings.ToLower(company),
		"{month}", month,
	)

	entries := make([]ReferenceEntry, len(t.Entries))
	for i, e := range t.Entries {
		e.SourceFile = replacer.Replace(e.SourceFile)
		entries[i] = e
	}
	return entries
}
