package domain

import "time"

// Report is the complete result of one reconciliation run. It is built
// fresh per run and discarded after the workbook is emitted.
type Report struct {
	ID        string
	Company   string
	Month     string
	StaffName string
	Rows      []ReconciliationRow
	Warnings  []string
	CheckedAt time.Time
}
