package usecase

import (
	"context"
	"io"
	"time"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/iho/tbrecon/internal/domain"
	"github.com/iho/tbrecon/internal/tbparse"
)

// ReconcileUseCase runs one trial-balance reconciliation: extract text,
// parse ledger lines, resolve the responsible staff member, and join the
// records against the reference table.
type ReconcileUseCase struct {
	extractor TextExtractor
	sheets    *SheetSource
	staffDir  StaffDirectory
	table     *domain.ReferenceTable
	idGen     IDGenerator
	logger    zerolog.Logger
}

// NewReconcileUseCase creates a new ReconcileUseCase.
func NewReconcileUseCase(
	extractor TextExtractor,
	sheets *SheetSource,
	staffDir StaffDirectory,
	table *domain.ReferenceTable,
	idGen IDGenerator,
	logger zerolog.Logger,
) *ReconcileUseCase {
	return &ReconcileUseCase{
		extractor: extractor,
		sheets:    sheets,
		staffDir:  staffDir,
		table:     table,
		idGen:     idGen,
		logger:    logger,
	}
}

// ReconcileInput represents input for one reconciliation run.
type ReconcileInput struct {
	Company  string
	Month    string
	Document io.Reader

	// StaffOverride skips the reference-sheet lookup when set. Used by the
	// CLI for offline runs.
	StaffOverride string
}

// Run executes the reconciliation pipeline. All fatal conditions abort
// before any row is computed; per-line parse warnings are collected on the
// report and never block it.
func (uc *ReconcileUseCase) Run(ctx context.Context, input ReconcileInput) (*domain.Report, error) {
	text, err := uc.extractor.ExtractText(ctx, input.Document)
	if err != nil {
		return nil, err
	}

	parsed := tbparse.Parse(text)
	for _, w := range parsed.Warnings {
		uc.logger.Warn().
			Int("line", w.LineNo).
			Err(w.Err).
			Msg("skipped unparseable ledger line")
	}
	if len(parsed.Records) == 0 {
		// An empty TB means the extraction likely produced the wrong
		// format; reporting all rows indeterminate would hide that.
		return nil, domain.ErrNoLedgerLines
	}

	staff := input.StaffOverride
	if staff == "" {
		sheet, err := uc.sheets.Get(ctx, input.Month)
		if err != nil {
			return nil, err
		}
		staff, err = uc.staffDir.LookupStaff(sheet, input.Company)
		if err != nil {
			return nil, err
		}
	}

	// First occurrence per code wins; later duplicate lines are ignored.
	// TODO: surface duplicate codes as warnings once the TB layouts that
	// legitimately repeat codes are catalogued.
	index := domain.IndexByCode(parsed.Records)

	entries := uc.table.Resolve(input.Company, input.Month)
	rows := make([]domain.ReconciliationRow, 0, len(entries))
	for _, e := range entries {
		var ledger decimal.NullDecimal
		if rec, ok := index[e.TBCode]; ok {
			ledger = decimal.NullDecimal{Decimal: rec.Amount, Valid: true}
		}

		rows = append(rows, domain.ReconciliationRow{
			Name:         e.Name,
			SourceFile:   e.SourceFile,
			TBCode:       e.TBCode,
			LedgerAmount: ledger,
			Expected:     e.Expected,
			Verdict:      domain.Judge(ledger, e.Expected),
			StaffName:    staff,
		})
	}

	warnings := make([]string, 0, len(parsed.Warnings))
	for _, w := range parsed.Warnings {
		warnings = append(warnings, w.String())
	}

	return &domain.Report{
		ID:        uc.idGen.Generate(),
		Company:   input.Company,
		Month:     input.Month,
		StaffName: staff,
		Rows:      rows,
		Warnings:  warnings,
		CheckedAt: time.Now().UTC(),
	}, nil
}
