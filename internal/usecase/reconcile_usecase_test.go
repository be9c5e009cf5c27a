package usecase_test

import (
	"context"
	"errors"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/iho/tbrecon/internal/domain"
	"github.com/iho/tbrecon/internal/usecase"
	"github.com/iho/tbrecon/internal/usecase/mocks"
)

const tbText = "HERCULES CO., LTD.\n" +
	"Trial Balance as of 30 April 2025\n" +
	"1112-01 Cash at bank 0.00 0.00 0.00 0.00 5,331,520.94 0.00\n" +
	"2132-01 Withholding tax PND1 0.00 0.00 0.00 0.00 0.00 1,000.00\n" +
	"2132-02 Withholding tax PND3/53 0.00 0.00 0.00 0.00 0.00 165.00\n" +
	"2137-00 VAT payable 0.00 0.00 0.00 0.00 0.00 44,145.07\n"

func testTable() *domain.ReferenceTable {
	exp := func(s string) decimal.NullDecimal {
		return decimal.NullDecimal{Decimal: decimal.RequireFromString(s), Valid: true}
	}
	return &domain.ReferenceTable{
		Entries: []domain.ReferenceEntry{
			{Name: "Bank1 amt", TBCode: "1112-01", Expected: exp("5331520.94"), SourceFile: "bank1_{company}_{month}.pdf"},
			{Name: "Bank2 amt", TBCode: "1113-01", SourceFile: "bank2_{company}_{month}.pdf"},
			{Name: "PND1 amt", TBCode: "2132-01", Expected: exp("1000.00"), SourceFile: "0.PND1_{month}.pdf"},
			{Name: "PND3 amt", TBCode: "2132-02", Expected: exp("165.00"), SourceFile: "1.PND3_{month}.pdf"},
			{Name: "PND53 amt", TBCode: "2132-02", Expected: exp("540.00"), SourceFile: "2.PND53_{month}.pdf"},
			{Name: "PP30 amt", TBCode: "2137-00", Expected: exp("44145.07"), SourceFile: "pp30_{month}.pdf"},
		},
	}
}

func newUseCase(
	extractor *mocks.MockTextExtractor,
	fetcher *mocks.MockSheetFetcher,
	staffDir *mocks.MockStaffDirectory,
	table *domain.ReferenceTable,
) *usecase.ReconcileUseCase {
	sheets := usecase.NewSheetSource(fetcher, mocks.NewMockCache(), time.Hour, zerolog.Nop())
	return usecase.NewReconcileUseCase(extractor, sheets, staffDir, table, mocks.NewMockIDGenerator(), zerolog.Nop())
}

func TestReconcileUseCase_Run(t *testing.T) {
	uc := newUseCase(mocks.NewMockTextExtractor(), mocks.NewMockSheetFetcher(), mocks.NewMockStaffDirectory(), testTable())

	report, err := uc.Run(context.Background(), usecase.ReconcileInput{
		Company:  "HERCULES",
		Month:    "202504",
		Document: strings.NewReader(tbText),
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(report.Rows) != 6 {
		t.Fatalf("expected one row per reference entry, got %d", len(report.Rows))
	}

	// Rows come out in table order, not code order.
	wantNames := []string{"Bank1 amt", "Bank2 amt", "PND1 amt", "PND3 amt", "PND53 amt", "PP30 amt"}
	for i, want := range wantNames {
		if report.Rows[i].Name != want {
			t.Errorf("row %d: name = %q, want %q", i, report.Rows[i].Name, want)
		}
	}

	for _, row := range report.Rows {
		if row.StaffName != "tip" {
			t.Errorf("row %q: staff = %q, want %q", row.Name, row.StaffName, "tip")
		}
	}

	tests := map[string]domain.Verdict{
		"Bank1 amt": domain.VerdictMatch,
		"Bank2 amt": domain.VerdictIndeterminate, // no ledger record, no expected
		"PND1 amt":  domain.VerdictMatch,
		"PND3 amt":  domain.VerdictMatch,
		"PND53 amt": domain.VerdictMismatch, // shares 2132-02 with PND3, first record wins
		"PP30 amt":  domain.VerdictMatch,
	}
	for _, row := range report.Rows {
		if row.Verdict != tests[row.Name] {
			t.Errorf("row %q: verdict = %v, want %v", row.Name, row.Verdict, tests[row.Name])
		}
	}

	// Both 2132-02 rows resolved against the same first record.
	var pnd3, pnd53 domain.ReconciliationRow
	for _, row := range report.Rows {
		switch row.Name {
		case "PND3 amt":
			pnd3 = row
		case "PND53 amt":
			pnd53 = row
		}
	}
	if !pnd3.LedgerAmount.Decimal.Equal(pnd53.LedgerAmount.Decimal) {
		t.Errorf("shared-code rows resolved to different ledger amounts: %s vs %s",
			pnd3.LedgerAmount.Decimal, pnd53.LedgerAmount.Decimal)
	}

	if report.Rows[0].SourceFile != "bank1_hercules_202504.pdf" {
		t.Errorf("source file = %q", report.Rows[0].SourceFile)
	}
	if report.ID == "" {
		t.Error("expected run ID")
	}
}

func TestReconcileUseCase_Run_Mismatch(t *testing.T) {
	staffDir := mocks.NewMockStaffDirectory()
	uc := newUseCase(mocks.NewMockTextExtractor(), mocks.NewMockSheetFetcher(), staffDir, testTable())

	text := "2132-01 Withholding tax PND1 0.00 0.00 0.00 0.00 0.00 1,200.00\n"
	report, err := uc.Run(context.Background(), usecase.ReconcileInput{
		Company:  "HERCULES",
		Month:    "202504",
		Document: strings.NewReader(text),
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	for _, row := range report.Rows {
		if row.Name == "PND1 amt" && row.Verdict != domain.VerdictMismatch {
			t.Errorf("PND1 verdict = %v, want mismatch", row.Verdict)
		}
	}
}

func TestReconcileUseCase_Run_Errors(t *testing.T) {
	tests := []struct {
		name      string
		extractor func() *mocks.MockTextExtractor
		fetcher   func() *mocks.MockSheetFetcher
		staffDir  func() *mocks.MockStaffDirectory
		document  io.Reader
		wantErr   error
	}{
		{
			name: "extraction failure is fatal",
			extractor: func() *mocks.MockTextExtractor {
				m := mocks.NewMockTextExtractor()
				m.ExtractTextFunc = func(ctx context.Context, r io.Reader) (string, error) {
					return "", domain.ErrExtractionFailure
				}
				return m
			},
			document: strings.NewReader(""),
			wantErr:  domain.ErrExtractionFailure,
		},
		{
			name:     "no ledger lines is fatal",
			document: strings.NewReader("just a header page\nno ledger lines here\n"),
			wantErr:  domain.ErrNoLedgerLines,
		},
		{
			name: "sheet download failure is fatal",
			fetcher: func() *mocks.MockSheetFetcher {
				m := mocks.NewMockSheetFetcher()
				m.FetchFunc = func(ctx context.Context, month string) ([]byte, error) {
					return nil, domain.ErrSheetUnavailable
				}
				return m
			},
			document: strings.NewReader(tbText),
			wantErr:  domain.ErrSheetUnavailable,
		},
		{
			name: "unknown company is fatal",
			staffDir: func() *mocks.MockStaffDirectory {
				m := mocks.NewMockStaffDirectory()
				m.LookupStaffFunc = func(sheet []byte, company string) (string, error) {
					return "", domain.ErrStaffNotFound
				}
				return m
			},
			document: strings.NewReader(tbText),
			wantErr:  domain.ErrStaffNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			extractor := mocks.NewMockTextExtractor()
			if tt.extractor != nil {
				extractor = tt.extractor()
			}
			fetcher := mocks.NewMockSheetFetcher()
			if tt.fetcher != nil {
				fetcher = tt.fetcher()
			}
			staffDir := mocks.NewMockStaffDirectory()
			if tt.staffDir != nil {
				staffDir = tt.staffDir()
			}

			uc := newUseCase(extractor, fetcher, staffDir, testTable())
			report, err := uc.Run(context.Background(), usecase.ReconcileInput{
				Company:  "HERCULES",
				Month:    "202504",
				Document: tt.document,
			})

			if !errors.Is(err, tt.wantErr) {
				t.Errorf("error = %v, want %v", err, tt.wantErr)
			}
			if report != nil {
				t.Error("no report should be produced on a fatal error")
			}
		})
	}
}

func TestReconcileUseCase_Run_StaffOverrideSkipsLookup(t *testing.T) {
	fetcher := mocks.NewMockSheetFetcher()
	staffDir := mocks.NewMockStaffDirectory()
	staffDir.LookupStaffFunc = func(sheet []byte, company string) (string, error) {
		t.Fatal("staff lookup should not run when an override is set")
		return "", nil
	}

	uc := newUseCase(mocks.NewMockTextExtractor(), fetcher, staffDir, testTable())
	report, err := uc.Run(context.Background(), usecase.ReconcileInput{
		Company:       "HERCULES",
		Month:         "202504",
		Document:      strings.NewReader(tbText),
		StaffOverride: "somchai",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if fetcher.Fetches() != 0 {
		t.Errorf("sheet fetched %d times despite override", fetcher.Fetches())
	}
	if report.StaffName != "somchai" {
		t.Errorf("staff = %q", report.StaffName)
	}
}

func TestReconcileUseCase_Run_CleanRunHasNoWarnings(t *testing.T) {
	uc := newUseCase(mocks.NewMockTextExtractor(), mocks.NewMockSheetFetcher(), mocks.NewMockStaffDirectory(), testTable())

	report, err := uc.Run(context.Background(), usecase.ReconcileInput{
		Company:  "HERCULES",
		Month:    "202504",
		Document: strings.NewReader(tbText),
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(report.Warnings) != 0 {
		t.Errorf("unexpected warnings: %v", report.Warnings)
	}
}
