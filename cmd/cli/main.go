package main

import (
	"context"
	"fmt"
	"os"
	"regexp"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/iho/tbrecon/internal/adapter/excel"
	"github.com/iho/tbrecon/internal/adapter/id"
	"github.com/iho/tbrecon/internal/adapter/pdftext"
	"github.com/iho/tbrecon/internal/adapter/repository/memory"
	"github.com/iho/tbrecon/internal/domain"
	"github.com/iho/tbrecon/internal/reftable"
	"github.com/iho/tbrecon/internal/report"
	"github.com/iho/tbrecon/internal/usecase"
)

var (
	pdfPath   string
	company   string
	month     string
	outPath   string
	tablePath string
	sheetPath string
	staffName string
	verbose   bool
)

var monthRe = regexp.MustCompile(`^\d{6}$`)

func main() {
	rootCmd := &cobra.Command{
		Use:   "tbrecon",
		Short: "Trial balance reconciliation tool",
		Long:  `Reconciles a trial balance PDF against a reference table and writes a styled result workbook.`,
	}

	runCmd := &cobra.Command{
		Use:   "run",
		Short: "Run a reconciliation against a local TB PDF",
		Run: func(cmd *cobra.Command, args []string) {
			runReconciliation()
		},
	}

	runCmd.Flags().StringVar(&pdfPath, "pdf", "", "Path to the trial balance PDF (required)")
	runCmd.Flags().StringVar(&company, "company", "", "Company name (required)")
	runCmd.Flags().StringVar(&month, "month", "", "Accounting month as YYYYMM (required)")
	runCmd.Flags().StringVar(&outPath, "out", "", "Path for the result workbook (default result_<company>_<month>.xlsx)")
	runCmd.Flags().StringVar(&tablePath, "table", "", "Reference table YAML profile (default: built-in table)")
	runCmd.Flags().StringVar(&sheetPath, "sheet", "", "Local staff reference sheet (xlsx)")
	runCmd.Flags().StringVar(&staffName, "staff", "", "Staff name override (skips the sheet lookup)")
	runCmd.Flags().BoolVar(&verbose, "verbose", false, "Enable debug logging")
	runCmd.MarkFlagRequired("pdf")
	runCmd.MarkFlagRequired("company")
	runCmd.MarkFlagRequired("month")

	rootCmd.AddCommand(runCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func runReconciliation() {
	if !monthRe.MatchString(month) {
		fmt.Fprintf(os.Stderr, "invalid month %q: expected YYYYMM, e.g. 202504\n", month)
		os.Exit(1)
	}
	if staffName == "" && sheetPath == "" {
		fmt.Fprintln(os.Stderr, "either --staff or --sheet is required")
		os.Exit(1)
	}

	level := zerolog.WarnLevel
	if verbose {
		level = zerolog.DebugLevel
	}
	logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339}).
		Level(level).
		With().
		Timestamp().
		Logger()

	table := reftable.Default()
	if tablePath != "" {
		var err error
		table, err = reftable.LoadFile(tablePath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "failed to load reference table: %v\n", err)
			os.Exit(1)
		}
	}

	doc, err := os.Open(pdfPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to open PDF: %v\n", err)
		os.Exit(1)
	}
	defer doc.Close()

	sheets := usecase.NewSheetSource(&fileFetcher{path: sheetPath}, memory.NewCache(), 0, logger)
	uc := usecase.NewReconcileUseCase(
		pdftext.NewExtractor(),
		sheets,
		excel.NewStaffDirectory(),
		table,
		id.NewULIDGenerator(),
		logger,
	)

	rep, err := uc.Run(context.Background(), usecase.ReconcileInput{
		Company:       company,
		Month:         month,
		Document:      doc,
		StaffOverride: staffName,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "reconciliation failed: %v\n", err)
		os.Exit(1)
	}

	printSummary(rep)

	out := outPath
	if out == "" {
		out = fmt.Sprintf("result_%s_%s.xlsx", rep.Company, rep.Month)
	}
	data, err := excel.NewRenderer().Render(report.Build(rep))
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to render workbook: %v\n", err)
		os.Exit(1)
	}
	if err := os.WriteFile(out, data, 0o644); err != nil {
		fmt.Fprintf(os.Stderr, "failed to write workbook: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Wrote %s\n", out)
}

func printSummary(rep *domain.Report) {
	fmt.Printf("Run %s: %s / %s (staff: %s)\n", rep.ID, rep.Company, rep.Month, rep.StaffName)
	for _, w := range rep.Warnings {
		fmt.Printf("  warning: %s\n", w)
	}

	matches, mismatches := 0, 0
	for _, row := range rep.Rows {
		amount := ""
		if row.LedgerAmount.Valid {
			amount = report.FormatAmount(row.LedgerAmount.Decimal)
		}
		fmt.Printf("  %-28s %-10s %16s  %s\n", row.Name, row.TBCode, amount, row.Verdict)

		switch row.Verdict {
		case domain.VerdictMatch:
			matches++
		case domain.VerdictMismatch:
			mismatches++
		}
	}
	fmt.Printf("%d rows: %d match, %d mismatch\n", len(rep.Rows), matches, mismatches)
}

// fileFetcher reads the staff reference sheet from a local path. The month
// argument is ignored; the CLI points at one sheet per run.
type fileFetcher struct {
	path string
}

func (f *fileFetcher) Fetch(ctx context.Context, month string) ([]byte, error) {
	if f.path == "" {
		return nil, fmt.Errorf("%w: no sheet path configured", domain.ErrSheetUnavailable)
	}
	data, err := os.ReadFile(f.path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrSheetUnavailable, err)
	}
	return data, nil
}
