package handler

import (
	"context"
	"fmt"
	"net/http"
	"regexp"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/iho/tbrecon/internal/adapter/http/dto"
	"github.com/iho/tbrecon/internal/domain"
	"github.com/iho/tbrecon/internal/infrastructure/metrics"
	"github.com/iho/tbrecon/internal/report"
	"github.com/iho/tbrecon/internal/usecase"
)

// maxUploadSize bounds the multipart form held in memory.
const maxUploadSize = 32 << 20

var monthRe = regexp.MustCompile(`^\d{6}$`)

// ReconcileService defines the behavior needed by ReconcileHandler.
type ReconcileService interface {
	Run(ctx context.Context, input usecase.ReconcileInput) (*domain.Report, error)
}

// Renderer turns a presentation table into workbook bytes.
type Renderer interface {
	Render(table *report.Table) ([]byte, error)
}

// ReconcileHandler handles reconciliation HTTP requests.
type ReconcileHandler struct {
	reconcileUC ReconcileService
	renderer    Renderer
	metrics     *metrics.Metrics
	logger      zerolog.Logger
}

// NewReconcileHandler creates a new ReconcileHandler.
func NewReconcileHandler(reconcileUC ReconcileService, renderer Renderer, m *metrics.Metrics, logger zerolog.Logger) *ReconcileHandler {
	return &ReconcileHandler{
		reconcileUC: reconcileUC,
		renderer:    renderer,
		metrics:     m,
		logger:      logger,
	}
}

// Create runs a reconciliation for an uploaded TB document. The multipart
// form carries "company", "month" (YYYYMM) and the file field "tb".
// With ?format=xlsx the response is the styled workbook; JSON otherwise.
func (h *ReconcileHandler) Create(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	if err := r.ParseMultipartForm(maxUploadSize); err != nil {
		writeError(w, http.StatusBadRequest, "invalid multipart form", err.Error())
		return
	}

	company := strings.TrimSpace(r.FormValue("company"))
	if company == "" {
		writeError(w, http.StatusBadRequest, "missing company", "")
		return
	}

	month := strings.TrimSpace(r.FormValue("month"))
	if !monthRe.MatchString(month) {
		writeError(w, http.StatusBadRequest, "invalid month", "expected YYYYMM, e.g. 202504")
		return
	}

	file, _, err := r.FormFile("tb")
	if err != nil {
		writeError(w, http.StatusBadRequest, "missing TB document", err.Error())
		return
	}
	defer file.Close()

	rep, err := h.reconcileUC.Run(r.Context(), usecase.ReconcileInput{
		Company:  company,
		Month:    month,
		Document: file,
	})
	if err != nil {
		h.metrics.RunsTotal.WithLabelValues("error").Inc()
		status := mapDomainError(err)
		writeError(w, status, "reconciliation failed", err.Error())
		return
	}

	h.observe(rep, start)

	if r.URL.Query().Get("format") == "xlsx" {
		h.writeWorkbook(w, rep)
		return
	}

	writeJSON(w, http.StatusOK, dto.ReportFromDomain(rep))
}

func (h *ReconcileHandler) observe(rep *domain.Report, start time.Time) {
	h.metrics.RunsTotal.WithLabelValues("ok").Inc()
	h.metrics.RunDuration.Observe(time.Since(start).Seconds())
	h.metrics.ParseWarnings.Add(float64(len(rep.Warnings)))
	for _, row := range rep.Rows {
		h.metrics.RowsByVerdict.WithLabelValues(verdictLabel(row.Verdict)).Inc()
	}

	h.logger.Info().
		Str("run_id", rep.ID).
		Str("company", rep.Company).
		Str("month", rep.Month).
		Int("rows", len(rep.Rows)).
		Int("warnings", len(rep.Warnings)).
		Msg("reconciliation completed")
}

func (h *ReconcileHandler) writeWorkbook(w http.ResponseWriter, rep *domain.Report) {
	data, err := h.renderer.Render(report.Build(rep))
	if err != nil {
		h.logger.Error().Err(err).Str("run_id", rep.ID).Msg("workbook rendering failed")
		writeError(w, http.StatusInternalServerError, "failed to render workbook", err.Error())
		return
	}

	filename := fmt.Sprintf("result_%s_%s.xlsx", strings.ToLower(rep.Company), rep.Month)
	w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	w.WriteHeader(http.StatusOK)
	w.Write(data)
}

func verdictLabel(v domain.Verdict) string {
	switch v {
	case domain.VerdictMatch:
		return "match"
	case domain.VerdictMismatch:
		return "mismatch"
	default:
		return "indeterminate"
	}
}
