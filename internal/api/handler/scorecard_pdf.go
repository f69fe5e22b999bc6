package handler

import (
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/julienschmidt/httprouter"
	"github.com/jung-kurt/gofpdf"

	"github.com/opsvue/performance-coach-api/internal/domain"
	"github.com/opsvue/performance-coach-api/internal/scoring"
	"github.com/opsvue/performance-coach-api/internal/usecases/insighting"
	"github.com/opsvue/performance-coach-api/pkg/log"
)

// GetColleagueScorecardPDF exports one colleague's scorecard as an A4 PDF
func GetColleagueScorecardPDF(service insighting.Insighter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		id := httprouter.ParamsFromContext(r.Context()).ByName("id")

		detail, err := service.ColleagueByID(id)
		if err != nil {
			logger.WithFields(log.Fields{
				"colleague_id": id,
				"error":        err.Error(),
			}).Warn("scorecard: failed to build colleague detail for export")

			handleInsightError(w, err)
			return
		}

		pdf := buildScorecardPDF(detail)

		w.Header().Set("Content-Type", "application/pdf")
		w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=scorecard-%s.pdf", id))

		if err := pdf.Output(w); err != nil {
			logger.WithFields(log.Fields{
				"colleague_id": id,
				"error":        err.Error(),
			}).Error("scorecard: failed to write PDF")
			return
		}

		logger.WithField("colleague_id", id).Info("scorecard: PDF exported")
	})
}

func buildScorecardPDF(detail *domain.ColleagueDetail) *gofpdf.Fpdf {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 16)
	pdf.Cell(0, 10, "Performance Scorecard")
	pdf.Ln(12)

	pdf.SetFont("Helvetica", "", 11)
	pdf.Cell(0, 7, fmt.Sprintf("Colleague: %s (%s)", detail.Colleague.Name, detail.Colleague.ID))
	pdf.Ln(6)
	pdf.Cell(0, 7, fmt.Sprintf("Team: %s", detail.Colleague.Team))
	pdf.Ln(6)
	pdf.Cell(0, 7, fmt.Sprintf("Tenure: %d months (%s)", detail.Colleague.TenureMonths, detail.Colleague.TenureBand))
	pdf.Ln(6)
	pdf.Cell(0, 7, fmt.Sprintf("Month: %s", detail.Month))
	pdf.Ln(10)

	pdf.SetFont("Helvetica", "B", 12)
	pdf.Cell(0, 8, fmt.Sprintf("Performance Score: %.1f/100 (%s)", detail.Score.Overall, detail.PerformanceStatus))
	pdf.Ln(7)
	pdf.SetFont("Helvetica", "", 11)
	pdf.Cell(0, 7, fmt.Sprintf("Coaching Priority: %s", detail.CoachingPriority))
	pdf.Ln(10)

	pdf.SetFont("Helvetica", "B", 10)
	pdf.SetFillColor(243, 244, 246)
	pdf.CellFormat(60, 8, "Metric", "1", 0, "L", true, 0, "")
	pdf.CellFormat(35, 8, "Actual", "1", 0, "R", true, 0, "")
	pdf.CellFormat(35, 8, "Target", "1", 0, "R", true, 0, "")
	pdf.CellFormat(30, 8, "RAG", "1", 1, "C", true, 0, "")

	pdf.SetFont("Helvetica", "", 10)
	for _, entry := range detail.Scorecard {
		red, green, blue := ragRGB(entry.RAG)

		pdf.CellFormat(60, 8, entry.Label, "1", 0, "L", false, 0, "")
		pdf.CellFormat(35, 8, formatScorecardValue(entry.Actual, entry.Unit), "1", 0, "R", false, 0, "")
		pdf.CellFormat(35, 8, formatScorecardValue(entry.Target, entry.Unit), "1", 0, "R", false, 0, "")

		pdf.SetTextColor(red, green, blue)
		pdf.CellFormat(30, 8, entry.RAG, "1", 1, "C", false, 0, "")
		pdf.SetTextColor(0, 0, 0)
	}
	pdf.Ln(6)

	if len(detail.RiskFlags) > 0 {
		pdf.SetFont("Helvetica", "B", 11)
		pdf.Cell(0, 7, "Risk Flags")
		pdf.Ln(7)
		pdf.SetFont("Helvetica", "", 10)
		for _, flag := range detail.RiskFlags {
			pdf.Cell(0, 6, fmt.Sprintf("- %s", flag))
			pdf.Ln(6)
		}
		pdf.Ln(4)
	}

	pdf.SetFont("Helvetica", "I", 8)
	pdf.Cell(0, 6, fmt.Sprintf("Generated %s", time.Now().UTC().Format("2006-01-02 15:04 UTC")))

	return pdf
}

func formatScorecardValue(value float64, unit string) string {
	switch unit {
	case "%":
		return fmt.Sprintf("%.1f%%", value)
	case "min":
		return fmt.Sprintf("%.1f min", value)
	default:
		return strings.TrimRight(strings.TrimRight(fmt.Sprintf("%.1f", value), "0"), ".")
	}
}

func ragRGB(rag string) (int, int, int) {
	switch rag {
	case scoring.RAGGreen:
		return 16, 185, 129
	case scoring.RAGAmber:
		return 245, 158, 11
	case scoring.RAGRed:
		return 239, 68, 68
	default:
		return 107, 114, 128
	}
}
