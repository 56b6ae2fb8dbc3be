package handlers

import (
	"errors"
	"fmt"
	"log"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/yourorg/liftpro/internal/cache"
	"github.com/yourorg/liftpro/internal/models"
	"github.com/yourorg/liftpro/internal/report"
	"github.com/yourorg/liftpro/internal/validation"
)

// ReportHandler genera y sirve los informes PDF (sólo cuentas pro).
type ReportHandler struct {
	renderer *report.Renderer
}

// NewReportHandler crea el handler de informes.
func NewReportHandler(renderer *report.Renderer) *ReportHandler {
	return &ReportHandler{renderer: renderer}
}

type cachedReport struct {
	PDF      []byte
	Filename string
}

// CreateReport handles POST /api/reports.
//
// Ejecuta el análisis, arma el HTML del informe con los encabezados del
// proyecto y lo imprime a PDF con Chrome headless. Devuelve un report_id
// para descargarlo; el PDF queda en caché, nunca en disco ni en DB.
func (h *ReportHandler) CreateReport(c *fiber.Ctx) error {
	var req models.ReportAPIRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse{Error: "invalid json"})
	}

	result, err := runAnalysis(models.AnalysisAPIRequest{
		AnalysisRequest: req.Analysis,
		BuildingType:    req.BuildingType,
	})
	if err != nil {
		var perr *validation.ParameterError
		if errors.As(err, &perr) {
			return c.Status(fiber.StatusUnprocessableEntity).JSON(models.ErrorResponse{Error: perr.Error()})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(models.ErrorResponse{Error: "analysis failed"})
	}
	if result.Metrics.IsZero() {
		return c.Status(fiber.StatusUnprocessableEntity).JSON(models.ErrorResponse{
			Error: "degenerate inputs produce an empty analysis; nothing to report",
		})
	}

	html, err := report.BuildHTML(req.Meta, result, req.BuildingType)
	if err != nil {
		log.Printf("❌ [REPORT] Error armando HTML: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(models.ErrorResponse{Error: "failed to build report"})
	}

	pdf, err := h.renderer.RenderPDF(c.Context(), html)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(models.ErrorResponse{Error: "failed to render pdf"})
	}

	reportID := uuid.New().String()
	filename := reportFilename(req.Meta.JobNumber)
	if cache.ReportCache != nil {
		cache.ReportCache.Set("report:"+reportID, cachedReport{PDF: pdf, Filename: filename})
	}

	log.Printf("📥 [REPORT] Informe %s listo (%d KB)", reportID, len(pdf)/1024)
	return c.Status(fiber.StatusCreated).JSON(models.ReportCreatedResponse{
		ReportID: reportID,
		Filename: filename,
		SizeKB:   len(pdf) / 1024,
	})
}

// DownloadReport handles GET /api/reports/:id.
func (h *ReportHandler) DownloadReport(c *fiber.Ctx) error {
	reportID := strings.TrimSpace(c.Params("id"))
	if reportID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse{Error: "report id required"})
	}

	if cache.ReportCache == nil {
		return c.Status(fiber.StatusNotFound).JSON(models.ErrorResponse{Error: "report expired or not found"})
	}
	cached, found := cache.ReportCache.Get("report:" + reportID)
	if !found {
		return c.Status(fiber.StatusNotFound).JSON(models.ErrorResponse{Error: "report expired or not found"})
	}
	rep, ok := cached.(cachedReport)
	if !ok {
		return c.Status(fiber.StatusInternalServerError).JSON(models.ErrorResponse{Error: "corrupt cached report"})
	}

	c.Set("Content-Type", "application/pdf")
	c.Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", rep.Filename))
	return c.Send(rep.PDF)
}

func reportFilename(jobNumber string) string {
	jobNumber = strings.TrimSpace(jobNumber)
	if jobNumber == "" {
		return "LTA_Report.pdf"
	}
	// El número de trabajo viene de un campo libre del formulario
	jobNumber = strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '-', r == '_':
			return r
		default:
			return '_'
		}
	}, jobNumber)
	return jobNumber + "_LTA.pdf"
}
