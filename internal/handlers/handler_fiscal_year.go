package handlers

import (
	"errors"
	"io"
	"log/slog"
	"net/http"

	portssvc "github.com/SscSPs/kidsclub_backend/internal/core/ports/services"
	"github.com/SscSPs/kidsclub_backend/internal/dto"
	"github.com/SscSPs/kidsclub_backend/internal/middleware"
	"github.com/gin-gonic/gin"
)

// fiscalYearHandler serves the fiscal year lifecycle and the sequence gap tools of a year.
type fiscalYearHandler struct {
	fiscalService    portssvc.FiscalYearSvcFacade
	integrityService portssvc.IntegritySvcFacade
}

func newFiscalYearHandler(fs portssvc.FiscalYearSvcFacade, is portssvc.IntegritySvcFacade) *fiscalYearHandler {
	return &fiscalYearHandler{fiscalService: fs, integrityService: is}
}

func registerFiscalYearRoutes(rg *gin.RouterGroup, fiscalService portssvc.FiscalYearSvcFacade, integrityService portssvc.IntegritySvcFacade) {
	h := newFiscalYearHandler(fiscalService, integrityService)

	years := rg.Group("/fiscal-years")
	{
		years.GET("", h.listYears)
		years.GET("/:year", h.getYear)
		years.POST("/:year/close", h.closeYear)
		years.POST("/:year/reopen", h.reopenYear)

		gaps := years.Group("/:year/gaps")
		{
			gaps.GET("", h.auditGaps)
			gaps.GET("/:seq/draft", h.prepareManualFill)
			gaps.POST("/:seq/fill", h.fillGap)
			gaps.POST("/:seq/renumber", h.cascadeRenumber)
			gaps.POST("/:seq/void", h.voidPlaceholder)
		}
	}
}

// listYears godoc
// @Summary List recorded fiscal years
// @Tags fiscal-years
// @Produce  json
// @Success 200 {object} dto.ListFiscalYearsResponse
// @Security BearerAuth
// @Router /fiscal-years [get]
func (h *fiscalYearHandler) listYears(c *gin.Context) {
	years, err := h.fiscalService.ListYears(c.Request.Context())
	if err != nil {
		respondError(c, err, "Failed to list fiscal years")
		return
	}
	c.JSON(http.StatusOK, dto.ListFiscalYearsResponse{FiscalYears: years})
}

// getYear godoc
// @Summary Get a fiscal year
// @Description Years without a record are reported as OPEN
// @Tags fiscal-years
// @Produce  json
// @Param   year path int true "Fiscal year"
// @Success 200 {object} domain.FiscalYear
// @Security BearerAuth
// @Router /fiscal-years/{year} [get]
func (h *fiscalYearHandler) getYear(c *gin.Context) {
	year, ok := intParam(c, "year")
	if !ok {
		return
	}
	fy, err := h.fiscalService.GetFiscalYear(c.Request.Context(), year)
	if err != nil {
		respondError(c, err, "Failed to retrieve fiscal year")
		return
	}
	c.JSON(http.StatusOK, fy)
}

// closeYear godoc
// @Summary Close a fiscal year
// @Description Locks the year. Without a snapshot in the body one is computed from the year's transactions.
// @Tags fiscal-years
// @Accept  json
// @Produce  json
// @Param   year path int true "Fiscal year"
// @Param   body body dto.CloseFiscalYearRequest false "Optional closing snapshot"
// @Success 200 {object} domain.FiscalYear
// @Failure 409 {object} map[string]string "Invoice sequence has gaps"
// @Security BearerAuth
// @Router /fiscal-years/{year}/close [post]
func (h *fiscalYearHandler) closeYear(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	year, ok := intParam(c, "year")
	if !ok {
		return
	}

	// The body is optional.
	var req dto.CloseFiscalYearRequest
	if c.Request.Body != nil && c.Request.Body != http.NoBody {
		if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
			logger.Warn("Failed to bind JSON for CloseYear", slog.String("error", err.Error()))
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
			return
		}
	}

	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	fy, err := h.fiscalService.CloseYear(c.Request.Context(), year, req.ToDomain(), userID)
	if err != nil {
		respondError(c, err, "Failed to close fiscal year")
		return
	}

	logger.Info("Fiscal year closed", slog.Int("year", year))
	c.JSON(http.StatusOK, fy)
}

// reopenYear godoc
// @Summary Reopen a closed fiscal year
// @Tags fiscal-years
// @Produce  json
// @Param   year path int true "Fiscal year"
// @Success 200 {object} domain.FiscalYear
// @Failure 404 {object} map[string]string "Year was never closed"
// @Security BearerAuth
// @Router /fiscal-years/{year}/reopen [post]
func (h *fiscalYearHandler) reopenYear(c *gin.Context) {
	year, ok := intParam(c, "year")
	if !ok {
		return
	}
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	fy, err := h.fiscalService.ReopenYear(c.Request.Context(), year, userID)
	if err != nil {
		respondError(c, err, "Failed to reopen fiscal year")
		return
	}

	middleware.GetLoggerFromCtx(c.Request.Context()).Info("Fiscal year reopened", slog.Int("year", year))
	c.JSON(http.StatusOK, fy)
}

// auditGaps godoc
// @Summary Audit the invoice sequence of a year
// @Tags fiscal-years
// @Produce  json
// @Param   year path int true "Fiscal year"
// @Success 200 {object} domain.GapReport
// @Security BearerAuth
// @Router /fiscal-years/{year}/gaps [get]
func (h *fiscalYearHandler) auditGaps(c *gin.Context) {
	year, ok := intParam(c, "year")
	if !ok {
		return
	}
	report, err := h.integrityService.AuditYear(c.Request.Context(), year)
	if err != nil {
		respondError(c, err, "Failed to audit invoice sequence")
		return
	}
	c.JSON(http.StatusOK, report)
}

// prepareManualFill godoc
// @Summary Draft an invoice for a missing number
// @Tags fiscal-years
// @Produce  json
// @Param   year path int true "Fiscal year"
// @Param   seq path int true "Missing sequence number"
// @Success 200 {object} domain.ManualFillDraft
// @Failure 409 {object} map[string]string "Number is not missing"
// @Security BearerAuth
// @Router /fiscal-years/{year}/gaps/{seq}/draft [get]
func (h *fiscalYearHandler) prepareManualFill(c *gin.Context) {
	year, ok := intParam(c, "year")
	if !ok {
		return
	}
	seq, ok := intParam(c, "seq")
	if !ok {
		return
	}
	draft, err := h.integrityService.PrepareManualFill(c.Request.Context(), year, seq)
	if err != nil {
		respondError(c, err, "Failed to prepare manual fill")
		return
	}
	c.JSON(http.StatusOK, draft)
}

// fillGap godoc
// @Summary Write an invoice at a missing number
// @Tags fiscal-years
// @Accept  json
// @Produce  json
// @Param   year path int true "Fiscal year"
// @Param   seq path int true "Missing sequence number"
// @Param   invoice body dto.FillGapRequest true "Invoice details"
// @Success 201 {object} dto.FillGapResponse
// @Failure 409 {object} map[string]string "Number is not missing"
// @Failure 423 {object} map[string]string "Fiscal year closed"
// @Security BearerAuth
// @Router /fiscal-years/{year}/gaps/{seq}/fill [post]
func (h *fiscalYearHandler) fillGap(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	year, ok := intParam(c, "year")
	if !ok {
		return
	}
	seq, ok := intParam(c, "seq")
	if !ok {
		return
	}

	var req dto.FillGapRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for FillGap", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	invoice, warnings, err := h.integrityService.FillGap(c.Request.Context(), year, seq, req, userID)
	if err != nil {
		respondError(c, err, "Failed to fill gap")
		return
	}

	logger.Info("Sequence gap filled", slog.String("number", invoice.Number))
	c.JSON(http.StatusCreated, dto.FillGapResponse{Invoice: dto.ToInvoiceResponse(invoice), Warnings: warnings})
}

// cascadeRenumber godoc
// @Summary Close a gap by shifting later invoices down
// @Tags fiscal-years
// @Produce  json
// @Param   year path int true "Fiscal year"
// @Param   seq path int true "Missing sequence number"
// @Success 200 {object} dto.RenumberResponse
// @Failure 409 {object} map[string]string "A shifted invoice was already sent"
// @Failure 423 {object} map[string]string "Fiscal year closed"
// @Security BearerAuth
// @Router /fiscal-years/{year}/gaps/{seq}/renumber [post]
func (h *fiscalYearHandler) cascadeRenumber(c *gin.Context) {
	year, ok := intParam(c, "year")
	if !ok {
		return
	}
	seq, ok := intParam(c, "seq")
	if !ok {
		return
	}
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	shifted, err := h.integrityService.CascadeRenumber(c.Request.Context(), year, seq, userID)
	if err != nil {
		respondError(c, err, "Failed to renumber invoices")
		return
	}
	c.JSON(http.StatusOK, dto.RenumberResponse{Year: year, Gap: seq, Shifted: shifted})
}

// voidPlaceholder godoc
// @Summary Record a missing number as void
// @Tags fiscal-years
// @Accept  json
// @Produce  json
// @Param   year path int true "Fiscal year"
// @Param   seq path int true "Missing sequence number"
// @Param   body body dto.VoidGapRequest true "Justification"
// @Success 201 {object} dto.InvoiceResponse
// @Failure 409 {object} map[string]string "Number is not missing"
// @Failure 423 {object} map[string]string "Fiscal year closed"
// @Security BearerAuth
// @Router /fiscal-years/{year}/gaps/{seq}/void [post]
func (h *fiscalYearHandler) voidPlaceholder(c *gin.Context) {
	year, ok := intParam(c, "year")
	if !ok {
		return
	}
	seq, ok := intParam(c, "seq")
	if !ok {
		return
	}

	var req dto.VoidGapRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	invoice, err := h.integrityService.VoidPlaceholder(c.Request.Context(), year, seq, req.Justification, userID)
	if err != nil {
		respondError(c, err, "Failed to void sequence number")
		return
	}
	c.JSON(http.StatusCreated, dto.ToInvoiceResponse(invoice))
}
