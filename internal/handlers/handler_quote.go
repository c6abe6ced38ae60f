package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/SscSPs/kidsclub_backend/internal/core/ports/services"
	"github.com/SscSPs/kidsclub_backend/internal/dto"
	"github.com/SscSPs/kidsclub_backend/internal/middleware"
	"github.com/gin-gonic/gin"
)

type quoteHandler struct {
	quoteService portssvc.QuoteSvcFacade
}

func newQuoteHandler(qs portssvc.QuoteSvcFacade) *quoteHandler {
	return &quoteHandler{quoteService: qs}
}

func registerQuoteRoutes(rg *gin.RouterGroup, quoteService portssvc.QuoteSvcFacade) {
	h := newQuoteHandler(quoteService)

	quotes := rg.Group("/quotes")
	{
		quotes.POST("", h.createQuote)
		quotes.GET("/:quoteID", h.getQuote)
		quotes.PUT("/:quoteID", h.updateQuote)
		quotes.DELETE("/:quoteID", h.deleteQuote)
	}
}

// createQuote godoc
// @Summary Create a quote
// @Description Creates a quote numbered PR-YYYY-NNNN. Installment mismatches come back as warnings.
// @Tags quotes
// @Accept  json
// @Produce  json
// @Param   quote body dto.CreateQuoteRequest true "Quote details"
// @Success 201 {object} dto.QuoteResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 423 {object} map[string]string "Fiscal year closed"
// @Security BearerAuth
// @Router /quotes [post]
func (h *quoteHandler) createQuote(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateQuoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CreateQuote", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	quote, warnings, err := h.quoteService.CreateQuote(c.Request.Context(), req, userID)
	if err != nil {
		respondError(c, err, "Failed to create quote")
		return
	}

	logger.Info("Quote created", slog.String("quote_id", quote.QuoteID), slog.Int("warnings", len(warnings)))
	c.JSON(http.StatusCreated, dto.ToQuoteResponse(quote, warnings))
}

// getQuote godoc
// @Summary Get a quote by ID
// @Tags quotes
// @Produce  json
// @Param   quoteID path string true "Quote ID"
// @Success 200 {object} dto.QuoteResponse
// @Failure 404 {object} map[string]string "Quote not found"
// @Security BearerAuth
// @Router /quotes/{quoteID} [get]
func (h *quoteHandler) getQuote(c *gin.Context) {
	quote, warnings, err := h.quoteService.GetQuoteByID(c.Request.Context(), c.Param("quoteID"))
	if err != nil {
		respondError(c, err, "Failed to retrieve quote")
		return
	}
	c.JSON(http.StatusOK, dto.ToQuoteResponse(quote, warnings))
}

// updateQuote godoc
// @Summary Update a quote
// @Tags quotes
// @Accept  json
// @Produce  json
// @Param   quoteID path string true "Quote ID"
// @Param   quote body dto.UpdateQuoteRequest true "Fields to update"
// @Success 200 {object} dto.QuoteResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 404 {object} map[string]string "Quote not found"
// @Failure 423 {object} map[string]string "Fiscal year closed"
// @Security BearerAuth
// @Router /quotes/{quoteID} [put]
func (h *quoteHandler) updateQuote(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.UpdateQuoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for UpdateQuote", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	quote, warnings, err := h.quoteService.UpdateQuote(c.Request.Context(), c.Param("quoteID"), req, userID)
	if err != nil {
		respondError(c, err, "Failed to update quote")
		return
	}
	c.JSON(http.StatusOK, dto.ToQuoteResponse(quote, warnings))
}

// deleteQuote godoc
// @Summary Soft delete a quote
// @Tags quotes
// @Param   quoteID path string true "Quote ID"
// @Success 204 "No Content"
// @Failure 404 {object} map[string]string "Quote not found"
// @Failure 423 {object} map[string]string "Fiscal year closed"
// @Security BearerAuth
// @Router /quotes/{quoteID} [delete]
func (h *quoteHandler) deleteQuote(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}
	if err := h.quoteService.DeleteQuote(c.Request.Context(), c.Param("quoteID"), userID); err != nil {
		respondError(c, err, "Failed to delete quote")
		return
	}
	c.Status(http.StatusNoContent)
}
