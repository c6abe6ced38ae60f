package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/SscSPs/kidsclub_backend/internal/core/ports/services"
	"github.com/SscSPs/kidsclub_backend/internal/dto"
	"github.com/SscSPs/kidsclub_backend/internal/middleware"
	"github.com/gin-gonic/gin"
)

// enrollmentHandler records payments and reconciles ghost invoices for enrollments.
type enrollmentHandler struct {
	paymentService portssvc.PaymentSvcFacade
}

func newEnrollmentHandler(ps portssvc.PaymentSvcFacade) *enrollmentHandler {
	return &enrollmentHandler{paymentService: ps}
}

func registerEnrollmentRoutes(rg *gin.RouterGroup, paymentService portssvc.PaymentSvcFacade) {
	h := newEnrollmentHandler(paymentService)

	enrollments := rg.Group("/enrollments/:enrollmentID")
	{
		enrollments.POST("/payments", h.recordPayment)
		enrollments.POST("/reconcile", h.reconcile)
	}
}

// recordPayment godoc
// @Summary Record a payment for an enrollment
// @Description Promotes a ghost invoice or issues a new one, records the income and activates the enrollment.
// @Description When the follow-up reconciliation fails the payment still stands: reconciled is false and warning explains why.
// @Tags enrollments
// @Accept  json
// @Produce  json
// @Param   enrollmentID path string true "Enrollment ID"
// @Param   payment body dto.RecordPaymentRequest true "Payment details"
// @Success 201 {object} domain.PaymentOutcome
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 404 {object} map[string]string "Enrollment or ghost invoice not found"
// @Failure 423 {object} map[string]string "Fiscal year closed"
// @Security BearerAuth
// @Router /enrollments/{enrollmentID}/payments [post]
func (h *enrollmentHandler) recordPayment(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	enrollmentID := c.Param("enrollmentID")

	var req dto.RecordPaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for RecordPayment", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	outcome, err := h.paymentService.ProcessPayment(c.Request.Context(), req.ToDomain(enrollmentID), userID)
	if err != nil {
		respondError(c, err, "Failed to record payment")
		return
	}

	if !outcome.Reconciled {
		logger.Warn("Payment recorded without reconciliation", slog.String("enrollment_id", enrollmentID), slog.String("warning", outcome.Warning))
	} else {
		logger.Info("Payment recorded", slog.String("enrollment_id", enrollmentID))
	}
	c.JSON(http.StatusCreated, outcome)
}

// reconcile godoc
// @Summary Reconcile the ghost invoices of an enrollment
// @Description Keeps one ghost for the remaining balance and voids the rest. Safe to run repeatedly.
// @Tags enrollments
// @Produce  json
// @Param   enrollmentID path string true "Enrollment ID"
// @Success 200 {object} domain.ReconcileResult
// @Failure 404 {object} map[string]string "Enrollment not found"
// @Security BearerAuth
// @Router /enrollments/{enrollmentID}/reconcile [post]
func (h *enrollmentHandler) reconcile(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	result, err := h.paymentService.ReconcileEnrollment(c.Request.Context(), c.Param("enrollmentID"), userID)
	if err != nil {
		respondError(c, err, "Failed to reconcile enrollment")
		return
	}
	c.JSON(http.StatusOK, result)
}
