package handlers

import (
	"errors"
	"log"
	"net/http"

	request "wrenchgo_payments/internal/adapter/http/dto/request"
	response "wrenchgo_payments/internal/adapter/http/dto/response"
	"wrenchgo_payments/internal/usecase"
	"wrenchgo_payments/pkg"

	"github.com/gin-gonic/gin"
)

// userIDHeader carries the authenticated user's id, set by the API gateway in
// front of this service.
const userIDHeader = "X-User-ID"

var errMissingUserID = pkg.NewDomainErrorSimple("UNAUTHENTICATED", "Missing user identity", http.StatusUnauthorized)

// PaymentHandler handles HTTP requests for escrow payments.

type PaymentHandler struct {
	usecase usecase.IPaymentIntentUseCase
}

func NewPaymentHandler(uc usecase.IPaymentIntentUseCase) *PaymentHandler {
	return &PaymentHandler{usecase: uc}
}

// CreatePayment starts (or resumes) the escrow payment for a job.
func (h *PaymentHandler) CreatePayment(c *gin.Context) {
	userID := c.GetHeader(userIDHeader)
	if userID == "" {
		c.JSON(errMissingUserID.HTTPStatus, errMissingUserID.ToHTTPError())
		return
	}

	var payload request.CreatePaymentRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		appErr := pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Printf("[payment][handler] create start job_id=%s user_id=%s", payload.JobID, userID)

	result, err := h.usecase.CreateOrGetPayment(c.Request.Context(), payload.JobID, userID)
	if err != nil {
		log.Printf("[payment][handler] create failed job_id=%s err=%v", payload.JobID, err)
		appErr := mapPaymentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Printf("[payment][handler] create success job_id=%s payment_id=%s status=%s already_exists=%t",
		payload.JobID, result.PaymentID, result.Status, result.AlreadyExists)

	c.JSON(http.StatusOK, response.FromCreatePaymentResult(result))
}

// GetPaymentByJobID returns the latest payment for a job.
func (h *PaymentHandler) GetPaymentByJobID(c *gin.Context) {
	jobID := c.Param("job_id")
	log.Printf("[payment][handler] get-by-job start job_id=%s", jobID)

	payment, err := h.usecase.GetPaymentStatus(c.Request.Context(), jobID)
	if err != nil {
		log.Printf("[payment][handler] get-by-job failed job_id=%s err=%v", jobID, err)
		appErr := mapPaymentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromPayment(payment))
}

func mapPaymentError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidJobID):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrJobNotFound):
		return pkg.NewDomainErrorSimple("JOB_NOT_FOUND", "Job not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrNotJobCustomer):
		return pkg.NewDomainErrorSimple("FORBIDDEN", "Only the job customer can pay for it", http.StatusForbidden)
	case errors.Is(err, usecase.ErrJobNotCompleted):
		return pkg.NewDomainErrorSimple("JOB_NOT_COMPLETED", "Job is not completed yet", http.StatusConflict)
	case errors.Is(err, usecase.ErrCompletionNotVerified):
		return pkg.NewDomainErrorSimple("COMPLETION_NOT_VERIFIED", "Both parties must verify completion before payment", http.StatusConflict)
	case errors.Is(err, usecase.ErrInvoiceNotFound):
		return pkg.NewDomainErrorSimple("INVOICE_NOT_FOUND", "Invoice not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrInvoiceNotLocked):
		return pkg.NewDomainErrorSimple("INVOICE_NOT_LOCKED", "Invoice totals are not locked", http.StatusConflict)
	case errors.Is(err, usecase.ErrMechanicNotOnboarded), errors.Is(err, usecase.ErrMechanicAccountNotReady):
		return pkg.NewDomainErrorSimple("MECHANIC_NOT_PAYABLE", "Mechanic cannot receive payments yet", http.StatusConflict)
	case errors.Is(err, usecase.ErrCustomerNoPaymentMethod):
		return pkg.NewDomainErrorSimple("NO_PAYMENT_METHOD", "No valid payment method on file", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrAmountTooLow):
		return pkg.NewDomainErrorSimple("AMOUNT_TOO_LOW", "Payment amount below processor minimum", http.StatusUnprocessableEntity)
	case errors.Is(err, usecase.ErrNegativeNetAmount):
		return pkg.NewDomainErrorSimple("INVALID_AMOUNTS", "Discount exceeds payment total", http.StatusUnprocessableEntity)
	case errors.Is(err, usecase.ErrHoldDeclined):
		return pkg.NewDomainErrorSimple("PAYMENT_DECLINED", "Payment was declined by the processor", http.StatusPaymentRequired)
	case errors.Is(err, usecase.ErrPaymentNotFound):
		return pkg.NewDomainErrorSimple("PAYMENT_NOT_FOUND", "Payment not found", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
