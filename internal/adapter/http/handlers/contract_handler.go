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

// ContractHandler handles HTTP requests for the contract payment gate.

type ContractHandler struct {
	usecase usecase.IContractUseCase
}

func NewContractHandler(uc usecase.IContractUseCase) *ContractHandler {
	return &ContractHandler{usecase: uc}
}

// AuthorizeContract activates a contract once its hold is confirmed.
func (h *ContractHandler) AuthorizeContract(c *gin.Context) {
	userID := c.GetHeader(userIDHeader)
	if userID == "" {
		c.JSON(errMissingUserID.HTTPStatus, errMissingUserID.ToHTTPError())
		return
	}
	contractID := c.Param("contract_id")

	// Body is optional: absent or empty means "use the stored hold".
	var payload request.AuthorizeContractRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&payload); err != nil {
			appErr := pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
			c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
			return
		}
	}
	log.Printf("[contract][handler] authorize start contract_id=%s user_id=%s", contractID, userID)

	result, err := h.usecase.AuthorizeContract(c.Request.Context(), contractID, payload.PaymentIntentID, userID)
	if err != nil {
		log.Printf("[contract][handler] authorize failed contract_id=%s err=%v", contractID, err)
		appErr := mapContractError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromAuthorizeResult(result))
}

// CaptureContract captures the contract's hold after job completion.
func (h *ContractHandler) CaptureContract(c *gin.Context) {
	userID := c.GetHeader(userIDHeader)
	if userID == "" {
		c.JSON(errMissingUserID.HTTPStatus, errMissingUserID.ToHTTPError())
		return
	}
	contractID := c.Param("contract_id")
	log.Printf("[contract][handler] capture start contract_id=%s user_id=%s", contractID, userID)

	result, err := h.usecase.CaptureContract(c.Request.Context(), contractID, userID)
	if err != nil {
		log.Printf("[contract][handler] capture failed contract_id=%s err=%v", contractID, err)
		appErr := mapContractError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromCaptureResult(result))
}

func mapContractError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidContractID):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrContractNotFound):
		return pkg.NewDomainErrorSimple("CONTRACT_NOT_FOUND", "Contract not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrNotContractCustomer):
		return pkg.NewDomainErrorSimple("FORBIDDEN", "Only the contract customer can act on it", http.StatusForbidden)
	case errors.Is(err, usecase.ErrNoHoldOnContract), errors.Is(err, usecase.ErrContractNotAuthorized):
		return pkg.NewDomainErrorSimple("PAYMENT_NOT_AUTHORIZED", "Contract payment is not authorized", http.StatusConflict)
	case errors.Is(err, usecase.ErrHoldNotAuthorized):
		return pkg.NewDomainErrorSimple("HOLD_NOT_AUTHORIZED", "Payment hold is not in an authorized state", http.StatusConflict)
	case errors.Is(err, usecase.ErrHoldAmountMismatch):
		return pkg.NewDomainErrorSimple("AMOUNT_MISMATCH", "Hold amount does not match the payment record", http.StatusConflict)
	case errors.Is(err, usecase.ErrPaymentRecordMissing):
		return pkg.NewDomainErrorSimple("PAYMENT_NOT_FOUND", "Payment record not found for this hold", http.StatusNotFound)
	case errors.Is(err, usecase.ErrJobNotReadyForCapture):
		return pkg.NewDomainErrorSimple("JOB_NOT_COMPLETED", "Job must be completed before capture", http.StatusConflict)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
