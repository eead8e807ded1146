package handlers

import (
	"errors"
	"log"
	"net/http"
	"strconv"

	request "wrenchgo_payments/internal/adapter/http/dto/request"
	response "wrenchgo_payments/internal/adapter/http/dto/response"
	"wrenchgo_payments/internal/domain/entities"
	"wrenchgo_payments/internal/usecase"
	"wrenchgo_payments/pkg"

	"github.com/gin-gonic/gin"
)

// PromoHandler handles HTTP requests for promo credits and promotion codes.

type PromoHandler struct {
	usecase usecase.IPromoUseCase
}

func NewPromoHandler(uc usecase.IPromoUseCase) *PromoHandler {
	return &PromoHandler{usecase: uc}
}

// GetCreditsBalance returns the caller's remaining promo credits. With a
// platform_fee_cents query parameter it also previews the discount the next
// payment would get, without consuming anything.
func (h *PromoHandler) GetCreditsBalance(c *gin.Context) {
	userID := c.GetHeader(userIDHeader)
	if userID == "" {
		c.JSON(errMissingUserID.HTTPStatus, errMissingUserID.ToHTTPError())
		return
	}

	balance, err := h.usecase.CreditsBalance(c.Request.Context(), userID)
	if err != nil {
		log.Printf("[promo][handler] balance failed user_id=%s err=%v", userID, err)
		appErr := mapPromoError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	resp := response.FromCreditsBalance(balance)

	if feeParam := c.Query("platform_fee_cents"); feeParam != "" {
		fee, convErr := strconv.ParseInt(feeParam, 10, 64)
		if convErr != nil || fee < 0 {
			appErr := pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
			c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
			return
		}
		outcome, err := h.usecase.PreviewDiscount(c.Request.Context(), userID, entities.Cents(fee))
		if err != nil {
			log.Printf("[promo][handler] preview failed user_id=%s err=%v", userID, err)
			appErr := mapPromoError(err)
			c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
			return
		}
		resp.WithPreview(outcome)
	}

	c.JSON(http.StatusOK, resp)
}

// ValidatePromotionCode checks an opt-in promo code against a quote amount.
func (h *PromoHandler) ValidatePromotionCode(c *gin.Context) {
	var payload request.ValidatePromotionRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		appErr := pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	validation, err := h.usecase.ValidatePromotionCode(c.Request.Context(), payload.Code, entities.Cents(payload.QuoteAmountCents))
	if err != nil {
		log.Printf("[promo][handler] validate failed code=%s err=%v", payload.Code, err)
		appErr := mapPromoError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromPromotionValidation(validation))
}

func mapPromoError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidPromoUserID), errors.Is(err, usecase.ErrInvalidPromotionCode):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
