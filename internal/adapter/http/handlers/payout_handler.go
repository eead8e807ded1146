package handlers

import (
	"crypto/subtle"
	"log"
	"net/http"
	"os"
	"time"

	response "wrenchgo_payments/internal/adapter/http/dto/response"
	"wrenchgo_payments/internal/usecase"
	"wrenchgo_payments/pkg"

	"github.com/gin-gonic/gin"
)

const cronSecretHeader = "X-Cron-Secret"

// PayoutHandler triggers the weekly ledger release. The route is called by a
// scheduler, not end users, and is gated on a shared secret.

type PayoutHandler struct {
	usecase usecase.ILedgerUseCase
}

func NewPayoutHandler(uc usecase.ILedgerUseCase) *PayoutHandler {
	return &PayoutHandler{usecase: uc}
}

// RunWeeklyPayouts releases all due ledger entries.
func (h *PayoutHandler) RunWeeklyPayouts(c *gin.Context) {
	secret := os.Getenv("CRON_SECRET")
	provided := c.GetHeader(cronSecretHeader)
	if secret == "" || subtle.ConstantTimeCompare([]byte(secret), []byte(provided)) != 1 {
		appErr := pkg.NewDomainErrorSimple("UNAUTHORIZED", "Invalid cron secret", http.StatusUnauthorized)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	log.Printf("[payout][handler] weekly run start")
	result, err := h.usecase.RunWeeklyPayouts(c.Request.Context(), time.Now().UTC())
	if err != nil {
		log.Printf("[payout][handler] weekly run failed err=%v", err)
		appErr := pkg.NewDomainError("PAYOUT_RUN_FAILED", "Payout run failed", err, http.StatusInternalServerError)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Printf("[payout][handler] weekly run done transfers=%d", result.TransfersCreated)

	c.JSON(http.StatusOK, response.FromPayoutRunResult(result))
}
