package handlers

import (
	"io"
	"log"
	"net/http"

	"wrenchgo_payments/internal/usecase"
	"wrenchgo_payments/internal/usecase/interfaces"
	"wrenchgo_payments/pkg"

	"github.com/gin-gonic/gin"
)

const stripeSignatureHeader = "Stripe-Signature"

// WebhookHandler receives processor event deliveries. Response codes drive
// the provider's redelivery: 2xx acks, anything else retries.

type WebhookHandler struct {
	verifier interfaces.IWebhookVerifier
	usecase  usecase.IWebhookUseCase
}

func NewWebhookHandler(verifier interfaces.IWebhookVerifier, uc usecase.IWebhookUseCase) *WebhookHandler {
	return &WebhookHandler{verifier: verifier, usecase: uc}
}

// HandleStripeEvent verifies the delivery signature and processes the event.
func (h *WebhookHandler) HandleStripeEvent(c *gin.Context) {
	payload, err := io.ReadAll(c.Request.Body)
	if err != nil {
		appErr := pkg.NewDomainErrorSimple("INVALID_REQUEST", "Could not read request body", http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	event, err := h.verifier.VerifyAndParse(payload, c.GetHeader(stripeSignatureHeader))
	if err != nil {
		log.Printf("[webhook][handler] signature verification failed err=%v", err)
		appErr := pkg.NewDomainErrorSimple("INVALID_SIGNATURE", "Webhook signature verification failed", http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Printf("[webhook][handler] delivery received event_id=%s type=%s", event.ID, event.Type)

	if err := h.usecase.Process(c.Request.Context(), event); err != nil {
		// Non-2xx makes the provider redeliver; the dedup fence keeps the
		// retry safe.
		log.Printf("[webhook][handler] processing failed event_id=%s err=%v", event.ID, err)
		appErr := pkg.NewDomainError("EVENT_PROCESSING_FAILED", "Event processing failed", err, http.StatusInternalServerError)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, gin.H{"received": true})
}
