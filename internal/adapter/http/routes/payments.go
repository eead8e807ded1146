package routes

import (
	"wrenchgo_payments/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathPayments   = "/payments"
	PathPromotions = "/promotions"
	PathContracts  = "/contracts"
	PathWebhooks   = "/webhooks"
	PathPayouts    = "/payouts"
)

func addPaymentRoutes(
	rg *gin.RouterGroup,
	paymentHandler *handlers.PaymentHandler,
	promoHandler *handlers.PromoHandler,
	contractHandler *handlers.ContractHandler,
	webhookHandler *handlers.WebhookHandler,
	payoutHandler *handlers.PayoutHandler,
) {
	paymentsGroup := rg.Group(PathPayments)
	{
		paymentsGroup.POST("", paymentHandler.CreatePayment)
		paymentsGroup.GET("/:job_id", paymentHandler.GetPaymentByJobID)
	}

	promotions := rg.Group(PathPromotions)
	{
		promotions.POST("/validate", promoHandler.ValidatePromotionCode)
	}
	rg.GET("/promo-credits", promoHandler.GetCreditsBalance)

	contracts := rg.Group(PathContracts)
	{
		contracts.POST("/:contract_id/authorize", contractHandler.AuthorizeContract)
		contracts.POST("/:contract_id/capture", contractHandler.CaptureContract)
	}

	webhooks := rg.Group(PathWebhooks)
	{
		webhooks.POST("/stripe", webhookHandler.HandleStripeEvent)
	}

	payouts := rg.Group(PathPayouts)
	{
		payouts.POST("/run", payoutHandler.RunWeeklyPayouts)
	}
}
