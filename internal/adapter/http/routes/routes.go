package routes

import (
	"log"
	"os"
	"strconv"

	_ "wrenchgo_payments/docs" // This will be auto-generated
	"wrenchgo_payments/internal/adapter/http/handlers"
	repository2 "wrenchgo_payments/internal/adapter/persistence/repository"
	"wrenchgo_payments/internal/infrastructure/alerting"
	"wrenchgo_payments/internal/infrastructure/database"
	"wrenchgo_payments/internal/infrastructure/payments"
	"wrenchgo_payments/internal/usecase"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

var router = gin.Default()

const PORT = 8080

// Run will start the server
func Run() {
	setMiddlewares()

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	getRoutes()

	err := router.Run(":" + strconv.Itoa(PORT))
	if err != nil {
		log.Fatalf("Failed to startup the application: %v", err.Error())
	}
}

func getRoutes() {
	ddb := database.ConnectDynamoDB()

	paymentRepo := repository2.NewPaymentDynamoRepository(ddb)
	promoRepo := repository2.NewPromoDynamoRepository(ddb)
	promotionRepo := repository2.NewPromotionDynamoRepository(ddb)
	webhookEventRepo := repository2.NewWebhookEventDynamoRepository(ddb)
	ledgerRepo := repository2.NewLedgerDynamoRepository(ddb)
	transferRepo := repository2.NewTransferDynamoRepository(ddb)
	invitationRepo := repository2.NewInvitationDynamoRepository(ddb)
	contractRepo := repository2.NewContractDynamoRepository(ddb)
	jobRepo := repository2.NewJobDynamoRepository(ddb)
	invoiceRepo := repository2.NewInvoiceDynamoRepository(ddb)
	accountRepo := repository2.NewPayoutAccountDynamoRepository(ddb)
	profileRepo := repository2.NewCustomerProfileDynamoRepository(ddb)
	notifier := repository2.NewNotificationDynamoRepository(ddb)

	alerter := alerting.NewLogAlerter()

	gateway, err := payments.NewStripeGateway(os.Getenv("STRIPE_SECRET_KEY"))
	if err != nil {
		log.Fatalf("Stripe gateway not configured: %v", err)
	}
	verifier, err := payments.NewStripeWebhookVerifier(os.Getenv("STRIPE_WEBHOOK_SECRET"))
	if err != nil {
		log.Fatalf("Stripe webhook verifier not configured: %v", err)
	}

	promoUseCase := usecase.NewPromoUseCase(promoRepo, promotionRepo, paymentRepo)
	paymentUseCase := usecase.NewPaymentIntentUseCase(paymentRepo, jobRepo, invoiceRepo, accountRepo, profileRepo, promoUseCase, gateway)
	contractUseCase := usecase.NewContractUseCase(contractRepo, paymentRepo, jobRepo, gateway, alerter)
	ledgerUseCase := usecase.NewLedgerUseCase(ledgerRepo, transferRepo, gateway, alerter)
	invitationUseCase := usecase.NewInvitationUseCase(invitationRepo, paymentRepo, notifier)
	webhookUseCase := usecase.NewWebhookUseCase(
		webhookEventRepo, paymentRepo, jobRepo, invoiceRepo, accountRepo, profileRepo,
		ledgerUseCase, invitationUseCase, notifier, alerter,
	)

	paymentHandler := handlers.NewPaymentHandler(paymentUseCase)
	promoHandler := handlers.NewPromoHandler(promoUseCase)
	contractHandler := handlers.NewContractHandler(contractUseCase)
	webhookHandler := handlers.NewWebhookHandler(verifier, webhookUseCase)
	payoutHandler := handlers.NewPayoutHandler(ledgerUseCase)

	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addPaymentRoutes(v1, paymentHandler, promoHandler, contractHandler, webhookHandler, payoutHandler)
}

func setMiddlewares() {
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(500)
	}))
}
