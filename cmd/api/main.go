package main

import (
	_ "wrenchgo_payments/docs"
	"wrenchgo_payments/internal/adapter/http/routes"

	_ "github.com/joho/godotenv/autoload"
)

// @title           WrenchGo Payments API
// @version         1.0
// @description     Escrow payments, promo credits and mechanic payouts backed by DynamoDB and Stripe Connect.

// @host localhost:8080

// @BasePath  /v1

// @securityDefinitions.apikey UserID
// @in header
// @name X-User-ID
// @description Authenticated user id injected by the API gateway.

func main() {
	routes.Run()
}
