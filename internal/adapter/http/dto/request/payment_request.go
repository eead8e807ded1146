package request

// CreatePaymentRequest starts (or resumes) the escrow payment for a job.

type CreatePaymentRequest struct {
	JobID string `json:"job_id" binding:"required"`
}

// ValidatePromotionRequest checks an opt-in promo code against a quote.

type ValidatePromotionRequest struct {
	Code             string `json:"code" binding:"required"`
	QuoteAmountCents int64  `json:"quote_amount_cents"`
}

// AuthorizeContractRequest carries the hold token the client confirmed. The
// token is optional; the contract's stored hold is used when absent.

type AuthorizeContractRequest struct {
	PaymentIntentID string `json:"payment_intent_id"`
}
