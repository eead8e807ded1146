package entities

import "time"

// PaymentStatus tracks a payment through the escrow lifecycle.
//
// pending_hold means the row exists but no processor hold has been issued yet;
// StripePaymentIntentID is empty exactly while the payment is in this state.
// Terminal statuses are succeeded, failed, cancelled, refunded and
// partially_refunded; at most one non-terminal payment may exist per job.

type PaymentStatus string

const (
	PaymentStatusPendingHold       PaymentStatus = "pending_hold"
	PaymentStatusPending           PaymentStatus = "pending"
	PaymentStatusProcessing        PaymentStatus = "processing"
	PaymentStatusRequiresAction    PaymentStatus = "requires_action"
	PaymentStatusAuthorized        PaymentStatus = "authorized"
	PaymentStatusSucceeded         PaymentStatus = "succeeded"
	PaymentStatusFailed            PaymentStatus = "failed"
	PaymentStatusCancelled         PaymentStatus = "cancelled"
	PaymentStatusRefunded          PaymentStatus = "refunded"
	PaymentStatusPartiallyRefunded PaymentStatus = "partially_refunded"
)

// Terminal reports whether the status can no longer change.
func (s PaymentStatus) Terminal() bool {
	switch s {
	case PaymentStatusSucceeded, PaymentStatusFailed, PaymentStatusCancelled,
		PaymentStatusRefunded, PaymentStatusPartiallyRefunded:
		return true
	}
	return false
}

// Payment is the escrow payment row.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (job_id-index): job_id
//   - GSI2 (payment_intent-index): stripe_payment_intent_id
//   - GSI3 (charge-index): stripe_charge_id
//   - GSI4 (customer_id-index): customer_id
//
// Created by the orchestrator in pending_hold; mutated only by the webhook
// processor and the contract gate; never deleted.

type Payment struct {
	ID         string `json:"id"`
	JobID      string `json:"job_id"`
	InvoiceID  string `json:"invoice_id"`
	CustomerID string `json:"customer_id"`
	MechanicID string `json:"mechanic_id"`

	AmountCents         Cents `json:"amount_cents"`
	PlatformFeeCents    Cents `json:"platform_fee_cents"`
	OriginalFeeCents    Cents `json:"original_platform_fee_cents"`
	OriginalAmountCents Cents `json:"original_amount_cents"`
	MechanicNetCents    Cents `json:"mechanic_net_cents"`
	PromoDiscountCents  Cents `json:"promo_discount_cents"`
	AmountRefundedCents Cents `json:"amount_refunded_cents"`

	Status                  PaymentStatus `json:"status"`
	StripePaymentIntentID   string        `json:"stripe_payment_intent_id,omitempty"`
	StripeChargeID          string        `json:"stripe_charge_id,omitempty"`
	MechanicStripeAccountID string        `json:"mechanic_stripe_account_id,omitempty"`
	ClientSecret            string        `json:"client_secret,omitempty"`
	ErrorMessage            string        `json:"error_message,omitempty"`

	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
	PaidAt    *time.Time `json:"paid_at,omitempty"`
}
