package entities

import "time"

// ContractStatus is the service-contract state machine. The only transition
// performed by this service is pending_payment -> active, gated on the
// processor hold being authorized for the exact net amount.

type ContractStatus string

const (
	ContractStatusPendingPayment ContractStatus = "pending_payment"
	ContractStatusActive         ContractStatus = "active"
	ContractStatusCancelled      ContractStatus = "cancelled"
)

// Contract is the service contract between a customer and a mechanic.
//
// Storage model (DynamoDB):
//   - PK: id

type Contract struct {
	ID         string         `json:"id"`
	JobID      string         `json:"job_id"`
	CustomerID string         `json:"customer_id"`
	MechanicID string         `json:"mechanic_id"`
	Status     ContractStatus `json:"status"`

	TotalCustomerCents    Cents  `json:"total_customer_cents"`
	PlatformFeeCents      Cents  `json:"platform_fee_cents"`
	StripePaymentIntentID string `json:"stripe_payment_intent_id,omitempty"`

	PaymentAuthorizedAt *time.Time `json:"payment_authorized_at,omitempty"`
	PaymentCapturedAt   *time.Time `json:"payment_captured_at,omitempty"`
	CreatedAt           time.Time  `json:"created_at"`
	UpdatedAt           time.Time  `json:"updated_at"`
}
