package entities

import "time"

// Job and JobInvoice are collaborator-owned records. This service reads them
// to gate payment creation and flips their status to paid/refunded/disputed on
// processor events; all other job lifecycle handling lives elsewhere.

type JobStatus string

const (
	JobStatusCompleted JobStatus = "completed"
	JobStatusPaid      JobStatus = "paid"
	JobStatusDisputed  JobStatus = "disputed"
)

type Job struct {
	ID         string    `json:"id"`
	CustomerID string    `json:"customer_id"`
	MechanicID string    `json:"mechanic_id"`
	Title      string    `json:"title"`
	Status     JobStatus `json:"status"`

	MechanicVerifiedAt *time.Time `json:"mechanic_verified_at,omitempty"`
	CustomerVerifiedAt *time.Time `json:"customer_verified_at,omitempty"`
	PaidAt             *time.Time `json:"paid_at,omitempty"`
}

type InvoiceStatus string

const (
	InvoiceStatusLocked   InvoiceStatus = "locked"
	InvoiceStatusPaid     InvoiceStatus = "paid"
	InvoiceStatusRefunded InvoiceStatus = "refunded"
	InvoiceStatusDisputed InvoiceStatus = "disputed"
)

// JobInvoice carries the locked totals a payment is built from.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (job_id-index): job_id

type JobInvoice struct {
	ID               string        `json:"id"`
	JobID            string        `json:"job_id"`
	TotalCents       Cents         `json:"total_cents"`
	PlatformFeeCents Cents         `json:"platform_fee_cents"`
	MechanicNetCents Cents         `json:"mechanic_net_cents"`
	Status           InvoiceStatus `json:"status"`
	PaidAt           *time.Time    `json:"paid_at,omitempty"`
}

// PayoutAccount is a mechanic's connected processor account.
//
// Storage model (DynamoDB):
//   - PK: mechanic_id
//   - GSI1 (stripe_account-index): stripe_account_id

type PayoutAccount struct {
	MechanicID          string `json:"mechanic_id"`
	StripeAccountID     string `json:"stripe_account_id"`
	OnboardingCompleted bool   `json:"onboarding_completed"`
	ChargesEnabled      bool   `json:"charges_enabled"`
	PayoutsEnabled      bool   `json:"payouts_enabled"`
	DetailsSubmitted    bool   `json:"details_submitted"`
}

// CustomerProfile holds the customer's saved-card processor identifiers.
//
// Storage model (DynamoDB):
//   - PK: user_id
//   - GSI1 (stripe_customer-index): stripe_customer_id

type CustomerProfile struct {
	UserID               string `json:"user_id"`
	StripeCustomerID     string `json:"stripe_customer_id,omitempty"`
	DefaultPaymentMethod string `json:"default_payment_method,omitempty"`
	PaymentMethodStatus  string `json:"payment_method_status,omitempty"`
}
