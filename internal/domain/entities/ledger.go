package entities

import "time"

// LedgerEntryStatus moves forward only; a paid_out entry is never re-opened.

type LedgerEntryStatus string

const (
	LedgerStatusAvailableForTransfer LedgerEntryStatus = "available_for_transfer"
	LedgerStatusTransferred          LedgerEntryStatus = "transferred"
	LedgerStatusPaidOut              LedgerEntryStatus = "paid_out"
	LedgerStatusRefunded             LedgerEntryStatus = "refunded"
)

// LedgerEntry records money owed to a mechanic for one captured payment.
//
// Storage model (DynamoDB):
//   - PK: payment_id (one entry per payment; the conditional put on this key
//     is what makes PostEarning idempotent under webhook replay)
//   - GSI1 (status-available_at-index): status / available_for_transfer_at
//   - GSI2 (stripe_account-index): stripe_account_id
//   - GSI3 (mechanic_id-index): mechanic_id
//
// AvailableForTransferAt is fixed at creation to the Monday 00:00 UTC
// following the capture, batching releases into weekly payout cycles.

type LedgerEntry struct {
	PaymentID       string            `json:"payment_id"`
	MechanicID      string            `json:"mechanic_id"`
	JobID           string            `json:"job_id"`
	StripeAccountID string            `json:"stripe_account_id"`
	AmountCents     Cents             `json:"amount_cents"`
	Status          LedgerEntryStatus `json:"status"`

	AvailableForTransferAt time.Time  `json:"available_for_transfer_at"`
	StripeTransferID       string     `json:"stripe_transfer_id,omitempty"`
	StripePayoutID         string     `json:"stripe_payout_id,omitempty"`
	TransferredAt          *time.Time `json:"transferred_at,omitempty"`
	PaidOutAt              *time.Time `json:"paid_out_at,omitempty"`
	CreatedAt              time.Time  `json:"created_at"`
}

// TransferStatus tracks a bulk weekly transfer to one mechanic.

type TransferStatus string

const (
	TransferStatusPending   TransferStatus = "pending"
	TransferStatusSucceeded TransferStatus = "succeeded"
	TransferStatusFailed    TransferStatus = "failed"
)

// Transfer groups the ledger entries released in one weekly payout run.
//
// Storage model (DynamoDB):
//   - PK: stripe_transfer_id (webhook handlers upsert by this key, so
//     redelivered transfer events are row-level idempotent)

type Transfer struct {
	StripeTransferID string         `json:"stripe_transfer_id"`
	MechanicID       string         `json:"mechanic_id"`
	StripeAccountID  string         `json:"stripe_account_id"`
	AmountCents      Cents          `json:"amount_cents"`
	Status           TransferStatus `json:"status"`
	LedgerPaymentIDs []string       `json:"ledger_payment_ids"`
	ErrorMessage     string         `json:"error_message,omitempty"`
	CreatedAt        time.Time      `json:"created_at"`
}
