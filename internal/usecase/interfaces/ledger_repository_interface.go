package interfaces

import (
	"context"
	"time"

	"wrenchgo_payments/internal/domain/entities"
)

// ILedgerRepository abstracts DynamoDB persistence for the mechanic payout
// ledger.

type ILedgerRepository interface {
	// PostEarning inserts the entry, conditional on no entry existing for the
	// payment. Replayed handlers get ErrConflict.
	PostEarning(ctx context.Context, e entities.LedgerEntry) error

	GetByPaymentID(ctx context.Context, paymentID string) (entities.LedgerEntry, error)

	// ListDueForTransfer returns available_for_transfer entries whose release
	// time has passed.
	ListDueForTransfer(ctx context.Context, now time.Time) ([]entities.LedgerEntry, error)

	MarkTransferred(ctx context.Context, paymentIDs []string, stripeTransferID string, at time.Time) error
	RevertToAvailable(ctx context.Context, paymentIDs []string) error

	// MarkPaidOutByAccount flips the account's transferred entries to paid_out
	// and returns the affected entries.
	MarkPaidOutByAccount(ctx context.Context, stripeAccountID, stripePayoutID string, at time.Time) ([]entities.LedgerEntry, error)

	MarkRefunded(ctx context.Context, paymentID string) error
}

// ITransferRepository abstracts DynamoDB persistence for bulk transfers.

type ITransferRepository interface {
	Create(ctx context.Context, t entities.Transfer) error
	GetByStripeTransferID(ctx context.Context, stripeTransferID string) (entities.Transfer, error)
	// ListUnresolvedByMechanicID returns the mechanic's transfers still in
	// pending status, i.e. neither confirmed nor failed by the processor.
	ListUnresolvedByMechanicID(ctx context.Context, mechanicID string) ([]entities.Transfer, error)
	// UpsertStatus writes the transfer status keyed by processor identifier,
	// creating the row if the creating run's write was lost.
	UpsertStatus(ctx context.Context, stripeTransferID string, status entities.TransferStatus, errorMessage string) error
}
