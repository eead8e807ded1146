package interfaces

import (
	"context"
	"time"

	"wrenchgo_payments/internal/domain/entities"
)

// IPaymentRepository abstracts DynamoDB persistence for Payment rows.
//
// Lookups by processor identifiers exist because webhook handlers must find
// payments without assuming the synchronous path wrote anything first.

type IPaymentRepository interface {
	Create(ctx context.Context, p entities.Payment) (entities.Payment, error)
	GetByID(ctx context.Context, id string) (entities.Payment, error)
	ListByJobID(ctx context.Context, jobID string) ([]entities.Payment, error)
	GetByPaymentIntentID(ctx context.Context, paymentIntentID string) (entities.Payment, error)
	GetByChargeID(ctx context.Context, chargeID string) (entities.Payment, error)

	// AttachHold persists the processor hold identifiers issued for a payment
	// and moves it out of pending_hold.
	AttachHold(ctx context.Context, id string, hold entities.ProcessorHold, status entities.PaymentStatus) error

	UpdateStatus(ctx context.Context, id string, status entities.PaymentStatus, errorMessage string) error
	UpdateStatusByPaymentIntentID(ctx context.Context, paymentIntentID string, status entities.PaymentStatus, errorMessage string) error

	// MarkSucceeded stamps a payment succeeded by its own id, backfilling the
	// processor identifiers when the synchronous path never persisted them.
	MarkSucceeded(ctx context.Context, id, paymentIntentID, chargeID string, paidAt time.Time) error

	// HasPriorQualifyingPayment reports whether the customer has an earlier
	// succeeded, fee-bearing payment other than the given one.
	HasPriorQualifyingPayment(ctx context.Context, customerID, paymentID string) (bool, error)
}
