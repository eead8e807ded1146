package interfaces

import (
	"context"
	"time"

	"wrenchgo_payments/internal/domain/entities"
)

// IContractRepository abstracts DynamoDB persistence for service contracts.

type IContractRepository interface {
	GetByID(ctx context.Context, id string) (entities.Contract, error)
	// Authorize transitions pending_payment -> active, conditional on the
	// current status still being pending_payment.
	Authorize(ctx context.Context, id, stripePaymentIntentID string, at time.Time) error
	MarkCaptured(ctx context.Context, id string, at time.Time) error
}
