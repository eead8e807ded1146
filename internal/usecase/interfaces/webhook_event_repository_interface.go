package interfaces

import (
	"context"

	"wrenchgo_payments/internal/domain/entities"
)

// IWebhookEventRepository is the dedup store for processed processor events.

type IWebhookEventRepository interface {
	Exists(ctx context.Context, eventID string) (bool, error)
	// RecordProcessed inserts the dedup row, conditional on absence. A
	// concurrent processor winning the race surfaces as ErrConflict.
	RecordProcessed(ctx context.Context, ev entities.WebhookEvent) error
}
