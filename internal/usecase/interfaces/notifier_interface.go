package interfaces

import (
	"context"

	"wrenchgo_payments/internal/domain/entities"
)

// INotifier dispatches fire-and-forget user notifications. Failures are
// logged by callers and never fail the surrounding operation.

type INotifier interface {
	Notify(ctx context.Context, n entities.Notification) error
}

// IOpsAlerter is the operator-visible alerting hook. Compensation failures
// (money left in an inconsistent state needing manual reconciliation) must go
// through here and must never be silently dropped.

type IOpsAlerter interface {
	Alert(ctx context.Context, code, message string, fields map[string]string)
}
