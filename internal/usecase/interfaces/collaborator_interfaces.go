package interfaces

import (
	"context"
	"time"

	"wrenchgo_payments/internal/domain/entities"
)

// Collaborator lookups. Jobs, invoices, payout accounts and customer profiles
// are owned by other parts of the platform; this service reads them to gate
// payments and stamps paid/refunded/disputed transitions driven by processor
// events.

type IJobRepository interface {
	GetByID(ctx context.Context, id string) (entities.Job, error)
	MarkPaid(ctx context.Context, id string, at time.Time) error
	UpdateStatus(ctx context.Context, id string, status entities.JobStatus) error
}

type IInvoiceRepository interface {
	GetByJobID(ctx context.Context, jobID string) (entities.JobInvoice, error)
	MarkPaid(ctx context.Context, id string, at time.Time) error
	UpdateStatus(ctx context.Context, id string, status entities.InvoiceStatus) error
}

type IPayoutAccountRepository interface {
	GetByMechanicID(ctx context.Context, mechanicID string) (entities.PayoutAccount, error)
	// UpdateFromAccount syncs onboarding/capability flags keyed by the
	// processor account identifier (account.updated events).
	UpdateFromAccount(ctx context.Context, a entities.PayoutAccount) error
}

type ICustomerProfileRepository interface {
	GetByUserID(ctx context.Context, userID string) (entities.CustomerProfile, error)
	GetByStripeCustomerID(ctx context.Context, stripeCustomerID string) (entities.CustomerProfile, error)
	UpdatePaymentMethodStatus(ctx context.Context, userID, status string) error
}
