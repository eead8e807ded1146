package interfaces

import (
	"context"

	"wrenchgo_payments/internal/domain/entities"
)

// HoldRequest asks the processor to reserve funds without capturing them.
// The destination fields make it a destination charge: on capture the
// processor moves TransferAmountCents to the mechanic's connected account and
// the platform keeps the remainder.

type HoldRequest struct {
	AmountCents          entities.Cents
	Currency             string
	CustomerID           string
	PaymentMethodID      string
	DestinationAccountID string
	TransferAmountCents  entities.Cents
	Description          string
	StatementSuffix      string
	Metadata             map[string]string
	IdempotencyKey       string
}

// TransferRequest moves already-captured platform funds to a connected payout
// account (weekly ledger release).

type TransferRequest struct {
	AmountCents          entities.Cents
	Currency             string
	DestinationAccountID string
	Description          string
	Metadata             map[string]string
	IdempotencyKey       string
}

// IPaymentGateway abstracts the external payment processor.

type IPaymentGateway interface {
	CreateHold(ctx context.Context, req HoldRequest) (entities.ProcessorHold, error)
	GetHold(ctx context.Context, holdID string) (entities.ProcessorHold, error)
	CancelHold(ctx context.Context, holdID string) error
	CaptureHold(ctx context.Context, holdID string) (entities.ProcessorHold, error)
	CreateTransfer(ctx context.Context, req TransferRequest) (stripeTransferID string, err error)
}

// IWebhookVerifier authenticates a raw webhook delivery against the shared
// signing secret and returns the parsed envelope.

type IWebhookVerifier interface {
	VerifyAndParse(payload []byte, signatureHeader string) (entities.ProcessorEvent, error)
}
