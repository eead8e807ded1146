package payments

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	stripe "github.com/stripe/stripe-go/v82"
	"github.com/stripe/stripe-go/v82/client"

	"wrenchgo_payments/internal/domain/entities"
	"wrenchgo_payments/internal/usecase/interfaces"
)

var ErrMissingStripeSecretKey = errors.New("missing STRIPE_SECRET_KEY")
var ErrStripeGatewayNotConfigured = errors.New("stripe gateway not configured")

// StripeGateway drives manual-capture destination charges and bulk transfers
// against Stripe Connect. Mock mode serves local development without keys:
// every hold comes back authorized.

type StripeGateway struct {
	sc       *client.API
	mockMode bool
}

var _ interfaces.IPaymentGateway = (*StripeGateway)(nil)

func NewStripeGateway(secretKey string) (*StripeGateway, error) {
	if isPaymentGatewayMockEnabled() {
		log.Printf("[payment][gateway] mock mode enabled")
		return &StripeGateway{mockMode: true}, nil
	}

	if secretKey == "" {
		log.Printf("[payment][gateway] missing STRIPE_SECRET_KEY")
		return nil, ErrMissingStripeSecretKey
	}

	sc := &client.API{}
	sc.Init(secretKey, nil)
	log.Printf("[payment][gateway] Stripe client initialized")

	return &StripeGateway{sc: sc}, nil
}

func (g *StripeGateway) CreateHold(ctx context.Context, req interfaces.HoldRequest) (entities.ProcessorHold, error) {
	if g != nil && g.mockMode {
		return g.mockHold(req), nil
	}
	if g == nil || g.sc == nil {
		return entities.ProcessorHold{}, ErrStripeGatewayNotConfigured
	}

	params := &stripe.PaymentIntentParams{
		Amount:        stripe.Int64(int64(req.AmountCents)),
		Currency:      stripe.String(req.Currency),
		Customer:      stripe.String(req.CustomerID),
		PaymentMethod: stripe.String(req.PaymentMethodID),
		CaptureMethod: stripe.String(string(stripe.PaymentIntentCaptureMethodManual)),
		Confirm:       stripe.Bool(true),
		OffSession:    stripe.Bool(true),
		Description:   stripe.String(req.Description),
		TransferData: &stripe.PaymentIntentTransferDataParams{
			Destination: stripe.String(req.DestinationAccountID),
			Amount:      stripe.Int64(int64(req.TransferAmountCents)),
		},
	}
	if req.StatementSuffix != "" {
		params.StatementDescriptorSuffix = stripe.String(req.StatementSuffix)
	}
	for k, v := range req.Metadata {
		params.AddMetadata(k, v)
	}
	if req.IdempotencyKey != "" {
		params.SetIdempotencyKey(req.IdempotencyKey)
	}
	params.Context = ctx

	pi, err := g.sc.PaymentIntents.New(params)
	if err != nil {
		log.Printf("[payment][gateway] hold create failed err=%v", err)
		return entities.ProcessorHold{}, classifyStripeError(err)
	}
	log.Printf("[payment][gateway] hold created intent_id=%s status=%s amount=%d", pi.ID, pi.Status, pi.Amount)

	return fromPaymentIntent(pi), nil
}

func (g *StripeGateway) GetHold(ctx context.Context, holdID string) (entities.ProcessorHold, error) {
	if g != nil && g.mockMode {
		return entities.ProcessorHold{ID: holdID, Status: entities.HoldStatusRequiresCapture}, nil
	}
	if g == nil || g.sc == nil {
		return entities.ProcessorHold{}, ErrStripeGatewayNotConfigured
	}

	pi, err := g.sc.PaymentIntents.Get(holdID, &stripe.PaymentIntentParams{Params: stripe.Params{Context: ctx}})
	if err != nil {
		return entities.ProcessorHold{}, classifyStripeError(err)
	}
	return fromPaymentIntent(pi), nil
}

func (g *StripeGateway) CancelHold(ctx context.Context, holdID string) error {
	if g != nil && g.mockMode {
		log.Printf("[payment][gateway] mock cancel intent_id=%s", holdID)
		return nil
	}
	if g == nil || g.sc == nil {
		return ErrStripeGatewayNotConfigured
	}

	_, err := g.sc.PaymentIntents.Cancel(holdID, &stripe.PaymentIntentCancelParams{Params: stripe.Params{Context: ctx}})
	if err != nil {
		return classifyStripeError(err)
	}
	log.Printf("[payment][gateway] hold cancelled intent_id=%s", holdID)
	return nil
}

func (g *StripeGateway) CaptureHold(ctx context.Context, holdID string) (entities.ProcessorHold, error) {
	if g != nil && g.mockMode {
		return entities.ProcessorHold{
			ID:             holdID,
			Status:         entities.HoldStatusSucceeded,
			LatestChargeID: fmt.Sprintf("ch_mock_%d", time.Now().UTC().UnixNano()),
		}, nil
	}
	if g == nil || g.sc == nil {
		return entities.ProcessorHold{}, ErrStripeGatewayNotConfigured
	}

	pi, err := g.sc.PaymentIntents.Capture(holdID, &stripe.PaymentIntentCaptureParams{Params: stripe.Params{Context: ctx}})
	if err != nil {
		return entities.ProcessorHold{}, classifyStripeError(err)
	}
	log.Printf("[payment][gateway] hold captured intent_id=%s status=%s", pi.ID, pi.Status)
	return fromPaymentIntent(pi), nil
}

func (g *StripeGateway) CreateTransfer(ctx context.Context, req interfaces.TransferRequest) (string, error) {
	if g != nil && g.mockMode {
		id := fmt.Sprintf("tr_mock_%d", time.Now().UTC().UnixNano())
		log.Printf("[payment][gateway] mock transfer transfer_id=%s amount=%d", id, req.AmountCents)
		return id, nil
	}
	if g == nil || g.sc == nil {
		return "", ErrStripeGatewayNotConfigured
	}

	params := &stripe.TransferParams{
		Amount:      stripe.Int64(int64(req.AmountCents)),
		Currency:    stripe.String(req.Currency),
		Destination: stripe.String(req.DestinationAccountID),
		Description: stripe.String(req.Description),
	}
	for k, v := range req.Metadata {
		params.AddMetadata(k, v)
	}
	if req.IdempotencyKey != "" {
		params.SetIdempotencyKey(req.IdempotencyKey)
	}
	params.Context = ctx

	t, err := g.sc.Transfers.New(params)
	if err != nil {
		log.Printf("[payment][gateway] transfer create failed err=%v", err)
		return "", classifyStripeError(err)
	}
	log.Printf("[payment][gateway] transfer created transfer_id=%s amount=%d", t.ID, t.Amount)
	return t.ID, nil
}

func (g *StripeGateway) mockHold(req interfaces.HoldRequest) entities.ProcessorHold {
	id := fmt.Sprintf("pi_mock_%d", time.Now().UTC().UnixNano())
	log.Printf("[payment][gateway] mock hold intent_id=%s amount=%d", id, req.AmountCents)
	return entities.ProcessorHold{
		ID:           id,
		Status:       entities.HoldStatusRequiresCapture,
		AmountCents:  req.AmountCents,
		ClientSecret: id + "_secret_mock",
		Metadata:     req.Metadata,
	}
}

func fromPaymentIntent(pi *stripe.PaymentIntent) entities.ProcessorHold {
	hold := entities.ProcessorHold{
		ID:           pi.ID,
		Status:       entities.HoldStatus(pi.Status),
		AmountCents:  entities.Cents(pi.Amount),
		ClientSecret: pi.ClientSecret,
		Metadata:     pi.Metadata,
	}
	if pi.LatestCharge != nil {
		hold.LatestChargeID = pi.LatestCharge.ID
	}
	return hold
}

// classifyStripeError maps card and account declines onto the sentinels the
// orchestrator branches on. Anything unrecognized passes through unchanged.
func classifyStripeError(err error) error {
	var sErr *stripe.Error
	if !errors.As(err, &sErr) {
		return err
	}

	switch {
	case sErr.Code == stripe.ErrorCodeCardDeclined,
		sErr.Code == stripe.ErrorCodeExpiredCard,
		sErr.Code == stripe.ErrorCodeIncorrectCVC,
		sErr.Type == stripe.ErrorTypeCard:
		return fmt.Errorf("%w: %s", interfaces.ErrCardDeclined, sErr.Msg)
	case sErr.Code == stripe.ErrorCodeResourceMissing && sErr.Param == "payment_method",
		sErr.Code == stripe.ErrorCodePaymentIntentPaymentAttemptFailed:
		return fmt.Errorf("%w: %s", interfaces.ErrNoPaymentMethod, sErr.Msg)
	case strings.Contains(string(sErr.Code), "account"),
		strings.Contains(sErr.Msg, "destination"):
		return fmt.Errorf("%w: %s", interfaces.ErrAccountNotChargeable, sErr.Msg)
	}
	return err
}

func isPaymentGatewayMockEnabled() bool {
	for _, key := range []string{"PAYMENT_GATEWAY_MOCK", "STRIPE_MOCK"} {
		v := strings.ToLower(strings.TrimSpace(os.Getenv(key)))
		switch v {
		case "1", "true", "yes", "on", "mock":
			return true
		}
	}
	return false
}
