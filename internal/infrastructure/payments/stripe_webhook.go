package payments

import (
	"encoding/json"
	"errors"
	"log"

	"github.com/stripe/stripe-go/v82/webhook"

	"wrenchgo_payments/internal/domain/entities"
	"wrenchgo_payments/internal/usecase/interfaces"
)

var ErrMissingWebhookSecret = errors.New("missing STRIPE_WEBHOOK_SECRET")

// StripeWebhookVerifier authenticates deliveries against the endpoint's
// signing secret. In mock mode the signature check is skipped so local tools
// can post synthetic events.

type StripeWebhookVerifier struct {
	signingSecret string
	mockMode      bool
}

var _ interfaces.IWebhookVerifier = (*StripeWebhookVerifier)(nil)

func NewStripeWebhookVerifier(signingSecret string) (*StripeWebhookVerifier, error) {
	if isPaymentGatewayMockEnabled() {
		log.Printf("[webhook][verifier] mock mode enabled, signatures not checked")
		return &StripeWebhookVerifier{mockMode: true}, nil
	}
	if signingSecret == "" {
		return nil, ErrMissingWebhookSecret
	}
	return &StripeWebhookVerifier{signingSecret: signingSecret}, nil
}

func (v *StripeWebhookVerifier) VerifyAndParse(payload []byte, signatureHeader string) (entities.ProcessorEvent, error) {
	if v.mockMode {
		var ev entities.ProcessorEvent
		if err := json.Unmarshal(payload, &ev); err != nil {
			return entities.ProcessorEvent{}, err
		}
		return ev, nil
	}

	stripeEvent, err := webhook.ConstructEvent(payload, signatureHeader, v.signingSecret)
	if err != nil {
		return entities.ProcessorEvent{}, err
	}

	// Re-wrap the object so handlers see the same {"object": ...} envelope a
	// raw delivery carries.
	data, err := json.Marshal(map[string]json.RawMessage{"object": stripeEvent.Data.Raw})
	if err != nil {
		return entities.ProcessorEvent{}, err
	}

	return entities.ProcessorEvent{
		ID:      stripeEvent.ID,
		Type:    string(stripeEvent.Type),
		Account: stripeEvent.Account,
		Data:    data,
	}, nil
}
