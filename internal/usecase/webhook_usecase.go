package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"

	"wrenchgo_payments/internal/domain/entities"
	"wrenchgo_payments/internal/usecase/interfaces"
)

var ErrWebhookPaymentNotFound = errors.New("no payment record for processor event")

// IWebhookUseCase processes verified processor events exactly once. The
// transport acks (HTTP 200) whenever Process returns nil; a non-nil error
// makes the provider redeliver.

type IWebhookUseCase interface {
	Process(ctx context.Context, ev entities.ProcessorEvent) error
}

type eventHandler func(ctx context.Context, ev entities.ProcessorEvent) error

type WebhookUseCase struct {
	eventRepo    interfaces.IWebhookEventRepository
	paymentRepo  interfaces.IPaymentRepository
	jobRepo      interfaces.IJobRepository
	invoiceRepo  interfaces.IInvoiceRepository
	accountRepo  interfaces.IPayoutAccountRepository
	profileRepo  interfaces.ICustomerProfileRepository
	ledgerUC     ILedgerUseCase
	invitationUC IInvitationUseCase
	notifier     interfaces.INotifier
	alerter      interfaces.IOpsAlerter

	handlers map[string]eventHandler
}

var _ IWebhookUseCase = (*WebhookUseCase)(nil)

func NewWebhookUseCase(
	eventRepo interfaces.IWebhookEventRepository,
	paymentRepo interfaces.IPaymentRepository,
	jobRepo interfaces.IJobRepository,
	invoiceRepo interfaces.IInvoiceRepository,
	accountRepo interfaces.IPayoutAccountRepository,
	profileRepo interfaces.ICustomerProfileRepository,
	ledgerUC ILedgerUseCase,
	invitationUC IInvitationUseCase,
	notifier interfaces.INotifier,
	alerter interfaces.IOpsAlerter,
) *WebhookUseCase {
	u := &WebhookUseCase{
		eventRepo:    eventRepo,
		paymentRepo:  paymentRepo,
		jobRepo:      jobRepo,
		invoiceRepo:  invoiceRepo,
		accountRepo:  accountRepo,
		profileRepo:  profileRepo,
		ledgerUC:     ledgerUC,
		invitationUC: invitationUC,
		notifier:     notifier,
		alerter:      alerter,
	}
	u.handlers = map[string]eventHandler{
		"payment_intent.succeeded":                 u.handleHoldSucceeded,
		"payment_intent.payment_failed":            u.handleHoldFailed,
		"payment_intent.canceled":                  u.handleHoldCanceled,
		"payment_intent.amount_capturable_updated": u.handleHoldAuthorized,
		"payment_intent.processing":                u.handleHoldProgress,
		"payment_intent.requires_action":           u.handleHoldProgress,
		"charge.refunded":                          u.handleChargeRefunded,
		"charge.dispute.created":                   u.handleDisputeCreated,
		"payment_method.attached":                  u.handlePaymentMethodAttached,
		"payment_method.detached":                  u.handlePaymentMethodDetached,
		"account.updated":                          u.handleAccountUpdated,
		"transfer.created":                         u.handleTransferCreated,
		"transfer.reversed":                        u.handleTransferReversed,
		"payout.paid":                              u.handlePayoutPaid,
		"payout.failed":                            u.handlePayoutFailed,
	}
	return u
}

// Process runs the handler for the event type behind the dedup fence. The
// dedup row is written only after every side effect succeeded, so a failed
// delivery is retried in full rather than silently skipped.
func (u *WebhookUseCase) Process(ctx context.Context, ev entities.ProcessorEvent) error {
	seen, err := u.eventRepo.Exists(ctx, ev.ID)
	if err != nil {
		return err
	}
	if seen {
		log.Printf("[webhook][usecase] duplicate event skipped event_id=%s type=%s", ev.ID, ev.Type)
		return nil
	}

	handler, ok := u.handlers[ev.Type]
	if !ok {
		log.Printf("[webhook][usecase] unhandled event type event_id=%s type=%s", ev.ID, ev.Type)
	} else if err := handler(ctx, ev); err != nil {
		log.Printf("[webhook][usecase] handler failed event_id=%s type=%s err=%v", ev.ID, ev.Type, err)
		return err
	}

	if err := u.eventRepo.RecordProcessed(ctx, entities.WebhookEvent{
		StripeEventID: ev.ID,
		EventType:     ev.Type,
		Processed:     true,
		ProcessedAt:   time.Now().UTC(),
	}); err != nil {
		if errors.Is(err, interfaces.ErrConflict) {
			// Concurrent delivery beat us to the record; both ran the same
			// idempotent side effects.
			return nil
		}
		return err
	}

	log.Printf("[webhook][usecase] processed event_id=%s type=%s", ev.ID, ev.Type)
	return nil
}

// Provider payloads. Only the fields handlers read are declared; everything
// else stays in the raw message.

type paymentIntentPayload struct {
	ID               string            `json:"id"`
	Amount           int64             `json:"amount"`
	Status           string            `json:"status"`
	LatestCharge     string            `json:"latest_charge"`
	Metadata         map[string]string `json:"metadata"`
	LastPaymentError *struct {
		Message string `json:"message"`
	} `json:"last_payment_error"`
}

type chargePayload struct {
	ID             string `json:"id"`
	PaymentIntent  string `json:"payment_intent"`
	Amount         int64  `json:"amount"`
	AmountRefunded int64  `json:"amount_refunded"`
	Refunded       bool   `json:"refunded"`
}

type disputePayload struct {
	ID     string `json:"id"`
	Charge string `json:"charge"`
	Reason string `json:"reason"`
	Amount int64  `json:"amount"`
}

type paymentMethodPayload struct {
	ID       string `json:"id"`
	Customer string `json:"customer"`
}

type accountPayload struct {
	ID               string `json:"id"`
	ChargesEnabled   bool   `json:"charges_enabled"`
	PayoutsEnabled   bool   `json:"payouts_enabled"`
	DetailsSubmitted bool   `json:"details_submitted"`
}

type transferPayload struct {
	ID string `json:"id"`
}

type payoutPayload struct {
	ID             string `json:"id"`
	ArrivalDate    int64  `json:"arrival_date"`
	FailureMessage string `json:"failure_message"`
}

func decodeObject(ev entities.ProcessorEvent, out any) error {
	var envelope struct {
		Object json.RawMessage `json:"object"`
	}
	if err := json.Unmarshal(ev.Data, &envelope); err != nil {
		return fmt.Errorf("decode event %s envelope: %w", ev.ID, err)
	}
	if err := json.Unmarshal(envelope.Object, out); err != nil {
		return fmt.Errorf("decode event %s object: %w", ev.ID, err)
	}
	return nil
}

// paymentForIntent resolves the internal payment row for a payment_intent
// event, falling back to the metadata payment_id when the synchronous path
// never persisted the hold identifiers.
func (u *WebhookUseCase) paymentForIntent(ctx context.Context, pi paymentIntentPayload) (entities.Payment, error) {
	p, err := u.paymentRepo.GetByPaymentIntentID(ctx, pi.ID)
	if err != nil {
		return entities.Payment{}, err
	}
	if p.ID != "" {
		return p, nil
	}

	if paymentID := pi.Metadata["payment_id"]; paymentID != "" {
		p, err = u.paymentRepo.GetByID(ctx, paymentID)
		if err != nil {
			return entities.Payment{}, err
		}
		if p.ID != "" {
			log.Printf("[webhook][usecase] payment resolved via metadata payment_id=%s intent_id=%s", p.ID, pi.ID)
			return p, nil
		}
	}
	return entities.Payment{}, fmt.Errorf("%w: intent_id=%s", ErrWebhookPaymentNotFound, pi.ID)
}

// handleHoldSucceeded finalizes a captured payment: the payment, invoice and
// job are stamped paid, the mechanic's earning is posted to the ledger, and
// the invitation engine gets its chance to award the inviter.
func (u *WebhookUseCase) handleHoldSucceeded(ctx context.Context, ev entities.ProcessorEvent) error {
	var pi paymentIntentPayload
	if err := decodeObject(ev, &pi); err != nil {
		return err
	}

	payment, err := u.paymentForIntent(ctx, pi)
	if err != nil {
		return err
	}
	if payment.Status == entities.PaymentStatusSucceeded && payment.PaidAt != nil {
		log.Printf("[webhook][usecase] payment already succeeded payment_id=%s", payment.ID)
	}

	// Keyed by the resolved payment id so a metadata-resolved payment (one
	// whose intent id never got persisted) settles on the first delivery; the
	// intent id is backfilled in the same write.
	now := time.Now().UTC()
	if err := u.paymentRepo.MarkSucceeded(ctx, payment.ID, pi.ID, pi.LatestCharge, now); err != nil {
		return err
	}
	payment.Status = entities.PaymentStatusSucceeded
	payment.StripeChargeID = pi.LatestCharge
	payment.PaidAt = &now

	if payment.InvoiceID != "" {
		if err := u.invoiceRepo.MarkPaid(ctx, payment.InvoiceID, now); err != nil {
			return err
		}
	}
	if err := u.jobRepo.MarkPaid(ctx, payment.JobID, now); err != nil {
		return err
	}

	if err := u.ledgerUC.PostEarning(ctx, payment, now); err != nil {
		return err
	}

	// Award failures never block settlement; the award table's own fence
	// keeps a later retry safe.
	if _, err := u.invitationUC.MaybeAward(ctx, payment, ev.ID); err != nil {
		log.Printf("[webhook][usecase] invitation award failed payment_id=%s err=%v", payment.ID, err)
	}

	u.notify(ctx, payment.CustomerID, "payment_succeeded", "Payment confirmed",
		fmt.Sprintf("Your payment of %s was processed.", entities.Cents(pi.Amount).Dollars()),
		map[string]string{"payment_id": payment.ID, "job_id": payment.JobID})
	u.notify(ctx, payment.MechanicID, "earning_posted", "You got paid",
		fmt.Sprintf("%s was added to your balance and will be released on the next payout.", payment.MechanicNetCents.Dollars()),
		map[string]string{"payment_id": payment.ID, "job_id": payment.JobID})

	return nil
}

func (u *WebhookUseCase) handleHoldFailed(ctx context.Context, ev entities.ProcessorEvent) error {
	var pi paymentIntentPayload
	if err := decodeObject(ev, &pi); err != nil {
		return err
	}

	msg := "payment failed"
	if pi.LastPaymentError != nil && pi.LastPaymentError.Message != "" {
		msg = pi.LastPaymentError.Message
	}

	payment, err := u.paymentForIntent(ctx, pi)
	if err != nil {
		// A failed intent with no row is noise from another system; ack it.
		log.Printf("[webhook][usecase] failed intent without payment intent_id=%s", pi.ID)
		return nil
	}
	// A late payment_failed delivery must not overwrite a settled payment.
	if payment.Status.Terminal() {
		return nil
	}

	if err := u.paymentRepo.UpdateStatus(ctx, payment.ID, entities.PaymentStatusFailed, msg); err != nil {
		return err
	}

	u.notify(ctx, payment.CustomerID, "payment_failed", "Payment failed",
		"Your payment could not be processed. Please check your payment method and try again.",
		map[string]string{"payment_id": payment.ID, "job_id": payment.JobID})
	return nil
}

func (u *WebhookUseCase) handleHoldCanceled(ctx context.Context, ev entities.ProcessorEvent) error {
	var pi paymentIntentPayload
	if err := decodeObject(ev, &pi); err != nil {
		return err
	}

	payment, err := u.paymentForIntent(ctx, pi)
	if err != nil {
		log.Printf("[webhook][usecase] canceled intent without payment intent_id=%s", pi.ID)
		return nil
	}
	if payment.Status.Terminal() {
		return nil
	}
	return u.paymentRepo.UpdateStatus(ctx, payment.ID, entities.PaymentStatusCancelled, "")
}

// handleHoldAuthorized records that funds are reserved (manual-capture flow).
func (u *WebhookUseCase) handleHoldAuthorized(ctx context.Context, ev entities.ProcessorEvent) error {
	var pi paymentIntentPayload
	if err := decodeObject(ev, &pi); err != nil {
		return err
	}
	if pi.Status != string(entities.HoldStatusRequiresCapture) {
		return nil
	}

	payment, err := u.paymentForIntent(ctx, pi)
	if err != nil {
		log.Printf("[webhook][usecase] authorized intent without payment intent_id=%s", pi.ID)
		return nil
	}
	if payment.Status.Terminal() {
		return nil
	}
	return u.paymentRepo.UpdateStatus(ctx, payment.ID, entities.PaymentStatusAuthorized, "")
}

// handleHoldProgress mirrors intermediate hold states (processing,
// requires_action) onto the payment row.
func (u *WebhookUseCase) handleHoldProgress(ctx context.Context, ev entities.ProcessorEvent) error {
	var pi paymentIntentPayload
	if err := decodeObject(ev, &pi); err != nil {
		return err
	}

	payment, err := u.paymentForIntent(ctx, pi)
	if err != nil {
		log.Printf("[webhook][usecase] progress event without payment intent_id=%s", pi.ID)
		return nil
	}
	if payment.Status.Terminal() {
		return nil
	}
	return u.paymentRepo.UpdateStatus(ctx, payment.ID, entities.PaymentStatusForHold(entities.HoldStatus(pi.Status)), "")
}

func (u *WebhookUseCase) handleChargeRefunded(ctx context.Context, ev entities.ProcessorEvent) error {
	var ch chargePayload
	if err := decodeObject(ev, &ch); err != nil {
		return err
	}

	payment, err := u.paymentRepo.GetByChargeID(ctx, ch.ID)
	if err != nil {
		return err
	}
	if payment.ID == "" && ch.PaymentIntent != "" {
		payment, err = u.paymentRepo.GetByPaymentIntentID(ctx, ch.PaymentIntent)
		if err != nil {
			return err
		}
	}
	if payment.ID == "" {
		return fmt.Errorf("%w: charge_id=%s", ErrWebhookPaymentNotFound, ch.ID)
	}

	status := entities.PaymentStatusPartiallyRefunded
	if ch.Refunded || ch.AmountRefunded >= ch.Amount {
		status = entities.PaymentStatusRefunded
	}
	if err := u.paymentRepo.UpdateStatus(ctx, payment.ID, status, ""); err != nil {
		return err
	}

	if status == entities.PaymentStatusRefunded {
		if payment.InvoiceID != "" {
			if err := u.invoiceRepo.UpdateStatus(ctx, payment.InvoiceID, entities.InvoiceStatusRefunded); err != nil {
				return err
			}
		}
		if err := u.ledgerUC.RefundEntry(ctx, payment.ID); err != nil && !errors.Is(err, ErrLedgerEntryNotFound) {
			return err
		}
	}

	u.notify(ctx, payment.CustomerID, "payment_refunded", "Refund issued",
		fmt.Sprintf("A refund of %s was issued for your payment.", entities.Cents(ch.AmountRefunded).Dollars()),
		map[string]string{"payment_id": payment.ID, "job_id": payment.JobID})
	return nil
}

func (u *WebhookUseCase) handleDisputeCreated(ctx context.Context, ev entities.ProcessorEvent) error {
	var d disputePayload
	if err := decodeObject(ev, &d); err != nil {
		return err
	}

	payment, err := u.paymentRepo.GetByChargeID(ctx, d.Charge)
	if err != nil {
		return err
	}
	if payment.ID == "" {
		u.alerter.Alert(ctx, "DISPUTE_UNMATCHED",
			"dispute opened for a charge with no payment record",
			map[string]string{"dispute_id": d.ID, "charge_id": d.Charge})
		return nil
	}

	if payment.InvoiceID != "" {
		if err := u.invoiceRepo.UpdateStatus(ctx, payment.InvoiceID, entities.InvoiceStatusDisputed); err != nil {
			return err
		}
	}
	if err := u.jobRepo.UpdateStatus(ctx, payment.JobID, entities.JobStatusDisputed); err != nil {
		return err
	}

	u.alerter.Alert(ctx, "DISPUTE_OPENED",
		"customer opened a dispute; respond before the processor deadline",
		map[string]string{
			"dispute_id": d.ID,
			"payment_id": payment.ID,
			"job_id":     payment.JobID,
			"reason":     d.Reason,
		})
	return nil
}

func (u *WebhookUseCase) handlePaymentMethodAttached(ctx context.Context, ev entities.ProcessorEvent) error {
	var pm paymentMethodPayload
	if err := decodeObject(ev, &pm); err != nil {
		return err
	}
	if pm.Customer == "" {
		return nil
	}

	profile, err := u.profileRepo.GetByStripeCustomerID(ctx, pm.Customer)
	if err != nil {
		return err
	}
	if profile.UserID == "" {
		log.Printf("[webhook][usecase] payment method for unknown customer stripe_customer_id=%s", pm.Customer)
		return nil
	}
	return u.profileRepo.UpdatePaymentMethodStatus(ctx, profile.UserID, "active")
}

func (u *WebhookUseCase) handlePaymentMethodDetached(ctx context.Context, ev entities.ProcessorEvent) error {
	var pm paymentMethodPayload
	if err := decodeObject(ev, &pm); err != nil {
		return err
	}
	// The detached object no longer references its customer; nothing to update
	// here, and the flag is corrected on the next attach.
	if pm.Customer == "" {
		log.Printf("[webhook][usecase] detached method without customer payment_method_id=%s", pm.ID)
		return nil
	}

	profile, err := u.profileRepo.GetByStripeCustomerID(ctx, pm.Customer)
	if err != nil {
		return err
	}
	if profile.UserID == "" {
		return nil
	}
	return u.profileRepo.UpdatePaymentMethodStatus(ctx, profile.UserID, "detached")
}

func (u *WebhookUseCase) handleAccountUpdated(ctx context.Context, ev entities.ProcessorEvent) error {
	var acc accountPayload
	if err := decodeObject(ev, &acc); err != nil {
		return err
	}

	return u.accountRepo.UpdateFromAccount(ctx, entities.PayoutAccount{
		StripeAccountID:     acc.ID,
		ChargesEnabled:      acc.ChargesEnabled,
		PayoutsEnabled:      acc.PayoutsEnabled,
		DetailsSubmitted:    acc.DetailsSubmitted,
		OnboardingCompleted: acc.ChargesEnabled && acc.DetailsSubmitted,
	})
}

func (u *WebhookUseCase) handleTransferCreated(ctx context.Context, ev entities.ProcessorEvent) error {
	var t transferPayload
	if err := decodeObject(ev, &t); err != nil {
		return err
	}
	return u.ledgerUC.ConfirmTransfer(ctx, t.ID)
}

func (u *WebhookUseCase) handleTransferReversed(ctx context.Context, ev entities.ProcessorEvent) error {
	var t transferPayload
	if err := decodeObject(ev, &t); err != nil {
		return err
	}
	return u.ledgerUC.FailTransfer(ctx, t.ID, "transfer reversed by processor")
}

func (u *WebhookUseCase) handlePayoutPaid(ctx context.Context, ev entities.ProcessorEvent) error {
	var p payoutPayload
	if err := decodeObject(ev, &p); err != nil {
		return err
	}
	if ev.Account == "" {
		// Platform-account payouts do not touch the mechanic ledger.
		return nil
	}

	at := time.Now().UTC()
	if p.ArrivalDate > 0 {
		at = time.Unix(p.ArrivalDate, 0).UTC()
	}
	return u.ledgerUC.MarkPayoutPaid(ctx, ev.Account, p.ID, at)
}

func (u *WebhookUseCase) handlePayoutFailed(ctx context.Context, ev entities.ProcessorEvent) error {
	var p payoutPayload
	if err := decodeObject(ev, &p); err != nil {
		return err
	}

	u.alerter.Alert(ctx, "PAYOUT_FAILED",
		"bank payout to a mechanic failed; check the connected account's bank details",
		map[string]string{
			"payout_id":  p.ID,
			"account_id": ev.Account,
			"failure":    p.FailureMessage,
		})
	return nil
}

func (u *WebhookUseCase) notify(ctx context.Context, userID, kind, title, body string, data map[string]string) {
	if userID == "" {
		return
	}
	if err := u.notifier.Notify(ctx, entities.Notification{
		ID:        uuid.NewString(),
		UserID:    userID,
		Type:      kind,
		Title:     title,
		Body:      body,
		Data:      data,
		CreatedAt: time.Now().UTC(),
	}); err != nil {
		log.Printf("[webhook][usecase] notification failed user_id=%s type=%s err=%v", userID, kind, err)
	}
}
