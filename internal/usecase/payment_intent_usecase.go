package usecase

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/google/uuid"

	"wrenchgo_payments/internal/domain/entities"
	"wrenchgo_payments/internal/usecase/interfaces"
)

var (
	ErrInvalidJobID            = errors.New("invalid job_id")
	ErrJobNotFound             = errors.New("job not found")
	ErrNotJobCustomer          = errors.New("only the job customer can initiate payment")
	ErrJobNotCompleted         = errors.New("job not completed yet")
	ErrCompletionNotVerified   = errors.New("both parties must verify completion")
	ErrInvoiceNotFound         = errors.New("invoice not found")
	ErrInvoiceNotLocked        = errors.New("invoice not locked")
	ErrMechanicNotOnboarded    = errors.New("mechanic not onboarded for payouts")
	ErrMechanicAccountNotReady = errors.New("mechanic payout account not ready for payments")
	ErrPaymentNotFound         = errors.New("payment not found")
	ErrAmountTooLow            = errors.New("payment amount below processor minimum")
	ErrNegativeNetAmount       = errors.New("discount exceeds payment total")
	ErrHoldDeclined            = errors.New("processor declined the authorization hold")
	ErrCustomerNoPaymentMethod = errors.New("customer has no valid payment method")
)

const statementSuffix = "WRENCHGO"

// CreatePaymentResult is returned by CreateOrGetPayment. Amounts are integer
// cents; HoldToken/ClientSecret identify the processor hold the client
// confirms.

type CreatePaymentResult struct {
	PaymentID           string
	HoldToken           string
	ClientSecret        string
	Status              entities.PaymentStatus
	NetAmountCents      entities.Cents
	OriginalAmountCents entities.Cents
	DiscountCents       entities.Cents
	FeeAfterCents       entities.Cents
	PromoCreditType     entities.PromoCreditType
	AlreadyExists       bool
}

// IPaymentIntentUseCase is the payment intent orchestrator: it builds the
// payment row, applies at most one promo credit, and requests the
// authorization hold from the processor.

type IPaymentIntentUseCase interface {
	CreateOrGetPayment(ctx context.Context, jobID, userID string) (CreatePaymentResult, error)
	GetPaymentStatus(ctx context.Context, jobID string) (entities.Payment, error)
}

type PaymentIntentUseCase struct {
	paymentRepo interfaces.IPaymentRepository
	jobRepo     interfaces.IJobRepository
	invoiceRepo interfaces.IInvoiceRepository
	accountRepo interfaces.IPayoutAccountRepository
	profileRepo interfaces.ICustomerProfileRepository
	promos      IPromoUseCase
	gateway     interfaces.IPaymentGateway
}

var _ IPaymentIntentUseCase = (*PaymentIntentUseCase)(nil)

func NewPaymentIntentUseCase(
	paymentRepo interfaces.IPaymentRepository,
	jobRepo interfaces.IJobRepository,
	invoiceRepo interfaces.IInvoiceRepository,
	accountRepo interfaces.IPayoutAccountRepository,
	profileRepo interfaces.ICustomerProfileRepository,
	promos IPromoUseCase,
	gateway interfaces.IPaymentGateway,
) *PaymentIntentUseCase {
	return &PaymentIntentUseCase{
		paymentRepo: paymentRepo,
		jobRepo:     jobRepo,
		invoiceRepo: invoiceRepo,
		accountRepo: accountRepo,
		profileRepo: profileRepo,
		promos:      promos,
		gateway:     gateway,
	}
}

// CreateOrGetPayment is idempotent by job: a non-terminal payment that
// already carries a processor hold is returned unchanged instead of creating
// a duplicate hold. The hold itself is guarded by a deterministic idempotency
// key derived from the payment id, so a client retry that races the local
// write still cannot double-reserve funds.
func (u *PaymentIntentUseCase) CreateOrGetPayment(ctx context.Context, jobID, userID string) (CreatePaymentResult, error) {
	jobID = strings.TrimSpace(jobID)
	if jobID == "" {
		return CreatePaymentResult{}, ErrInvalidJobID
	}
	log.Printf("[payment][usecase] create-or-get start job_id=%s user_id=%s", jobID, userID)

	job, err := u.jobRepo.GetByID(ctx, jobID)
	if err != nil {
		return CreatePaymentResult{}, err
	}
	if job.ID == "" {
		return CreatePaymentResult{}, ErrJobNotFound
	}
	if job.CustomerID != userID {
		return CreatePaymentResult{}, ErrNotJobCustomer
	}
	if job.Status != entities.JobStatusCompleted {
		return CreatePaymentResult{}, ErrJobNotCompleted
	}
	if job.MechanicVerifiedAt == nil || job.CustomerVerifiedAt == nil {
		return CreatePaymentResult{}, ErrCompletionNotVerified
	}

	invoice, err := u.invoiceRepo.GetByJobID(ctx, jobID)
	if err != nil {
		return CreatePaymentResult{}, err
	}
	if invoice.ID == "" {
		return CreatePaymentResult{}, ErrInvoiceNotFound
	}
	if invoice.Status != entities.InvoiceStatusLocked {
		return CreatePaymentResult{}, ErrInvoiceNotLocked
	}
	log.Printf("[payment][usecase] invoice loaded job_id=%s invoice_id=%s total_cents=%d fee_cents=%d",
		jobID, invoice.ID, invoice.TotalCents, invoice.PlatformFeeCents)

	account, err := u.accountRepo.GetByMechanicID(ctx, job.MechanicID)
	if err != nil {
		return CreatePaymentResult{}, err
	}
	if account.StripeAccountID == "" {
		return CreatePaymentResult{}, ErrMechanicNotOnboarded
	}
	if !account.OnboardingCompleted || !account.ChargesEnabled {
		return CreatePaymentResult{}, ErrMechanicAccountNotReady
	}

	profile, err := u.profileRepo.GetByUserID(ctx, userID)
	if err != nil {
		return CreatePaymentResult{}, err
	}
	if profile.StripeCustomerID == "" || profile.DefaultPaymentMethod == "" {
		return CreatePaymentResult{}, ErrCustomerNoPaymentMethod
	}

	payment, alreadyHeld, err := u.findOrCreatePayment(ctx, jobID, job, invoice, account)
	if err != nil {
		return CreatePaymentResult{}, err
	}
	if alreadyHeld {
		log.Printf("[payment][usecase] returning existing payment job_id=%s payment_id=%s status=%s",
			jobID, payment.ID, payment.Status)
		return CreatePaymentResult{
			PaymentID:           payment.ID,
			HoldToken:           payment.StripePaymentIntentID,
			ClientSecret:        payment.ClientSecret,
			Status:              payment.Status,
			NetAmountCents:      payment.AmountCents,
			OriginalAmountCents: payment.OriginalAmountCents,
			DiscountCents:       payment.PromoDiscountCents,
			FeeAfterCents:       payment.PlatformFeeCents,
			AlreadyExists:       true,
		}, nil
	}

	// Promo is invoked exactly once per payment; a replay lands on the
	// existing PromoApplication and comes back applied=false.
	outcome, err := u.promos.ApplyPromo(ctx, payment.ID, userID)
	if err != nil {
		// Promo failure must not fail the payment; proceed undiscounted.
		log.Printf("[payment][usecase] promo application error (non-fatal) payment_id=%s err=%v", payment.ID, err)
		outcome = entities.PromoOutcome{Applied: false, FeeAfterCents: invoice.PlatformFeeCents}
	}

	// A replay reports applied=false but still carries the recorded amounts;
	// the hold must honor them or a retried request prices the undiscounted
	// total and the authorize amount check can never pass again.
	discount := entities.Cents(0)
	feeAfter := invoice.PlatformFeeCents
	if outcome.Applied || outcome.DiscountCents > 0 {
		discount = outcome.DiscountCents
		feeAfter = outcome.FeeAfterCents
	}

	if discount > invoice.TotalCents {
		// A discount larger than the total is a misconfigured fee/credit
		// table, not user input.
		log.Printf("[payment][usecase] FATAL discount exceeds total payment_id=%s discount=%d total=%d",
			payment.ID, discount, invoice.TotalCents)
		return CreatePaymentResult{}, ErrNegativeNetAmount
	}
	netTotal := invoice.TotalCents - discount
	if netTotal < entities.MinChargeCents {
		return CreatePaymentResult{}, ErrAmountTooLow
	}

	log.Printf("[payment][usecase] amounts payment_id=%s total=%d transfer=%d fee=%d discount=%d",
		payment.ID, netTotal, invoice.MechanicNetCents, feeAfter, discount)

	hold, err := u.gateway.CreateHold(ctx, interfaces.HoldRequest{
		AmountCents:          netTotal,
		Currency:             entities.Currency,
		CustomerID:           profile.StripeCustomerID,
		PaymentMethodID:      profile.DefaultPaymentMethod,
		DestinationAccountID: account.StripeAccountID,
		TransferAmountCents:  invoice.MechanicNetCents,
		Description:          fmt.Sprintf("WrenchGo Job #%s: %s", shortID(jobID), job.Title),
		StatementSuffix:      statementSuffix,
		Metadata: map[string]string{
			"job_id":                     jobID,
			"invoice_id":                 invoice.ID,
			"payment_id":                 payment.ID,
			"customer_id":                job.CustomerID,
			"mechanic_id":                job.MechanicID,
			"mechanic_stripe_account_id": account.StripeAccountID,
			"total_cents":                fmt.Sprintf("%d", netTotal),
			"transfer_cents":             fmt.Sprintf("%d", invoice.MechanicNetCents),
			"platform_fee_cents":         fmt.Sprintf("%d", feeAfter),
			"discount_cents":             fmt.Sprintf("%d", discount),
			"promo_credit_type":          string(outcome.CreditType),
		},
		IdempotencyKey: fmt.Sprintf("pi_%s_v2", payment.ID),
	})
	if err != nil {
		// The payment stays non-terminal: only the processor's asynchronous
		// event may mark it failed, so we never race the webhook path.
		log.Printf("[payment][usecase] hold creation failed payment_id=%s err=%v", payment.ID, err)
		switch {
		case errors.Is(err, interfaces.ErrNoPaymentMethod):
			return CreatePaymentResult{}, ErrCustomerNoPaymentMethod
		case errors.Is(err, interfaces.ErrCardDeclined), errors.Is(err, interfaces.ErrAccountNotChargeable):
			return CreatePaymentResult{}, ErrHoldDeclined
		}
		return CreatePaymentResult{}, err
	}
	log.Printf("[payment][usecase] hold created payment_id=%s hold_id=%s status=%s", payment.ID, hold.ID, hold.Status)

	status := entities.PaymentStatusForHold(hold.Status)
	if err := u.paymentRepo.AttachHold(ctx, payment.ID, hold, status); err != nil {
		// Hold exists; the webhook path reconciles by processor reference.
		log.Printf("[payment][usecase] attach-hold persist failed payment_id=%s hold_id=%s err=%v", payment.ID, hold.ID, err)
	}

	return CreatePaymentResult{
		PaymentID:           payment.ID,
		HoldToken:           hold.ID,
		ClientSecret:        hold.ClientSecret,
		Status:              status,
		NetAmountCents:      netTotal,
		OriginalAmountCents: invoice.TotalCents,
		DiscountCents:       discount,
		FeeAfterCents:       feeAfter,
		PromoCreditType:     outcome.CreditType,
		AlreadyExists:       false,
	}, nil
}

// findOrCreatePayment returns (payment, alreadyHeld). A non-terminal payment
// with a hold short-circuits; a pending_hold row without one is reused as the
// anchor so the retried request continues from where the first attempt died.
func (u *PaymentIntentUseCase) findOrCreatePayment(
	ctx context.Context,
	jobID string,
	job entities.Job,
	invoice entities.JobInvoice,
	account entities.PayoutAccount,
) (entities.Payment, bool, error) {
	existingList, err := u.paymentRepo.ListByJobID(ctx, jobID)
	if err != nil {
		return entities.Payment{}, false, err
	}
	for _, p := range existingList {
		if p.Status.Terminal() {
			continue
		}
		if p.StripePaymentIntentID != "" {
			return p, true, nil
		}
		return p, false, nil
	}

	now := time.Now().UTC()
	payment := entities.Payment{
		ID:                      uuid.NewString(),
		JobID:                   jobID,
		InvoiceID:               invoice.ID,
		CustomerID:              job.CustomerID,
		MechanicID:              job.MechanicID,
		AmountCents:             invoice.TotalCents,
		PlatformFeeCents:        invoice.PlatformFeeCents,
		OriginalFeeCents:        invoice.PlatformFeeCents,
		OriginalAmountCents:     invoice.TotalCents,
		MechanicNetCents:        invoice.MechanicNetCents,
		Status:                  entities.PaymentStatusPendingHold,
		MechanicStripeAccountID: account.StripeAccountID,
		CreatedAt:               now,
		UpdatedAt:               now,
	}
	created, err := u.paymentRepo.Create(ctx, payment)
	if err != nil {
		return entities.Payment{}, false, err
	}
	log.Printf("[payment][usecase] payment record created job_id=%s payment_id=%s", jobID, created.ID)
	return created, false, nil
}

// GetPaymentStatus returns the most recent payment for a job.
func (u *PaymentIntentUseCase) GetPaymentStatus(ctx context.Context, jobID string) (entities.Payment, error) {
	jobID = strings.TrimSpace(jobID)
	if jobID == "" {
		return entities.Payment{}, ErrInvalidJobID
	}

	payments, err := u.paymentRepo.ListByJobID(ctx, jobID)
	if err != nil {
		return entities.Payment{}, err
	}
	if len(payments) == 0 {
		return entities.Payment{}, ErrPaymentNotFound
	}

	latest := payments[0]
	for _, p := range payments[1:] {
		if p.CreatedAt.After(latest.CreatedAt) {
			latest = p
		}
	}
	return latest, nil
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}
