package usecase

import (
	"context"
	"errors"
	"log"
	"strings"
	"time"

	"wrenchgo_payments/internal/domain/entities"
	"wrenchgo_payments/internal/usecase/interfaces"
)

var (
	ErrInvalidPromoPaymentID = errors.New("invalid payment id")
	ErrInvalidPromoUserID    = errors.New("invalid user id")
	ErrInvalidPromotionCode  = errors.New("invalid promotion code")
	ErrPromoPaymentNotFound  = errors.New("payment not found for promo application")
)

const (
	reasonNoPlatformFee  = "No platform fee to discount"
	reasonAlreadyApplied = "Promo already applied to this payment"
	reasonNoCredits      = "No promo credits available"
	reasonConflict       = "Promo no longer available"
)

// CreditsBalance summarizes a user's remaining promo credits.

type CreditsBalance struct {
	FeelessCredits  int `json:"feeless_credits"`
	Feeless5Credits int `json:"feeless5_credits"`
	TotalCredits    int `json:"total_credits"`
}

// PromotionValidation is the outcome of checking an opt-in promo code.

type PromotionValidation struct {
	Valid         bool           `json:"valid"`
	Code          string         `json:"code,omitempty"`
	DiscountCents entities.Cents `json:"discount_cents"`
	Reason        string         `json:"reason,omitempty"`
}

// IPromoUseCase is the promo credit ledger: it selects and atomically
// consumes at most one credit per payment, and validates opt-in promotion
// codes (a separate path from auto-applied referral credits).

type IPromoUseCase interface {
	ApplyPromo(ctx context.Context, paymentID, userID string) (entities.PromoOutcome, error)
	PreviewDiscount(ctx context.Context, userID string, platformFeeCents entities.Cents) (entities.PromoOutcome, error)
	CreditsBalance(ctx context.Context, userID string) (CreditsBalance, error)
	ValidatePromotionCode(ctx context.Context, code string, quoteAmountCents entities.Cents) (PromotionValidation, error)
}

type PromoUseCase struct {
	promoRepo     interfaces.IPromoRepository
	promotionRepo interfaces.IPromotionRepository
	paymentRepo   interfaces.IPaymentRepository
}

var _ IPromoUseCase = (*PromoUseCase)(nil)

func NewPromoUseCase(promoRepo interfaces.IPromoRepository, promotionRepo interfaces.IPromotionRepository, paymentRepo interfaces.IPaymentRepository) *PromoUseCase {
	return &PromoUseCase{promoRepo: promoRepo, promotionRepo: promotionRepo, paymentRepo: paymentRepo}
}

// ApplyPromo consumes at most one of the user's credits against the payment's
// platform fee. All failure modes short of infrastructure errors resolve to
// an applied=false outcome so the caller can proceed with the undiscounted
// fee; the payment must never fail because a promo could not be applied.
func (u *PromoUseCase) ApplyPromo(ctx context.Context, paymentID, userID string) (entities.PromoOutcome, error) {
	paymentID = strings.TrimSpace(paymentID)
	userID = strings.TrimSpace(userID)
	if paymentID == "" {
		return entities.PromoOutcome{}, ErrInvalidPromoPaymentID
	}
	if userID == "" {
		return entities.PromoOutcome{}, ErrInvalidPromoUserID
	}

	payment, err := u.paymentRepo.GetByID(ctx, paymentID)
	if err != nil {
		return entities.PromoOutcome{}, err
	}
	if payment.ID == "" {
		return entities.PromoOutcome{}, ErrPromoPaymentNotFound
	}

	// Retried orchestration calls must not double-consume a credit.
	existing, err := u.promoRepo.GetApplicationByPaymentID(ctx, paymentID)
	if err != nil {
		return entities.PromoOutcome{}, err
	}
	if existing.PaymentID != "" {
		log.Printf("[promo][usecase] already applied payment_id=%s credit_type=%s", paymentID, existing.CreditType)
		return entities.PromoOutcome{
			Applied:       false,
			CreditType:    existing.CreditType,
			DiscountCents: existing.DiscountCents,
			FeeAfterCents: existing.FeeAfterCents,
			Reason:        reasonAlreadyApplied,
		}, nil
	}

	fee := payment.PlatformFeeCents
	if fee <= 0 {
		return entities.PromoOutcome{Applied: false, Reason: reasonNoPlatformFee}, nil
	}

	credits, err := u.promoRepo.ListActiveCreditsByUser(ctx, userID)
	if err != nil {
		return entities.PromoOutcome{}, err
	}
	if len(credits) == 0 {
		return entities.PromoOutcome{Applied: false, FeeAfterCents: fee, Reason: reasonNoCredits}, nil
	}

	// Repo ordering: full waivers before partial discounts, oldest first
	// within the same type.
	credit := credits[0]
	discount := credit.DiscountFor(fee)
	feeAfter := fee.Sub(discount)

	app := entities.PromoApplication{
		PaymentID:     paymentID,
		PromoCreditID: credit.ID,
		UserID:        userID,
		CreditType:    credit.CreditType,
		DiscountCents: discount,
		FeeAfterCents: feeAfter,
		AppliedAt:     time.Now().UTC(),
	}

	updated := payment
	updated.AmountCents = payment.AmountCents.Sub(discount)
	updated.PlatformFeeCents = feeAfter
	updated.PromoDiscountCents = discount
	updated.UpdatedAt = app.AppliedAt

	if err := u.promoRepo.ApplyCreditAtomic(ctx, app, updated); err != nil {
		if errors.Is(err, interfaces.ErrConflict) {
			// Lost the race for the credit's last use or for the payment's
			// single application slot. Proceed without a promo.
			log.Printf("[promo][usecase] apply conflict payment_id=%s credit_id=%s", paymentID, credit.ID)
			return entities.PromoOutcome{Applied: false, FeeAfterCents: fee, Reason: reasonConflict}, nil
		}
		return entities.PromoOutcome{}, err
	}

	log.Printf("[promo][usecase] applied payment_id=%s credit_type=%s discount_cents=%d fee_after_cents=%d",
		paymentID, credit.CreditType, discount, feeAfter)

	return entities.PromoOutcome{
		Applied:       true,
		CreditType:    credit.CreditType,
		DiscountCents: discount,
		FeeAfterCents: feeAfter,
	}, nil
}

// PreviewDiscount computes what ApplyPromo would do without consuming
// anything.
func (u *PromoUseCase) PreviewDiscount(ctx context.Context, userID string, platformFeeCents entities.Cents) (entities.PromoOutcome, error) {
	userID = strings.TrimSpace(userID)
	if userID == "" {
		return entities.PromoOutcome{}, ErrInvalidPromoUserID
	}
	if platformFeeCents <= 0 {
		return entities.PromoOutcome{Applied: false, Reason: reasonNoPlatformFee}, nil
	}

	credits, err := u.promoRepo.ListActiveCreditsByUser(ctx, userID)
	if err != nil {
		return entities.PromoOutcome{}, err
	}
	if len(credits) == 0 {
		return entities.PromoOutcome{Applied: false, FeeAfterCents: platformFeeCents, Reason: reasonNoCredits}, nil
	}

	credit := credits[0]
	discount := credit.DiscountFor(platformFeeCents)
	return entities.PromoOutcome{
		Applied:       true,
		CreditType:    credit.CreditType,
		DiscountCents: discount,
		FeeAfterCents: platformFeeCents.Sub(discount),
	}, nil
}

func (u *PromoUseCase) CreditsBalance(ctx context.Context, userID string) (CreditsBalance, error) {
	userID = strings.TrimSpace(userID)
	if userID == "" {
		return CreditsBalance{}, ErrInvalidPromoUserID
	}

	credits, err := u.promoRepo.ListActiveCreditsByUser(ctx, userID)
	if err != nil {
		return CreditsBalance{}, err
	}

	var balance CreditsBalance
	for _, c := range credits {
		switch c.CreditType {
		case entities.PromoCreditFeeless:
			balance.FeelessCredits += c.RemainingUses
		case entities.PromoCreditFeeless5:
			balance.Feeless5Credits += c.RemainingUses
		}
	}
	balance.TotalCredits = balance.FeelessCredits + balance.Feeless5Credits
	return balance, nil
}

// ValidatePromotionCode checks an opt-in code against the promotions table.
// Invalid codes are reported with a reason, not an error, so the UI can show
// the message and let the user resubmit without the code.
func (u *PromoUseCase) ValidatePromotionCode(ctx context.Context, code string, quoteAmountCents entities.Cents) (PromotionValidation, error) {
	code = strings.ToUpper(strings.TrimSpace(code))
	if code == "" {
		return PromotionValidation{}, ErrInvalidPromotionCode
	}

	promo, err := u.promotionRepo.GetByCode(ctx, code)
	if err != nil {
		return PromotionValidation{}, err
	}
	if promo.Code == "" || !promo.Active {
		return PromotionValidation{Valid: false, Reason: "Promotion code not found or inactive"}, nil
	}

	now := time.Now().UTC()
	if now.Before(promo.StartDate) {
		return PromotionValidation{Valid: false, Reason: "Promotion has not started yet"}, nil
	}
	if promo.EndDate != nil && now.After(*promo.EndDate) {
		return PromotionValidation{Valid: false, Reason: "Promotion has expired"}, nil
	}
	if promo.MaxRedemptions > 0 && promo.CurrentRedemptions >= promo.MaxRedemptions {
		return PromotionValidation{Valid: false, Reason: "Promotion has reached maximum redemptions"}, nil
	}
	if promo.MinAmountCents > 0 && quoteAmountCents < promo.MinAmountCents {
		return PromotionValidation{Valid: false, Reason: "Quote amount below promotion minimum"}, nil
	}

	var discount entities.Cents
	if promo.PercentOff > 0 {
		discount = quoteAmountCents * entities.Cents(promo.PercentOff) / 100
	} else {
		discount = promo.AmountOffCents.Min(quoteAmountCents)
	}

	return PromotionValidation{Valid: true, Code: promo.Code, DiscountCents: discount}, nil
}
