package usecase

import (
	"context"
	"errors"
	"log"
	"time"

	"github.com/google/uuid"

	"wrenchgo_payments/internal/domain/entities"
	"wrenchgo_payments/internal/usecase/interfaces"
)

// IInvitationUseCase grants inviter credits when an invited user completes
// their first qualifying payment.

type IInvitationUseCase interface {
	MaybeAward(ctx context.Context, p entities.Payment, stripeEventID string) (entities.AwardOutcome, error)
}

type InvitationUseCase struct {
	invitationRepo interfaces.IInvitationRepository
	paymentRepo    interfaces.IPaymentRepository
	notifier       interfaces.INotifier
}

var _ IInvitationUseCase = (*InvitationUseCase)(nil)

func NewInvitationUseCase(
	invitationRepo interfaces.IInvitationRepository,
	paymentRepo interfaces.IPaymentRepository,
	notifier interfaces.INotifier,
) *InvitationUseCase {
	return &InvitationUseCase{
		invitationRepo: invitationRepo,
		paymentRepo:    paymentRepo,
		notifier:       notifier,
	}
}

// MaybeAward checks whether the captured payment is the invited customer's
// first qualifying one and, if so, grants the inviter's credits. The award
// row's conditional insert guarantees at most one grant per invited user no
// matter how many times the triggering event is replayed.
//
// Qualifying means the payment carried a platform fee before any promo was
// applied; a fully waived fee still counts.
func (u *InvitationUseCase) MaybeAward(ctx context.Context, p entities.Payment, stripeEventID string) (entities.AwardOutcome, error) {
	if p.OriginalFeeCents <= 0 {
		return entities.AwardOutcome{Awarded: false}, nil
	}

	invitation, err := u.invitationRepo.GetByInvitedID(ctx, p.CustomerID)
	if err != nil {
		return entities.AwardOutcome{}, err
	}
	if invitation.InvitedID == "" || invitation.InviterID == "" {
		return entities.AwardOutcome{Awarded: false}, nil
	}

	prior, err := u.paymentRepo.HasPriorQualifyingPayment(ctx, p.CustomerID, p.ID)
	if err != nil {
		return entities.AwardOutcome{}, err
	}
	if prior {
		return entities.AwardOutcome{Awarded: false}, nil
	}

	awardType, credit := u.grantFor(invitation)
	award := entities.InvitationAward{
		InvitedID:     invitation.InvitedID,
		InviterID:     invitation.InviterID,
		PaymentID:     p.ID,
		StripeEventID: stripeEventID,
		AwardType:     awardType,
		CreatedAt:     time.Now().UTC(),
	}

	if err := u.invitationRepo.AwardAtomic(ctx, award, credit); err != nil {
		if errors.Is(err, interfaces.ErrConflict) {
			log.Printf("[invitation][usecase] already awarded invited_id=%s", invitation.InvitedID)
			return entities.AwardOutcome{Awarded: false}, nil
		}
		return entities.AwardOutcome{}, err
	}

	log.Printf("[invitation][usecase] awarded inviter_id=%s invited_id=%s type=%s payment_id=%s",
		invitation.InviterID, invitation.InvitedID, awardType, p.ID)

	if err := u.notifier.Notify(ctx, entities.Notification{
		ID:     uuid.NewString(),
		UserID: invitation.InviterID,
		Type:   "invitation_reward",
		Title:  "You earned a reward!",
		Body:   rewardBody(awardType),
		Data: map[string]string{
			"invited_id": invitation.InvitedID,
			"award_type": string(awardType),
		},
		CreatedAt: time.Now().UTC(),
	}); err != nil {
		log.Printf("[invitation][usecase] inviter notification failed inviter_id=%s err=%v", invitation.InviterID, err)
	}

	return entities.AwardOutcome{Awarded: true, InviterID: invitation.InviterID, AwardType: awardType}, nil
}

// grantFor maps the invited user's role to the inviter's reward: a customer
// referral earns one full fee waiver, a mechanic referral earns five $5
// discounts.
func (u *InvitationUseCase) grantFor(inv entities.Invitation) (entities.InvitationAwardType, entities.PromoCredit) {
	now := time.Now().UTC()
	if inv.InvitedRole == "mechanic" {
		return entities.AwardFeeless5x5, entities.PromoCredit{
			ID:            uuid.NewString(),
			UserID:        inv.InviterID,
			CreditType:    entities.PromoCreditFeeless5,
			RemainingUses: 5,
			Source:        "invitation:" + inv.InvitedID,
			CreatedAt:     now,
		}
	}
	return entities.AwardFeeless1, entities.PromoCredit{
		ID:            uuid.NewString(),
		UserID:        inv.InviterID,
		CreditType:    entities.PromoCreditFeeless,
		RemainingUses: 1,
		Source:        "invitation:" + inv.InvitedID,
		CreatedAt:     now,
	}
}

func rewardBody(t entities.InvitationAwardType) string {
	if t == entities.AwardFeeless5x5 {
		return "A mechanic you invited got their first job paid. You earned five $5 service-fee discounts."
	}
	return "Someone you invited completed their first payment. Your next service fee is on us."
}
