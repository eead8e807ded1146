package interfaces

import (
	"context"

	"wrenchgo_payments/internal/domain/entities"
)

// IInvitationRepository abstracts DynamoDB persistence for invitations and
// their awards.

type IInvitationRepository interface {
	GetByInvitedID(ctx context.Context, invitedID string) (entities.Invitation, error)
	// AwardAtomic inserts the award row (conditional on no award existing for
	// the invited user) and the inviter's credit grant in one transaction.
	// Returns ErrConflict when the user was already awarded.
	AwardAtomic(ctx context.Context, a entities.InvitationAward, credit entities.PromoCredit) error
}
