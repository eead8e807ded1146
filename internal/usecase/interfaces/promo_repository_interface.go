package interfaces

import (
	"context"

	"wrenchgo_payments/internal/domain/entities"
)

// IPromoRepository abstracts DynamoDB persistence for promo credits and their
// applications.

type IPromoRepository interface {
	// ListActiveCreditsByUser returns the user's credits with remaining uses,
	// ordered by selection priority: full waivers first, then oldest grant.
	ListActiveCreditsByUser(ctx context.Context, userID string) ([]entities.PromoCredit, error)

	GetApplicationByPaymentID(ctx context.Context, paymentID string) (entities.PromoApplication, error)

	// ApplyCreditAtomic executes the consumption as one transaction: decrement
	// the credit (conditional on remaining_uses > 0), insert the application
	// row (conditional on absence) and rewrite the payment's fee/amount
	// fields. Returns ErrConflict when any condition fails.
	ApplyCreditAtomic(ctx context.Context, app entities.PromoApplication, updated entities.Payment) error
}

// IPromotionRepository reads opt-in promotion codes.

type IPromotionRepository interface {
	GetByCode(ctx context.Context, code string) (entities.Promotion, error)
}
