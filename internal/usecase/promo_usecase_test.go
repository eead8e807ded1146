package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"wrenchgo_payments/internal/domain/entities"
	"wrenchgo_payments/internal/usecase/interfaces"
	mock_interfaces "wrenchgo_payments/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func TestPromoUseCase_ApplyPromo(t *testing.T) {
	ctx := context.Background()

	t.Run("empty payment id", func(t *testing.T) {
		uc := NewPromoUseCase(nil, nil, nil)
		_, err := uc.ApplyPromo(ctx, "  ", "user-1")
		if !errors.Is(err, ErrInvalidPromoPaymentID) {
			t.Fatalf("expected ErrInvalidPromoPaymentID, got %v", err)
		}
	})

	t.Run("empty user id", func(t *testing.T) {
		uc := NewPromoUseCase(nil, nil, nil)
		_, err := uc.ApplyPromo(ctx, "pay-1", "")
		if !errors.Is(err, ErrInvalidPromoUserID) {
			t.Fatalf("expected ErrInvalidPromoUserID, got %v", err)
		}
	})

	t.Run("payment not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		paymentRepo := mock_interfaces.NewMockIPaymentRepository(ctrl)
		paymentRepo.EXPECT().GetByID(gomock.Any(), "pay-1").Return(entities.Payment{}, nil)

		uc := NewPromoUseCase(nil, nil, paymentRepo)
		_, err := uc.ApplyPromo(ctx, "pay-1", "user-1")
		if !errors.Is(err, ErrPromoPaymentNotFound) {
			t.Fatalf("expected ErrPromoPaymentNotFound, got %v", err)
		}
	})

	t.Run("already applied returns prior outcome without consuming", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		paymentRepo := mock_interfaces.NewMockIPaymentRepository(ctrl)
		promoRepo := mock_interfaces.NewMockIPromoRepository(ctrl)

		paymentRepo.EXPECT().GetByID(gomock.Any(), "pay-1").
			Return(entities.Payment{ID: "pay-1", PlatformFeeCents: 1500}, nil)
		promoRepo.EXPECT().GetApplicationByPaymentID(gomock.Any(), "pay-1").
			Return(entities.PromoApplication{
				PaymentID:     "pay-1",
				CreditType:    entities.PromoCreditFeeless,
				DiscountCents: 1500,
				FeeAfterCents: 0,
			}, nil)

		uc := NewPromoUseCase(promoRepo, nil, paymentRepo)
		outcome, err := uc.ApplyPromo(ctx, "pay-1", "user-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if outcome.Applied {
			t.Fatalf("replay must not report applied=true")
		}
		if outcome.DiscountCents != 1500 || outcome.FeeAfterCents != 0 {
			t.Fatalf("expected prior application amounts, got %+v", outcome)
		}
	})

	t.Run("zero fee is a no-op", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		paymentRepo := mock_interfaces.NewMockIPaymentRepository(ctrl)
		promoRepo := mock_interfaces.NewMockIPromoRepository(ctrl)

		paymentRepo.EXPECT().GetByID(gomock.Any(), "pay-1").
			Return(entities.Payment{ID: "pay-1", PlatformFeeCents: 0}, nil)
		promoRepo.EXPECT().GetApplicationByPaymentID(gomock.Any(), "pay-1").
			Return(entities.PromoApplication{}, nil)

		uc := NewPromoUseCase(promoRepo, nil, paymentRepo)
		outcome, err := uc.ApplyPromo(ctx, "pay-1", "user-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if outcome.Applied || outcome.Reason != "No platform fee to discount" {
			t.Fatalf("expected no-op outcome, got %+v", outcome)
		}
	})

	t.Run("no credits", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		paymentRepo := mock_interfaces.NewMockIPaymentRepository(ctrl)
		promoRepo := mock_interfaces.NewMockIPromoRepository(ctrl)

		paymentRepo.EXPECT().GetByID(gomock.Any(), "pay-1").
			Return(entities.Payment{ID: "pay-1", PlatformFeeCents: 1500}, nil)
		promoRepo.EXPECT().GetApplicationByPaymentID(gomock.Any(), "pay-1").
			Return(entities.PromoApplication{}, nil)
		promoRepo.EXPECT().ListActiveCreditsByUser(gomock.Any(), "user-1").
			Return(nil, nil)

		uc := NewPromoUseCase(promoRepo, nil, paymentRepo)
		outcome, err := uc.ApplyPromo(ctx, "pay-1", "user-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if outcome.Applied || outcome.FeeAfterCents != 1500 {
			t.Fatalf("expected undiscounted outcome, got %+v", outcome)
		}
	})

	t.Run("full waiver consumes first credit and rewrites payment", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		paymentRepo := mock_interfaces.NewMockIPaymentRepository(ctrl)
		promoRepo := mock_interfaces.NewMockIPromoRepository(ctrl)

		payment := entities.Payment{
			ID:               "pay-1",
			AmountCents:      11500,
			PlatformFeeCents: 1500,
		}
		paymentRepo.EXPECT().GetByID(gomock.Any(), "pay-1").Return(payment, nil)
		promoRepo.EXPECT().GetApplicationByPaymentID(gomock.Any(), "pay-1").
			Return(entities.PromoApplication{}, nil)
		promoRepo.EXPECT().ListActiveCreditsByUser(gomock.Any(), "user-1").
			Return([]entities.PromoCredit{
				{ID: "cr-1", UserID: "user-1", CreditType: entities.PromoCreditFeeless, RemainingUses: 1},
				{ID: "cr-2", UserID: "user-1", CreditType: entities.PromoCreditFeeless5, RemainingUses: 5},
			}, nil)
		promoRepo.EXPECT().ApplyCreditAtomic(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, app entities.PromoApplication, updated entities.Payment) error {
				if app.PromoCreditID != "cr-1" {
					t.Fatalf("expected the full waiver to be selected, got %s", app.PromoCreditID)
				}
				if app.DiscountCents != 1500 || app.FeeAfterCents != 0 {
					t.Fatalf("unexpected application amounts: %+v", app)
				}
				if updated.AmountCents != 10000 || updated.PlatformFeeCents != 0 || updated.PromoDiscountCents != 1500 {
					t.Fatalf("unexpected payment rewrite: %+v", updated)
				}
				return nil
			})

		uc := NewPromoUseCase(promoRepo, nil, paymentRepo)
		outcome, err := uc.ApplyPromo(ctx, "pay-1", "user-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !outcome.Applied || outcome.CreditType != entities.PromoCreditFeeless {
			t.Fatalf("unexpected outcome: %+v", outcome)
		}
	})

	t.Run("partial credit caps at 500 cents", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		paymentRepo := mock_interfaces.NewMockIPaymentRepository(ctrl)
		promoRepo := mock_interfaces.NewMockIPromoRepository(ctrl)

		paymentRepo.EXPECT().GetByID(gomock.Any(), "pay-1").
			Return(entities.Payment{ID: "pay-1", AmountCents: 11500, PlatformFeeCents: 1500}, nil)
		promoRepo.EXPECT().GetApplicationByPaymentID(gomock.Any(), "pay-1").
			Return(entities.PromoApplication{}, nil)
		promoRepo.EXPECT().ListActiveCreditsByUser(gomock.Any(), "user-1").
			Return([]entities.PromoCredit{
				{ID: "cr-2", UserID: "user-1", CreditType: entities.PromoCreditFeeless5, RemainingUses: 3},
			}, nil)
		promoRepo.EXPECT().ApplyCreditAtomic(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)

		uc := NewPromoUseCase(promoRepo, nil, paymentRepo)
		outcome, err := uc.ApplyPromo(ctx, "pay-1", "user-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !outcome.Applied || outcome.DiscountCents != 500 || outcome.FeeAfterCents != 1000 {
			t.Fatalf("unexpected outcome: %+v", outcome)
		}
	})

	t.Run("conflict resolves to applied=false", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		paymentRepo := mock_interfaces.NewMockIPaymentRepository(ctrl)
		promoRepo := mock_interfaces.NewMockIPromoRepository(ctrl)

		paymentRepo.EXPECT().GetByID(gomock.Any(), "pay-1").
			Return(entities.Payment{ID: "pay-1", AmountCents: 11500, PlatformFeeCents: 1500}, nil)
		promoRepo.EXPECT().GetApplicationByPaymentID(gomock.Any(), "pay-1").
			Return(entities.PromoApplication{}, nil)
		promoRepo.EXPECT().ListActiveCreditsByUser(gomock.Any(), "user-1").
			Return([]entities.PromoCredit{
				{ID: "cr-1", UserID: "user-1", CreditType: entities.PromoCreditFeeless, RemainingUses: 1},
			}, nil)
		promoRepo.EXPECT().ApplyCreditAtomic(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(interfaces.ErrConflict)

		uc := NewPromoUseCase(promoRepo, nil, paymentRepo)
		outcome, err := uc.ApplyPromo(ctx, "pay-1", "user-1")
		if err != nil {
			t.Fatalf("conflict must not surface as an error, got %v", err)
		}
		if outcome.Applied || outcome.FeeAfterCents != 1500 {
			t.Fatalf("expected undiscounted outcome after conflict, got %+v", outcome)
		}
	})

	t.Run("repository error propagates", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		paymentRepo := mock_interfaces.NewMockIPaymentRepository(ctrl)
		boom := errors.New("dynamo down")
		paymentRepo.EXPECT().GetByID(gomock.Any(), "pay-1").Return(entities.Payment{}, boom)

		uc := NewPromoUseCase(nil, nil, paymentRepo)
		_, err := uc.ApplyPromo(ctx, "pay-1", "user-1")
		if !errors.Is(err, boom) {
			t.Fatalf("expected repo error, got %v", err)
		}
	})
}

func TestPromoUseCase_PreviewDiscount(t *testing.T) {
	ctx := context.Background()

	t.Run("zero fee", func(t *testing.T) {
		uc := NewPromoUseCase(nil, nil, nil)
		outcome, err := uc.PreviewDiscount(ctx, "user-1", 0)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if outcome.Applied {
			t.Fatalf("expected no-op preview, got %+v", outcome)
		}
	})

	t.Run("previews without consuming", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		promoRepo := mock_interfaces.NewMockIPromoRepository(ctrl)
		promoRepo.EXPECT().ListActiveCreditsByUser(gomock.Any(), "user-1").
			Return([]entities.PromoCredit{
				{ID: "cr-2", CreditType: entities.PromoCreditFeeless5, RemainingUses: 2},
			}, nil)

		uc := NewPromoUseCase(promoRepo, nil, nil)
		outcome, err := uc.PreviewDiscount(ctx, "user-1", 300)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		// A $5 credit against a $3 fee discounts only the fee.
		if outcome.DiscountCents != 300 || outcome.FeeAfterCents != 0 {
			t.Fatalf("unexpected preview: %+v", outcome)
		}
	})
}

func TestPromoUseCase_CreditsBalance(t *testing.T) {
	ctx := context.Background()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	promoRepo := mock_interfaces.NewMockIPromoRepository(ctrl)
	promoRepo.EXPECT().ListActiveCreditsByUser(gomock.Any(), "user-1").
		Return([]entities.PromoCredit{
			{CreditType: entities.PromoCreditFeeless, RemainingUses: 1},
			{CreditType: entities.PromoCreditFeeless5, RemainingUses: 5},
			{CreditType: entities.PromoCreditFeeless5, RemainingUses: 2},
		}, nil)

	uc := NewPromoUseCase(promoRepo, nil, nil)
	balance, err := uc.CreditsBalance(ctx, "user-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if balance.FeelessCredits != 1 || balance.Feeless5Credits != 7 || balance.TotalCredits != 8 {
		t.Fatalf("unexpected balance: %+v", balance)
	}
}

func TestPromoUseCase_ValidatePromotionCode(t *testing.T) {
	ctx := context.Background()

	t.Run("empty code", func(t *testing.T) {
		uc := NewPromoUseCase(nil, nil, nil)
		_, err := uc.ValidatePromotionCode(ctx, "   ", 1000)
		if !errors.Is(err, ErrInvalidPromotionCode) {
			t.Fatalf("expected ErrInvalidPromotionCode, got %v", err)
		}
	})

	t.Run("code normalized to upper case", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		promotionRepo := mock_interfaces.NewMockIPromotionRepository(ctrl)
		promotionRepo.EXPECT().GetByCode(gomock.Any(), "SPRING20").
			Return(entities.Promotion{
				Code:       "SPRING20",
				Active:     true,
				PercentOff: 20,
				StartDate:  time.Now().UTC().Add(-time.Hour),
			}, nil)

		uc := NewPromoUseCase(nil, promotionRepo, nil)
		v, err := uc.ValidatePromotionCode(ctx, " spring20 ", 10000)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !v.Valid || v.DiscountCents != 2000 {
			t.Fatalf("unexpected validation: %+v", v)
		}
	})

	t.Run("inactive code", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		promotionRepo := mock_interfaces.NewMockIPromotionRepository(ctrl)
		promotionRepo.EXPECT().GetByCode(gomock.Any(), "OLD").
			Return(entities.Promotion{Code: "OLD", Active: false}, nil)

		uc := NewPromoUseCase(nil, promotionRepo, nil)
		v, err := uc.ValidatePromotionCode(ctx, "OLD", 10000)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if v.Valid {
			t.Fatalf("inactive code must be invalid")
		}
	})

	t.Run("expired code", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		promotionRepo := mock_interfaces.NewMockIPromotionRepository(ctrl)
		ended := time.Now().UTC().Add(-time.Hour)
		promotionRepo.EXPECT().GetByCode(gomock.Any(), "GONE").
			Return(entities.Promotion{
				Code:      "GONE",
				Active:    true,
				StartDate: ended.Add(-24 * time.Hour),
				EndDate:   &ended,
			}, nil)

		uc := NewPromoUseCase(nil, promotionRepo, nil)
		v, err := uc.ValidatePromotionCode(ctx, "GONE", 10000)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if v.Valid || v.Reason != "Promotion has expired" {
			t.Fatalf("unexpected validation: %+v", v)
		}
	})

	t.Run("amount-off capped at quote", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		promotionRepo := mock_interfaces.NewMockIPromotionRepository(ctrl)
		promotionRepo.EXPECT().GetByCode(gomock.Any(), "TENOFF").
			Return(entities.Promotion{
				Code:           "TENOFF",
				Active:         true,
				AmountOffCents: 1000,
				StartDate:      time.Now().UTC().Add(-time.Hour),
			}, nil)

		uc := NewPromoUseCase(nil, promotionRepo, nil)
		v, err := uc.ValidatePromotionCode(ctx, "TENOFF", 700)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !v.Valid || v.DiscountCents != 700 {
			t.Fatalf("unexpected validation: %+v", v)
		}
	})
}
