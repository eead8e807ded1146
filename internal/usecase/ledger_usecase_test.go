package usecase

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"wrenchgo_payments/internal/domain/entities"
	"wrenchgo_payments/internal/usecase/interfaces"
	mock_interfaces "wrenchgo_payments/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func TestNextMonday(t *testing.T) {
	cases := []struct {
		name     string
		captured time.Time
		want     time.Time
	}{
		{
			name:     "wednesday releases next monday",
			captured: time.Date(2025, 6, 11, 15, 30, 0, 0, time.UTC), // Wed
			want:     time.Date(2025, 6, 16, 0, 0, 0, 0, time.UTC),
		},
		{
			name:     "sunday releases the very next day",
			captured: time.Date(2025, 6, 15, 23, 59, 0, 0, time.UTC), // Sun
			want:     time.Date(2025, 6, 16, 0, 0, 0, 0, time.UTC),
		},
		{
			name:     "monday capture waits a full week",
			captured: time.Date(2025, 6, 16, 0, 0, 1, 0, time.UTC), // Mon
			want:     time.Date(2025, 6, 23, 0, 0, 0, 0, time.UTC),
		},
		{
			name:     "saturday releases in two days",
			captured: time.Date(2025, 6, 14, 8, 0, 0, 0, time.UTC), // Sat
			want:     time.Date(2025, 6, 16, 0, 0, 0, 0, time.UTC),
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := nextMonday(tc.captured)
			if !got.Equal(tc.want) {
				t.Fatalf("nextMonday(%s) = %s, want %s", tc.captured, got, tc.want)
			}
			if got.Weekday() != time.Monday {
				t.Fatalf("release day is %s, not Monday", got.Weekday())
			}
		})
	}
}

func TestLedgerUseCase_PostEarning(t *testing.T) {
	ctx := context.Background()
	captured := time.Date(2025, 6, 11, 15, 30, 0, 0, time.UTC)

	payment := entities.Payment{
		ID:                      "pay-1",
		JobID:                   "job-1",
		MechanicID:              "mech-1",
		MechanicNetCents:        10000,
		MechanicStripeAccountID: "acct_1",
	}

	t.Run("posts entry with release at next monday", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		ledgerRepo := mock_interfaces.NewMockILedgerRepository(ctrl)
		ledgerRepo.EXPECT().PostEarning(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, e entities.LedgerEntry) error {
				if e.PaymentID != "pay-1" || e.AmountCents != 10000 {
					t.Fatalf("unexpected entry: %+v", e)
				}
				if e.Status != entities.LedgerStatusAvailableForTransfer {
					t.Fatalf("entry must start available_for_transfer, got %s", e.Status)
				}
				want := time.Date(2025, 6, 16, 0, 0, 0, 0, time.UTC)
				if !e.AvailableForTransferAt.Equal(want) {
					t.Fatalf("release at %s, want %s", e.AvailableForTransferAt, want)
				}
				return nil
			})

		uc := NewLedgerUseCase(ledgerRepo, nil, nil, nil)
		if err := uc.PostEarning(ctx, payment, captured); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("replay conflict is a no-op", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		ledgerRepo := mock_interfaces.NewMockILedgerRepository(ctrl)
		ledgerRepo.EXPECT().PostEarning(gomock.Any(), gomock.Any()).Return(interfaces.ErrConflict)

		uc := NewLedgerUseCase(ledgerRepo, nil, nil, nil)
		if err := uc.PostEarning(ctx, payment, captured); err != nil {
			t.Fatalf("conflict must resolve to nil, got %v", err)
		}
	})

	t.Run("non-positive net skips the ledger", func(t *testing.T) {
		uc := NewLedgerUseCase(nil, nil, nil, nil)
		free := payment
		free.MechanicNetCents = 0
		if err := uc.PostEarning(ctx, free, captured); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}

func TestLedgerUseCase_RunWeeklyPayouts(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2025, 6, 16, 6, 0, 0, 0, time.UTC)

	entry := func(paymentID, mechanicID string, cents entities.Cents) entities.LedgerEntry {
		return entities.LedgerEntry{
			PaymentID:       paymentID,
			MechanicID:      mechanicID,
			StripeAccountID: "acct_" + mechanicID,
			AmountCents:     cents,
			Status:          entities.LedgerStatusAvailableForTransfer,
		}
	}

	t.Run("nothing due", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		ledgerRepo := mock_interfaces.NewMockILedgerRepository(ctrl)
		ledgerRepo.EXPECT().ListDueForTransfer(gomock.Any(), now).Return(nil, nil)

		uc := NewLedgerUseCase(ledgerRepo, nil, nil, nil)
		res, err := uc.RunWeeklyPayouts(ctx, now)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.EntriesDue != 0 || res.TransfersCreated != 0 {
			t.Fatalf("unexpected result: %+v", res)
		}
	})

	t.Run("groups entries into one transfer per mechanic", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		ledgerRepo := mock_interfaces.NewMockILedgerRepository(ctrl)
		transferRepo := mock_interfaces.NewMockITransferRepository(ctrl)
		gateway := mock_interfaces.NewMockIPaymentGateway(ctrl)

		ledgerRepo.EXPECT().ListDueForTransfer(gomock.Any(), now).Return([]entities.LedgerEntry{
			entry("pay-1", "mech-1", 10000),
			entry("pay-2", "mech-1", 5000),
			entry("pay-3", "mech-2", 7500),
		}, nil)
		transferRepo.EXPECT().ListUnresolvedByMechanicID(gomock.Any(), gomock.Any()).Times(2).Return(nil, nil)

		gateway.EXPECT().CreateTransfer(gomock.Any(), gomock.Any()).Times(2).
			DoAndReturn(func(_ context.Context, req interfaces.TransferRequest) (string, error) {
				switch req.DestinationAccountID {
				case "acct_mech-1":
					if req.AmountCents != 15000 {
						t.Fatalf("mech-1 transfer should sum both entries, got %d", req.AmountCents)
					}
					if req.IdempotencyKey != "transfer_mech-1_2025-06-16" {
						t.Fatalf("unexpected idempotency key %q", req.IdempotencyKey)
					}
					return "tr_1", nil
				case "acct_mech-2":
					if req.AmountCents != 7500 {
						t.Fatalf("mech-2 transfer amount wrong: %d", req.AmountCents)
					}
					return "tr_2", nil
				}
				t.Fatalf("unexpected destination %s", req.DestinationAccountID)
				return "", nil
			})

		transferRepo.EXPECT().Create(gomock.Any(), gomock.Any()).Times(2).Return(nil)
		ledgerRepo.EXPECT().MarkTransferred(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Times(2).Return(nil)

		uc := NewLedgerUseCase(ledgerRepo, transferRepo, gateway, nil)
		res, err := uc.RunWeeklyPayouts(ctx, now)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.EntriesDue != 3 || res.TransfersCreated != 2 || len(res.FailedMechanics) != 0 {
			t.Fatalf("unexpected result: %+v", res)
		}
	})

	t.Run("one failing mechanic does not block the others", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		ledgerRepo := mock_interfaces.NewMockILedgerRepository(ctrl)
		transferRepo := mock_interfaces.NewMockITransferRepository(ctrl)
		gateway := mock_interfaces.NewMockIPaymentGateway(ctrl)

		ledgerRepo.EXPECT().ListDueForTransfer(gomock.Any(), now).Return([]entities.LedgerEntry{
			entry("pay-1", "mech-1", 10000),
			entry("pay-3", "mech-2", 7500),
		}, nil)
		transferRepo.EXPECT().ListUnresolvedByMechanicID(gomock.Any(), gomock.Any()).Times(2).Return(nil, nil)

		gateway.EXPECT().CreateTransfer(gomock.Any(), gomock.Any()).Times(2).
			DoAndReturn(func(_ context.Context, req interfaces.TransferRequest) (string, error) {
				if req.DestinationAccountID == "acct_mech-1" {
					return "", fmt.Errorf("account frozen")
				}
				return "tr_2", nil
			})
		transferRepo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)
		ledgerRepo.EXPECT().MarkTransferred(gomock.Any(), []string{"pay-3"}, "tr_2", gomock.Any()).Return(nil)

		uc := NewLedgerUseCase(ledgerRepo, transferRepo, gateway, nil)
		res, err := uc.RunWeeklyPayouts(ctx, now)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.TransfersCreated != 1 || len(res.FailedMechanics) != 1 || res.FailedMechanics[0] != "mech-1" {
			t.Fatalf("unexpected result: %+v", res)
		}
	})

	t.Run("mark-transferred failure alerts and counts as failed", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		ledgerRepo := mock_interfaces.NewMockILedgerRepository(ctrl)
		transferRepo := mock_interfaces.NewMockITransferRepository(ctrl)
		gateway := mock_interfaces.NewMockIPaymentGateway(ctrl)
		alerter := mock_interfaces.NewMockIOpsAlerter(ctrl)

		ledgerRepo.EXPECT().ListDueForTransfer(gomock.Any(), now).Return([]entities.LedgerEntry{
			entry("pay-1", "mech-1", 10000),
		}, nil)
		transferRepo.EXPECT().ListUnresolvedByMechanicID(gomock.Any(), "mech-1").Return(nil, nil)
		gateway.EXPECT().CreateTransfer(gomock.Any(), gomock.Any()).Return("tr_1", nil)
		transferRepo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)
		ledgerRepo.EXPECT().MarkTransferred(gomock.Any(), []string{"pay-1"}, "tr_1", gomock.Any()).
			Return(errors.New("dynamo down"))
		alerter.EXPECT().Alert(gomock.Any(), "LEDGER_MARK_FAILED", gomock.Any(), gomock.Any())

		uc := NewLedgerUseCase(ledgerRepo, transferRepo, gateway, alerter)
		res, err := uc.RunWeeklyPayouts(ctx, now)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.TransfersCreated != 0 || len(res.FailedMechanics) != 1 {
			t.Fatalf("unexpected result: %+v", res)
		}
	})
	t.Run("entries behind a pending transfer are withheld from the next run", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		ledgerRepo := mock_interfaces.NewMockILedgerRepository(ctrl)
		transferRepo := mock_interfaces.NewMockITransferRepository(ctrl)
		gateway := mock_interfaces.NewMockIPaymentGateway(ctrl)
		alerter := mock_interfaces.NewMockIOpsAlerter(ctrl)

		// pay-1 went out in yesterday's transfer whose ledger marking failed;
		// it is still available but must not be paid again under a fresh
		// idempotency key. pay-2 is genuinely due.
		nextDay := now.AddDate(0, 0, 1)
		ledgerRepo.EXPECT().ListDueForTransfer(gomock.Any(), nextDay).Return([]entities.LedgerEntry{
			entry("pay-1", "mech-1", 10000),
			entry("pay-2", "mech-1", 5000),
		}, nil)
		transferRepo.EXPECT().ListUnresolvedByMechanicID(gomock.Any(), "mech-1").Return([]entities.Transfer{
			{StripeTransferID: "tr_1", MechanicID: "mech-1", Status: entities.TransferStatusPending, LedgerPaymentIDs: []string{"pay-1"}},
		}, nil)
		alerter.EXPECT().Alert(gomock.Any(), "TRANSFER_UNRESOLVED", gomock.Any(), gomock.Any())

		gateway.EXPECT().CreateTransfer(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, req interfaces.TransferRequest) (string, error) {
				if req.AmountCents != 5000 {
					t.Fatalf("withheld entry leaked into the transfer amount: %d", req.AmountCents)
				}
				return "tr_2", nil
			})
		transferRepo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)
		ledgerRepo.EXPECT().MarkTransferred(gomock.Any(), []string{"pay-2"}, "tr_2", gomock.Any()).Return(nil)

		uc := NewLedgerUseCase(ledgerRepo, transferRepo, gateway, alerter)
		res, err := uc.RunWeeklyPayouts(ctx, nextDay)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.TransfersCreated != 1 {
			t.Fatalf("unexpected result: %+v", res)
		}
	})

	t.Run("all entries pending means the mechanic is skipped entirely", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		ledgerRepo := mock_interfaces.NewMockILedgerRepository(ctrl)
		transferRepo := mock_interfaces.NewMockITransferRepository(ctrl)
		alerter := mock_interfaces.NewMockIOpsAlerter(ctrl)

		ledgerRepo.EXPECT().ListDueForTransfer(gomock.Any(), now).Return([]entities.LedgerEntry{
			entry("pay-1", "mech-1", 10000),
		}, nil)
		transferRepo.EXPECT().ListUnresolvedByMechanicID(gomock.Any(), "mech-1").Return([]entities.Transfer{
			{StripeTransferID: "tr_1", MechanicID: "mech-1", Status: entities.TransferStatusPending, LedgerPaymentIDs: []string{"pay-1"}},
		}, nil)
		alerter.EXPECT().Alert(gomock.Any(), "TRANSFER_UNRESOLVED", gomock.Any(), gomock.Any())

		uc := NewLedgerUseCase(ledgerRepo, transferRepo, nil, alerter)
		res, err := uc.RunWeeklyPayouts(ctx, now)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.TransfersCreated != 0 || len(res.FailedMechanics) != 1 || res.FailedMechanics[0] != "mech-1" {
			t.Fatalf("unexpected result: %+v", res)
		}
	})
}

func TestLedgerUseCase_ConfirmTransfer(t *testing.T) {
	ctx := context.Background()

	t.Run("confirmation finishes marking the transfer's entries", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		ledgerRepo := mock_interfaces.NewMockILedgerRepository(ctrl)
		transferRepo := mock_interfaces.NewMockITransferRepository(ctrl)

		transferRepo.EXPECT().UpsertStatus(gomock.Any(), "tr_1", entities.TransferStatusSucceeded, "").Return(nil)
		transferRepo.EXPECT().GetByStripeTransferID(gomock.Any(), "tr_1").
			Return(entities.Transfer{StripeTransferID: "tr_1", LedgerPaymentIDs: []string{"pay-1"}}, nil)
		ledgerRepo.EXPECT().MarkTransferred(gomock.Any(), []string{"pay-1"}, "tr_1", gomock.Any()).Return(nil)

		uc := NewLedgerUseCase(ledgerRepo, transferRepo, nil, nil)
		if err := uc.ConfirmTransfer(ctx, "tr_1"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("already marked entries conflict and are left alone", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		ledgerRepo := mock_interfaces.NewMockILedgerRepository(ctrl)
		transferRepo := mock_interfaces.NewMockITransferRepository(ctrl)

		transferRepo.EXPECT().UpsertStatus(gomock.Any(), "tr_1", entities.TransferStatusSucceeded, "").Return(nil)
		transferRepo.EXPECT().GetByStripeTransferID(gomock.Any(), "tr_1").
			Return(entities.Transfer{StripeTransferID: "tr_1", LedgerPaymentIDs: []string{"pay-1"}}, nil)
		ledgerRepo.EXPECT().MarkTransferred(gomock.Any(), []string{"pay-1"}, "tr_1", gomock.Any()).
			Return(interfaces.ErrConflict)

		uc := NewLedgerUseCase(ledgerRepo, transferRepo, nil, nil)
		if err := uc.ConfirmTransfer(ctx, "tr_1"); err != nil {
			t.Fatalf("conflict must resolve to nil, got %v", err)
		}
	})
}

func TestLedgerUseCase_FailTransfer(t *testing.T) {
	ctx := context.Background()

	t.Run("reverts entries behind the transfer", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		ledgerRepo := mock_interfaces.NewMockILedgerRepository(ctrl)
		transferRepo := mock_interfaces.NewMockITransferRepository(ctrl)

		transferRepo.EXPECT().UpsertStatus(gomock.Any(), "tr_1", entities.TransferStatusFailed, "reversed").Return(nil)
		transferRepo.EXPECT().GetByStripeTransferID(gomock.Any(), "tr_1").
			Return(entities.Transfer{StripeTransferID: "tr_1", LedgerPaymentIDs: []string{"pay-1", "pay-2"}}, nil)
		ledgerRepo.EXPECT().RevertToAvailable(gomock.Any(), []string{"pay-1", "pay-2"}).Return(nil)

		uc := NewLedgerUseCase(ledgerRepo, transferRepo, nil, nil)
		if err := uc.FailTransfer(ctx, "tr_1", "reversed"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("orphaned transfer alerts instead of failing", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		transferRepo := mock_interfaces.NewMockITransferRepository(ctrl)
		alerter := mock_interfaces.NewMockIOpsAlerter(ctrl)

		transferRepo.EXPECT().UpsertStatus(gomock.Any(), "tr_x", entities.TransferStatusFailed, "reversed").Return(nil)
		transferRepo.EXPECT().GetByStripeTransferID(gomock.Any(), "tr_x").
			Return(entities.Transfer{}, nil)
		alerter.EXPECT().Alert(gomock.Any(), "TRANSFER_ORPHANED", gomock.Any(), gomock.Any())

		uc := NewLedgerUseCase(nil, transferRepo, nil, alerter)
		if err := uc.FailTransfer(ctx, "tr_x", "reversed"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}

func TestLedgerUseCase_RefundEntry(t *testing.T) {
	ctx := context.Background()

	t.Run("missing entry", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		ledgerRepo := mock_interfaces.NewMockILedgerRepository(ctrl)
		ledgerRepo.EXPECT().GetByPaymentID(gomock.Any(), "pay-1").Return(entities.LedgerEntry{}, nil)

		uc := NewLedgerUseCase(ledgerRepo, nil, nil, nil)
		if err := uc.RefundEntry(ctx, "pay-1"); !errors.Is(err, ErrLedgerEntryNotFound) {
			t.Fatalf("expected ErrLedgerEntryNotFound, got %v", err)
		}
	})

	t.Run("refund before payout marks the entry", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		ledgerRepo := mock_interfaces.NewMockILedgerRepository(ctrl)
		ledgerRepo.EXPECT().GetByPaymentID(gomock.Any(), "pay-1").
			Return(entities.LedgerEntry{PaymentID: "pay-1", Status: entities.LedgerStatusAvailableForTransfer}, nil)
		ledgerRepo.EXPECT().MarkRefunded(gomock.Any(), "pay-1").Return(nil)

		uc := NewLedgerUseCase(ledgerRepo, nil, nil, nil)
		if err := uc.RefundEntry(ctx, "pay-1"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("refund after payout goes to an operator", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		ledgerRepo := mock_interfaces.NewMockILedgerRepository(ctrl)
		alerter := mock_interfaces.NewMockIOpsAlerter(ctrl)
		ledgerRepo.EXPECT().GetByPaymentID(gomock.Any(), "pay-1").
			Return(entities.LedgerEntry{
				PaymentID:      "pay-1",
				MechanicID:     "mech-1",
				Status:         entities.LedgerStatusPaidOut,
				StripePayoutID: "po_1",
			}, nil)
		alerter.EXPECT().Alert(gomock.Any(), "REFUND_AFTER_PAYOUT", gomock.Any(), gomock.Any())

		uc := NewLedgerUseCase(ledgerRepo, nil, nil, alerter)
		if err := uc.RefundEntry(ctx, "pay-1"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}
