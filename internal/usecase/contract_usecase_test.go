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

func pendingContract() entities.Contract {
	return entities.Contract{
		ID:                 "con-1",
		JobID:              "job-1",
		CustomerID:         "user-1",
		MechanicID:         "mech-1",
		TotalCustomerCents: 11500,
		Status:             entities.ContractStatusPendingPayment,
	}
}

func TestContractUseCase_AuthorizeContract(t *testing.T) {
	ctx := context.Background()

	t.Run("empty contract id", func(t *testing.T) {
		uc := NewContractUseCase(nil, nil, nil, nil, nil)
		_, err := uc.AuthorizeContract(ctx, " ", "pi_1", "user-1")
		if !errors.Is(err, ErrInvalidContractID) {
			t.Fatalf("expected ErrInvalidContractID, got %v", err)
		}
	})

	t.Run("contract not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		contractRepo := mock_interfaces.NewMockIContractRepository(ctrl)
		contractRepo.EXPECT().GetByID(gomock.Any(), "con-1").Return(entities.Contract{}, nil)

		uc := NewContractUseCase(contractRepo, nil, nil, nil, nil)
		_, err := uc.AuthorizeContract(ctx, "con-1", "pi_1", "user-1")
		if !errors.Is(err, ErrContractNotFound) {
			t.Fatalf("expected ErrContractNotFound, got %v", err)
		}
	})

	t.Run("caller is not the customer", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		contractRepo := mock_interfaces.NewMockIContractRepository(ctrl)
		contractRepo.EXPECT().GetByID(gomock.Any(), "con-1").Return(pendingContract(), nil)

		uc := NewContractUseCase(contractRepo, nil, nil, nil, nil)
		_, err := uc.AuthorizeContract(ctx, "con-1", "pi_1", "intruder")
		if !errors.Is(err, ErrNotContractCustomer) {
			t.Fatalf("expected ErrNotContractCustomer, got %v", err)
		}
	})

	t.Run("already active is idempotent", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		contractRepo := mock_interfaces.NewMockIContractRepository(ctrl)
		contract := pendingContract()
		contract.Status = entities.ContractStatusActive
		contractRepo.EXPECT().GetByID(gomock.Any(), "con-1").Return(contract, nil)

		uc := NewContractUseCase(contractRepo, nil, nil, nil, nil)
		res, err := uc.AuthorizeContract(ctx, "con-1", "pi_1", "user-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !res.Authorized || !res.AlreadyAuthorized {
			t.Fatalf("expected idempotent success, got %+v", res)
		}
	})

	t.Run("no hold anywhere", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		contractRepo := mock_interfaces.NewMockIContractRepository(ctrl)
		contractRepo.EXPECT().GetByID(gomock.Any(), "con-1").Return(pendingContract(), nil)

		uc := NewContractUseCase(contractRepo, nil, nil, nil, nil)
		_, err := uc.AuthorizeContract(ctx, "con-1", "", "user-1")
		if !errors.Is(err, ErrNoHoldOnContract) {
			t.Fatalf("expected ErrNoHoldOnContract, got %v", err)
		}
	})

	t.Run("hold not in requires_capture", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		contractRepo := mock_interfaces.NewMockIContractRepository(ctrl)
		gateway := mock_interfaces.NewMockIPaymentGateway(ctrl)
		contractRepo.EXPECT().GetByID(gomock.Any(), "con-1").Return(pendingContract(), nil)
		gateway.EXPECT().GetHold(gomock.Any(), "pi_1").
			Return(entities.ProcessorHold{ID: "pi_1", Status: entities.HoldStatusProcessing}, nil)

		uc := NewContractUseCase(contractRepo, nil, nil, gateway, nil)
		_, err := uc.AuthorizeContract(ctx, "con-1", "pi_1", "user-1")
		if !errors.Is(err, ErrHoldNotAuthorized) {
			t.Fatalf("expected ErrHoldNotAuthorized, got %v", err)
		}
	})

	t.Run("amount mismatch cancels the hold", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		contractRepo := mock_interfaces.NewMockIContractRepository(ctrl)
		paymentRepo := mock_interfaces.NewMockIPaymentRepository(ctrl)
		gateway := mock_interfaces.NewMockIPaymentGateway(ctrl)

		contractRepo.EXPECT().GetByID(gomock.Any(), "con-1").Return(pendingContract(), nil)
		gateway.EXPECT().GetHold(gomock.Any(), "pi_1").
			Return(entities.ProcessorHold{ID: "pi_1", Status: entities.HoldStatusRequiresCapture, AmountCents: 9999}, nil)
		paymentRepo.EXPECT().GetByPaymentIntentID(gomock.Any(), "pi_1").
			Return(entities.Payment{ID: "pay-1", AmountCents: 11500}, nil)
		gateway.EXPECT().CancelHold(gomock.Any(), "pi_1").Return(nil)

		uc := NewContractUseCase(contractRepo, paymentRepo, nil, gateway, nil)
		_, err := uc.AuthorizeContract(ctx, "con-1", "pi_1", "user-1")
		if !errors.Is(err, ErrHoldAmountMismatch) {
			t.Fatalf("expected ErrHoldAmountMismatch, got %v", err)
		}
	})

	t.Run("failed compensating cancellation raises an alert", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		contractRepo := mock_interfaces.NewMockIContractRepository(ctrl)
		paymentRepo := mock_interfaces.NewMockIPaymentRepository(ctrl)
		gateway := mock_interfaces.NewMockIPaymentGateway(ctrl)
		alerter := mock_interfaces.NewMockIOpsAlerter(ctrl)

		contractRepo.EXPECT().GetByID(gomock.Any(), "con-1").Return(pendingContract(), nil)
		gateway.EXPECT().GetHold(gomock.Any(), "pi_1").
			Return(entities.ProcessorHold{ID: "pi_1", Status: entities.HoldStatusRequiresCapture, AmountCents: 9999}, nil)
		paymentRepo.EXPECT().GetByPaymentIntentID(gomock.Any(), "pi_1").
			Return(entities.Payment{ID: "pay-1", AmountCents: 11500}, nil)
		gateway.EXPECT().CancelHold(gomock.Any(), "pi_1").Return(errors.New("processor timeout"))
		alerter.EXPECT().Alert(gomock.Any(), "COMPENSATION_FAILED", gomock.Any(), gomock.Any())

		uc := NewContractUseCase(contractRepo, paymentRepo, nil, gateway, alerter)
		_, err := uc.AuthorizeContract(ctx, "con-1", "pi_1", "user-1")
		if !errors.Is(err, ErrHoldAmountMismatch) {
			t.Fatalf("expected ErrHoldAmountMismatch, got %v", err)
		}
	})

	t.Run("conflict on transition resolves to already authorized", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		contractRepo := mock_interfaces.NewMockIContractRepository(ctrl)
		paymentRepo := mock_interfaces.NewMockIPaymentRepository(ctrl)
		gateway := mock_interfaces.NewMockIPaymentGateway(ctrl)

		contractRepo.EXPECT().GetByID(gomock.Any(), "con-1").Return(pendingContract(), nil)
		gateway.EXPECT().GetHold(gomock.Any(), "pi_1").
			Return(entities.ProcessorHold{ID: "pi_1", Status: entities.HoldStatusRequiresCapture, AmountCents: 11500}, nil)
		paymentRepo.EXPECT().GetByPaymentIntentID(gomock.Any(), "pi_1").
			Return(entities.Payment{ID: "pay-1", AmountCents: 11500}, nil)
		contractRepo.EXPECT().Authorize(gomock.Any(), "con-1", "pi_1", gomock.Any()).
			Return(interfaces.ErrConflict)

		uc := NewContractUseCase(contractRepo, paymentRepo, nil, gateway, nil)
		res, err := uc.AuthorizeContract(ctx, "con-1", "pi_1", "user-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !res.Authorized || !res.AlreadyAuthorized {
			t.Fatalf("expected idempotent success after lost race, got %+v", res)
		}
	})

	t.Run("successful authorization", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		contractRepo := mock_interfaces.NewMockIContractRepository(ctrl)
		paymentRepo := mock_interfaces.NewMockIPaymentRepository(ctrl)
		gateway := mock_interfaces.NewMockIPaymentGateway(ctrl)

		// Fallback to the contract's stored hold when the caller omits one.
		contract := pendingContract()
		contract.StripePaymentIntentID = "pi_1"
		contractRepo.EXPECT().GetByID(gomock.Any(), "con-1").Return(contract, nil)
		gateway.EXPECT().GetHold(gomock.Any(), "pi_1").
			Return(entities.ProcessorHold{ID: "pi_1", Status: entities.HoldStatusRequiresCapture, AmountCents: 11500}, nil)
		paymentRepo.EXPECT().GetByPaymentIntentID(gomock.Any(), "pi_1").
			Return(entities.Payment{ID: "pay-1", AmountCents: 11500}, nil)
		contractRepo.EXPECT().Authorize(gomock.Any(), "con-1", "pi_1", gomock.Any()).Return(nil)
		paymentRepo.EXPECT().UpdateStatusByPaymentIntentID(gomock.Any(), "pi_1", entities.PaymentStatusAuthorized, "").Return(nil)

		uc := NewContractUseCase(contractRepo, paymentRepo, nil, gateway, nil)
		res, err := uc.AuthorizeContract(ctx, "con-1", "", "user-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !res.Authorized || res.AlreadyAuthorized {
			t.Fatalf("expected fresh authorization, got %+v", res)
		}
	})
}

func TestContractUseCase_CaptureContract(t *testing.T) {
	ctx := context.Background()

	authorizedContract := func() entities.Contract {
		c := pendingContract()
		c.Status = entities.ContractStatusActive
		c.StripePaymentIntentID = "pi_1"
		at := time.Now().UTC().Add(-time.Hour)
		c.PaymentAuthorizedAt = &at
		return c
	}

	t.Run("already captured is idempotent", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		contractRepo := mock_interfaces.NewMockIContractRepository(ctrl)
		contract := authorizedContract()
		at := time.Now().UTC()
		contract.PaymentCapturedAt = &at
		contractRepo.EXPECT().GetByID(gomock.Any(), "con-1").Return(contract, nil)

		uc := NewContractUseCase(contractRepo, nil, nil, nil, nil)
		res, err := uc.CaptureContract(ctx, "con-1", "user-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !res.Captured || !res.AlreadyCaptured {
			t.Fatalf("expected idempotent capture, got %+v", res)
		}
	})

	t.Run("not authorized yet", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		contractRepo := mock_interfaces.NewMockIContractRepository(ctrl)
		contract := pendingContract()
		contract.StripePaymentIntentID = "pi_1"
		contractRepo.EXPECT().GetByID(gomock.Any(), "con-1").Return(contract, nil)

		uc := NewContractUseCase(contractRepo, nil, nil, nil, nil)
		_, err := uc.CaptureContract(ctx, "con-1", "user-1")
		if !errors.Is(err, ErrContractNotAuthorized) {
			t.Fatalf("expected ErrContractNotAuthorized, got %v", err)
		}
	})

	t.Run("job not completed", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		contractRepo := mock_interfaces.NewMockIContractRepository(ctrl)
		jobRepo := mock_interfaces.NewMockIJobRepository(ctrl)
		contractRepo.EXPECT().GetByID(gomock.Any(), "con-1").Return(authorizedContract(), nil)
		jobRepo.EXPECT().GetByID(gomock.Any(), "job-1").
			Return(entities.Job{ID: "job-1", Status: entities.JobStatus("in_progress")}, nil)

		uc := NewContractUseCase(contractRepo, nil, jobRepo, nil, nil)
		_, err := uc.CaptureContract(ctx, "con-1", "user-1")
		if !errors.Is(err, ErrJobNotReadyForCapture) {
			t.Fatalf("expected ErrJobNotReadyForCapture, got %v", err)
		}
	})

	t.Run("successful capture stamps payment and contract", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		contractRepo := mock_interfaces.NewMockIContractRepository(ctrl)
		paymentRepo := mock_interfaces.NewMockIPaymentRepository(ctrl)
		jobRepo := mock_interfaces.NewMockIJobRepository(ctrl)
		gateway := mock_interfaces.NewMockIPaymentGateway(ctrl)

		contractRepo.EXPECT().GetByID(gomock.Any(), "con-1").Return(authorizedContract(), nil)
		jobRepo.EXPECT().GetByID(gomock.Any(), "job-1").
			Return(entities.Job{ID: "job-1", Status: entities.JobStatusCompleted}, nil)
		gateway.EXPECT().CaptureHold(gomock.Any(), "pi_1").
			Return(entities.ProcessorHold{ID: "pi_1", Status: entities.HoldStatusSucceeded, LatestChargeID: "ch_1"}, nil)
		paymentRepo.EXPECT().GetByPaymentIntentID(gomock.Any(), "pi_1").
			Return(entities.Payment{ID: "pay-1", JobID: "job-1"}, nil)
		paymentRepo.EXPECT().MarkSucceeded(gomock.Any(), "pay-1", "pi_1", "ch_1", gomock.Any()).Return(nil)
		contractRepo.EXPECT().MarkCaptured(gomock.Any(), "con-1", gomock.Any()).Return(nil)

		uc := NewContractUseCase(contractRepo, paymentRepo, jobRepo, gateway, nil)
		res, err := uc.CaptureContract(ctx, "con-1", "user-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !res.Captured || res.AlreadyCaptured || res.HoldStatus != entities.HoldStatusSucceeded {
			t.Fatalf("unexpected result: %+v", res)
		}
	})

	t.Run("capture failure propagates", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		contractRepo := mock_interfaces.NewMockIContractRepository(ctrl)
		jobRepo := mock_interfaces.NewMockIJobRepository(ctrl)
		gateway := mock_interfaces.NewMockIPaymentGateway(ctrl)

		contractRepo.EXPECT().GetByID(gomock.Any(), "con-1").Return(authorizedContract(), nil)
		jobRepo.EXPECT().GetByID(gomock.Any(), "job-1").
			Return(entities.Job{ID: "job-1", Status: entities.JobStatusCompleted}, nil)
		boom := errors.New("capture rejected")
		gateway.EXPECT().CaptureHold(gomock.Any(), "pi_1").Return(entities.ProcessorHold{}, boom)

		uc := NewContractUseCase(contractRepo, nil, jobRepo, gateway, nil)
		_, err := uc.CaptureContract(ctx, "con-1", "user-1")
		if !errors.Is(err, boom) {
			t.Fatalf("expected gateway error, got %v", err)
		}
	})
}
