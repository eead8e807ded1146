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
	ErrInvalidContractID     = errors.New("invalid contract id")
	ErrContractNotFound      = errors.New("contract not found")
	ErrNotContractCustomer   = errors.New("only the contract customer can act on it")
	ErrNoHoldOnContract      = errors.New("contract has no authorization hold")
	ErrHoldNotAuthorized     = errors.New("hold is not in an authorized state")
	ErrHoldAmountMismatch    = errors.New("hold amount does not match payment record")
	ErrPaymentRecordMissing  = errors.New("payment record missing for hold")
	ErrJobNotReadyForCapture = errors.New("job must be completed before capture")
	ErrContractNotAuthorized = errors.New("contract payment not authorized")
)

// AuthorizeResult reports the contract gate outcome.

type AuthorizeResult struct {
	Authorized        bool
	AlreadyAuthorized bool
}

// CaptureResult reports the capture outcome.

type CaptureResult struct {
	Captured        bool
	AlreadyCaptured bool
	HoldStatus      entities.HoldStatus
}

// IContractUseCase gates the pending_payment -> active transition on a
// confirmed processor hold, and captures the hold once the job completes.

type IContractUseCase interface {
	AuthorizeContract(ctx context.Context, contractID, holdToken, userID string) (AuthorizeResult, error)
	CaptureContract(ctx context.Context, contractID, userID string) (CaptureResult, error)
}

type ContractUseCase struct {
	contractRepo interfaces.IContractRepository
	paymentRepo  interfaces.IPaymentRepository
	jobRepo      interfaces.IJobRepository
	gateway      interfaces.IPaymentGateway
	alerter      interfaces.IOpsAlerter
}

var _ IContractUseCase = (*ContractUseCase)(nil)

func NewContractUseCase(
	contractRepo interfaces.IContractRepository,
	paymentRepo interfaces.IPaymentRepository,
	jobRepo interfaces.IJobRepository,
	gateway interfaces.IPaymentGateway,
	alerter interfaces.IOpsAlerter,
) *ContractUseCase {
	return &ContractUseCase{
		contractRepo: contractRepo,
		paymentRepo:  paymentRepo,
		jobRepo:      jobRepo,
		gateway:      gateway,
		alerter:      alerter,
	}
}

// AuthorizeContract promotes pending_payment to active once the processor
// confirms the hold. Any failure after that confirmation cancels the hold
// before returning: a dangling reservation on the customer's card is worse
// than a retried authorization.
func (u *ContractUseCase) AuthorizeContract(ctx context.Context, contractID, holdToken, userID string) (AuthorizeResult, error) {
	contractID = strings.TrimSpace(contractID)
	if contractID == "" {
		return AuthorizeResult{}, ErrInvalidContractID
	}

	contract, err := u.contractRepo.GetByID(ctx, contractID)
	if err != nil {
		return AuthorizeResult{}, err
	}
	if contract.ID == "" {
		return AuthorizeResult{}, ErrContractNotFound
	}
	if contract.CustomerID != userID {
		return AuthorizeResult{}, ErrNotContractCustomer
	}
	if contract.Status == entities.ContractStatusActive || contract.PaymentAuthorizedAt != nil {
		return AuthorizeResult{Authorized: true, AlreadyAuthorized: true}, nil
	}

	if holdToken == "" {
		holdToken = contract.StripePaymentIntentID
	}
	if holdToken == "" {
		return AuthorizeResult{}, ErrNoHoldOnContract
	}

	hold, err := u.gateway.GetHold(ctx, holdToken)
	if err != nil {
		return AuthorizeResult{}, err
	}
	if hold.Status != entities.HoldStatusRequiresCapture {
		log.Printf("[contract][usecase] hold not authorized contract_id=%s hold_id=%s status=%s",
			contractID, holdToken, hold.Status)
		return AuthorizeResult{}, ErrHoldNotAuthorized
	}

	payment, err := u.paymentRepo.GetByPaymentIntentID(ctx, holdToken)
	if err != nil {
		return AuthorizeResult{}, err
	}
	if payment.ID == "" {
		return AuthorizeResult{}, ErrPaymentRecordMissing
	}

	// Fee/promo state may have changed between hold creation and now; the
	// reserved amount is authoritative and must match exactly.
	if hold.AmountCents != payment.AmountCents {
		log.Printf("[contract][usecase] amount mismatch contract_id=%s hold=%d payment=%d",
			contractID, hold.AmountCents, payment.AmountCents)
		u.cancelHoldCompensating(ctx, contractID, holdToken)
		return AuthorizeResult{}, ErrHoldAmountMismatch
	}

	now := time.Now().UTC()
	if err := u.contractRepo.Authorize(ctx, contractID, holdToken, now); err != nil {
		if errors.Is(err, interfaces.ErrConflict) {
			// Another request won the transition.
			return AuthorizeResult{Authorized: true, AlreadyAuthorized: true}, nil
		}
		u.cancelHoldCompensating(ctx, contractID, holdToken)
		return AuthorizeResult{}, err
	}

	if err := u.paymentRepo.UpdateStatusByPaymentIntentID(ctx, holdToken, entities.PaymentStatusAuthorized, ""); err != nil {
		log.Printf("[contract][usecase] payment status update failed contract_id=%s err=%v", contractID, err)
	}

	log.Printf("[contract][usecase] authorized contract_id=%s hold_id=%s", contractID, holdToken)
	return AuthorizeResult{Authorized: true}, nil
}

// cancelHoldCompensating releases the processor hold after a failed local
// transition. A failure here leaves money in an inconsistent state and must
// reach an operator.
func (u *ContractUseCase) cancelHoldCompensating(ctx context.Context, contractID, holdToken string) {
	if err := u.gateway.CancelHold(ctx, holdToken); err != nil {
		log.Printf("[contract][usecase] FATAL compensating cancellation failed contract_id=%s hold_id=%s err=%v",
			contractID, holdToken, err)
		u.alerter.Alert(ctx, "COMPENSATION_FAILED",
			"authorization hold could not be cancelled after failed contract transition; manual reconciliation required",
			map[string]string{"contract_id": contractID, "hold_id": holdToken})
		return
	}
	log.Printf("[contract][usecase] hold cancelled contract_id=%s hold_id=%s", contractID, holdToken)
}

// CaptureContract converts the hold into a real charge once the job is done.
// The webhook remains the source of truth for the final payment state; the
// direct updates here are row-keyed and safe to replay.
func (u *ContractUseCase) CaptureContract(ctx context.Context, contractID, userID string) (CaptureResult, error) {
	contractID = strings.TrimSpace(contractID)
	if contractID == "" {
		return CaptureResult{}, ErrInvalidContractID
	}

	contract, err := u.contractRepo.GetByID(ctx, contractID)
	if err != nil {
		return CaptureResult{}, err
	}
	if contract.ID == "" {
		return CaptureResult{}, ErrContractNotFound
	}
	if contract.CustomerID != userID {
		return CaptureResult{}, ErrNotContractCustomer
	}
	if contract.PaymentCapturedAt != nil {
		return CaptureResult{Captured: true, AlreadyCaptured: true}, nil
	}
	if contract.StripePaymentIntentID == "" {
		return CaptureResult{}, ErrNoHoldOnContract
	}
	if contract.PaymentAuthorizedAt == nil {
		return CaptureResult{}, ErrContractNotAuthorized
	}

	job, err := u.jobRepo.GetByID(ctx, contract.JobID)
	if err != nil {
		return CaptureResult{}, err
	}
	if job.Status != entities.JobStatusCompleted && job.Status != entities.JobStatusPaid {
		return CaptureResult{}, ErrJobNotReadyForCapture
	}

	hold, err := u.gateway.CaptureHold(ctx, contract.StripePaymentIntentID)
	if err != nil {
		return CaptureResult{}, err
	}
	log.Printf("[contract][usecase] captured contract_id=%s hold_id=%s status=%s",
		contractID, hold.ID, hold.Status)

	now := time.Now().UTC()
	payment, err := u.paymentRepo.GetByPaymentIntentID(ctx, contract.StripePaymentIntentID)
	if err != nil || payment.ID == "" {
		// The succeeded webhook settles the payment by its own resolution.
		log.Printf("[contract][usecase] payment lookup for capture skipped contract_id=%s err=%v", contractID, err)
	} else if err := u.paymentRepo.MarkSucceeded(ctx, payment.ID, contract.StripePaymentIntentID, hold.LatestChargeID, now); err != nil {
		log.Printf("[contract][usecase] payment success update failed contract_id=%s err=%v", contractID, err)
	}
	if err := u.contractRepo.MarkCaptured(ctx, contractID, now); err != nil {
		log.Printf("[contract][usecase] capture stamp failed contract_id=%s err=%v", contractID, err)
	}

	return CaptureResult{Captured: true, HoldStatus: hold.Status}, nil
}
