package usecase

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"wrenchgo_payments/internal/domain/entities"
	"wrenchgo_payments/internal/usecase/interfaces"
)

var (
	ErrLedgerEntryNotFound = errors.New("ledger entry not found")
)

// PayoutRunResult summarizes one weekly release run.

type PayoutRunResult struct {
	EntriesDue       int      `json:"entries_due"`
	TransfersCreated int      `json:"transfers_created"`
	TransferIDs      []string `json:"transfer_ids"`
	FailedMechanics  []string `json:"failed_mechanics,omitempty"`
}

// ILedgerUseCase owns the mechanic payout ledger: earnings are posted on
// capture, held until the following Monday, then released as one bulk
// transfer per mechanic.

type ILedgerUseCase interface {
	PostEarning(ctx context.Context, p entities.Payment, capturedAt time.Time) error
	RunWeeklyPayouts(ctx context.Context, now time.Time) (PayoutRunResult, error)
	ConfirmTransfer(ctx context.Context, stripeTransferID string) error
	FailTransfer(ctx context.Context, stripeTransferID, reason string) error
	MarkPayoutPaid(ctx context.Context, stripeAccountID, stripePayoutID string, at time.Time) error
	RefundEntry(ctx context.Context, paymentID string) error
}

type LedgerUseCase struct {
	ledgerRepo   interfaces.ILedgerRepository
	transferRepo interfaces.ITransferRepository
	gateway      interfaces.IPaymentGateway
	alerter      interfaces.IOpsAlerter
}

var _ ILedgerUseCase = (*LedgerUseCase)(nil)

func NewLedgerUseCase(
	ledgerRepo interfaces.ILedgerRepository,
	transferRepo interfaces.ITransferRepository,
	gateway interfaces.IPaymentGateway,
	alerter interfaces.IOpsAlerter,
) *LedgerUseCase {
	return &LedgerUseCase{
		ledgerRepo:   ledgerRepo,
		transferRepo: transferRepo,
		gateway:      gateway,
		alerter:      alerter,
	}
}

// nextMonday returns 00:00 UTC of the Monday strictly after t. A capture on a
// Monday releases the following Monday, never same-day.
func nextMonday(t time.Time) time.Time {
	t = t.UTC()
	days := int(8 - t.Weekday())
	if t.Weekday() == time.Sunday {
		days = 1
	}
	d := t.AddDate(0, 0, days)
	return time.Date(d.Year(), d.Month(), d.Day(), 0, 0, 0, 0, time.UTC)
}

// PostEarning inserts the mechanic's earning for a captured payment. Webhook
// replays land on the conditional put and resolve to a no-op.
func (u *LedgerUseCase) PostEarning(ctx context.Context, p entities.Payment, capturedAt time.Time) error {
	if p.MechanicNetCents <= 0 {
		log.Printf("[ledger][usecase] skipping non-positive earning payment_id=%s net_cents=%d", p.ID, p.MechanicNetCents)
		return nil
	}

	entry := entities.LedgerEntry{
		PaymentID:              p.ID,
		MechanicID:             p.MechanicID,
		JobID:                  p.JobID,
		StripeAccountID:        p.MechanicStripeAccountID,
		AmountCents:            p.MechanicNetCents,
		Status:                 entities.LedgerStatusAvailableForTransfer,
		AvailableForTransferAt: nextMonday(capturedAt),
		CreatedAt:              time.Now().UTC(),
	}

	if err := u.ledgerRepo.PostEarning(ctx, entry); err != nil {
		if errors.Is(err, interfaces.ErrConflict) {
			log.Printf("[ledger][usecase] earning already posted payment_id=%s", p.ID)
			return nil
		}
		return err
	}

	log.Printf("[ledger][usecase] earning posted payment_id=%s mechanic_id=%s amount_cents=%d release_at=%s",
		p.ID, p.MechanicID, entry.AmountCents, entry.AvailableForTransferAt.Format(time.RFC3339))
	return nil
}

// RunWeeklyPayouts releases every due ledger entry, grouped into one transfer
// per mechanic. A failure for one mechanic does not block the others; their
// entries stay available_for_transfer and the next run picks them up.
func (u *LedgerUseCase) RunWeeklyPayouts(ctx context.Context, now time.Time) (PayoutRunResult, error) {
	due, err := u.ledgerRepo.ListDueForTransfer(ctx, now.UTC())
	if err != nil {
		return PayoutRunResult{}, err
	}

	result := PayoutRunResult{EntriesDue: len(due)}
	if len(due) == 0 {
		log.Printf("[ledger][usecase] payout run: nothing due")
		return result, nil
	}

	groups := make(map[string][]entities.LedgerEntry)
	for _, e := range due {
		groups[e.MechanicID] = append(groups[e.MechanicID], e)
	}

	for mechanicID, entries := range groups {
		transferID, err := u.releaseGroup(ctx, mechanicID, entries, now)
		if err != nil {
			log.Printf("[ledger][usecase] payout run: mechanic failed mechanic_id=%s err=%v", mechanicID, err)
			result.FailedMechanics = append(result.FailedMechanics, mechanicID)
			continue
		}
		result.TransfersCreated++
		result.TransferIDs = append(result.TransferIDs, transferID)
	}

	log.Printf("[ledger][usecase] payout run done entries=%d transfers=%d failed=%d",
		result.EntriesDue, result.TransfersCreated, len(result.FailedMechanics))
	return result, nil
}

func (u *LedgerUseCase) releaseGroup(ctx context.Context, mechanicID string, entries []entities.LedgerEntry, now time.Time) (string, error) {
	// Entries referenced by a still-pending transfer are withheld: a prior run
	// may have moved money and crashed before marking the ledger, and the next
	// day's fresh idempotency key would otherwise pay them a second time.
	covered, err := u.coveredPaymentIDs(ctx, mechanicID)
	if err != nil {
		return "", err
	}

	var total entities.Cents
	paymentIDs := make([]string, 0, len(entries))
	var withheld []string
	for _, e := range entries {
		if covered[e.PaymentID] {
			withheld = append(withheld, e.PaymentID)
			continue
		}
		total += e.AmountCents
		paymentIDs = append(paymentIDs, e.PaymentID)
	}
	if len(withheld) > 0 {
		u.alerter.Alert(ctx, "TRANSFER_UNRESOLVED",
			"due ledger entries are referenced by a pending transfer and were withheld from this run; resolve the transfer to release them",
			map[string]string{"mechanic_id": mechanicID, "payment_ids": strings.Join(withheld, ",")})
	}
	if len(paymentIDs) == 0 {
		return "", fmt.Errorf("mechanic %s: all due entries are held by a pending transfer", mechanicID)
	}

	accountID := entries[0].StripeAccountID
	if accountID == "" {
		return "", fmt.Errorf("mechanic %s has due entries but no payout account", mechanicID)
	}

	// One key per mechanic per day; a crashed run retried the same day reuses
	// the processor-side transfer instead of double-paying.
	idemKey := fmt.Sprintf("transfer_%s_%s", mechanicID, now.UTC().Format("2006-01-02"))

	transferID, err := u.gateway.CreateTransfer(ctx, interfaces.TransferRequest{
		AmountCents:          total,
		Currency:             entities.Currency,
		DestinationAccountID: accountID,
		Description:          fmt.Sprintf("Weekly payout for mechanic %s", mechanicID),
		Metadata: map[string]string{
			"mechanic_id": mechanicID,
			"entry_count": fmt.Sprintf("%d", len(entries)),
		},
		IdempotencyKey: idemKey,
	})
	if err != nil {
		return "", err
	}

	if err := u.transferRepo.Create(ctx, entities.Transfer{
		StripeTransferID: transferID,
		MechanicID:       mechanicID,
		StripeAccountID:  accountID,
		AmountCents:      total,
		Status:           entities.TransferStatusPending,
		LedgerPaymentIDs: paymentIDs,
		CreatedAt:        time.Now().UTC(),
	}); err != nil && !errors.Is(err, interfaces.ErrConflict) {
		log.Printf("[ledger][usecase] transfer record write failed transfer_id=%s err=%v", transferID, err)
	}

	if err := u.ledgerRepo.MarkTransferred(ctx, paymentIDs, transferID, time.Now().UTC()); err != nil {
		// Money already moved; the ledger must not drift silently.
		u.alerter.Alert(ctx, "LEDGER_MARK_FAILED",
			"transfer created but ledger entries could not be marked transferred; manual reconciliation required",
			map[string]string{"transfer_id": transferID, "mechanic_id": mechanicID})
		return "", err
	}

	log.Printf("[ledger][usecase] transferred mechanic_id=%s transfer_id=%s amount_cents=%d entries=%d",
		mechanicID, transferID, total, len(entries))
	return transferID, nil
}

func (u *LedgerUseCase) coveredPaymentIDs(ctx context.Context, mechanicID string) (map[string]bool, error) {
	pending, err := u.transferRepo.ListUnresolvedByMechanicID(ctx, mechanicID)
	if err != nil {
		return nil, err
	}
	covered := make(map[string]bool)
	for _, t := range pending {
		for _, id := range t.LedgerPaymentIDs {
			covered[id] = true
		}
	}
	return covered, nil
}

// ConfirmTransfer records processor confirmation and finishes any ledger
// marking a crashed run left behind, releasing the withheld entries.
func (u *LedgerUseCase) ConfirmTransfer(ctx context.Context, stripeTransferID string) error {
	if err := u.transferRepo.UpsertStatus(ctx, stripeTransferID, entities.TransferStatusSucceeded, ""); err != nil {
		return err
	}

	t, err := u.transferRepo.GetByStripeTransferID(ctx, stripeTransferID)
	if err != nil {
		return err
	}
	if len(t.LedgerPaymentIDs) == 0 {
		return nil
	}
	// Already-transferred entries fail the condition; that is the normal case.
	if err := u.ledgerRepo.MarkTransferred(ctx, t.LedgerPaymentIDs, stripeTransferID, time.Now().UTC()); err != nil && !errors.Is(err, interfaces.ErrConflict) {
		return err
	}
	return nil
}

// FailTransfer reopens the ledger entries behind a reversed transfer so the
// next weekly run retries them.
func (u *LedgerUseCase) FailTransfer(ctx context.Context, stripeTransferID, reason string) error {
	if err := u.transferRepo.UpsertStatus(ctx, stripeTransferID, entities.TransferStatusFailed, reason); err != nil {
		return err
	}

	t, err := u.transferRepo.GetByStripeTransferID(ctx, stripeTransferID)
	if err != nil {
		return err
	}
	if len(t.LedgerPaymentIDs) == 0 {
		u.alerter.Alert(ctx, "TRANSFER_ORPHANED",
			"failed transfer has no ledger entries on record; manual reconciliation required",
			map[string]string{"transfer_id": stripeTransferID})
		return nil
	}

	if err := u.ledgerRepo.RevertToAvailable(ctx, t.LedgerPaymentIDs); err != nil {
		return err
	}
	log.Printf("[ledger][usecase] transfer failed, entries reverted transfer_id=%s entries=%d reason=%s",
		stripeTransferID, len(t.LedgerPaymentIDs), reason)
	return nil
}

func (u *LedgerUseCase) MarkPayoutPaid(ctx context.Context, stripeAccountID, stripePayoutID string, at time.Time) error {
	entries, err := u.ledgerRepo.MarkPaidOutByAccount(ctx, stripeAccountID, stripePayoutID, at)
	if err != nil {
		return err
	}
	log.Printf("[ledger][usecase] payout landed account_id=%s payout_id=%s entries=%d",
		stripeAccountID, stripePayoutID, len(entries))
	return nil
}

// RefundEntry closes the ledger entry for a refunded payment. Funds already
// paid out cannot be clawed back here; that case goes to an operator.
func (u *LedgerUseCase) RefundEntry(ctx context.Context, paymentID string) error {
	entry, err := u.ledgerRepo.GetByPaymentID(ctx, paymentID)
	if err != nil {
		return err
	}
	if entry.PaymentID == "" {
		return ErrLedgerEntryNotFound
	}

	if entry.Status == entities.LedgerStatusPaidOut {
		u.alerter.Alert(ctx, "REFUND_AFTER_PAYOUT",
			"refund received for a payment already paid out to the mechanic; manual recovery required",
			map[string]string{"payment_id": paymentID, "mechanic_id": entry.MechanicID, "payout_id": entry.StripePayoutID})
		return nil
	}

	if err := u.ledgerRepo.MarkRefunded(ctx, paymentID); err != nil {
		return err
	}
	log.Printf("[ledger][usecase] entry refunded payment_id=%s prior_status=%s", paymentID, entry.Status)
	return nil
}
