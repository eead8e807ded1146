package entities

// HoldStatus mirrors the processor's authorization states for a manual-capture
// hold. requires_capture means funds are reserved and waiting for an explicit
// capture tied to job completion.

type HoldStatus string

const (
	HoldStatusRequiresPaymentMethod HoldStatus = "requires_payment_method"
	HoldStatusRequiresConfirmation  HoldStatus = "requires_confirmation"
	HoldStatusRequiresAction        HoldStatus = "requires_action"
	HoldStatusProcessing            HoldStatus = "processing"
	HoldStatusRequiresCapture       HoldStatus = "requires_capture"
	HoldStatusSucceeded             HoldStatus = "succeeded"
	HoldStatusCanceled              HoldStatus = "canceled"
)

// ProcessorHold is the gateway's view of an authorization hold.

type ProcessorHold struct {
	ID             string
	Status         HoldStatus
	AmountCents    Cents
	ClientSecret   string
	LatestChargeID string
	Metadata       map[string]string
}

// PaymentStatusForHold maps a processor hold status onto the internal payment
// status enum.
func PaymentStatusForHold(s HoldStatus) PaymentStatus {
	switch s {
	case HoldStatusRequiresAction:
		return PaymentStatusRequiresAction
	case HoldStatusProcessing:
		return PaymentStatusProcessing
	case HoldStatusRequiresCapture:
		return PaymentStatusAuthorized
	case HoldStatusSucceeded:
		return PaymentStatusSucceeded
	case HoldStatusCanceled:
		return PaymentStatusCancelled
	default:
		return PaymentStatusPending
	}
}
