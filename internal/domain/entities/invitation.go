package entities

import "time"

// Invitation links an inviter to an invited user. One row per invited user,
// created at signup.
//
// Storage model (DynamoDB):
//   - PK: invited_id

type Invitation struct {
	InvitedID   string    `json:"invited_id"`
	InviterID   string    `json:"inviter_id"`
	InvitedRole string    `json:"invited_role"` // "customer" or "mechanic"
	InviteCode  string    `json:"invite_code,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}

// InvitationAwardType identifies which row of the award table was granted.

type InvitationAwardType string

const (
	// AwardFeeless1 - invited customer completed their first fee-bearing
	// payment: inviter gets one full-waiver credit.
	AwardFeeless1 InvitationAwardType = "FEELESS_1"
	// AwardFeeless5x5 - invited mechanic: inviter gets five $5-off credits.
	AwardFeeless5x5 InvitationAwardType = "FEELESS5_5"
)

// AwardOutcome reports whether an invitation award was granted for a payment.

type AwardOutcome struct {
	Awarded   bool                `json:"awarded"`
	InviterID string              `json:"inviter_id,omitempty"`
	AwardType InvitationAwardType `json:"award_type,omitempty"`
}

// InvitationAward records that inviter credits were granted for a specific
// payment and processor event.
//
// Storage model (DynamoDB):
//   - PK: invited_id (first-qualifying-payment-only: at most one award can
//     ever exist per invited user, enforced by a conditional put)

type InvitationAward struct {
	InvitedID     string              `json:"invited_id"`
	InviterID     string              `json:"inviter_id"`
	PaymentID     string              `json:"payment_id"`
	StripeEventID string              `json:"stripe_event_id"`
	AwardType     InvitationAwardType `json:"award_type"`
	CreatedAt     time.Time           `json:"created_at"`
}
