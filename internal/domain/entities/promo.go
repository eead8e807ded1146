package entities

import "time"

// PromoCreditType distinguishes the two grant kinds.
//
// Full waivers always take priority over partial discounts when a credit is
// selected for consumption, regardless of grant order.

type PromoCreditType string

const (
	// PromoCreditFeeless waives the entire platform fee.
	PromoCreditFeeless PromoCreditType = "FEELESS"
	// PromoCreditFeeless5 takes a fixed $5 off the platform fee.
	PromoCreditFeeless5 PromoCreditType = "FEELESS5"
)

// PartialDiscountCents is the fixed value of a FEELESS5 credit.
const PartialDiscountCents Cents = 500

// PromoCredit is a per-user promotional credit grant.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (user_id-index): user_id
//
// RemainingUses is decremented with a conditional update (remaining_uses > 0)
// so the counter can never go negative even under concurrent consumption.

type PromoCredit struct {
	ID            string          `json:"id"`
	UserID        string          `json:"user_id"`
	CreditType    PromoCreditType `json:"credit_type"`
	RemainingUses int             `json:"remaining_uses"`
	Source        string          `json:"source,omitempty"`
	CreatedAt     time.Time       `json:"created_at"`
}

// DiscountFor computes the discount this credit yields against a fee.
func (p PromoCredit) DiscountFor(feeCents Cents) Cents {
	if p.CreditType == PromoCreditFeeless {
		return feeCents
	}
	return PartialDiscountCents.Min(feeCents)
}

// PromoApplication links a payment to the single credit consumed for it.
//
// Storage model (DynamoDB):
//   - PK: payment_id
//
// The partition key doubles as the uniqueness fence: at most one application
// row can ever exist per payment. Rows are written once and never updated.

type PromoApplication struct {
	PaymentID     string          `json:"payment_id"`
	PromoCreditID string          `json:"promo_credit_id"`
	UserID        string          `json:"user_id"`
	CreditType    PromoCreditType `json:"credit_type"`
	DiscountCents Cents           `json:"discount_cents"`
	FeeAfterCents Cents           `json:"fee_after_cents"`
	AppliedAt     time.Time       `json:"applied_at"`
}

// PromoOutcome reports the result of attempting to consume a credit for a
// payment. Applied=false with a Reason is a normal no-op, not an error.

type PromoOutcome struct {
	Applied       bool            `json:"applied"`
	CreditType    PromoCreditType `json:"credit_type,omitempty"`
	DiscountCents Cents           `json:"discount_cents"`
	FeeAfterCents Cents           `json:"fee_after_cents"`
	Reason        string          `json:"reason,omitempty"`
}

// Promotion is an opt-in promo code, distinct from auto-applied referral
// credits. Stored in the promotions table keyed by code.

type Promotion struct {
	Code               string     `json:"code"`
	Active             bool       `json:"active"`
	PercentOff         int        `json:"percent_off,omitempty"`
	AmountOffCents     Cents      `json:"amount_off_cents,omitempty"`
	MinAmountCents     Cents      `json:"min_amount_cents,omitempty"`
	MaxRedemptions     int        `json:"max_redemptions,omitempty"`
	CurrentRedemptions int        `json:"current_redemptions"`
	StartDate          time.Time  `json:"start_date"`
	EndDate            *time.Time `json:"end_date,omitempty"`
}
