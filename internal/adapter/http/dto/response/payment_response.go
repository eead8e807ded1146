package response

import (
	"time"

	"wrenchgo_payments/internal/domain/entities"
	"wrenchgo_payments/internal/usecase"
)

type CreatePaymentResponse struct {
	PaymentID           string `json:"payment_id"`
	PaymentIntentID     string `json:"payment_intent_id,omitempty"`
	ClientSecret        string `json:"client_secret,omitempty"`
	Status              string `json:"status"`
	AmountCents         int64  `json:"amount_cents"`
	OriginalAmountCents int64  `json:"original_amount_cents"`
	DiscountCents       int64  `json:"discount_cents"`
	PlatformFeeCents    int64  `json:"platform_fee_cents"`
	PromoCreditType     string `json:"promo_credit_type,omitempty"`
	AlreadyExists       bool   `json:"already_exists"`
}

func FromCreatePaymentResult(r usecase.CreatePaymentResult) CreatePaymentResponse {
	return CreatePaymentResponse{
		PaymentID:           r.PaymentID,
		PaymentIntentID:     r.HoldToken,
		ClientSecret:        r.ClientSecret,
		Status:              string(r.Status),
		AmountCents:         int64(r.NetAmountCents),
		OriginalAmountCents: int64(r.OriginalAmountCents),
		DiscountCents:       int64(r.DiscountCents),
		PlatformFeeCents:    int64(r.FeeAfterCents),
		PromoCreditType:     string(r.PromoCreditType),
		AlreadyExists:       r.AlreadyExists,
	}
}

type PaymentStatusResponse struct {
	PaymentID           string     `json:"payment_id"`
	JobID               string     `json:"job_id"`
	Status              string     `json:"status"`
	AmountCents         int64      `json:"amount_cents"`
	PlatformFeeCents    int64      `json:"platform_fee_cents"`
	DiscountCents       int64      `json:"discount_cents"`
	AmountRefundedCents int64      `json:"amount_refunded_cents"`
	ErrorMessage        string     `json:"error_message,omitempty"`
	CreatedAt           time.Time  `json:"created_at"`
	PaidAt              *time.Time `json:"paid_at,omitempty"`
}

func FromPayment(p entities.Payment) PaymentStatusResponse {
	return PaymentStatusResponse{
		PaymentID:           p.ID,
		JobID:               p.JobID,
		Status:              string(p.Status),
		AmountCents:         int64(p.AmountCents),
		PlatformFeeCents:    int64(p.PlatformFeeCents),
		DiscountCents:       int64(p.PromoDiscountCents),
		AmountRefundedCents: int64(p.AmountRefundedCents),
		ErrorMessage:        p.ErrorMessage,
		CreatedAt:           p.CreatedAt,
		PaidAt:              p.PaidAt,
	}
}
