package response

import (
	"wrenchgo_payments/internal/domain/entities"
	"wrenchgo_payments/internal/usecase"
)

type CreditsBalanceResponse struct {
	FeelessCredits  int              `json:"feeless_credits"`
	Feeless5Credits int              `json:"feeless5_credits"`
	TotalCredits    int              `json:"total_credits"`
	Preview         *DiscountPreview `json:"preview,omitempty"`
}

// DiscountPreview is what ApplyPromo would do for a given platform fee,
// without consuming any credit.
type DiscountPreview struct {
	DiscountCents int64  `json:"discount_cents"`
	FeeAfterCents int64  `json:"fee_after_cents"`
	CreditType    string `json:"credit_type,omitempty"`
}

func FromCreditsBalance(b usecase.CreditsBalance) CreditsBalanceResponse {
	return CreditsBalanceResponse{
		FeelessCredits:  b.FeelessCredits,
		Feeless5Credits: b.Feeless5Credits,
		TotalCredits:    b.TotalCredits,
	}
}

func (r *CreditsBalanceResponse) WithPreview(o entities.PromoOutcome) {
	r.Preview = &DiscountPreview{
		DiscountCents: int64(o.DiscountCents),
		FeeAfterCents: int64(o.FeeAfterCents),
		CreditType:    string(o.CreditType),
	}
}

type PromotionValidationResponse struct {
	Valid         bool   `json:"valid"`
	Code          string `json:"code,omitempty"`
	DiscountCents int64  `json:"discount_cents"`
	Reason        string `json:"reason,omitempty"`
}

func FromPromotionValidation(v usecase.PromotionValidation) PromotionValidationResponse {
	return PromotionValidationResponse{
		Valid:         v.Valid,
		Code:          v.Code,
		DiscountCents: int64(v.DiscountCents),
		Reason:        v.Reason,
	}
}
