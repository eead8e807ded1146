package response

import "wrenchgo_payments/internal/usecase"

type AuthorizeContractResponse struct {
	Authorized        bool `json:"authorized"`
	AlreadyAuthorized bool `json:"already_authorized"`
}

func FromAuthorizeResult(r usecase.AuthorizeResult) AuthorizeContractResponse {
	return AuthorizeContractResponse{
		Authorized:        r.Authorized,
		AlreadyAuthorized: r.AlreadyAuthorized,
	}
}

type CaptureContractResponse struct {
	Captured        bool   `json:"captured"`
	AlreadyCaptured bool   `json:"already_captured"`
	HoldStatus      string `json:"hold_status,omitempty"`
}

func FromCaptureResult(r usecase.CaptureResult) CaptureContractResponse {
	return CaptureContractResponse{
		Captured:        r.Captured,
		AlreadyCaptured: r.AlreadyCaptured,
		HoldStatus:      string(r.HoldStatus),
	}
}

type PayoutRunResponse struct {
	EntriesDue       int      `json:"entries_due"`
	TransfersCreated int      `json:"transfers_created"`
	TransferIDs      []string `json:"transfer_ids,omitempty"`
	FailedMechanics  []string `json:"failed_mechanics,omitempty"`
}

func FromPayoutRunResult(r usecase.PayoutRunResult) PayoutRunResponse {
	return PayoutRunResponse{
		EntriesDue:       r.EntriesDue,
		TransfersCreated: r.TransfersCreated,
		TransferIDs:      r.TransferIDs,
		FailedMechanics:  r.FailedMechanics,
	}
}
