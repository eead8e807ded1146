package interfaces

import "errors"

// ErrConflict is returned by repositories when a conditional write loses a
// race (item already exists, counter exhausted, transaction cancelled).
// Callers resolve it as an idempotent no-op, never as a user-facing failure.
var ErrConflict = errors.New("conditional write conflict")

// Gateway error classes. The gateway maps processor decline codes onto these
// so usecases never inspect provider error payloads.
var (
	ErrCardDeclined         = errors.New("payment method declined")
	ErrNoPaymentMethod      = errors.New("no valid payment method")
	ErrAccountNotChargeable = errors.New("account not chargeable")
)
