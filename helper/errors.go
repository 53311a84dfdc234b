package helper

import "errors"

// Domain rejections. Every one of these leaves storage exactly as it
// was: callers map them to HTTP statuses, they are never retried here.
var (
	ErrSlotUnavailable      = errors.New("slot unavailable")
	ErrInvalidTransition    = errors.New("invalid status transition")
	ErrInsufficientBalance  = errors.New("insufficient balance")
	ErrTierLocked           = errors.New("tier locked")
	ErrRecipientNotEligible = errors.New("recipient not eligible")
	ErrSelfTransfer         = errors.New("sender and recipient coincide")
	ErrInvalidAmount        = errors.New("invalid amount")
	ErrAlreadyReviewed      = errors.New("order already reviewed")
	ErrOrderNotDelivered    = errors.New("order not delivered")
)
