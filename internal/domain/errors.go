package domain

import "errors"

var (
	ErrPayoutNotFound      = errors.New("payout not found")
	ErrMerchantNotFound    = errors.New("merchant not found")
	ErrTraderNotFound      = errors.New("trader not found")
	ErrUnauthorized        = errors.New("caller is not the owning party")
	ErrInvalidStatus       = errors.New("operation not allowed in current payout status")
	ErrAlreadyAccepted     = errors.New("payout already accepted by another trader")
	ErrPayoutExpired       = errors.New("payout has expired")
	ErrInsufficientBalance = errors.New("insufficient RUB balance")
	ErrPayoutLimitReached  = errors.New("maximum simultaneous payouts reached")
	ErrNoEligibleTraders   = errors.New("no traders available with sufficient RUB balance")
	ErrNoTraderAssigned    = errors.New("no trader assigned to payout")
	ErrValidation          = errors.New("validation failed")
)
