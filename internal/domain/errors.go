package domain

import "errors"

var (
	ErrValidation          = errors.New("validation error")
	ErrOfferNotFound       = errors.New("offer not found")
	ErrBookingNotFound     = errors.New("booking not found")
	ErrOfferFull           = errors.New("offer is full")
	ErrNoSession           = errors.New("no checkout in progress")
	ErrCheckoutBusy        = errors.New("checkout is settling")
	ErrWrongStep           = errors.New("action not allowed at this checkout step")
	ErrConsignorIncomplete = errors.New("consignor details incomplete")
	ErrChooseBank          = errors.New("please choose a bank")
	ErrUnknownBank         = errors.New("unknown bank")
	ErrCancelUnavailable   = errors.New("checkout can no longer be cancelled")
	ErrNotLoggedIn         = errors.New("not logged in")
)
