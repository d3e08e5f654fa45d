package domain

import "errors"

var (
	ErrOfferNotFound   = errors.New("offer not found")
	ErrSlotNotFound    = errors.New("slot not found")
	ErrRequestNotFound = errors.New("request not found")
	ErrSessionNotFound = errors.New("session not found")
	ErrUserNotFound    = errors.New("user not found")
)

var (
	ErrSlotFull          = errors.New("slot already full")
	ErrDuplicateRequest  = errors.New("student already has an active request for this offer")
	ErrRequestNotPending = errors.New("request already resolved")
	ErrOfferClosed       = errors.New("offer is closed")
	ErrSessionFinished   = errors.New("session already finished")
)

var (
	ErrNotOfferOwner   = errors.New("actor is not the offer's tutor")
	ErrNotSessionParty = errors.New("actor is not a party of the session")
)

var (
	ErrUsernameTaken = errors.New("username is already taken")
	ErrUserInactive  = errors.New("user is not active")
)

var (
	ErrValidation = errors.New("validation error")
)
