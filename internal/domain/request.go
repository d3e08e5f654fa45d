package domain

import "time"

type RequestStatus string

const (
	RequestStatusPending   RequestStatus = "pending"
	RequestStatusAccepted  RequestStatus = "accepted"
	RequestStatusDeclined  RequestStatus = "declined"
	RequestStatusCancelled RequestStatus = "cancelled"
)

// ActiveRequestStatuses are the non-terminal statuses: a student may hold at
// most one request in these statuses per offer.
var ActiveRequestStatuses = []RequestStatus{RequestStatusPending, RequestStatusAccepted}

type Request struct {
	ID        string        `json:"id"`
	OfferID   string        `json:"offer_id"`
	SlotID    string        `json:"slot_id"`
	TutorID   string        `json:"tutor_id"`
	StudentID string        `json:"student_id"`
	Status    RequestStatus `json:"status"`
	CreatedAt time.Time     `json:"created_at"`
	UpdatedAt time.Time     `json:"updated_at"`
}

// CreateRequestInput targets either a published slot (SlotID set) or a time
// the student proposes themselves (ProposedStartsAt set). Exactly one of the
// two must be provided.
type CreateRequestInput struct {
	OfferID          string
	StudentID        string
	SlotID           string
	ProposedStartsAt *time.Time
	ProposedDuration *int
}

type RequestRole string

const (
	RequestRoleTutor   RequestRole = "tutor"
	RequestRoleStudent RequestRole = "student"
)

// RequestView is a request joined with the display data list endpoints need.
type RequestView struct {
	Request
	OfferTitle      string    `json:"offer_title"`
	SlotStartsAt    time.Time `json:"slot_starts_at"`
	TutorUsername   string    `json:"tutor_username"`
	StudentUsername string    `json:"student_username"`
}
