package domain

import "time"

type SessionStatus string

const (
	SessionStatusScheduled SessionStatus = "scheduled"
	SessionStatusCompleted SessionStatus = "completed"
	SessionStatusCancelled SessionStatus = "cancelled"
)

// Session is the confirmed booking. It is materialized only from an accepted
// request and afterwards lives its own lifecycle (complete/cancel).
type Session struct {
	ID              string        `json:"id"`
	TutorID         string        `json:"tutor_id"`
	StudentID       string        `json:"student_id"`
	SkillID         string        `json:"skill_id"`
	StartsAt        time.Time     `json:"starts_at"`
	DurationMinutes *int          `json:"duration_minutes,omitempty"`
	Location        Location      `json:"location"`
	IsGroup         bool          `json:"is_group"`
	OfferID         string        `json:"offer_id"`
	SlotID          string        `json:"slot_id"`
	Status          SessionStatus `json:"status"`
	CreatedAt       time.Time     `json:"created_at"`
	UpdatedAt       time.Time     `json:"updated_at"`
}
