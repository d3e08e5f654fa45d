package domain

import "time"

type OfferStatus string

const (
	OfferStatusOpen   OfferStatus = "open"
	OfferStatusClosed OfferStatus = "closed"
)

type LocationKind string

const (
	LocationOnline   LocationKind = "online"
	LocationInPerson LocationKind = "in_person"
)

type Location struct {
	Kind    LocationKind `json:"kind"`
	Address string       `json:"address,omitempty"`
}

type Offer struct {
	ID        string      `json:"id"`
	TutorID   string      `json:"tutor_id"`
	SkillID   string      `json:"skill_id"`
	Title     string      `json:"title"`
	Notes     string      `json:"notes"`
	Location  Location    `json:"location"`
	IsGroup   bool        `json:"is_group"`
	Capacity  int         `json:"capacity"`
	Status    OfferStatus `json:"status"`
	Slots     []Slot      `json:"slots"`
	CreatedAt time.Time   `json:"created_at"`
	UpdatedAt time.Time   `json:"updated_at"`
}

// EffectiveCapacity is the number of seats a single slot of this offer can
// hold: 1 for one-on-one offers, at least 2 for group offers.
func (o *Offer) EffectiveCapacity() int {
	if !o.IsGroup {
		return 1
	}
	if o.Capacity < 2 {
		return 2
	}
	return o.Capacity
}

type Slot struct {
	ID              string    `json:"id"`
	OfferID         string    `json:"offer_id"`
	StartsAt        time.Time `json:"starts_at"`
	DurationMinutes *int      `json:"duration_minutes,omitempty"`
	CreatedAt       time.Time `json:"created_at"`
}

type CreateOfferInput struct {
	TutorID  string
	SkillID  string
	Title    string
	Notes    string
	Location Location
	IsGroup  bool
	Capacity int
	Slots    []CreateSlotInput
}

type CreateSlotInput struct {
	StartsAt        time.Time
	DurationMinutes *int
}

type OfferFilter struct {
	TutorID string
	SkillID string
}
