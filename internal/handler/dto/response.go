package dto

import (
	"time"

	"github.com/ovchar-k/tutorbook/internal/domain"
)

type SlotResponse struct {
	ID              string `json:"id"`
	OfferID         string `json:"offer_id"`
	StartsAt        string `json:"starts_at"`
	DurationMinutes *int   `json:"duration_minutes,omitempty"`
}

type OfferResponse struct {
	ID        string          `json:"id"`
	TutorID   string          `json:"tutor_id"`
	SkillID   string          `json:"skill_id"`
	Title     string          `json:"title"`
	Notes     string          `json:"notes,omitempty"`
	Location  LocationPayload `json:"location"`
	IsGroup   bool            `json:"is_group"`
	Capacity  int             `json:"capacity"`
	Status    string          `json:"status"`
	Slots     []SlotResponse  `json:"slots"`
	CreatedAt string          `json:"created_at"`
}

type RequestResponse struct {
	ID        string `json:"id"`
	OfferID   string `json:"offer_id"`
	SlotID    string `json:"slot_id"`
	TutorID   string `json:"tutor_id"`
	StudentID string `json:"student_id"`
	Status    string `json:"status"`
	CreatedAt string `json:"created_at"`
}

type RequestViewResponse struct {
	RequestResponse
	OfferTitle      string `json:"offer_title"`
	SlotStartsAt    string `json:"slot_starts_at"`
	TutorUsername   string `json:"tutor_username"`
	StudentUsername string `json:"student_username"`
}

type SessionResponse struct {
	ID              string          `json:"id"`
	TutorID         string          `json:"tutor_id"`
	StudentID       string          `json:"student_id"`
	SkillID         string          `json:"skill_id"`
	StartsAt        string          `json:"starts_at"`
	DurationMinutes *int            `json:"duration_minutes,omitempty"`
	Location        LocationPayload `json:"location"`
	IsGroup         bool            `json:"is_group"`
	OfferID         string          `json:"offer_id"`
	SlotID          string          `json:"slot_id"`
	Status          string          `json:"status"`
}

type UserResponse struct {
	ID             string `json:"id"`
	Username       string `json:"username"`
	Status         string `json:"status"`
	TelegramChatID *int64 `json:"telegram_chat_id,omitempty"`
	CreatedAt      string `json:"created_at"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}

func ToOfferResponse(o *domain.Offer) OfferResponse {
	slots := make([]SlotResponse, 0, len(o.Slots))
	for i := range o.Slots {
		slots = append(slots, ToSlotResponse(&o.Slots[i]))
	}

	return OfferResponse{
		ID:      o.ID,
		TutorID: o.TutorID,
		SkillID: o.SkillID,
		Title:   o.Title,
		Notes:   o.Notes,
		Location: LocationPayload{
			Kind:    string(o.Location.Kind),
			Address: o.Location.Address,
		},
		IsGroup:   o.IsGroup,
		Capacity:  o.Capacity,
		Status:    string(o.Status),
		Slots:     slots,
		CreatedAt: o.CreatedAt.Format(time.RFC3339),
	}
}

func ToSlotResponse(s *domain.Slot) SlotResponse {
	return SlotResponse{
		ID:              s.ID,
		OfferID:         s.OfferID,
		StartsAt:        s.StartsAt.Format(time.RFC3339),
		DurationMinutes: s.DurationMinutes,
	}
}

func ToRequestResponse(r *domain.Request) RequestResponse {
	return RequestResponse{
		ID:        r.ID,
		OfferID:   r.OfferID,
		SlotID:    r.SlotID,
		TutorID:   r.TutorID,
		StudentID: r.StudentID,
		Status:    string(r.Status),
		CreatedAt: r.CreatedAt.Format(time.RFC3339),
	}
}

func ToRequestViewResponse(v *domain.RequestView) RequestViewResponse {
	return RequestViewResponse{
		RequestResponse: ToRequestResponse(&v.Request),
		OfferTitle:      v.OfferTitle,
		SlotStartsAt:    v.SlotStartsAt.Format(time.RFC3339),
		TutorUsername:   v.TutorUsername,
		StudentUsername: v.StudentUsername,
	}
}

func ToSessionResponse(s *domain.Session) SessionResponse {
	return SessionResponse{
		ID:              s.ID,
		TutorID:         s.TutorID,
		StudentID:       s.StudentID,
		SkillID:         s.SkillID,
		StartsAt:        s.StartsAt.Format(time.RFC3339),
		DurationMinutes: s.DurationMinutes,
		Location: LocationPayload{
			Kind:    string(s.Location.Kind),
			Address: s.Location.Address,
		},
		IsGroup: s.IsGroup,
		OfferID: s.OfferID,
		SlotID:  s.SlotID,
		Status:  string(s.Status),
	}
}

func ToUserResponse(u *domain.User) UserResponse {
	return UserResponse{
		ID:             u.ID,
		Username:       u.Username,
		Status:         string(u.Status),
		TelegramChatID: u.TelegramChatID,
		CreatedAt:      u.CreatedAt.Format(time.RFC3339),
	}
}
