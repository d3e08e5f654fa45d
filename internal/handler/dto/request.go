package dto

type LocationPayload struct {
	Kind    string `json:"kind" binding:"required,oneof=online in_person"`
	Address string `json:"address"`
}

type SlotPayload struct {
	StartsAt        string `json:"starts_at" binding:"required"`
	DurationMinutes *int   `json:"duration_minutes" binding:"omitempty,gt=0"`
}

type CreateOfferRequest struct {
	TutorID  string          `json:"tutor_id" binding:"required,uuid"`
	SkillID  string          `json:"skill_id" binding:"required"`
	Title    string          `json:"title" binding:"required"`
	Notes    string          `json:"notes"`
	Location LocationPayload `json:"location" binding:"required"`
	IsGroup  bool            `json:"is_group"`
	Capacity int             `json:"capacity"`
	Slots    []SlotPayload   `json:"slots" binding:"required,min=1,max=5,dive"`
}

type CreateRequestRequest struct {
	StudentID               string `json:"student_id" binding:"required,uuid"`
	SlotID                  string `json:"slot_id"`
	ProposedStartsAt        string `json:"proposed_starts_at"`
	ProposedDurationMinutes *int   `json:"proposed_duration_minutes"`
}

type TutorActionRequest struct {
	TutorID string `json:"tutor_id" binding:"required,uuid"`
}

type SessionActionRequest struct {
	ActorID string `json:"actor_id" binding:"required,uuid"`
}

type CreateUserRequest struct {
	Username       string `json:"username" binding:"required"`
	TelegramChatID *int64 `json:"telegram_chat_id"`
}
