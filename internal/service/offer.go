package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/ovchar-k/tutorbook/internal/domain"
	"github.com/ovchar-k/tutorbook/internal/service/ports"
)

const (
	maxOfferCapacity = 50
	maxOfferSlots    = 5
)

type OfferService struct {
	offerRepo ports.OfferRepo
	userRepo  ports.UserRepo
}

func NewOfferService(offerRepo ports.OfferRepo, userRepo ports.UserRepo) *OfferService {
	return &OfferService{
		offerRepo: offerRepo,
		userRepo:  userRepo,
	}
}

func (s *OfferService) CreateOffer(ctx context.Context, input domain.CreateOfferInput) (*domain.Offer, error) {
	if !input.IsGroup && input.Capacity == 0 {
		input.Capacity = 1
	}
	if err := validateOfferInput(input); err != nil {
		return nil, err
	}

	tutor, err := s.userRepo.GetByID(ctx, input.TutorID)
	if err != nil {
		return nil, fmt.Errorf("check tutor: %w", err)
	}
	if tutor.Status != domain.UserStatusActive {
		return nil, fmt.Errorf("tutor %s: %w", tutor.ID, domain.ErrUserInactive)
	}

	capacity := input.Capacity
	if !input.IsGroup {
		capacity = 1
	}

	now := time.Now().UTC()
	offer := &domain.Offer{
		ID:        uuid.New().String(),
		TutorID:   input.TutorID,
		SkillID:   input.SkillID,
		Title:     input.Title,
		Notes:     input.Notes,
		Location:  input.Location,
		IsGroup:   input.IsGroup,
		Capacity:  capacity,
		Status:    domain.OfferStatusOpen,
		CreatedAt: now,
		UpdatedAt: now,
	}

	offer.Slots = make([]domain.Slot, 0, len(input.Slots))
	for _, in := range input.Slots {
		offer.Slots = append(offer.Slots, domain.Slot{
			ID:              uuid.New().String(),
			OfferID:         offer.ID,
			StartsAt:        in.StartsAt.UTC(),
			DurationMinutes: in.DurationMinutes,
			CreatedAt:       now,
		})
	}

	if err := s.offerRepo.Create(ctx, offer); err != nil {
		return nil, fmt.Errorf("create offer: %w", err)
	}

	return offer, nil
}

func validateOfferInput(input domain.CreateOfferInput) error {
	if input.Title == "" {
		return fmt.Errorf("%w: title is required", domain.ErrValidation)
	}
	if input.SkillID == "" {
		return fmt.Errorf("%w: skill_id is required", domain.ErrValidation)
	}
	switch input.Location.Kind {
	case domain.LocationOnline:
	case domain.LocationInPerson:
		if input.Location.Address == "" {
			return fmt.Errorf("%w: address is required for in-person offers", domain.ErrValidation)
		}
	default:
		return fmt.Errorf("%w: unknown location kind %q", domain.ErrValidation, input.Location.Kind)
	}
	if input.Capacity < 1 || input.Capacity > maxOfferCapacity {
		return fmt.Errorf("%w: capacity must be between 1 and %d", domain.ErrValidation, maxOfferCapacity)
	}
	if input.IsGroup && input.Capacity < 2 {
		return fmt.Errorf("%w: group offers need capacity of at least 2", domain.ErrValidation)
	}
	if len(input.Slots) == 0 || len(input.Slots) > maxOfferSlots {
		return fmt.Errorf("%w: an offer needs 1 to %d slots", domain.ErrValidation, maxOfferSlots)
	}
	for _, slot := range input.Slots {
		if slot.StartsAt.IsZero() {
			return fmt.Errorf("%w: slot time is required", domain.ErrValidation)
		}
		// Slot times in the past are accepted here on purpose: only
		// student-proposed times are checked against the clock.
		if slot.DurationMinutes != nil && *slot.DurationMinutes <= 0 {
			return fmt.Errorf("%w: slot duration must be positive", domain.ErrValidation)
		}
	}

	return nil
}

func (s *OfferService) ListOpen(ctx context.Context, filter domain.OfferFilter) ([]*domain.Offer, error) {
	return s.offerRepo.ListOpen(ctx, filter)
}

func (s *OfferService) ListByTutor(ctx context.Context, tutorID string, status domain.OfferStatus) ([]*domain.Offer, error) {
	if tutorID == "" {
		return nil, fmt.Errorf("%w: tutor_id is required", domain.ErrValidation)
	}
	switch status {
	case "", domain.OfferStatusOpen, domain.OfferStatusClosed:
	default:
		return nil, fmt.Errorf("%w: unknown offer status %q", domain.ErrValidation, status)
	}

	return s.offerRepo.ListByTutor(ctx, tutorID, status)
}

func (s *OfferService) GetByID(ctx context.Context, id string) (*domain.Offer, error) {
	return s.offerRepo.GetByID(ctx, id)
}
