package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/ovchar-k/tutorbook/internal/domain"
	"github.com/ovchar-k/tutorbook/internal/service/ports"
	"github.com/wb-go/wbf/logger"
)

// SessionService owns sessions after materialization: the booking workflow
// creates them through Materialize and never touches them again.
type SessionService struct {
	sessionRepo ports.SessionRepo
	logger      logger.Logger
}

func NewSessionService(sessionRepo ports.SessionRepo, logger logger.Logger) *SessionService {
	return &SessionService{
		sessionRepo: sessionRepo,
		logger:      logger,
	}
}

// Materialize turns an accepted request into a scheduled session, copying the
// teaching details from the request's offer and slot.
func (s *SessionService) Materialize(ctx context.Context, req *domain.Request, offer *domain.Offer) (*domain.Session, error) {
	if req.Status != domain.RequestStatusAccepted {
		return nil, fmt.Errorf("%w: only accepted requests materialize", domain.ErrValidation)
	}

	var slot *domain.Slot
	for i := range offer.Slots {
		if offer.Slots[i].ID == req.SlotID {
			slot = &offer.Slots[i]
			break
		}
	}
	if slot == nil {
		return nil, domain.ErrSlotNotFound
	}

	now := time.Now().UTC()
	session := &domain.Session{
		ID:              uuid.New().String(),
		TutorID:         req.TutorID,
		StudentID:       req.StudentID,
		SkillID:         offer.SkillID,
		StartsAt:        slot.StartsAt,
		DurationMinutes: slot.DurationMinutes,
		Location:        offer.Location,
		IsGroup:         offer.IsGroup,
		OfferID:         offer.ID,
		SlotID:          slot.ID,
		Status:          domain.SessionStatusScheduled,
		CreatedAt:       now,
		UpdatedAt:       now,
	}

	if err := s.sessionRepo.Create(ctx, session); err != nil {
		return nil, fmt.Errorf("create session: %w", err)
	}

	s.logger.Info("session materialized",
		logger.String("session_id", session.ID),
		logger.String("request_id", req.ID),
		logger.String("offer_id", offer.ID),
	)

	return session, nil
}

func (s *SessionService) ListByUser(ctx context.Context, userID string) ([]*domain.Session, error) {
	if userID == "" {
		return nil, fmt.Errorf("%w: user_id is required", domain.ErrValidation)
	}
	return s.sessionRepo.ListByUser(ctx, userID)
}

func (s *SessionService) Complete(ctx context.Context, sessionID, actorID string) error {
	return s.finish(ctx, sessionID, actorID, domain.SessionStatusCompleted)
}

func (s *SessionService) Cancel(ctx context.Context, sessionID, actorID string) error {
	return s.finish(ctx, sessionID, actorID, domain.SessionStatusCancelled)
}

func (s *SessionService) finish(ctx context.Context, sessionID, actorID string, status domain.SessionStatus) error {
	session, err := s.sessionRepo.GetByID(ctx, sessionID)
	if err != nil {
		return fmt.Errorf("get session: %w", err)
	}
	if session.TutorID != actorID && session.StudentID != actorID {
		return domain.ErrNotSessionParty
	}

	if err = s.sessionRepo.Finish(ctx, sessionID, status); err != nil {
		return fmt.Errorf("finish session: %w", err)
	}

	s.logger.Info("session finished",
		logger.String("session_id", sessionID),
		logger.String("status", string(status)),
	)

	return nil
}

// CompleteElapsed is driven by the sweeper and marks scheduled sessions whose
// end time already passed as completed.
func (s *SessionService) CompleteElapsed(ctx context.Context) ([]*domain.Session, error) {
	completed, err := s.sessionRepo.CompleteElapsed(ctx)
	if err != nil {
		return nil, fmt.Errorf("complete elapsed: %w", err)
	}

	if len(completed) > 0 {
		s.logger.Info("elapsed sessions completed",
			logger.Int("count", len(completed)),
		)
	}

	return completed, nil
}
