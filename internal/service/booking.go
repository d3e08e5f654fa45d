package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/ovchar-k/tutorbook/internal/domain"
	"github.com/ovchar-k/tutorbook/internal/service/ports"
	"github.com/wb-go/wbf/logger"
)

// proposalGraceWindow tolerates clock skew and input latency when a student
// proposes a time of their own: proposals up to five minutes stale still pass.
const proposalGraceWindow = 5 * time.Minute

// BookingService drives the request state machine. Acceptance is
// first-accept-wins per seat: a pending request can lose solely because a
// concurrent accept took the last seat, regardless of creation order.
type BookingService struct {
	offerRepo    ports.OfferRepo
	requestRepo  ports.RequestRepo
	userRepo     ports.UserRepo
	materializer ports.SessionMaterializer
	notifier     ports.Notifier
	logger       logger.Logger
}

func NewBookingService(
	offerRepo ports.OfferRepo,
	requestRepo ports.RequestRepo,
	userRepo ports.UserRepo,
	materializer ports.SessionMaterializer,
	notifier ports.Notifier,
	logger logger.Logger,
) *BookingService {
	return &BookingService{
		offerRepo:    offerRepo,
		requestRepo:  requestRepo,
		userRepo:     userRepo,
		materializer: materializer,
		notifier:     notifier,
		logger:       logger,
	}
}

func (s *BookingService) CreateRequest(ctx context.Context, input domain.CreateRequestInput) (*domain.Request, error) {
	if input.OfferID == "" {
		return nil, fmt.Errorf("%w: offer_id is required", domain.ErrValidation)
	}
	if input.StudentID == "" {
		return nil, fmt.Errorf("%w: student_id is required", domain.ErrValidation)
	}
	if (input.SlotID == "") == (input.ProposedStartsAt == nil) {
		return nil, fmt.Errorf("%w: provide either slot_id or a proposed time, not both", domain.ErrValidation)
	}
	if input.ProposedDuration != nil && *input.ProposedDuration <= 0 {
		return nil, fmt.Errorf("%w: proposed duration must be positive", domain.ErrValidation)
	}
	if input.ProposedStartsAt != nil && time.Since(*input.ProposedStartsAt) > proposalGraceWindow {
		return nil, fmt.Errorf("%w: proposed time is in the past", domain.ErrValidation)
	}

	offer, err := s.offerRepo.GetByID(ctx, input.OfferID)
	if err != nil {
		return nil, fmt.Errorf("check offer: %w", err)
	}
	if offer.Status != domain.OfferStatusOpen {
		return nil, domain.ErrOfferClosed
	}
	if offer.TutorID == input.StudentID {
		return nil, fmt.Errorf("%w: tutor cannot request their own offer", domain.ErrValidation)
	}

	student, err := s.userRepo.GetByID(ctx, input.StudentID)
	if err != nil {
		return nil, fmt.Errorf("check student: %w", err)
	}
	if student.Status != domain.UserStatusActive {
		return nil, fmt.Errorf("student %s: %w", student.ID, domain.ErrUserInactive)
	}

	tutor, err := s.userRepo.GetByID(ctx, offer.TutorID)
	if err != nil {
		return nil, fmt.Errorf("check tutor: %w", err)
	}
	if tutor.Status != domain.UserStatusActive {
		return nil, fmt.Errorf("tutor %s: %w", tutor.ID, domain.ErrUserInactive)
	}

	now := time.Now().UTC()
	req := &domain.Request{
		ID:        uuid.New().String(),
		OfferID:   offer.ID,
		SlotID:    input.SlotID,
		TutorID:   offer.TutorID,
		StudentID: input.StudentID,
		Status:    domain.RequestStatusPending,
		CreatedAt: now,
		UpdatedAt: now,
	}

	var proposed *domain.CreateSlotInput
	if input.ProposedStartsAt != nil {
		proposed = &domain.CreateSlotInput{
			StartsAt:        input.ProposedStartsAt.UTC(),
			DurationMinutes: input.ProposedDuration,
		}
	}

	if err = s.requestRepo.Create(ctx, req, proposed); err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}

	s.logger.Info("request created",
		logger.String("request_id", req.ID),
		logger.String("offer_id", offer.ID),
		logger.String("slot_id", req.SlotID),
		logger.String("student_id", req.StudentID),
	)

	slot := s.requestSlot(offer, req, proposed)
	go s.notifier.NotifyRequestReceived(context.WithoutCancel(ctx), tutor, offer, slot)

	return req, nil
}

func (s *BookingService) requestSlot(offer *domain.Offer, req *domain.Request, proposed *domain.CreateSlotInput) *domain.Slot {
	for i := range offer.Slots {
		if offer.Slots[i].ID == req.SlotID {
			return &offer.Slots[i]
		}
	}
	if proposed != nil {
		return &domain.Slot{
			ID:              req.SlotID,
			OfferID:         offer.ID,
			StartsAt:        proposed.StartsAt,
			DurationMinutes: proposed.DurationMinutes,
		}
	}
	return &domain.Slot{ID: req.SlotID, OfferID: offer.ID}
}

// Accept resolves a pending request in the tutor's favor: seat reservation
// through the capacity arbiter, session materialization, then the cascade
// closing the offer and declining requests that can no longer be served.
func (s *BookingService) Accept(ctx context.Context, requestID, actingTutorID string) (*domain.Session, error) {
	req, err := s.requestRepo.GetByID(ctx, requestID)
	if err != nil {
		return nil, fmt.Errorf("get request: %w", err)
	}
	if req.TutorID != actingTutorID {
		return nil, domain.ErrNotOfferOwner
	}

	offer, err := s.offerRepo.GetByID(ctx, req.OfferID)
	if err != nil {
		return nil, fmt.Errorf("get offer: %w", err)
	}

	accepted, err := s.requestRepo.TryAccept(ctx, requestID)
	if err != nil {
		if errors.Is(err, domain.ErrSlotFull) {
			// Lost the capacity race: this request cannot be served anymore.
			if derr := s.requestRepo.Decline(ctx, requestID); derr != nil {
				s.logger.Error("failed to decline over-capacity request",
					logger.String("request_id", requestID),
					logger.String("error", derr.Error()),
				)
			}
			go s.notifyDeclined(context.WithoutCancel(ctx), []*domain.Request{req}, offer)
		}
		return nil, fmt.Errorf("accept request: %w", err)
	}

	session, err := s.materializer.Materialize(ctx, accepted, offer)
	if err != nil {
		// Release the seat: without a session the acceptance must not stand.
		if rerr := s.requestRepo.ResetToPending(ctx, requestID); rerr != nil {
			s.logger.Error("failed to revert request after materialization failure",
				logger.String("request_id", requestID),
				logger.String("error", rerr.Error()),
			)
		}
		return nil, fmt.Errorf("materialize session: %w", err)
	}

	declined, err := s.cascade(ctx, offer, accepted)
	if err != nil {
		return nil, err
	}

	s.logger.Info("request accepted",
		logger.String("request_id", requestID),
		logger.String("offer_id", offer.ID),
		logger.String("session_id", session.ID),
		logger.Int("declined", len(declined)),
	)

	notifyCtx := context.WithoutCancel(ctx)
	if student, uerr := s.userRepo.GetByID(ctx, accepted.StudentID); uerr != nil {
		s.logger.Error("failed to get student for accept notification",
			logger.String("student_id", accepted.StudentID),
			logger.String("error", uerr.Error()),
		)
	} else {
		go s.notifier.NotifyRequestAccepted(notifyCtx, student, session)
	}
	go s.notifyDeclined(notifyCtx, declined, offer)

	return session, nil
}

// cascade applies the post-acceptance side effects. One-on-one offers close
// outright and shed every other pending request; group offers shed pending
// requests on the slot that just filled up and close once every slot is full.
func (s *BookingService) cascade(ctx context.Context, offer *domain.Offer, accepted *domain.Request) ([]*domain.Request, error) {
	if !offer.IsGroup {
		if _, err := s.offerRepo.Close(ctx, offer.ID); err != nil {
			return nil, fmt.Errorf("close offer: %w", err)
		}
		declined, err := s.requestRepo.DeclineOtherPending(ctx, offer.ID, accepted.ID)
		if err != nil {
			return nil, fmt.Errorf("decline other pending: %w", err)
		}
		return declined, nil
	}

	counts, err := s.requestRepo.CountAcceptedBySlot(ctx, offer.ID)
	if err != nil {
		return nil, fmt.Errorf("count accepted: %w", err)
	}
	capacity := offer.EffectiveCapacity()

	var declined []*domain.Request
	if counts[accepted.SlotID] >= capacity {
		declined, err = s.requestRepo.DeclinePendingOnSlot(ctx, accepted.SlotID, accepted.ID)
		if err != nil {
			return nil, fmt.Errorf("decline pending on slot: %w", err)
		}
	}

	allFull := true
	for _, slot := range offer.Slots {
		if counts[slot.ID] < capacity {
			allFull = false
			break
		}
	}
	if allFull {
		if _, err = s.offerRepo.Close(ctx, offer.ID); err != nil {
			return nil, fmt.Errorf("close offer: %w", err)
		}
	}

	return declined, nil
}

func (s *BookingService) Decline(ctx context.Context, requestID, actingTutorID string) error {
	req, err := s.requestRepo.GetByID(ctx, requestID)
	if err != nil {
		return fmt.Errorf("get request: %w", err)
	}
	if req.TutorID != actingTutorID {
		return domain.ErrNotOfferOwner
	}

	if err = s.requestRepo.Decline(ctx, requestID); err != nil {
		return fmt.Errorf("decline request: %w", err)
	}

	s.logger.Info("request declined",
		logger.String("request_id", requestID),
		logger.String("offer_id", req.OfferID),
	)

	offer, err := s.offerRepo.GetByID(ctx, req.OfferID)
	if err != nil {
		s.logger.Error("failed to get offer for decline notification",
			logger.String("offer_id", req.OfferID),
			logger.String("error", err.Error()),
		)
		return nil
	}
	go s.notifyDeclined(context.WithoutCancel(ctx), []*domain.Request{req}, offer)

	return nil
}

// CancelOffer withdraws an open offer: closes it, cancels every pending
// request and notifies each affected student once. Cancelling an already
// closed offer is a conflict, not a no-op, so callers can surface it.
func (s *BookingService) CancelOffer(ctx context.Context, offerID, actingTutorID string) error {
	offer, err := s.offerRepo.GetByID(ctx, offerID)
	if err != nil {
		return fmt.Errorf("get offer: %w", err)
	}
	if offer.TutorID != actingTutorID {
		return domain.ErrNotOfferOwner
	}
	if offer.Status != domain.OfferStatusOpen {
		return domain.ErrOfferClosed
	}

	closedNow, err := s.offerRepo.Close(ctx, offerID)
	if err != nil {
		return fmt.Errorf("close offer: %w", err)
	}
	if !closedNow {
		// A concurrent cancel or a final accept got there first.
		return domain.ErrOfferClosed
	}

	cancelled, err := s.requestRepo.CancelPendingByOffer(ctx, offerID)
	if err != nil {
		return fmt.Errorf("cancel pending requests: %w", err)
	}

	s.logger.Info("offer cancelled",
		logger.String("offer_id", offerID),
		logger.Int("cancelled_requests", len(cancelled)),
	)

	go s.notifyOfferCancelled(context.WithoutCancel(ctx), cancelled, offer)

	return nil
}

func (s *BookingService) ListRequests(ctx context.Context, role domain.RequestRole, actorID string, status domain.RequestStatus) ([]*domain.RequestView, error) {
	if role != domain.RequestRoleTutor && role != domain.RequestRoleStudent {
		return nil, fmt.Errorf("%w: unknown role %q", domain.ErrValidation, role)
	}
	if actorID == "" {
		return nil, fmt.Errorf("%w: actor_id is required", domain.ErrValidation)
	}
	switch status {
	case "", domain.RequestStatusPending, domain.RequestStatusAccepted, domain.RequestStatusDeclined, domain.RequestStatusCancelled:
	default:
		return nil, fmt.Errorf("%w: unknown request status %q", domain.ErrValidation, status)
	}

	return s.requestRepo.ListViews(ctx, role, actorID, status)
}

func (s *BookingService) notifyDeclined(ctx context.Context, requests []*domain.Request, offer *domain.Offer) {
	for _, req := range requests {
		student, err := s.userRepo.GetByID(ctx, req.StudentID)
		if err != nil {
			s.logger.Error("failed to get student for decline notification",
				logger.String("student_id", req.StudentID),
			)
			continue
		}
		s.notifier.NotifyRequestDeclined(ctx, student, offer)
	}
}

func (s *BookingService) notifyOfferCancelled(ctx context.Context, cancelled []*domain.Request, offer *domain.Offer) {
	seen := make(map[string]struct{}, len(cancelled))
	for _, req := range cancelled {
		if _, ok := seen[req.StudentID]; ok {
			continue
		}
		seen[req.StudentID] = struct{}{}

		student, err := s.userRepo.GetByID(ctx, req.StudentID)
		if err != nil {
			s.logger.Error("failed to get student for cancel notification",
				logger.String("student_id", req.StudentID),
			)
			continue
		}
		s.notifier.NotifyOfferCancelled(ctx, student, offer)
	}
}
