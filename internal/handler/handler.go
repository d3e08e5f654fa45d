package handler

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/ovchar-k/tutorbook/internal/domain"
	"github.com/ovchar-k/tutorbook/internal/handler/dto"
	"github.com/wb-go/wbf/ginext"
)

type OfferSvc interface {
	CreateOffer(ctx context.Context, input domain.CreateOfferInput) (*domain.Offer, error)
	ListOpen(ctx context.Context, filter domain.OfferFilter) ([]*domain.Offer, error)
	ListByTutor(ctx context.Context, tutorID string, status domain.OfferStatus) ([]*domain.Offer, error)
}

type BookingSvc interface {
	CreateRequest(ctx context.Context, input domain.CreateRequestInput) (*domain.Request, error)
	Accept(ctx context.Context, requestID, actingTutorID string) (*domain.Session, error)
	Decline(ctx context.Context, requestID, actingTutorID string) error
	CancelOffer(ctx context.Context, offerID, actingTutorID string) error
	ListRequests(ctx context.Context, role domain.RequestRole, actorID string, status domain.RequestStatus) ([]*domain.RequestView, error)
}

type SessionSvc interface {
	ListByUser(ctx context.Context, userID string) ([]*domain.Session, error)
	Complete(ctx context.Context, sessionID, actorID string) error
	Cancel(ctx context.Context, sessionID, actorID string) error
}

type UserSvc interface {
	Create(ctx context.Context, input domain.CreateUserInput) (*domain.User, error)
	List(ctx context.Context) ([]*domain.User, error)
}

type Handler struct {
	offerService   OfferSvc
	bookingService BookingSvc
	sessionService SessionSvc
	userService    UserSvc
}

func NewHandler(offerService OfferSvc, bookingService BookingSvc, sessionService SessionSvc, userService UserSvc) *Handler {
	return &Handler{
		offerService:   offerService,
		bookingService: bookingService,
		sessionService: sessionService,
		userService:    userService,
	}
}

// Offers

func (h *Handler) CreateOffer(c *ginext.Context) {
	var req dto.CreateOfferRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	slots := make([]domain.CreateSlotInput, 0, len(req.Slots))
	for _, s := range req.Slots {
		startsAt, err := time.Parse(time.RFC3339, s.StartsAt)
		if err != nil {
			c.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Error: "invalid slot starts_at format, expected RFC3339",
			})
			return
		}
		slots = append(slots, domain.CreateSlotInput{
			StartsAt:        startsAt,
			DurationMinutes: s.DurationMinutes,
		})
	}

	input := domain.CreateOfferInput{
		TutorID: req.TutorID,
		SkillID: req.SkillID,
		Title:   req.Title,
		Notes:   req.Notes,
		Location: domain.Location{
			Kind:    domain.LocationKind(req.Location.Kind),
			Address: req.Location.Address,
		},
		IsGroup:  req.IsGroup,
		Capacity: req.Capacity,
		Slots:    slots,
	}

	offer, err := h.offerService.CreateOffer(c.Request.Context(), input)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToOfferResponse(offer))
}

func (h *Handler) ListOpenOffers(c *ginext.Context) {
	filter := domain.OfferFilter{
		TutorID: c.Query("tutor_id"),
		SkillID: c.Query("skill_id"),
	}

	offers, err := h.offerService.ListOpen(c.Request.Context(), filter)
	if err != nil {
		h.handleError(c, err)
		return
	}

	resp := make([]dto.OfferResponse, 0, len(offers))
	for _, o := range offers {
		resp = append(resp, dto.ToOfferResponse(o))
	}

	c.JSON(http.StatusOK, resp)
}

func (h *Handler) ListMyOffers(c *ginext.Context) {
	tutorID := c.Query("tutor_id")
	if _, err := uuid.Parse(tutorID); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid tutor id"})
		return
	}

	offers, err := h.offerService.ListByTutor(c.Request.Context(), tutorID, domain.OfferStatus(c.Query("status")))
	if err != nil {
		h.handleError(c, err)
		return
	}

	resp := make([]dto.OfferResponse, 0, len(offers))
	for _, o := range offers {
		resp = append(resp, dto.ToOfferResponse(o))
	}

	c.JSON(http.StatusOK, resp)
}

func (h *Handler) CancelOffer(c *ginext.Context) {
	offerID := c.Param("id")
	if _, err := uuid.Parse(offerID); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid offer id"})
		return
	}

	var req dto.TutorActionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	if err := h.bookingService.CancelOffer(c.Request.Context(), offerID, req.TutorID); err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, ginext.H{"status": "cancelled"})
}

// Requests

func (h *Handler) CreateRequest(c *ginext.Context) {
	offerID := c.Param("id")
	if _, err := uuid.Parse(offerID); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid offer id"})
		return
	}

	var req dto.CreateRequestRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	input := domain.CreateRequestInput{
		OfferID:          offerID,
		StudentID:        req.StudentID,
		SlotID:           req.SlotID,
		ProposedDuration: req.ProposedDurationMinutes,
	}
	if req.ProposedStartsAt != "" {
		proposed, err := time.Parse(time.RFC3339, req.ProposedStartsAt)
		if err != nil {
			c.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Error: "invalid proposed_starts_at format, expected RFC3339",
			})
			return
		}
		input.ProposedStartsAt = &proposed
	}

	request, err := h.bookingService.CreateRequest(c.Request.Context(), input)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToRequestResponse(request))
}

func (h *Handler) ListRequests(c *ginext.Context) {
	actorID := c.Query("actor_id")
	if _, err := uuid.Parse(actorID); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid actor id"})
		return
	}

	views, err := h.bookingService.ListRequests(
		c.Request.Context(),
		domain.RequestRole(c.Query("role")),
		actorID,
		domain.RequestStatus(c.Query("status")),
	)
	if err != nil {
		h.handleError(c, err)
		return
	}

	resp := make([]dto.RequestViewResponse, 0, len(views))
	for _, v := range views {
		resp = append(resp, dto.ToRequestViewResponse(v))
	}

	c.JSON(http.StatusOK, resp)
}

func (h *Handler) AcceptRequest(c *ginext.Context) {
	requestID := c.Param("id")
	if _, err := uuid.Parse(requestID); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid request id"})
		return
	}

	var req dto.TutorActionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	session, err := h.bookingService.Accept(c.Request.Context(), requestID, req.TutorID)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToSessionResponse(session))
}

func (h *Handler) DeclineRequest(c *ginext.Context) {
	requestID := c.Param("id")
	if _, err := uuid.Parse(requestID); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid request id"})
		return
	}

	var req dto.TutorActionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	if err := h.bookingService.Decline(c.Request.Context(), requestID, req.TutorID); err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, ginext.H{"status": "declined"})
}

// Sessions

func (h *Handler) ListSessions(c *ginext.Context) {
	userID := c.Query("user_id")
	if _, err := uuid.Parse(userID); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid user id"})
		return
	}

	sessions, err := h.sessionService.ListByUser(c.Request.Context(), userID)
	if err != nil {
		h.handleError(c, err)
		return
	}

	resp := make([]dto.SessionResponse, 0, len(sessions))
	for _, s := range sessions {
		resp = append(resp, dto.ToSessionResponse(s))
	}

	c.JSON(http.StatusOK, resp)
}

func (h *Handler) CompleteSession(c *ginext.Context) {
	h.finishSession(c, h.sessionService.Complete, "completed")
}

func (h *Handler) CancelSession(c *ginext.Context) {
	h.finishSession(c, h.sessionService.Cancel, "cancelled")
}

func (h *Handler) finishSession(c *ginext.Context, op func(context.Context, string, string) error, status string) {
	sessionID := c.Param("id")
	if _, err := uuid.Parse(sessionID); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid session id"})
		return
	}

	var req dto.SessionActionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	if err := op(c.Request.Context(), sessionID, req.ActorID); err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, ginext.H{"status": status})
}

// Users

func (h *Handler) CreateUser(c *ginext.Context) {
	var req dto.CreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	input := domain.CreateUserInput{
		Username:       req.Username,
		TelegramChatID: req.TelegramChatID,
	}

	user, err := h.userService.Create(c.Request.Context(), input)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToUserResponse(user))
}

func (h *Handler) ListUsers(c *ginext.Context) {
	users, err := h.userService.List(c.Request.Context())
	if err != nil {
		h.handleError(c, err)
		return
	}

	resp := make([]dto.UserResponse, 0, len(users))
	for _, u := range users {
		resp = append(resp, dto.ToUserResponse(u))
	}

	c.JSON(http.StatusOK, resp)
}

func (h *Handler) handleError(c *ginext.Context, err error) {
	c.Set("error", err.Error())

	switch {
	case errors.Is(err, domain.ErrOfferNotFound),
		errors.Is(err, domain.ErrSlotNotFound),
		errors.Is(err, domain.ErrRequestNotFound),
		errors.Is(err, domain.ErrSessionNotFound),
		errors.Is(err, domain.ErrUserNotFound):
		c.JSON(http.StatusNotFound, dto.ErrorResponse{Error: err.Error()})

	case errors.Is(err, domain.ErrNotOfferOwner),
		errors.Is(err, domain.ErrNotSessionParty):
		c.JSON(http.StatusForbidden, dto.ErrorResponse{Error: err.Error()})

	case errors.Is(err, domain.ErrSlotFull),
		errors.Is(err, domain.ErrDuplicateRequest),
		errors.Is(err, domain.ErrRequestNotPending),
		errors.Is(err, domain.ErrOfferClosed),
		errors.Is(err, domain.ErrSessionFinished),
		errors.Is(err, domain.ErrUsernameTaken):
		c.JSON(http.StatusConflict, dto.ErrorResponse{Error: err.Error()})

	case errors.Is(err, domain.ErrValidation),
		errors.Is(err, domain.ErrUserInactive):
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})

	default:
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "internal server error"})
	}
}
