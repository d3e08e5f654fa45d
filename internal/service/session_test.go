package service

import (
	"context"
	"testing"
	"time"

	"github.com/ovchar-k/tutorbook/internal/domain"
	"github.com/ovchar-k/tutorbook/internal/service/ports/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestSessionService_Materialize_Success(t *testing.T) {
	sessionRepo := mocks.NewMockSessionRepo(t)
	svc := NewSessionService(sessionRepo, newTestLogger(t))

	duration := 60
	startsAt := time.Now().Add(24 * time.Hour)
	offer := &domain.Offer{
		ID:       "o1",
		TutorID:  "t1",
		SkillID:  "math",
		Location: domain.Location{Kind: domain.LocationInPerson, Address: "Library, room 2"},
		IsGroup:  true,
		Capacity: 4,
		Slots: []domain.Slot{
			{ID: "s1", OfferID: "o1", StartsAt: startsAt, DurationMinutes: &duration},
		},
	}
	req := &domain.Request{
		ID:        "r1",
		OfferID:   "o1",
		SlotID:    "s1",
		TutorID:   "t1",
		StudentID: "u1",
		Status:    domain.RequestStatusAccepted,
	}

	sessionRepo.EXPECT().Create(mock.Anything, mock.Anything).Return(nil)

	session, err := svc.Materialize(context.Background(), req, offer)

	require.NoError(t, err)
	assert.NotEmpty(t, session.ID)
	assert.Equal(t, "t1", session.TutorID)
	assert.Equal(t, "u1", session.StudentID)
	assert.Equal(t, "math", session.SkillID)
	assert.Equal(t, startsAt, session.StartsAt)
	assert.Equal(t, &duration, session.DurationMinutes)
	assert.Equal(t, offer.Location, session.Location)
	assert.True(t, session.IsGroup)
	assert.Equal(t, domain.SessionStatusScheduled, session.Status)
}

func TestSessionService_Materialize_NotAccepted(t *testing.T) {
	sessionRepo := mocks.NewMockSessionRepo(t)
	svc := NewSessionService(sessionRepo, newTestLogger(t))

	req := &domain.Request{ID: "r1", SlotID: "s1", Status: domain.RequestStatusPending}

	_, err := svc.Materialize(context.Background(), req, &domain.Offer{ID: "o1"})

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestSessionService_Materialize_SlotNotFound(t *testing.T) {
	sessionRepo := mocks.NewMockSessionRepo(t)
	svc := NewSessionService(sessionRepo, newTestLogger(t))

	req := &domain.Request{ID: "r1", SlotID: "ghost", Status: domain.RequestStatusAccepted}
	offer := &domain.Offer{
		ID:    "o1",
		Slots: []domain.Slot{{ID: "s1", OfferID: "o1"}},
	}

	_, err := svc.Materialize(context.Background(), req, offer)

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrSlotNotFound)
}

func TestSessionService_Complete_Success(t *testing.T) {
	sessionRepo := mocks.NewMockSessionRepo(t)
	svc := NewSessionService(sessionRepo, newTestLogger(t))

	session := &domain.Session{ID: "sess1", TutorID: "t1", StudentID: "u1", Status: domain.SessionStatusScheduled}

	sessionRepo.EXPECT().GetByID(mock.Anything, "sess1").Return(session, nil)
	sessionRepo.EXPECT().Finish(mock.Anything, "sess1", domain.SessionStatusCompleted).Return(nil)

	err := svc.Complete(context.Background(), "sess1", "u1")

	require.NoError(t, err)
}

func TestSessionService_Cancel_ByTutor(t *testing.T) {
	sessionRepo := mocks.NewMockSessionRepo(t)
	svc := NewSessionService(sessionRepo, newTestLogger(t))

	session := &domain.Session{ID: "sess1", TutorID: "t1", StudentID: "u1", Status: domain.SessionStatusScheduled}

	sessionRepo.EXPECT().GetByID(mock.Anything, "sess1").Return(session, nil)
	sessionRepo.EXPECT().Finish(mock.Anything, "sess1", domain.SessionStatusCancelled).Return(nil)

	err := svc.Cancel(context.Background(), "sess1", "t1")

	require.NoError(t, err)
}

func TestSessionService_Complete_NotParty(t *testing.T) {
	sessionRepo := mocks.NewMockSessionRepo(t)
	svc := NewSessionService(sessionRepo, newTestLogger(t))

	session := &domain.Session{ID: "sess1", TutorID: "t1", StudentID: "u1"}
	sessionRepo.EXPECT().GetByID(mock.Anything, "sess1").Return(session, nil)

	err := svc.Complete(context.Background(), "sess1", "stranger")

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrNotSessionParty)
}

func TestSessionService_Cancel_AlreadyFinished(t *testing.T) {
	sessionRepo := mocks.NewMockSessionRepo(t)
	svc := NewSessionService(sessionRepo, newTestLogger(t))

	session := &domain.Session{ID: "sess1", TutorID: "t1", StudentID: "u1", Status: domain.SessionStatusCompleted}

	sessionRepo.EXPECT().GetByID(mock.Anything, "sess1").Return(session, nil)
	sessionRepo.EXPECT().Finish(mock.Anything, "sess1", domain.SessionStatusCancelled).Return(domain.ErrSessionFinished)

	err := svc.Cancel(context.Background(), "sess1", "t1")

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrSessionFinished)
}

func TestSessionService_ListByUser_Success(t *testing.T) {
	sessionRepo := mocks.NewMockSessionRepo(t)
	svc := NewSessionService(sessionRepo, newTestLogger(t))

	sessions := []*domain.Session{{ID: "sess1", TutorID: "t1", StudentID: "u1"}}
	sessionRepo.EXPECT().ListByUser(mock.Anything, "u1").Return(sessions, nil)

	result, err := svc.ListByUser(context.Background(), "u1")

	require.NoError(t, err)
	assert.Len(t, result, 1)
}

func TestSessionService_ListByUser_MissingUser(t *testing.T) {
	sessionRepo := mocks.NewMockSessionRepo(t)
	svc := NewSessionService(sessionRepo, newTestLogger(t))

	_, err := svc.ListByUser(context.Background(), "")

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestSessionService_CompleteElapsed_Success(t *testing.T) {
	sessionRepo := mocks.NewMockSessionRepo(t)
	svc := NewSessionService(sessionRepo, newTestLogger(t))

	completed := []*domain.Session{{ID: "sess1", Status: domain.SessionStatusCompleted}}
	sessionRepo.EXPECT().CompleteElapsed(mock.Anything).Return(completed, nil)

	result, err := svc.CompleteElapsed(context.Background())

	require.NoError(t, err)
	assert.Len(t, result, 1)
}
