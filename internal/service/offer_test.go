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

func validOfferInput() domain.CreateOfferInput {
	return domain.CreateOfferInput{
		TutorID:  "t1",
		SkillID:  "math",
		Title:    "Calculus crash course",
		Location: domain.Location{Kind: domain.LocationOnline},
		Slots: []domain.CreateSlotInput{
			{StartsAt: time.Now().Add(24 * time.Hour)},
		},
	}
}

func TestOfferService_CreateOffer_Success(t *testing.T) {
	offerRepo := mocks.NewMockOfferRepo(t)
	userRepo := mocks.NewMockUserRepo(t)

	svc := NewOfferService(offerRepo, userRepo)

	userRepo.EXPECT().GetByID(mock.Anything, "t1").Return(&domain.User{ID: "t1", Status: domain.UserStatusActive}, nil)
	offerRepo.EXPECT().Create(mock.Anything, mock.Anything).Return(nil)

	offer, err := svc.CreateOffer(context.Background(), validOfferInput())

	require.NoError(t, err)
	assert.NotEmpty(t, offer.ID)
	assert.Equal(t, domain.OfferStatusOpen, offer.Status)
	assert.Equal(t, 1, offer.Capacity)
	assert.Len(t, offer.Slots, 1)
	assert.Equal(t, offer.ID, offer.Slots[0].OfferID)
}

func TestOfferService_CreateOffer_PastSlotAllowed(t *testing.T) {
	offerRepo := mocks.NewMockOfferRepo(t)
	userRepo := mocks.NewMockUserRepo(t)

	svc := NewOfferService(offerRepo, userRepo)

	userRepo.EXPECT().GetByID(mock.Anything, "t1").Return(&domain.User{ID: "t1", Status: domain.UserStatusActive}, nil)
	offerRepo.EXPECT().Create(mock.Anything, mock.Anything).Return(nil)

	input := validOfferInput()
	input.Slots = []domain.CreateSlotInput{
		{StartsAt: time.Now().Add(-48 * time.Hour)},
	}

	_, err := svc.CreateOffer(context.Background(), input)

	require.NoError(t, err)
}

func TestOfferService_CreateOffer_GroupCapacity(t *testing.T) {
	offerRepo := mocks.NewMockOfferRepo(t)
	userRepo := mocks.NewMockUserRepo(t)

	svc := NewOfferService(offerRepo, userRepo)

	userRepo.EXPECT().GetByID(mock.Anything, "t1").Return(&domain.User{ID: "t1", Status: domain.UserStatusActive}, nil)
	offerRepo.EXPECT().Create(mock.Anything, mock.Anything).Return(nil)

	input := validOfferInput()
	input.IsGroup = true
	input.Capacity = 6

	offer, err := svc.CreateOffer(context.Background(), input)

	require.NoError(t, err)
	assert.Equal(t, 6, offer.Capacity)
	assert.Equal(t, 6, offer.EffectiveCapacity())
}

func TestOfferService_CreateOffer_Validation(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*domain.CreateOfferInput)
	}{
		{"missing title", func(in *domain.CreateOfferInput) { in.Title = "" }},
		{"missing skill", func(in *domain.CreateOfferInput) { in.SkillID = "" }},
		{"unknown location kind", func(in *domain.CreateOfferInput) { in.Location.Kind = "metaverse" }},
		{"in-person without address", func(in *domain.CreateOfferInput) {
			in.Location = domain.Location{Kind: domain.LocationInPerson}
		}},
		{"capacity above limit", func(in *domain.CreateOfferInput) {
			in.IsGroup = true
			in.Capacity = 51
		}},
		{"group capacity below two", func(in *domain.CreateOfferInput) {
			in.IsGroup = true
			in.Capacity = 1
		}},
		{"no slots", func(in *domain.CreateOfferInput) { in.Slots = nil }},
		{"too many slots", func(in *domain.CreateOfferInput) {
			in.Slots = make([]domain.CreateSlotInput, 6)
			for i := range in.Slots {
				in.Slots[i] = domain.CreateSlotInput{StartsAt: time.Now().Add(time.Hour)}
			}
		}},
		{"zero slot time", func(in *domain.CreateOfferInput) {
			in.Slots = []domain.CreateSlotInput{{}}
		}},
		{"non-positive duration", func(in *domain.CreateOfferInput) {
			d := 0
			in.Slots = []domain.CreateSlotInput{{StartsAt: time.Now().Add(time.Hour), DurationMinutes: &d}}
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			offerRepo := mocks.NewMockOfferRepo(t)
			userRepo := mocks.NewMockUserRepo(t)
			svc := NewOfferService(offerRepo, userRepo)

			input := validOfferInput()
			tt.mutate(&input)

			_, err := svc.CreateOffer(context.Background(), input)

			require.Error(t, err)
			assert.ErrorIs(t, err, domain.ErrValidation)
		})
	}
}

func TestOfferService_CreateOffer_TutorNotFound(t *testing.T) {
	offerRepo := mocks.NewMockOfferRepo(t)
	userRepo := mocks.NewMockUserRepo(t)

	svc := NewOfferService(offerRepo, userRepo)

	userRepo.EXPECT().GetByID(mock.Anything, "t1").Return(nil, domain.ErrUserNotFound)

	_, err := svc.CreateOffer(context.Background(), validOfferInput())

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrUserNotFound)
}

func TestOfferService_CreateOffer_SuspendedTutor(t *testing.T) {
	offerRepo := mocks.NewMockOfferRepo(t)
	userRepo := mocks.NewMockUserRepo(t)

	svc := NewOfferService(offerRepo, userRepo)

	userRepo.EXPECT().GetByID(mock.Anything, "t1").Return(&domain.User{ID: "t1", Status: domain.UserStatusSuspended}, nil)

	_, err := svc.CreateOffer(context.Background(), validOfferInput())

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrUserInactive)
}

func TestOfferService_ListByTutor_UnknownStatus(t *testing.T) {
	offerRepo := mocks.NewMockOfferRepo(t)
	userRepo := mocks.NewMockUserRepo(t)

	svc := NewOfferService(offerRepo, userRepo)

	_, err := svc.ListByTutor(context.Background(), "t1", "pending")

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestOfferService_ListOpen_Success(t *testing.T) {
	offerRepo := mocks.NewMockOfferRepo(t)
	userRepo := mocks.NewMockUserRepo(t)

	svc := NewOfferService(offerRepo, userRepo)

	offers := []*domain.Offer{
		{ID: "o1", Title: "Calculus", Status: domain.OfferStatusOpen},
	}
	offerRepo.EXPECT().ListOpen(mock.Anything, domain.OfferFilter{SkillID: "math"}).Return(offers, nil)

	result, err := svc.ListOpen(context.Background(), domain.OfferFilter{SkillID: "math"})

	require.NoError(t, err)
	assert.Len(t, result, 1)
}
