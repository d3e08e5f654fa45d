package ports

import (
	"context"

	"github.com/ovchar-k/tutorbook/internal/domain"
)

type OfferRepo interface {
	Create(ctx context.Context, o *domain.Offer) error
	GetByID(ctx context.Context, id string) (*domain.Offer, error)
	ListOpen(ctx context.Context, filter domain.OfferFilter) ([]*domain.Offer, error)
	ListByTutor(ctx context.Context, tutorID string, status domain.OfferStatus) ([]*domain.Offer, error)
	// Close moves an open offer to closed. It reports false without error
	// when the offer was already closed.
	Close(ctx context.Context, id string) (bool, error)
}
