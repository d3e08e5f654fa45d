package ports

import (
	"context"

	"github.com/ovchar-k/tutorbook/internal/domain"
)

// SessionMaterializer is the booking workflow's only way to create sessions.
type SessionMaterializer interface {
	Materialize(ctx context.Context, req *domain.Request, offer *domain.Offer) (*domain.Session, error)
}

type SessionRepo interface {
	Create(ctx context.Context, s *domain.Session) error
	GetByID(ctx context.Context, id string) (*domain.Session, error)
	ListByUser(ctx context.Context, userID string) ([]*domain.Session, error)
	// Finish moves a scheduled session to completed or cancelled.
	Finish(ctx context.Context, id string, status domain.SessionStatus) error
	// CompleteElapsed marks scheduled sessions whose end time has passed as
	// completed and returns them.
	CompleteElapsed(ctx context.Context) ([]*domain.Session, error)
}
