package ports

import (
	"context"

	"github.com/ovchar-k/tutorbook/internal/domain"
)

type RequestRepo interface {
	// Create persists a pending request. When r.SlotID is empty, proposed
	// must carry the student's time; it is resolved to an identical existing
	// slot of the offer or a new slot created in the same transaction, and
	// r.SlotID is filled in.
	Create(ctx context.Context, r *domain.Request, proposed *domain.CreateSlotInput) error
	GetByID(ctx context.Context, id string) (*domain.Request, error)
	// TryAccept atomically checks remaining capacity of the request's slot
	// and marks the request accepted. It returns domain.ErrSlotFull when the
	// slot is at capacity (request stays pending) and
	// domain.ErrRequestNotPending when the request was already resolved.
	TryAccept(ctx context.Context, id string) (*domain.Request, error)
	Decline(ctx context.Context, id string) error
	ResetToPending(ctx context.Context, id string) error
	DeclineOtherPending(ctx context.Context, offerID, exceptID string) ([]*domain.Request, error)
	DeclinePendingOnSlot(ctx context.Context, slotID, exceptID string) ([]*domain.Request, error)
	CancelPendingByOffer(ctx context.Context, offerID string) ([]*domain.Request, error)
	CountAcceptedBySlot(ctx context.Context, offerID string) (map[string]int, error)
	ListViews(ctx context.Context, role domain.RequestRole, actorID string, status domain.RequestStatus) ([]*domain.RequestView, error)
}
