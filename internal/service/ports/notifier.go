package ports

import (
	"context"

	"github.com/ovchar-k/tutorbook/internal/domain"
)

// Notifier is fire-and-forget: delivery failures are logged by the
// implementation and never surface to the booking workflow.
type Notifier interface {
	NotifyRequestReceived(ctx context.Context, tutor *domain.User, offer *domain.Offer, slot *domain.Slot)
	NotifyRequestAccepted(ctx context.Context, student *domain.User, session *domain.Session)
	NotifyRequestDeclined(ctx context.Context, student *domain.User, offer *domain.Offer)
	NotifyOfferCancelled(ctx context.Context, student *domain.User, offer *domain.Offer)
}
