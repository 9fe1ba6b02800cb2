package ports

import (
	"context"

	"github.com/tahir826/restweb/internal/domain"
)

type BookingRepo interface {
	Create(ctx context.Context, b *domain.Booking) error
	ListByUser(ctx context.Context, userID string) ([]*domain.Booking, error)
}
