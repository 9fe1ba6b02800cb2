package ports

import (
	"context"

	"github.com/tahir826/restweb/internal/domain"
)

type ContactRepo interface {
	Create(ctx context.Context, m *domain.ContactMessage) error
}
