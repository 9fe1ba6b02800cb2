package ports

import (
	"context"

	"github.com/tahir826/restweb/internal/domain"
)

type ContactNotifier interface {
	NotifyContactMessage(ctx context.Context, m *domain.ContactMessage)
}
