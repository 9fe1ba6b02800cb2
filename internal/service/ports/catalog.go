package ports

import (
	"context"

	"github.com/tahir826/restweb/internal/domain"
)

type EventRepo interface {
	Create(ctx context.Context, e *domain.Event) error
	List(ctx context.Context) ([]*domain.Event, error)
	Delete(ctx context.Context, id int64) error
}

type ServiceRepo interface {
	Create(ctx context.Context, s *domain.Service) error
	List(ctx context.Context) ([]*domain.Service, error)
	Delete(ctx context.Context, id int64) error
}

type TeamMemberRepo interface {
	Create(ctx context.Context, m *domain.TeamMember) error
	List(ctx context.Context) ([]*domain.TeamMember, error)
	Delete(ctx context.Context, id int64) error
}
