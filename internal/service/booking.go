package service

import (
	"context"
	"fmt"

	"github.com/tahir826/restweb/internal/domain"
	"github.com/tahir826/restweb/internal/service/ports"
	"github.com/wb-go/wbf/logger"
)

type BookingService struct {
	repo   ports.BookingRepo
	logger logger.Logger
}

func NewBookingService(repo ports.BookingRepo, logger logger.Logger) *BookingService {
	return &BookingService{repo: repo, logger: logger}
}

func (s *BookingService) Create(ctx context.Context, input domain.CreateBookingInput) error {
	if input.NoOfPeople <= 0 {
		return fmt.Errorf("%w: no_of_people must be positive", domain.ErrValidation)
	}

	booking := &domain.Booking{
		UserID:         input.UserID,
		Name:           input.Name,
		Email:          input.Email,
		Datetime:       input.Datetime.UTC(),
		NoOfPeople:     input.NoOfPeople,
		SpecialRequest: input.SpecialRequest,
	}

	if err := s.repo.Create(ctx, booking); err != nil {
		return fmt.Errorf("create booking: %w", err)
	}

	s.logger.Info("table booked",
		logger.String("user_id", input.UserID),
		logger.Int("no_of_people", input.NoOfPeople),
	)

	return nil
}

func (s *BookingService) ListByUser(ctx context.Context, userID string) ([]*domain.Booking, error) {
	return s.repo.ListByUser(ctx, userID)
}
