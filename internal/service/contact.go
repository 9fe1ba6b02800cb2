package service

import (
	"context"
	"fmt"

	"github.com/tahir826/restweb/internal/domain"
	"github.com/tahir826/restweb/internal/service/ports"
	"github.com/wb-go/wbf/logger"
)

type ContactService struct {
	repo     ports.ContactRepo
	notifier ports.ContactNotifier
	logger   logger.Logger
}

func NewContactService(repo ports.ContactRepo, notifier ports.ContactNotifier, logger logger.Logger) *ContactService {
	return &ContactService{repo: repo, notifier: notifier, logger: logger}
}

func (s *ContactService) Submit(ctx context.Context, input domain.ContactInput) error {
	msg := &domain.ContactMessage{
		Name:    input.Name,
		Email:   input.Email,
		Subject: input.Subject,
		Message: input.Message,
	}

	if err := s.repo.Create(ctx, msg); err != nil {
		return fmt.Errorf("create contact message: %w", err)
	}

	s.logger.Info("contact message received",
		logger.String("email", input.Email),
		logger.String("subject", input.Subject),
	)

	go s.notifier.NotifyContactMessage(context.WithoutCancel(ctx), msg)

	return nil
}
