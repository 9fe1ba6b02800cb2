package service

import (
	"context"
	"fmt"
	"io"

	"github.com/tahir826/restweb/internal/domain"
	"github.com/tahir826/restweb/internal/service/ports"
	"github.com/wb-go/wbf/logger"
)

// CatalogService manages the three admin catalogs. Each add operation is a
// file save followed by a single insert; the two are not atomic, so a failed
// insert triggers best-effort removal of the just-written file.
type CatalogService struct {
	events ports.EventRepo
	svcs   ports.ServiceRepo
	team   ports.TeamMemberRepo
	files  ports.FileStore
	logger logger.Logger
}

func NewCatalogService(
	events ports.EventRepo,
	svcs ports.ServiceRepo,
	team ports.TeamMemberRepo,
	files ports.FileStore,
	logger logger.Logger,
) *CatalogService {
	return &CatalogService{
		events: events,
		svcs:   svcs,
		team:   team,
		files:  files,
		logger: logger,
	}
}

func (s *CatalogService) AddEvent(ctx context.Context, input domain.CreateEventInput, filename string, pic io.Reader) error {
	path, err := s.files.Save(filename, pic)
	if err != nil {
		return fmt.Errorf("save event picture: %w", err)
	}

	event := &domain.Event{
		PicPath:     path,
		Name:        input.Name,
		Description: input.Description,
		Price:       input.Price,
	}

	if err := s.events.Create(ctx, event); err != nil {
		s.cleanup(path)
		return fmt.Errorf("create event: %w", err)
	}

	s.logger.Info("event added",
		logger.String("name", input.Name),
		logger.String("pic_path", path),
	)

	return nil
}

func (s *CatalogService) ListEvents(ctx context.Context) ([]*domain.Event, error) {
	return s.events.List(ctx)
}

func (s *CatalogService) DeleteEvent(ctx context.Context, id int64) error {
	return s.events.Delete(ctx, id)
}

func (s *CatalogService) AddService(ctx context.Context, input domain.CreateServiceInput, filename string, image io.Reader) error {
	path, err := s.files.Save(filename, image)
	if err != nil {
		return fmt.Errorf("save service image: %w", err)
	}

	svc := &domain.Service{
		ImagePath:   path,
		Name:        input.Name,
		Description: input.Description,
	}

	if err := s.svcs.Create(ctx, svc); err != nil {
		s.cleanup(path)
		return fmt.Errorf("create service: %w", err)
	}

	s.logger.Info("service added",
		logger.String("name", input.Name),
		logger.String("image_path", path),
	)

	return nil
}

func (s *CatalogService) ListServices(ctx context.Context) ([]*domain.Service, error) {
	return s.svcs.List(ctx)
}

func (s *CatalogService) DeleteService(ctx context.Context, id int64) error {
	return s.svcs.Delete(ctx, id)
}

func (s *CatalogService) AddTeamMember(ctx context.Context, input domain.CreateTeamMemberInput, filename string, image io.Reader) error {
	path, err := s.files.Save(filename, image)
	if err != nil {
		return fmt.Errorf("save team member image: %w", err)
	}

	member := &domain.TeamMember{
		ImagePath:   path,
		Name:        input.Name,
		Designation: input.Designation,
		Description: input.Description,
	}

	if err := s.team.Create(ctx, member); err != nil {
		s.cleanup(path)
		return fmt.Errorf("create team member: %w", err)
	}

	s.logger.Info("team member added",
		logger.String("name", input.Name),
		logger.String("image_path", path),
	)

	return nil
}

func (s *CatalogService) ListTeamMembers(ctx context.Context) ([]*domain.TeamMember, error) {
	return s.team.List(ctx)
}

func (s *CatalogService) DeleteTeamMember(ctx context.Context, id int64) error {
	return s.team.Delete(ctx, id)
}

func (s *CatalogService) cleanup(path string) {
	if err := s.files.Remove(path); err != nil {
		s.logger.Error("failed to remove orphaned upload",
			logger.String("path", path),
			logger.String("error", err.Error()),
		)
	}
}
