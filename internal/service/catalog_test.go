package service

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/tahir826/restweb/internal/domain"
	"github.com/tahir826/restweb/internal/service/ports/mocks"
)

func newCatalogService(t *testing.T) (*mocks.MockEventRepo, *mocks.MockServiceRepo, *mocks.MockTeamMemberRepo, *mocks.MockFileStore, *CatalogService) {
	t.Helper()
	events := mocks.NewMockEventRepo(t)
	svcs := mocks.NewMockServiceRepo(t)
	team := mocks.NewMockTeamMemberRepo(t)
	files := mocks.NewMockFileStore(t)
	return events, svcs, team, files, NewCatalogService(events, svcs, team, files, newTestLogger(t))
}

func TestCatalogService_AddEvent_Success(t *testing.T) {
	events, _, _, files, svc := newCatalogService(t)

	files.EXPECT().Save("gala.png", mock.Anything).Return("uploaded_images/gala.png", nil)

	var stored *domain.Event
	events.EXPECT().Create(mock.Anything, mock.Anything).Run(func(ctx context.Context, e *domain.Event) {
		stored = e
	}).Return(nil)

	input := domain.CreateEventInput{Name: "Gala Night", Description: "Dinner and music", Price: 49.99}
	err := svc.AddEvent(context.Background(), input, "gala.png", strings.NewReader("img"))

	require.NoError(t, err)
	require.NotNil(t, stored)
	assert.Equal(t, "uploaded_images/gala.png", stored.PicPath)
	assert.Equal(t, "Gala Night", stored.Name)
	assert.Equal(t, 49.99, stored.Price)
}

func TestCatalogService_AddEvent_FileSaveError(t *testing.T) {
	_, _, _, files, svc := newCatalogService(t)

	files.EXPECT().Save(mock.Anything, mock.Anything).Return("", errors.New("disk full"))

	err := svc.AddEvent(context.Background(), domain.CreateEventInput{Name: "Gala"}, "gala.png", strings.NewReader("img"))

	require.Error(t, err)
}

func TestCatalogService_AddEvent_InsertFailureRemovesFile(t *testing.T) {
	events, _, _, files, svc := newCatalogService(t)

	files.EXPECT().Save(mock.Anything, mock.Anything).Return("uploaded_images/gala.png", nil)
	events.EXPECT().Create(mock.Anything, mock.Anything).Return(errors.New("db error"))
	files.EXPECT().Remove("uploaded_images/gala.png").Return(nil)

	err := svc.AddEvent(context.Background(), domain.CreateEventInput{Name: "Gala"}, "gala.png", strings.NewReader("img"))

	require.Error(t, err)
}

func TestCatalogService_ListEvents_Empty(t *testing.T) {
	events, _, _, _, svc := newCatalogService(t)

	events.EXPECT().List(mock.Anything).Return(nil, domain.ErrNoEvents)

	_, err := svc.ListEvents(context.Background())

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrNoEvents)
}

func TestCatalogService_DeleteEvent_NotFound(t *testing.T) {
	events, _, _, _, svc := newCatalogService(t)

	events.EXPECT().Delete(mock.Anything, int64(42)).Return(domain.ErrEventNotFound)

	err := svc.DeleteEvent(context.Background(), 42)

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrEventNotFound)
}

func TestCatalogService_AddService_InsertFailureRemovesFile(t *testing.T) {
	_, svcs, _, files, svc := newCatalogService(t)

	files.EXPECT().Save(mock.Anything, mock.Anything).Return("uploaded_images/spa.png", nil)
	svcs.EXPECT().Create(mock.Anything, mock.Anything).Return(errors.New("db error"))
	files.EXPECT().Remove("uploaded_images/spa.png").Return(nil)

	err := svc.AddService(context.Background(), domain.CreateServiceInput{Name: "Spa"}, "spa.png", strings.NewReader("img"))

	require.Error(t, err)
}

func TestCatalogService_AddTeamMember_Success(t *testing.T) {
	_, _, team, files, svc := newCatalogService(t)

	files.EXPECT().Save("chef.png", mock.Anything).Return("uploaded_images/chef.png", nil)

	var stored *domain.TeamMember
	team.EXPECT().Create(mock.Anything, mock.Anything).Run(func(ctx context.Context, m *domain.TeamMember) {
		stored = m
	}).Return(nil)

	input := domain.CreateTeamMemberInput{Name: "Marco", Designation: "Head Chef", Description: "20 years of experience"}
	err := svc.AddTeamMember(context.Background(), input, "chef.png", strings.NewReader("img"))

	require.NoError(t, err)
	require.NotNil(t, stored)
	assert.Equal(t, "Head Chef", stored.Designation)
	assert.Equal(t, "uploaded_images/chef.png", stored.ImagePath)
}

func TestCatalogService_ListTeamMembers_Success(t *testing.T) {
	_, _, team, _, svc := newCatalogService(t)

	members := []*domain.TeamMember{{ID: 1, Name: "Marco"}}
	team.EXPECT().List(mock.Anything).Return(members, nil)

	result, err := svc.ListTeamMembers(context.Background())

	require.NoError(t, err)
	assert.Len(t, result, 1)
}

func TestCatalogService_DeleteService_Success(t *testing.T) {
	_, svcs, _, _, svc := newCatalogService(t)

	svcs.EXPECT().Delete(mock.Anything, int64(7)).Return(nil)

	require.NoError(t, svc.DeleteService(context.Background(), 7))
}
