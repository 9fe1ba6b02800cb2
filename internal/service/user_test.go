package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/tahir826/restweb/internal/domain"
	"github.com/tahir826/restweb/internal/service/ports/mocks"
)

func TestUserService_Signup_Success(t *testing.T) {
	repo := mocks.NewMockUserRepo(t)
	h := mocks.NewMockPasswordHasher(t)
	svc := NewUserService(repo, h)

	repo.EXPECT().GetByEmail(mock.Anything, "guest@example.com").Return(nil, domain.ErrUserNotFound)
	h.EXPECT().Hash("s3cret").Return("$2a$10$digest", nil)
	repo.EXPECT().Create(mock.Anything, mock.Anything).Return(nil)

	user, err := svc.Signup(context.Background(), domain.SignupInput{
		Email:    "guest@example.com",
		Username: "guest",
		Password: "s3cret",
	})

	require.NoError(t, err)
	assert.Equal(t, "guest@example.com", user.Email)
	assert.Equal(t, "guest", user.Username)
	assert.Equal(t, "$2a$10$digest", user.PasswordHash)
	assert.NotEmpty(t, user.UserID)
}

func TestUserService_Signup_EmailTaken(t *testing.T) {
	repo := mocks.NewMockUserRepo(t)
	h := mocks.NewMockPasswordHasher(t)
	svc := NewUserService(repo, h)

	existing := &domain.User{UserID: "u1", Email: "guest@example.com"}
	repo.EXPECT().GetByEmail(mock.Anything, "guest@example.com").Return(existing, nil)

	_, err := svc.Signup(context.Background(), domain.SignupInput{
		Email:    "guest@example.com",
		Username: "guest",
		Password: "s3cret",
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrEmailTaken)
}

func TestUserService_Signup_EmailTakenOnInsert(t *testing.T) {
	repo := mocks.NewMockUserRepo(t)
	h := mocks.NewMockPasswordHasher(t)
	svc := NewUserService(repo, h)

	// The lookup can miss a concurrent signup; the unique constraint
	// reported by the repository still wins.
	repo.EXPECT().GetByEmail(mock.Anything, mock.Anything).Return(nil, domain.ErrUserNotFound)
	h.EXPECT().Hash(mock.Anything).Return("digest", nil)
	repo.EXPECT().Create(mock.Anything, mock.Anything).Return(domain.ErrEmailTaken)

	_, err := svc.Signup(context.Background(), domain.SignupInput{
		Email:    "guest@example.com",
		Username: "guest",
		Password: "s3cret",
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrEmailTaken)
}

func TestUserService_Signup_EmptyUsername(t *testing.T) {
	svc := NewUserService(nil, nil)

	_, err := svc.Signup(context.Background(), domain.SignupInput{
		Email:    "guest@example.com",
		Password: "s3cret",
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestUserService_Signup_RepoError(t *testing.T) {
	repo := mocks.NewMockUserRepo(t)
	h := mocks.NewMockPasswordHasher(t)
	svc := NewUserService(repo, h)

	repoErr := errors.New("db error")
	repo.EXPECT().GetByEmail(mock.Anything, mock.Anything).Return(nil, domain.ErrUserNotFound)
	h.EXPECT().Hash(mock.Anything).Return("digest", nil)
	repo.EXPECT().Create(mock.Anything, mock.Anything).Return(repoErr)

	_, err := svc.Signup(context.Background(), domain.SignupInput{
		Email:    "guest@example.com",
		Username: "guest",
		Password: "s3cret",
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, repoErr)
}

func TestUserService_Login_Success(t *testing.T) {
	repo := mocks.NewMockUserRepo(t)
	h := mocks.NewMockPasswordHasher(t)
	svc := NewUserService(repo, h)

	user := &domain.User{
		UserID:       "u1",
		Email:        "guest@example.com",
		Username:     "guest",
		PasswordHash: "digest",
	}
	repo.EXPECT().GetByEmail(mock.Anything, "guest@example.com").Return(user, nil)
	h.EXPECT().Verify("s3cret", "digest").Return(true)

	got, err := svc.Login(context.Background(), domain.LoginInput{
		Email:    "guest@example.com",
		Password: "s3cret",
	})

	require.NoError(t, err)
	assert.Equal(t, "u1", got.UserID)
	assert.Equal(t, "guest", got.Username)
}

func TestUserService_Login_UnknownEmail(t *testing.T) {
	repo := mocks.NewMockUserRepo(t)
	h := mocks.NewMockPasswordHasher(t)
	svc := NewUserService(repo, h)

	repo.EXPECT().GetByEmail(mock.Anything, mock.Anything).Return(nil, domain.ErrUserNotFound)

	_, err := svc.Login(context.Background(), domain.LoginInput{
		Email:    "nobody@example.com",
		Password: "s3cret",
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
}

func TestUserService_Login_WrongPassword(t *testing.T) {
	repo := mocks.NewMockUserRepo(t)
	h := mocks.NewMockPasswordHasher(t)
	svc := NewUserService(repo, h)

	user := &domain.User{UserID: "u1", Email: "guest@example.com", PasswordHash: "digest"}
	repo.EXPECT().GetByEmail(mock.Anything, mock.Anything).Return(user, nil)
	h.EXPECT().Verify("wrong", "digest").Return(false)

	_, err := svc.Login(context.Background(), domain.LoginInput{
		Email:    "guest@example.com",
		Password: "wrong",
	})

	// Unknown email and wrong password must be indistinguishable.
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
}
