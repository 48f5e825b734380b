package authService

import (
	"Blognest/internal/api/auth"
	authRepository "Blognest/internal/api/auth/repository"
	"Blognest/internal/entity"
	"Blognest/pkg/bcrypt"
	"context"
	"io"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeUserStore struct {
	users []entity.User
}

func (f *fakeUserStore) GetUserByEmail(_ context.Context, email string) (entity.User, error) {
	for _, user := range f.users {
		if user.Email == email {
			return user, nil
		}
	}
	return entity.User{}, auth.ErrUserNotFound
}

func (f *fakeUserStore) GetUserByID(_ context.Context, id string) (entity.User, error) {
	for _, user := range f.users {
		if user.ID == id {
			return user, nil
		}
	}
	return entity.User{}, auth.ErrUserNotFound
}

func (f *fakeUserStore) UpdateUserPassword(_ context.Context, id string, hashedPassword string) error {
	for i, user := range f.users {
		if user.ID == id {
			f.users[i].Password = hashedPassword
			return nil
		}
	}
	return auth.ErrUserNotFound
}

type fakeAuthRepo struct {
	store *fakeUserStore
}

func (f *fakeAuthRepo) NewClient(_ bool) (authRepository.Client, error) {
	return authRepository.Client{
		Users:    f.store,
		Commit:   func() error { return nil },
		Rollback: func() error { return nil },
	}, nil
}

func newTestAuthService(store *fakeUserStore) IAuthService {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	return NewAuthService(logger, &fakeAuthRepo{store: store}, bcrypt.NewWithCost(4))
}

func seedUserStore(t *testing.T, password string) *fakeUserStore {
	t.Helper()
	hashed, err := bcrypt.NewWithCost(4).HashPassword(password)
	require.NoError(t, err)

	return &fakeUserStore{users: []entity.User{{
		ID:       "u1",
		Email:    "admin@acme.example",
		Password: hashed,
		Company:  "acme",
		Role:     entity.RoleAdmin,
	}}}
}

func TestLoginSuccess(t *testing.T) {
	t.Setenv("JWT_ACCESS_TOKEN_SECRET", "test-secret")
	svc := newTestAuthService(seedUserStore(t, "hunter2hunter2"))

	result, err := svc.Login(context.Background(), auth.LoginUserRequest{
		Email:    "Admin@Acme.example",
		Password: "hunter2hunter2",
	})
	require.NoError(t, err)

	assert.NotEmpty(t, result.AccessToken)
	assert.Equal(t, "acme", result.Company)
	assert.Equal(t, entity.RoleAdmin, result.Role)
	assert.InDelta(t, 60, result.ExpiresInMinutes, 1)
}

func TestLoginWrongPassword(t *testing.T) {
	t.Setenv("JWT_ACCESS_TOKEN_SECRET", "test-secret")
	svc := newTestAuthService(seedUserStore(t, "hunter2hunter2"))

	_, err := svc.Login(context.Background(), auth.LoginUserRequest{
		Email:    "admin@acme.example",
		Password: "wrong-password",
	})
	assert.ErrorIs(t, err, auth.ErrInvalidEmailOrPassword)
}

func TestLoginUnknownEmail(t *testing.T) {
	t.Setenv("JWT_ACCESS_TOKEN_SECRET", "test-secret")
	svc := newTestAuthService(&fakeUserStore{})

	_, err := svc.Login(context.Background(), auth.LoginUserRequest{
		Email:    "nobody@acme.example",
		Password: "hunter2hunter2",
	})
	assert.ErrorIs(t, err, auth.ErrInvalidEmailOrPassword)
}

func TestUpdatePasswordSuccess(t *testing.T) {
	store := seedUserStore(t, "old-password-1")
	svc := newTestAuthService(store)

	err := svc.UpdatePassword(context.Background(), entity.UserLoginData{ID: "u1"}, auth.UpdatePasswordRequest{
		OldPassword: "old-password-1",
		NewPassword: "new-password-1",
	})
	require.NoError(t, err)

	updated, err := store.GetUserByID(context.Background(), "u1")
	require.NoError(t, err)
	assert.NoError(t, bcrypt.NewWithCost(4).ComparePassword(updated.Password, "new-password-1"))
}

func TestUpdatePasswordWrongOldPassword(t *testing.T) {
	svc := newTestAuthService(seedUserStore(t, "old-password-1"))

	err := svc.UpdatePassword(context.Background(), entity.UserLoginData{ID: "u1"}, auth.UpdatePasswordRequest{
		OldPassword: "not-the-old-one",
		NewPassword: "new-password-1",
	})
	assert.ErrorIs(t, err, auth.ErrWrongOldPassword)
}

func TestUpdatePasswordRejectsSamePassword(t *testing.T) {
	svc := newTestAuthService(seedUserStore(t, "old-password-1"))

	err := svc.UpdatePassword(context.Background(), entity.UserLoginData{ID: "u1"}, auth.UpdatePasswordRequest{
		OldPassword: "old-password-1",
		NewPassword: "old-password-1",
	})
	assert.ErrorIs(t, err, auth.ErrPasswordSame)
}
