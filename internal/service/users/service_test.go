package users

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/booknjoy/turf-booking-service/internal/domain"
	userRepo "github.com/booknjoy/turf-booking-service/internal/infra/storage/user"
	"github.com/booknjoy/turf-booking-service/internal/service/users/models"
)

// fakeUserRepo повторяет семантику SQL-репозитория: при конфликте по email
// обновляется профиль, но не роль
type fakeUserRepo struct {
	nextID  int64
	byEmail map[string]*domain.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{nextID: 1, byEmail: map[string]*domain.User{}}
}

func (f *fakeUserRepo) Upsert(ctx context.Context, u *domain.User) (*domain.User, error) {
	if existing, ok := f.byEmail[u.Email]; ok {
		existing.Name = u.Name
		existing.Picture = u.Picture
		existing.AuthSubject = u.AuthSubject
		copied := *existing
		return &copied, nil
	}

	stored := *u
	stored.ID = f.nextID
	f.nextID++
	f.byEmail[u.Email] = &stored
	copied := stored
	return &copied, nil
}

func (f *fakeUserRepo) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	if u, ok := f.byEmail[email]; ok {
		copied := *u
		return &copied, nil
	}
	return nil, userRepo.ErrUserNotFound
}

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

func loginReq(email, role string) *models.LoginRequest {
	return &models.LoginRequest{
		Name:        "Test User",
		Email:       email,
		AuthSubject: "auth0|" + email,
		Role:        role,
	}
}

func TestLogin_FirstLoginCreatesUser(t *testing.T) {
	svc := NewService(newFakeUserRepo(), nopLogger{})

	resp, err := svc.Login(context.Background(), loginReq("owner@example.com", "owner"))
	require.NoError(t, err)

	assert.Equal(t, "owner", resp.Role)
	assert.Equal(t, "/owner-dashboard", resp.DashboardRoute)
}

func TestLogin_DefaultRole(t *testing.T) {
	svc := NewService(newFakeUserRepo(), nopLogger{})

	resp, err := svc.Login(context.Background(), loginReq("user@example.com", ""))
	require.NoError(t, err)

	assert.Equal(t, string(domain.DefaultRole), resp.Role)
	assert.Equal(t, "/dashboard", resp.DashboardRoute)
}

func TestLogin_RoleHintIgnoredOnRepeatLogin(t *testing.T) {
	repo := newFakeUserRepo()
	svc := NewService(repo, nopLogger{})

	_, err := svc.Login(context.Background(), loginReq("user@example.com", "user"))
	require.NoError(t, err)

	// Повторный вход с ролью admin не повышает привилегии
	resp, err := svc.Login(context.Background(), loginReq("user@example.com", "admin"))
	require.NoError(t, err)
	assert.Equal(t, "user", resp.Role)
}

func TestLogin_UnknownRoleRejected(t *testing.T) {
	svc := NewService(newFakeUserRepo(), nopLogger{})

	_, err := svc.Login(context.Background(), loginReq("user@example.com", "superadmin"))
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestLogin_Validation(t *testing.T) {
	svc := NewService(newFakeUserRepo(), nopLogger{})

	req := loginReq("", "user")
	_, err := svc.Login(context.Background(), req)
	assert.ErrorIs(t, err, ErrInvalidInput)

	req = loginReq("user@example.com", "user")
	req.AuthSubject = " "
	_, err = svc.Login(context.Background(), req)
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestGetByEmail(t *testing.T) {
	repo := newFakeUserRepo()
	svc := NewService(repo, nopLogger{})

	_, err := svc.Login(context.Background(), loginReq("user@example.com", "user"))
	require.NoError(t, err)

	resp, err := svc.GetByEmail(context.Background(), "user@example.com")
	require.NoError(t, err)
	assert.Equal(t, "user@example.com", resp.Email)

	_, err = svc.GetByEmail(context.Background(), "nobody@example.com")
	assert.ErrorIs(t, err, ErrUserNotFound)
}
