package turfs

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/booknjoy/turf-booking-service/internal/domain"
	turfRepo "github.com/booknjoy/turf-booking-service/internal/infra/storage/turf"
	userRepo "github.com/booknjoy/turf-booking-service/internal/infra/storage/user"
	"github.com/booknjoy/turf-booking-service/internal/service/turfs/models"
)

type fakeTurfRepo struct {
	nextID  int64
	turfs   map[int64]*domain.Turf
	deleted []int64
}

func newFakeTurfRepo() *fakeTurfRepo {
	return &fakeTurfRepo{nextID: 1, turfs: map[int64]*domain.Turf{}}
}

func (f *fakeTurfRepo) Create(ctx context.Context, turf *domain.Turf) (*domain.Turf, error) {
	stored := *turf
	stored.ID = f.nextID
	f.nextID++
	f.turfs[stored.ID] = &stored
	return &stored, nil
}

func (f *fakeTurfRepo) GetByID(ctx context.Context, id int64) (*domain.Turf, error) {
	if t, ok := f.turfs[id]; ok {
		return t, nil
	}
	return nil, turfRepo.ErrTurfNotFound
}

func (f *fakeTurfRepo) GetAll(ctx context.Context) ([]*domain.Turf, error) {
	out := make([]*domain.Turf, 0, len(f.turfs))
	for id := int64(1); id < f.nextID; id++ {
		if t, ok := f.turfs[id]; ok {
			out = append(out, t)
		}
	}
	return out, nil
}

func (f *fakeTurfRepo) GetByOwnerEmail(ctx context.Context, ownerEmail string) ([]*domain.Turf, error) {
	var out []*domain.Turf
	for id := int64(1); id < f.nextID; id++ {
		if t, ok := f.turfs[id]; ok && t.OwnerEmail == ownerEmail {
			out = append(out, t)
		}
	}
	return out, nil
}

func (f *fakeTurfRepo) Update(ctx context.Context, turf *domain.Turf) (*domain.Turf, error) {
	if _, ok := f.turfs[turf.ID]; !ok {
		return nil, turfRepo.ErrTurfNotFound
	}
	stored := *turf
	f.turfs[turf.ID] = &stored
	return &stored, nil
}

func (f *fakeTurfRepo) Delete(ctx context.Context, id int64) error {
	if _, ok := f.turfs[id]; !ok {
		return turfRepo.ErrTurfNotFound
	}
	delete(f.turfs, id)
	f.deleted = append(f.deleted, id)
	return nil
}

type fakeUserRepo struct {
	users map[string]*domain.User
}

func (f *fakeUserRepo) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	if u, ok := f.users[email]; ok {
		return u, nil
	}
	return nil, userRepo.ErrUserNotFound
}

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

func saveRequest(owner, requester string) *models.SaveTurfRequest {
	return &models.SaveTurfRequest{
		Name:           "Green Field",
		SportsCategory: "football",
		CostPrice:      models.SlotPricesPayload{Morning: 40, Afternoon: 60, Evening: 80, Night: 50},
		CustomerPrice:  models.SlotPricesPayload{Morning: 100, Afternoon: 150, Evening: 200, Night: 120},
		OwnerEmail:     owner,
		RequesterEmail: requester,
	}
}

func newTestService(users map[string]*domain.User) (*Service, *fakeTurfRepo) {
	repo := newFakeTurfRepo()
	return NewService(repo, &fakeUserRepo{users: users}, nopLogger{}), repo
}

func TestCreate(t *testing.T) {
	svc, _ := newTestService(nil)

	resp, err := svc.Create(context.Background(), saveRequest("owner@example.com", "owner@example.com"))
	require.NoError(t, err)
	assert.Equal(t, int64(1), resp.ID)
	assert.Equal(t, "owner@example.com", resp.CreatedBy)
}

func TestCreate_Validation(t *testing.T) {
	svc, _ := newTestService(nil)

	req := saveRequest("owner@example.com", "owner@example.com")
	req.Name = "  "

	_, err := svc.Create(context.Background(), req)
	assert.ErrorIs(t, err, ErrInvalidInput)

	req = saveRequest("owner@example.com", "owner@example.com")
	req.CustomerPrice.Night = -5

	_, err = svc.Create(context.Background(), req)
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestGetByID_NotFound(t *testing.T) {
	svc, _ := newTestService(nil)

	_, err := svc.GetByID(context.Background(), 42)
	assert.ErrorIs(t, err, ErrTurfNotFound)
}

func TestUpdate_OwnerAllowed(t *testing.T) {
	svc, _ := newTestService(nil)

	created, err := svc.Create(context.Background(), saveRequest("owner@example.com", "owner@example.com"))
	require.NoError(t, err)

	req := saveRequest("owner@example.com", "owner@example.com")
	req.Name = "Renamed Field"

	updated, err := svc.Update(context.Background(), created.ID, req)
	require.NoError(t, err)
	assert.Equal(t, "Renamed Field", updated.Name)
	// Автор записи сохраняется при обновлении
	assert.Equal(t, "owner@example.com", updated.CreatedBy)
}

func TestUpdate_StrangerDenied(t *testing.T) {
	svc, _ := newTestService(map[string]*domain.User{
		"stranger@example.com": {Email: "stranger@example.com", Role: domain.RoleUser},
	})

	created, err := svc.Create(context.Background(), saveRequest("owner@example.com", "owner@example.com"))
	require.NoError(t, err)

	req := saveRequest("owner@example.com", "stranger@example.com")

	_, err = svc.Update(context.Background(), created.ID, req)
	assert.ErrorIs(t, err, ErrAccessDenied)
}

func TestUpdate_AdminAllowed(t *testing.T) {
	svc, _ := newTestService(map[string]*domain.User{
		"admin@booknjoy.com": {Email: "admin@booknjoy.com", Role: domain.RoleAdmin},
	})

	created, err := svc.Create(context.Background(), saveRequest("owner@example.com", "owner@example.com"))
	require.NoError(t, err)

	req := saveRequest("owner@example.com", "admin@booknjoy.com")
	req.Name = "Admin Renamed"

	updated, err := svc.Update(context.Background(), created.ID, req)
	require.NoError(t, err)
	assert.Equal(t, "Admin Renamed", updated.Name)
}

func TestDelete_AccessControl(t *testing.T) {
	svc, repo := newTestService(map[string]*domain.User{
		"stranger@example.com": {Email: "stranger@example.com", Role: domain.RoleUser},
	})

	created, err := svc.Create(context.Background(), saveRequest("owner@example.com", "owner@example.com"))
	require.NoError(t, err)

	err = svc.Delete(context.Background(), created.ID, "stranger@example.com")
	assert.ErrorIs(t, err, ErrAccessDenied)

	err = svc.Delete(context.Background(), created.ID, "owner@example.com")
	require.NoError(t, err)
	assert.Equal(t, []int64{created.ID}, repo.deleted)

	err = svc.Delete(context.Background(), created.ID, "owner@example.com")
	assert.ErrorIs(t, err, ErrTurfNotFound)
}

func TestCatalogRevenue(t *testing.T) {
	svc, _ := newTestService(nil)

	_, err := svc.Create(context.Background(), saveRequest("owner@example.com", "owner@example.com"))
	require.NoError(t, err)

	report, err := svc.CatalogRevenue(context.Background())
	require.NoError(t, err)
	require.Len(t, report, 1)

	// Суммы по четырем слотам прайс-листа
	assert.Equal(t, "Green Field", report[0].Name)
	assert.Equal(t, 230.0, report[0].CostRevenue)
	assert.Equal(t, 570.0, report[0].CustomerRevenue)
	assert.Equal(t, 340.0, report[0].Profit)
}

func TestListByOwner(t *testing.T) {
	svc, _ := newTestService(nil)

	_, err := svc.Create(context.Background(), saveRequest("a@example.com", "a@example.com"))
	require.NoError(t, err)
	_, err = svc.Create(context.Background(), saveRequest("b@example.com", "b@example.com"))
	require.NoError(t, err)

	resp, err := svc.ListByOwner(context.Background(), "a@example.com")
	require.NoError(t, err)
	assert.Len(t, resp.Turfs, 1)

	_, err = svc.ListByOwner(context.Background(), " ")
	assert.ErrorIs(t, err, ErrInvalidInput)
}
