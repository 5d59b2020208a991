package parking

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jkimaro/washpark-api/internal/model"
	"github.com/jkimaro/washpark-api/pkg/apperror"
)

type fakeRepo struct {
	records map[uuid.UUID]*model.Parking
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{records: make(map[uuid.UUID]*model.Parking)}
}

func (f *fakeRepo) Create(ctx context.Context, parking *model.Parking) error {
	parking.ID = uuid.New()
	f.records[parking.ID] = parking
	return nil
}

func (f *fakeRepo) Get(ctx context.Context, id uuid.UUID) (*model.Parking, error) {
	parking, ok := f.records[id]
	if !ok {
		return nil, apperror.NotFound("parking record", id.String())
	}
	copied := *parking
	return &copied, nil
}

func (f *fakeRepo) Update(ctx context.Context, parking *model.Parking) error {
	if _, ok := f.records[parking.ID]; !ok {
		return apperror.NotFound("parking record", parking.ID.String())
	}
	f.records[parking.ID] = parking
	return nil
}

func (f *fakeRepo) Delete(ctx context.Context, id uuid.UUID) error {
	if _, ok := f.records[id]; !ok {
		return apperror.NotFound("parking record", id.String())
	}
	delete(f.records, id)
	return nil
}

func (f *fakeRepo) List(ctx context.Context, filters *model.ParkingFilters) ([]*model.Parking, error) {
	var out []*model.Parking
	for _, p := range f.records {
		if filters != nil && filters.Status != "" && p.Status != filters.Status {
			continue
		}
		copied := *p
		out = append(out, &copied)
	}
	return out, nil
}

func (f *fakeRepo) ListRecentByCustomer(ctx context.Context, customerID uuid.UUID, limit int) ([]*model.Parking, error) {
	return nil, nil
}

func (f *fakeRepo) DurationStats(ctx context.Context) (int, float64, error) {
	return 0, 0, nil
}

func (f *fakeRepo) WithTx(ctx context.Context, fn func(*sqlx.Tx) error) error {
	return fn(nil)
}

func (f *fakeRepo) GetForUpdate(ctx context.Context, tx *sqlx.Tx, id uuid.UUID) (*model.Parking, error) {
	return f.Get(ctx, id)
}

func (f *fakeRepo) UpdateTx(ctx context.Context, tx *sqlx.Tx, parking *model.Parking) error {
	return f.Update(ctx, parking)
}

type fakeOutbox struct {
	events []*model.OutboxEvent
}

func (f *fakeOutbox) CreateTx(ctx context.Context, tx *sqlx.Tx, event *model.OutboxEvent) error {
	f.events = append(f.events, event)
	return nil
}

func (f *fakeOutbox) GetPendingEvents(ctx context.Context, limit int) ([]*model.OutboxEvent, error) {
	return f.events, nil
}

func (f *fakeOutbox) UpdateStatus(ctx context.Context, id uuid.UUID, status model.OutboxStatus, lastError *string) error {
	return nil
}

func newTestService() (*Service, *fakeRepo, *fakeOutbox) {
	repo := newFakeRepo()
	outbox := &fakeOutbox{}
	return NewService(repo, outbox), repo, outbox
}

func checkIn(t *testing.T, svc *Service) *model.Parking {
	t.Helper()

	parking, err := svc.CheckIn(context.Background(), &model.CreateParkingRequest{
		VehicleID:  uuid.New(),
		CustomerID: uuid.New(),
	})
	require.NoError(t, err)
	require.Equal(t, model.ParkingStatusActive, parking.Status)
	require.Zero(t, parking.ParkingFee)
	return parking
}

func TestCheckOut(t *testing.T) {
	svc, _, outbox := newTestService()
	parking := checkIn(t, svc)

	fee := 5000.0
	checkedOut, err := svc.CheckOut(context.Background(), parking.ID, &fee)
	require.NoError(t, err)

	assert.Equal(t, model.ParkingStatusCompleted, checkedOut.Status)
	assert.NotNil(t, checkedOut.CheckOutTime)
	assert.Equal(t, 5000.0, checkedOut.ParkingFee)
	require.Len(t, outbox.events, 1)
	assert.Equal(t, model.EventParkingCheckedOut, outbox.events[0].EventType)
}

func TestCheckOutWithoutFee(t *testing.T) {
	svc, _, _ := newTestService()
	parking := checkIn(t, svc)

	checkedOut, err := svc.CheckOut(context.Background(), parking.ID, nil)
	require.NoError(t, err)
	assert.Zero(t, checkedOut.ParkingFee)
	assert.NotNil(t, checkedOut.CheckOutTime)
}

func TestCheckOutKeepsExistingFee(t *testing.T) {
	svc, repo, _ := newTestService()
	parking := checkIn(t, svc)

	parking.ParkingFee = 3000
	require.NoError(t, repo.Update(context.Background(), parking))

	fee := 9000.0
	checkedOut, err := svc.CheckOut(context.Background(), parking.ID, &fee)
	require.NoError(t, err)
	assert.Equal(t, 3000.0, checkedOut.ParkingFee)
}

func TestCheckOutRejectsNegativeFee(t *testing.T) {
	svc, _, _ := newTestService()
	parking := checkIn(t, svc)

	fee := -1.0
	_, err := svc.CheckOut(context.Background(), parking.ID, &fee)
	require.Error(t, err)
	assert.Equal(t, apperror.CodeValidation, apperror.CodeOf(err))
}

func TestCheckOutTwiceRejected(t *testing.T) {
	svc, _, outbox := newTestService()
	parking := checkIn(t, svc)

	_, err := svc.CheckOut(context.Background(), parking.ID, nil)
	require.NoError(t, err)

	_, err = svc.CheckOut(context.Background(), parking.ID, nil)
	assert.True(t, apperror.IsInvalidTransition(err))
	assert.Len(t, outbox.events, 1)
}

func TestCheckOutNotFound(t *testing.T) {
	svc, _, _ := newTestService()

	_, err := svc.CheckOut(context.Background(), uuid.New(), nil)
	assert.True(t, apperror.IsNotFound(err))
}

func TestListActive(t *testing.T) {
	svc, _, _ := newTestService()
	first := checkIn(t, svc)
	second := checkIn(t, svc)

	_, err := svc.CheckOut(context.Background(), first.ID, nil)
	require.NoError(t, err)

	active, err := svc.ListActive(context.Background())
	require.NoError(t, err)
	require.Len(t, active, 1)
	assert.Equal(t, second.ID, active[0].ID)
}
