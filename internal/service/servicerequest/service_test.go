package servicerequest

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
	requests map[uuid.UUID]*model.ServiceRequest
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{requests: make(map[uuid.UUID]*model.ServiceRequest)}
}

func (f *fakeRepo) Create(ctx context.Context, request *model.ServiceRequest) error {
	request.ID = uuid.New()
	f.requests[request.ID] = request
	return nil
}

func (f *fakeRepo) Get(ctx context.Context, id uuid.UUID) (*model.ServiceRequest, error) {
	request, ok := f.requests[id]
	if !ok {
		return nil, apperror.NotFound("service request", id.String())
	}
	copied := *request
	return &copied, nil
}

func (f *fakeRepo) Update(ctx context.Context, request *model.ServiceRequest) error {
	if _, ok := f.requests[request.ID]; !ok {
		return apperror.NotFound("service request", request.ID.String())
	}
	f.requests[request.ID] = request
	return nil
}

func (f *fakeRepo) Delete(ctx context.Context, id uuid.UUID) error {
	if _, ok := f.requests[id]; !ok {
		return apperror.NotFound("service request", id.String())
	}
	delete(f.requests, id)
	return nil
}

func (f *fakeRepo) List(ctx context.Context, filters *model.ServiceRequestFilters) ([]*model.ServiceRequest, error) {
	var out []*model.ServiceRequest
	for _, r := range f.requests {
		if filters != nil && filters.Status != "" && r.Status != filters.Status {
			continue
		}
		copied := *r
		out = append(out, &copied)
	}
	return out, nil
}

func (f *fakeRepo) ListRecentByCustomer(ctx context.Context, customerID uuid.UUID, limit int) ([]*model.ServiceRequest, error) {
	return nil, nil
}

func (f *fakeRepo) WithTx(ctx context.Context, fn func(*sqlx.Tx) error) error {
	return fn(nil)
}

func (f *fakeRepo) GetForUpdate(ctx context.Context, tx *sqlx.Tx, id uuid.UUID) (*model.ServiceRequest, error) {
	return f.Get(ctx, id)
}

func (f *fakeRepo) UpdateTx(ctx context.Context, tx *sqlx.Tx, request *model.ServiceRequest) error {
	return f.Update(ctx, request)
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

func createRequest(t *testing.T, svc *Service, status model.ServiceStatus) *model.ServiceRequest {
	t.Helper()

	request, err := svc.CreateServiceRequest(context.Background(), &model.CreateServiceRequestRequest{
		VehicleID:     uuid.New(),
		CustomerID:    uuid.New(),
		ServiceTypeID: uuid.New(),
	})
	require.NoError(t, err)
	require.Equal(t, model.ServiceStatusPending, request.Status)

	if status != model.ServiceStatusPending {
		request.Status = status
		require.NoError(t, svc.repo.Update(context.Background(), request))
	}
	return request
}

func TestStartService(t *testing.T) {
	svc, _, outbox := newTestService()
	request := createRequest(t, svc, model.ServiceStatusPending)

	started, err := svc.StartService(context.Background(), request.ID, nil)
	require.NoError(t, err)

	assert.Equal(t, model.ServiceStatusInProgress, started.Status)
	assert.NotNil(t, started.StartTime)
	require.Len(t, outbox.events, 1)
	assert.Equal(t, model.EventServiceStarted, outbox.events[0].EventType)
}

func TestStartServiceAssignsAttendant(t *testing.T) {
	svc, _, _ := newTestService()
	request := createRequest(t, svc, model.ServiceStatusPending)
	attendantID := uuid.New()

	started, err := svc.StartService(context.Background(), request.ID, &attendantID)
	require.NoError(t, err)
	require.NotNil(t, started.AttendantID)
	assert.Equal(t, attendantID, *started.AttendantID)
}

func TestStartServiceKeepsExistingAttendant(t *testing.T) {
	svc, repo, _ := newTestService()
	request := createRequest(t, svc, model.ServiceStatusPending)

	existing := uuid.New()
	request.AttendantID = &existing
	require.NoError(t, repo.Update(context.Background(), request))

	other := uuid.New()
	started, err := svc.StartService(context.Background(), request.ID, &other)
	require.NoError(t, err)
	require.NotNil(t, started.AttendantID)
	assert.Equal(t, existing, *started.AttendantID)
}

func TestStartServiceRejectsNonPending(t *testing.T) {
	for _, status := range []model.ServiceStatus{
		model.ServiceStatusInProgress,
		model.ServiceStatusCompleted,
		model.ServiceStatusCancelled,
	} {
		t.Run(string(status), func(t *testing.T) {
			svc, _, _ := newTestService()
			request := createRequest(t, svc, status)

			_, err := svc.StartService(context.Background(), request.ID, nil)
			assert.True(t, apperror.IsInvalidTransition(err))
		})
	}
}

func TestCompleteService(t *testing.T) {
	for _, status := range []model.ServiceStatus{
		model.ServiceStatusPending,
		model.ServiceStatusInProgress,
	} {
		t.Run(string(status), func(t *testing.T) {
			svc, _, outbox := newTestService()
			request := createRequest(t, svc, status)

			completed, err := svc.CompleteService(context.Background(), request.ID)
			require.NoError(t, err)

			assert.Equal(t, model.ServiceStatusCompleted, completed.Status)
			assert.NotNil(t, completed.CompletionTime)
			require.Len(t, outbox.events, 1)
			assert.Equal(t, model.EventServiceCompleted, outbox.events[0].EventType)
		})
	}
}

func TestCompleteServiceRejectsTerminal(t *testing.T) {
	for _, status := range []model.ServiceStatus{
		model.ServiceStatusCompleted,
		model.ServiceStatusCancelled,
	} {
		t.Run(string(status), func(t *testing.T) {
			svc, _, _ := newTestService()
			request := createRequest(t, svc, status)

			_, err := svc.CompleteService(context.Background(), request.ID)
			assert.True(t, apperror.IsInvalidTransition(err))
		})
	}
}

func TestCancelService(t *testing.T) {
	svc, _, outbox := newTestService()
	request := createRequest(t, svc, model.ServiceStatusInProgress)

	cancelled, err := svc.CancelService(context.Background(), request.ID)
	require.NoError(t, err)

	assert.Equal(t, model.ServiceStatusCancelled, cancelled.Status)
	require.Len(t, outbox.events, 1)
	assert.Equal(t, model.EventServiceCancelled, outbox.events[0].EventType)
}

func TestCancelServiceRejectsTerminal(t *testing.T) {
	svc, _, _ := newTestService()
	request := createRequest(t, svc, model.ServiceStatusCompleted)

	_, err := svc.CancelService(context.Background(), request.ID)
	assert.True(t, apperror.IsInvalidTransition(err))
}

func TestTransitionNotFound(t *testing.T) {
	svc, _, _ := newTestService()

	_, err := svc.StartService(context.Background(), uuid.New(), nil)
	assert.True(t, apperror.IsNotFound(err))
}

// Full lifecycle: request created pending, started with an attendant,
// completed with both timestamps stamped.
func TestServiceLifecycle(t *testing.T) {
	svc, _, outbox := newTestService()
	request := createRequest(t, svc, model.ServiceStatusPending)
	attendantID := uuid.New()

	started, err := svc.StartService(context.Background(), request.ID, &attendantID)
	require.NoError(t, err)
	assert.Equal(t, model.ServiceStatusInProgress, started.Status)

	completed, err := svc.CompleteService(context.Background(), request.ID)
	require.NoError(t, err)
	assert.Equal(t, model.ServiceStatusCompleted, completed.Status)
	assert.NotNil(t, completed.StartTime)
	assert.NotNil(t, completed.CompletionTime)
	assert.Len(t, outbox.events, 2)

	_, err = svc.CancelService(context.Background(), request.ID)
	assert.True(t, apperror.IsInvalidTransition(err))
}
