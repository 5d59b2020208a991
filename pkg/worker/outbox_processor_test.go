package worker

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jkimaro/washpark-api/internal/model"
	"github.com/jkimaro/washpark-api/pkg/logger"
	"github.com/jkimaro/washpark-api/pkg/metrics"
)

// Collectors register globally, so the package shares one set.
var testMetrics = metrics.NewMetrics("washpark_worker_test")

type fakeOutboxRepo struct {
	pending  []*model.OutboxEvent
	statuses map[uuid.UUID]model.OutboxStatus
	errors   map[uuid.UUID]string
}

func newFakeOutboxRepo(events ...*model.OutboxEvent) *fakeOutboxRepo {
	return &fakeOutboxRepo{
		pending:  events,
		statuses: make(map[uuid.UUID]model.OutboxStatus),
		errors:   make(map[uuid.UUID]string),
	}
}

func (f *fakeOutboxRepo) CreateTx(ctx context.Context, tx *sqlx.Tx, event *model.OutboxEvent) error {
	f.pending = append(f.pending, event)
	return nil
}

func (f *fakeOutboxRepo) GetPendingEvents(ctx context.Context, limit int) ([]*model.OutboxEvent, error) {
	if len(f.pending) > limit {
		return f.pending[:limit], nil
	}
	return f.pending, nil
}

func (f *fakeOutboxRepo) UpdateStatus(ctx context.Context, id uuid.UUID, status model.OutboxStatus, lastError *string) error {
	f.statuses[id] = status
	if lastError != nil {
		f.errors[id] = *lastError
	}
	return nil
}

type fakeBroker struct {
	published []string
	err       error
}

func (f *fakeBroker) Publish(ctx context.Context, channel string, message interface{}) error {
	if f.err != nil {
		return f.err
	}
	f.published = append(f.published, channel)
	return nil
}

func (f *fakeBroker) Subscribe(ctx context.Context, channel string) (<-chan []byte, error) {
	return nil, nil
}

func (f *fakeBroker) Close() error { return nil }

func newTestProcessor(repo *fakeOutboxRepo, broker *fakeBroker) *OutboxProcessor {
	return NewOutboxProcessor(repo, broker, OutboxProcessorConfig{
		Channel:       "events",
		BatchSize:     10,
		PollInterval:  time.Second,
		RetryAttempts: 2,
		RetryDelay:    time.Millisecond,
	}, logger.NewLogger(nil), testMetrics)
}

func pendingEvent(eventType string) *model.OutboxEvent {
	return &model.OutboxEvent{
		ID:        uuid.New(),
		EventType: eventType,
		Payload:   []byte(`{}`),
		Status:    model.OutboxStatusPending,
	}
}

func TestProcessEventsPublishesAndMarksProcessed(t *testing.T) {
	first := pendingEvent(model.EventServiceCompleted)
	second := pendingEvent(model.EventPaymentConfirmed)
	repo := newFakeOutboxRepo(first, second)
	broker := &fakeBroker{}

	p := newTestProcessor(repo, broker)
	require.NoError(t, p.processEvents(context.Background()))

	assert.Len(t, broker.published, 2)
	assert.Equal(t, model.OutboxStatusProcessed, repo.statuses[first.ID])
	assert.Equal(t, model.OutboxStatusProcessed, repo.statuses[second.ID])
}

func TestProcessEventsMarksFailedOnPublishError(t *testing.T) {
	event := pendingEvent(model.EventParkingCheckedOut)
	repo := newFakeOutboxRepo(event)
	broker := &fakeBroker{err: errors.New("broker down")}

	p := newTestProcessor(repo, broker)
	require.NoError(t, p.processEvents(context.Background()))

	assert.Equal(t, model.OutboxStatusFailed, repo.statuses[event.ID])
	assert.Contains(t, repo.errors[event.ID], "broker down")
}

func TestNewOutboxProcessorRejectsZeroConfig(t *testing.T) {
	assert.Panics(t, func() {
		NewOutboxProcessor(newFakeOutboxRepo(), &fakeBroker{}, OutboxProcessorConfig{},
			logger.NewLogger(nil), testMetrics)
	})
}
