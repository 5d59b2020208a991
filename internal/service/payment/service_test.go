package payment

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jkimaro/washpark-api/internal/model"
	"github.com/jkimaro/washpark-api/pkg/apperror"
)

type fakeRepo struct {
	payments map[uuid.UUID]*model.Payment

	// onTx, when set, runs at the start of WithTx, standing in for a
	// concurrent writer that commits just before the transaction's
	// locked read.
	onTx func()
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{payments: make(map[uuid.UUID]*model.Payment)}
}

func (f *fakeRepo) refTaken(payment *model.Payment) bool {
	if payment.TransactionRef == nil {
		return false
	}
	for _, p := range f.payments {
		if p.ID != payment.ID && p.TransactionRef != nil && *p.TransactionRef == *payment.TransactionRef {
			return true
		}
	}
	return false
}

func (f *fakeRepo) Create(ctx context.Context, payment *model.Payment) error {
	if f.refTaken(payment) {
		return apperror.DuplicateReference("transaction_ref", *payment.TransactionRef)
	}
	payment.ID = uuid.New()
	f.payments[payment.ID] = payment
	return nil
}

func (f *fakeRepo) Get(ctx context.Context, id uuid.UUID) (*model.Payment, error) {
	payment, ok := f.payments[id]
	if !ok {
		return nil, apperror.NotFound("payment", id.String())
	}
	copied := *payment
	return &copied, nil
}

func (f *fakeRepo) Update(ctx context.Context, payment *model.Payment) error {
	if _, ok := f.payments[payment.ID]; !ok {
		return apperror.NotFound("payment", payment.ID.String())
	}
	if f.refTaken(payment) {
		return apperror.DuplicateReference("transaction_ref", *payment.TransactionRef)
	}
	f.payments[payment.ID] = payment
	return nil
}

func (f *fakeRepo) Delete(ctx context.Context, id uuid.UUID) error {
	if _, ok := f.payments[id]; !ok {
		return apperror.NotFound("payment", id.String())
	}
	delete(f.payments, id)
	return nil
}

func (f *fakeRepo) List(ctx context.Context, filters *model.PaymentFilters) ([]*model.Payment, error) {
	var out []*model.Payment
	for _, p := range f.payments {
		if filters != nil && filters.Status != "" && p.Status != filters.Status {
			continue
		}
		copied := *p
		out = append(out, &copied)
	}
	return out, nil
}

func (f *fakeRepo) RevenueBetween(ctx context.Context, from, to time.Time) (float64, int, error) {
	return 0, 0, nil
}

func (f *fakeRepo) WithTx(ctx context.Context, fn func(*sqlx.Tx) error) error {
	if f.onTx != nil {
		f.onTx()
	}
	return fn(nil)
}

func (f *fakeRepo) GetForUpdate(ctx context.Context, tx *sqlx.Tx, id uuid.UUID) (*model.Payment, error) {
	return f.Get(ctx, id)
}

func (f *fakeRepo) UpdateTx(ctx context.Context, tx *sqlx.Tx, payment *model.Payment) error {
	return f.Update(ctx, payment)
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

func createPayment(t *testing.T, svc *Service, req *model.CreatePaymentRequest) *model.Payment {
	t.Helper()

	if req == nil {
		req = &model.CreatePaymentRequest{
			CustomerID:    uuid.New(),
			Amount:        1500,
			PaymentMethod: model.PaymentMethodCash,
		}
	}
	payment, err := svc.CreatePayment(context.Background(), req)
	require.NoError(t, err)
	return payment
}

func TestCreatePayment(t *testing.T) {
	svc, _, _ := newTestService()
	serviceRequestID := uuid.New()

	payment := createPayment(t, svc, &model.CreatePaymentRequest{
		CustomerID:       uuid.New(),
		ServiceRequestID: &serviceRequestID,
		Amount:           2500,
		PaymentMethod:    model.PaymentMethodCard,
	})

	assert.Equal(t, model.PaymentStatusPending, payment.Status)
	assert.Equal(t, 2500.0, payment.Amount)
	require.NotNil(t, payment.ServiceRequestID)
	assert.Nil(t, payment.ParkingID)
}

func TestCreatePaymentRejectsDoubleLinkage(t *testing.T) {
	svc, _, _ := newTestService()
	serviceRequestID := uuid.New()
	parkingID := uuid.New()

	_, err := svc.CreatePayment(context.Background(), &model.CreatePaymentRequest{
		CustomerID:       uuid.New(),
		ServiceRequestID: &serviceRequestID,
		ParkingID:        &parkingID,
		Amount:           2500,
		PaymentMethod:    model.PaymentMethodCash,
	})
	require.Error(t, err)
	assert.Equal(t, apperror.CodeConflictingLinkage, apperror.CodeOf(err))
}

func TestCreatePaymentRejectsNegativeAmount(t *testing.T) {
	svc, _, _ := newTestService()

	_, err := svc.CreatePayment(context.Background(), &model.CreatePaymentRequest{
		CustomerID:    uuid.New(),
		Amount:        -1,
		PaymentMethod: model.PaymentMethodCash,
	})
	require.Error(t, err)
	assert.Equal(t, apperror.CodeValidation, apperror.CodeOf(err))
}

func TestUpdatePaymentRejectsDoubleLinkage(t *testing.T) {
	svc, _, _ := newTestService()
	serviceRequestID := uuid.New()

	payment := createPayment(t, svc, &model.CreatePaymentRequest{
		CustomerID:       uuid.New(),
		ServiceRequestID: &serviceRequestID,
		Amount:           1000,
		PaymentMethod:    model.PaymentMethodCash,
	})

	parkingID := uuid.New()
	_, err := svc.UpdatePayment(context.Background(), payment.ID, &model.UpdatePaymentRequest{
		ParkingID: &parkingID,
	})
	require.Error(t, err)
	assert.Equal(t, apperror.CodeConflictingLinkage, apperror.CodeOf(err))
}

func TestUpdatePaymentStatusTransitions(t *testing.T) {
	cases := []struct {
		name    string
		from    model.PaymentStatus
		to      model.PaymentStatus
		allowed bool
	}{
		{"pending to completed", model.PaymentStatusPending, model.PaymentStatusCompleted, true},
		{"pending to failed", model.PaymentStatusPending, model.PaymentStatusFailed, true},
		{"completed to refunded", model.PaymentStatusCompleted, model.PaymentStatusRefunded, true},
		{"completed to pending", model.PaymentStatusCompleted, model.PaymentStatusPending, false},
		{"failed to completed", model.PaymentStatusFailed, model.PaymentStatusCompleted, false},
		{"refunded to completed", model.PaymentStatusRefunded, model.PaymentStatusCompleted, false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			svc, repo, _ := newTestService()
			payment := createPayment(t, svc, nil)
			payment.Status = tc.from
			require.NoError(t, repo.Update(context.Background(), payment))

			_, err := svc.UpdatePayment(context.Background(), payment.ID, &model.UpdatePaymentRequest{
				Status: &tc.to,
			})
			if tc.allowed {
				assert.NoError(t, err)
			} else {
				assert.True(t, apperror.IsInvalidTransition(err))
			}
		})
	}
}

// A status update validates against the row as it stands inside the
// transaction, not an earlier read, so an update racing a confirm cannot
// overwrite the completed payment.
func TestUpdatePaymentStatusGuardSeesConcurrentWrite(t *testing.T) {
	svc, repo, _ := newTestService()
	payment := createPayment(t, svc, nil)

	repo.onTx = func() {
		repo.payments[payment.ID].Status = model.PaymentStatusCompleted
	}

	failed := model.PaymentStatusFailed
	_, err := svc.UpdatePayment(context.Background(), payment.ID, &model.UpdatePaymentRequest{
		Status: &failed,
	})
	assert.True(t, apperror.IsInvalidTransition(err))
	assert.Equal(t, model.PaymentStatusCompleted, repo.payments[payment.ID].Status)
}

func TestUpdatePaymentUnknownStatus(t *testing.T) {
	svc, _, _ := newTestService()
	payment := createPayment(t, svc, nil)

	bogus := model.PaymentStatus("settled")
	_, err := svc.UpdatePayment(context.Background(), payment.ID, &model.UpdatePaymentRequest{
		Status: &bogus,
	})
	require.Error(t, err)
	assert.Equal(t, apperror.CodeValidation, apperror.CodeOf(err))
}

func TestConfirmPayment(t *testing.T) {
	svc, _, outbox := newTestService()
	payment := createPayment(t, svc, nil)

	ref := "TXN1"
	confirmed, err := svc.ConfirmPayment(context.Background(), payment.ID, &ref)
	require.NoError(t, err)

	assert.Equal(t, model.PaymentStatusCompleted, confirmed.Status)
	require.NotNil(t, confirmed.TransactionRef)
	assert.Equal(t, "TXN1", *confirmed.TransactionRef)
	require.Len(t, outbox.events, 1)
	assert.Equal(t, model.EventPaymentConfirmed, outbox.events[0].EventType)
}

func TestConfirmPaymentTwiceRejected(t *testing.T) {
	svc, _, _ := newTestService()
	payment := createPayment(t, svc, nil)

	_, err := svc.ConfirmPayment(context.Background(), payment.ID, nil)
	require.NoError(t, err)

	_, err = svc.ConfirmPayment(context.Background(), payment.ID, nil)
	assert.True(t, apperror.IsInvalidTransition(err))
}

func TestConfirmPaymentDuplicateReference(t *testing.T) {
	svc, _, _ := newTestService()
	ref := "TXN1"

	first := createPayment(t, svc, nil)
	_, err := svc.ConfirmPayment(context.Background(), first.ID, &ref)
	require.NoError(t, err)

	second := createPayment(t, svc, nil)
	_, err = svc.ConfirmPayment(context.Background(), second.ID, &ref)
	require.Error(t, err)
	assert.Equal(t, apperror.CodeDuplicateReference, apperror.CodeOf(err))
}
