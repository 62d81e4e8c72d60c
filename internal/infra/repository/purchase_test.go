//go:build unit

package repository

import (
	"context"
	"testing"
	"time"

	"commission-tracker/internal/domain/purchase"
	"commission-tracker/internal/infra"
	sqlc "commission-tracker/internal/infra/sqlc/generated"
	"commission-tracker/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var fixedNow = time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)

type MockPurchaseQueries struct {
	mock.Mock
}

func (m *MockPurchaseQueries) CreatePurchase(ctx context.Context, db sqlc.DBTX, arg sqlc.CreatePurchaseParams) (uuid.UUID, error) {
	args := m.Called(ctx, db, arg)
	return args.Get(0).(uuid.UUID), args.Error(1)
}

func (m *MockPurchaseQueries) SetPurchaseCheckoutSession(ctx context.Context, db sqlc.DBTX, arg sqlc.SetPurchaseCheckoutSessionParams) (int64, error) {
	args := m.Called(ctx, db, arg)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockPurchaseQueries) MarkPurchasePaid(ctx context.Context, db sqlc.DBTX, arg sqlc.MarkPurchasePaidParams) (int64, error) {
	args := m.Called(ctx, db, arg)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockPurchaseQueries) MarkPurchasePaymentFailed(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (int64, error) {
	args := m.Called(ctx, db, id)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockPurchaseQueries) SetPurchaseAppointment(ctx context.Context, db sqlc.DBTX, arg sqlc.SetPurchaseAppointmentParams) (int64, error) {
	args := m.Called(ctx, db, arg)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockPurchaseQueries) UpdateAppointmentStatus(ctx context.Context, db sqlc.DBTX, arg sqlc.UpdateAppointmentStatusParams) (int64, error) {
	args := m.Called(ctx, db, arg)
	return args.Get(0).(int64), args.Error(1)
}

func TestPurchaseRepository_Create(t *testing.T) {
	price, err := purchase.NewMoney(decimal.RequireFromString("49.99"))
	require.NoError(t, err)
	in := shared.NewPurchase{
		ClientID: uuid.New(),
		SerialID: uuid.New(),
		VendorID: uuid.New(),
		Service:  purchase.ServiceSnapshot{ServiceID: "antivirus", Name: "Protezione Antivirus Premium", Price: price},
	}
	purchaseID := uuid.New()

	q := new(MockPurchaseQueries)
	q.On("CreatePurchase", mock.Anything, mock.Anything, sqlc.CreatePurchaseParams{
		ClientID:     in.ClientID,
		SerialID:     pgtype.UUID{Bytes: in.SerialID, Valid: true},
		ServiceName:  "Protezione Antivirus Premium",
		ServicePrice: price.Amount(),
		VendorID:     in.VendorID,
	}).Return(purchaseID, nil)

	id, err := NewPurchaseRepository(q).Create(context.Background(), nil, in)

	require.NoError(t, err)
	assert.Equal(t, purchaseID, id)
	q.AssertExpectations(t)
}

func TestPurchaseRepository_Create_VendorMissing(t *testing.T) {
	q := new(MockPurchaseQueries)
	q.On("CreatePurchase", mock.Anything, mock.Anything, mock.Anything).Return(uuid.Nil, pgx.ErrNoRows)

	_, err := NewPurchaseRepository(q).Create(context.Background(), nil, shared.NewPurchase{})

	assert.True(t, infra.IsNotFound(err))
}

func TestPurchaseRepository_MarkPaid(t *testing.T) {
	purchaseID := uuid.New()

	tests := []struct {
		name      string
		sessionID string
		intent    pgtype.Text
		affected  int64
		want      bool
	}{
		{name: "pending becomes completed", sessionID: "cs_1", intent: pgtype.Text{String: "cs_1", Valid: true}, affected: 1, want: true},
		{name: "already completed", sessionID: "cs_1", intent: pgtype.Text{String: "cs_1", Valid: true}, affected: 0, want: false},
		{name: "keeps stored session when none given", sessionID: "", intent: pgtype.Text{}, affected: 1, want: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q := new(MockPurchaseQueries)
			q.On("MarkPurchasePaid", mock.Anything, mock.Anything, sqlc.MarkPurchasePaidParams{
				PaymentIntentID: tt.intent,
				ID:              purchaseID,
			}).Return(tt.affected, nil)

			changed, err := NewPurchaseRepository(q).MarkPaid(context.Background(), nil, purchaseID, tt.sessionID)

			require.NoError(t, err)
			assert.Equal(t, tt.want, changed)
			q.AssertExpectations(t)
		})
	}
}

func TestPurchaseRepository_SetAppointment(t *testing.T) {
	clientID := uuid.New()
	at := time.Date(2025, 6, 10, 14, 0, 0, 0, time.UTC)

	t.Run("no purchase for client", func(t *testing.T) {
		q := new(MockPurchaseQueries)
		q.On("SetPurchaseAppointment", mock.Anything, mock.Anything, sqlc.SetPurchaseAppointmentParams{
			ClientID:        clientID,
			AppointmentDate: pgtype.Timestamptz{Time: at, Valid: true},
		}).Return(int64(0), nil)

		err := NewPurchaseRepository(q).SetAppointment(context.Background(), nil, clientID, at)

		assert.True(t, infra.IsNotFound(err))
	})

	t.Run("database error", func(t *testing.T) {
		q := new(MockPurchaseQueries)
		q.On("SetPurchaseAppointment", mock.Anything, mock.Anything, mock.Anything).Return(int64(0), assert.AnError)

		err := NewPurchaseRepository(q).SetAppointment(context.Background(), nil, clientID, at)

		assert.True(t, infra.IsKind(err, infra.KindDBFailure))
	})
}
