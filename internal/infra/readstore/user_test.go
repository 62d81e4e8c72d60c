//go:build unit

package readstore

import (
	"context"
	"testing"

	"commission-tracker/internal/infra"
	sqlc "commission-tracker/internal/infra/sqlc/generated"
	"commission-tracker/tests/common/builder"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockUserQueries struct {
	mock.Mock
}

func (m *MockUserQueries) FindUserByEmail(ctx context.Context, db sqlc.DBTX, email string) (sqlc.FindUserByEmailRow, error) {
	args := m.Called(ctx, db, email)
	return args.Get(0).(sqlc.FindUserByEmailRow), args.Error(1)
}

func (m *MockUserQueries) FindUserByID(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.FindUserByIDRow, error) {
	args := m.Called(ctx, db, id)
	return args.Get(0).(sqlc.FindUserByIDRow), args.Error(1)
}

func TestFindByEmail(t *testing.T) {
	vendorUser := builder.NewUserBuilder()
	technician := builder.NewUserBuilder().AsTechnician().WithEmail("tech@example.com")

	tests := []struct {
		name       string
		email      string
		mockReturn sqlc.FindUserByEmailRow
		mockError  error
		wantVendor bool
		wantHash   string
		wantKind   infra.RepositoryErrorKind
	}{
		{
			name:       "success - vendor user",
			email:      vendorUser.Email,
			mockReturn: vendorUser.BuildEmailRow(),
			wantVendor: true,
			wantHash:   vendorUser.PasswordHash,
		},
		{
			name:       "success - technician has no vendor",
			email:      technician.Email,
			mockReturn: technician.BuildEmailRow(),
			wantHash:   technician.PasswordHash,
		},
		{
			name:       "user not found",
			email:      "notfound@example.com",
			mockReturn: sqlc.FindUserByEmailRow{},
			mockError:  pgx.ErrNoRows,
			wantKind:   infra.KindNotFound,
		},
		{
			name:       "database error",
			email:      vendorUser.Email,
			mockReturn: sqlc.FindUserByEmailRow{},
			mockError:  assert.AnError,
			wantKind:   infra.KindDBFailure,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockQueries := new(MockUserQueries)
			mockQueries.On("FindUserByEmail", mock.Anything, mock.Anything, tt.email).Return(tt.mockReturn, tt.mockError)

			store := NewUserReadStore(mockQueries, nil)
			view, hash, err := store.FindByEmail(context.Background(), tt.email)

			if tt.wantKind != "" {
				require.Error(t, err)
				assert.Nil(t, view)
				assert.Empty(t, hash)
				assert.True(t, infra.IsKind(err, tt.wantKind))
			} else {
				require.NoError(t, err)
				assert.Equal(t, tt.email, view.Email)
				assert.Equal(t, tt.wantHash, hash)
				if tt.wantVendor {
					require.NotNil(t, view.VendorID)
					require.NotNil(t, view.VendorActive)
					assert.True(t, *view.VendorActive)
				} else {
					assert.Nil(t, view.VendorID)
					assert.Nil(t, view.VendorActive)
				}
			}

			mockQueries.AssertExpectations(t)
		})
	}
}

func TestFindByID(t *testing.T) {
	inactiveVendor := builder.NewUserBuilder().WithVendorInactive()
	row := inactiveVendor.BuildIDRow()

	mockQueries := new(MockUserQueries)
	mockQueries.On("FindUserByID", mock.Anything, mock.Anything, row.ID).Return(row, nil)

	view, err := NewUserReadStore(mockQueries, nil).FindByID(context.Background(), row.ID)

	require.NoError(t, err)
	assert.Equal(t, inactiveVendor.BuildReadModel(), view)
	mockQueries.AssertExpectations(t)
}
