//go:build unit

package commands_test

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"commission-tracker/internal/domain/purchase"
	"commission-tracker/internal/domain/vendor"
	reqdto "commission-tracker/internal/handler/dto/request"
	"commission-tracker/internal/pkg/clock"
	"commission-tracker/internal/pkg/errs"
	"commission-tracker/internal/pkg/qr"
	"commission-tracker/internal/usecase/commands"
	"commission-tracker/tests/common/fake"
	commandsmock "commission-tracker/tests/mock/commands"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func seedVendor(t *testing.T, uow *fake.UnitOfWork) *vendor.Vendor {
	t.Helper()
	v, err := vendor.NewVendor(nil, vendor.Profile{
		Name:              "Negozio Bianchi",
		Email:             "negozio@example.com",
		Phone:             "+39 02 1234567",
		CommissionPercent: decimal.NewFromInt(15),
	}, nil, time.Now())
	require.NoError(t, err)
	uow.AddVendor(v)
	return v
}

func TestVendorCommands_UpdateKeepsAbsentFields(t *testing.T) {
	uow := fake.NewUnitOfWork()
	v := seedVendor(t, uow)
	cmds := commands.NewVendorCommands(uow)

	percent := decimal.RequireFromString("20")
	require.NoError(t, cmds.Update(context.Background(), v.ID(), reqdto.UpdateVendorRequest{CommissionPercent: &percent}))

	got, ok := uow.Vendor(v.ID())
	require.True(t, ok)
	assert.Equal(t, "Negozio Bianchi", got.Name().String())
	assert.Equal(t, "+39 02 1234567", got.Phone())
	assert.True(t, got.CommissionRate().Fraction().Equal(decimal.RequireFromString("0.2")))
}

func TestVendorCommands_UpdateRejectsInvalidRate(t *testing.T) {
	uow := fake.NewUnitOfWork()
	v := seedVendor(t, uow)
	cmds := commands.NewVendorCommands(uow)

	percent := decimal.RequireFromString("120")
	err := cmds.Update(context.Background(), v.ID(), reqdto.UpdateVendorRequest{CommissionPercent: &percent})
	require.ErrorIs(t, err, errs.ErrDomainValidation)

	got, _ := uow.Vendor(v.ID())
	assert.True(t, got.CommissionRate().Fraction().Equal(decimal.RequireFromString("0.15")))
}

func TestVendorCommands_UnknownVendor(t *testing.T) {
	uow := fake.NewUnitOfWork()
	cmds := commands.NewVendorCommands(uow)
	ctx := context.Background()
	id := uuid.New()

	assert.ErrorIs(t, cmds.Update(ctx, id, reqdto.UpdateVendorRequest{}), errs.ErrVendorNotFound)
	assert.ErrorIs(t, cmds.SetActive(ctx, id, false), errs.ErrVendorNotFound)
	assert.ErrorIs(t, cmds.Delete(ctx, id), errs.ErrVendorNotFound)
}

func TestVendorCommands_SetActiveAndDelete(t *testing.T) {
	uow := fake.NewUnitOfWork()
	v := seedVendor(t, uow)
	cmds := commands.NewVendorCommands(uow)
	ctx := context.Background()

	require.NoError(t, cmds.SetActive(ctx, v.ID(), false))
	got, _ := uow.Vendor(v.ID())
	assert.False(t, got.IsActive())

	require.NoError(t, cmds.Delete(ctx, v.ID()))
	_, ok := uow.Vendor(v.ID())
	assert.False(t, ok)
}

func TestSerialCommands_Create(t *testing.T) {
	ctrl := gomock.NewController(t)
	uow := fake.NewUnitOfWork()
	v := seedVendor(t, uow)
	gen := commandsmock.NewMockQRGenerator(ctrl)
	clk := clock.NewMockClock(time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC))
	cmds := commands.NewSerialCommands(uow, gen, clk, "https://shop.example/")

	var encoded string
	gen.EXPECT().Generate(gomock.Any()).DoAndReturn(func(content string) (qr.Code, error) {
		encoded = content
		return qr.Code{DataURL: "data:image/png;base64,AAAA", Hash: "abcd"}, nil
	})

	view, err := cmds.Create(context.Background(), v.ID(), "  SN-0042 ")
	require.NoError(t, err)

	assert.Equal(t, "SN-0042", view.SerialNumber)
	assert.Equal(t, encoded, view.PurchaseURL)
	assert.True(t, strings.HasPrefix(view.PurchaseURL, "https://shop.example/purchase/"+view.LinkToken))
	assert.Equal(t, "abcd", view.QRHash)
	assert.False(t, view.IsUsed)
	assert.Equal(t, clk.Now(), view.CreatedAt)

	stored, ok := uow.Serial(view.ID)
	require.True(t, ok)
	assert.Equal(t, view.LinkToken, stored.Token)
}

func TestSerialCommands_CreateErrors(t *testing.T) {
	ctrl := gomock.NewController(t)
	uow := fake.NewUnitOfWork()
	gen := commandsmock.NewMockQRGenerator(ctrl)
	cmds := commands.NewSerialCommands(uow, gen, clock.NewRealClock(), "https://shop.example")
	ctx := context.Background()

	gen.EXPECT().Generate(gomock.Any()).Return(qr.Code{DataURL: "data:", Hash: "h"}, nil).AnyTimes()

	_, err := cmds.Create(ctx, uuid.New(), "SN-1")
	assert.ErrorIs(t, err, errs.ErrVendorNotFound)

	v := seedVendor(t, uow)
	_, err = cmds.Create(ctx, v.ID(), "   ")
	assert.ErrorIs(t, err, errs.ErrDomainValidation)
}

func TestSerialCommands_QRFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	uow := fake.NewUnitOfWork()
	v := seedVendor(t, uow)
	gen := commandsmock.NewMockQRGenerator(ctrl)
	cmds := commands.NewSerialCommands(uow, gen, clock.NewRealClock(), "https://shop.example")

	gen.EXPECT().Generate(gomock.Any()).Return(qr.Code{}, errors.New("encode failed"))

	_, err := cmds.Create(context.Background(), v.ID(), "SN-1")
	require.Error(t, err)
	assert.Equal(t, 0, uow.Calls("Serials.Create"))
}

func TestAppointmentCommands_UpdateStatus(t *testing.T) {
	uow := fake.NewUnitOfWork()
	row := pendingPurchase(t, uow, "")
	cmds := commands.NewAppointmentCommands(uow)
	ctx := context.Background()

	require.NoError(t, cmds.UpdateStatus(ctx, row.ID, "completed"))
	got, _ := uow.Purchase(row.ID)
	assert.Equal(t, purchase.AppointmentCompleted, got.AppointmentStatus)

	assert.ErrorIs(t, cmds.UpdateStatus(ctx, row.ID, "done"), errs.ErrDomainValidation)
	assert.ErrorIs(t, cmds.UpdateStatus(ctx, uuid.New(), "cancelled"), errs.ErrPurchaseNotFound)
}
