//go:build unit

package purchase_test

import (
	"testing"
	"time"

	"commission-tracker/internal/domain/purchase"
	"commission-tracker/tests/common/builder"

	"github.com/google/go-cmp/cmp"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestState_Transitions(t *testing.T) {
	tests := []struct {
		from    purchase.State
		trigger purchase.Trigger
		want    purchase.State
		wantErr bool
	}{
		{from: purchase.StateSelectingService, trigger: purchase.TriggerServiceChosen, want: purchase.StateEnteringInfo},
		{from: purchase.StateEnteringInfo, trigger: purchase.TriggerInfoSubmitted, want: purchase.StateAwaitingPayment},
		{from: purchase.StateAwaitingPayment, trigger: purchase.TriggerPaymentInitiated, want: purchase.StateAwaitingPayment},
		{from: purchase.StateAwaitingPayment, trigger: purchase.TriggerPaymentConfirmed, want: purchase.StateSchedulingAppointment},
		{from: purchase.StateSchedulingAppointment, trigger: purchase.TriggerAppointmentSubmitted, want: purchase.StateCompleted},
		{from: purchase.StateEnteringInfo, trigger: purchase.TriggerLinkRevoked, want: purchase.StateInvalid},
		{from: purchase.StateSelectingService, trigger: purchase.TriggerPaymentConfirmed, wantErr: true},
		{from: purchase.StateEnteringInfo, trigger: purchase.TriggerServiceChosen, wantErr: true},
		{from: purchase.StateCompleted, trigger: purchase.TriggerLinkRevoked, wantErr: true},
		{from: purchase.StateInvalid, trigger: purchase.TriggerServiceChosen, wantErr: true},
	}
	for _, tt := range tests {
		t.Run(string(tt.from)+"/"+string(tt.trigger), func(t *testing.T) {
			got, err := tt.from.Next(tt.trigger)
			if tt.wantErr {
				assert.ErrorIs(t, err, purchase.ErrInvalidTransition)
				assert.Equal(t, tt.from, got)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestFlow_Walkthrough(t *testing.T) {
	b := builder.NewFlowBuilder()
	f := b.Fresh()
	later := b.Now.Add(time.Minute)

	assert.Equal(t, purchase.StateSelectingService, f.State())
	require.NoError(t, f.SelectService(b.Offering, later))
	assert.Equal(t, purchase.StateEnteringInfo, f.State())
	assert.Equal(t, later, f.UpdatedAt())

	require.NoError(t, f.SubmitInfo(b.Info, later))
	assert.Equal(t, purchase.StateAwaitingPayment, f.State())
	assert.False(t, f.Committed())

	assert.ErrorIs(t, f.RecordCheckout(purchase.Checkout{SessionID: "cs"}, later), purchase.ErrNotCommitted)
	assert.ErrorIs(t, f.ConfirmPayment(later), purchase.ErrCheckoutNotStarted)

	clientID, purchaseID := uuid.New(), uuid.New()
	require.NoError(t, f.RecordCommit(clientID, purchaseID, later))
	assert.ErrorIs(t, f.RecordCommit(uuid.New(), uuid.New(), later), purchase.ErrAlreadyCommitted)
	assert.Equal(t, purchaseID, f.PurchaseID())

	require.NoError(t, f.RecordCheckout(purchase.Checkout{SessionID: "cs_1", URL: "https://pay/cs_1"}, later))
	require.NoError(t, f.ConfirmPayment(later))
	assert.Equal(t, purchase.StateSchedulingAppointment, f.State())

	slot, err := purchase.NewAppointmentSlot("2025-06-10", "14:00", b.Now, time.UTC)
	require.NoError(t, err)
	require.NoError(t, f.ScheduleAppointment(slot, later))
	assert.Equal(t, purchase.StateCompleted, f.State())
	assert.Equal(t, "2025-06-10T14:00:00", f.Appointment().String())
}

func TestFlow_IdempotentResubmits(t *testing.T) {
	b := builder.NewFlowBuilder()

	f := b.EnteringInfo()
	require.NoError(t, f.SelectService(b.Offering, b.Now), "same service again")
	assert.Equal(t, purchase.StateEnteringInfo, f.State())

	f = b.AwaitingPayment()
	require.NoError(t, f.SubmitInfo(b.Info, b.Now), "same info again before commit")

	other, err := purchase.NewClientInfo("Giulia Verdi", "giulia@example.com", "+39 320 0000000")
	require.NoError(t, err)
	assert.ErrorIs(t, f.SubmitInfo(other, b.Now), purchase.ErrInvalidTransition)

	f = b.SchedulingAppointment()
	slot, _ := purchase.NewAppointmentSlot("2025-06-10", "09:00", b.Now, time.UTC)
	require.NoError(t, f.ScheduleAppointment(slot, b.Now))
	require.NoError(t, f.ScheduleAppointment(slot, b.Now))

	other2, _ := purchase.NewAppointmentSlot("2025-06-11", "09:00", b.Now, time.UTC)
	assert.ErrorIs(t, f.ScheduleAppointment(other2, b.Now), purchase.ErrInvalidTransition)
}

func TestFlow_ClearCheckout(t *testing.T) {
	b := builder.NewFlowBuilder()
	f := b.CheckoutStarted()

	f.ClearCheckout(b.Now)
	assert.Nil(t, f.Checkout())
	assert.True(t, f.Committed(), "commit survives a cleared checkout")
	assert.ErrorIs(t, f.ConfirmPayment(b.Now), purchase.ErrCheckoutNotStarted)

	done := b.SchedulingAppointment()
	before := done.Checkout()
	done.ClearCheckout(b.Now)
	assert.Equal(t, before, done.Checkout(), "only an awaiting flow drops its checkout")
}

func TestFlow_ConfirmPaid(t *testing.T) {
	b := builder.NewFlowBuilder()

	f := b.CheckoutStarted()
	f.ClearCheckout(b.Now)
	require.NoError(t, f.ConfirmPaid(b.Now))
	assert.Equal(t, purchase.StateSchedulingAppointment, f.State())

	uncommitted := b.AwaitingPayment()
	assert.ErrorIs(t, uncommitted.ConfirmPaid(b.Now), purchase.ErrNotCommitted)
	assert.Equal(t, purchase.StateAwaitingPayment, uncommitted.State())
}

func TestFlow_Invalidate(t *testing.T) {
	b := builder.NewFlowBuilder()
	f := b.AwaitingPayment()

	f.Invalidate(b.Now)
	assert.Equal(t, purchase.StateInvalid, f.State())
	assert.ErrorIs(t, f.SubmitInfo(b.Info, b.Now), purchase.ErrFlowInvalid)

	completed := b.SchedulingAppointment()
	slot, _ := purchase.NewAppointmentSlot("2025-06-10", "09:00", b.Now, time.UTC)
	require.NoError(t, completed.ScheduleAppointment(slot, b.Now))
	completed.Invalidate(b.Now)
	assert.Equal(t, purchase.StateCompleted, completed.State())
}

func TestFlow_SnapshotIsDetached(t *testing.T) {
	b := builder.NewFlowBuilder()
	f := b.CheckoutStarted()

	snap := f.Snapshot()
	snap.Checkout.URL = "https://tampered"
	snap.Service.Name = "tampered"

	again := f.Snapshot()
	if diff := cmp.Diff("https://checkout.example/cs_test_1", again.Checkout.URL); diff != "" {
		t.Errorf("checkout mismatch (-want +got):\n%s", diff)
	}
	assert.Equal(t, b.Offering.Name, again.Service.Name)
}
