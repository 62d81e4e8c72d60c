//go:build unit

package commands_test

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"testing"
	"time"

	"commission-tracker/internal/domain/purchase"
	"commission-tracker/internal/domain/vendor"
	"commission-tracker/internal/infra/catalog"
	"commission-tracker/internal/infra/flowstore"
	"commission-tracker/internal/pkg/clock"
	"commission-tracker/internal/usecase/commands"
	"commission-tracker/internal/usecase/queries"
	"commission-tracker/internal/usecase/shared"
	"commission-tracker/tests/common/fake"
	commandsmock "commission-tracker/tests/mock/commands"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type PurchaseFlowTestSuite struct {
	suite.Suite
	ctx      context.Context
	ctrl     *gomock.Controller
	uow      *fake.UnitOfWork
	store    *flowstore.MemoryStore
	clk      *clock.MockClock
	gateway  *commandsmock.MockPaymentGateway
	cmds     commands.PurchaseFlowCommands
	payments commands.PaymentCommands
	flows    queries.FlowQueries
	vendor   *vendor.Vendor
	link     purchase.Link
}

func TestPurchaseFlowSuite(t *testing.T) {
	suite.Run(t, new(PurchaseFlowTestSuite))
}

func (s *PurchaseFlowTestSuite) SetupTest() {
	s.ctx = context.Background()
	s.ctrl = gomock.NewController(s.T())
	s.clk = clock.NewMockClock(time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC))
	s.uow = fake.NewUnitOfWork()
	s.store = flowstore.NewMemoryStore(time.Hour, s.clk)
	s.gateway = commandsmock.NewMockPaymentGateway(s.ctrl)

	cat, err := catalog.Load("")
	s.Require().NoError(err)

	userID := uuid.New()
	s.vendor, err = vendor.NewVendor(&userID, vendor.Profile{
		Name:              "Negozio Bianchi",
		Email:             "negozio@example.com",
		CommissionPercent: decimal.NewFromInt(15),
	}, nil, s.clk.Now())
	s.Require().NoError(err)
	s.uow.AddVendor(s.vendor)
	s.link = s.uow.AddSerial(s.vendor.ID(), "SN-0001", "abc123")

	s.cmds = commands.NewPurchaseFlowCommands(s.uow, s.store, cat, s.gateway, s.clk, commands.FlowSettings{
		PublicBaseURL: "https://shop.example/",
		Currency:      "eur",
		Location:      time.UTC,
	})
	s.payments = commands.NewPaymentCommands(s.uow)
	s.flows = queries.NewFlowQueries(s.store)
}

func (s *PurchaseFlowTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

// sessions makes the gateway hand out cs_1, cs_2, ... on each call.
func (s *PurchaseFlowTestSuite) sessions() *gomock.Call {
	n := 0
	return s.gateway.EXPECT().CreateCheckoutSession(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, req commands.CheckoutRequest) (*commands.CheckoutSession, error) {
			n++
			id := fmt.Sprintf("cs_%d", n)
			return &commands.CheckoutSession{ID: id, URL: "https://checkout.example/" + id}, nil
		})
}

func (s *PurchaseFlowTestSuite) toAwaitingPayment(token string) uuid.UUID {
	view, err := s.cmds.Start(s.ctx, token)
	s.Require().NoError(err)
	_, err = s.cmds.SelectService(s.ctx, view.ID, "pc-setup")
	s.Require().NoError(err)
	_, err = s.cmds.SubmitInfo(s.ctx, view.ID, "Mario Rossi", "mario@example.com", "+39 333 1234567")
	s.Require().NoError(err)
	return view.ID
}

func (s *PurchaseFlowTestSuite) TestHappyPath() {
	view, err := s.cmds.Start(s.ctx, "abc123")
	s.Require().NoError(err)
	s.Equal("selecting_service", view.State)

	view, err = s.cmds.SelectService(s.ctx, view.ID, "pc-setup")
	s.Require().NoError(err)
	s.Equal("entering_info", view.State)
	s.Require().NotNil(view.Service)
	s.Equal("Configurazione PC", view.Service.Name)
	s.True(view.Service.Price.Equal(decimal.RequireFromString("89.99")))

	view, err = s.cmds.SubmitInfo(s.ctx, view.ID, "Mario Rossi", "mario@example.com", "+39 333 1234567")
	s.Require().NoError(err)
	s.Equal("awaiting_payment", view.State)
	s.Empty(s.uow.Clients(), "nothing is persisted before payment is initiated")

	var sent commands.CheckoutRequest
	s.gateway.EXPECT().CreateCheckoutSession(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, req commands.CheckoutRequest) (*commands.CheckoutSession, error) {
			sent = req
			return &commands.CheckoutSession{ID: "cs_test_1", URL: "https://checkout.example/cs_test_1"}, nil
		}).Times(1)

	redirect, err := s.cmds.InitiatePayment(s.ctx, view.ID)
	s.Require().NoError(err)
	s.Equal("https://checkout.example/cs_test_1", redirect.CheckoutURL)

	s.Equal(int64(8999), sent.AmountMinorUnits)
	s.Equal("eur", sent.Currency)
	s.Equal("Configurazione PC", sent.ProductName)
	s.Equal("mario@example.com", sent.CustomerEmail)
	s.Equal(redirect.PurchaseID.String(), sent.Reference)
	s.True(strings.HasPrefix(sent.SuccessURL, "https://shop.example/purchase/abc123/success?flow="+view.ID.String()))

	clients := s.uow.Clients()
	s.Require().Len(clients, 1)
	s.Equal("Mario Rossi", clients[0].Info.Name())
	s.Equal(s.link.SerialID, clients[0].SerialID)

	p, ok := s.uow.Purchase(redirect.PurchaseID)
	s.Require().True(ok)
	s.Equal(purchase.PaymentPending, p.PaymentStatus)
	s.Equal("cs_test_1", p.SessionID)
	s.True(p.Commission.Equal(decimal.RequireFromString("13.50")), "got %s", p.Commission)

	serial, _ := s.uow.Serial(s.link.SerialID)
	s.True(serial.Used)

	s.Require().NoError(s.payments.HandleEvent(s.ctx, commands.PaymentEvent{
		ID: "evt_1", Kind: commands.PaymentSucceeded, SessionID: "cs_test_1", PurchaseID: redirect.PurchaseID,
	}))
	p, _ = s.uow.Purchase(redirect.PurchaseID)
	s.Equal(purchase.PaymentCompleted, p.PaymentStatus)

	view, err = s.cmds.ResumeAfterPayment(s.ctx, view.ID)
	s.Require().NoError(err)
	s.Equal("scheduling_appointment", view.State)

	view, err = s.cmds.SubmitAppointment(s.ctx, view.ID, "2025-06-10", "14:00")
	s.Require().NoError(err)
	s.Equal("completed", view.State)
	s.Equal("2025-06-10T14:00:00", view.Appointment)

	p, _ = s.uow.Purchase(redirect.PurchaseID)
	s.Require().NotNil(p.Appointment)
	s.True(p.Appointment.Equal(time.Date(2025, 6, 10, 14, 0, 0, 0, time.UTC)))

	// Same slot again is accepted without another write.
	writes := s.uow.Calls("Purchases.SetAppointment")
	view, err = s.cmds.SubmitAppointment(s.ctx, view.ID, "2025-06-10", "14:00")
	s.Require().NoError(err)
	s.Equal("completed", view.State)
	s.Equal(writes, s.uow.Calls("Purchases.SetAppointment"))
}

func (s *PurchaseFlowTestSuite) TestInitiatePayment_DoubleSubmitCreatesOneRecord() {
	flowID := s.toAwaitingPayment("abc123")
	s.sessions().Times(1)

	first, err := s.cmds.InitiatePayment(s.ctx, flowID)
	s.Require().NoError(err)
	second, err := s.cmds.InitiatePayment(s.ctx, flowID)
	s.Require().NoError(err)

	s.Equal(first, second)
	s.Len(s.uow.Clients(), 1)
	s.Len(s.uow.Purchases(), 1)
}

func (s *PurchaseFlowTestSuite) TestInitiatePayment_ConcurrentSubmitsCommitOnce() {
	flowID := s.toAwaitingPayment("abc123")
	s.sessions().Times(1)

	var wg sync.WaitGroup
	results := make([]error, 8)
	for i := range results {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, results[i] = s.cmds.InitiatePayment(s.ctx, flowID)
		}(i)
	}
	wg.Wait()

	succeeded := 0
	for _, err := range results {
		if err == nil {
			succeeded++
			continue
		}
		s.ErrorIs(err, shared.ErrFlowBusy)
	}
	s.GreaterOrEqual(succeeded, 1)
	s.Len(s.uow.Clients(), 1)
	s.Equal(1, s.uow.Calls("Purchases.Create"))
}

func (s *PurchaseFlowTestSuite) TestInitiatePayment_GatewayFailureRetriesOnlyGateway() {
	flowID := s.toAwaitingPayment("abc123")

	gomock.InOrder(
		s.gateway.EXPECT().CreateCheckoutSession(gomock.Any(), gomock.Any()).
			Return(nil, errors.New("stripe: connection reset")),
		s.gateway.EXPECT().CreateCheckoutSession(gomock.Any(), gomock.Any()).
			Return(&commands.CheckoutSession{ID: "cs_retry", URL: "https://checkout.example/cs_retry"}, nil),
	)

	_, err := s.cmds.InitiatePayment(s.ctx, flowID)
	s.Require().ErrorIs(err, commands.ErrGatewayFailure)

	view, err := s.flows.Get(s.ctx, flowID)
	s.Require().NoError(err)
	s.Equal("awaiting_payment", view.State)
	s.Empty(view.CheckoutURL)
	s.Len(s.uow.Clients(), 1)

	redirect, err := s.cmds.InitiatePayment(s.ctx, flowID)
	s.Require().NoError(err)
	s.Equal("cs_retry", redirect.SessionID)
	s.Len(s.uow.Clients(), 1)
	s.Equal(1, s.uow.Calls("Purchases.Create"))
}

func (s *PurchaseFlowTestSuite) TestInitiatePayment_StoreFailureRollsBack() {
	flowID := s.toAwaitingPayment("abc123")
	s.uow.FailOn("Purchases.Create", errors.New("connection refused"))

	_, err := s.cmds.InitiatePayment(s.ctx, flowID)
	s.Require().ErrorIs(err, commands.ErrStoreFailure)

	serial, _ := s.uow.Serial(s.link.SerialID)
	s.False(serial.Used)
	s.Empty(s.uow.Clients())

	s.uow.FailOn("Purchases.Create", nil)
	s.sessions().Times(1)

	_, err = s.cmds.InitiatePayment(s.ctx, flowID)
	s.Require().NoError(err)
	s.Len(s.uow.Clients(), 1)
}

func (s *PurchaseFlowTestSuite) TestInitiatePayment_LinkConsumedByAnotherFlow() {
	winner := s.toAwaitingPayment("abc123")
	loser := s.toAwaitingPayment("abc123")
	s.sessions().Times(1)

	_, err := s.cmds.InitiatePayment(s.ctx, winner)
	s.Require().NoError(err)

	_, err = s.cmds.InitiatePayment(s.ctx, loser)
	s.Require().ErrorIs(err, commands.ErrConsumedRace)

	view, err := s.flows.Get(s.ctx, loser)
	s.Require().NoError(err)
	s.Equal("invalid", view.State)

	_, err = s.cmds.SubmitAppointment(s.ctx, loser, "2025-06-10", "14:00")
	s.ErrorIs(err, commands.ErrLinkInvalid)
	s.Len(s.uow.Clients(), 1)

	_, err = s.cmds.Start(s.ctx, "abc123")
	s.ErrorIs(err, commands.ErrLinkInvalid)
}

func (s *PurchaseFlowTestSuite) TestStart_InvalidLink() {
	for _, token := range []string{"", "   ", "does-not-exist"} {
		_, err := s.cmds.Start(s.ctx, token)
		s.ErrorIs(err, commands.ErrLinkInvalid, "token %q", token)
	}
	s.Equal(0, s.uow.Calls("Clients.Create"))
	s.Equal(0, s.uow.Calls("Serials.MarkConsumed"))
}

func (s *PurchaseFlowTestSuite) TestStart_StoreFailure() {
	s.uow.FailOn("Reads.UnconsumedLinkByToken", errors.New("timeout"))

	_, err := s.cmds.Start(s.ctx, "abc123")
	s.ErrorIs(err, commands.ErrStoreFailure)
}

func (s *PurchaseFlowTestSuite) TestSteps_OutOfOrder() {
	view, err := s.cmds.Start(s.ctx, "abc123")
	s.Require().NoError(err)

	_, err = s.cmds.InitiatePayment(s.ctx, view.ID)
	s.ErrorIs(err, purchase.ErrInvalidTransition)

	_, err = s.cmds.SubmitInfo(s.ctx, view.ID, "Mario Rossi", "mario@example.com", "+39 333 1234567")
	s.ErrorIs(err, purchase.ErrInvalidTransition)

	_, err = s.cmds.SubmitAppointment(s.ctx, view.ID, "2025-06-10", "14:00")
	s.ErrorIs(err, purchase.ErrInvalidTransition)

	_, err = s.cmds.ResumeAfterPayment(s.ctx, view.ID)
	s.ErrorIs(err, purchase.ErrInvalidTransition)

	got, err := s.flows.Get(s.ctx, view.ID)
	s.Require().NoError(err)
	s.Equal("selecting_service", got.State)
}

func (s *PurchaseFlowTestSuite) TestSelectService_UnknownService() {
	view, err := s.cmds.Start(s.ctx, "abc123")
	s.Require().NoError(err)

	_, err = s.cmds.SelectService(s.ctx, view.ID, "teleportation")
	s.Require().ErrorIs(err, purchase.ErrValidation)

	var verr *purchase.ValidationError
	s.Require().ErrorAs(err, &verr)
	s.Contains(verr.Fields, "service_id")
}

func (s *PurchaseFlowTestSuite) TestSubmitInfo_ValidationKeepsState() {
	view, err := s.cmds.Start(s.ctx, "abc123")
	s.Require().NoError(err)
	_, err = s.cmds.SelectService(s.ctx, view.ID, "antivirus")
	s.Require().NoError(err)

	_, err = s.cmds.SubmitInfo(s.ctx, view.ID, "", "not-an-email", "")
	var verr *purchase.ValidationError
	s.Require().ErrorAs(err, &verr)
	s.Equal(map[string]string{"name": "required", "email": "invalid format", "phone": "required"}, verr.Fields)

	got, err := s.flows.Get(s.ctx, view.ID)
	s.Require().NoError(err)
	s.Equal("entering_info", got.State)
}

func (s *PurchaseFlowTestSuite) TestSubmitAppointment_Validation() {
	flowID := s.toAwaitingPayment("abc123")
	s.sessions().Times(1)
	redirect, err := s.cmds.InitiatePayment(s.ctx, flowID)
	s.Require().NoError(err)
	s.Require().NoError(s.payments.HandleEvent(s.ctx, commands.PaymentEvent{
		Kind: commands.PaymentSucceeded, SessionID: redirect.SessionID, PurchaseID: redirect.PurchaseID,
	}))
	_, err = s.cmds.ResumeAfterPayment(s.ctx, flowID)
	s.Require().NoError(err)

	cases := []struct {
		name  string
		date  string
		time  string
		field string
	}{
		{name: "past date", date: "2025-05-31", time: "14:00", field: "date"},
		{name: "bad date format", date: "10/06/2025", time: "14:00", field: "date"},
		{name: "time not offered", date: "2025-06-10", time: "13:00", field: "time"},
		{name: "missing time", date: "2025-06-10", time: "", field: "time"},
	}
	for _, tc := range cases {
		s.Run(tc.name, func() {
			_, err := s.cmds.SubmitAppointment(s.ctx, flowID, tc.date, tc.time)
			var verr *purchase.ValidationError
			s.Require().ErrorAs(err, &verr)
			s.Contains(verr.Fields, tc.field)
		})
	}

	view, err := s.cmds.SubmitAppointment(s.ctx, flowID, "2025-06-01", "17:00")
	s.Require().NoError(err, "today is bookable")
	s.Equal("completed", view.State)
}

func (s *PurchaseFlowTestSuite) TestResumeAfterPayment_FailedPaymentClearsCheckout() {
	flowID := s.toAwaitingPayment("abc123")
	s.sessions().Times(2)

	redirect, err := s.cmds.InitiatePayment(s.ctx, flowID)
	s.Require().NoError(err)
	s.Require().NoError(s.payments.HandleEvent(s.ctx, commands.PaymentEvent{
		Kind: commands.PaymentFailed, SessionID: redirect.SessionID, PurchaseID: redirect.PurchaseID,
	}))

	_, err = s.cmds.ResumeAfterPayment(s.ctx, flowID)
	s.Require().ErrorIs(err, commands.ErrPaymentFailed)

	view, err := s.flows.Get(s.ctx, flowID)
	s.Require().NoError(err)
	s.Equal("awaiting_payment", view.State)
	s.Empty(view.CheckoutURL)

	retry, err := s.cmds.InitiatePayment(s.ctx, flowID)
	s.Require().NoError(err)
	s.Equal("cs_2", retry.SessionID)
	s.Equal(redirect.PurchaseID, retry.PurchaseID)

	p, _ := s.uow.Purchase(retry.PurchaseID)
	s.Equal(purchase.PaymentPending, p.PaymentStatus)
	s.Equal("cs_2", p.SessionID)
}

func (s *PurchaseFlowTestSuite) TestResumeAfterPayment_PendingAdvances() {
	flowID := s.toAwaitingPayment("abc123")
	s.sessions().Times(1)
	_, err := s.cmds.InitiatePayment(s.ctx, flowID)
	s.Require().NoError(err)

	view, err := s.cmds.ResumeAfterPayment(s.ctx, flowID)
	s.Require().NoError(err)
	s.Equal("scheduling_appointment", view.State)

	view, err = s.cmds.ResumeAfterPayment(s.ctx, flowID)
	s.Require().NoError(err)
	s.Equal("scheduling_appointment", view.State)
}

func (s *PurchaseFlowTestSuite) TestCancelPayment_ReusesCommittedRecords() {
	flowID := s.toAwaitingPayment("abc123")
	s.sessions().Times(2)

	first, err := s.cmds.InitiatePayment(s.ctx, flowID)
	s.Require().NoError(err)

	view, err := s.cmds.CancelPayment(s.ctx, flowID)
	s.Require().NoError(err)
	s.Equal("awaiting_payment", view.State)
	s.Empty(view.CheckoutURL)

	second, err := s.cmds.InitiatePayment(s.ctx, flowID)
	s.Require().NoError(err)
	s.NotEqual(first.SessionID, second.SessionID)
	s.Equal(first.PurchaseID, second.PurchaseID)
	s.Equal(1, s.uow.Calls("Clients.Create"))
}

func (s *PurchaseFlowTestSuite) TestPaidPurchase_CancelRefusedAndInitiateConfirms() {
	flowID := s.toAwaitingPayment("abc123")
	s.sessions().Times(1)

	redirect, err := s.cmds.InitiatePayment(s.ctx, flowID)
	s.Require().NoError(err)
	s.Require().NoError(s.payments.HandleEvent(s.ctx, commands.PaymentEvent{
		Kind: commands.PaymentSucceeded, SessionID: redirect.SessionID, PurchaseID: redirect.PurchaseID,
	}))

	_, err = s.cmds.CancelPayment(s.ctx, flowID)
	s.Require().ErrorIs(err, commands.ErrAlreadyPaid)

	view, err := s.flows.Get(s.ctx, flowID)
	s.Require().NoError(err)
	s.Equal("awaiting_payment", view.State)
	s.Equal(redirect.CheckoutURL, view.CheckoutURL, "a refused cancel keeps the checkout")

	again, err := s.cmds.InitiatePayment(s.ctx, flowID)
	s.Require().NoError(err)
	s.True(again.Paid)
	s.Empty(again.CheckoutURL)
	s.Equal(redirect.PurchaseID, again.PurchaseID)
	s.Equal(1, s.uow.Calls("Purchases.SetCheckoutSession"))

	view, err = s.flows.Get(s.ctx, flowID)
	s.Require().NoError(err)
	s.Equal("scheduling_appointment", view.State)

	p, _ := s.uow.Purchase(redirect.PurchaseID)
	s.Equal(purchase.PaymentCompleted, p.PaymentStatus)
}

func (s *PurchaseFlowTestSuite) TestResumeAfterPayment_PaidAfterCancelAdvances() {
	flowID := s.toAwaitingPayment("abc123")
	s.sessions().Times(1)

	redirect, err := s.cmds.InitiatePayment(s.ctx, flowID)
	s.Require().NoError(err)

	// The client cancels while the gateway is still settling the session.
	view, err := s.cmds.CancelPayment(s.ctx, flowID)
	s.Require().NoError(err)
	s.Empty(view.CheckoutURL)

	s.Require().NoError(s.payments.HandleEvent(s.ctx, commands.PaymentEvent{
		Kind: commands.PaymentSucceeded, SessionID: redirect.SessionID, PurchaseID: redirect.PurchaseID,
	}))

	view, err = s.cmds.ResumeAfterPayment(s.ctx, flowID)
	s.Require().NoError(err)
	s.Equal("scheduling_appointment", view.State)
}

func (s *PurchaseFlowTestSuite) TestResumeAfterPayment_PendingWithoutCheckout() {
	flowID := s.toAwaitingPayment("abc123")
	s.sessions().Times(1)

	_, err := s.cmds.InitiatePayment(s.ctx, flowID)
	s.Require().NoError(err)
	_, err = s.cmds.CancelPayment(s.ctx, flowID)
	s.Require().NoError(err)

	_, err = s.cmds.ResumeAfterPayment(s.ctx, flowID)
	s.ErrorIs(err, purchase.ErrInvalidTransition)
}

func (s *PurchaseFlowTestSuite) TestInitiatePayment_SessionWriteFailure() {
	flowID := s.toAwaitingPayment("abc123")
	s.sessions().Times(2)
	s.uow.FailOn("Purchases.SetCheckoutSession", errors.New("connection reset"))

	_, err := s.cmds.InitiatePayment(s.ctx, flowID)
	s.Require().ErrorIs(err, commands.ErrStoreFailure)

	view, err := s.flows.Get(s.ctx, flowID)
	s.Require().NoError(err)
	s.Equal("awaiting_payment", view.State)
	s.Empty(view.CheckoutURL, "an unrecorded session is never handed out")

	s.uow.FailOn("Purchases.SetCheckoutSession", nil)

	redirect, err := s.cmds.InitiatePayment(s.ctx, flowID)
	s.Require().NoError(err)
	s.Equal("cs_2", redirect.SessionID)
	s.Equal(1, s.uow.Calls("Purchases.Create"))

	p, _ := s.uow.Purchase(redirect.PurchaseID)
	s.Equal("cs_2", p.SessionID)
}

func (s *PurchaseFlowTestSuite) TestSubmitAppointment_OutOfOrderBeatsValidation() {
	flowID := s.toAwaitingPayment("abc123")

	_, err := s.cmds.SubmitAppointment(s.ctx, flowID, "not-a-date", "")
	s.Require().ErrorIs(err, purchase.ErrInvalidTransition)
	s.NotErrorIs(err, purchase.ErrValidation)
}

func (s *PurchaseFlowTestSuite) TestInitiatePayment_ChargesPriceCapturedAtSelection() {
	price, err := purchase.ParseMoney("89.99")
	s.Require().NoError(err)
	offering, err := purchase.NewServiceOffering("pc-setup", "Configurazione PC", "", price)
	s.Require().NoError(err)
	cat := &mutableCatalog{items: map[string]purchase.ServiceOffering{offering.ID: offering}}

	cmds := commands.NewPurchaseFlowCommands(s.uow, s.store, cat, s.gateway, s.clk, commands.FlowSettings{
		PublicBaseURL: "https://shop.example",
		Currency:      "eur",
	})

	view, err := cmds.Start(s.ctx, "abc123")
	s.Require().NoError(err)
	_, err = cmds.SelectService(s.ctx, view.ID, "pc-setup")
	s.Require().NoError(err)

	raised, err := purchase.ParseMoney("120.00")
	s.Require().NoError(err)
	cat.set(purchase.ServiceOffering{ID: offering.ID, Name: offering.Name, Price: raised})

	_, err = cmds.SubmitInfo(s.ctx, view.ID, "Mario Rossi", "mario@example.com", "+39 333 1234567")
	s.Require().NoError(err)

	var sent commands.CheckoutRequest
	s.gateway.EXPECT().CreateCheckoutSession(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, req commands.CheckoutRequest) (*commands.CheckoutSession, error) {
			sent = req
			return &commands.CheckoutSession{ID: "cs_1", URL: "https://checkout.example/cs_1"}, nil
		}).Times(1)

	redirect, err := cmds.InitiatePayment(s.ctx, view.ID)
	s.Require().NoError(err)
	s.Equal(int64(8999), sent.AmountMinorUnits)

	p, ok := s.uow.Purchase(redirect.PurchaseID)
	s.Require().True(ok)
	s.True(p.Service.Price.Equal(price), "stored %s", p.Service.Price)
}

func (s *PurchaseFlowTestSuite) TestStep_BusyFlow() {
	view, err := s.cmds.Start(s.ctx, "abc123")
	s.Require().NoError(err)

	_, release, err := s.store.Acquire(s.ctx, view.ID)
	s.Require().NoError(err)

	_, err = s.cmds.SelectService(s.ctx, view.ID, "pc-setup")
	s.ErrorIs(err, shared.ErrFlowBusy)

	got, err := s.flows.Get(s.ctx, view.ID)
	s.Require().NoError(err)
	s.True(got.InProgress)

	release()
	_, err = s.cmds.SelectService(s.ctx, view.ID, "pc-setup")
	s.NoError(err)
}

func (s *PurchaseFlowTestSuite) TestStep_UnknownFlow() {
	_, err := s.cmds.SelectService(s.ctx, uuid.New(), "pc-setup")
	s.ErrorIs(err, shared.ErrFlowNotFound)
}

// mutableCatalog lets a test change an offering between steps.
type mutableCatalog struct {
	mu    sync.Mutex
	items map[string]purchase.ServiceOffering
}

func (c *mutableCatalog) Find(id string) (purchase.ServiceOffering, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	o, ok := c.items[id]
	return o, ok
}

func (c *mutableCatalog) Offerings() []purchase.ServiceOffering {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]purchase.ServiceOffering, 0, len(c.items))
	for _, o := range c.items {
		out = append(out, o)
	}
	return out
}

func (c *mutableCatalog) set(o purchase.ServiceOffering) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.items[o.ID] = o
}
