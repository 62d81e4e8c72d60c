//go:build e2e

package purchase_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	nethttptest "net/http/httptest"
	"strings"
	"testing"
	"time"

	"commission-tracker/internal/handler/dto/request"
	"commission-tracker/internal/handler/dto/response"
	"commission-tracker/tests/common/authtest"
	"commission-tracker/tests/common/dbtest"
	"commission-tracker/tests/common/httptest"
	"commission-tracker/tests/e2e"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"github.com/stripe/stripe-go/v76/webhook"
)

const linkToken = "tok-e2e-0001"

type PurchaseE2ESuite struct {
	e2e.SharedSuite
}

func TestPurchaseE2E(t *testing.T) {
	suite.Run(t, new(PurchaseE2ESuite))
}

type fixture struct {
	vendorID    uuid.UUID
	vendorToken string
	serialID    uuid.UUID
}

func (s *PurchaseE2ESuite) seed() fixture {
	vendorID, token := authtest.CreateVendorAndLogin(s.T(), s.DB, s.Router, "vendor@example.com", "0.15")
	serialID := dbtest.CreateTestSerial(s.T(), s.DB, vendorID, "SN-0001", linkToken)
	return fixture{vendorID: vendorID, vendorToken: token, serialID: serialID}
}

func (s *PurchaseE2ESuite) flowPath(id uuid.UUID, suffix string) string {
	return "/api/purchase/flows/" + id.String() + suffix
}

// advanceToPayment walks a new flow through service selection and client info.
func (s *PurchaseE2ESuite) advanceToPayment() uuid.UUID {
	w := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, "/api/purchase/flows",
		request.StartFlowRequest{LinkToken: linkToken}, "")
	var flow response.FlowResponse
	httptest.AssertSuccessResponse(s.T(), w, http.StatusCreated, &flow)
	require.Equal(s.T(), "selecting_service", flow.State)

	w = httptest.PerformRequest(s.T(), s.Router, http.MethodPost, s.flowPath(flow.ID, "/service"),
		request.SelectServiceRequest{ServiceID: "pc-setup"}, "")
	httptest.AssertSuccessResponse(s.T(), w, http.StatusOK, &flow)
	require.Equal(s.T(), "entering_info", flow.State)

	w = httptest.PerformRequest(s.T(), s.Router, http.MethodPost, s.flowPath(flow.ID, "/info"),
		request.SubmitInfoRequest{Name: "Giulia Bianchi", Email: "giulia@example.com", Phone: "+39 333 7654321"}, "")
	httptest.AssertSuccessResponse(s.T(), w, http.StatusOK, &flow)
	require.Equal(s.T(), "awaiting_payment", flow.State)

	return flow.ID
}

func (s *PurchaseE2ESuite) initiatePayment(flowID uuid.UUID) response.PaymentRedirectResponse {
	w := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, s.flowPath(flowID, "/payment"), nil, "")
	var redirect response.PaymentRedirectResponse
	httptest.AssertSuccessResponse(s.T(), w, http.StatusOK, &redirect)
	return redirect
}

func (s *PurchaseE2ESuite) sendCheckoutEvent(eventType, sessionID string, purchaseID uuid.UUID, paymentStatus string) *nethttptest.ResponseRecorder {
	payload, err := json.Marshal(map[string]any{
		"id":          "evt_" + strings.ReplaceAll(uuid.NewString(), "-", ""),
		"object":      "event",
		"type":        eventType,
		"api_version": "2023-10-16",
		"data": map[string]any{
			"object": map[string]any{
				"id":                  sessionID,
				"object":              "checkout.session",
				"client_reference_id": purchaseID.String(),
				"payment_status":      paymentStatus,
				"metadata":            map[string]string{"purchase_id": purchaseID.String()},
			},
		},
	})
	require.NoError(s.T(), err)

	signed := webhook.GenerateTestSignedPayload(&webhook.UnsignedPayload{
		Payload: payload,
		Secret:  s.Config.Payment.StripeWebhookSecret,
	})

	req := nethttptest.NewRequest(http.MethodPost, "/api/payments/webhook", bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Stripe-Signature", signed.Header)
	w := nethttptest.NewRecorder()
	s.Router.ServeHTTP(w, req)
	return w
}

func (s *PurchaseE2ESuite) paymentStatus(purchaseID uuid.UUID) string {
	var status string
	err := s.DB.QueryRow(s.T().Context(), "SELECT payment_status FROM purchases WHERE id = $1", purchaseID).Scan(&status)
	require.NoError(s.T(), err)
	return status
}

func bookingDate() string {
	rome, err := time.LoadLocation("Europe/Rome")
	if err != nil {
		panic(err)
	}
	return time.Now().In(rome).AddDate(0, 0, 7).Format("2006-01-02")
}

func (s *PurchaseE2ESuite) TestFullPurchase() {
	s.Run("paid purchase is credited to the vendor", func() {
		fix := s.seed()
		flowID := s.advanceToPayment()

		redirect := s.initiatePayment(flowID)
		assert.Equal(s.T(), "https://checkout.example/"+redirect.SessionID, redirect.CheckoutURL)
		assert.NotEqual(s.T(), uuid.Nil, redirect.PurchaseID)

		// Committed before checkout: the link is spent and the purchase is pending.
		assert.True(s.T(), dbtest.SerialIsUsed(s.T(), s.DB, fix.serialID))
		assert.Equal(s.T(), 1, dbtest.CountClientsBySerial(s.T(), s.DB, fix.serialID))
		assert.Equal(s.T(), "pending", s.paymentStatus(redirect.PurchaseID))

		require.Equal(s.T(), 1, s.Checkout.Count())
		params := s.Checkout.Requests[0]
		assert.Equal(s.T(), int64(8999), *params.LineItems[0].PriceData.UnitAmount)
		assert.Equal(s.T(), redirect.PurchaseID.String(), *params.ClientReferenceID)
		assert.Equal(s.T(), "giulia@example.com", *params.CustomerEmail)
		assert.True(s.T(), strings.HasPrefix(*params.SuccessURL, "http://localhost:3000/purchase/"+linkToken+"/success"))

		w := httptest.PerformRequest(s.T(), s.Router, http.MethodGet, "/api/vendor/clients", nil, fix.vendorToken)
		var before response.VendorClientsResponse
		httptest.AssertSuccessResponse(s.T(), w, http.StatusOK, &before)
		assert.Empty(s.T(), before.Clients)

		w = s.sendCheckoutEvent("checkout.session.completed", redirect.SessionID, redirect.PurchaseID, "paid")
		require.Equal(s.T(), http.StatusOK, w.Code, w.Body.String())
		assert.Equal(s.T(), "completed", s.paymentStatus(redirect.PurchaseID))

		// Redelivery is harmless.
		w = s.sendCheckoutEvent("checkout.session.completed", redirect.SessionID, redirect.PurchaseID, "paid")
		require.Equal(s.T(), http.StatusOK, w.Code, w.Body.String())

		w = httptest.PerformRequest(s.T(), s.Router, http.MethodPost, s.flowPath(flowID, "/payment/return"), nil, "")
		var flow response.FlowResponse
		httptest.AssertSuccessResponse(s.T(), w, http.StatusOK, &flow)
		assert.Equal(s.T(), "scheduling_appointment", flow.State)

		date := bookingDate()
		w = httptest.PerformRequest(s.T(), s.Router, http.MethodPost, s.flowPath(flowID, "/appointment"),
			request.SubmitAppointmentRequest{Date: date, Time: "10:00"}, "")
		httptest.AssertSuccessResponse(s.T(), w, http.StatusOK, &flow)
		assert.Equal(s.T(), "completed", flow.State)
		assert.Equal(s.T(), date+"T10:00:00", flow.Appointment)

		w = httptest.PerformRequest(s.T(), s.Router, http.MethodGet, "/api/vendor/clients", nil, fix.vendorToken)
		var after response.VendorClientsResponse
		httptest.AssertSuccessResponse(s.T(), w, http.StatusOK, &after)
		require.Len(s.T(), after.Clients, 1)
		client := after.Clients[0]
		assert.Equal(s.T(), "Giulia Bianchi", client.Name)
		require.Len(s.T(), client.Purchases, 1)
		assert.True(s.T(), client.Purchases[0].ServicePrice.Equal(decimal.RequireFromString("89.99")))
		assert.True(s.T(), client.Purchases[0].CommissionAmount.Equal(decimal.RequireFromString("13.50")),
			"commission %s", client.Purchases[0].CommissionAmount)
		assert.Equal(s.T(), "scheduled", client.Purchases[0].AppointmentStatus)
		assert.True(s.T(), after.TotalCommission.Equal(decimal.RequireFromString("13.50")))

		techToken := authtest.CreateAndLogin(s.T(), s.DB, s.Router, "tech@example.com", "technician")
		w = httptest.PerformRequest(s.T(), s.Router, http.MethodGet, "/api/technician/clients?appointment_status=scheduled", nil, techToken)
		var scheduled []response.ClientResponse
		httptest.AssertSuccessResponse(s.T(), w, http.StatusOK, &scheduled)
		require.Len(s.T(), scheduled, 1)
		assert.Equal(s.T(), "Vendor vendor@example.com", scheduled[0].VendorName)
	})
}

func (s *PurchaseE2ESuite) TestInitiatePaymentTwiceCommitsOnce() {
	fix := s.seed()
	flowID := s.advanceToPayment()

	first := s.initiatePayment(flowID)
	second := s.initiatePayment(flowID)

	assert.Equal(s.T(), first, second)
	assert.Equal(s.T(), 1, s.Checkout.Count())
	assert.Equal(s.T(), 1, dbtest.CountClientsBySerial(s.T(), s.DB, fix.serialID))
}

func (s *PurchaseE2ESuite) TestConsumedLinkIsRejected() {
	s.seed()
	flowID := s.advanceToPayment()
	s.initiatePayment(flowID)

	w := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, "/api/purchase/flows",
		request.StartFlowRequest{LinkToken: linkToken}, "")
	httptest.AssertErrorResponse(s.T(), w, http.StatusGone, "invalid or already used")

	w = httptest.PerformRequest(s.T(), s.Router, http.MethodPost, "/api/purchase/flows",
		request.StartFlowRequest{LinkToken: "tok-unknown"}, "")
	assert.Equal(s.T(), http.StatusGone, w.Code)
}

func (s *PurchaseE2ESuite) TestGatewayFailureRetriesOnlyTheGateway() {
	fix := s.seed()
	flowID := s.advanceToPayment()

	s.Checkout.Fail = fmt.Errorf("stripe unavailable")
	w := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, s.flowPath(flowID, "/payment"), nil, "")
	httptest.AssertErrorResponse(s.T(), w, http.StatusBadGateway, "")
	assert.Equal(s.T(), 1, dbtest.CountClientsBySerial(s.T(), s.DB, fix.serialID))

	s.Checkout.Fail = nil
	redirect := s.initiatePayment(flowID)
	assert.NotEmpty(s.T(), redirect.SessionID)
	assert.Equal(s.T(), 1, dbtest.CountClientsBySerial(s.T(), s.DB, fix.serialID))
	assert.Equal(s.T(), 2, s.Checkout.Count())
}

func (s *PurchaseE2ESuite) TestFailedPaymentSendsClientBackToCheckout() {
	s.seed()
	flowID := s.advanceToPayment()
	redirect := s.initiatePayment(flowID)

	w := s.sendCheckoutEvent("checkout.session.expired", redirect.SessionID, redirect.PurchaseID, "unpaid")
	require.Equal(s.T(), http.StatusOK, w.Code, w.Body.String())
	assert.Equal(s.T(), "failed", s.paymentStatus(redirect.PurchaseID))

	w = httptest.PerformRequest(s.T(), s.Router, http.MethodPost, s.flowPath(flowID, "/payment/return"), nil, "")
	httptest.AssertErrorResponse(s.T(), w, http.StatusBadGateway, "Payment was not completed")

	w = httptest.PerformRequest(s.T(), s.Router, http.MethodGet, s.flowPath(flowID, ""), nil, "")
	var flow response.FlowResponse
	httptest.AssertSuccessResponse(s.T(), w, http.StatusOK, &flow)
	assert.Equal(s.T(), "awaiting_payment", flow.State)
	assert.Empty(s.T(), flow.CheckoutURL)
}

func (s *PurchaseE2ESuite) TestPaidPurchaseIsNeverChargedAgain() {
	s.seed()
	flowID := s.advanceToPayment()
	redirect := s.initiatePayment(flowID)

	w := s.sendCheckoutEvent("checkout.session.completed", redirect.SessionID, redirect.PurchaseID, "paid")
	require.Equal(s.T(), http.StatusOK, w.Code, w.Body.String())

	w = httptest.PerformRequest(s.T(), s.Router, http.MethodPost, s.flowPath(flowID, "/payment/cancel"), nil, "")
	httptest.AssertErrorResponse(s.T(), w, http.StatusConflict, "already paid")

	again := s.initiatePayment(flowID)
	assert.True(s.T(), again.Paid)
	assert.Empty(s.T(), again.CheckoutURL)
	assert.Equal(s.T(), redirect.PurchaseID, again.PurchaseID)
	assert.Equal(s.T(), 1, s.Checkout.Count())

	techToken := authtest.CreateAndLogin(s.T(), s.DB, s.Router, "tech@example.com", "technician")
	w = httptest.PerformRequest(s.T(), s.Router, http.MethodGet, "/api/technician/vendors", nil, techToken)
	var vendors []response.VendorSummaryResponse
	httptest.AssertSuccessResponse(s.T(), w, http.StatusOK, &vendors)
	require.Len(s.T(), vendors, 1)
	assert.Equal(s.T(), int64(1), vendors[0].CompletedSales)
	assert.True(s.T(), vendors[0].TotalSales.Equal(decimal.RequireFromString("89.99")), "total sales %s", vendors[0].TotalSales)
	assert.True(s.T(), vendors[0].TotalCommission.Equal(decimal.RequireFromString("13.50")))
}

func (s *PurchaseE2ESuite) TestWebhookRejectsUnsignedEvents() {
	req := nethttptest.NewRequest(http.MethodPost, "/api/payments/webhook", strings.NewReader(`{"id":"evt_1"}`))
	req.Header.Set("Stripe-Signature", "t=1,v1=deadbeef")
	w := nethttptest.NewRecorder()
	s.Router.ServeHTTP(w, req)

	httptest.AssertErrorResponse(s.T(), w, http.StatusBadRequest, "Invalid payment event")
}

func (s *PurchaseE2ESuite) TestVendorSerials() {
	fix := s.seed()

	w := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, "/api/vendor/serials",
		request.CreateSerialRequest{SerialNumber: "SN-0002"}, fix.vendorToken)
	var created response.SerialResponse
	httptest.AssertSuccessResponse(s.T(), w, http.StatusCreated, &created)
	assert.True(s.T(), strings.HasPrefix(created.PurchaseURL, "http://localhost:3000/purchase/"), created.PurchaseURL)
	assert.True(s.T(), strings.HasPrefix(created.QRCode, "data:image/png;base64,"))
	assert.False(s.T(), created.IsUsed)

	w = httptest.PerformRequest(s.T(), s.Router, http.MethodPost, "/api/vendor/serials",
		request.CreateSerialRequest{SerialNumber: "SN-0002"}, fix.vendorToken)
	httptest.AssertErrorResponse(s.T(), w, http.StatusConflict, "Serial number already registered")

	w = httptest.PerformRequest(s.T(), s.Router, http.MethodGet, "/api/vendor/serials", nil, fix.vendorToken)
	var serials []response.SerialResponse
	httptest.AssertSuccessResponse(s.T(), w, http.StatusOK, &serials)
	assert.Len(s.T(), serials, 2)

	// The generated link opens a flow.
	token := created.PurchaseURL[strings.LastIndex(created.PurchaseURL, "/")+1:]
	w = httptest.PerformRequest(s.T(), s.Router, http.MethodPost, "/api/purchase/flows",
		request.StartFlowRequest{LinkToken: token}, "")
	assert.Equal(s.T(), http.StatusCreated, w.Code, w.Body.String())
}
