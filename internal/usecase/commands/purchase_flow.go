package commands

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/url"
	"strings"
	"time"

	"commission-tracker/internal/domain/purchase"
	"commission-tracker/internal/infra"
	"commission-tracker/internal/pkg/clock"
	"commission-tracker/internal/pkg/errs"
	"commission-tracker/internal/pkg/metrics"
	"commission-tracker/internal/usecase/queries"
	"commission-tracker/internal/usecase/shared"

	"github.com/google/uuid"
)

var (
	ErrLinkInvalid    = errs.New("purchase link is invalid or already used")
	ErrStoreFailure   = errs.New("store write failed")
	ErrGatewayFailure = errs.New("payment gateway request failed")
	ErrPaymentFailed  = errs.New("payment was not completed")
	ErrConsumedRace   = errs.New("purchase link was consumed concurrently")
	ErrAlreadyPaid    = errs.New("purchase is already paid")
)

// FlowSettings holds the deployment values the purchase flow needs.
type FlowSettings struct {
	PublicBaseURL string
	Currency      string
	Location      *time.Location
}

// PaymentRedirect points the client at the checkout page. Paid is set instead
// when the purchase was already settled and no checkout is needed.
type PaymentRedirect struct {
	CheckoutURL string
	SessionID   string
	PurchaseID  uuid.UUID
	Paid        bool
}

type PurchaseFlowCommands interface {
	Start(ctx context.Context, linkToken string) (*queries.FlowView, error)
	SelectService(ctx context.Context, flowID uuid.UUID, serviceID string) (*queries.FlowView, error)
	SubmitInfo(ctx context.Context, flowID uuid.UUID, name, email, phone string) (*queries.FlowView, error)
	InitiatePayment(ctx context.Context, flowID uuid.UUID) (*PaymentRedirect, error)
	ResumeAfterPayment(ctx context.Context, flowID uuid.UUID) (*queries.FlowView, error)
	CancelPayment(ctx context.Context, flowID uuid.UUID) (*queries.FlowView, error)
	SubmitAppointment(ctx context.Context, flowID uuid.UUID, date, timeOfDay string) (*queries.FlowView, error)
}

type purchaseFlowCommandsImpl struct {
	uow      shared.UnitOfWork
	store    shared.FlowStore
	catalog  shared.CatalogSource
	gateway  PaymentGateway
	clock    clock.Clock
	settings FlowSettings
}

func NewPurchaseFlowCommands(
	uow shared.UnitOfWork,
	store shared.FlowStore,
	catalog shared.CatalogSource,
	gateway PaymentGateway,
	clock clock.Clock,
	settings FlowSettings,
) PurchaseFlowCommands {
	if settings.Location == nil {
		settings.Location = time.UTC
	}
	settings.PublicBaseURL = strings.TrimRight(settings.PublicBaseURL, "/")
	return &purchaseFlowCommandsImpl{
		uow:      uow,
		store:    store,
		catalog:  catalog,
		gateway:  gateway,
		clock:    clock,
		settings: settings,
	}
}

func (c *purchaseFlowCommandsImpl) Start(ctx context.Context, linkToken string) (*queries.FlowView, error) {
	linkToken = strings.TrimSpace(linkToken)
	if linkToken == "" {
		return nil, ErrLinkInvalid
	}

	link, err := c.uow.CommandReads().UnconsumedLinkByToken(ctx, linkToken)
	if err != nil {
		if infra.IsNotFound(err) {
			metrics.RecordFlowError("start", "link_invalid")
			return nil, ErrLinkInvalid
		}
		metrics.RecordFlowError("start", "store_failure")
		return nil, errs.Mark(err, ErrStoreFailure)
	}

	f := purchase.NewFlow(*link, c.clock.Now())
	if err := c.store.Put(ctx, f); err != nil {
		return nil, err
	}
	metrics.RecordFlowTransition("none", f.State().String())

	slog.Info("purchase flow started", "flow_id", f.ID(), "serial_id", link.SerialID, "vendor_id", link.VendorID)

	view := queries.NewFlowView(f.Snapshot(), false)
	return &view, nil
}

func (c *purchaseFlowCommandsImpl) SelectService(ctx context.Context, flowID uuid.UUID, serviceID string) (*queries.FlowView, error) {
	return c.step(ctx, flowID, "select_service", func(f *purchase.Flow, now time.Time) error {
		offering, ok := c.catalog.Find(strings.TrimSpace(serviceID))
		if !ok {
			return purchase.FieldError("service_id", "unknown service")
		}
		return f.SelectService(offering, now)
	})
}

func (c *purchaseFlowCommandsImpl) SubmitInfo(ctx context.Context, flowID uuid.UUID, name, email, phone string) (*queries.FlowView, error) {
	return c.step(ctx, flowID, "submit_info", func(f *purchase.Flow, now time.Time) error {
		info, err := purchase.NewClientInfo(name, email, phone)
		if err != nil {
			return err
		}
		return f.SubmitInfo(info, now)
	})
}

// InitiatePayment commits the client and purchase once per flow, then asks the
// gateway for a checkout session. A flow that already holds a session returns it
// unchanged; a flow that committed but failed at the gateway retries only the gateway.
// A purchase the gateway already settled is confirmed instead of charged again.
func (c *purchaseFlowCommandsImpl) InitiatePayment(ctx context.Context, flowID uuid.UUID) (*PaymentRedirect, error) {
	var redirect *PaymentRedirect
	_, err := c.step(ctx, flowID, "initiate_payment", func(f *purchase.Flow, now time.Time) error {
		if f.State() != purchase.StateAwaitingPayment {
			return purchase.ErrInvalidTransition
		}

		if f.Committed() {
			status, err := c.paymentStatus(ctx, f)
			if err != nil {
				return err
			}
			switch status {
			case purchase.PaymentCompleted:
				redirect = &PaymentRedirect{PurchaseID: f.PurchaseID(), Paid: true}
				return f.ConfirmPaid(now)
			case purchase.PaymentFailed:
				f.ClearCheckout(now)
			}
		}

		if co := f.Checkout(); co != nil {
			redirect = &PaymentRedirect{CheckoutURL: co.URL, SessionID: co.SessionID, PurchaseID: f.PurchaseID()}
			return nil
		}

		if !f.Committed() {
			if err := c.commit(ctx, f, now); err != nil {
				return err
			}
		}

		session, err := c.gateway.CreateCheckoutSession(ctx, c.checkoutRequest(f))
		if err != nil {
			slog.Warn("checkout session request failed", "flow_id", f.ID(), "purchase_id", f.PurchaseID(), "error", err.Error())
			return errs.Mark(err, ErrGatewayFailure)
		}

		// The session id must be stored before the flow hands it out, so a
		// failure event for it can be matched to the purchase.
		purchaseID := f.PurchaseID()
		if err := c.uow.WithDB(ctx, func(ctx context.Context, tx shared.Tx) error {
			return tx.Purchases().SetCheckoutSession(ctx, tx.DB(), purchaseID, session.ID)
		}); err != nil {
			if infra.IsNotFound(err) {
				// Settled between the status read and the write.
				if status, readErr := c.paymentStatus(ctx, f); readErr == nil && status == purchase.PaymentCompleted {
					redirect = &PaymentRedirect{PurchaseID: purchaseID, Paid: true}
					return f.ConfirmPaid(now)
				}
			}
			slog.Warn("failed to record checkout session", "purchase_id", purchaseID, "session_id", session.ID, "error", err.Error())
			return errs.Mark(err, ErrStoreFailure)
		}

		if err := f.RecordCheckout(purchase.Checkout{SessionID: session.ID, URL: session.URL}, now); err != nil {
			return err
		}

		redirect = &PaymentRedirect{CheckoutURL: session.URL, SessionID: session.ID, PurchaseID: purchaseID}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return redirect, nil
}

func (c *purchaseFlowCommandsImpl) paymentStatus(ctx context.Context, f *purchase.Flow) (purchase.PaymentStatus, error) {
	p, err := c.uow.CommandReads().PurchaseByID(ctx, f.PurchaseID())
	if err != nil {
		return "", errs.Mark(err, ErrStoreFailure)
	}
	return p.PaymentStatus, nil
}

// commit consumes the link and writes the client and pending purchase in one transaction.
func (c *purchaseFlowCommandsImpl) commit(ctx context.Context, f *purchase.Flow, now time.Time) error {
	link := f.Link()
	service := f.Service()
	info := f.Client()
	if service == nil || info == nil {
		return purchase.ErrInvalidTransition
	}

	var clientID, purchaseID uuid.UUID
	err := c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if err := tx.Serials().MarkConsumed(ctx, tx.DB(), link.SerialID); err != nil {
			return err
		}

		var err error
		clientID, err = tx.Clients().Create(ctx, tx.DB(), shared.NewClient{
			SerialID: link.SerialID,
			VendorID: link.VendorID,
			Info:     *info,
		})
		if err != nil {
			return err
		}

		purchaseID, err = tx.Purchases().Create(ctx, tx.DB(), shared.NewPurchase{
			ClientID: clientID,
			SerialID: link.SerialID,
			VendorID: link.VendorID,
			Service:  *service,
		})
		return err
	})
	if err != nil {
		if infra.IsKind(err, infra.KindConflict) {
			f.Invalidate(now)
			slog.Warn("purchase link consumed concurrently", "flow_id", f.ID(), "serial_id", link.SerialID)
			return ErrConsumedRace
		}
		return errs.Mark(err, ErrStoreFailure)
	}

	slog.Info("purchase committed", "flow_id", f.ID(), "client_id", clientID, "purchase_id", purchaseID)
	return f.RecordCommit(clientID, purchaseID, now)
}

func (c *purchaseFlowCommandsImpl) checkoutRequest(f *purchase.Flow) CheckoutRequest {
	service := f.Service()
	token := url.PathEscape(f.Link().Token)
	base := fmt.Sprintf("%s/purchase/%s", c.settings.PublicBaseURL, token)

	req := CheckoutRequest{
		AmountMinorUnits: service.Price.MinorUnits(),
		Currency:         c.settings.Currency,
		ProductName:      service.Name,
		Description:      "Serial " + f.Link().SerialNumber,
		SuccessURL:       fmt.Sprintf("%s/success?flow=%s&session_id={CHECKOUT_SESSION_ID}", base, f.ID()),
		CancelURL:        fmt.Sprintf("%s/cancel?flow=%s", base, f.ID()),
		Reference:        f.PurchaseID().String(),
	}
	if info := f.Client(); info != nil {
		req.CustomerEmail = info.Email()
	}
	return req
}

// ResumeAfterPayment advances a flow whose client came back from the gateway.
// The purchase is trusted unless the gateway already reported it failed. A paid
// purchase advances even after its checkout was cleared.
func (c *purchaseFlowCommandsImpl) ResumeAfterPayment(ctx context.Context, flowID uuid.UUID) (*queries.FlowView, error) {
	return c.step(ctx, flowID, "resume_payment", func(f *purchase.Flow, now time.Time) error {
		if f.State() == purchase.StateSchedulingAppointment {
			return nil
		}
		if f.State() != purchase.StateAwaitingPayment || !f.Committed() {
			return purchase.ErrInvalidTransition
		}

		status, err := c.paymentStatus(ctx, f)
		if err != nil {
			return err
		}
		switch {
		case status == purchase.PaymentCompleted:
			return f.ConfirmPaid(now)
		case status == purchase.PaymentFailed:
			f.ClearCheckout(now)
			return ErrPaymentFailed
		case f.Checkout() == nil:
			return purchase.ErrInvalidTransition
		}

		return f.ConfirmPayment(now)
	})
}

// CancelPayment drops the pending checkout so the client can start over.
// It refuses once the purchase is paid.
func (c *purchaseFlowCommandsImpl) CancelPayment(ctx context.Context, flowID uuid.UUID) (*queries.FlowView, error) {
	return c.step(ctx, flowID, "cancel_payment", func(f *purchase.Flow, now time.Time) error {
		if f.State() != purchase.StateAwaitingPayment {
			return purchase.ErrInvalidTransition
		}
		if f.Committed() {
			status, err := c.paymentStatus(ctx, f)
			if err != nil {
				return err
			}
			if status == purchase.PaymentCompleted {
				return ErrAlreadyPaid
			}
		}
		f.ClearCheckout(now)
		return nil
	})
}

func (c *purchaseFlowCommandsImpl) SubmitAppointment(ctx context.Context, flowID uuid.UUID, date, timeOfDay string) (*queries.FlowView, error) {
	return c.step(ctx, flowID, "submit_appointment", func(f *purchase.Flow, now time.Time) error {
		if f.State() != purchase.StateSchedulingAppointment && f.State() != purchase.StateCompleted {
			return purchase.ErrInvalidTransition
		}
		slot, err := purchase.NewAppointmentSlot(date, timeOfDay, now, c.settings.Location)
		if err != nil {
			return err
		}
		if f.State() == purchase.StateCompleted {
			// Same slot again is a no-op; anything else is out of order.
			return f.ScheduleAppointment(slot, now)
		}

		serialID := f.Link().SerialID
		err = c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
			client, err := tx.Reads().ClientBySerial(ctx, serialID)
			if err != nil {
				if infra.IsNotFound(err) {
					return errs.Mark(err, errs.ErrClientNotFound)
				}
				return err
			}
			return tx.Purchases().SetAppointment(ctx, tx.DB(), client.ID, slot.Timestamp())
		})
		if err != nil {
			return errs.Mark(err, ErrStoreFailure)
		}

		return f.ScheduleAppointment(slot, now)
	})
}

// step runs fn while holding the flow's lease and publishes the result on release.
func (c *purchaseFlowCommandsImpl) step(
	ctx context.Context,
	flowID uuid.UUID,
	name string,
	fn func(f *purchase.Flow, now time.Time) error,
) (*queries.FlowView, error) {
	f, release, err := c.store.Acquire(ctx, flowID)
	if err != nil {
		metrics.RecordFlowError(name, errorKind(err))
		return nil, err
	}
	defer release()

	if f.State() == purchase.StateInvalid {
		metrics.RecordFlowError(name, errorKind(ErrLinkInvalid))
		return nil, ErrLinkInvalid
	}

	from := f.State()
	err = fn(f, c.clock.Now())
	if to := f.State(); to != from {
		metrics.RecordFlowTransition(from.String(), to.String())
	}
	if err != nil {
		if errors.Is(err, purchase.ErrFlowInvalid) {
			err = ErrLinkInvalid
		}
		metrics.RecordFlowError(name, errorKind(err))
		return nil, err
	}

	view := queries.NewFlowView(f.Snapshot(), false)
	return &view, nil
}

func errorKind(err error) string {
	switch {
	case errors.Is(err, ErrLinkInvalid):
		return "link_invalid"
	case errors.Is(err, purchase.ErrValidation):
		return "validation"
	case errors.Is(err, ErrStoreFailure):
		return "store_failure"
	case errors.Is(err, ErrGatewayFailure), errors.Is(err, ErrPaymentFailed):
		return "gateway"
	case errors.Is(err, ErrConsumedRace):
		return "consumed_race"
	case errors.Is(err, ErrAlreadyPaid):
		return "already_paid"
	case errors.Is(err, purchase.ErrInvalidTransition):
		return "invalid_transition"
	case errors.Is(err, shared.ErrFlowBusy):
		return "busy"
	case errors.Is(err, shared.ErrFlowNotFound):
		return "not_found"
	}
	return "other"
}
