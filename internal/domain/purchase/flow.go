package purchase

import (
	"time"

	"github.com/google/uuid"
)

// Link is an unconsumed purchase link as resolved at flow start. The link id
// and the serial id are the same row.
type Link struct {
	SerialID     uuid.UUID
	VendorID     uuid.UUID
	Token        string
	SerialNumber string
}

// Checkout is the gateway session a flow redirected the client to.
type Checkout struct {
	SessionID string
	URL       string
}

// Flow is one client's walk through the purchase steps for a single link.
// It is not safe for concurrent use; callers serialize access per flow.
type Flow struct {
	id          uuid.UUID
	link        Link
	state       State
	service     *ServiceSnapshot
	client      *ClientInfo
	clientID    uuid.UUID
	purchaseID  uuid.UUID
	checkout    *Checkout
	appointment *AppointmentSlot
	createdAt   time.Time
	updatedAt   time.Time
}

func NewFlow(link Link, now time.Time) *Flow {
	return &Flow{
		id:        uuid.New(),
		link:      link,
		state:     StateSelectingService,
		createdAt: now,
		updatedAt: now,
	}
}

func (f *Flow) fire(t Trigger, now time.Time) error {
	next, err := f.state.Next(t)
	if err != nil {
		if f.state == StateInvalid {
			return ErrFlowInvalid
		}
		return err
	}
	f.state = next
	f.updatedAt = now
	return nil
}

// SelectService snapshots the offering. Choosing the same service again is a no-op.
func (f *Flow) SelectService(o ServiceOffering, now time.Time) error {
	if f.state == StateEnteringInfo && f.service != nil && f.service.ServiceID == o.ID {
		return nil
	}
	if err := f.fire(TriggerServiceChosen, now); err != nil {
		return err
	}
	f.service = &ServiceSnapshot{ServiceID: o.ID, Name: o.Name, Price: o.Price}
	return nil
}

// SubmitInfo holds the client details. An identical resubmission before commit is a no-op.
func (f *Flow) SubmitInfo(info ClientInfo, now time.Time) error {
	if f.state == StateAwaitingPayment && !f.Committed() && f.client != nil && *f.client == info {
		return nil
	}
	if err := f.fire(TriggerInfoSubmitted, now); err != nil {
		return err
	}
	f.client = &info
	return nil
}

// RecordCommit stores the ids of the client and purchase rows written at payment time.
func (f *Flow) RecordCommit(clientID, purchaseID uuid.UUID, now time.Time) error {
	if f.Committed() {
		return ErrAlreadyCommitted
	}
	if err := f.fire(TriggerPaymentInitiated, now); err != nil {
		return err
	}
	f.clientID = clientID
	f.purchaseID = purchaseID
	return nil
}

func (f *Flow) RecordCheckout(c Checkout, now time.Time) error {
	if !f.Committed() {
		return ErrNotCommitted
	}
	if err := f.fire(TriggerPaymentInitiated, now); err != nil {
		return err
	}
	f.checkout = &c
	return nil
}

// ClearCheckout forgets the pending session so the next initiation asks the gateway again.
func (f *Flow) ClearCheckout(now time.Time) {
	if f.state != StateAwaitingPayment {
		return
	}
	f.checkout = nil
	f.updatedAt = now
}

func (f *Flow) ConfirmPayment(now time.Time) error {
	if f.state == StateAwaitingPayment && f.checkout == nil {
		return ErrCheckoutNotStarted
	}
	return f.fire(TriggerPaymentConfirmed, now)
}

// ConfirmPaid advances a committed flow whose purchase is already paid,
// whether or not it still holds a checkout session.
func (f *Flow) ConfirmPaid(now time.Time) error {
	if !f.Committed() {
		return ErrNotCommitted
	}
	return f.fire(TriggerPaymentConfirmed, now)
}

// ScheduleAppointment completes the flow. Resubmitting the booked slot is a no-op.
func (f *Flow) ScheduleAppointment(slot AppointmentSlot, now time.Time) error {
	if f.state == StateCompleted && f.appointment != nil && f.appointment.Equal(slot) {
		return nil
	}
	if err := f.fire(TriggerAppointmentSubmitted, now); err != nil {
		return err
	}
	f.appointment = &slot
	return nil
}

// Invalidate moves a non-terminal flow to StateInvalid.
func (f *Flow) Invalidate(now time.Time) {
	_ = f.fire(TriggerLinkRevoked, now)
}

func (f *Flow) ID() uuid.UUID                 { return f.id }
func (f *Flow) Link() Link                    { return f.link }
func (f *Flow) State() State                  { return f.state }
func (f *Flow) Service() *ServiceSnapshot     { return f.service }
func (f *Flow) Client() *ClientInfo           { return f.client }
func (f *Flow) ClientID() uuid.UUID           { return f.clientID }
func (f *Flow) PurchaseID() uuid.UUID         { return f.purchaseID }
func (f *Flow) Checkout() *Checkout           { return f.checkout }
func (f *Flow) Appointment() *AppointmentSlot { return f.appointment }
func (f *Flow) CreatedAt() time.Time          { return f.createdAt }
func (f *Flow) UpdatedAt() time.Time          { return f.updatedAt }

func (f *Flow) Committed() bool { return f.clientID != uuid.Nil }

// Snapshot is a detached copy of a flow, safe to share across goroutines.
type Snapshot struct {
	ID          uuid.UUID
	State       State
	Link        Link
	Service     *ServiceSnapshot
	Client      *ClientInfo
	ClientID    uuid.UUID
	PurchaseID  uuid.UUID
	Checkout    *Checkout
	Appointment *AppointmentSlot
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

func (f *Flow) Snapshot() Snapshot {
	return Snapshot{
		ID:          f.id,
		State:       f.state,
		Link:        f.link,
		Service:     clonePtr(f.service),
		Client:      clonePtr(f.client),
		ClientID:    f.clientID,
		PurchaseID:  f.purchaseID,
		Checkout:    clonePtr(f.checkout),
		Appointment: clonePtr(f.appointment),
		CreatedAt:   f.createdAt,
		UpdatedAt:   f.updatedAt,
	}
}

func clonePtr[T any](p *T) *T {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}
