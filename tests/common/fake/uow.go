//go:build unit

// Package fake holds an in-memory UnitOfWork for command tests. Writes made
// inside Within are rolled back when the callback returns an error.
package fake

import (
	"context"
	"strings"
	"sync"
	"time"

	"commission-tracker/internal/domain/purchase"
	"commission-tracker/internal/domain/serial"
	"commission-tracker/internal/domain/user"
	"commission-tracker/internal/domain/vendor"
	"commission-tracker/internal/infra"
	sqlc "commission-tracker/internal/infra/sqlc/generated"
	"commission-tracker/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type SerialRow struct {
	ID           uuid.UUID
	VendorID     uuid.UUID
	SerialNumber string
	Token        string
	Used         bool
}

type ClientRow struct {
	ID       uuid.UUID
	SerialID uuid.UUID
	VendorID uuid.UUID
	Info     purchase.ClientInfo
}

type PurchaseRow struct {
	ID                uuid.UUID
	ClientID          uuid.UUID
	SerialID          uuid.UUID
	VendorID          uuid.UUID
	Service           purchase.ServiceSnapshot
	Commission        decimal.Decimal
	PaymentStatus     purchase.PaymentStatus
	SessionID         string
	Appointment       *time.Time
	AppointmentStatus purchase.AppointmentStatus
}

type UserRow struct {
	ID        uuid.UUID
	Email     string
	Hash      string
	Role      user.Role
	LastLogin bool
}

type state struct {
	serials   map[uuid.UUID]SerialRow
	clients   map[uuid.UUID]ClientRow
	purchases map[uuid.UUID]PurchaseRow
	vendors   map[uuid.UUID]vendor.Vendor
	users     map[uuid.UUID]UserRow
}

func (s state) clone() state {
	c := state{
		serials:   make(map[uuid.UUID]SerialRow, len(s.serials)),
		clients:   make(map[uuid.UUID]ClientRow, len(s.clients)),
		purchases: make(map[uuid.UUID]PurchaseRow, len(s.purchases)),
		vendors:   make(map[uuid.UUID]vendor.Vendor, len(s.vendors)),
		users:     make(map[uuid.UUID]UserRow, len(s.users)),
	}
	for k, v := range s.serials {
		c.serials[k] = v
	}
	for k, v := range s.clients {
		c.clients[k] = v
	}
	for k, v := range s.purchases {
		c.purchases[k] = v
	}
	for k, v := range s.vendors {
		c.vendors[k] = v
	}
	for k, v := range s.users {
		c.users[k] = v
	}
	return c
}

// UnitOfWork serializes every transaction behind one mutex.
type UnitOfWork struct {
	mu       sync.Mutex
	st       state
	failures map[string]error
	calls    map[string]int
}

func NewUnitOfWork() *UnitOfWork {
	return &UnitOfWork{
		st:       state{}.clone(),
		failures: map[string]error{},
		calls:    map[string]int{},
	}
}

// FailOn makes every later call of op return err until cleared with a nil err.
// op is "<Repo>.<Method>", e.g. "Purchases.Create".
func (u *UnitOfWork) FailOn(op string, err error) {
	u.mu.Lock()
	defer u.mu.Unlock()
	if err == nil {
		delete(u.failures, op)
		return
	}
	u.failures[op] = err
}

func (u *UnitOfWork) Calls(op string) int {
	u.mu.Lock()
	defer u.mu.Unlock()
	return u.calls[op]
}

// record counts the call and returns an injected failure. Callers hold mu.
func (u *UnitOfWork) record(op string) error {
	u.calls[op]++
	return u.failures[op]
}

func (u *UnitOfWork) AddVendor(v *vendor.Vendor) {
	u.mu.Lock()
	defer u.mu.Unlock()
	u.st.vendors[v.ID()] = *v
}

// AddSerial stores an unused serial for vendorID and returns the purchase link it resolves to.
func (u *UnitOfWork) AddSerial(vendorID uuid.UUID, serialNumber, token string) purchase.Link {
	u.mu.Lock()
	defer u.mu.Unlock()
	row := SerialRow{ID: uuid.New(), VendorID: vendorID, SerialNumber: serialNumber, Token: token}
	u.st.serials[row.ID] = row
	return purchase.Link{SerialID: row.ID, VendorID: vendorID, Token: token, SerialNumber: serialNumber}
}

func (u *UnitOfWork) AddPurchase(row PurchaseRow) {
	u.mu.Lock()
	defer u.mu.Unlock()
	u.st.purchases[row.ID] = row
}

func (u *UnitOfWork) Serial(id uuid.UUID) (SerialRow, bool) {
	u.mu.Lock()
	defer u.mu.Unlock()
	row, ok := u.st.serials[id]
	return row, ok
}

func (u *UnitOfWork) Clients() []ClientRow {
	u.mu.Lock()
	defer u.mu.Unlock()
	out := make([]ClientRow, 0, len(u.st.clients))
	for _, c := range u.st.clients {
		out = append(out, c)
	}
	return out
}

func (u *UnitOfWork) Purchases() []PurchaseRow {
	u.mu.Lock()
	defer u.mu.Unlock()
	out := make([]PurchaseRow, 0, len(u.st.purchases))
	for _, p := range u.st.purchases {
		out = append(out, p)
	}
	return out
}

func (u *UnitOfWork) Purchase(id uuid.UUID) (PurchaseRow, bool) {
	u.mu.Lock()
	defer u.mu.Unlock()
	p, ok := u.st.purchases[id]
	return p, ok
}

func (u *UnitOfWork) Vendor(id uuid.UUID) (*vendor.Vendor, bool) {
	u.mu.Lock()
	defer u.mu.Unlock()
	v, ok := u.st.vendors[id]
	return &v, ok
}

func (u *UnitOfWork) Users() []UserRow {
	u.mu.Lock()
	defer u.mu.Unlock()
	out := make([]UserRow, 0, len(u.st.users))
	for _, r := range u.st.users {
		out = append(out, r)
	}
	return out
}

func (u *UnitOfWork) Within(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	u.mu.Lock()
	defer u.mu.Unlock()

	saved := u.st.clone()
	if err := fn(ctx, &tx{u: u}); err != nil {
		u.st = saved
		return err
	}
	return nil
}

func (u *UnitOfWork) WithinReadOnly(ctx context.Context, fn func(ctx context.Context, db sqlc.DBTX) error) error {
	u.mu.Lock()
	defer u.mu.Unlock()
	return fn(ctx, nil)
}

func (u *UnitOfWork) WithDB(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	return u.Within(ctx, fn)
}

func (u *UnitOfWork) CommandReads() shared.CommandReads {
	return &reads{u: u, lock: true}
}

var _ shared.UnitOfWork = (*UnitOfWork)(nil)

type tx struct {
	u *UnitOfWork
}

func (t *tx) Users() shared.UserRepository         { return &users{u: t.u} }
func (t *tx) Vendors() shared.VendorRepository     { return &vendors{u: t.u} }
func (t *tx) Serials() shared.SerialRepository     { return &serials{u: t.u} }
func (t *tx) Clients() shared.ClientRepository     { return &clients{u: t.u} }
func (t *tx) Purchases() shared.PurchaseRepository { return &purchases{u: t.u} }
func (t *tx) Reads() shared.CommandReads           { return &reads{u: t.u} }
func (t *tx) DB() sqlc.DBTX                        { return nil }

func notFound(msg string) error {
	return infra.WrapRepoErr(msg, nil, infra.KindNotFound)
}

// reads locks the store only when used outside a transaction.
type reads struct {
	u    *UnitOfWork
	lock bool
}

func (r *reads) enter() func() {
	if !r.lock {
		return func() {}
	}
	r.u.mu.Lock()
	return r.u.mu.Unlock
}

func (r *reads) UnconsumedLinkByToken(_ context.Context, token string) (*purchase.Link, error) {
	defer r.enter()()
	if err := r.u.record("Reads.UnconsumedLinkByToken"); err != nil {
		return nil, err
	}
	for _, s := range r.u.st.serials {
		if s.Token == token && !s.Used {
			return &purchase.Link{SerialID: s.ID, VendorID: s.VendorID, Token: s.Token, SerialNumber: s.SerialNumber}, nil
		}
	}
	return nil, notFound("link not found")
}

func (r *reads) ClientBySerial(_ context.Context, serialID uuid.UUID) (*shared.ClientSnapshot, error) {
	defer r.enter()()
	if err := r.u.record("Reads.ClientBySerial"); err != nil {
		return nil, err
	}
	for _, c := range r.u.st.clients {
		if c.SerialID == serialID {
			return &shared.ClientSnapshot{ID: c.ID, SerialID: c.SerialID, VendorID: c.VendorID, Name: c.Info.Name(), Email: c.Info.Email()}, nil
		}
	}
	return nil, notFound("client not found")
}

func (r *reads) PurchaseByID(_ context.Context, id uuid.UUID) (*shared.PurchaseSnapshot, error) {
	defer r.enter()()
	if err := r.u.record("Reads.PurchaseByID"); err != nil {
		return nil, err
	}
	p, ok := r.u.st.purchases[id]
	if !ok {
		return nil, notFound("purchase not found")
	}
	snap := &shared.PurchaseSnapshot{
		ID:                p.ID,
		ClientID:          p.ClientID,
		VendorID:          p.VendorID,
		PaymentStatus:     p.PaymentStatus,
		AppointmentStatus: p.AppointmentStatus,
	}
	if p.SerialID != uuid.Nil {
		serialID := p.SerialID
		snap.SerialID = &serialID
	}
	if p.SessionID != "" {
		session := p.SessionID
		snap.PaymentIntentID = &session
	}
	return snap, nil
}

func (r *reads) VendorByID(_ context.Context, id uuid.UUID) (*vendor.Vendor, error) {
	defer r.enter()()
	if err := r.u.record("Reads.VendorByID"); err != nil {
		return nil, err
	}
	v, ok := r.u.st.vendors[id]
	if !ok {
		return nil, notFound("vendor not found")
	}
	return &v, nil
}

type users struct{ u *UnitOfWork }

func (r *users) Create(_ context.Context, _ sqlc.DBTX, usr *user.User) (uuid.UUID, error) {
	if err := r.u.record("Users.Create"); err != nil {
		return uuid.Nil, err
	}
	for _, existing := range r.u.st.users {
		if strings.EqualFold(existing.Email, usr.Email().Value()) {
			return uuid.Nil, infra.WrapRepoErr("email taken", nil, infra.KindDuplicateKey)
		}
	}
	r.u.st.users[usr.ID()] = UserRow{ID: usr.ID(), Email: usr.Email().Value(), Hash: usr.PasswordHash(), Role: usr.Role()}
	return usr.ID(), nil
}

func (r *users) UpdateLastLogin(_ context.Context, _ sqlc.DBTX, userID uuid.UUID) error {
	if err := r.u.record("Users.UpdateLastLogin"); err != nil {
		return err
	}
	row, ok := r.u.st.users[userID]
	if !ok {
		return notFound("user not found")
	}
	row.LastLogin = true
	r.u.st.users[userID] = row
	return nil
}

type vendors struct{ u *UnitOfWork }

func (r *vendors) Create(_ context.Context, _ sqlc.DBTX, v *vendor.Vendor) (uuid.UUID, error) {
	if err := r.u.record("Vendors.Create"); err != nil {
		return uuid.Nil, err
	}
	r.u.st.vendors[v.ID()] = *v
	return v.ID(), nil
}

func (r *vendors) Update(_ context.Context, _ sqlc.DBTX, v *vendor.Vendor) error {
	if err := r.u.record("Vendors.Update"); err != nil {
		return err
	}
	if _, ok := r.u.st.vendors[v.ID()]; !ok {
		return notFound("vendor not found")
	}
	r.u.st.vendors[v.ID()] = *v
	return nil
}

func (r *vendors) SetActive(_ context.Context, _ sqlc.DBTX, vendorID uuid.UUID, active bool) error {
	if err := r.u.record("Vendors.SetActive"); err != nil {
		return err
	}
	v, ok := r.u.st.vendors[vendorID]
	if !ok {
		return notFound("vendor not found")
	}
	v.SetActive(active)
	r.u.st.vendors[vendorID] = v
	return nil
}

func (r *vendors) Delete(_ context.Context, _ sqlc.DBTX, vendorID uuid.UUID) error {
	if err := r.u.record("Vendors.Delete"); err != nil {
		return err
	}
	if _, ok := r.u.st.vendors[vendorID]; !ok {
		return notFound("vendor not found")
	}
	delete(r.u.st.vendors, vendorID)
	return nil
}

type serials struct{ u *UnitOfWork }

func (r *serials) Create(_ context.Context, _ sqlc.DBTX, s *serial.Serial) (uuid.UUID, error) {
	if err := r.u.record("Serials.Create"); err != nil {
		return uuid.Nil, err
	}
	if _, ok := r.u.st.vendors[s.VendorID()]; !ok {
		return uuid.Nil, infra.WrapRepoErr("vendor missing", nil, infra.KindForeignKeyViolated)
	}
	for _, existing := range r.u.st.serials {
		if existing.Token == s.LinkToken() {
			return uuid.Nil, infra.WrapRepoErr("link taken", nil, infra.KindDuplicateKey)
		}
	}
	r.u.st.serials[s.ID()] = SerialRow{ID: s.ID(), VendorID: s.VendorID(), SerialNumber: s.SerialNumber(), Token: s.LinkToken(), Used: s.IsUsed()}
	return s.ID(), nil
}

func (r *serials) MarkConsumed(_ context.Context, _ sqlc.DBTX, serialID uuid.UUID) error {
	if err := r.u.record("Serials.MarkConsumed"); err != nil {
		return err
	}
	s, ok := r.u.st.serials[serialID]
	if !ok || s.Used {
		return infra.WrapRepoErr("serial already consumed", nil, infra.KindConflict)
	}
	s.Used = true
	r.u.st.serials[serialID] = s
	return nil
}

type clients struct{ u *UnitOfWork }

func (r *clients) Create(_ context.Context, _ sqlc.DBTX, c shared.NewClient) (uuid.UUID, error) {
	if err := r.u.record("Clients.Create"); err != nil {
		return uuid.Nil, err
	}
	for _, existing := range r.u.st.clients {
		if existing.SerialID == c.SerialID {
			return uuid.Nil, infra.WrapRepoErr("client exists for serial", nil, infra.KindDuplicateKey)
		}
	}
	row := ClientRow{ID: uuid.New(), SerialID: c.SerialID, VendorID: c.VendorID, Info: c.Info}
	r.u.st.clients[row.ID] = row
	return row.ID, nil
}

type purchases struct{ u *UnitOfWork }

func (r *purchases) Create(_ context.Context, _ sqlc.DBTX, p shared.NewPurchase) (uuid.UUID, error) {
	if err := r.u.record("Purchases.Create"); err != nil {
		return uuid.Nil, err
	}
	v, ok := r.u.st.vendors[p.VendorID]
	if !ok {
		return uuid.Nil, notFound("vendor not found")
	}
	row := PurchaseRow{
		ID:                uuid.New(),
		ClientID:          p.ClientID,
		SerialID:          p.SerialID,
		VendorID:          p.VendorID,
		Service:           p.Service,
		Commission:        v.CommissionRate().CommissionOn(p.Service.Price.Amount()),
		PaymentStatus:     purchase.PaymentPending,
		AppointmentStatus: purchase.AppointmentScheduled,
	}
	r.u.st.purchases[row.ID] = row
	return row.ID, nil
}

func (r *purchases) SetCheckoutSession(_ context.Context, _ sqlc.DBTX, purchaseID uuid.UUID, sessionID string) error {
	if err := r.u.record("Purchases.SetCheckoutSession"); err != nil {
		return err
	}
	p, ok := r.u.st.purchases[purchaseID]
	if !ok || p.PaymentStatus == purchase.PaymentCompleted {
		return notFound("purchase not found")
	}
	p.SessionID = sessionID
	p.PaymentStatus = purchase.PaymentPending
	r.u.st.purchases[purchaseID] = p
	return nil
}

func (r *purchases) MarkPaid(_ context.Context, _ sqlc.DBTX, purchaseID uuid.UUID, sessionID string) (bool, error) {
	if err := r.u.record("Purchases.MarkPaid"); err != nil {
		return false, err
	}
	p, ok := r.u.st.purchases[purchaseID]
	if !ok || p.PaymentStatus == purchase.PaymentCompleted {
		return false, nil
	}
	p.PaymentStatus = purchase.PaymentCompleted
	if sessionID != "" {
		p.SessionID = sessionID
	}
	r.u.st.purchases[purchaseID] = p
	return true, nil
}

func (r *purchases) MarkPaymentFailed(_ context.Context, _ sqlc.DBTX, purchaseID uuid.UUID) (bool, error) {
	if err := r.u.record("Purchases.MarkPaymentFailed"); err != nil {
		return false, err
	}
	p, ok := r.u.st.purchases[purchaseID]
	if !ok || p.PaymentStatus != purchase.PaymentPending {
		return false, nil
	}
	p.PaymentStatus = purchase.PaymentFailed
	r.u.st.purchases[purchaseID] = p
	return true, nil
}

func (r *purchases) SetAppointment(_ context.Context, _ sqlc.DBTX, clientID uuid.UUID, at time.Time) error {
	if err := r.u.record("Purchases.SetAppointment"); err != nil {
		return err
	}
	found := false
	for id, p := range r.u.st.purchases {
		if p.ClientID == clientID {
			when := at
			p.Appointment = &when
			p.AppointmentStatus = purchase.AppointmentScheduled
			r.u.st.purchases[id] = p
			found = true
		}
	}
	if !found {
		return notFound("purchase not found")
	}
	return nil
}

func (r *purchases) UpdateAppointmentStatus(_ context.Context, _ sqlc.DBTX, purchaseID uuid.UUID, status purchase.AppointmentStatus) error {
	if err := r.u.record("Purchases.UpdateAppointmentStatus"); err != nil {
		return err
	}
	p, ok := r.u.st.purchases[purchaseID]
	if !ok {
		return notFound("purchase not found")
	}
	p.AppointmentStatus = status
	r.u.st.purchases[purchaseID] = p
	return nil
}
