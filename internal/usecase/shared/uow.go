package shared

import (
	"context"
	"time"

	"commission-tracker/internal/domain/purchase"
	"commission-tracker/internal/domain/serial"
	"commission-tracker/internal/domain/user"
	"commission-tracker/internal/domain/vendor"
	sqlc "commission-tracker/internal/infra/sqlc/generated"

	"github.com/google/uuid"
)

type UnitOfWork interface {
	// Within: Full transaction for write operations with retry logic
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
	// WithinReadOnly: Read-only transaction for multi-table consistent reads
	WithinReadOnly(ctx context.Context, fn func(ctx context.Context, db sqlc.DBTX) error) error
	// WithDB: Single statement writes outside an explicit transaction
	WithDB(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
	// CommandReads: Direct access to command reads for validation outside transactions
	CommandReads() CommandReads
}

type Tx interface {
	Users() UserRepository
	Vendors() VendorRepository
	Serials() SerialRepository
	Clients() ClientRepository
	Purchases() PurchaseRepository
	Reads() CommandReads
	DB() sqlc.DBTX
}

type CommandReads interface {
	UnconsumedLinkByToken(ctx context.Context, token string) (*purchase.Link, error)
	ClientBySerial(ctx context.Context, serialID uuid.UUID) (*ClientSnapshot, error)
	PurchaseByID(ctx context.Context, id uuid.UUID) (*PurchaseSnapshot, error)
	VendorByID(ctx context.Context, id uuid.UUID) (*vendor.Vendor, error)
}

type UserRepository interface {
	Create(ctx context.Context, tx sqlc.DBTX, u *user.User) (uuid.UUID, error)
	UpdateLastLogin(ctx context.Context, tx sqlc.DBTX, userID uuid.UUID) error
}

type VendorRepository interface {
	Create(ctx context.Context, tx sqlc.DBTX, v *vendor.Vendor) (uuid.UUID, error)
	Update(ctx context.Context, tx sqlc.DBTX, v *vendor.Vendor) error
	SetActive(ctx context.Context, tx sqlc.DBTX, vendorID uuid.UUID, active bool) error
	Delete(ctx context.Context, tx sqlc.DBTX, vendorID uuid.UUID) error
}

type SerialRepository interface {
	Create(ctx context.Context, tx sqlc.DBTX, s *serial.Serial) (uuid.UUID, error)
	// MarkConsumed flips the consumed flag only if it is still unset; otherwise a CONFLICT error.
	MarkConsumed(ctx context.Context, tx sqlc.DBTX, serialID uuid.UUID) error
}

type ClientRepository interface {
	Create(ctx context.Context, tx sqlc.DBTX, c NewClient) (uuid.UUID, error)
}

type PurchaseRepository interface {
	// Create stores a pending purchase; the commission is computed from the vendor's rate.
	Create(ctx context.Context, tx sqlc.DBTX, p NewPurchase) (uuid.UUID, error)
	SetCheckoutSession(ctx context.Context, tx sqlc.DBTX, purchaseID uuid.UUID, sessionID string) error
	MarkPaid(ctx context.Context, tx sqlc.DBTX, purchaseID uuid.UUID, sessionID string) (bool, error)
	MarkPaymentFailed(ctx context.Context, tx sqlc.DBTX, purchaseID uuid.UUID) (bool, error)
	SetAppointment(ctx context.Context, tx sqlc.DBTX, clientID uuid.UUID, at time.Time) error
	UpdateAppointmentStatus(ctx context.Context, tx sqlc.DBTX, purchaseID uuid.UUID, status purchase.AppointmentStatus) error
}
