package serial

import (
	"strings"
	"time"

	"commission-tracker/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrInvalidSerialNumber = errs.New("serial number is required")
	ErrInvalidQRCode       = errs.New("qr code is required")
)

const purchasePathPrefix = "/purchase/"

// QRCode is the rendered image of a purchase URL.
type QRCode struct {
	DataURL string
	Hash    string
}

// Serial is a vendor's product serial together with its single-use purchase link.
type Serial struct {
	id           uuid.UUID
	serialNumber string
	vendorID     uuid.UUID
	linkToken    string
	qrCode       QRCode
	isUsed       bool
	createdAt    time.Time
}

// NewLinkToken returns a fresh opaque purchase link token.
func NewLinkToken() string {
	return uuid.NewString()
}

// PurchaseURL is the client-facing address for a link token.
func PurchaseURL(baseURL, token string) string {
	return strings.TrimRight(baseURL, "/") + purchasePathPrefix + token
}

func NewSerial(vendorID uuid.UUID, serialNumber, linkToken string, code QRCode, now time.Time) (*Serial, error) {
	serialNumber = strings.TrimSpace(serialNumber)
	if serialNumber == "" {
		return nil, ErrInvalidSerialNumber
	}
	if code.DataURL == "" || code.Hash == "" {
		return nil, ErrInvalidQRCode
	}

	return &Serial{
		id:           uuid.New(),
		serialNumber: serialNumber,
		vendorID:     vendorID,
		linkToken:    linkToken,
		qrCode:       code,
		createdAt:    now,
	}, nil
}

func (s *Serial) ID() uuid.UUID        { return s.id }
func (s *Serial) SerialNumber() string { return s.serialNumber }
func (s *Serial) VendorID() uuid.UUID  { return s.vendorID }
func (s *Serial) LinkToken() string    { return s.linkToken }
func (s *Serial) QRCode() QRCode       { return s.qrCode }
func (s *Serial) IsUsed() bool         { return s.isUsed }
func (s *Serial) CreatedAt() time.Time { return s.createdAt }
