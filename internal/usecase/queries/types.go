package queries

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// AuthorizedUserView represents read-optimized user data with authorization info
type AuthorizedUserView struct {
	ID           uuid.UUID  `json:"id"`
	Email        string     `json:"email"`
	Role         string     `json:"role"`
	IsActive     bool       `json:"is_active"`
	VendorID     *uuid.UUID `json:"vendor_id,omitempty"`
	VendorActive *bool      `json:"vendor_active,omitempty"`
}

type VendorView struct {
	ID                uuid.UUID       `json:"id"`
	UserID            *uuid.UUID      `json:"user_id,omitempty"`
	Name              string          `json:"name"`
	Email             string          `json:"email"`
	Phone             *string         `json:"phone,omitempty"`
	CommissionPercent decimal.Decimal `json:"commission_percent"`
	IsActive          bool            `json:"is_active"`
	CreatedAt         time.Time       `json:"created_at"`
}

// VendorSummaryView adds totals over completed purchases.
type VendorSummaryView struct {
	VendorView
	CompletedSales  int64           `json:"completed_sales"`
	TotalSales      decimal.Decimal `json:"total_sales"`
	TotalCommission decimal.Decimal `json:"total_commission"`
}

type SerialView struct {
	ID           uuid.UUID `json:"id"`
	SerialNumber string    `json:"serial_number"`
	LinkToken    string    `json:"link_token"`
	PurchaseURL  string    `json:"purchase_url"`
	QRCode       string    `json:"qr_code"`
	QRHash       string    `json:"qr_hash"`
	IsUsed       bool      `json:"is_used"`
	CreatedAt    time.Time `json:"created_at"`
}

type PurchaseView struct {
	ID                uuid.UUID       `json:"id"`
	ServiceName       string          `json:"service_name"`
	ServicePrice      decimal.Decimal `json:"service_price"`
	CommissionAmount  decimal.Decimal `json:"commission_amount"`
	PaymentStatus     string          `json:"payment_status"`
	AppointmentDate   *time.Time      `json:"appointment_date,omitempty"`
	AppointmentStatus string          `json:"appointment_status"`
	CreatedAt         time.Time       `json:"created_at"`
}

type ClientView struct {
	ID         uuid.UUID      `json:"id"`
	Name       string         `json:"name"`
	Email      string         `json:"email"`
	Phone      string         `json:"phone"`
	VendorID   *uuid.UUID     `json:"vendor_id,omitempty"`
	VendorName string         `json:"vendor_name,omitempty"`
	CreatedAt  time.Time      `json:"created_at"`
	Purchases  []PurchaseView `json:"purchases"`
}

// TotalCommission sums the commission of the listed purchases.
func (c ClientView) TotalCommission() decimal.Decimal {
	total := decimal.Zero
	for _, p := range c.Purchases {
		total = total.Add(p.CommissionAmount)
	}
	return total
}

type VendorClientsView struct {
	Clients         []ClientView    `json:"clients"`
	TotalCommission decimal.Decimal `json:"total_commission"`
}

type ServiceOfferingView struct {
	ID           string          `json:"id"`
	Name         string          `json:"name"`
	Description  string          `json:"description"`
	Price        decimal.Decimal `json:"price"`
	PriceDisplay string          `json:"price_display"`
}

type FlowView struct {
	ID          uuid.UUID            `json:"id"`
	State       string               `json:"state"`
	InProgress  bool                 `json:"in_progress"`
	Service     *ServiceOfferingView `json:"service,omitempty"`
	ClientName  string               `json:"client_name,omitempty"`
	ClientEmail string               `json:"client_email,omitempty"`
	ClientPhone string               `json:"client_phone,omitempty"`
	CheckoutURL string               `json:"checkout_url,omitempty"`
	PurchaseID  *uuid.UUID           `json:"purchase_id,omitempty"`
	Appointment string               `json:"appointment,omitempty"`
	UpdatedAt   time.Time            `json:"updated_at"`
}
