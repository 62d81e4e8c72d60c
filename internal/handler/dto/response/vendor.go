package response

import (
	"time"

	"commission-tracker/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
	"github.com/shopspring/decimal"
)

type VendorResponse struct {
	ID                uuid.UUID       `json:"id"`
	Name              string          `json:"name"`
	Email             string          `json:"email"`
	Phone             *string         `json:"phone,omitempty"`
	CommissionPercent decimal.Decimal `json:"commission_percent"`
	IsActive          bool            `json:"is_active"`
	CreatedAt         time.Time       `json:"created_at"`
}

type VendorSummaryResponse struct {
	VendorResponse
	CompletedSales  int64           `json:"completed_sales"`
	TotalSales      decimal.Decimal `json:"total_sales"`
	TotalCommission decimal.Decimal `json:"total_commission"`
}

type SerialResponse struct {
	ID           uuid.UUID `json:"id"`
	SerialNumber string    `json:"serial_number"`
	PurchaseURL  string    `json:"purchase_url"`
	QRCode       string    `json:"qr_code"`
	IsUsed       bool      `json:"is_used"`
	CreatedAt    time.Time `json:"created_at"`
}

type PurchaseResponse struct {
	ID                uuid.UUID       `json:"id"`
	ServiceName       string          `json:"service_name"`
	ServicePrice      decimal.Decimal `json:"service_price"`
	CommissionAmount  decimal.Decimal `json:"commission_amount"`
	PaymentStatus     string          `json:"payment_status"`
	AppointmentDate   *time.Time      `json:"appointment_date,omitempty"`
	AppointmentStatus string          `json:"appointment_status"`
	CreatedAt         time.Time       `json:"created_at"`
}

type ClientResponse struct {
	ID              uuid.UUID          `json:"id"`
	Name            string             `json:"name"`
	Email           string             `json:"email"`
	Phone           string             `json:"phone"`
	VendorID        *uuid.UUID         `json:"vendor_id,omitempty"`
	VendorName      string             `json:"vendor_name,omitempty"`
	CreatedAt       time.Time          `json:"created_at"`
	Purchases       []PurchaseResponse `json:"purchases"`
	TotalCommission decimal.Decimal    `json:"total_commission"`
}

type VendorClientsResponse struct {
	Clients         []ClientResponse `json:"clients"`
	TotalCommission decimal.Decimal  `json:"total_commission"`
}

func FromVendorSummaries(items []queries.VendorSummaryView) ([]VendorSummaryResponse, error) {
	res := make([]VendorSummaryResponse, len(items))
	for i := range items {
		if err := copier.Copy(&res[i].VendorResponse, &items[i].VendorView); err != nil {
			return nil, err
		}
		res[i].CompletedSales = items[i].CompletedSales
		res[i].TotalSales = items[i].TotalSales
		res[i].TotalCommission = items[i].TotalCommission
	}
	return res, nil
}

func FromSerials(items []queries.SerialView) ([]SerialResponse, error) {
	res := make([]SerialResponse, 0, len(items))
	if err := copier.Copy(&res, &items); err != nil {
		return nil, err
	}
	return res, nil
}

func FromSerial(v *queries.SerialView) (*SerialResponse, error) {
	var res SerialResponse
	if err := copier.Copy(&res, v); err != nil {
		return nil, err
	}
	return &res, nil
}

func FromClients(items []queries.ClientView) ([]ClientResponse, error) {
	res := make([]ClientResponse, len(items))
	for i := range items {
		if err := copier.Copy(&res[i], &items[i]); err != nil {
			return nil, err
		}
		if res[i].Purchases == nil {
			res[i].Purchases = []PurchaseResponse{}
		}
		res[i].TotalCommission = items[i].TotalCommission()
	}
	return res, nil
}

func FromVendorClients(v *queries.VendorClientsView) (*VendorClientsResponse, error) {
	clients, err := FromClients(v.Clients)
	if err != nil {
		return nil, err
	}
	return &VendorClientsResponse{Clients: clients, TotalCommission: v.TotalCommission}, nil
}
