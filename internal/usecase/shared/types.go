package shared

import (
	"commission-tracker/internal/domain/purchase"

	"github.com/google/uuid"
)

type NewClient struct {
	SerialID uuid.UUID
	VendorID uuid.UUID
	Info     purchase.ClientInfo
}

type NewPurchase struct {
	ClientID uuid.UUID
	SerialID uuid.UUID
	VendorID uuid.UUID
	Service  purchase.ServiceSnapshot
}

// Minimal snapshots for command read operations
type ClientSnapshot struct {
	ID       uuid.UUID
	SerialID uuid.UUID
	VendorID uuid.UUID
	Name     string
	Email    string
}

type PurchaseSnapshot struct {
	ID                uuid.UUID
	ClientID          uuid.UUID
	SerialID          *uuid.UUID
	VendorID          uuid.UUID
	PaymentStatus     purchase.PaymentStatus
	PaymentIntentID   *string
	AppointmentStatus purchase.AppointmentStatus
}
