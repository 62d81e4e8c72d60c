package response

import (
	"time"

	"commission-tracker/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
	"github.com/shopspring/decimal"
)

type ServiceOfferingResponse struct {
	ID           string          `json:"id"`
	Name         string          `json:"name"`
	Description  string          `json:"description,omitempty"`
	Price        decimal.Decimal `json:"price"`
	PriceDisplay string          `json:"price_display"`
}

type FlowResponse struct {
	ID          uuid.UUID                `json:"id"`
	State       string                   `json:"state"`
	InProgress  bool                     `json:"in_progress"`
	Service     *ServiceOfferingResponse `json:"service,omitempty"`
	ClientName  string                   `json:"client_name,omitempty"`
	ClientEmail string                   `json:"client_email,omitempty"`
	ClientPhone string                   `json:"client_phone,omitempty"`
	CheckoutURL string                   `json:"checkout_url,omitempty"`
	PurchaseID  *uuid.UUID               `json:"purchase_id,omitempty"`
	Appointment string                   `json:"appointment_date,omitempty"`
	UpdatedAt   time.Time                `json:"updated_at"`
}

type PaymentRedirectResponse struct {
	CheckoutURL string    `json:"checkout_url,omitempty"`
	SessionID   string    `json:"session_id,omitempty"`
	PurchaseID  uuid.UUID `json:"purchase_id"`
	Paid        bool      `json:"paid"`
}

type SlotsResponse struct {
	Times []string `json:"times"`
}

type CatalogResponse struct {
	Services []ServiceOfferingResponse `json:"services"`
}

func FromFlowView(v *queries.FlowView) (*FlowResponse, error) {
	var res FlowResponse
	if err := copier.Copy(&res, v); err != nil {
		return nil, err
	}
	return &res, nil
}

func FromCatalog(items []queries.ServiceOfferingView) (*CatalogResponse, error) {
	services := make([]ServiceOfferingResponse, 0, len(items))
	if err := copier.Copy(&services, &items); err != nil {
		return nil, err
	}
	return &CatalogResponse{Services: services}, nil
}
