package queries

import (
	"commission-tracker/internal/domain/purchase"
	"commission-tracker/internal/pkg/money"
	"commission-tracker/internal/usecase/shared"
)

type CatalogQueries interface {
	List() []ServiceOfferingView
	AppointmentTimes() []string
}

type catalogQueriesImpl struct {
	catalog shared.CatalogSource
}

func NewCatalogQueries(catalog shared.CatalogSource) CatalogQueries {
	return &catalogQueriesImpl{catalog: catalog}
}

func (q *catalogQueriesImpl) List() []ServiceOfferingView {
	offerings := q.catalog.Offerings()
	out := make([]ServiceOfferingView, len(offerings))
	for i, o := range offerings {
		out[i] = ServiceOfferingView{
			ID:           o.ID,
			Name:         o.Name,
			Description:  o.Description,
			Price:        o.Price.Amount(),
			PriceDisplay: money.FormatEUR(o.Price.Amount()),
		}
	}
	return out
}

func (q *catalogQueriesImpl) AppointmentTimes() []string {
	return purchase.AllowedTimes()
}
