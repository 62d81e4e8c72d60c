package shared

import "commission-tracker/internal/domain/purchase"

// CatalogSource is the read-only service list. *purchase.Catalog satisfies it.
type CatalogSource interface {
	Find(id string) (purchase.ServiceOffering, bool)
	Offerings() []purchase.ServiceOffering
}
