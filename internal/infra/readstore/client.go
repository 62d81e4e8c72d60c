package readstore

import (
	"context"

	"commission-tracker/internal/domain/purchase"
	"commission-tracker/internal/infra"
	sqlc "commission-tracker/internal/infra/sqlc/generated"
	"commission-tracker/internal/pkg/pgconv"
	"commission-tracker/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type ClientReadQueries interface {
	ListVendorClientPurchases(ctx context.Context, db sqlc.DBTX, vendorID uuid.UUID) ([]sqlc.ListVendorClientPurchasesRow, error)
	ListClientPurchases(ctx context.Context, db sqlc.DBTX, appointmentStatus pgtype.Text) ([]sqlc.ListClientPurchasesRow, error)
}

type ClientReadStore struct {
	queries ClientReadQueries
	db      sqlc.DBTX
}

func NewClientReadStore(queries ClientReadQueries, db sqlc.DBTX) *ClientReadStore {
	return &ClientReadStore{queries: queries, db: db}
}

func (r *ClientReadStore) ListPaidByVendor(ctx context.Context, vendorID uuid.UUID) ([]queries.ClientView, error) {
	rows, err := r.queries.ListVendorClientPurchases(ctx, r.db, vendorID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list vendor clients", err)
	}

	g := newClientGrouper(len(rows))
	for _, row := range rows {
		c := g.client(row.ClientID, func() queries.ClientView {
			return queries.ClientView{
				ID:        row.ClientID,
				Name:      row.Name,
				Email:     row.Email,
				Phone:     row.Phone,
				CreatedAt: row.ClientCreatedAt.Time,
			}
		})
		c.Purchases = append(c.Purchases, queries.PurchaseView{
			ID:                row.PurchaseID,
			ServiceName:       row.ServiceName,
			ServicePrice:      row.ServicePrice,
			CommissionAmount:  row.CommissionAmount,
			PaymentStatus:     row.PaymentStatus,
			AppointmentDate:   pgconv.TimePtrFromPgtype(row.AppointmentDate),
			AppointmentStatus: row.AppointmentStatus,
			CreatedAt:         row.PurchaseCreatedAt.Time,
		})
	}
	return g.result(), nil
}

func (r *ClientReadStore) ListWithVendor(ctx context.Context, status *purchase.AppointmentStatus) ([]queries.ClientView, error) {
	var filter pgtype.Text
	if status != nil {
		filter = pgconv.StringToPgtype(string(*status))
	}

	rows, err := r.queries.ListClientPurchases(ctx, r.db, filter)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list clients", err)
	}

	g := newClientGrouper(len(rows))
	for _, row := range rows {
		c := g.client(row.ClientID, func() queries.ClientView {
			vendorID := row.VendorID
			return queries.ClientView{
				ID:         row.ClientID,
				Name:       row.Name,
				Email:      row.Email,
				Phone:      row.Phone,
				VendorID:   &vendorID,
				VendorName: row.VendorName,
				CreatedAt:  row.ClientCreatedAt.Time,
			}
		})
		c.Purchases = append(c.Purchases, queries.PurchaseView{
			ID:                row.PurchaseID,
			ServiceName:       row.ServiceName,
			ServicePrice:      row.ServicePrice,
			CommissionAmount:  row.CommissionAmount,
			PaymentStatus:     row.PaymentStatus,
			AppointmentDate:   pgconv.TimePtrFromPgtype(row.AppointmentDate),
			AppointmentStatus: row.AppointmentStatus,
			CreatedAt:         row.PurchaseCreatedAt.Time,
		})
	}
	return g.result(), nil
}

// clientGrouper folds client/purchase join rows into clients, keeping row order.
type clientGrouper struct {
	order []uuid.UUID
	byID  map[uuid.UUID]*queries.ClientView
}

func newClientGrouper(capacity int) *clientGrouper {
	return &clientGrouper{byID: make(map[uuid.UUID]*queries.ClientView, capacity)}
}

func (g *clientGrouper) client(id uuid.UUID, build func() queries.ClientView) *queries.ClientView {
	if c, ok := g.byID[id]; ok {
		return c
	}
	c := build()
	g.byID[id] = &c
	g.order = append(g.order, id)
	return &c
}

func (g *clientGrouper) result() []queries.ClientView {
	out := make([]queries.ClientView, 0, len(g.order))
	for _, id := range g.order {
		out = append(out, *g.byID[id])
	}
	return out
}
