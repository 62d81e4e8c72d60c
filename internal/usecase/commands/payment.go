package commands

import (
	"context"
	"log/slog"

	"commission-tracker/internal/infra"
	"commission-tracker/internal/pkg/errs"
	"commission-tracker/internal/pkg/metrics"
	"commission-tracker/internal/usecase/shared"

	"github.com/google/uuid"
)

type PaymentCommands interface {
	HandleEvent(ctx context.Context, event PaymentEvent) error
}

type paymentCommandsImpl struct {
	uow shared.UnitOfWork
}

func NewPaymentCommands(uow shared.UnitOfWork) PaymentCommands {
	return &paymentCommandsImpl{uow: uow}
}

// HandleEvent applies a verified gateway event. Redelivered events are no-ops.
func (p *paymentCommandsImpl) HandleEvent(ctx context.Context, event PaymentEvent) error {
	metrics.RecordPaymentEvent(string(event.Kind))

	if event.Kind == PaymentIgnored {
		slog.Debug("payment event ignored", "event_id", event.ID, "type", event.Type)
		return nil
	}
	if event.PurchaseID == uuid.Nil {
		slog.Warn("payment event without purchase reference", "event_id", event.ID, "type", event.Type)
		return nil
	}

	var err error
	switch event.Kind {
	case PaymentSucceeded:
		err = p.markPaid(ctx, event)
	case PaymentFailed:
		err = p.markFailed(ctx, event)
	}
	if err != nil {
		return errs.Mark(err, ErrStoreFailure)
	}
	return nil
}

func (p *paymentCommandsImpl) markPaid(ctx context.Context, event PaymentEvent) error {
	return p.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		snap, err := tx.Reads().PurchaseByID(ctx, event.PurchaseID)
		if err != nil {
			if infra.IsNotFound(err) {
				slog.Warn("payment event for unknown purchase", "event_id", event.ID, "purchase_id", event.PurchaseID)
				return nil
			}
			return err
		}

		changed, err := tx.Purchases().MarkPaid(ctx, tx.DB(), snap.ID, event.SessionID)
		if err != nil {
			return err
		}

		// Normally already consumed at commit; a conflict here is expected.
		if snap.SerialID != nil {
			if err := tx.Serials().MarkConsumed(ctx, tx.DB(), *snap.SerialID); err != nil && !infra.IsKind(err, infra.KindConflict) {
				return err
			}
		}

		if changed {
			slog.Info("purchase paid", "purchase_id", snap.ID, "session_id", event.SessionID)
		}
		return nil
	})
}

func (p *paymentCommandsImpl) markFailed(ctx context.Context, event PaymentEvent) error {
	return p.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		snap, err := tx.Reads().PurchaseByID(ctx, event.PurchaseID)
		if err != nil {
			if infra.IsNotFound(err) {
				slog.Warn("payment event for unknown purchase", "event_id", event.ID, "purchase_id", event.PurchaseID)
				return nil
			}
			return err
		}

		// Only the session recorded on the purchase can fail it. A replaced or
		// never recorded session expiring leaves the purchase pending.
		if event.SessionID != "" && (snap.PaymentIntentID == nil || *snap.PaymentIntentID != event.SessionID) {
			slog.Info("stale checkout session event", "purchase_id", snap.ID, "session_id", event.SessionID)
			return nil
		}

		changed, err := tx.Purchases().MarkPaymentFailed(ctx, tx.DB(), snap.ID)
		if err != nil {
			return err
		}
		if changed {
			slog.Info("purchase payment failed", "purchase_id", snap.ID, "session_id", event.SessionID)
		}
		return nil
	})
}
