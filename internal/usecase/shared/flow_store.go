package shared

import (
	"context"

	"commission-tracker/internal/domain/purchase"
	"commission-tracker/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrFlowNotFound = errs.New("purchase flow not found")
	ErrFlowBusy     = errs.New("purchase flow step already in progress")
)

// FlowStore keeps live purchase flows. A flow is mutated only while its lease is held.
type FlowStore interface {
	Put(ctx context.Context, f *purchase.Flow) error
	// Acquire returns the flow and a release func that publishes its new state.
	// A flow whose lease is held elsewhere yields ErrFlowBusy.
	Acquire(ctx context.Context, id uuid.UUID) (*purchase.Flow, func(), error)
	// Peek returns the last published state and whether a step is running.
	Peek(ctx context.Context, id uuid.UUID) (purchase.Snapshot, bool, error)
}
