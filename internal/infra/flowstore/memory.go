package flowstore

import (
	"context"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"

	"commission-tracker/internal/domain/purchase"
	"commission-tracker/internal/pkg/clock"
	"commission-tracker/internal/usecase/shared"

	"github.com/google/uuid"
)

type entry struct {
	lease     sync.Mutex
	flow      *purchase.Flow
	busy      atomic.Bool
	removed   bool // guarded by lease
	published atomic.Pointer[purchase.Snapshot]
	touchedAt atomic.Int64
}

func (e *entry) publish(now time.Time) {
	snap := e.flow.Snapshot()
	e.published.Store(&snap)
	e.touchedAt.Store(now.UnixNano())
}

func (e *entry) expired(now time.Time, ttl time.Duration) bool {
	return now.Sub(time.Unix(0, e.touchedAt.Load())) > ttl
}

// MemoryStore keeps flows in process memory. Each flow has its own lease so
// steps on different flows never wait on each other.
type MemoryStore struct {
	mu    sync.RWMutex
	flows map[uuid.UUID]*entry
	ttl   time.Duration
	clock clock.Clock
}

var _ shared.FlowStore = (*MemoryStore)(nil)

func NewMemoryStore(ttl time.Duration, clk clock.Clock) *MemoryStore {
	return &MemoryStore{
		flows: make(map[uuid.UUID]*entry),
		ttl:   ttl,
		clock: clk,
	}
}

func (m *MemoryStore) Put(_ context.Context, f *purchase.Flow) error {
	e := &entry{flow: f}
	e.publish(m.clock.Now())

	m.mu.Lock()
	m.flows[f.ID()] = e
	m.mu.Unlock()
	return nil
}

func (m *MemoryStore) Acquire(_ context.Context, id uuid.UUID) (*purchase.Flow, func(), error) {
	e, ok := m.lookup(id)
	if !ok {
		return nil, nil, shared.ErrFlowNotFound
	}
	if !e.lease.TryLock() {
		return nil, nil, shared.ErrFlowBusy
	}
	if e.removed {
		e.lease.Unlock()
		return nil, nil, shared.ErrFlowNotFound
	}
	e.busy.Store(true)

	var once sync.Once
	release := func() {
		once.Do(func() {
			e.publish(m.clock.Now())
			e.busy.Store(false)
			e.lease.Unlock()
		})
	}
	return e.flow, release, nil
}

func (m *MemoryStore) Peek(_ context.Context, id uuid.UUID) (purchase.Snapshot, bool, error) {
	e, ok := m.lookup(id)
	if !ok {
		return purchase.Snapshot{}, false, shared.ErrFlowNotFound
	}
	return *e.published.Load(), e.busy.Load(), nil
}

func (m *MemoryStore) lookup(id uuid.UUID) (*entry, bool) {
	m.mu.RLock()
	e, ok := m.flows[id]
	m.mu.RUnlock()
	if !ok || e.expired(m.clock.Now(), m.ttl) {
		return nil, false
	}
	return e, true
}

// Sweep drops idle flows older than the TTL. Leased flows are skipped.
func (m *MemoryStore) Sweep() int {
	now := m.clock.Now()

	m.mu.Lock()
	defer m.mu.Unlock()

	removed := 0
	for id, e := range m.flows {
		if !e.expired(now, m.ttl) || !e.lease.TryLock() {
			continue
		}
		e.removed = true
		e.lease.Unlock()
		delete(m.flows, id)
		removed++
	}
	return removed
}

func (m *MemoryStore) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.flows)
}

// Run sweeps every interval until ctx is done.
func (m *MemoryStore) Run(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if n := m.Sweep(); n > 0 {
				slog.Debug("expired purchase flows swept", "count", n, "remaining", m.Len())
			}
		}
	}
}
