package store

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"sync"
	"time"
)

// Memory is an in-process collection backed by a mutex-guarded map. It
// reproduces the portal's mock-service contract: a fixed simulated latency
// per operation (cancellable through the context), shallow copies on every
// read so callers never alias the stored record, and a sequence counter
// for identifiers instead of the max+1 scan the mock used.
type Memory[T any, PT Ptr[T]] struct {
	mu      sync.RWMutex
	items   map[uint]T
	nextID  uint
	latency time.Duration
	clock   func() time.Time
}

// NewMemory constructs an empty in-memory collection.
func NewMemory[T any, PT Ptr[T]](latency time.Duration) *Memory[T, PT] {
	return &Memory[T, PT]{
		items:   make(map[uint]T),
		latency: latency,
		clock:   time.Now,
	}
}

// SetLatency changes the simulated per-operation delay.
func (m *Memory[T, PT]) SetLatency(d time.Duration) {
	m.mu.Lock()
	m.latency = d
	m.mu.Unlock()
}

// SetClock overrides the timestamp source. Intended for tests.
func (m *Memory[T, PT]) SetClock(clock func() time.Time) {
	m.mu.Lock()
	m.clock = clock
	m.mu.Unlock()
}

func (m *Memory[T, PT]) wait(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	m.mu.RLock()
	d := m.latency
	m.mu.RUnlock()
	if d <= 0 {
		return nil
	}
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-timer.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (m *Memory[T, PT]) GetAll(ctx context.Context) ([]PT, error) {
	if err := m.wait(ctx); err != nil {
		return nil, err
	}
	m.mu.RLock()
	defer m.mu.RUnlock()

	ids := make([]uint, 0, len(m.items))
	for id := range m.items {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	out := make([]PT, 0, len(ids))
	for _, id := range ids {
		rec := m.items[id]
		out = append(out, PT(&rec))
	}
	return out, nil
}

func (m *Memory[T, PT]) GetByID(ctx context.Context, id uint) (PT, error) {
	if err := m.wait(ctx); err != nil {
		return nil, err
	}
	m.mu.RLock()
	defer m.mu.RUnlock()

	rec, ok := m.items[id]
	if !ok {
		return nil, fmt.Errorf("record %d: %w", id, ErrNotFound)
	}
	return PT(&rec), nil
}

func (m *Memory[T, PT]) Create(ctx context.Context, rec PT) (PT, error) {
	if err := m.wait(ctx); err != nil {
		return nil, err
	}
	m.mu.Lock()
	defer m.mu.Unlock()

	m.nextID++
	rec.SetID(m.nextID)
	rec.Stamp(m.clock())
	m.items[m.nextID] = *rec

	stored := m.items[m.nextID]
	return PT(&stored), nil
}

func (m *Memory[T, PT]) Update(ctx context.Context, id uint, patch map[string]any) (PT, error) {
	if err := m.wait(ctx); err != nil {
		return nil, err
	}
	m.mu.Lock()
	defer m.mu.Unlock()

	rec, ok := m.items[id]
	if !ok {
		return nil, fmt.Errorf("record %d: %w", id, ErrNotFound)
	}

	merged := rec
	p := PT(&merged)
	if err := mergePatch(p, patch); err != nil {
		return nil, fmt.Errorf("apply patch: %w", err)
	}
	p.SetID(id)
	p.Stamp(m.clock())
	m.items[id] = merged

	out := merged
	return PT(&out), nil
}

func (m *Memory[T, PT]) Delete(ctx context.Context, id uint) (PT, error) {
	if err := m.wait(ctx); err != nil {
		return nil, err
	}
	m.mu.Lock()
	defer m.mu.Unlock()

	rec, ok := m.items[id]
	if !ok {
		return nil, fmt.Errorf("record %d: %w", id, ErrNotFound)
	}
	delete(m.items, id)
	return PT(&rec), nil
}

// mergePatch applies a shallow JSON merge onto dst: only keys present in
// the patch are written, and server-assigned keys are stripped first.
func mergePatch(dst any, patch map[string]any) error {
	clean := make(map[string]any, len(patch))
	for k, v := range patch {
		switch k {
		case "id", "createdAt", "updatedAt":
			continue
		}
		clean[k] = v
	}
	raw, err := json.Marshal(clean)
	if err != nil {
		return err
	}
	return json.Unmarshal(raw, dst)
}
