package shipping_test

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"sync"

	"shiphub/internal/apperr"
	"shiphub/internal/domain"
	"shiphub/internal/ports/requesttx"
)

// memStore is an in-memory request store with the same locking and version
// semantics as the Postgres one.
type memStore struct {
	mu   sync.Mutex
	docs map[string]*domain.ShippingRequest
}

func newMemStore() *memStore {
	return &memStore{docs: map[string]*domain.ShippingRequest{}}
}

func clone(r *domain.ShippingRequest) *domain.ShippingRequest {
	raw, err := json.Marshal(r)
	if err != nil {
		panic(err)
	}
	var out domain.ShippingRequest
	if err := json.Unmarshal(raw, &out); err != nil {
		panic(err)
	}
	return &out
}

func (m *memStore) Create(_ context.Context, r *domain.ShippingRequest) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.docs[r.ID]; ok {
		return apperr.ErrConflict
	}
	r.Version = 1
	m.docs[r.ID] = clone(r)
	return nil
}

func (m *memStore) Get(_ context.Context, id string) (*domain.ShippingRequest, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	r, ok := m.docs[id]
	if !ok {
		return nil, nil
	}
	return clone(r), nil
}

func (m *memStore) List(_ context.Context, f domain.RequestFilter) ([]domain.ShippingRequest, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []domain.ShippingRequest
	for _, r := range m.docs {
		if f.UserID != "" && r.UserID != f.UserID {
			continue
		}
		if f.RequestStatus != "" && r.RequestStatus != f.RequestStatus {
			continue
		}
		out = append(out, *clone(r))
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (m *memStore) ListVisible(_ context.Context, companyID string, _, _ *int) ([]domain.ShippingRequest, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []domain.ShippingRequest
	for _, r := range m.docs {
		if r.VisibleTo(companyID) {
			out = append(out, *clone(r))
		}
	}
	return out, nil
}

func (m *memStore) AppendActivity(_ context.Context, id string, e domain.ActivityEntry) (*domain.ShippingRequest, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	r, ok := m.docs[id]
	if !ok {
		return nil, nil
	}
	r.ActivityHistory = append(r.ActivityHistory, e)
	r.UpdatedAt = e.Timestamp
	r.Version++
	return clone(r), nil
}

func (m *memStore) WithTx(_ context.Context, fn func(tx requesttx.Repository) error) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	tx := &memTx{store: m, pending: map[string]*domain.ShippingRequest{}}
	if err := fn(tx); err != nil {
		return err
	}
	for id, r := range tx.pending {
		m.docs[id] = r
	}
	return nil
}

type memTx struct {
	store   *memStore
	pending map[string]*domain.ShippingRequest
}

func (t *memTx) GetForUpdate(_ context.Context, id string) (*domain.ShippingRequest, error) {
	if r, ok := t.pending[id]; ok {
		return clone(r), nil
	}
	r, ok := t.store.docs[id]
	if !ok {
		return nil, nil
	}
	return clone(r), nil
}

func (t *memTx) Save(_ context.Context, r *domain.ShippingRequest) error {
	cur, ok := t.pending[r.ID]
	if !ok {
		cur, ok = t.store.docs[r.ID]
	}
	if !ok || cur.Version != r.Version {
		return fmt.Errorf("request %s: %w", r.ID, apperr.ErrConflict)
	}
	r.Version++
	t.pending[r.ID] = clone(r)
	return nil
}

// stubTx is a transaction view driven by function fields.
type stubTx struct {
	getFn  func(ctx context.Context, id string) (*domain.ShippingRequest, error)
	saveFn func(ctx context.Context, r *domain.ShippingRequest) error
	saves  int
}

func (s *stubTx) GetForUpdate(ctx context.Context, id string) (*domain.ShippingRequest, error) {
	if s.getFn == nil {
		return nil, nil
	}
	return s.getFn(ctx, id)
}

func (s *stubTx) Save(ctx context.Context, r *domain.ShippingRequest) error {
	s.saves++
	if s.saveFn == nil {
		r.Version++
		return nil
	}
	return s.saveFn(ctx, r)
}

type companyDir map[string]*domain.Company

func (d companyDir) Get(_ context.Context, id string) (*domain.Company, error) {
	if id == "broken" {
		return nil, errors.New("company store down")
	}
	return d[id], nil
}

type recordingPublisher struct {
	mu     sync.Mutex
	events []domain.RequestEvent
	err    error
}

func (p *recordingPublisher) Publish(_ context.Context, ev domain.RequestEvent) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.events = append(p.events, ev)
	return p.err
}

func (p *recordingPublisher) kinds() []string {
	p.mu.Lock()
	defer p.mu.Unlock()
	out := make([]string, 0, len(p.events))
	for _, ev := range p.events {
		out = append(out, ev.Kind)
	}
	return out
}
