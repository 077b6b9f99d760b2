// Package views owns every mounted view instance. A view lives until it is
// unmounted or sits idle past the registry's TTL.
package views

import (
	"context"
	"sync"
	"time"

	"orusconsole/internal/errors"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type Kind string

const (
	KindCustomerList   Kind = "customer-list"
	KindMerchantList   Kind = "merchant-list"
	KindMetrics        Kind = "metrics"
	KindCustomerDetail Kind = "customer-detail"
	KindMerchantDetail Kind = "merchant-detail"
)

type entry struct {
	kind     Kind
	view     interface{}
	closer   func()
	lastSeen time.Time
}

type Registry struct {
	ttl    time.Duration
	logger *zap.Logger
	now    func() time.Time

	mu      sync.Mutex
	entries map[string]*entry
}

func NewRegistry(ttl time.Duration, logger *zap.Logger) *Registry {
	return &Registry{
		ttl:     ttl,
		logger:  logger,
		now:     time.Now,
		entries: make(map[string]*entry),
	}
}

// Add mounts a view and returns its id. closer, if set, runs on unmount or
// eviction.
func (r *Registry) Add(kind Kind, view interface{}, closer func()) string {
	id := uuid.NewString()
	r.mu.Lock()
	r.entries[id] = &entry{kind: kind, view: view, closer: closer, lastSeen: r.now()}
	r.mu.Unlock()

	r.logger.Debug("view mounted", zap.String("view_id", id), zap.String("kind", string(kind)))
	return id
}

// Get returns the view mounted under id if it is a T, and marks it used.
func Get[T any](r *Registry, id string) (T, error) {
	var zero T
	r.mu.Lock()
	defer r.mu.Unlock()

	e, ok := r.entries[id]
	if !ok {
		return zero, errors.ErrViewNotFound
	}
	v, ok := e.view.(T)
	if !ok {
		return zero, errors.ErrViewNotFound
	}
	e.lastSeen = r.now()
	return v, nil
}

// Remove unmounts a view.
func (r *Registry) Remove(id string) error {
	r.mu.Lock()
	e, ok := r.entries[id]
	delete(r.entries, id)
	r.mu.Unlock()

	if !ok {
		return errors.ErrViewNotFound
	}
	if e.closer != nil {
		e.closer()
	}
	r.logger.Debug("view unmounted", zap.String("view_id", id), zap.String("kind", string(e.kind)))
	return nil
}

// Sweep evicts views idle for longer than the TTL and returns how many.
func (r *Registry) Sweep() int {
	cutoff := r.now().Add(-r.ttl)

	r.mu.Lock()
	var expired []*entry
	for id, e := range r.entries {
		if e.lastSeen.Before(cutoff) {
			expired = append(expired, e)
			delete(r.entries, id)
		}
	}
	r.mu.Unlock()

	for _, e := range expired {
		if e.closer != nil {
			e.closer()
		}
	}
	if len(expired) > 0 {
		r.logger.Info("evicted idle views", zap.Int("count", len(expired)))
	}
	return len(expired)
}

// Run sweeps periodically until ctx ends, then unmounts everything.
func (r *Registry) Run(ctx context.Context) {
	interval := r.ttl / 2
	if interval < time.Second {
		interval = time.Second
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			r.Close()
			return
		case <-ticker.C:
			r.Sweep()
		}
	}
}

// Close unmounts every view.
func (r *Registry) Close() {
	r.mu.Lock()
	entries := r.entries
	r.entries = make(map[string]*entry)
	r.mu.Unlock()

	for _, e := range entries {
		if e.closer != nil {
			e.closer()
		}
	}
}

func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.entries)
}
