package domain

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/mlaskowski7/AllegroLikeByt/internal/platform/logger"
	"github.com/mlaskowski7/AllegroLikeByt/internal/store"
)

// entity constrains registry members to identifiable pointer types.
type entity interface {
	comparable
	ID() uuid.UUID
}

// Registry is the extent of one entity type: every live instance, in
// insertion order. Constructors register instances; Delete-style operations
// unregister them. Persist/Restore move the extent to and from the backing
// store, one location per extent name.
type Registry[T entity] struct {
	name    string
	log     *logger.Logger
	store   store.Store
	encode  func(T) ([]byte, error)
	decode  func([]byte) (T, error)
	members []T
	// pending holds already-decoded members while a Restore is in flight so
	// self-referencing records (Category parents) can resolve against them.
	pending []T
}

func newRegistry[T entity](name string, st store.Store, baseLog *logger.Logger, encode func(T) ([]byte, error), decode func([]byte) (T, error)) *Registry[T] {
	return &Registry[T]{
		name:   name,
		log:    baseLog.With("registry", name),
		store:  st,
		encode: encode,
		decode: decode,
	}
}

func (r *Registry[T]) register(e T) {
	r.members = append(r.members, e)
}

func (r *Registry[T]) unregister(e T) {
	for i, m := range r.members {
		if m == e {
			r.members = append(r.members[:i], r.members[i+1:]...)
			return
		}
	}
}

// Snapshot returns an independent copy of the current members. Mutating the
// returned slice never affects the registry.
func (r *Registry[T]) Snapshot() []T {
	out := make([]T, len(r.members))
	copy(out, r.members)
	return out
}

func (r *Registry[T]) Len() int { return len(r.members) }

// Contains reports whether e is currently registered.
func (r *Registry[T]) Contains(e T) bool {
	for _, m := range r.members {
		if m == e {
			return true
		}
	}
	return false
}

func (r *Registry[T]) byID(id uuid.UUID) (T, bool) {
	for _, m := range r.members {
		if m.ID() == id {
			return m, true
		}
	}
	for _, m := range r.pending {
		if m.ID() == id {
			return m, true
		}
	}
	var zero T
	return zero, false
}

// Reset clears all members. Used for test isolation and restart simulation.
func (r *Registry[T]) Reset() {
	r.members = nil
}

// Persist serializes the current members to the backing store.
func (r *Registry[T]) Persist(ctx context.Context) error {
	records := make([][]byte, len(r.members))
	for i, m := range r.members {
		rec, err := r.encode(m)
		if err != nil {
			return NewError(CodeInternal, "registry.persist", "encode "+r.name+" member", err)
		}
		records[i] = rec
	}
	if err := r.store.WriteRecords(ctx, r.name, records); err != nil {
		return NewError(CodeInternal, "registry.persist", "write "+r.name+" extent", err)
	}
	r.log.Info("extent persisted", "members", len(records))
	return nil
}

// Restore replaces the in-memory members with the deserialized collection.
// On any failure the prior members are left untouched. Cross-type references
// are resolved against the registries of already-restored dependency types;
// restore order is the caller's responsibility.
func (r *Registry[T]) Restore(ctx context.Context) error {
	records, err := r.store.ReadRecords(ctx, r.name)
	if err != nil {
		switch {
		case errors.Is(err, store.ErrNotFound):
			return NewError(CodeNotFound, "registry.restore", "no persisted "+r.name+" extent", err)
		case errors.Is(err, store.ErrCorrupt):
			return NewError(CodeCorruptData, "registry.restore", "corrupt "+r.name+" extent", err)
		default:
			return NewError(CodeInternal, "registry.restore", "read "+r.name+" extent", err)
		}
	}
	next := make([]T, 0, len(records))
	r.pending = next
	defer func() { r.pending = nil }()
	for _, rec := range records {
		m, err := r.decode(rec)
		if err != nil {
			return NewError(CodeCorruptData, "registry.restore", "decode "+r.name+" record", err)
		}
		next = append(next, m)
		r.pending = next
	}
	r.members = next
	r.log.Info("extent restored", "members", len(next))
	return nil
}
