// Package records implements the CRUD convention shared by every entity
// type: an ordered collection of typed records stored as one JSON array
// under a single key-value entry. Each write replaces the whole collection,
// so a mutex per collection serializes every read-modify-write: at most one
// in-flight write per storage key, which closes the lost-update window the
// pattern would otherwise have.
package records

import (
	"context"
	"sync"
	"time"

	"github.com/visitdesk/visitdesk/internal/common"
	"github.com/visitdesk/visitdesk/internal/ids"
	"github.com/visitdesk/visitdesk/internal/kvstore"
	"github.com/visitdesk/visitdesk/internal/obs"
)

// Stampable is what a record must expose so the store can assign identity
// and lifecycle timestamps. models.Meta provides it by embedding.
type Stampable interface {
	RecordID() string
	StampCreated(id string, at time.Time)
	StampUpdated(at time.Time)
}

type ptr[T any] interface {
	*T
	Stampable
}

// Collection is the record store for one entity type. The entity name
// doubles as the storage key, so collections of different types can never
// clobber each other.
type Collection[T any, PT ptr[T]] struct {
	entity string
	store  *kvstore.Store

	mu    sync.Mutex
	now   func() time.Time
	newID func() string
}

func NewCollection[T any, PT ptr[T]](store *kvstore.Store, entity string) *Collection[T, PT] {
	return &Collection[T, PT]{
		entity: entity,
		store:  store,
		now:    time.Now,
		newID:  ids.New,
	}
}

// WithClock substitutes the time source. Test hook: lets updatedAt visibly
// advance past createdAt without sleeping.
func (c *Collection[T, PT]) WithClock(now func() time.Time) *Collection[T, PT] {
	c.now = now
	return c
}

// Entity returns the entity name / storage key.
func (c *Collection[T, PT]) Entity() string { return c.entity }

// List returns the full collection, empty when the key is absent or
// unreadable.
func (c *Collection[T, PT]) List(ctx context.Context) []T {
	return c.load(ctx)
}

// Find returns the first record matching pred.
func (c *Collection[T, PT]) Find(ctx context.Context, pred func(T) bool) (T, bool) {
	for _, item := range c.load(ctx) {
		if pred(item) {
			return item, true
		}
	}
	var zero T
	return zero, false
}

// Get returns the record with the given id.
func (c *Collection[T, PT]) Get(ctx context.Context, id string) (T, bool) {
	return c.Find(ctx, func(item T) bool {
		it := item
		return PT(&it).RecordID() == id
	})
}

// Filter returns every record matching pred.
func (c *Collection[T, PT]) Filter(ctx context.Context, pred func(T) bool) []T {
	out := []T{}
	for _, item := range c.load(ctx) {
		if pred(item) {
			out = append(out, item)
		}
	}
	return out
}

// Create stamps item with a generated id and creation time, appends it and
// writes the whole collection back. common.ErrStorage reports a refused
// write-back; the collection is then unchanged.
func (c *Collection[T, PT]) Create(ctx context.Context, item T) (T, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	items := c.load(ctx)
	PT(&item).StampCreated(c.newID(), c.now().UTC())
	items = append(items, item)

	if !c.store.Set(ctx, c.entity, items) {
		var zero T
		return zero, common.ErrStorage
	}
	obs.RecordOp(c.entity, "create")
	return item, nil
}

// Update locates the record by id, applies the caller's merge, stamps
// updatedAt and writes the collection back. common.ErrNotFound when no
// record carries the id.
func (c *Collection[T, PT]) Update(ctx context.Context, id string, apply func(PT)) (T, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	var zero T
	items := c.load(ctx)
	for i := range items {
		p := PT(&items[i])
		if p.RecordID() != id {
			continue
		}
		apply(p)
		p.StampUpdated(c.now().UTC())
		if !c.store.Set(ctx, c.entity, items) {
			return zero, common.ErrStorage
		}
		obs.RecordOp(c.entity, "update")
		return items[i], nil
	}
	return zero, common.ErrNotFound
}

// Delete removes the record with the given id. Removal is idempotent:
// deleting an absent id still succeeds. Callers needing "did it exist" must
// check before deleting.
func (c *Collection[T, PT]) Delete(ctx context.Context, id string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	items := c.load(ctx)
	kept := items[:0:0]
	for _, item := range items {
		it := item
		if PT(&it).RecordID() != id {
			kept = append(kept, item)
		}
	}
	if kept == nil {
		kept = []T{}
	}

	if !c.store.Set(ctx, c.entity, kept) {
		return common.ErrStorage
	}
	obs.RecordOp(c.entity, "delete")
	return nil
}

func (c *Collection[T, PT]) load(ctx context.Context) []T {
	var items []T
	c.store.Get(ctx, c.entity, &items)
	if items == nil {
		items = []T{}
	}
	return items
}
