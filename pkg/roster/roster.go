package roster

import (
	"fmt"
)

// Entity is the contract every record type must satisfy. Records are value
// types; WithID returns a copy carrying the given identifier.
type Entity[T any] interface {
	EntityID() int64
	WithID(id int64) T
}

// Collection is an ordered, in-memory collection of records of a single type.
// Insertion order is preserved and is the iteration and search order.
//
// Collection does no locking of its own; see the package documentation for
// the serialization contract.
type Collection[T Entity[T]] struct {
	name   string
	items  []T
	seed   []T
	nextID int64
}

// NewCollection creates a collection pre-populated with seed records.
// Seed records without an ID are assigned one; duplicate seed IDs are
// rejected. The ID counter starts above the highest seed ID.
func NewCollection[T Entity[T]](name string, seed []T) (*Collection[T], error) {
	if name == "" {
		return nil, &ValidationError{Message: "collection name cannot be empty"}
	}

	c := &Collection[T]{
		name: name,
		seed: append([]T(nil), seed...),
	}
	if err := c.loadSeed(); err != nil {
		return nil, err
	}
	return c, nil
}

// loadSeed rebuilds the collection from its seed records.
func (c *Collection[T]) loadSeed() error {
	c.items = make([]T, 0, len(c.seed))
	c.nextID = 1

	seen := make(map[int64]struct{}, len(c.seed))
	for i, rec := range c.seed {
		id := rec.EntityID()
		if id < 0 {
			return &ValidationError{Message: fmt.Sprintf("seed record at index %d has negative id %d", i, id)}
		}
		if id == 0 {
			id = c.nextID
			rec = rec.WithID(id)
		}
		if _, dup := seen[id]; dup {
			return &ValidationError{Message: fmt.Sprintf("duplicate id %d in seed data at index %d", id, i)}
		}
		seen[id] = struct{}{}
		if id >= c.nextID {
			c.nextID = id + 1
		}
		c.items = append(c.items, rec)
	}
	return nil
}

// Name returns the collection name.
func (c *Collection[T]) Name() string {
	return c.name
}

// Count returns the number of records currently held.
func (c *Collection[T]) Count() int {
	return len(c.items)
}

// NextID returns the identifier the next Create call will assign.
func (c *Collection[T]) NextID() int64 {
	return c.nextID
}

// All returns every record in insertion order. The returned slice is a copy;
// mutating it does not affect the collection.
func (c *Collection[T]) All() []T {
	return append([]T(nil), c.items...)
}

// Get returns the record with the given ID, scanning in insertion order.
func (c *Collection[T]) Get(id int64) (T, error) {
	for _, rec := range c.items {
		if rec.EntityID() == id {
			return rec, nil
		}
	}
	var zero T
	return zero, &NotFoundError{Resource: c.name, ID: id}
}

// Select returns the records satisfying pred, in insertion order. A nil
// predicate selects everything.
func (c *Collection[T]) Select(pred func(T) bool) []T {
	if pred == nil {
		return c.All()
	}
	result := make([]T, 0, len(c.items))
	for _, rec := range c.items {
		if pred(rec) {
			result = append(result, rec)
		}
	}
	return result
}

// Create assigns the next identifier to rec, appends it to the collection,
// and returns the stored record. Identifiers are strictly increasing for the
// lifetime of the collection: deleting the record with the highest ID does
// not make that ID available again.
func (c *Collection[T]) Create(rec T) T {
	rec = rec.WithID(c.nextID)
	c.nextID++
	c.items = append(c.items, rec)
	return rec
}

// Update locates the record with the given ID and replaces it with the
// result of patch. The stored ID always wins: a patch that sets a different
// ID is overruled. Fields the patch leaves alone keep their prior values.
func (c *Collection[T]) Update(id int64, patch func(T) T) (T, error) {
	for i, rec := range c.items {
		if rec.EntityID() == id {
			updated := patch(rec).WithID(id)
			c.items[i] = updated
			return updated, nil
		}
	}
	var zero T
	return zero, &NotFoundError{Resource: c.name, ID: id}
}

// Delete removes the record with the given ID and returns it as
// confirmation. All other records keep their positions and identifiers.
func (c *Collection[T]) Delete(id int64) (T, error) {
	for i, rec := range c.items {
		if rec.EntityID() == id {
			c.items = append(c.items[:i], c.items[i+1:]...)
			return rec, nil
		}
	}
	var zero T
	return zero, &NotFoundError{Resource: c.name, ID: id}
}

// Reset restores the collection to its seed state, including the ID counter.
func (c *Collection[T]) Reset() {
	// Seed data was validated at construction; reloading cannot fail.
	_ = c.loadSeed()
}

// Clear removes all records but keeps the seed data for a later Reset.
// It returns the number of records removed. The ID counter is not rewound.
func (c *Collection[T]) Clear() int {
	n := len(c.items)
	c.items = c.items[:0]
	return n
}
