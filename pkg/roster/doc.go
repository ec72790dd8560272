// Package roster provides in-memory ordered record collections with CRUD
// operations for the arkhamd records server.
//
// A Collection owns an ordered sequence of typed records, assigns monotonic
// integer identifiers, and exposes create/read/update/delete/search
// operations. It supports:
//
//   - Insertion-order iteration and search
//   - Monotonic ID allocation (IDs are never reused, even after deletion)
//   - Field-merge updates that leave the record ID untouched
//   - Seed data initialization and state reset for test isolation
//
// Core Types:
//
//   - Collection: an ordered collection of one record type (e.g., inmates)
//   - Registry: a named view over all collections (overview, reset, counts)
//   - Observer: hooks for operation metrics
//
// Concurrency:
//
// Collection performs no internal locking. Every operation is a single
// synchronous step over the collection, and callers must serialize access —
// the HTTP layer holds one mutex around every Collection call. The Registry
// guards only its own resource table.
//
// Usage:
//
//	inmates, err := roster.NewCollection("inmates", seed)
//	rec := inmates.Create(model.Inmate{Name: "Edward Nygma"})
//	rec, err = inmates.Get(rec.ID)
//	active := inmates.Select(func(in model.Inmate) bool { return in.IsActive })
//	rec, err = inmates.Update(rec.ID, patch.Apply)
//	removed, err := inmates.Delete(rec.ID)
package roster
