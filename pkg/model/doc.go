// Package model declares the record types held by the arkhamd collections,
// together with their create inputs, partial-update patches, and search
// filters.
//
// Each record type follows the same shape:
//
//   - The record struct (Inmate, Staff, Treatment, Incident) with named,
//     typed fields, satisfying roster.Entity.
//   - A Create* input carrying every caller-settable field. Validate checks
//     it at the boundary; Record applies declared defaults and produces the
//     record handed to the collection.
//   - A *Patch with optional (pointer) fields. Apply merges only the
//     supplied fields into an existing record; the record ID is never
//     touched.
//   - A *Filter whose Predicate composes the supplied per-field rules
//     conjunctively. Free-text fields match by case-insensitive substring,
//     categorical fields by case-insensitive equality, and absent filters
//     do not narrow.
//
// Validation here is the defense at the request boundary: collections assume
// well-formed records and perform no independent field checking.
package model
