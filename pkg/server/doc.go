// Package server exposes the asylum records collections over HTTP.
//
// The server owns one Collection per record type plus the registry that
// groups them for state management. Collections do no locking of their own,
// so every handler that touches collection state runs under the server's
// single serialization mutex; handlers are the only writers.
//
// Routes follow REST conventions per resource (list, get, create, patch,
// put, delete) plus search endpoints that accept expression queries, a
// statistics endpoint, and state management under /state.
package server
