// Package storage is the client's durable key/value slot, the terminal
// counterpart of a browser's localStorage.
//
// Two implementations are provided: SQLite (persistent, used by the CLI) and
// Memory (process-local, used in tests and as a fallback).
package storage

import "context"

// Storage is a string key/value store. A missing key is not an error:
// GetItem reports it through the boolean.
type Storage interface {
	GetItem(ctx context.Context, key string) (string, bool, error)
	// SetItems writes all pairs atomically.
	SetItems(ctx context.Context, items map[string]string) error
	// RemoveItem deletes key; removing a missing key succeeds.
	RemoveItem(ctx context.Context, key string) error
}
