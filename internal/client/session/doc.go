// Package session owns the client's authentication state.
//
// # Components
//
//   - Store persists the bearer token in durable storage under a fixed key
//     (see common.AuthTokenKey). The token is stored as a raw string.
//   - Provider is the in-memory session shared by every screen of the CLI. It
//     is created once at startup, rehydrated from the Store, and passed
//     explicitly to whatever needs it.
//   - ParseClaims decodes JWT tokens, without verifying them, for display.
//
// # Errors
//
// Storage failures are reported as *StorageError and match ErrStorage with
// errors.Is. SetUser rejects values that are not objects with ErrInvalidUser.
//
// # Concurrency
//
// Provider methods are safe for concurrent use, but Login/Logout pipelines
// are not serialized against each other: the last writer wins.
package session
