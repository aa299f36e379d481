// Package cli provides the interactive FitTrack command-line client.
//
// It wires configuration, durable token storage, the REST client, the
// session provider and the application services behind a small REPL.
// At start the stored session is rehydrated; when the backend rejects the
// token at any point the client falls back to the login screen.
//
// Commands:
//   - signup / login / logout / whoami
//   - dashboard: statistics from /api/stats
//   - goals / addgoal / delgoal
//
// The REPL is started via App.Run(ctx), which blocks until the user exits.
package cli
