// Package common contains constants and sentinel errors shared by the
// FitTrack client packages.
package common

const (
	// AuthTokenKey is the durable storage key holding the raw bearer token.
	AuthTokenKey = "authToken"

	// AuthTokenSavedAtKey records when AuthTokenKey was last written (RFC 3339).
	AuthTokenSavedAtKey = "authTokenSavedAt"

	// LoginRoute is the unauthenticated entry route.
	LoginRoute = "/login"
	// HomeRoute is where an authenticated user lands.
	HomeRoute = "/"

	AuthorizationHeaderName  = "Authorization"
	ContentTypeHeaderName    = "Content-Type"
	RequestedWithHeaderName  = "X-Requested-With"
	RequestIDHeaderName      = "X-Request-ID"
	RequestedWithHeaderValue = "XMLHttpRequest"
	JSONContentType          = "application/json"
)
