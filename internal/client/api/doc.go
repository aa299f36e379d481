// Package api is the FitTrack REST client.
//
// Every request goes through the same pipeline:
//
//  1. the body of POST/PUT calls is converted to JSON values and HTML-escaped
//     with package sanitize (responses are returned as received);
//  2. the request interceptor sets default headers, the default
//     authorization, per-request headers and finally the bearer token found
//     in the token store;
//  3. the response interceptor treats every 401 as the end of the session:
//     the stored token and the default authorization are dropped and the
//     Navigator is sent to the login route;
//  4. failures are normalised to *APIError: the HTTP status for server
//     errors, StatusNetworkError (0) when no response arrived and
//     StatusUnexpectedError (-1) when the request could not be built.
//
// Requests are bounded by DefaultTimeout unless the client is built with
// WithTimeout.
package api
