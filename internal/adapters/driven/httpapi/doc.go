// Package httpapi talks to the Workly REST backend.
//
// AuthGateway calls the unauthenticated /Auth endpoints. Client calls
// everything else with the session's bearer token and, when the backend
// answers 401 or 403, refreshes the session once and retries the request.
package httpapi
