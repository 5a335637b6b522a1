// Package middleware contains HTTP middleware for the Fiber application.
//
// # Components
//
//   - auth: API key validation (X-API-Key) protecting the reconciliation API.
//   - rayid: assigns a request id (RayID), stored in locals and echoed in X-Ray-ID, so
//     request logs and the reconciliation run they trigger can be correlated.
//
// Both are registered globally in cmd/start.go; rayid must come first.
package middleware
