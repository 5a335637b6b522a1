// Package integrity validates the infrastructure the reconciliation service depends on.
//
// # Checks Provided
//
//   - Structure: the storage bucket has the golden/ (statements) and system/ (ledger
//     snapshots) folders.
//   - Schema: every reconciliation table exists with the columns, and declared column
//     types, of its gorm model.
//
// # HTTP Endpoints
//
//   - GET /integrity : Runs all checks.
//   - GET /integrity/structure : Runs structure check (supports ?fix=true).
//   - GET /integrity/schema : Runs schema check.
package integrity
