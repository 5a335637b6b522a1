// Package reconciliation orchestrates reconciliation runs.
//
// A run is keyed by (user, reconciliation date, asset class, golden reference). It loads
// golden holdings and system holdings, correlates them with core/reconcile and writes
// the resulting events and suspense rows in one transaction. Re-running a key
// soft-deletes the previous events of that key, so repeated runs never grow the live
// event count. Suspense rows that are still open are carried to the matching new event.
package reconciliation
