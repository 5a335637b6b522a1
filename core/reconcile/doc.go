// Package reconcile is the cross-correlation engine.
//
// It matches golden reference holdings against system holdings by identity key
// (ISIN, then folio number, then symbol), classifies each pair as EXACT,
// WITHIN_TOLERANCE, MISMATCH, MISSING_SYSTEM, MISSING_GOLDEN or NOT_APPLICABLE,
// assigns a severity band from the absolute INR difference and drafts suspense
// rows for discrepancies.
//
// The package performs no I/O. Loading holdings and persisting results is done
// by feature/reconciliation.
package reconcile
