// Package suspense manages suspense entries, the discrepancies parked by reconciliation
// runs until someone resolves or writes them off.
package suspense
