// Package holdings provides the system side of a reconciliation: the positions the
// internal ledger believes a user holds.
//
// The ledger publishes one JSON snapshot per user, asset class and date under
// system/<user>/<ASSET_CLASS>/<YYYY-MM-DD>.json. StorageProvider reads them;
// StaticProvider serves fixed data for tests and tooling.
package holdings
