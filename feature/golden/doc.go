// Package golden stores golden references: point-in-time statements from external
// authoritative sources (depositories, registrars, brokers, banks).
//
// Statements are JSON documents in object storage. Ingest parses one into a
// GoldenReference and its GoldenHolding rows inside a single transaction; both
// tables are append-only. Holdings are converted to INR through their exchange rate,
// and a foreign holding without a rate keeps an undefined INR value instead of
// assuming parity.
//
// Service.Holdings is the golden holdings provider used by reconciliation runs.
// Results are cached per reference and asset class.
package golden
