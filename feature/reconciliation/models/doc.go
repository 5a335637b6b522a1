// Package models contains reconciliation events and suspense rows. Both tables are the
// durable contract read by reporting tools.
package models
