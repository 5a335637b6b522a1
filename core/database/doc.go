// Package database handles database connections and schema inspection.
//
// It wraps GORM to configure MySQL (production) or SQLite (local runs and tests)
// connections from the application's configuration.
//
// # Connect
//
// Connect opens and pings the configured database. SQLite connections are limited to a
// single open connection so that in-memory databases stay visible across queries and the
// reconciliation transaction never races another writer.
//
// # Schema Inspection
//
// GetTableColumns and MissingColumns back the schema integrity check, which verifies that
// the reconciliation tables consumed by reporting tooling have the expected columns.
//
// # Usage
//
//	db, err := database.Connect(cfg.Database)
//	if err != nil {
//	    log.Fatal("Database connection failed", err)
//	}
//
//	missing, err := database.MissingColumns(db, "reconciliation_events", []string{"run_id"})
package database
