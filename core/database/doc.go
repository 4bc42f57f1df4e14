// Package database handles database connections and schema inspection.
//
// It wraps GORM to configure MySQL, PostgreSQL or SQLite connections from the
// application's configuration. Connections are opened with error translation enabled,
// so unique index violations surface as gorm.ErrDuplicatedKey on every driver; the
// conference feature relies on this to turn concurrent duplicate submissions into
// conflicts.
//
// # Schema Inspection
//
// GetTableColumns lists the live columns of a table. The integrity feature compares
// them against the GORM models of the audit tables.
//
// # Usage
//
//	db, err := database.Connect(cfg.Database)
//	if err != nil {
//	    log.Fatal("Database connection failed", err)
//	}
//
//	columns, err := database.GetTableColumns(db, "conference_items")
package database
