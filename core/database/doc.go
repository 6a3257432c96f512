// Package database handles database connections and schema inspection.
//
// It provides a wrapper around GORM to configure MySQL (production) or SQLite
// (local development and tests) connections from the application's configuration.
//
// # Connect
//
// Connect opens the connection, applies pool settings and verifies it with a
// bounded ping. The requirement file store and the schema integrity check both
// receive the resulting *gorm.DB.
//
// # Schema Inspection
//
// GetTableColumns returns the live column definitions of a table so the integrity
// check can compare them with the requirement_files model.
//
// # Usage
//
//	db, err := database.Connect(cfg.Database)
//	if err != nil {
//	    return err
//	}
//
//	columns, err := database.GetTableColumns(ctx, db, "requirement_files")
package database
