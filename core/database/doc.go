// Package database handles database connections, migrations and schema inspection.
//
// It wraps GORM to configure MySQL (production) or SQLite (local runs and
// tests) connections from the application's configuration. SQLite
// connections are opened with foreign keys enabled so owning relations
// cascade the same way they do on MySQL.
//
// # Schema Inspection
//
// GetTableColumns returns the live column definitions of a table. The
// integrity feature compares them with the gorm tags of the timesheet models.
//
// # Usage
//
//	db, err := database.Connect(cfg.Database)
//	if err != nil {
//	    log.Fatal("Database connection failed", err)
//	}
//
//	columns, err := database.GetTableColumns(db, "timesheets")
package database
