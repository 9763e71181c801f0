// Package database handles database connections, migrations and schema inspection.
//
// It wraps GORM to configure sqlite, MySQL or PostgreSQL connections from the
// application's configuration. The handle returned by Connect is passed explicitly to
// every component that needs it; the package keeps no global connection.
//
// # Connect
//
// sqlite is the default driver. File databases open in WAL mode with a busy timeout;
// ":memory:" databases are pinned to one pooled connection so every query sees the same
// data. PostgreSQL connections go through lib/pq.
//
// # Schema Inspection
//
// GetTableColumns lists the columns of a table on every supported dialect. The
// `db inspect` command uses it to show the live places schema.
//
// # Usage
//
//	db, err := database.Connect(cfg.Database)
//	if err != nil {
//	    log.Fatal("Database connection failed", zap.Error(err))
//	}
//
//	if err := database.Migrate(db, &models.Place{}); err != nil {
//	    return err
//	}
package database
