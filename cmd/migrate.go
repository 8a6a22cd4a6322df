package cmd

import (
	"accountd/internal/config"
	"accountd/internal/db"
	"accountd/internal/db/migrations"
	"context"
	"database/sql"
	"errors"
	"fmt"

	_ "github.com/glebarez/go-sqlite"
	_ "github.com/jackc/pgx/v5/stdlib"
)

const migrateUsage = "usage: accountd migrate <up|down|status|version>"

// Migrate runs the versioned schema migrations against the configured
// database. New migration files are authored with `goose create <name> sql`
// and placed in internal/db/migrations.
func Migrate(args []string) error {
	if len(args) == 0 {
		return errors.New(migrateUsage)
	}

	cfg, err := config.NewApp()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	var driverName, dialect string
	switch cfg.Database.Driver {
	case db.DriverPostgres:
		driverName = "pgx"
		dialect = migrations.DialectPgx
	case db.DriverSQLite:
		driverName = "sqlite"
		dialect = migrations.DialectSQLite3
	default:
		return fmt.Errorf("unsupported database driver: %q", cfg.Database.Driver)
	}

	sqlDB, err := sql.Open(driverName, cfg.Database.DSN())
	if err != nil {
		return fmt.Errorf("open database: %w", err)
	}
	defer sqlDB.Close()

	ctx := context.Background()

	switch args[0] {
	case "up":
		return migrations.Up(ctx, sqlDB, dialect)
	case "down":
		return migrations.Down(ctx, sqlDB, dialect)
	case "status":
		return migrations.Status(ctx, sqlDB, dialect)
	case "version":
		version, err := migrations.Version(ctx, sqlDB, dialect)
		if err != nil {
			return err
		}
		fmt.Printf("database is at migration version %d\n", version)
		return nil
	default:
		return fmt.Errorf("unknown migrate command %q\n%s", args[0], migrateUsage)
	}
}
