package sqlite

import (
	"context"
	"database/sql"
	"fmt"
)

// migrations is the ordered schema history. Entries are append-only;
// applied versions are tracked in schema_migrations.
var migrations = []struct {
	version int
	name    string
	ddl     string
}{
	{
		version: 1,
		name:    "create_bookings",
		ddl: `
			CREATE TABLE IF NOT EXISTS bookings (
				id TEXT PRIMARY KEY,
				customer_name TEXT NOT NULL,
				customer_surname TEXT NOT NULL,
				guest_count INTEGER NOT NULL CHECK (guest_count >= 1),
				room_number INTEGER NOT NULL,
				checkin_date TEXT NOT NULL,
				checkout_date TEXT NOT NULL,
				checkin_time TEXT NOT NULL DEFAULT '14:00',
				checkout_time TEXT NOT NULL DEFAULT '11:00',
				created_at TEXT NOT NULL
			);
			CREATE INDEX IF NOT EXISTS idx_bookings_dates
				ON bookings (checkin_date, checkout_date);
		`,
	},
	{
		version: 2,
		name:    "create_users",
		ddl: `
			CREATE TABLE IF NOT EXISTS users (
				id TEXT PRIMARY KEY,
				username TEXT NOT NULL UNIQUE,
				password_hash TEXT NOT NULL,
				created_at TEXT NOT NULL
			);
		`,
	},
}

// Migrate applies pending schema migrations in order. It is safe to
// call on every start.
func Migrate(ctx context.Context, pool *ConnectionPool) error {
	_, err := pool.DB().ExecContext(ctx, `
		CREATE TABLE IF NOT EXISTS schema_migrations (
			version INTEGER PRIMARY KEY,
			name TEXT NOT NULL,
			applied_at TEXT NOT NULL DEFAULT (datetime('now'))
		)
	`)
	if err != nil {
		return fmt.Errorf("failed to create schema_migrations: %w", err)
	}

	for _, migration := range migrations {
		applied, err := migrationApplied(ctx, pool, migration.version)
		if err != nil {
			return err
		}
		if applied {
			continue
		}

		err = pool.WithTransaction(ctx, func(tx *sql.Tx) error {
			if _, err := tx.Exec(migration.ddl); err != nil {
				return fmt.Errorf("migration %d (%s) failed: %w", migration.version, migration.name, err)
			}
			if _, err := tx.Exec(
				"INSERT INTO schema_migrations (version, name) VALUES (?, ?)",
				migration.version, migration.name,
			); err != nil {
				return fmt.Errorf("failed to record migration %d: %w", migration.version, err)
			}
			return nil
		})
		if err != nil {
			return err
		}
	}

	return nil
}

func migrationApplied(ctx context.Context, pool *ConnectionPool, version int) (bool, error) {
	var count int
	err := pool.DB().QueryRowContext(ctx,
		"SELECT COUNT(*) FROM schema_migrations WHERE version = ?", version,
	).Scan(&count)
	if err != nil {
		return false, fmt.Errorf("failed to check migration %d: %w", version, err)
	}
	return count > 0, nil
}
