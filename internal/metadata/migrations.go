package metadata

import (
	"context"
	"database/sql"
	"fmt"
)

// currentSchemaVersion is bumped on structural change.
// Version 1 introduced playlists and liked tracks;
// version 2 added the offline download collection.
const currentSchemaVersion = 2

// migrations are additive-only and idempotent: each step may run multiple
// times safely and must be safe to run from an empty database. Introducing
// a new collection must never destroy existing collections' data.
//
//nolint:gochecknoglobals // Immutable migration table.
var migrations = []struct {
	version    int64
	statements []string
}{
	{
		version: 1,
		statements: []string{
			`CREATE TABLE IF NOT EXISTS playlists (
				id     TEXT PRIMARY KEY,
				name   TEXT NOT NULL,
				image  TEXT NOT NULL DEFAULT '',
				tracks TEXT NOT NULL DEFAULT '[]'
			)`,
			`CREATE TABLE IF NOT EXISTS liked_tracks (
				identity   TEXT PRIMARY KEY,
				descriptor TEXT NOT NULL
			)`,
		},
	},
	{
		version: 2,
		statements: []string{
			`CREATE TABLE IF NOT EXISTS offline_downloads (
				id        TEXT PRIMARY KEY,
				title     TEXT NOT NULL,
				artist    TEXT NOT NULL,
				image     TEXT NOT NULL DEFAULT '',
				audio_url TEXT NOT NULL,
				saved_at  INTEGER NOT NULL
			)`,
		},
	},
}

func migrate(ctx context.Context, db *sql.DB) error {
	_, err := db.ExecContext(ctx,
		`CREATE TABLE IF NOT EXISTS schema_version (version INTEGER NOT NULL)`)
	if err != nil {
		return fmt.Errorf("failed to create schema_version table: %w", err)
	}

	applied, err := appliedVersion(ctx, db)
	if err != nil {
		return err
	}

	for _, migration := range migrations {
		if migration.version <= applied {
			continue
		}

		for _, statement := range migration.statements {
			if _, err = db.ExecContext(ctx, statement); err != nil {
				return fmt.Errorf("failed to apply schema v%d: %w", migration.version, err)
			}
		}
	}

	if applied == currentSchemaVersion {
		return nil
	}

	if _, err = db.ExecContext(ctx, `DELETE FROM schema_version`); err != nil {
		return fmt.Errorf("failed to reset schema version: %w", err)
	}

	_, err = db.ExecContext(ctx,
		`INSERT INTO schema_version (version) VALUES (?)`, currentSchemaVersion)
	if err != nil {
		return fmt.Errorf("failed to record schema version: %w", err)
	}

	return nil
}

func appliedVersion(ctx context.Context, db *sql.DB) (int64, error) {
	var version sql.NullInt64

	err := db.QueryRowContext(ctx,
		`SELECT MAX(version) FROM schema_version`).Scan(&version)
	if err != nil {
		return 0, fmt.Errorf("failed to read schema version: %w", err)
	}

	if !version.Valid {
		return 0, nil
	}

	return version.Int64, nil
}
