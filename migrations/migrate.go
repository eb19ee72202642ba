// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package migrations manages the paste store's Postgres schema. It uses
// the goose migration library with embedded SQL files so that migrations
// ship inside the server binary and require no external file access at
// deploy time.
package migrations

import (
	"database/sql"
	"embed"
	"fmt"

	"github.com/pressly/goose/v3"
)

// embedMigrations holds every *.sql migration file embedded into the
// binary at compile time.
//
//go:embed *.sql
var embedMigrations embed.FS

// Migrate applies all pending migrations to db using the pgx dialect.
// It is called once, at startup, before the postgres persistence adapter
// serves any traffic (see cmd/server/main.go's newPersistenceAdapter).
func Migrate(db *sql.DB) error {
	if db == nil {
		return fmt.Errorf("migration error: db is nil")
	}

	goose.SetBaseFS(embedMigrations)

	if err := goose.SetDialect("pgx"); err != nil {
		return fmt.Errorf("migration error setting dialect for db: %w", err)
	}

	if err := goose.Up(db, "."); err != nil {
		return fmt.Errorf("migration error: %w", err)
	}

	return nil
}
