// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package persistence

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	_ "github.com/jackc/pgx/v5/stdlib"
)

// PostgresConfig configures the Postgres-backed Adapter. This backend has
// no counterpart in the original implementation; it is a supplemented
// persistence option (see DESIGN.md) that exercises the teacher's own
// pgx/squirrel stack against the paste domain instead of the private-data
// domain it originally served.
type PostgresConfig struct {
	DSN string
}

// Postgres persists pastes as rows in a single "pastes" table (see
// migrations/00001_pastes.sql), keyed by paste id.
type Postgres struct {
	db      *sql.DB
	builder sq.StatementBuilderType
}

// DB returns the underlying connection pool so callers can run schema
// migrations against it before the adapter serves traffic.
func (p *Postgres) DB() *sql.DB {
	return p.db
}

// NewPostgres opens a connection pool against cfg.DSN using the pgx stdlib
// driver and verifies reachability with a ping.
func NewPostgres(ctx context.Context, cfg PostgresConfig) (*Postgres, error) {
	if cfg.DSN == "" {
		return nil, fmt.Errorf("persistence: postgres adapter requires a DSN")
	}

	conn, err := sql.Open("pgx", cfg.DSN)
	if err != nil {
		return nil, fmt.Errorf("persistence: open postgres connection: %w", err)
	}
	conn.SetMaxOpenConns(10)
	conn.SetMaxIdleConns(4)

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := conn.PingContext(pingCtx); err != nil {
		return nil, fmt.Errorf("persistence: ping postgres: %w", err)
	}

	return &Postgres{
		db:      conn,
		builder: sq.StatementBuilder.PlaceholderFormat(sq.Dollar),
	}, nil
}

func (p *Postgres) Save(ctx context.Context, id string, payload []byte, ttlSeconds int64) error {
	var expiresAt sql.NullTime
	if ttlSeconds > 0 {
		expiresAt = sql.NullTime{Time: time.Now().Add(time.Duration(ttlSeconds) * time.Second), Valid: true}
	}

	query, args, err := p.builder.
		Insert("pastes").
		Columns("id", "payload", "expires_at").
		Values(id, payload, expiresAt).
		Suffix("ON CONFLICT (id) DO UPDATE SET payload = EXCLUDED.payload, expires_at = EXCLUDED.expires_at").
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: %s: build query: %w", ErrSave, id, err)
	}

	if _, err := p.db.ExecContext(ctx, query, args...); err != nil {
		if code := pgErrorCode(err); code == pgerrcode.UniqueViolation {
			return fmt.Errorf("%w: %s: unique violation: %w", ErrSave, id, err)
		}
		return fmt.Errorf("%w: %s: %w", ErrSave, id, err)
	}
	return nil
}

func (p *Postgres) Load(ctx context.Context, id string) ([]byte, error) {
	query, args, err := p.builder.
		Select("payload").
		From("pastes").
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: %s: build query: %w", ErrLoad, id, err)
	}

	var payload []byte
	err = p.db.QueryRowContext(ctx, query, args...).Scan(&payload)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrLoad, id, err)
	}
	return payload, nil
}

func (p *Postgres) Delete(ctx context.Context, id string) error {
	query, args, err := p.builder.
		Delete("pastes").
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: %s: build query: %w", ErrDelete, id, err)
	}

	if _, err := p.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: %s: %w", ErrDelete, id, err)
	}
	return nil
}

func pgErrorCode(err error) string {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code
	}
	return ""
}
