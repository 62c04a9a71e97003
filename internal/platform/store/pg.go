package store

import (
	"context"
	"errors"
	"fmt"
	"regexp"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PGBackend persists tables in PostgreSQL: one relation per record type with
// an id primary key, a bigserial position column for the list index, and the
// record body as jsonb.
type PGBackend struct {
	pool *pgxpool.Pool
}

var tableNameRE = regexp.MustCompile(`^[a-z][a-z0-9_]*$`)

// NewPGBackend connects a pgx pool and verifies the connection.
func NewPGBackend(ctx context.Context, databaseURL string, maxConns, minConns int32) (*PGBackend, error) {
	cfg, err := pgxpool.ParseConfig(databaseURL)
	if err != nil {
		return nil, fmt.Errorf("parse database url: %w", err)
	}
	cfg.MaxConns = maxConns
	cfg.MinConns = minConns

	pool, err := pgxpool.NewWithConfig(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("create connection pool: %w", err)
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}
	return &PGBackend{pool: pool}, nil
}

// Close releases the underlying connection pool.
func (b *PGBackend) Close() { b.pool.Close() }

// EnsureSchema creates the relation for each table name if it does not exist.
func (b *PGBackend) EnsureSchema(ctx context.Context, tables ...string) error {
	for _, table := range tables {
		rel, err := relation(table)
		if err != nil {
			return err
		}
		_, err = b.pool.Exec(ctx, fmt.Sprintf(`
			CREATE TABLE IF NOT EXISTS %s (
				id   TEXT PRIMARY KEY,
				seq  BIGSERIAL UNIQUE,
				data JSONB NOT NULL
			)`, rel))
		if err != nil {
			return fmt.Errorf("ensure table %s: %w", table, err)
		}
	}
	return nil
}

func relation(table string) (string, error) {
	if !tableNameRE.MatchString(table) {
		return "", fmt.Errorf("invalid table name %q", table)
	}
	return "record_" + table, nil
}

func (b *PGBackend) Get(ctx context.Context, table, id string) ([]byte, error) {
	rel, err := relation(table)
	if err != nil {
		return nil, err
	}
	var data []byte
	err = b.pool.QueryRow(ctx, `SELECT data FROM `+rel+` WHERE id = $1`, id).Scan(&data)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get %s/%s: %w", table, id, err)
	}
	return data, nil
}

func (b *PGBackend) Exists(ctx context.Context, table, id string) (bool, error) {
	rel, err := relation(table)
	if err != nil {
		return false, err
	}
	var exists bool
	err = b.pool.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM `+rel+` WHERE id = $1)`, id).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("exists %s/%s: %w", table, id, err)
	}
	return exists, nil
}

func (b *PGBackend) Insert(ctx context.Context, table, id string, data []byte) error {
	rel, err := relation(table)
	if err != nil {
		return err
	}
	tag, err := b.pool.Exec(ctx,
		`INSERT INTO `+rel+` (id, data) VALUES ($1, $2) ON CONFLICT (id) DO NOTHING`, id, data)
	if err != nil {
		return fmt.Errorf("insert %s/%s: %w", table, id, err)
	}
	if tag.RowsAffected() == 0 {
		return ErrConflict
	}
	return nil
}

func (b *PGBackend) Update(ctx context.Context, table, id string, data []byte) error {
	rel, err := relation(table)
	if err != nil {
		return err
	}
	tag, err := b.pool.Exec(ctx, `UPDATE `+rel+` SET data = $2 WHERE id = $1`, id, data)
	if err != nil {
		return fmt.Errorf("update %s/%s: %w", table, id, err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (b *PGBackend) List(ctx context.Context, table string, afterSeq int64, limit int) ([]Row, error) {
	rel, err := relation(table)
	if err != nil {
		return nil, err
	}
	rows, err := b.pool.Query(ctx,
		`SELECT seq, data FROM `+rel+` WHERE seq > $1 ORDER BY seq LIMIT $2`, afterSeq, limit)
	if err != nil {
		return nil, fmt.Errorf("list %s: %w", table, err)
	}
	defer rows.Close()

	var out []Row
	for rows.Next() {
		var r Row
		if err := rows.Scan(&r.Seq, &r.Data); err != nil {
			return nil, fmt.Errorf("scan %s: %w", table, err)
		}
		out = append(out, r)
	}
	return out, rows.Err()
}
