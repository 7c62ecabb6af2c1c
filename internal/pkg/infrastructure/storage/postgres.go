package storage

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/diwise/service-chassis/pkg/infrastructure/env"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type Config struct {
	host     string
	user     string
	password string
	port     string
	dbname   string
	sslmode  string
}

func LoadConfiguration(ctx context.Context) Config {
	return Config{
		host:     env.GetVariableOrDefault(ctx, "POSTGRES_HOST", ""),
		user:     env.GetVariableOrDefault(ctx, "POSTGRES_USER", ""),
		password: env.GetVariableOrDefault(ctx, "POSTGRES_PASSWORD", ""),
		port:     env.GetVariableOrDefault(ctx, "POSTGRES_PORT", "5432"),
		dbname:   env.GetVariableOrDefault(ctx, "POSTGRES_DBNAME", "diwise"),
		sslmode:  env.GetVariableOrDefault(ctx, "POSTGRES_SSLMODE", "disable"),
	}
}

// Enabled reports if a database host has been configured
func (c Config) Enabled() bool {
	return c.host != ""
}

func (c Config) ConnStr() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=%s", c.user, c.password, c.host, c.port, c.dbname, c.sslmode)
}

type postgresStore struct {
	pool *pgxpool.Pool
}

func NewPostgresStore(ctx context.Context, cfg Config) (Store, error) {
	pool, err := connect(ctx, cfg)
	if err != nil {
		return nil, err
	}

	s := &postgresStore{pool: pool}

	if err := s.initialize(ctx); err != nil {
		pool.Close()
		return nil, err
	}

	return s, nil
}

func connect(ctx context.Context, cfg Config) (*pgxpool.Pool, error) {
	conn, err := pgxpool.New(ctx, cfg.ConnStr())
	if err != nil {
		return nil, err
	}

	err = conn.Ping(ctx)
	if err != nil {
		conn.Close()
		return nil, err
	}

	return conn, err
}

func (s *postgresStore) initialize(ctx context.Context) error {
	// document is TEXT and not JSONB, JSONB does not keep the order of keys
	_, err := s.pool.Exec(ctx, `
		CREATE TABLE IF NOT EXISTS entities (
			id       TEXT PRIMARY KEY,
			type     TEXT NOT NULL,
			document TEXT NOT NULL,
			modified TIMESTAMPTZ NOT NULL
		);
		CREATE INDEX IF NOT EXISTS entities_type_idx ON entities (type);`)
	if err != nil {
		return fmt.Errorf("failed to create entities table: %w", err)
	}

	return nil
}

func (s *postgresStore) Put(ctx context.Context, r Record) error {
	sql := `INSERT INTO entities (id, type, document, modified) VALUES ($1, $2, $3, $4)
			ON CONFLICT (id) DO UPDATE SET type = EXCLUDED.type, document = EXCLUDED.document, modified = EXCLUDED.modified;`

	_, err := s.pool.Exec(ctx, sql, r.ID, r.Type, r.Document, time.Now().UTC())
	return err
}

func (s *postgresStore) Get(ctx context.Context, id string) (Record, error) {
	r := Record{}

	err := s.pool.QueryRow(ctx, `SELECT id, type, document, modified FROM entities WHERE id=$1;`, id).Scan(
		&r.ID, &r.Type, &r.Document, &r.Modified,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return Record{}, ErrNotFound
	}

	return r, err
}

func (s *postgresStore) Delete(ctx context.Context, id string) error {
	tag, err := s.pool.Exec(ctx, `DELETE FROM entities WHERE id=$1;`, id)
	if err != nil {
		return err
	}

	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}

	return nil
}

func (s *postgresStore) List(ctx context.Context, entityType string, offset, limit int) ([]Record, error) {
	if offset < 0 {
		offset = 0
	}

	sql := `SELECT id, type, document, modified FROM entities WHERE ($1 = '' OR type = $1) ORDER BY id OFFSET $2`
	args := []any{entityType, offset}

	if limit > 0 {
		sql += ` LIMIT $3`
		args = append(args, limit)
	}

	rows, err := s.pool.Query(ctx, sql+";", args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	records := make([]Record, 0)

	for rows.Next() {
		r := Record{}
		err := rows.Scan(&r.ID, &r.Type, &r.Document, &r.Modified)
		if err != nil {
			return nil, err
		}
		records = append(records, r)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return records, nil
}

func (s *postgresStore) Purge(ctx context.Context, before time.Time) (int64, error) {
	tx, err := s.pool.Begin(ctx)
	if err != nil {
		return 0, err
	}

	tag, err := tx.Exec(ctx, `DELETE FROM entities WHERE modified < $1;`, before.UTC())
	if err != nil {
		tx.Rollback(ctx)
		return 0, err
	}

	err = tx.Commit(ctx)
	if err != nil {
		return 0, err
	}

	if tag.RowsAffected() > 0 {
		_, err = s.pool.Exec(ctx, "VACUUM ANALYZE entities;")
	}

	return tag.RowsAffected(), err
}

func (s *postgresStore) Close() {
	s.pool.Close()
}
