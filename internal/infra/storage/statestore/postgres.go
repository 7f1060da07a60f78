package statestore

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	_ "github.com/lib/pq"

	"github.com/KUL-Services/bookly-scheduling/pkg/psqlbuilder"
)

const stateTable = "calendar_state"

// PostgresStore persists snapshots in a single key/value table with a
// JSONB column, namespaced the same way as the Redis backend.
type PostgresStore struct {
	db        *sql.DB
	namespace string
}

// NewPostgresStore opens a PostgreSQL connection and verifies it.
func NewPostgresStore(dsn, namespace string) (*PostgresStore, error) {
	db, err := sql.Open("postgres", dsn)
	if err != nil {
		return nil, fmt.Errorf("%w: open: %v", ErrInternal, err)
	}
	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("%w: ping: %v", ErrInternal, err)
	}
	return &PostgresStore{db: db, namespace: namespace}, nil
}

// EnsureSchema creates the state table when it does not exist yet.
func (p *PostgresStore) EnsureSchema(ctx context.Context) error {
	ddl := `CREATE TABLE IF NOT EXISTS ` + stateTable + ` (
		key        TEXT PRIMARY KEY,
		value      JSONB NOT NULL,
		updated_at TIMESTAMPTZ NOT NULL
	)`
	if _, err := p.db.ExecContext(ctx, ddl); err != nil {
		return fmt.Errorf("%w: ensure schema: %v", ErrInternal, err)
	}
	return nil
}

// Save upserts the marshaled value under the namespaced key.
func (p *PostgresStore) Save(ctx context.Context, key string, value any) error {
	data, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("%w: marshal %s: %v", ErrInternal, key, err)
	}

	query, args, err := psqlbuilder.Insert(stateTable).
		Columns("key", "value", "updated_at").
		Values(p.key(key), data, time.Now().UTC()).
		Suffix("ON CONFLICT (key) DO UPDATE SET value = EXCLUDED.value, updated_at = EXCLUDED.updated_at").
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: build upsert: %v", ErrInternal, err)
	}

	if _, err := p.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: upsert %s: %v", ErrInternal, key, err)
	}
	return nil
}

// Load reads and unmarshals the namespaced key into out.
func (p *PostgresStore) Load(ctx context.Context, key string, out any) error {
	query, args, err := psqlbuilder.Select("value").
		From(stateTable).
		Where("key = ?", p.key(key)).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: build select: %v", ErrInternal, err)
	}

	var data []byte
	if err := p.db.QueryRowContext(ctx, query, args...).Scan(&data); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return fmt.Errorf("%w: %s", ErrNotFound, key)
		}
		return fmt.Errorf("%w: select %s: %v", ErrInternal, key, err)
	}
	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("%w: unmarshal %s: %v", ErrInternal, key, err)
	}
	return nil
}

// Close releases the database connection.
func (p *PostgresStore) Close() error {
	return p.db.Close()
}

func (p *PostgresStore) key(key string) string {
	return p.namespace + ":" + key
}
