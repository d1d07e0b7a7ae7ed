package state

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"
)

type postgresStorage struct {
	db *sqlx.DB
}

// NewPostgresStorage wraps a Postgres connection as a conversation state
// Storage. The conversation_state table is created by migrations.
func NewPostgresStorage(db *sqlx.DB) Storage {
	return &postgresStorage{db: db}
}

func (p *postgresStorage) Read(ctx context.Context, key string) ([]byte, error) {
	var data []byte
	err := p.db.GetContext(ctx, &data,
		`SELECT data FROM conversation_state WHERE key = $1`, key)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("postgres read %q: %w", key, err)
	}
	return data, nil
}

func (p *postgresStorage) Write(ctx context.Context, key string, data []byte) error {
	_, err := p.db.ExecContext(ctx,
		`INSERT INTO conversation_state (key, data, updated_at)
		 VALUES ($1, $2, NOW())
		 ON CONFLICT (key) DO UPDATE SET data = EXCLUDED.data, updated_at = NOW()`,
		key, data)
	if err != nil {
		return fmt.Errorf("postgres write %q: %w", key, err)
	}
	return nil
}

func (p *postgresStorage) Delete(ctx context.Context, key string) error {
	_, err := p.db.ExecContext(ctx,
		`DELETE FROM conversation_state WHERE key = $1`, key)
	if err != nil {
		return fmt.Errorf("postgres delete %q: %w", key, err)
	}
	return nil
}
