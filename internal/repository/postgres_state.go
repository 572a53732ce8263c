package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/example/entscheidungshelfer-bot/internal/model"
	_ "github.com/jackc/pgx/v5/stdlib"
)

// PostgresStateRepository stores the state document as a single JSONB row.
type PostgresStateRepository struct {
	db *sql.DB
}

func NewPostgresStateRepository(connStr string) (*PostgresStateRepository, error) {
	db, err := sql.Open("pgx", connStr)
	if err != nil {
		return nil, err
	}
	r := &PostgresStateRepository{db: db}
	if err := r.init(); err != nil {
		db.Close()
		return nil, err
	}
	return r, nil
}

func (r *PostgresStateRepository) init() error {
	_, err := r.db.Exec(`
        CREATE TABLE IF NOT EXISTS bot_state (
            id SMALLINT PRIMARY KEY,
            doc JSONB NOT NULL
        )`)
	return err
}

// Load reads the single state row. No row yet means first run and yields
// the default state; an undecodable document yields ErrStateCorrupt.
func (r *PostgresStateRepository) Load(ctx context.Context) (*model.State, error) {
	row := r.db.QueryRowContext(ctx, `SELECT doc FROM bot_state WHERE id=1`)
	var doc []byte
	if err := row.Scan(&doc); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.DefaultState(), nil
		}
		return nil, fmt.Errorf("load state: %w", err)
	}
	var state model.State
	if err := json.Unmarshal(doc, &state); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrStateCorrupt, err)
	}
	if state.Users == nil {
		state.Users = map[int64]*model.UserRecord{}
	}
	return &state, nil
}

func (r *PostgresStateRepository) Save(ctx context.Context, state *model.State) error {
	doc, err := json.Marshal(state)
	if err != nil {
		return fmt.Errorf("save state: %w", err)
	}
	_, err = r.db.ExecContext(ctx, `
        INSERT INTO bot_state (id, doc) VALUES (1, $1)
        ON CONFLICT (id) DO UPDATE SET doc=EXCLUDED.doc
    `, string(doc))
	if err != nil {
		return fmt.Errorf("save state: %w", err)
	}
	return nil
}

func (r *PostgresStateRepository) Close() error {
	return r.db.Close()
}
