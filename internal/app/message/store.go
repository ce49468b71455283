package message

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PGStore is the PostgreSQL-backed Store implementation. The seq column
// carries insertion order; ids are UUIDs assigned at insert.
type PGStore struct {
	pool *pgxpool.Pool
}

// NewPGStore constructs a PGStore over the shared connection pool.
func NewPGStore(pool *pgxpool.Pool) *PGStore {
	return &PGStore{pool: pool}
}

func (s *PGStore) Insert(ctx context.Context, m Message) (string, error) {
	id := uuid.NewString()
	_, err := s.pool.Exec(ctx,
		`INSERT INTO messages (id, from_name, to_name, body, kind, clock)
		 VALUES ($1, $2, $3, $4, $5, $6)`,
		id, m.From, m.To, m.Text, m.Type, m.Time,
	)
	if err != nil {
		return "", err
	}
	return id, nil
}

func (s *PGStore) ListAll(ctx context.Context) ([]Message, error) {
	rows, err := s.pool.Query(ctx,
		`SELECT id, from_name, to_name, body, kind, clock
		 FROM messages
		 ORDER BY seq ASC`,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	messages := []Message{}
	for rows.Next() {
		var m Message
		if err := rows.Scan(&m.ID, &m.From, &m.To, &m.Text, &m.Type, &m.Time); err != nil {
			return nil, err
		}
		messages = append(messages, m)
	}
	return messages, rows.Err()
}

func (s *PGStore) GetByID(ctx context.Context, id string) (Message, bool, error) {
	var m Message
	err := s.pool.QueryRow(ctx,
		`SELECT id, from_name, to_name, body, kind, clock FROM messages WHERE id = $1`,
		id,
	).Scan(&m.ID, &m.From, &m.To, &m.Text, &m.Type, &m.Time)
	if errors.Is(err, pgx.ErrNoRows) {
		return Message{}, false, nil
	}
	if err != nil {
		return Message{}, false, err
	}
	return m, true, nil
}

func (s *PGStore) Delete(ctx context.Context, id string) error {
	_, err := s.pool.Exec(ctx, `DELETE FROM messages WHERE id = $1`, id)
	return err
}
