package participant

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
)

// PGStore is the PostgreSQL-backed Store implementation.
type PGStore struct {
	pool *pgxpool.Pool
}

// NewPGStore constructs a PGStore over the shared connection pool.
func NewPGStore(pool *pgxpool.Pool) *PGStore {
	return &PGStore{pool: pool}
}

func (s *PGStore) Exists(ctx context.Context, name string) (bool, error) {
	var exists bool
	err := s.pool.QueryRow(ctx,
		`SELECT EXISTS (SELECT 1 FROM participants WHERE name = $1)`, name,
	).Scan(&exists)
	return exists, err
}

func (s *PGStore) Insert(ctx context.Context, p Participant) error {
	_, err := s.pool.Exec(ctx,
		`INSERT INTO participants (name, last_status) VALUES ($1, $2)`,
		p.Name, p.LastStatus,
	)
	return err
}

func (s *PGStore) List(ctx context.Context) ([]Participant, error) {
	rows, err := s.pool.Query(ctx, `SELECT name, last_status FROM participants`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	participants := []Participant{}
	for rows.Next() {
		var p Participant
		if err := rows.Scan(&p.Name, &p.LastStatus); err != nil {
			return nil, err
		}
		participants = append(participants, p)
	}
	return participants, rows.Err()
}

// UpdateLastStatus refreshes the presence timestamp for the named participant.
// It reports false when no record matched, without error.
func (s *PGStore) UpdateLastStatus(ctx context.Context, name string, lastStatus int64) (bool, error) {
	tag, err := s.pool.Exec(ctx,
		`UPDATE participants SET last_status = $2 WHERE name = $1`,
		name, lastStatus,
	)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}

func (s *PGStore) Delete(ctx context.Context, name string) error {
	_, err := s.pool.Exec(ctx, `DELETE FROM participants WHERE name = $1`, name)
	return err
}
