package snapshot

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"visitas360/internal/domain"
)

// Store persists the tracking working set so field staff keep their
// visits and requirements across CLI runs. Rows hold the full record as
// JSON; visit_id and status are denormalized for ad-hoc queries.
type Store struct {
	DB *sql.DB
}

// NewStore wraps an open, migrated database.
func NewStore(db *sql.DB) *Store {
	return &Store{DB: db}
}

// Save replaces the persisted working set with the given one. Row
// positions preserve the in-memory ordering.
func (s *Store) Save(ctx context.Context, visits []domain.Visit, reqs []domain.Requirement) error {
	tx, err := s.DB.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM visits`); err != nil {
		return fmt.Errorf("clear visits: %w", err)
	}
	if _, err := tx.ExecContext(ctx, `DELETE FROM requirements`); err != nil {
		return fmt.Errorf("clear requirements: %w", err)
	}
	for i, v := range visits {
		data, err := json.Marshal(v)
		if err != nil {
			return fmt.Errorf("encode visit %s: %w", v.ID, err)
		}
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO visits(id, position, data, updated_at) VALUES (?, ?, ?, ?)`,
			v.ID, i, string(data), v.UpdatedAt); err != nil {
			return fmt.Errorf("insert visit %s: %w", v.ID, err)
		}
	}
	for i, r := range reqs {
		data, err := json.Marshal(r)
		if err != nil {
			return fmt.Errorf("encode requirement %s: %w", r.ID, err)
		}
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO requirements(id, position, visit_id, status, data, updated_at) VALUES (?, ?, ?, ?, ?, ?)`,
			r.ID, i, r.VisitID, string(r.Status), string(data), r.UpdatedAt); err != nil {
			return fmt.Errorf("insert requirement %s: %w", r.ID, err)
		}
	}
	return tx.Commit()
}

// Load reads back the persisted working set in saved order.
func (s *Store) Load(ctx context.Context) ([]domain.Visit, []domain.Requirement, error) {
	visits, err := loadRows[domain.Visit](ctx, s.DB, `SELECT data FROM visits ORDER BY position`)
	if err != nil {
		return nil, nil, fmt.Errorf("load visits: %w", err)
	}
	reqs, err := loadRows[domain.Requirement](ctx, s.DB, `SELECT data FROM requirements ORDER BY position`)
	if err != nil {
		return nil, nil, fmt.Errorf("load requirements: %w", err)
	}
	return visits, reqs, nil
}

// Empty reports whether nothing has been persisted yet.
func (s *Store) Empty(ctx context.Context) (bool, error) {
	var n int
	if err := s.DB.QueryRowContext(ctx, `SELECT COUNT(*) FROM visits`).Scan(&n); err != nil {
		return false, err
	}
	if n > 0 {
		return false, nil
	}
	if err := s.DB.QueryRowContext(ctx, `SELECT COUNT(*) FROM requirements`).Scan(&n); err != nil {
		return false, err
	}
	return n == 0, nil
}

func loadRows[T any](ctx context.Context, db *sql.DB, query string) ([]T, error) {
	rows, err := db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var out []T
	for rows.Next() {
		var data string
		if err := rows.Scan(&data); err != nil {
			return nil, err
		}
		var item T
		if err := json.Unmarshal([]byte(data), &item); err != nil {
			return nil, err
		}
		out = append(out, item)
	}
	return out, rows.Err()
}
