package repository

import (
	"context"
	"database/sql"
	"errors"

	"event-hub/backend/internal/event/domain"
)

// PostgresRepository persists events in the events table.
type PostgresRepository struct {
	db *sql.DB
}

// NewPostgresRepository returns an event repository that uses the given db for persistence.
func NewPostgresRepository(db *sql.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

const eventColumns = `id, name, description, location, start_time, end_time, status, created_at, updated_at`

// Create persists the event. The event must have ID set.
func (r *PostgresRepository) Create(ctx context.Context, e *domain.Event) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO events (id, name, description, location, start_time, end_time, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`, e.ID, e.Name, e.Description, e.Location, e.StartTime, e.EndTime, string(e.Status), e.CreatedAt, e.UpdatedAt)
	return err
}

// GetByID returns the event for id, or nil if not found.
// It returns an error only for database failures, not for missing rows.
func (r *PostgresRepository) GetByID(ctx context.Context, id string) (*domain.Event, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+eventColumns+` FROM events WHERE id = $1`, id)
	e, err := scanEvent(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return e, nil
}

// List returns events ordered by start time, skipping skip rows and returning
// at most limit rows.
func (r *PostgresRepository) List(ctx context.Context, skip, limit int) ([]*domain.Event, error) {
	if limit <= 0 {
		limit = 10
	}
	if skip < 0 {
		skip = 0
	}
	rows, err := r.db.QueryContext(ctx, `
		SELECT `+eventColumns+` FROM events
		ORDER BY start_time, id
		OFFSET $1 LIMIT $2
	`, skip, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []*domain.Event
	for rows.Next() {
		e, err := scanEvent(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, e)
	}
	return out, rows.Err()
}

// Update overwrites the event row. Returns sql.ErrNoRows via GetByID
// semantics left to the caller: a missing row is simply not updated.
func (r *PostgresRepository) Update(ctx context.Context, e *domain.Event) error {
	_, err := r.db.ExecContext(ctx, `
		UPDATE events
		SET name = $2, description = $3, location = $4, start_time = $5,
		    end_time = $6, status = $7, updated_at = $8
		WHERE id = $1
	`, e.ID, e.Name, e.Description, e.Location, e.StartTime, e.EndTime, string(e.Status), e.UpdatedAt)
	return err
}

// Delete removes the event row. Returns whether a row was deleted.
func (r *PostgresRepository) Delete(ctx context.Context, id string) (bool, error) {
	res, err := r.db.ExecContext(ctx, `DELETE FROM events WHERE id = $1`, id)
	if err != nil {
		return false, err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanEvent(row rowScanner) (*domain.Event, error) {
	var e domain.Event
	var status string
	var description sql.NullString
	err := row.Scan(&e.ID, &e.Name, &description, &e.Location, &e.StartTime, &e.EndTime, &status, &e.CreatedAt, &e.UpdatedAt)
	if err != nil {
		return nil, err
	}
	e.Description = description.String
	e.Status = domain.Status(status)
	return &e, nil
}
