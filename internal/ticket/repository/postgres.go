package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"event-hub/backend/internal/ticket/domain"
)

const ticketColumns = "id, event_id, user_id, ticket_type, price, purchased_at"

// PostgresRepository stores tickets in Postgres.
type PostgresRepository struct {
	db *sql.DB
}

func NewPostgresRepository(db *sql.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Create(ctx context.Context, t *domain.Ticket) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO tickets (id, event_id, user_id, ticket_type, price, purchased_at)
		 VALUES ($1, $2, $3, $4, $5, $6)`,
		t.ID, t.EventID, t.UserID, t.TicketType, t.Price, t.PurchasedAt,
	)
	if err != nil {
		return fmt.Errorf("insert ticket: %w", err)
	}
	return nil
}

func (r *PostgresRepository) GetByID(ctx context.Context, id string) (*domain.Ticket, error) {
	row := r.db.QueryRowContext(ctx,
		fmt.Sprintf("SELECT %s FROM tickets WHERE id = $1", ticketColumns), id)
	t, err := scanTicket(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("query ticket: %w", err)
	}
	return t, nil
}

func (r *PostgresRepository) ListByEvent(ctx context.Context, eventID string) ([]*domain.Ticket, error) {
	return r.listWhere(ctx, "event_id", eventID)
}

func (r *PostgresRepository) ListByUser(ctx context.Context, userID string) ([]*domain.Ticket, error) {
	return r.listWhere(ctx, "user_id", userID)
}

func (r *PostgresRepository) listWhere(ctx context.Context, column, value string) ([]*domain.Ticket, error) {
	rows, err := r.db.QueryContext(ctx,
		fmt.Sprintf("SELECT %s FROM tickets WHERE %s = $1 ORDER BY purchased_at, id", ticketColumns, column), value)
	if err != nil {
		return nil, fmt.Errorf("query tickets: %w", err)
	}
	defer rows.Close()

	var tickets []*domain.Ticket
	for rows.Next() {
		t, err := scanTicket(rows)
		if err != nil {
			return nil, fmt.Errorf("scan ticket: %w", err)
		}
		tickets = append(tickets, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate tickets: %w", err)
	}
	return tickets, nil
}

func (r *PostgresRepository) Delete(ctx context.Context, id string) (bool, error) {
	res, err := r.db.ExecContext(ctx, "DELETE FROM tickets WHERE id = $1", id)
	if err != nil {
		return false, fmt.Errorf("delete ticket: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("delete ticket: %w", err)
	}
	return n > 0, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanTicket(row rowScanner) (*domain.Ticket, error) {
	var t domain.Ticket
	if err := row.Scan(&t.ID, &t.EventID, &t.UserID, &t.TicketType, &t.Price, &t.PurchasedAt); err != nil {
		return nil, err
	}
	return &t, nil
}
