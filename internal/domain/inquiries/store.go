package inquiries

import (
	"context"
	"fmt"

	"tenthouse/internal/dbx"
)

type Store interface {
	Create(ctx context.Context, in *Inquiry) error
	List(ctx context.Context, limit, offset int) ([]Inquiry, error)
}

type Repository struct {
	db dbx.Querier
}

func NewRepository(q dbx.Querier) *Repository {
	return &Repository{db: q}
}

func (r *Repository) Create(ctx context.Context, in *Inquiry) error {
	query := `
        INSERT INTO inquiries (reference, name, phone, email, event_type, event_date, message, ip_address)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
        RETURNING id, created_at
    `
	err := r.db.QueryRow(ctx, query,
		in.Reference,
		in.Name,
		in.Phone,
		in.Email,
		in.EventType,
		in.EventDate,
		in.Message,
		in.IPAddress,
	).Scan(&in.ID, &in.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to insert inquiry: %w", err)
	}
	return nil
}

// List returns inquiries newest first.
func (r *Repository) List(ctx context.Context, limit, offset int) ([]Inquiry, error) {
	query := `
        SELECT id, reference, name, phone, email, event_type, event_date, message, COALESCE(ip_address, ''), created_at
        FROM inquiries
        ORDER BY created_at DESC, id DESC
        LIMIT $1 OFFSET $2
    `
	rows, err := r.db.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to query inquiries: %w", err)
	}
	defer rows.Close()

	list := []Inquiry{}
	for rows.Next() {
		var in Inquiry
		if err := rows.Scan(
			&in.ID,
			&in.Reference,
			&in.Name,
			&in.Phone,
			&in.Email,
			&in.EventType,
			&in.EventDate,
			&in.Message,
			&in.IPAddress,
			&in.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan inquiry row: %w", err)
		}
		list = append(list, in)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return list, nil
}
