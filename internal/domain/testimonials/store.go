package testimonials

import (
	"context"
	"errors"
	"fmt"
	"time"

	"tenthouse/internal/dbx"

	"github.com/jackc/pgx/v5"
)

type Store interface {
	Create(ctx context.Context, t *Testimonial) error
	GetByID(ctx context.Context, id int64) (*Testimonial, error)
	CountByIPSince(ctx context.Context, ip string, since time.Time) (int, error)
	List(ctx context.Context, f ListFilter) ([]Testimonial, error)
	Stats(ctx context.Context, recentSince time.Time) (Statistics, error)
	UpdateStatus(ctx context.Context, id int64, status Status) error
	BulkUpdateStatus(ctx context.Context, ids []int64, status Status) (int64, error)
	Delete(ctx context.Context, id int64) error
}

// ListFilter selects a page of testimonials, newest first. A nil Status
// means every status.
type ListFilter struct {
	Status *Status
	Limit  int
	Offset int
}

type Repository struct {
	db dbx.Querier
}

func NewRepository(q dbx.Querier) *Repository {
	return &Repository{db: q}
}

const testimonialColumns = `id, name, COALESCE(email, ''), rating, message, status, COALESCE(ip_address, ''), created_at, updated_at`

func scanTestimonial(row pgx.Row, t *Testimonial) error {
	var status, email string
	if err := row.Scan(
		&t.ID,
		&t.Name,
		&email,
		&t.Rating,
		&t.Message,
		&status,
		&t.IPAddress,
		&t.CreatedAt,
		&t.UpdatedAt,
	); err != nil {
		return err
	}
	t.Status = Status(status)
	t.Email = nil
	if email != "" {
		t.Email = &email
	}
	return nil
}

// Create inserts a pending testimonial and fills in the generated id and
// timestamps.
func (r *Repository) Create(ctx context.Context, t *Testimonial) error {
	if t.Status == "" {
		t.Status = StatusPending
	}
	query := `
        INSERT INTO testimonials (name, email, rating, message, status, ip_address)
        VALUES ($1, $2, $3, $4, $5, $6)
        RETURNING id, created_at, updated_at
    `
	err := r.db.QueryRow(ctx, query,
		t.Name,
		t.Email,
		t.Rating,
		t.Message,
		string(t.Status),
		t.IPAddress,
	).Scan(&t.ID, &t.CreatedAt, &t.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to insert testimonial: %w", err)
	}
	return nil
}

func (r *Repository) GetByID(ctx context.Context, id int64) (*Testimonial, error) {
	query := `SELECT ` + testimonialColumns + ` FROM testimonials WHERE id = $1`

	var t Testimonial
	if err := scanTestimonial(r.db.QueryRow(ctx, query, id), &t); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get testimonial: %w", err)
	}
	return &t, nil
}

// CountByIPSince counts submissions from ip created after since.
func (r *Repository) CountByIPSince(ctx context.Context, ip string, since time.Time) (int, error) {
	query := `
        SELECT COUNT(*)
        FROM testimonials
        WHERE ip_address = $1 AND created_at > $2
    `
	var count int
	if err := r.db.QueryRow(ctx, query, ip, since).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count submissions: %w", err)
	}
	return count, nil
}

func (r *Repository) List(ctx context.Context, f ListFilter) ([]Testimonial, error) {
	var (
		rows pgx.Rows
		err  error
	)
	if f.Status != nil {
		query := `SELECT ` + testimonialColumns + `
        FROM testimonials
        WHERE status = $1
        ORDER BY created_at DESC, id DESC
        LIMIT $2 OFFSET $3`
		rows, err = r.db.Query(ctx, query, string(*f.Status), f.Limit, f.Offset)
	} else {
		query := `SELECT ` + testimonialColumns + `
        FROM testimonials
        ORDER BY created_at DESC, id DESC
        LIMIT $1 OFFSET $2`
		rows, err = r.db.Query(ctx, query, f.Limit, f.Offset)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query testimonials: %w", err)
	}
	defer rows.Close()

	list := []Testimonial{}
	for rows.Next() {
		var t Testimonial
		if err := scanTestimonial(rows, &t); err != nil {
			return nil, fmt.Errorf("failed to scan testimonial row: %w", err)
		}
		list = append(list, t)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return list, nil
}

func (r *Repository) Stats(ctx context.Context, recentSince time.Time) (Statistics, error) {
	query := `
        SELECT
            COUNT(*),
            COALESCE(AVG(rating), 0)::float8,
            COUNT(*) FILTER (WHERE status = 'approved'),
            COUNT(*) FILTER (WHERE created_at > $1)
        FROM testimonials
    `
	var s Statistics
	err := r.db.QueryRow(ctx, query, recentSince).Scan(
		&s.TotalCount,
		&s.AverageRating,
		&s.ApprovedCount,
		&s.RecentCount,
	)
	if err != nil {
		return Statistics{}, fmt.Errorf("failed to compute statistics: %w", err)
	}
	return s, nil
}

func (r *Repository) UpdateStatus(ctx context.Context, id int64, status Status) error {
	query := `
        UPDATE testimonials
        SET status = $1, updated_at = now()
        WHERE id = $2
    `
	tag, err := r.db.Exec(ctx, query, string(status), id)
	if err != nil {
		return fmt.Errorf("failed to update testimonial status: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

// BulkUpdateStatus moves every matching id to status in one statement and
// reports how many rows changed. Unknown ids are skipped.
func (r *Repository) BulkUpdateStatus(ctx context.Context, ids []int64, status Status) (int64, error) {
	query := `
        UPDATE testimonials
        SET status = $1, updated_at = now()
        WHERE id = ANY($2)
    `
	tag, err := r.db.Exec(ctx, query, string(status), ids)
	if err != nil {
		return 0, fmt.Errorf("failed to bulk update testimonials: %w", err)
	}
	return tag.RowsAffected(), nil
}

func (r *Repository) Delete(ctx context.Context, id int64) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM testimonials WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete testimonial: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
