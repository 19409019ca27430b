// Package pushtokens keeps the Expo push tokens of the owner's devices.
package pushtokens

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"tenthouse/internal/dbx"
)

const QueryTimeoutDuration = 5 * time.Second

type Store interface {
	Save(ctx context.Context, token string, deviceInfo json.RawMessage) error
	Remove(ctx context.Context, token string) error
	RemoveTokens(ctx context.Context, tokens []string) error
	List(ctx context.Context) ([]string, error)
	PruneStale(ctx context.Context, olderThan time.Duration) (int64, error)
}

type Repository struct {
	db dbx.Querier
}

func NewRepository(q dbx.Querier) *Repository {
	return &Repository{db: q}
}

// Save upserts token + device info, updates last_updated
func (r *Repository) Save(ctx context.Context, token string, deviceInfo json.RawMessage) error {
	ctx, cancel := context.WithTimeout(ctx, QueryTimeoutDuration)
	defer cancel()

	if len(deviceInfo) == 0 {
		deviceInfo = nil
	}

	q := `
	INSERT INTO admin_push_tokens (expo_push_token, device_info, last_updated)
	VALUES ($1, $2, NOW())
	ON CONFLICT (expo_push_token)
	DO UPDATE SET device_info = EXCLUDED.device_info, last_updated = NOW()
	`
	if _, err := r.db.Exec(ctx, q, token, deviceInfo); err != nil {
		return fmt.Errorf("failed to save push token: %w", err)
	}
	return nil
}

func (r *Repository) Remove(ctx context.Context, token string) error {
	ctx, cancel := context.WithTimeout(ctx, QueryTimeoutDuration)
	defer cancel()

	if _, err := r.db.Exec(ctx, `DELETE FROM admin_push_tokens WHERE expo_push_token = $1`, token); err != nil {
		return fmt.Errorf("failed to remove push token: %w", err)
	}
	return nil
}

// RemoveTokens deletes every token in the slice
func (r *Repository) RemoveTokens(ctx context.Context, tokens []string) error {
	if len(tokens) == 0 {
		return nil
	}
	ctx, cancel := context.WithTimeout(ctx, QueryTimeoutDuration)
	defer cancel()

	if _, err := r.db.Exec(ctx, `DELETE FROM admin_push_tokens WHERE expo_push_token = ANY($1)`, tokens); err != nil {
		return fmt.Errorf("failed to remove push tokens: %w", err)
	}
	return nil
}

func (r *Repository) List(ctx context.Context) ([]string, error) {
	ctx, cancel := context.WithTimeout(ctx, QueryTimeoutDuration)
	defer cancel()

	rows, err := r.db.Query(ctx, `SELECT expo_push_token FROM admin_push_tokens ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("failed to query push tokens: %w", err)
	}
	defer rows.Close()

	var tokens []string
	for rows.Next() {
		var token string
		if err := rows.Scan(&token); err != nil {
			return nil, fmt.Errorf("failed to scan push token: %w", err)
		}
		tokens = append(tokens, token)
	}
	return tokens, rows.Err()
}

// PruneStale deletes tokens not updated in olderThan duration
func (r *Repository) PruneStale(ctx context.Context, olderThan time.Duration) (int64, error) {
	ctx, cancel := context.WithTimeout(ctx, QueryTimeoutDuration)
	defer cancel()

	// pass interval string e.g. "3600 seconds"
	interval := fmt.Sprintf("%d seconds", int64(olderThan.Seconds()))
	tag, err := r.db.Exec(ctx, `DELETE FROM admin_push_tokens WHERE last_updated < NOW() - $1::interval`, interval)
	if err != nil {
		return 0, fmt.Errorf("failed to prune push tokens: %w", err)
	}
	return tag.RowsAffected(), nil
}
