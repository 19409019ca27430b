package storage

import (
	"context"
	"fmt"

	"tenthouse/internal/domain/inquiries"
	"tenthouse/internal/domain/pushtokens"
	"tenthouse/internal/domain/testimonials"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type Container struct {
	pool         *pgxpool.Pool
	Testimonials testimonials.Store
	Inquiries    inquiries.Store
	PushTokens   pushtokens.Store
}

func NewContainer(db *pgxpool.Pool) *Container {
	return &Container{
		pool:         db,
		Testimonials: testimonials.NewRepository(db),
		Inquiries:    inquiries.NewRepository(db),
		PushTokens:   pushtokens.NewRepository(db),
	}
}

// Tx is a tx-scoped set of repositories for atomic units of work.
type Tx struct {
	Testimonials testimonials.Store
	Inquiries    inquiries.Store
}

// WithTx runs fn inside one transaction, committing only if fn succeeds.
func (c *Container) WithTx(ctx context.Context, fn func(s *Tx) error) error {
	if c.pool == nil {
		return fmt.Errorf("storage container pool is nil")
	}

	tx, err := c.pool.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return err
	}

	defer func() {
		_ = tx.Rollback(ctx) // safe even if already committed
	}()

	s := &Tx{
		Testimonials: testimonials.NewRepository(tx),
		Inquiries:    inquiries.NewRepository(tx),
	}

	if err := fn(s); err != nil {
		return err
	}

	return tx.Commit(ctx)
}
