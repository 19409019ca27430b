package db

import (
	"context"
	"database/sql"
	"fmt"

	"tenthouse/internal/db/migrations"

	_ "github.com/lib/pq"
	"github.com/pressly/goose/v3"
)

// Migrate applies every pending embedded migration to the database at addr.
func Migrate(ctx context.Context, addr string) error {
	conn, err := sql.Open("postgres", addr)
	if err != nil {
		return fmt.Errorf("db open error: %w", err)
	}
	defer conn.Close()

	goose.SetBaseFS(migrations.Migrations)
	if err := goose.SetDialect("postgres"); err != nil {
		return err
	}

	if err := goose.UpContext(ctx, conn, "."); err != nil {
		return fmt.Errorf("migration error: %w", err)
	}
	return nil
}
