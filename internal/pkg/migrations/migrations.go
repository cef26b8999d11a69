package migrations

import (
	"context"
	"embed"
	"fmt"
	"io/fs"

	"dispatch/pkg/logger"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"
)

//go:embed sql/*.sql
var embedMigrations embed.FS

const dir = "sql"

// Up накатывает встроенные миграции на базу пула. goose работает через database/sql,
// поэтому поверх пула открывается stdlib-обёртка, которая закрывается после применения.
func Up(ctx context.Context, log logger.Logger, pool *pgxpool.Pool) error {
	db := stdlib.OpenDBFromPool(pool)
	defer func() {
		if err := db.Close(); err != nil {
			log.Warn("close migrations db handle", logger.NewField("error", err))
		}
	}()

	fsys, err := fs.Sub(embedMigrations, dir)
	if err != nil {
		return fmt.Errorf("migrations fs: %w", err)
	}

	provider, err := goose.NewProvider(goose.DialectPostgres, db, fsys)
	if err != nil {
		return fmt.Errorf("goose provider: %w", err)
	}

	results, err := provider.Up(ctx)
	if err != nil {
		return fmt.Errorf("apply migrations: %w", err)
	}

	for _, result := range results {
		log.Info("migration applied",
			logger.NewField("version", result.Source.Version),
			logger.NewField("path", result.Source.Path),
			logger.NewField("duration", result.Duration.String()),
		)
	}
	return nil
}
