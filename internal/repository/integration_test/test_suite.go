package integration_test

import (
	"context"
	"log"
	"os"
	"sync"
	"testing"
	"time"

	"dispatch/internal/pkg/config"
	"dispatch/internal/pkg/migrations"
	"dispatch/internal/pkg/postgres"
	"dispatch/pkg/logger/zap_adapter"
	"dispatch/pkg/querier"
	"dispatch/pkg/tx"

	"github.com/avito-tech/go-transaction-manager/pgxv5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
)

var (
	poolInstance    *pgxpool.Pool
	querierInstance *querier.Querier
	querierOnce     sync.Once
)

func initPool() {
	querierOnce.Do(func() {
		// godotenv.Load(.env.test) не вызываем так как Makefile подгружает их
		cfg := &config.Database{
			Host:     os.Getenv("POSTGRES_HOST"),
			Port:     os.Getenv("POSTGRES_PORT"),
			User:     os.Getenv("POSTGRES_USER"),
			Password: os.Getenv("POSTGRES_PASSWORD"),
			DBName:   os.Getenv("POSTGRES_DB"),
			SSLMode:  os.Getenv("POSTGRES_SSLMODE"),
		}

		ctx := context.Background()
		zapLogger := zap_adapter.NewNop()

		connPool, err := postgres.NewConnPool(ctx, zapLogger, cfg)
		if err != nil {
			log.Fatalf("integration pool: %v", err)
		}

		if err := migrations.Up(ctx, zapLogger, connPool); err != nil {
			log.Fatalf("integration migrations: %v", err)
		}

		poolInstance = connPool
		querierInstance = querier.New(connPool, pgxv5.DefaultCtxGetter)
	})
}

func GetQuerier() *querier.Querier {
	initPool()
	return querierInstance
}

func GetTxManager() *tx.Manager {
	initPool()
	return tx.New(poolInstance)
}

func SetupDB(t *testing.T, setupSql string) {
	t.Helper()

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	if setupSql == "" {
		GetQuerier()
		return
	}

	_, err := GetQuerier().Exec(ctx, setupSql)
	require.NoError(t, err)
}

func TeardownDB(t *testing.T) {
	t.Helper()

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	_, err := GetQuerier().Exec(ctx, `
		TRUNCATE TABLE transport_requests, drivers CASCADE;
	`)
	require.NoError(t, err)
}
