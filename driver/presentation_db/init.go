package presentation_db

import (
	"context"
	"fmt"
	"os"

	"finconf/config"
	"finconf/utils/logger"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/joho/godotenv"
)

// InitDBConnection opens the shared connection pool, sized and timed
// per the database config. The pool is injected into the DI container;
// teardown is the caller's Close.
func InitDBConnection(ctx context.Context, cfg *config.Config) (*pgxpool.Pool, error) {
	poolConfig, err := newPoolConfig(cfg)
	if err != nil {
		logger.Logger.Error("Failed to parse pool configuration", "error", err)
		return nil, err
	}

	pool, err := pgxpool.NewWithConfig(ctx, poolConfig)
	if err != nil {
		logger.Logger.Error("Failed to create connection pool", "error", err)
		return nil, err
	}

	if err := pool.Ping(ctx); err != nil {
		logger.Logger.Error("Failed to ping database", "error", err)
		pool.Close()
		return nil, err
	}

	logger.Logger.Info("Connected to database",
		"database", os.Getenv("DB_NAME"),
		"max_connections", poolConfig.MaxConns,
	)

	return pool, nil
}

func newPoolConfig(cfg *config.Config) (*pgxpool.Config, error) {
	poolConfig, err := pgxpool.ParseConfig(getDBConnectionString())
	if err != nil {
		return nil, err
	}

	poolConfig.MaxConns = int32(cfg.Database.MaxConnections)
	poolConfig.ConnConfig.ConnectTimeout = cfg.Database.ConnectionTimeout

	return poolConfig, nil
}

func getDBConnectionString() string {
	// .env is optional outside local development
	_ = godotenv.Load()

	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
		os.Getenv("DB_HOST"),
		os.Getenv("DB_PORT"),
		os.Getenv("DB_USER"),
		os.Getenv("DB_PASSWORD"),
		os.Getenv("DB_NAME"),
	)
}
