package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	pgxdecimal "github.com/jackc/pgx-shopspring-decimal"
	"github.com/sethvargo/go-retry"

	"github.com/jhoicas/Suministros-api/pkg/config"
	"github.com/jhoicas/Suministros-api/pkg/logger"
)

// NewPool crea el pool de conexiones PostgreSQL. Si la base no responde reintenta
// indefinidamente cada cfg.RetryInterval; cada intento está acotado por cfg.ConnectTimeout.
// Sólo la cancelación de ctx detiene los reintentos.
func NewPool(ctx context.Context, cfg config.DBConfig, log *logger.Logger) (*pgxpool.Pool, error) {
	poolConfig, err := pgxpool.ParseConfig(cfg.ConnectionString())
	if err != nil {
		return nil, fmt.Errorf("parse DSN: %w", err)
	}
	if cfg.MaxConns > 0 {
		poolConfig.MaxConns = int32(cfg.MaxConns)
	}
	poolConfig.MinConns = 1
	poolConfig.MaxConnLifetime = time.Hour
	poolConfig.MaxConnIdleTime = 30 * time.Minute
	poolConfig.HealthCheckPeriod = time.Minute
	poolConfig.ConnConfig.ConnectTimeout = cfg.ConnectTimeout

	// Registrar codec para NUMERIC -> shopspring/decimal (sumas del dashboard).
	poolConfig.AfterConnect = func(ctx context.Context, conn *pgx.Conn) error {
		pgxdecimal.Register(conn.TypeMap())
		return nil
	}

	var pool *pgxpool.Pool
	attempt := 0
	err = retry.Do(ctx, retry.NewConstant(cfg.RetryInterval), func(ctx context.Context) error {
		attempt++
		p, err := connect(ctx, poolConfig, cfg.ConnectTimeout)
		if err != nil {
			log.Warn().Err(err).Int("attempt", attempt).Dur("retry_in", cfg.RetryInterval).Msg("base de datos no disponible")
			return retry.RetryableError(err)
		}
		pool = p
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("conectar DB: %w", err)
	}
	log.Info().Int("attempt", attempt).Msg("conectado a PostgreSQL")
	return pool, nil
}

func connect(ctx context.Context, poolConfig *pgxpool.Config, timeout time.Duration) (*pgxpool.Pool, error) {
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	pool, err := pgxpool.NewWithConfig(ctx, poolConfig)
	if err != nil {
		return nil, fmt.Errorf("crear pool: %w", err)
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("ping DB: %w", err)
	}
	return pool, nil
}
