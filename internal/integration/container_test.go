package integration_test

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/golang-migrate/migrate/v4"
	pgxmigrate "github.com/golang-migrate/migrate/v4/database/pgx"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"github.com/jackc/pgx/v5"
	pgxstd "github.com/jackc/pgx/v5/stdlib"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	tcredis "github.com/testcontainers/testcontainers-go/modules/redis"
	"golang.org/x/sync/errgroup"
)

const (
	migrationsURL    = "file://../../migrations"
	containerStartup = 60 * time.Second
)

// backends are the containers one suite runs against. Both start in parallel.
type backends struct {
	postgres  *postgres.PostgresContainer
	redis     *tcredis.RedisContainer
	dbURL     string
	redisAddr string
}

func startBackends(ctx context.Context) (*backends, error) {
	ctx, cancel := context.WithTimeout(ctx, containerStartup)
	defer cancel()

	b := &backends{}
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		return b.startPostgres(gctx)
	})
	g.Go(func() error {
		return b.startRedis(gctx)
	})

	if err := g.Wait(); err != nil {
		b.terminate()
		return nil, err
	}

	return b, nil
}

func (b *backends) startPostgres(ctx context.Context) error {
	container, err := postgres.Run(ctx, dbImageName,
		postgres.WithDatabase(dbName),
		postgres.WithUsername(dbUser),
		postgres.WithPassword(dbPassword),
		postgres.BasicWaitStrategies(),
	)
	b.postgres = container
	if err != nil {
		return fmt.Errorf("start postgres: %w", err)
	}

	b.dbURL, err = container.ConnectionString(ctx, "sslmode=disable")
	if err != nil {
		return fmt.Errorf("postgres connection string: %w", err)
	}

	return migrateUp(b.dbURL)
}

func (b *backends) startRedis(ctx context.Context) error {
	container, err := tcredis.Run(ctx, cacheImageName)
	b.redis = container
	if err != nil {
		return fmt.Errorf("start redis: %w", err)
	}

	// go-redis takes host:port, not the redis:// URL
	b.redisAddr, err = container.Endpoint(ctx, "")
	if err != nil {
		return fmt.Errorf("redis endpoint: %w", err)
	}

	return nil
}

// terminate stops whatever started, including after a failed start.
func (b *backends) terminate() {
	var containers []testcontainers.Container
	if b.postgres != nil {
		containers = append(containers, b.postgres)
	}
	if b.redis != nil {
		containers = append(containers, b.redis)
	}

	for _, container := range containers {
		if err := testcontainers.TerminateContainer(container); err != nil {
			log.Printf("failed to terminate container: %s", err)
		}
	}
}

func migrateUp(dsn string) error {
	config, err := pgx.ParseConfig(dsn)
	if err != nil {
		return fmt.Errorf("parse dsn: %w", err)
	}

	db := pgxstd.OpenDB(*config)
	defer db.Close()

	driver, err := pgxmigrate.WithInstance(db, &pgxmigrate.Config{})
	if err != nil {
		return fmt.Errorf("migration driver: %w", err)
	}

	m, err := migrate.NewWithDatabaseInstance(migrationsURL, "pgx", driver)
	if err != nil {
		return fmt.Errorf("load migrations: %w", err)
	}

	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("apply migrations: %w", err)
	}

	return nil
}
