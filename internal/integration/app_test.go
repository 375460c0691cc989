package integration_test

import (
	"log/slog"
	"os"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/metinatakli/showtime-booking/internal/app"
	"github.com/metinatakli/showtime-booking/internal/cache"
	"github.com/metinatakli/showtime-booking/internal/repository"
	"github.com/metinatakli/showtime-booking/internal/reservation"
	"github.com/metinatakli/showtime-booking/internal/schedule"
	appvalidator "github.com/metinatakli/showtime-booking/internal/validator"
	"github.com/redis/go-redis/v9"
)

type TestApp struct {
	App         *app.Application
	DB          *pgxpool.Pool
	RedisClient *redis.Client
	Coordinator *reservation.Coordinator
	Scheduler   *schedule.Scheduler
}

func newTestApp(cfg app.Config) (*TestApp, error) {
	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))
	validator := appvalidator.NewValidator()

	db, err := app.NewDatabasePool(cfg)
	if err != nil {
		return nil, err
	}

	redisClient, err := app.NewRedisClient(cfg)
	if err != nil {
		db.Close()
		return nil, err
	}

	store := repository.NewPostgresStore(db, cfg.Booking.LockTimeout)

	coordinator, err := reservation.NewCoordinator(store, reservation.WithLogger(logger))
	if err != nil {
		db.Close()
		redisClient.Close()
		return nil, err
	}

	scheduler := schedule.NewScheduler(store)
	bookings := cache.NewBookingService(coordinator, redisClient, cfg.Redis.CacheTTL, logger)

	application := app.NewApp(
		cfg,
		logger,
		validator,
		bookings,
		scheduler,
	)

	return &TestApp{
		App:         application,
		DB:          db,
		RedisClient: redisClient,
		Coordinator: coordinator,
		Scheduler:   scheduler,
	}, nil
}

func (a *TestApp) Close() {
	a.RedisClient.Close()
	a.DB.Close()
}
