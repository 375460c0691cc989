package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/metinatakli/showtime-booking/internal/domain"
)

// DBTX is satisfied by both *pgxpool.Pool and pgx.Tx.
type DBTX interface {
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// PostgresStore is the unit of work over a pgx pool. Row locks taken inside
// Do wait at most lockTimeout before the statement fails.
type PostgresStore struct {
	db          *pgxpool.Pool
	lockTimeout time.Duration
}

func NewPostgresStore(db *pgxpool.Pool, lockTimeout time.Duration) *PostgresStore {
	return &PostgresStore{
		db:          db,
		lockTimeout: lockTimeout,
	}
}

func (p *PostgresStore) Do(ctx context.Context, fn func(ctx context.Context, tx domain.Tx) error) error {
	return runInTx(ctx, p.db, pgx.TxOptions{}, func(tx pgx.Tx) error {
		if p.lockTimeout > 0 {
			_, err := tx.Exec(ctx, `SELECT set_config('lock_timeout', $1, true)`, fmt.Sprintf("%dms", p.lockTimeout.Milliseconds()))
			if err != nil {
				return err
			}
		}

		return fn(ctx, newPostgresTx(tx))
	})
}

// ReadOnly runs fn in a REPEATABLE READ transaction so every statement reads
// the snapshot taken by the first one.
func (p *PostgresStore) ReadOnly(ctx context.Context, fn func(ctx context.Context, tx domain.Tx) error) error {
	txOptions := pgx.TxOptions{
		IsoLevel:   pgx.RepeatableRead,
		AccessMode: pgx.ReadOnly,
	}

	return runInTx(ctx, p.db, txOptions, func(tx pgx.Tx) error {
		return fn(ctx, newPostgresTx(tx))
	})
}

func runInTx(ctx context.Context, db *pgxpool.Pool, txOptions pgx.TxOptions, fn func(tx pgx.Tx) error) error {
	tx, err := db.BeginTx(ctx, txOptions)
	if err != nil {
		return err
	}

	err = fn(tx)
	if err == nil {
		return translateError(tx.Commit(ctx))
	}

	rollbackErr := tx.Rollback(ctx)
	if rollbackErr != nil {
		return errors.Join(err, rollbackErr)
	}

	return err
}

type postgresTx struct {
	customers *PostgresCustomerRepository
	catalog   *PostgresCatalogRepository
	shows     *PostgresShowRepository
	seats     *PostgresSeatRepository
	bookings  *PostgresBookingRepository
	payments  *PostgresPaymentRepository
}

func newPostgresTx(tx pgx.Tx) *postgresTx {
	return &postgresTx{
		customers: NewPostgresCustomerRepository(tx),
		catalog:   NewPostgresCatalogRepository(tx),
		shows:     NewPostgresShowRepository(tx),
		seats:     NewPostgresSeatRepository(tx),
		bookings:  NewPostgresBookingRepository(tx),
		payments:  NewPostgresPaymentRepository(tx),
	}
}

func (t *postgresTx) Customers() domain.CustomerRepository { return t.customers }
func (t *postgresTx) Catalog() domain.CatalogRepository    { return t.catalog }
func (t *postgresTx) Shows() domain.ShowRepository         { return t.shows }
func (t *postgresTx) Seats() domain.SeatRepository         { return t.seats }
func (t *postgresTx) Bookings() domain.BookingRepository   { return t.bookings }
func (t *postgresTx) Payments() domain.PaymentRepository   { return t.payments }

// translateError maps lock and constraint failures onto domain errors.
func translateError(err error) error {
	if err == nil {
		return nil
	}

	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return err
	}

	switch pgErr.Code {
	case pgerrcode.LockNotAvailable, pgerrcode.DeadlockDetected:
		return fmt.Errorf("%w: %s", domain.ErrSeatsBusy, pgErr.Message)
	case pgerrcode.SerializationFailure:
		return fmt.Errorf("%w: %s", domain.ErrSeatsBusy, pgErr.Message)
	}

	return err
}

func isUniqueViolation(err error, constraint string) bool {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) || pgErr.Code != pgerrcode.UniqueViolation {
		return false
	}

	return constraint == "" || pgErr.ConstraintName == constraint
}
