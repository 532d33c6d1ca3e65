package uow

import (
	"context"
	"errors"
	"log/slog"
	"math/rand/v2"
	"time"

	"campsite-booking/internal/domain/camping"
	"campsite-booking/internal/domain/comment"
	"campsite-booking/internal/domain/reservation"
	"campsite-booking/internal/domain/spot"
	"campsite-booking/internal/infra/readstore"
	"campsite-booking/internal/infra/repository"
	sqlc "campsite-booking/internal/infra/sqlc/generated"
	"campsite-booking/internal/pkg/config"
	"campsite-booking/internal/pkg/errs"
	"campsite-booking/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

const (
	pgErrCodeSerializationFailure = "40001"
	pgErrCodeDeadlockDetected     = "40P01"
)

var (
	errTransactionBegin   = errs.New("failed to begin transaction")
	errTransactionCommit  = errs.New("failed to commit transaction")
	errMaxRetriesExceeded = errs.New("transaction failed after max retries")
)

// RetryPolicy bounds how often a write transaction is replayed after a serialization failure or deadlock.
type RetryPolicy struct {
	MaxRetries int
	Base       time.Duration
}

func RetryPolicyFrom(cfg config.DBConfig) RetryPolicy {
	p := RetryPolicy{MaxRetries: cfg.TxMaxRetries, Base: cfg.TxRetryBase}
	if p.MaxRetries < 0 {
		p.MaxRetries = 0
	}
	if p.Base <= 0 {
		p.Base = 100 * time.Millisecond
	}
	return p
}

// Delay is Base doubled per attempt plus up to 20% jitter.
func (p RetryPolicy) Delay(attempt int) time.Duration {
	d := p.Base << attempt
	if spread := int64(d / 5); spread > 0 {
		d += time.Duration(rand.Int64N(spread))
	}
	return d
}

type PostgresUoW struct {
	pool  *pgxpool.Pool
	q     *sqlc.Queries
	retry RetryPolicy
}

func NewPostgresUoW(pool *pgxpool.Pool, q *sqlc.Queries, cfg config.Config) *PostgresUoW {
	return &PostgresUoW{
		pool:  pool,
		q:     q,
		retry: RetryPolicyFrom(cfg.DB),
	}
}

// Within runs fn in a READ COMMITTED transaction. The booking exclusion constraint, not the isolation level,
// is what rejects overlapping stays.
func (u *PostgresUoW) Within(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	return u.withRetry(ctx, pgx.TxOptions{IsoLevel: pgx.ReadCommitted}, fn)
}

func (u *PostgresUoW) WithinReadOnly(ctx context.Context, fn func(ctx context.Context, db sqlc.DBTX) error) error {
	return u.runReadOnlyTx(ctx, pgx.TxOptions{AccessMode: pgx.ReadOnly}, fn)
}

func (u *PostgresUoW) WithDB(ctx context.Context, fn func(ctx context.Context, db sqlc.DBTX) error) error {
	return fn(ctx, u.pool)
}

func (u *PostgresUoW) CommandReads() shared.CommandReads {
	return &commandReads{uow: u, dbtx: u.pool}
}

func (u *PostgresUoW) withRetry(ctx context.Context, options pgx.TxOptions, fn func(ctx context.Context, tx shared.Tx) error) error {
	var err error
	for attempt := 0; ; attempt++ {
		err = u.runOnce(ctx, options, fn)
		if err == nil || !isRetryableError(err) {
			return err
		}
		if attempt >= u.retry.MaxRetries {
			break
		}

		wait := u.retry.Delay(attempt)
		slog.Warn("retrying transaction",
			"attempt", attempt+1,
			"wait_ms", wait.Milliseconds(),
			"error", err.Error())

		timer := time.NewTimer(wait)
		select {
		case <-ctx.Done():
			timer.Stop()
			return ctx.Err()
		case <-timer.C:
		}
	}

	slog.Error("transaction failed after max retries", "attempts", u.retry.MaxRetries+1, "error", err.Error())
	return errs.Mark(err, errMaxRetriesExceeded)
}

// runOnce owns exactly one pgx transaction so no deferred rollback outlives its attempt.
func (u *PostgresUoW) runOnce(ctx context.Context, options pgx.TxOptions, fn func(ctx context.Context, tx shared.Tx) error) error {
	pgxTx, err := u.pool.BeginTx(ctx, options)
	if err != nil {
		return errs.Mark(err, errTransactionBegin)
	}
	defer rollback(ctx, pgxTx)

	if err := fn(ctx, &pgTx{dbtx: pgxTx, uow: u}); err != nil {
		return err
	}
	if err := pgxTx.Commit(ctx); err != nil {
		return errs.Mark(err, errTransactionCommit)
	}
	return nil
}

func (u *PostgresUoW) runReadOnlyTx(ctx context.Context, options pgx.TxOptions, fn func(ctx context.Context, db sqlc.DBTX) error) error {
	pgxTx, err := u.pool.BeginTx(ctx, options)
	if err != nil {
		return errs.Mark(err, errTransactionBegin)
	}
	defer rollback(ctx, pgxTx)

	if err := fn(ctx, pgxTx); err != nil {
		return err
	}
	return pgxTx.Commit(ctx)
}

func rollback(ctx context.Context, tx pgx.Tx) {
	if err := tx.Rollback(ctx); err != nil && !errors.Is(err, pgx.ErrTxClosed) {
		slog.Warn("rollback failed", "error", err.Error())
	}
}

func isRetryableError(err error) bool {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return false
	}

	switch pgErr.Code {
	case pgErrCodeSerializationFailure, pgErrCodeDeadlockDetected:
		return true
	default:
		return false
	}
}

type pgTx struct {
	dbtx sqlc.DBTX
	uow  *PostgresUoW

	// Lazy-initialized repositories
	userRepo         shared.UserRepository
	campingRepo      shared.CampingRepository
	spotRepo         shared.SpotRepository
	reservationRepo  shared.ReservationRepository
	commentRepo      shared.CommentRepository
	notificationRepo shared.NotificationRepository
	commandReads     shared.CommandReads
}

func (t *pgTx) DB() sqlc.DBTX {
	return t.dbtx
}

func (t *pgTx) Users() shared.UserRepository {
	if t.userRepo == nil {
		t.userRepo = repository.NewUserRepository(t.uow.q)
	}
	return t.userRepo
}

func (t *pgTx) Campings() shared.CampingRepository {
	if t.campingRepo == nil {
		t.campingRepo = repository.NewCampingRepository(t.uow.q)
	}
	return t.campingRepo
}

func (t *pgTx) Spots() shared.SpotRepository {
	if t.spotRepo == nil {
		t.spotRepo = repository.NewSpotRepository(t.uow.q)
	}
	return t.spotRepo
}

func (t *pgTx) Reservations() shared.ReservationRepository {
	if t.reservationRepo == nil {
		t.reservationRepo = repository.NewReservationRepository(t.uow.q)
	}
	return t.reservationRepo
}

func (t *pgTx) Comments() shared.CommentRepository {
	if t.commentRepo == nil {
		t.commentRepo = repository.NewCommentRepository(t.uow.q)
	}
	return t.commentRepo
}

func (t *pgTx) Notifications() shared.NotificationRepository {
	if t.notificationRepo == nil {
		t.notificationRepo = repository.NewNotificationRepository(t.uow.q)
	}
	return t.notificationRepo
}

func (t *pgTx) Reads() shared.CommandReads {
	if t.commandReads == nil {
		t.commandReads = &commandReads{
			uow:  t.uow,
			dbtx: t.dbtx,
		}
	}
	return t.commandReads
}

type commandReads struct {
	uow  *PostgresUoW
	dbtx sqlc.DBTX

	// Lazy-initialized stores
	campings         *repository.CampingRepository
	spots            *repository.SpotRepository
	reservations     *repository.ReservationRepository
	comments         *repository.CommentRepository
	reservationStore *readstore.ReservationReadStore
}

func (r *commandReads) CampingByID(ctx context.Context, id uuid.UUID) (*camping.Camping, error) {
	if r.campings == nil {
		r.campings = repository.NewCampingRepository(r.uow.q)
	}
	return r.campings.FindByID(ctx, r.dbtx, id)
}

func (r *commandReads) SlugTaken(ctx context.Context, slug string, excludeID *uuid.UUID) (bool, error) {
	if r.campings == nil {
		r.campings = repository.NewCampingRepository(r.uow.q)
	}
	return r.campings.SlugTaken(ctx, r.dbtx, slug, excludeID)
}

func (r *commandReads) SpotByID(ctx context.Context, id uuid.UUID) (*spot.Spot, error) {
	if r.spots == nil {
		r.spots = repository.NewSpotRepository(r.uow.q)
	}
	return r.spots.FindByID(ctx, r.dbtx, id)
}

func (r *commandReads) ReservationByID(ctx context.Context, id uuid.UUID) (*reservation.Reservation, error) {
	if r.reservations == nil {
		r.reservations = repository.NewReservationRepository(r.uow.q)
	}
	return r.reservations.FindByID(ctx, r.dbtx, id)
}

func (r *commandReads) CommentByID(ctx context.Context, id uuid.UUID) (*comment.Comment, error) {
	if r.comments == nil {
		r.comments = repository.NewCommentRepository(r.uow.q)
	}
	return r.comments.FindByID(ctx, r.dbtx, id)
}

func (r *commandReads) HasConflict(ctx context.Context, spotID uuid.UUID, period reservation.StayPeriod) (bool, error) {
	if r.reservationStore == nil {
		r.reservationStore = readstore.NewReservationReadStore(r.uow.q, r.dbtx)
	}
	return r.reservationStore.HasConflict(ctx, spotID, period)
}
