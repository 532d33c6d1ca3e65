package shared

import (
	"context"
	"time"

	"campsite-booking/internal/domain/camping"
	"campsite-booking/internal/domain/comment"
	"campsite-booking/internal/domain/reservation"
	"campsite-booking/internal/domain/spot"
	"campsite-booking/internal/domain/user"
	sqlc "campsite-booking/internal/infra/sqlc/generated"

	"github.com/google/uuid"
)

type UnitOfWork interface {
	// Within: Full transaction for write operations with retry logic
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
	// WithinReadOnly: Read-only transaction for multi-table consistent reads
	WithinReadOnly(ctx context.Context, fn func(ctx context.Context, db sqlc.DBTX) error) error
	// WithDB: Single query operations using implicit transactions
	WithDB(ctx context.Context, fn func(ctx context.Context, db sqlc.DBTX) error) error
	// CommandReads: Direct access to command reads for validation outside transactions
	CommandReads() CommandReads
}

type Tx interface {
	Users() UserRepository
	Campings() CampingRepository
	Spots() SpotRepository
	Reservations() ReservationRepository
	Comments() CommentRepository
	Notifications() NotificationRepository
	Reads() CommandReads
	DB() sqlc.DBTX
}

// CommandReads loads aggregates for validation on the write side.
// HasConflict makes it usable as the reservation factory's conflict checker.
type CommandReads interface {
	CampingByID(ctx context.Context, id uuid.UUID) (*camping.Camping, error)
	SlugTaken(ctx context.Context, slug string, excludeID *uuid.UUID) (bool, error)
	SpotByID(ctx context.Context, id uuid.UUID) (*spot.Spot, error)
	ReservationByID(ctx context.Context, id uuid.UUID) (*reservation.Reservation, error)
	CommentByID(ctx context.Context, id uuid.UUID) (*comment.Comment, error)
	HasConflict(ctx context.Context, spotID uuid.UUID, period reservation.StayPeriod) (bool, error)
}

type UserRepository interface {
	Create(ctx context.Context, tx sqlc.DBTX, u *user.User) error
	UpdateLastLogin(ctx context.Context, tx sqlc.DBTX, userID uuid.UUID, at time.Time) error
}

type CampingRepository interface {
	Create(ctx context.Context, tx sqlc.DBTX, c *camping.Camping) error
	Update(ctx context.Context, tx sqlc.DBTX, c *camping.Camping) error
	Delete(ctx context.Context, tx sqlc.DBTX, id uuid.UUID) error
}

type SpotRepository interface {
	Create(ctx context.Context, tx sqlc.DBTX, s *spot.Spot) error
	Update(ctx context.Context, tx sqlc.DBTX, s *spot.Spot) error
	Delete(ctx context.Context, tx sqlc.DBTX, id uuid.UUID) error
}

type ReservationRepository interface {
	Create(ctx context.Context, tx sqlc.DBTX, res *reservation.Reservation) error
	// FindForUpdate locks the row until the transaction ends
	FindForUpdate(ctx context.Context, tx sqlc.DBTX, id uuid.UUID) (*reservation.Reservation, error)
	UpdateStatus(ctx context.Context, tx sqlc.DBTX, res *reservation.Reservation) error
	Delete(ctx context.Context, tx sqlc.DBTX, id uuid.UUID) error
}

type CommentRepository interface {
	Create(ctx context.Context, tx sqlc.DBTX, c *comment.Comment) error
	Update(ctx context.Context, tx sqlc.DBTX, c *comment.Comment) error
	Delete(ctx context.Context, tx sqlc.DBTX, id uuid.UUID) error
}

type NotificationRepository interface {
	CreateJob(ctx context.Context, tx sqlc.DBTX, kind, topic string, payload []byte, runAt time.Time) error
	ClaimDue(ctx context.Context, tx sqlc.DBTX, now time.Time, limit int32) ([]NotificationJob, error)
	MarkSent(ctx context.Context, tx sqlc.DBTX, jobID uuid.UUID) error
	RecordFailure(ctx context.Context, tx sqlc.DBTX, jobID uuid.UUID, status, lastError string, nextRunAt time.Time) error
}
