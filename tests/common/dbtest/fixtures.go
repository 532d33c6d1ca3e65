//go:build unit || e2e

package dbtest

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
)

// DBLike is satisfied by *pgxpool.Pool, pgx.Tx and pgx.Conn, so fixtures can run inside a test transaction.
type DBLike interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// TestPassword matches passwordHash below
const TestPassword = "password123"

const passwordHash = "$2a$12$uhAjVE9f92IGYv3E25pJNetg.27lVt0p7jmLWjqjmhOg92ldPS0A."

func CreateTestUser(t *testing.T, db DBLike, email, role string) uuid.UUID {
	t.Helper()

	userID := uuid.New()
	ctx := context.Background()

	tag, err := db.Exec(ctx, `INSERT INTO users (id, name, email, password_hash, role, is_active)
		VALUES ($1, $2, $3, $4, $5, true) ON CONFLICT ((lower(email))) DO NOTHING`,
		userID, "Test "+role, email, passwordHash, role)
	require.NoError(t, err)

	if tag.RowsAffected() == 0 {
		_ = db.QueryRow(ctx, "SELECT id FROM users WHERE lower(email) = lower($1)", email).Scan(&userID)
	}

	return userID
}

func DeactivateUser(t *testing.T, db DBLike, userID uuid.UUID) {
	t.Helper()

	_, err := db.Exec(context.Background(), "UPDATE users SET is_active = false WHERE id = $1", userID)
	require.NoError(t, err)
}

func CreateTestCamping(t *testing.T, db DBLike, ownerID uuid.UUID, name, city string) uuid.UUID {
	t.Helper()

	campingID := uuid.New()
	slug := strings.ToLower(strings.ReplaceAll(name, " ", "-")) + "-" + campingID.String()[:8]
	_, err := db.Exec(context.Background(), `INSERT INTO campings (id, owner_id, name, slug, description, city, county)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		campingID, ownerID, name, slug, "Fixture camping", city, "Somogy")
	require.NoError(t, err)

	return campingID
}

// CreateTestSpot inserts a tent spot priced at pricePerNight at the given grid position.
func CreateTestSpot(t *testing.T, db DBLike, campingID uuid.UUID, row, column int, pricePerNight int64, available bool) uuid.UUID {
	t.Helper()

	spotID := uuid.New()
	_, err := db.Exec(context.Background(), `INSERT INTO camping_spots
		(id, camping_id, name, type, capacity, price_per_night, is_available, "row", "column")
		VALUES ($1, $2, $3, 'tent', 4, $4, $5, $6, $7)`,
		spotID, campingID, fmt.Sprintf("R%dC%d", row, column), pricePerNight, available, row, column)
	require.NoError(t, err)

	return spotID
}

// CreateTestBooking writes straight to the table; dates are YYYY-MM-DD.
func CreateTestBooking(t *testing.T, db DBLike, userID, campingID, spotID uuid.UUID, arrival, departure, status string) uuid.UUID {
	t.Helper()

	bookingID := uuid.New()
	_, err := db.Exec(context.Background(), `INSERT INTO bookings
		(id, user_id, camping_id, camping_spot_id, arrival_date, departure_date, status, total_price)
		VALUES ($1, $2, $3, $4, $5::date, $6::date, $7, 0)`,
		bookingID, userID, campingID, spotID, arrival, departure, status)
	require.NoError(t, err)

	return bookingID
}

func CountBookings(t *testing.T, db DBLike, spotID uuid.UUID) int {
	t.Helper()

	var n int
	err := db.QueryRow(context.Background(),
		"SELECT count(*) FROM bookings WHERE camping_spot_id = $1 AND status <> 'cancelled'", spotID).Scan(&n)
	require.NoError(t, err)
	return n
}

func CountOutboxJobs(t *testing.T, db DBLike, topic string) int {
	t.Helper()

	var n int
	err := db.QueryRow(context.Background(), "SELECT count(*) FROM notification_jobs WHERE topic = $1", topic).Scan(&n)
	require.NoError(t, err)
	return n
}

var (
	buildTruncateOnce sync.Once
	truncateSQL       atomic.Value // string
)

// ResetDB truncates every public table.
func ResetDB(pool *pgxpool.Pool) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	buildTruncateOnce.Do(func() {
		rows, err := pool.Query(ctx, `
		  SELECT 'public.' || quote_ident(tablename)
		  FROM pg_tables
		  WHERE schemaname = 'public'
		    AND tablename NOT IN ('schema_migrations')`)
		if err != nil {
			truncateSQL.Store("")
			return
		}
		defer rows.Close()
		var tables []string
		for rows.Next() {
			var t string
			if err := rows.Scan(&t); err != nil {
				truncateSQL.Store("")
				return
			}
			tables = append(tables, t)
		}
		if rows.Err() != nil {
			truncateSQL.Store("")
			return
		}
		if len(tables) == 0 {
			truncateSQL.Store("SELECT 1")
			return
		}
		truncateSQL.Store("TRUNCATE " + strings.Join(tables, ", ") + " RESTART IDENTITY CASCADE;")
	})
	sqlAny := truncateSQL.Load()
	if sqlAny == nil || sqlAny.(string) == "" {
		return fmt.Errorf("failed to build TRUNCATE SQL")
	}
	_, err := pool.Exec(ctx, sqlAny.(string))
	return err
}
