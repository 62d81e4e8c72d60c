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
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
)

// bcrypt of "password123"
const TestPasswordHash = "$2a$12$uhAjVE9f92IGYv3E25pJNetg.27lVt0p7jmLWjqjmhOg92ldPS0A."

const TestPassword = "password123"

func CreateTestUser(t *testing.T, db DBLike, email, role string) uuid.UUID {
	t.Helper()

	userID := uuid.New()
	ctx := context.Background()

	tag, err := db.Exec(ctx, "INSERT INTO users (id, email, password_hash, role, is_active) VALUES ($1, $2, $3, $4, true) ON CONFLICT (lower(email)) DO NOTHING",
		userID, email, TestPasswordHash, role)
	require.NoError(t, err)

	if tag.RowsAffected() == 0 {
		_ = db.QueryRow(ctx, "SELECT id FROM users WHERE lower(email) = lower($1)", email).Scan(&userID)
	}

	return userID
}

// CreateTestVendor creates a vendor login plus its vendor row and returns the vendor id.
func CreateTestVendor(t *testing.T, db DBLike, email string, commissionRate string) uuid.UUID {
	t.Helper()

	userID := CreateTestUser(t, db, email, "vendor")

	var vendorID uuid.UUID
	err := db.QueryRow(context.Background(), `
		INSERT INTO vendors (user_id, name, email, commission_rate, is_active)
		VALUES ($1, $2, $3, $4::numeric, true)
		ON CONFLICT (user_id) DO UPDATE SET commission_rate = EXCLUDED.commission_rate
		RETURNING id`,
		userID, "Vendor "+email, email, commissionRate).Scan(&vendorID)
	require.NoError(t, err)

	return vendorID
}

// CreateTestSerial inserts an unused serial whose purchase link token is token.
func CreateTestSerial(t *testing.T, db DBLike, vendorID uuid.UUID, serialNumber, token string) uuid.UUID {
	t.Helper()

	var serialID uuid.UUID
	err := db.QueryRow(context.Background(), `
		INSERT INTO serials (serial_number, vendor_id, qr_code, qr_hash, link)
		VALUES ($1, $2, 'data:image/png;base64,', 'hash', $3)
		RETURNING id`,
		serialNumber, vendorID, token).Scan(&serialID)
	require.NoError(t, err)

	return serialID
}

func SerialIsUsed(t *testing.T, db DBLike, serialID uuid.UUID) bool {
	t.Helper()

	var used bool
	err := db.QueryRow(context.Background(), "SELECT is_used FROM serials WHERE id = $1", serialID).Scan(&used)
	require.NoError(t, err)
	return used
}

func CountClientsBySerial(t *testing.T, db DBLike, serialID uuid.UUID) int {
	t.Helper()

	var n int
	err := db.QueryRow(context.Background(), "SELECT count(*) FROM clients WHERE serial_id = $1", serialID).Scan(&n)
	require.NoError(t, err)
	return n
}

var (
	buildTruncateOnce sync.Once
	truncateSQL       atomic.Value // string
)

// truncates all tables
func ResetDB(pool *pgxpool.Pool) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	buildTruncateOnce.Do(func() {
		rows, err := pool.Query(ctx, `
		  SELECT 'public.' || quote_ident(tablename)
		  FROM pg_tables
		  WHERE schemaname = 'public'
		    AND tablename NOT IN ('atlas_schema_revisions')`)
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
