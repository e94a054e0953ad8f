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

func CreateTestExperience(t *testing.T, db DBLike, title string, price float64) uuid.UUID {
	t.Helper()

	experienceID := uuid.New()
	ctx := context.Background()

	_, err := db.Exec(ctx, `
		INSERT INTO experiences (id, title, description, location, duration, image_url, price, rating, total_reviews, max_slots_per_date, highlights)
		VALUES ($1, $2, 'A test experience', 'Lisbon', '2 hours', 'https://images.example.com/test.jpg', $3, 4.5, 10, 10, ARRAY['Test highlight'])`,
		experienceID, title, price)
	require.NoError(t, err)

	return experienceID
}

func CreateTestSlot(t *testing.T, db DBLike, experienceID uuid.UUID, date, slotTime string, total, available int32) uuid.UUID {
	t.Helper()

	slotID := uuid.New()
	ctx := context.Background()

	_, err := db.Exec(ctx, `
		INSERT INTO slots (id, experience_id, date, time, total_slots, available_slots)
		VALUES ($1, $2, $3, $4, $5, $6)`,
		slotID, experienceID, date, slotTime, total, available)
	require.NoError(t, err)

	return slotID
}

func CreateTestPromoCode(t *testing.T, db DBLike, code, discountType string, value float64, active bool) {
	t.Helper()

	ctx := context.Background()
	_, err := db.Exec(ctx, `
		INSERT INTO promo_codes (code, discount_type, discount_value, active)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (code) DO UPDATE SET discount_type = $2, discount_value = $3, active = $4`,
		code, discountType, value, active)
	require.NoError(t, err)
}

func CountBookingsForSlot(t *testing.T, db DBLike, slotID uuid.UUID) int {
	t.Helper()

	var count int
	err := db.QueryRow(context.Background(), "SELECT count(*) FROM bookings WHERE slot_id = $1", slotID).Scan(&count)
	require.NoError(t, err)
	return count
}

func AvailableSlots(t *testing.T, db DBLike, slotID uuid.UUID) int32 {
	t.Helper()

	var available int32
	err := db.QueryRow(context.Background(), "SELECT available_slots FROM slots WHERE id = $1", slotID).Scan(&available)
	require.NoError(t, err)
	return available
}

// inserts the promo codes every test environment starts with
func SeedReferenceData(pool *pgxpool.Pool) error {
	ctx := context.Background()

	_, err := pool.Exec(ctx, `
		INSERT INTO promo_codes (code, discount_type, discount_value, active) VALUES
		    ('SAVE10', 'percentage', 10, true),
		    ('FLAT20', 'fixed', 20, true),
		    ('EXPIRED50', 'percentage', 50, false)
		ON CONFLICT (code) DO NOTHING;
	`)
	if err != nil {
		return err
	}

	return nil
}

var (
	buildTruncateOnce sync.Once
	truncateSQL       atomic.Value // string
)

// truncates all tables and reseeds reference data
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
	if _, err := pool.Exec(ctx, sqlAny.(string)); err != nil {
		return err
	}

	return SeedReferenceData(pool)
}
