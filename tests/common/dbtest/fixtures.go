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

func CreateTestRoomType(t *testing.T, db DBLike, name string, adults, children int, basePrice string) uuid.UUID {
	t.Helper()

	typeID := uuid.New()
	ctx := context.Background()

	tag, err := db.Exec(ctx,
		"INSERT INTO room_types (id, name, adult_capacity, child_capacity, base_price) VALUES ($1, $2, $3, $4, $5) ON CONFLICT (name) DO NOTHING",
		typeID, name, adults, children, basePrice)
	require.NoError(t, err)

	if tag.RowsAffected() == 0 {
		_ = db.QueryRow(ctx, "SELECT id FROM room_types WHERE name = $1", name).Scan(&typeID)
	}

	return typeID
}

func CreateTestRoom(t *testing.T, db DBLike, number string, roomTypeID uuid.UUID, status string) uuid.UUID {
	t.Helper()

	roomID := uuid.New()
	ctx := context.Background()

	tag, err := db.Exec(ctx,
		"INSERT INTO rooms (id, number, room_type_id, floor, status) VALUES ($1, $2, $3, 2, $4) ON CONFLICT (number) DO NOTHING",
		roomID, number, roomTypeID, status)
	require.NoError(t, err)

	if tag.RowsAffected() == 0 {
		_ = db.QueryRow(ctx, "SELECT id FROM rooms WHERE number = $1", number).Scan(&roomID)
	}

	return roomID
}

func CreateTestClient(t *testing.T, db DBLike, fullName string) uuid.UUID {
	t.Helper()

	clientID := uuid.New()
	ctx := context.Background()

	_, err := db.Exec(ctx,
		"INSERT INTO clients (id, full_name, email) VALUES ($1, $2, $3)",
		clientID, fullName, strings.ToLower(strings.ReplaceAll(fullName, " ", "."))+"@example.com")
	require.NoError(t, err)

	return clientID
}

func CreateTestProduct(t *testing.T, db DBLike, code string, currentStock, minStock, maxStock int) uuid.UUID {
	t.Helper()

	productID := uuid.New()
	ctx := context.Background()

	var categoryID uuid.UUID
	err := db.QueryRow(ctx, "SELECT id FROM product_categories WHERE name = 'Amenities' LIMIT 1").Scan(&categoryID)
	require.NoError(t, err)

	tag, err := db.Exec(ctx,
		"INSERT INTO products (id, code, name, category_id, current_stock, min_stock, max_stock, unit_price) VALUES ($1, $2, $3, $4, $5, $6, $7, '2.50') ON CONFLICT (code) DO NOTHING",
		productID, code, "Product "+code, categoryID, currentStock, minStock, maxStock)
	require.NoError(t, err)

	if tag.RowsAffected() == 0 {
		_ = db.QueryRow(ctx, "SELECT id FROM products WHERE code = $1", code).Scan(&productID)
	}

	return productID
}

func CreateTestDotation(t *testing.T, db DBLike, roomTypeID, productID uuid.UUID, quantity int) uuid.UUID {
	t.Helper()

	dotationID := uuid.New()
	ctx := context.Background()

	tag, err := db.Exec(ctx,
		"INSERT INTO dotations (id, room_type_id, product_id, standard_quantity) VALUES ($1, $2, $3, $4) ON CONFLICT (room_type_id, product_id) DO NOTHING",
		dotationID, roomTypeID, productID, quantity)
	require.NoError(t, err)

	if tag.RowsAffected() == 0 {
		_ = db.QueryRow(ctx, "SELECT id FROM dotations WHERE room_type_id = $1 AND product_id = $2", roomTypeID, productID).Scan(&dotationID)
	}

	return dotationID
}

// inserts basic reference data needed by tests
func SeedReferenceData(pool *pgxpool.Pool) error {
	ctx := context.Background()

	_, err := pool.Exec(ctx, `
		INSERT INTO product_categories (id, name) VALUES
		    (gen_random_uuid(), 'Amenities'),
		    (gen_random_uuid(), 'Linen')
		ON CONFLICT (name) DO NOTHING;
	`)
	if err != nil {
		return err
	}

	_, err = pool.Exec(ctx, `
		INSERT INTO room_types (id, name, adult_capacity, child_capacity, base_price) VALUES
		    (gen_random_uuid(), 'Standard', 2, 1, '90.00'),
		    (gen_random_uuid(), 'Suite', 4, 2, '220.00')
		ON CONFLICT (name) DO NOTHING;
	`)
	return err
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
