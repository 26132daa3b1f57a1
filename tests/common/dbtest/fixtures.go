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

// DBLike is satisfied by both *pgxpool.Pool and pgx.Tx.
type DBLike interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// password123
const testPasswordHash = "$2a$12$uhAjVE9f92IGYv3E25pJNetg.27lVt0p7jmLWjqjmhOg92ldPS0A."

func CreateTestUser(t *testing.T, db DBLike, email, role string) uuid.UUID {
	t.Helper()

	userID := uuid.New()
	ctx := context.Background()

	tag, err := db.Exec(ctx, `INSERT INTO users (id, email, password_hash, first_name, last_name, role, is_active)
		VALUES ($1, $2, $3, 'Camille', 'Martin', $4, true) ON CONFLICT (email) DO NOTHING`,
		userID, email, testPasswordHash, role)
	require.NoError(t, err)

	if tag.RowsAffected() == 0 {
		_ = db.QueryRow(ctx, "SELECT id FROM users WHERE email = $1", email).Scan(&userID)
	}

	return userID
}

type TestMenu struct {
	ID        uuid.UUID
	StarterID uuid.UUID
	MainIDs   []uuid.UUID
	DessertID uuid.UUID
}

// CreateTestMenu inserts a menu with one starter, two mains and one dessert.
func CreateTestMenu(t *testing.T, db DBLike, date string, published bool) TestMenu {
	t.Helper()
	ctx := context.Background()

	m := TestMenu{ID: uuid.New()}
	_, err := db.Exec(ctx, "INSERT INTO menus (id, date, is_published) VALUES ($1, $2, $3)", m.ID, date, published)
	require.NoError(t, err)

	insertOption := func(course, name string, order int) uuid.UUID {
		id := uuid.New()
		_, err := db.Exec(ctx, `INSERT INTO menu_options (id, menu_id, course_type, name, sort_order)
			VALUES ($1, $2, $3, $4, $5)`, id, m.ID, course, name, order)
		require.NoError(t, err)
		return id
	}

	m.StarterID = insertOption("STARTER", "Salade de saison", 0)
	m.MainIDs = []uuid.UUID{
		insertOption("MAIN", "Poulet rôti", 0),
		insertOption("MAIN", "Gratin de légumes", 1),
	}
	m.DessertID = insertOption("DESSERT", "Tarte aux pommes", 0)
	return m
}

func CountRows(t *testing.T, db DBLike, table string) int {
	t.Helper()
	var n int
	err := db.QueryRow(context.Background(), "SELECT count(*) FROM "+table).Scan(&n)
	require.NoError(t, err)
	return n
}

// inserts the settings row with its column defaults
func SeedReferenceData(pool *pgxpool.Pool) error {
	ctx := context.Background()
	_, err := pool.Exec(ctx, `INSERT INTO settings (id) VALUES ('global') ON CONFLICT (id) DO NOTHING`)
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
