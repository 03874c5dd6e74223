package repositories

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s_%d?mode=memory&cache=shared", t.Name(), time.Now().UnixNano())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err, "open sqlite")
	return db
}

func mustExec(t *testing.T, db *gorm.DB, q string, args ...interface{}) {
	t.Helper()
	require.NoError(t, db.Exec(q, args...).Error, "exec failed: query=%s", q)
}

func createUserTable(t *testing.T, db *gorm.DB) {
	mustExec(t, db, `CREATE TABLE users (
		id TEXT PRIMARY KEY,
		email TEXT NOT NULL UNIQUE,
		name TEXT NOT NULL,
		role TEXT NOT NULL,
		password_hash TEXT NOT NULL,
		is_active BOOLEAN NOT NULL,
		last_login_at DATETIME,
		created_at DATETIME,
		updated_at DATETIME
	);`)
}

func createBlogPostTable(t *testing.T, db *gorm.DB) {
	mustExec(t, db, `CREATE TABLE blog_posts (
		id TEXT PRIMARY KEY,
		title TEXT NOT NULL,
		slug TEXT NOT NULL UNIQUE,
		excerpt TEXT,
		content TEXT NOT NULL,
		cover_image_url TEXT,
		scheduled_for DATETIME,
		status TEXT NOT NULL,
		published_at DATETIME,
		is_featured BOOLEAN NOT NULL,
		sort_order INTEGER NOT NULL,
		created_by TEXT,
		updated_by TEXT,
		created_at DATETIME,
		updated_at DATETIME
	);`)
}

func createServiceTable(t *testing.T, db *gorm.DB) {
	mustExec(t, db, `CREATE TABLE services (
		id TEXT PRIMARY KEY,
		name TEXT NOT NULL,
		slug TEXT NOT NULL UNIQUE,
		summary TEXT,
		description TEXT,
		icon TEXT,
		image_url TEXT,
		is_active BOOLEAN NOT NULL,
		is_featured BOOLEAN NOT NULL,
		sort_order INTEGER NOT NULL,
		created_by TEXT,
		updated_by TEXT,
		created_at DATETIME,
		updated_at DATETIME
	);`)
}

func createNewsletterTable(t *testing.T, db *gorm.DB) {
	mustExec(t, db, `CREATE TABLE newsletter_subscribers (
		id TEXT PRIMARY KEY,
		email TEXT NOT NULL UNIQUE,
		is_active BOOLEAN NOT NULL,
		sort_order INTEGER NOT NULL,
		created_by TEXT,
		updated_by TEXT,
		created_at DATETIME,
		updated_at DATETIME
	);`)
}

func createContactTable(t *testing.T, db *gorm.DB) {
	mustExec(t, db, `CREATE TABLE contact_submissions (
		id TEXT PRIMARY KEY,
		name TEXT NOT NULL,
		email TEXT NOT NULL,
		subject TEXT,
		message TEXT NOT NULL,
		is_read BOOLEAN NOT NULL,
		sort_order INTEGER NOT NULL,
		created_by TEXT,
		updated_by TEXT,
		created_at DATETIME,
		updated_at DATETIME
	);`)
}

// asBool tolerates sqlite returning booleans as integers.
func asBool(v any) bool {
	switch b := v.(type) {
	case bool:
		return b
	case int64:
		return b != 0
	}
	return false
}
