// Package testutil provides shared helpers for integration tests.
// Helpers skip automatically when TEST_DATABASE_URL is not set, so unit tests
// run without a database.
package testutil

import (
	"context"
	"os"
	"testing"

	"github.com/google/uuid"
	"go.uber.org/zap/zaptest"
	"gorm.io/gorm"

	dbm "aitrip/internal/models/db_models"
	"aitrip/internal/infra"
)

// NewGormDB connects to TEST_DATABASE_URL and applies every migration.
// The connection is closed when the test finishes.
func NewGormDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := requireDSN(t)
	log := zaptest.NewLogger(t)

	db, err := infra.InitPostgresql(dsn, log)
	if err != nil {
		t.Fatalf("testutil.NewGormDB: open: %v", err)
	}
	t.Cleanup(func() { infra.ClosePostgresql(db, log) })

	if err := infra.MigrateUp(context.Background(), db, log); err != nil {
		t.Fatalf("testutil.NewGormDB: migrate: %v", err)
	}
	return db
}

// NewAccount inserts a throwaway account so tests never share rows.
func NewAccount(t *testing.T, db *gorm.DB) *dbm.Account {
	t.Helper()
	account := &dbm.Account{Name: "test", PasswordHash: "x"}
	account.Email = uuid.NewString() + "@example.com"
	if err := db.Create(account).Error; err != nil {
		t.Fatalf("testutil.NewAccount: %v", err)
	}
	t.Cleanup(func() { db.Unscoped().Delete(account) })
	return account
}

func requireDSN(t *testing.T) string {
	t.Helper()
	dsn := os.Getenv("TEST_DATABASE_URL")
	if dsn == "" {
		t.Skip("TEST_DATABASE_URL not set; skipping integration test")
	}
	return dsn
}
