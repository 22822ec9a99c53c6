package testutil

import (
	"fmt"
	"testing"

	"github.com/google/uuid"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	jwtutil "shoply/app/jwt"
	"shoply/app/models"
)

// OpenTestDB opens a fresh in-memory SQLite database with all tables
// migrated. The shared cache keeps the database alive across the pool's
// connections for the duration of the test.
func OpenTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString())
	gdb, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	if err != nil {
		t.Fatalf("open test db: %v", err)
	}
	if err := gdb.AutoMigrate(models.Tables...); err != nil {
		t.Fatalf("migrate test db: %v", err)
	}
	t.Cleanup(func() {
		if sqlDB, err := gdb.DB(); err == nil {
			_ = sqlDB.Close()
		}
	})
	return gdb
}

// NewSigner returns a Signer with a fixed secret for tests.
func NewSigner() *jwtutil.Signer {
	return &jwtutil.Signer{Secret: []byte("test-secret"), Issuer: "shoply-test", ExpMin: 60}
}

// SignToken returns a signed token for the given identity.
func SignToken(t *testing.T, userID uint, email, role string) string {
	t.Helper()
	token, err := NewSigner().Sign(userID, email, role)
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}
	return token
}
