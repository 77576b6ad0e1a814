package service

import (
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/tHeiieh/inventory-api/internal/models"
	"github.com/tHeiieh/inventory-api/internal/repo"
)

func newTestRepo(t *testing.T) *repo.GormRepo {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		NowFunc: func() time.Time { return time.Now().UTC() },
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	// one in-memory database per test, shared by all its queries
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(&models.User{}, &models.Product{}))

	t.Cleanup(func() { _ = sqlDB.Close() })

	return &repo.GormRepo{DB: db}
}

func newAuthService(t *testing.T) *AuthService {
	t.Helper()
	return &AuthService{
		Repo:      newTestRepo(t),
		JWTSecret: []byte("test-jwt-secret"),
		TokenTTL:  10 * time.Minute,
		UserTopic: "user_events",
	}
}

func newInventoryService(t *testing.T) *InventoryService {
	t.Helper()
	return &InventoryService{
		Repo:         newTestRepo(t),
		ProductTopic: "product_events",
	}
}

func strPtr(s string) *string { return &s }
