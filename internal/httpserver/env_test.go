package httpserver

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/tHeiieh/inventory-api/internal/models"
	"github.com/tHeiieh/inventory-api/internal/repo"
	"github.com/tHeiieh/inventory-api/internal/service"
)

type testEnv struct {
	T         *testing.T
	E         *echo.Echo
	DB        *gorm.DB
	JWTSecret []byte
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		NowFunc: func() time.Time { return time.Now().UTC() },
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	require.NoError(t, db.AutoMigrate(&models.User{}, &models.Product{}))
	t.Cleanup(func() { _ = sqlDB.Close() })

	jwtSecret := []byte("test-jwt-secret")
	gormRepo := &repo.GormRepo{DB: db}

	authSvc := &service.AuthService{
		Repo:      gormRepo,
		JWTSecret: jwtSecret,
		TokenTTL:  10 * time.Minute,
		UserTopic: "user_events",
	}
	inventorySvc := &service.InventoryService{
		Repo:         gormRepo,
		ProductTopic: "product_events",
	}

	e := echo.New()
	Register(e, &Deps{
		AuthHandler:      &AuthHTTP{Svc: authSvc},
		InventoryHandler: &InventoryHTTP{Svc: inventorySvc},
		JWTSecret:        jwtSecret,
	})

	return &testEnv{T: t, E: e, DB: db, JWTSecret: jwtSecret}
}

func (env *testEnv) doJSONRequest(method, path string, body any, token string) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		require.NoError(env.T, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	if token != "" {
		req.Header.Set(echo.HeaderAuthorization, "Bearer "+token)
	}

	rec := httptest.NewRecorder()
	env.E.ServeHTTP(rec, req)
	return rec
}

func (env *testEnv) doRawRequest(method, path, contentType, body, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, bytes.NewBufferString(body))
	if contentType != "" {
		req.Header.Set(echo.HeaderContentType, contentType)
	}
	if token != "" {
		req.Header.Set(echo.HeaderAuthorization, "Bearer "+token)
	}

	rec := httptest.NewRecorder()
	env.E.ServeHTTP(rec, req)
	return rec
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body
}

func (env *testEnv) signupAndLogin(name, username, password string) string {
	env.T.Helper()

	rec := env.doJSONRequest(http.MethodPost, "/signup", map[string]string{
		"name": name, "username": username, "password": password,
	}, "")
	require.Equal(env.T, http.StatusCreated, rec.Code)

	rec = env.doJSONRequest(http.MethodPost, "/login", map[string]string{
		"username": username, "password": password,
	}, "")
	require.Equal(env.T, http.StatusOK, rec.Code)

	token, ok := decodeBody(env.T, rec)["token"].(string)
	require.True(env.T, ok)
	require.NotEmpty(env.T, token)
	return token
}
