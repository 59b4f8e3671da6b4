package api

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/minifocus/minifocus/internal/config"
	"github.com/minifocus/minifocus/internal/db"
	"github.com/minifocus/minifocus/internal/models"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

func testConfig() config.Config {
	return config.Config{
		AppName:         "MiniFocus",
		Version:         "test",
		Port:            "0",
		APIPrefix:       "/api/v1",
		SecretKey:       "test-secret-key",
		AccessTokenTTL:  300 * time.Minute,
		RefreshTokenTTL: 7 * 24 * time.Hour,
	}
}

func newTestApp(t *testing.T) (*fiber.App, *gorm.DB, *Handler) {
	t.Helper()

	databasePath := filepath.Join(t.TempDir(), "minifocus-test.db")
	database, err := db.OpenSQLite(databasePath)
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	sqlDB, err := database.DB()
	if err != nil {
		t.Fatalf("open sql db: %v", err)
	}
	t.Cleanup(func() {
		_ = sqlDB.Close()
	})

	handler := NewHandler(database, testConfig())

	app := fiber.New()
	RegisterRoutes(app, handler)
	return app, database, handler
}

func createTestUser(t *testing.T, database *gorm.DB, email string, password string, superuser bool) models.User {
	t.Helper()

	passwordHash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		t.Fatalf("hash password: %v", err)
	}

	user := models.User{
		Email:        strings.ToLower(strings.TrimSpace(email)),
		PasswordHash: string(passwordHash),
		IsActive:     true,
		IsSuperuser:  superuser,
	}
	if err := database.Create(&user).Error; err != nil {
		t.Fatalf("create user: %v", err)
	}
	return user
}

func loginTestUser(t *testing.T, app *fiber.App, email string, password string) string {
	t.Helper()

	form := url.Values{
		"username": {email},
		"password": {password},
	}
	request := httptest.NewRequest(http.MethodPost, "/api/v1/auth/login", strings.NewReader(form.Encode()))
	request.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	response, err := app.Test(request, -1)
	if err != nil {
		t.Fatalf("login request failed: %v", err)
	}
	defer response.Body.Close()

	if response.StatusCode != http.StatusOK {
		t.Fatalf("login expected status 200, got %d", response.StatusCode)
	}

	var payload struct {
		AccessToken string `json:"access_token"`
	}
	if err := json.NewDecoder(response.Body).Decode(&payload); err != nil {
		t.Fatalf("decode login response: %v", err)
	}
	if payload.AccessToken == "" {
		t.Fatal("expected access token in login response")
	}
	return payload.AccessToken
}

func jsonRequest(t *testing.T, method string, path string, token string, body any) *http.Request {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("encode request body: %v", err)
		}
		reader = bytes.NewReader(encoded)
	} else {
		reader = bytes.NewReader(nil)
	}

	request := httptest.NewRequest(method, path, reader)
	request.Header.Set("Content-Type", "application/json")
	if token != "" {
		request.Header.Set("Authorization", "Bearer "+token)
	}
	return request
}

func doJSON(t *testing.T, app *fiber.App, request *http.Request, wantStatus int, out any) {
	t.Helper()

	response, err := app.Test(request, -1)
	if err != nil {
		t.Fatalf("%s %s failed: %v", request.Method, request.URL.Path, err)
	}
	defer response.Body.Close()

	if response.StatusCode != wantStatus {
		t.Fatalf("%s %s expected status %d, got %d", request.Method, request.URL.Path, wantStatus, response.StatusCode)
	}
	if out != nil {
		if err := json.NewDecoder(response.Body).Decode(out); err != nil {
			t.Fatalf("decode %s %s response: %v", request.Method, request.URL.Path, err)
		}
	}
}

func registerTestAccount(t *testing.T, app *fiber.App, email string, password string) models.User {
	t.Helper()

	var user models.User
	request := jsonRequest(t, http.MethodPost, "/api/v1/auth/register", "", fiber.Map{
		"email":    email,
		"password": password,
	})
	doJSON(t, app, request, http.StatusOK, &user)
	return user
}
