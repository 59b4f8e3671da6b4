package api

import (
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/minifocus/minifocus/internal/models"
)

func TestRegisterCreatesUserAndInbox(t *testing.T) {
	app, database, _ := newTestApp(t)

	user := registerTestAccount(t, app, "alice@example.com", "StrongPass1")
	if user.ID == 0 {
		t.Fatal("expected new user id in register response")
	}
	if user.Email != "alice@example.com" {
		t.Fatalf("expected normalized email, got %q", user.Email)
	}
	if !user.IsActive || user.IsSuperuser {
		t.Fatalf("expected active non-superuser, got active=%v superuser=%v", user.IsActive, user.IsSuperuser)
	}

	var inboxes []models.Project
	if err := database.Where("owner_id = ? AND is_inbox = ?", user.ID, true).Find(&inboxes).Error; err != nil {
		t.Fatalf("load inbox projects: %v", err)
	}
	if len(inboxes) != 1 {
		t.Fatalf("expected exactly 1 inbox project, got %d", len(inboxes))
	}
	if inboxes[0].Name != models.InboxName {
		t.Fatalf("expected inbox named %q, got %q", models.InboxName, inboxes[0].Name)
	}
}

func TestRegisterNeverSerializesPasswordHash(t *testing.T) {
	app, _, _ := newTestApp(t)

	request := jsonRequest(t, http.MethodPost, "/api/v1/auth/register", "", fiber.Map{
		"email":    "alice@example.com",
		"password": "StrongPass1",
	})
	response, err := app.Test(request, -1)
	if err != nil {
		t.Fatalf("register request failed: %v", err)
	}
	defer response.Body.Close()

	body, err := io.ReadAll(response.Body)
	if err != nil {
		t.Fatalf("read register body: %v", err)
	}
	if strings.Contains(string(body), "password") {
		t.Fatalf("register response leaks password material: %s", body)
	}
}

func TestRegisterDuplicateEmailConflicts(t *testing.T) {
	app, _, _ := newTestApp(t)

	registerTestAccount(t, app, "alice@example.com", "StrongPass1")

	request := jsonRequest(t, http.MethodPost, "/api/v1/auth/register", "", fiber.Map{
		"email":    "alice@example.com",
		"password": "OtherPass1",
	})
	doJSON(t, app, request, http.StatusBadRequest, nil)
}

func TestRegisterAcceptsAnyNonEmptyPassword(t *testing.T) {
	app, _, _ := newTestApp(t)

	// No strength bar at signup; short lowercase passwords are fine.
	user := registerTestAccount(t, app, "alice@example.com", "pw123")
	if user.ID == 0 {
		t.Fatal("expected new user id in register response")
	}

	loginTestUser(t, app, "alice@example.com", "pw123")
}

func TestUpdateMeRejectsWeakPassword(t *testing.T) {
	app, database, _ := newTestApp(t)
	createTestUser(t, database, "alice@example.com", "StrongPass1", false)
	token := loginTestUser(t, app, "alice@example.com", "StrongPass1")

	request := jsonRequest(t, http.MethodPut, "/api/v1/auth/me", token, fiber.Map{
		"password": "short",
	})
	doJSON(t, app, request, http.StatusBadRequest, nil)

	// The old password still works.
	loginTestUser(t, app, "alice@example.com", "StrongPass1")
}

func TestLoginIssuesTokenPair(t *testing.T) {
	app, database, _ := newTestApp(t)
	createTestUser(t, database, "alice@example.com", "StrongPass1", false)

	form := url.Values{
		"username": {"alice@example.com"},
		"password": {"StrongPass1"},
	}
	request := httptest.NewRequest(http.MethodPost, "/api/v1/auth/login", strings.NewReader(form.Encode()))
	request.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	var payload struct {
		AccessToken  string `json:"access_token"`
		RefreshToken string `json:"refresh_token"`
		TokenType    string `json:"token_type"`
	}
	doJSON(t, app, request, http.StatusOK, &payload)

	if payload.AccessToken == "" || payload.RefreshToken == "" {
		t.Fatal("expected both access and refresh tokens")
	}
	if payload.TokenType != "bearer" {
		t.Fatalf("expected token_type bearer, got %q", payload.TokenType)
	}
}

func TestLoginWrongPasswordUnauthorized(t *testing.T) {
	app, database, _ := newTestApp(t)
	createTestUser(t, database, "alice@example.com", "StrongPass1", false)

	form := url.Values{
		"username": {"alice@example.com"},
		"password": {"WrongPass1"},
	}
	request := httptest.NewRequest(http.MethodPost, "/api/v1/auth/login", strings.NewReader(form.Encode()))
	request.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	doJSON(t, app, request, http.StatusUnauthorized, nil)
}

func TestLoginInactiveUserRejected(t *testing.T) {
	app, database, _ := newTestApp(t)
	user := createTestUser(t, database, "alice@example.com", "StrongPass1", false)
	if err := database.Model(&models.User{}).Where("id = ?", user.ID).Update("is_active", false).Error; err != nil {
		t.Fatalf("deactivate user: %v", err)
	}

	form := url.Values{
		"username": {"alice@example.com"},
		"password": {"StrongPass1"},
	}
	request := httptest.NewRequest(http.MethodPost, "/api/v1/auth/login", strings.NewReader(form.Encode()))
	request.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	doJSON(t, app, request, http.StatusBadRequest, nil)
}

func TestRefreshReturnsNewAccessToken(t *testing.T) {
	app, database, _ := newTestApp(t)
	createTestUser(t, database, "alice@example.com", "StrongPass1", false)
	token := loginTestUser(t, app, "alice@example.com", "StrongPass1")

	var payload struct {
		AccessToken string `json:"access_token"`
		TokenType   string `json:"token_type"`
	}
	request := jsonRequest(t, http.MethodPost, "/api/v1/auth/refresh", token, nil)
	doJSON(t, app, request, http.StatusOK, &payload)

	if payload.AccessToken == "" {
		t.Fatal("expected refreshed access token")
	}
	if payload.TokenType != "bearer" {
		t.Fatalf("expected token_type bearer, got %q", payload.TokenType)
	}
}

func TestMeReadAndPartialUpdate(t *testing.T) {
	app, database, _ := newTestApp(t)
	createTestUser(t, database, "alice@example.com", "StrongPass1", false)
	token := loginTestUser(t, app, "alice@example.com", "StrongPass1")

	var me models.User
	doJSON(t, app, jsonRequest(t, http.MethodGet, "/api/v1/auth/me", token, nil), http.StatusOK, &me)
	if me.Email != "alice@example.com" {
		t.Fatalf("expected own profile, got %q", me.Email)
	}

	var updated models.User
	request := jsonRequest(t, http.MethodPut, "/api/v1/auth/me", token, fiber.Map{
		"email": "alice.new@example.com",
	})
	doJSON(t, app, request, http.StatusOK, &updated)
	if updated.Email != "alice.new@example.com" {
		t.Fatalf("expected updated email, got %q", updated.Email)
	}

	// Password untouched; login with the old one still works under the new email.
	loginTestUser(t, app, "alice.new@example.com", "StrongPass1")
}

func TestUpdateMePasswordChange(t *testing.T) {
	app, database, _ := newTestApp(t)
	createTestUser(t, database, "alice@example.com", "StrongPass1", false)
	token := loginTestUser(t, app, "alice@example.com", "StrongPass1")

	request := jsonRequest(t, http.MethodPut, "/api/v1/auth/me", token, fiber.Map{
		"password": "FreshPass2",
	})
	doJSON(t, app, request, http.StatusOK, nil)

	loginTestUser(t, app, "alice@example.com", "FreshPass2")
}

func TestUpdateMeEmailTakenConflicts(t *testing.T) {
	app, database, _ := newTestApp(t)
	createTestUser(t, database, "alice@example.com", "StrongPass1", false)
	createTestUser(t, database, "bob@example.com", "StrongPass1", false)
	token := loginTestUser(t, app, "alice@example.com", "StrongPass1")

	request := jsonRequest(t, http.MethodPut, "/api/v1/auth/me", token, fiber.Map{
		"email": "bob@example.com",
	})
	doJSON(t, app, request, http.StatusBadRequest, nil)
}
