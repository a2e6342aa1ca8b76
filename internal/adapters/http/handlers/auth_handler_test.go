package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"mams-backend/internal/adapters/http/middleware"
	"mams-backend/internal/adapters/persistence/models"
	"mams-backend/internal/config"
	"mams-backend/internal/core/domain"
	"mams-backend/internal/core/services"
	"mams-backend/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type memUserRepo struct {
	nextID  uint
	byID    map[uint]*models.User
	byEmail map[string]*models.User
}

func newMemUserRepo() *memUserRepo {
	return &memUserRepo{
		byID:    make(map[uint]*models.User),
		byEmail: make(map[string]*models.User),
	}
}

func (r *memUserRepo) Create(ctx context.Context, user *models.User) error {
	if _, ok := r.byEmail[user.Email]; ok {
		return gorm.ErrDuplicatedKey
	}
	r.nextID++
	user.ID = r.nextID
	r.byID[user.ID] = user
	r.byEmail[user.Email] = user
	return nil
}

func (r *memUserRepo) GetByID(ctx context.Context, id uint) (*models.User, error) {
	user, ok := r.byID[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return user, nil
}

func (r *memUserRepo) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	user, ok := r.byEmail[email]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return user, nil
}

func (r *memUserRepo) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	_, ok := r.byEmail[email]
	return ok, nil
}

func (r *memUserRepo) List(ctx context.Context, offset, limit int) ([]*models.User, int64, error) {
	var users []*models.User
	for _, u := range r.byID {
		users = append(users, u)
	}
	return users, int64(len(users)), nil
}

type memRefreshRepo struct {
	nextID uint
	byHash map[string]*models.RefreshToken

	// failRevoke simulates a storage failure during logout
	failRevoke bool
}

func newMemRefreshRepo() *memRefreshRepo {
	return &memRefreshRepo{byHash: make(map[string]*models.RefreshToken)}
}

func (r *memRefreshRepo) Create(ctx context.Context, token *models.RefreshToken) error {
	r.nextID++
	token.ID = r.nextID
	r.byHash[token.TokenHash] = token
	return nil
}

func (r *memRefreshRepo) GetByTokenHash(ctx context.Context, tokenHash string) (*models.RefreshToken, error) {
	token, ok := r.byHash[tokenHash]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return token, nil
}

func (r *memRefreshRepo) Revoke(ctx context.Context, id uint) error {
	for _, token := range r.byHash {
		if token.ID == id {
			now := time.Now()
			token.RevokedAt = &now
		}
	}
	return nil
}

func (r *memRefreshRepo) RevokeByTokenHash(ctx context.Context, tokenHash string) error {
	if r.failRevoke {
		return errors.New("storage unavailable")
	}
	if token, ok := r.byHash[tokenHash]; ok {
		now := time.Now()
		token.RevokedAt = &now
	}
	return nil
}

func (r *memRefreshRepo) RevokeAllByUserID(ctx context.Context, userID uint) error {
	for _, token := range r.byHash {
		if token.UserID == userID {
			now := time.Now()
			token.RevokedAt = &now
		}
	}
	return nil
}

func (r *memRefreshRepo) DeleteExpired(ctx context.Context) error { return nil }

type testEnv struct {
	app    *fiber.App
	tokens *memRefreshRepo
}

func newTestEnv() *testEnv {
	cfg := &config.Config{
		AppMode: "dev",
		JWT: config.JWTConfig{
			Secret:           "handler-test-secret",
			RefreshSecret:    "handler-test-refresh",
			AccessTokenHours: 24,
			RefreshTokenDays: 7,
		},
	}

	tokens := newMemRefreshRepo()
	authService := services.NewAuthService(newMemUserRepo(), tokens, cfg)
	authHandler := NewAuthHandler(authService, cfg)

	app := fiber.New()
	api := app.Group("/api")

	auth := api.Group("/auth")
	auth.Post("/signup", authHandler.Signup)
	auth.Post("/login", authHandler.Login)
	auth.Post("/refresh", authHandler.RefreshToken)
	auth.Post("/logout", authHandler.Logout)
	auth.Get("/me", middleware.AuthMiddleware(cfg), authHandler.Me)
	auth.Get("/permissions", middleware.AuthMiddleware(cfg), authHandler.Permissions)

	// A capability-gated endpoint, same shape as the purchases routes
	api.Get("/purchases",
		middleware.AuthMiddleware(cfg),
		middleware.RequireCapability(domain.CapRecordPurchase),
		func(c *fiber.Ctx) error {
			return response.Success(c, "ok", nil)
		},
	)

	return &testEnv{app: app, tokens: tokens}
}

func doJSON(t *testing.T, app *fiber.App, method, path string, body any, token string) (*http.Response, []byte) {
	t.Helper()

	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("marshal body: %v", err)
		}
		reader = bytes.NewReader(raw)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := app.Test(req, -1)
	if err != nil {
		t.Fatalf("%s %s: %v", method, path, err)
	}
	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("read body: %v", err)
	}
	resp.Body.Close()
	return resp, raw
}

func signupBody(role string) fiber.Map {
	return fiber.Map{
		"username": "user_" + role,
		"email":    fmt.Sprintf("%s@x.com", role),
		"password": "pw12345",
		"role":     role,
	}
}

func signupAndToken(t *testing.T, app *fiber.App, role string) string {
	t.Helper()

	token, _ := signupTokens(t, app, role)
	if token == "" {
		t.Fatalf("signup returned no token")
	}
	return token
}

func signupTokens(t *testing.T, app *fiber.App, role string) (string, string) {
	t.Helper()

	resp, raw := doJSON(t, app, http.MethodPost, "/api/auth/signup", signupBody(role), "")
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("signup %s: status %d, body %s", role, resp.StatusCode, raw)
	}

	var parsed struct {
		Data struct {
			Token        string `json:"token"`
			RefreshToken string `json:"refresh_token"`
		} `json:"data"`
	}
	if err := json.Unmarshal(raw, &parsed); err != nil {
		t.Fatalf("parse signup response: %v", err)
	}
	return parsed.Data.Token, parsed.Data.RefreshToken
}

func TestSignupEndpoint(t *testing.T) {
	t.Parallel()

	env := newTestEnv()

	resp, raw := doJSON(t, env.app, http.MethodPost, "/api/auth/signup", signupBody("logistics"), "")
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("status = %d, body %s", resp.StatusCode, raw)
	}

	var parsed struct {
		Success bool `json:"success"`
		Data    struct {
			User struct {
				Email string `json:"email"`
				Role  string `json:"role"`
			} `json:"user"`
			Token        string `json:"token"`
			RefreshToken string `json:"refresh_token"`
		} `json:"data"`
	}
	if err := json.Unmarshal(raw, &parsed); err != nil {
		t.Fatalf("parse response: %v", err)
	}
	if !parsed.Success || parsed.Data.User.Email != "logistics@x.com" || parsed.Data.User.Role != "logistics" {
		t.Fatalf("unexpected response: %s", raw)
	}
	if parsed.Data.Token == "" || parsed.Data.RefreshToken == "" {
		t.Fatalf("missing tokens: %s", raw)
	}

	// The response never leaks password material in any field
	if strings.Contains(strings.ToLower(string(raw)), "password") {
		t.Fatalf("response leaks password field: %s", raw)
	}
}

func TestSignupEndpoint_DuplicateEmail(t *testing.T) {
	t.Parallel()

	env := newTestEnv()

	signupAndToken(t, env.app, "logistics")

	resp, raw := doJSON(t, env.app, http.MethodPost, "/api/auth/signup", signupBody("logistics"), "")
	if resp.StatusCode != http.StatusConflict {
		t.Fatalf("status = %d, want 409, body %s", resp.StatusCode, raw)
	}
}

func TestSignupEndpoint_InvalidRole(t *testing.T) {
	t.Parallel()

	env := newTestEnv()

	body := signupBody("logistics")
	body["role"] = "superuser"
	resp, raw := doJSON(t, env.app, http.MethodPost, "/api/auth/signup", body, "")
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400, body %s", resp.StatusCode, raw)
	}
}

func TestLoginEndpoint_UniformError(t *testing.T) {
	t.Parallel()

	env := newTestEnv()
	signupAndToken(t, env.app, "logistics")

	wrongPass, wrongPassBody := doJSON(t, env.app, http.MethodPost, "/api/auth/login",
		fiber.Map{"email": "logistics@x.com", "password": "nope"}, "")
	unknown, unknownBody := doJSON(t, env.app, http.MethodPost, "/api/auth/login",
		fiber.Map{"email": "ghost@x.com", "password": "pw12345"}, "")

	if wrongPass.StatusCode != http.StatusUnauthorized || unknown.StatusCode != http.StatusUnauthorized {
		t.Fatalf("statuses = %d/%d, want 401/401", wrongPass.StatusCode, unknown.StatusCode)
	}
	// Identical body either way: no account enumeration
	if !bytes.Equal(wrongPassBody, unknownBody) {
		t.Fatalf("error bodies differ:\n%s\n%s", wrongPassBody, unknownBody)
	}
	if !strings.Contains(string(wrongPassBody), "Invalid credentials") {
		t.Fatalf("unexpected error body: %s", wrongPassBody)
	}
}

func TestMeEndpoint(t *testing.T) {
	t.Parallel()

	env := newTestEnv()
	token := signupAndToken(t, env.app, "commander")

	resp, raw := doJSON(t, env.app, http.MethodGet, "/api/auth/me", nil, token)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, body %s", resp.StatusCode, raw)
	}
	if !strings.Contains(string(raw), "commander@x.com") {
		t.Fatalf("unexpected body: %s", raw)
	}
	if strings.Contains(strings.ToLower(string(raw)), "password") {
		t.Fatalf("response leaks password field: %s", raw)
	}

	resp, _ = doJSON(t, env.app, http.MethodGet, "/api/auth/me", nil, "")
	if resp.StatusCode != http.StatusUnauthorized {
		t.Fatalf("missing token: status = %d, want 401", resp.StatusCode)
	}

	resp, _ = doJSON(t, env.app, http.MethodGet, "/api/auth/me", nil, "not-a-jwt")
	if resp.StatusCode != http.StatusUnauthorized {
		t.Fatalf("garbage token: status = %d, want 401", resp.StatusCode)
	}
}

func TestCapabilityGate(t *testing.T) {
	t.Parallel()

	env := newTestEnv()

	commanderToken := signupAndToken(t, env.app, "commander")
	logisticsToken := signupAndToken(t, env.app, "logistics")

	// Commanders cannot record purchases
	resp, raw := doJSON(t, env.app, http.MethodGet, "/api/purchases", nil, commanderToken)
	if resp.StatusCode != http.StatusForbidden {
		t.Fatalf("commander: status = %d, want 403, body %s", resp.StatusCode, raw)
	}

	resp, raw = doJSON(t, env.app, http.MethodGet, "/api/purchases", nil, logisticsToken)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("logistics: status = %d, want 200, body %s", resp.StatusCode, raw)
	}

	resp, _ = doJSON(t, env.app, http.MethodGet, "/api/purchases", nil, "")
	if resp.StatusCode != http.StatusUnauthorized {
		t.Fatalf("anonymous: status = %d, want 401", resp.StatusCode)
	}
}

func TestRefreshEndpoint_RotationAndReplay(t *testing.T) {
	t.Parallel()

	env := newTestEnv()
	_, refresh := signupTokens(t, env.app, "logistics")

	resp, raw := doJSON(t, env.app, http.MethodPost, "/api/auth/refresh",
		fiber.Map{"refresh_token": refresh}, "")
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("refresh: status %d, body %s", resp.StatusCode, raw)
	}

	var parsed struct {
		Data struct {
			RefreshToken string `json:"refresh_token"`
		} `json:"data"`
	}
	if err := json.Unmarshal(raw, &parsed); err != nil {
		t.Fatalf("parse refresh response: %v", err)
	}
	if parsed.Data.RefreshToken == "" || parsed.Data.RefreshToken == refresh {
		t.Fatalf("refresh must rotate the token")
	}

	// Replaying the rotated-out token is refused as revoked
	resp, raw = doJSON(t, env.app, http.MethodPost, "/api/auth/refresh",
		fiber.Map{"refresh_token": refresh}, "")
	if resp.StatusCode != http.StatusUnauthorized {
		t.Fatalf("replay: status %d, want 401, body %s", resp.StatusCode, raw)
	}
	if !strings.Contains(string(raw), "revoked") {
		t.Fatalf("replay should report revocation: %s", raw)
	}
}

func TestLogoutEndpoint(t *testing.T) {
	t.Parallel()

	env := newTestEnv()
	_, refresh := signupTokens(t, env.app, "logistics")

	resp, raw := doJSON(t, env.app, http.MethodPost, "/api/auth/logout",
		fiber.Map{"refresh_token": refresh}, "")
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("logout: status %d, body %s", resp.StatusCode, raw)
	}

	resp, raw = doJSON(t, env.app, http.MethodPost, "/api/auth/refresh",
		fiber.Map{"refresh_token": refresh}, "")
	if resp.StatusCode != http.StatusUnauthorized {
		t.Fatalf("refresh after logout: status %d, want 401, body %s", resp.StatusCode, raw)
	}
}

func TestLogoutEndpoint_RevocationFailure(t *testing.T) {
	t.Parallel()

	// A storage failure during revocation never surfaces to the client;
	// logout stays a success from its side
	env := newTestEnv()
	_, refresh := signupTokens(t, env.app, "logistics")
	env.tokens.failRevoke = true

	resp, raw := doJSON(t, env.app, http.MethodPost, "/api/auth/logout",
		fiber.Map{"refresh_token": refresh}, "")
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("logout: status %d, body %s", resp.StatusCode, raw)
	}
	if !strings.Contains(string(raw), "Logged out successfully") {
		t.Fatalf("unexpected body: %s", raw)
	}
}

func TestPermissionsEndpoint(t *testing.T) {
	t.Parallel()

	env := newTestEnv()
	token := signupAndToken(t, env.app, "admin")

	resp, raw := doJSON(t, env.app, http.MethodGet, "/api/auth/permissions", nil, token)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, body %s", resp.StatusCode, raw)
	}

	var parsed struct {
		Data struct {
			Role         string   `json:"role"`
			Capabilities []string `json:"capabilities"`
		} `json:"data"`
	}
	if err := json.Unmarshal(raw, &parsed); err != nil {
		t.Fatalf("parse response: %v", err)
	}
	if parsed.Data.Role != "admin" || len(parsed.Data.Capabilities) != 7 {
		t.Fatalf("unexpected permissions: %s", raw)
	}
}
