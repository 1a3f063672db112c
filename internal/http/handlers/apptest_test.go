package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/jmoiron/sqlx"

	"rewear/internal/config"
	"rewear/internal/http/handlers"
	"rewear/internal/media"
	"rewear/internal/repos"
)

const testSecret = "handler-test-secret"

// stubStorage stands in for the external object store.
type stubStorage struct {
	result *media.UploadResult
	err    error
	calls  int
}

func (s *stubStorage) Upload(_ context.Context, _ string, _ []byte, _ string) (*media.UploadResult, error) {
	s.calls++
	if s.err != nil {
		return nil, s.err
	}
	return s.result, nil
}

func newTestApp(t *testing.T, storage media.Storage) *fiber.App {
	t.Helper()
	db, err := repos.OpenDB(":memory:")
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })
	return newTestAppWithDB(t, db, storage)
}

func newTestAppWithDB(t *testing.T, db *sqlx.DB, storage media.Storage) *fiber.App {
	t.Helper()
	if storage == nil {
		storage = &stubStorage{result: &media.UploadResult{URL: "https://cdn.test/x.jpg", PublicID: "x"}}
	}
	cfg := config.Config{JWTSecret: testSecret}
	deps := handlers.NewDeps(db, cfg, storage)
	requireUser := handlers.RequireUser(testSecret)

	// Body limit mirrors main: above the 5 MiB cap plus multipart overhead.
	app := fiber.New(fiber.Config{BodyLimit: 6 << 20})
	app.Post("/api/auth/signup", deps.AuthHandler.Signup)
	app.Post("/api/auth/login", deps.AuthHandler.Login)
	app.Post("/api/upload", deps.UploadHandler.Upload)
	app.Post("/api/items", requireUser, deps.ItemHandler.Create)
	app.Patch("/api/items/:id/status", requireUser, deps.ItemHandler.SetStatus)
	app.Get("/api/items", deps.ItemHandler.List)
	app.Get("/api/items/:id", deps.ItemHandler.Get)
	app.Post("/api/requests", requireUser, deps.RequestHandler.Create)
	app.Patch("/api/requests/:id", requireUser, deps.RequestHandler.Resolve)
	app.Get("/api/requests/me", requireUser, deps.RequestHandler.Mine)
	app.Get("/api/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"success": true, "message": "ReWear API is running"})
	})
	return app
}

type envelope struct {
	Success bool            `json:"success"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

func jsonReq(t *testing.T, method, path, token string, body any) *http.Request {
	t.Helper()
	var rd io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("marshal body: %v", err)
		}
		rd = bytes.NewReader(b)
	}
	req := httptest.NewRequest(method, path, rd)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	return req
}

func doJSON(t *testing.T, app *fiber.App, method, path, token string, body any) (*http.Response, envelope) {
	t.Helper()
	resp, err := app.Test(jsonReq(t, method, path, token, body))
	if err != nil {
		t.Fatalf("%s %s: %v", method, path, err)
	}
	var env envelope
	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
		t.Fatalf("%s %s: decode envelope: %v", method, path, err)
	}
	return resp, env
}

func decodeData(t *testing.T, env envelope, v any) {
	t.Helper()
	if err := json.Unmarshal(env.Data, v); err != nil {
		t.Fatalf("decode data: %v", err)
	}
}

// signupAndLogin registers a user and returns a bearer token.
func signupAndLogin(t *testing.T, app *fiber.App, name, email string) string {
	t.Helper()
	resp, env := doJSON(t, app, "POST", "/api/auth/signup", "", fiber.Map{
		"name": name, "email": email, "password": "Passw0rd!", "location": "College Park",
	})
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("signup %s: status %d (%s)", email, resp.StatusCode, env.Message)
	}

	resp, env = doJSON(t, app, "POST", "/api/auth/login", "", fiber.Map{
		"email": email, "password": "Passw0rd!",
	})
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("login %s: status %d (%s)", email, resp.StatusCode, env.Message)
	}
	var data struct {
		Token string `json:"token"`
	}
	decodeData(t, env, &data)
	if data.Token == "" {
		t.Fatalf("login %s: no token", email)
	}
	return data.Token
}

// createItem lists an item for the token's user and returns its id.
func createItem(t *testing.T, app *fiber.App, token, title string) string {
	t.Helper()
	resp, env := doJSON(t, app, "POST", "/api/items", token, fiber.Map{
		"title": title, "category": "outerwear", "condition": "good", "imageUrl": "https://cdn.test/a.jpg",
	})
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("create item: status %d (%s)", resp.StatusCode, env.Message)
	}
	var item struct {
		ID string `json:"id"`
	}
	decodeData(t, env, &item)
	return item.ID
}
