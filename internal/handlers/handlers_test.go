package handlers_test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/localnerve/legalaid-api/internal/ai"
	"github.com/localnerve/legalaid-api/internal/handlers"
	"github.com/localnerve/legalaid-api/internal/models"
	"github.com/localnerve/legalaid-api/internal/policy"
	"github.com/localnerve/legalaid-api/internal/services"
	"github.com/localnerve/legalaid-api/internal/testutil"
	"gorm.io/gorm"
)

type testEnv struct {
	app      *fiber.App
	db       *gorm.DB
	sessions *testutil.FakeSessions
	llm      *testutil.FakeCompleter
}

// newTestEnv mounts every route over a fresh database. withAI controls
// whether the AI routes have an assistant.
func newTestEnv(t *testing.T, withAI bool) *testEnv {
	t.Helper()

	authz, err := policy.NewAuthorizer()
	if err != nil {
		t.Fatalf("Failed to load policies: %v", err)
	}

	env := &testEnv{
		db:       testutil.NewDB(t),
		sessions: testutil.NewFakeSessions(),
		llm:      &testutil.FakeCompleter{},
	}

	var assistant *ai.Assistant
	if withAI {
		assistant = ai.NewAssistant(env.llm, time.Second)
	}

	cfg := testutil.Config()
	// Nothing listens on port 1.
	cfg.AuthzURL = "http://127.0.0.1:1"

	env.app = fiber.New(fiber.Config{ErrorHandler: handlers.ErrorHandler})
	handlers.Register(env.app, handlers.Deps{
		Config:    cfg,
		DB:        env.db,
		Sessions:  env.sessions,
		Policy:    authz,
		Assistant: assistant,
	})
	env.app.Use(handlers.NotFound)
	return env
}

// login registers a session cookie for a user with the given role and
// returns the cookie value.
func (e *testEnv) login(id string, role models.Role) string {
	cookie := "session-" + id
	e.sessions.Add(cookie, services.Identity{
		ID:        id,
		Email:     testutil.Str(id + "@example.com"),
		FirstName: testutil.Str(id),
		Role:      role,
	})
	return cookie
}

// do performs a request and returns the status and body. A non-nil body is
// sent as JSON; a non-empty cookie is sent as the session cookie.
func (e *testEnv) do(t *testing.T, method, path string, body interface{}, cookie string) (int, []byte) {
	t.Helper()

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("Failed to marshal body: %v", err)
		}
		reader = bytes.NewReader(payload)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if cookie != "" {
		req.AddCookie(&http.Cookie{Name: services.SessionCookie, Value: cookie})
	}

	resp, err := e.app.Test(req, -1)
	if err != nil {
		t.Fatalf("Failed to execute request: %v", err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("Failed to read response: %v", err)
	}
	return resp.StatusCode, data
}

func decode[T any](t *testing.T, data []byte) T {
	t.Helper()
	var v T
	if err := json.Unmarshal(data, &v); err != nil {
		t.Fatalf("Failed to decode %s: %v", data, err)
	}
	return v
}

type errorBody struct {
	Status  int    `json:"status"`
	Message string `json:"message"`
	Ok      bool   `json:"ok"`
	Type    string `json:"type"`
	URL     string `json:"url"`
}

func expectError(t *testing.T, status int, data []byte, wantStatus int, wantType string) {
	t.Helper()
	if status != wantStatus {
		t.Fatalf("expected status %d, got %d: %s", wantStatus, status, data)
	}
	body := decode[errorBody](t, data)
	if body.Ok || body.Status != wantStatus {
		t.Errorf("unexpected envelope: %+v", body)
	}
	if wantType != "" && body.Type != wantType {
		t.Errorf("expected error type %q, got %q", wantType, body.Type)
	}
}

func TestAuthenticationRequired(t *testing.T) {
	env := newTestEnv(t, false)

	status, data := env.do(t, "POST", "/api/forum/questions", map[string]string{"title": "x"}, "")
	expectError(t, status, data, fiber.StatusUnauthorized, "authentication")

	status, data = env.do(t, "GET", "/api/cases", nil, "forged")
	expectError(t, status, data, fiber.StatusUnauthorized, "authentication")
}

func TestSessionUpsertsUser(t *testing.T) {
	env := newTestEnv(t, false)
	cookie := env.login("amina", models.RoleLawyer)

	status, data := env.do(t, "GET", "/api/auth/user", nil, cookie)
	if status != fiber.StatusOK {
		t.Fatalf("expected 200, got %d: %s", status, data)
	}
	user := decode[models.User](t, data)
	if user.ID != "amina" || user.Role != models.RoleLawyer {
		t.Errorf("unexpected user %+v", user)
	}
	if user.Email == nil || *user.Email != "amina@example.com" {
		t.Errorf("unexpected email %v", user.Email)
	}
}

func TestLoginAndLogoutRedirect(t *testing.T) {
	env := newTestEnv(t, false)

	req := httptest.NewRequest("GET", "/api/login?redirect=/forum", nil)
	resp, err := env.app.Test(req, -1)
	if err != nil {
		t.Fatalf("Failed to execute request: %v", err)
	}
	if resp.StatusCode != fiber.StatusFound {
		t.Fatalf("expected 302, got %d", resp.StatusCode)
	}
	want := "http://127.0.0.1:1/app?redirect_uri=http%3A%2F%2Fexample.com%2Fforum"
	if got := resp.Header.Get("Location"); got != want {
		t.Errorf("expected Location %q, got %q", want, got)
	}

	req = httptest.NewRequest("GET", "/api/login?redirect=//evil.example", nil)
	resp, err = env.app.Test(req, -1)
	if err != nil {
		t.Fatalf("Failed to execute request: %v", err)
	}
	want = "http://127.0.0.1:1/app?redirect_uri=http%3A%2F%2Fexample.com%2F"
	if got := resp.Header.Get("Location"); got != want {
		t.Errorf("open redirect not rejected: %q", got)
	}

	req = httptest.NewRequest("GET", "/api/logout", nil)
	resp, err = env.app.Test(req, -1)
	if err != nil {
		t.Fatalf("Failed to execute request: %v", err)
	}
	if resp.StatusCode != fiber.StatusFound {
		t.Fatalf("expected 302, got %d", resp.StatusCode)
	}
	cleared := false
	for _, c := range resp.Cookies() {
		if c.Name == services.SessionCookie && c.Value == "" {
			cleared = true
		}
	}
	if !cleared {
		t.Error("expected the session cookie to be cleared")
	}
}

func TestVersionHeaderAndNotFound(t *testing.T) {
	env := newTestEnv(t, false)

	req := httptest.NewRequest("GET", "/api/constitution/search?q=dignity", nil)
	req.Header.Set("X-Api-Version", "1")
	resp, err := env.app.Test(req, -1)
	if err != nil {
		t.Fatalf("Failed to execute request: %v", err)
	}
	if got := resp.Header.Get("X-Api-Version"); got != handlers.APIVersion {
		t.Errorf("expected X-Api-Version %s, got %s", handlers.APIVersion, got)
	}

	status, data := env.do(t, "GET", "/api/nothing-here", nil, "")
	expectError(t, status, data, fiber.StatusNotFound, "notFound")
}

func TestHealthReportsUnreachableAuthorizer(t *testing.T) {
	env := newTestEnv(t, false)

	status, data := env.do(t, "GET", "/api/health", nil, "")
	if status != fiber.StatusServiceUnavailable {
		t.Fatalf("expected 503, got %d: %s", status, data)
	}
	result := decode[services.HealthCheckResult](t, data)
	if result.Database != "ok" || result.Authorizer != "unreachable" {
		t.Errorf("unexpected health result %+v", result)
	}
}

func TestConstitutionSearch(t *testing.T) {
	env := newTestEnv(t, false)

	status, data := env.do(t, "GET", "/api/constitution/search?q=dignity", nil, "")
	if status != fiber.StatusOK {
		t.Fatalf("expected 200, got %d: %s", status, data)
	}
	results := decode[[]services.ConstitutionExcerpt](t, data)
	if len(results) != 1 || results[0].Section != "25" {
		t.Errorf("unexpected results %+v", results)
	}

	status, data = env.do(t, "GET", "/api/constitution/search", nil, "")
	expectError(t, status, data, fiber.StatusBadRequest, "validation")
}
