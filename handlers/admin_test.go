package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	"github.com/apaudel/folio/internal/config"
	"github.com/apaudel/folio/internal/content/repository"
	"github.com/apaudel/folio/internal/content/service"
	"github.com/apaudel/folio/internal/sessions"
)

type testEnv struct {
	router  *gin.Engine
	repo    *repository.MemoryRepository
	session *sessions.Service
}

func newTestEnv(t *testing.T, ttl time.Duration) *testEnv {
	t.Helper()
	gin.SetMode(gin.TestMode)

	repo := repository.NewMemoryRepository()
	contentSvc := service.NewService(repo)
	sessionSvc := sessions.NewService(sessions.NewMemoryRepository(), sessions.NewSigner("test-secret"), ttl)
	adminCfg := &config.AdminConfig{Username: "admin", Password: "hunter2", SessionSecret: "test-secret", SessionTTL: ttl}

	r := gin.New()
	api := r.Group("/api")
	NewContentHandler(contentSvc).Register(api)
	NewAdminHandler(adminCfg, contentSvc, sessionSvc).Register(api, nil)
	return &testEnv{router: r, repo: repo, session: sessionSvc}
}

func (e *testEnv) do(method, path, cookie string, body string) *httptest.ResponseRecorder {
	var reader *strings.Reader
	if body == "" {
		reader = strings.NewReader("")
	} else {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	if cookie != "" {
		req.AddCookie(&http.Cookie{Name: sessions.CookieName, Value: cookie})
	}
	w := httptest.NewRecorder()
	e.router.ServeHTTP(w, req)
	return w
}

func (e *testEnv) login(t *testing.T) string {
	t.Helper()
	w := e.do(http.MethodPost, "/api/admin/login", "", `{"username":"admin","password":"hunter2"}`)
	require.Equal(t, http.StatusOK, w.Code)
	for _, c := range w.Result().Cookies() {
		if c.Name == sessions.CookieName {
			return c.Value
		}
	}
	t.Fatal("login response did not set a session cookie")
	return ""
}

func decode(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var body map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return body
}

func TestLoginWrongPasswordNoCookie(t *testing.T) {
	env := newTestEnv(t, time.Hour)
	w := env.do(http.MethodPost, "/api/admin/login", "", `{"username":"admin","password":"wrong"}`)
	require.Equal(t, http.StatusUnauthorized, w.Code)
	require.Empty(t, w.Result().Cookies())
	body := decode(t, w)
	require.Equal(t, false, body["ok"])
	require.Equal(t, "Unauthorized", body["message"])
}

func TestLoginMalformedBodyIsUnauthorized(t *testing.T) {
	env := newTestEnv(t, time.Hour)
	w := env.do(http.MethodPost, "/api/admin/login", "", `{"usern`)
	require.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestLoginSetsCookieAttributes(t *testing.T) {
	env := newTestEnv(t, 12*time.Hour)
	w := env.do(http.MethodPost, "/api/admin/login", "", `{"username":"admin","password":"hunter2"}`)
	require.Equal(t, http.StatusOK, w.Code)

	cookies := w.Result().Cookies()
	require.Len(t, cookies, 1)
	c := cookies[0]
	require.Equal(t, sessions.CookieName, c.Name)
	require.True(t, c.HttpOnly)
	require.Equal(t, "/", c.Path)
	require.Equal(t, http.SameSiteLaxMode, c.SameSite)
	require.Equal(t, 43200, c.MaxAge)
	require.Contains(t, c.Value, ".")
}

func TestSessionStatus(t *testing.T) {
	env := newTestEnv(t, time.Hour)

	w := env.do(http.MethodGet, "/api/admin/session", "", "")
	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, false, decode(t, w)["authenticated"])

	cookie := env.login(t)
	w = env.do(http.MethodGet, "/api/admin/session", cookie, "")
	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, true, decode(t, w)["authenticated"])
}

func TestAdminContentRequiresSession(t *testing.T) {
	env := newTestEnv(t, time.Hour)

	w := env.do(http.MethodGet, "/api/admin/content", "", "")
	require.Equal(t, http.StatusUnauthorized, w.Code)

	// a tampered cookie is treated like no cookie
	cookie := env.login(t)
	tampered := cookie[:len(cookie)-1] + "0"
	if tampered == cookie {
		tampered = cookie[:len(cookie)-1] + "1"
	}
	w = env.do(http.MethodGet, "/api/admin/content", tampered, "")
	require.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAdminContentWithSession(t *testing.T) {
	env := newTestEnv(t, time.Hour)
	cookie := env.login(t)

	w := env.do(http.MethodGet, "/api/admin/content", cookie, "")
	require.Equal(t, http.StatusOK, w.Code)
	body := decode(t, w)
	require.Equal(t, true, body["ok"])
	require.NotNil(t, body["content"])
}

func TestSaveContentValidation(t *testing.T) {
	env := newTestEnv(t, time.Hour)
	cookie := env.login(t)

	w := env.do(http.MethodPut, "/api/admin/content", cookie, `{"profile":{"name":""}}`)
	require.Equal(t, http.StatusBadRequest, w.Code)
	require.Equal(t, "Profile name is required.", decode(t, w)["message"])
}

func TestSaveContentDropsEmptyTitledProjects(t *testing.T) {
	env := newTestEnv(t, time.Hour)
	cookie := env.login(t)

	w := env.do(http.MethodPut, "/api/admin/content", cookie,
		`{"profile":{"name":"A"},"projects":[{"title":""}]}`)
	require.Equal(t, http.StatusOK, w.Code)

	content := decode(t, w)["content"].(map[string]any)
	require.Empty(t, content["projects"])
}

func TestSaveContentUnauthenticated(t *testing.T) {
	env := newTestEnv(t, time.Hour)
	w := env.do(http.MethodPut, "/api/admin/content", "", `{"profile":{"name":"A"}}`)
	require.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestSessionExpiresBetweenSaves(t *testing.T) {
	env := newTestEnv(t, 50*time.Millisecond)
	cookie := env.login(t)

	w := env.do(http.MethodPut, "/api/admin/content", cookie, `{"profile":{"name":"A"}}`)
	require.Equal(t, http.StatusOK, w.Code)

	time.Sleep(80 * time.Millisecond)
	w = env.do(http.MethodPut, "/api/admin/content", cookie, `{"profile":{"name":"A"}}`)
	require.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestLogoutClearsCookieAndEvictsSession(t *testing.T) {
	env := newTestEnv(t, time.Hour)
	cookie := env.login(t)

	w := env.do(http.MethodPost, "/api/admin/logout", cookie, "")
	require.Equal(t, http.StatusOK, w.Code)
	cookies := w.Result().Cookies()
	require.Len(t, cookies, 1)
	require.Empty(t, cookies[0].Value)
	require.Less(t, cookies[0].MaxAge, 0)

	// the old cookie value is dead server-side, not just on the client
	w = env.do(http.MethodGet, "/api/admin/content", cookie, "")
	require.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestLogoutWithoutCookieSucceeds(t *testing.T) {
	env := newTestEnv(t, time.Hour)
	w := env.do(http.MethodPost, "/api/admin/logout", "", "")
	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, true, decode(t, w)["ok"])
}
