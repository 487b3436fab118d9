package controllers_test

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/sushushu7/antonia-blog/config"
	"github.com/sushushu7/antonia-blog/controllers"
	"github.com/sushushu7/antonia-blog/database"
	"github.com/sushushu7/antonia-blog/middleware"
	"github.com/sushushu7/antonia-blog/models"
	"github.com/sushushu7/antonia-blog/routes"
	"github.com/sushushu7/antonia-blog/templates"
	"github.com/sushushu7/antonia-blog/utils"

	"github.com/gin-gonic/gin"
)

type testApp struct {
	db  database.Database
	r   *gin.Engine
	cfg *config.Config
}

func newTestApp(t *testing.T) *testApp {
	t.Helper()
	gin.SetMode(gin.TestMode)

	cfg := &config.Config{
		SessionSecret: "test-secret",
		AdminUserID:   config.DefaultAdminUserID,
	}
	db := database.NewMemory()

	r := gin.New()
	r.Use(middleware.CurrentUser(db, cfg.SessionSecret))
	r.SetHTMLTemplate(templates.Load())
	routes.SetupRoutes(r, cfg,
		controllers.NewAuthController(db, cfg),
		controllers.NewPostController(db, cfg),
		controllers.NewPageController(),
	)

	return &testApp{db: db, r: r, cfg: cfg}
}

// registerUser seeds an account directly in the store. The first account
// registered gets id 1 and is therefore the administrator.
func (a *testApp) registerUser(t *testing.T, name, email, password string) *models.User {
	t.Helper()
	user := &models.User{Name: name, Email: email, Password: password}
	if err := user.HashPassword(); err != nil {
		t.Fatalf("hash password: %v", err)
	}
	if err := a.db.Users().Create(user); err != nil {
		t.Fatalf("create user %s: %v", email, err)
	}
	return user
}

func (a *testApp) sessionCookie(t *testing.T, userID uint) *http.Cookie {
	t.Helper()
	token, err := utils.GenerateSessionToken(userID, a.cfg.SessionSecret)
	if err != nil {
		t.Fatalf("session token: %v", err)
	}
	return &http.Cookie{Name: utils.SessionCookieName, Value: token}
}

func (a *testApp) get(path string, cookies ...*http.Cookie) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	for _, cookie := range cookies {
		req.AddCookie(cookie)
	}
	w := httptest.NewRecorder()
	a.r.ServeHTTP(w, req)
	return w
}

func (a *testApp) postForm(path string, form url.Values, cookies ...*http.Cookie) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	for _, cookie := range cookies {
		req.AddCookie(cookie)
	}
	w := httptest.NewRecorder()
	a.r.ServeHTTP(w, req)
	return w
}

func wantRedirect(t *testing.T, w *httptest.ResponseRecorder, location string) {
	t.Helper()
	if w.Code != http.StatusFound {
		t.Fatalf("status = %d, want 302 (body: %s)", w.Code, w.Body.String())
	}
	if got := w.Header().Get("Location"); got != location {
		t.Fatalf("redirect to %q, want %q", got, location)
	}
}

func responseCookie(w *httptest.ResponseRecorder, name string) *http.Cookie {
	for _, cookie := range w.Result().Cookies() {
		if cookie.Name == name {
			return cookie
		}
	}
	return nil
}
