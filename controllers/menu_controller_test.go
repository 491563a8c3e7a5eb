package controllers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/HuyNLy/Little-Lemon-App/entity"
	"github.com/HuyNLy/Little-Lemon-App/pkg/kvstore"
	"github.com/HuyNLy/Little-Lemon-App/repository"
	"github.com/HuyNLy/Little-Lemon-App/services"

	"github.com/gin-gonic/gin"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestRouter(t *testing.T, menuFeed string) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "test.db")), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open database: %v", err)
	}
	if err := db.AutoMigrate(&entity.MenuItem{}, &entity.Profile{}); err != nil {
		t.Fatalf("migrate: %v", err)
	}

	feed := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(menuFeed))
	}))
	t.Cleanup(feed.Close)

	menuSvc := services.NewMenuService(
		services.NewFetchService(feed.URL, 5*time.Second),
		repository.NewMenuRepository(db),
	)
	profileSvc := services.NewProfileService(
		kvstore.New(filepath.Join(t.TempDir(), "session.json")),
		repository.NewProfileRepository(db),
	)

	r := gin.New()
	menuCtrl := NewMenuController(menuSvc)
	profileCtrl := NewProfileController(profileSvc)
	r.GET("/menu", menuCtrl.Sections)
	r.POST("/menu/refresh", menuCtrl.Refresh)
	r.POST("/onboarding", profileCtrl.Onboard)
	r.GET("/profile", profileCtrl.Get)
	r.PUT("/profile", profileCtrl.Update)
	r.POST("/profile/logout", profileCtrl.Logout)
	return r
}

const feedBody = `{"menu":[
	{"name":"Greek Salad","price":"12.99","description":"Feta and olives","image":"g.jpg","category":"starters"},
	{"name":"Lemon Dessert","price":"6.99","description":"Ricotta cake","image":"l.jpg","category":"desserts"}
]}`

func TestRefreshThenSections(t *testing.T) {
	r := newTestRouter(t, feedBody)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/menu/refresh", nil))
	if w.Code != http.StatusOK {
		t.Fatalf("refresh: expected 200, got %d (%s)", w.Code, w.Body.String())
	}

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/menu?q=lemon", nil))
	if w.Code != http.StatusOK {
		t.Fatalf("menu: expected 200, got %d", w.Code)
	}

	var body struct {
		OK   bool `json:"ok"`
		Data struct {
			State    string           `json:"state"`
			Sections []entity.Section `json:"sections"`
		} `json:"data"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if !body.OK || body.Data.State != "ready" {
		t.Errorf("unexpected envelope: %s", w.Body.String())
	}
	if len(body.Data.Sections) != 1 || body.Data.Sections[0].Name != "Desserts" {
		t.Fatalf("unexpected sections: %+v", body.Data.Sections)
	}
}

func TestRefreshSurfacesFetchFailure(t *testing.T) {
	r := newTestRouter(t, `{"menu":[{"name":"Pasta","price":"abc","category":"mains"}]}`)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/menu/refresh", nil))

	if w.Code != http.StatusServiceUnavailable {
		t.Fatalf("expected 503, got %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), `"ok":false`) {
		t.Errorf("expected error envelope, got %s", w.Body.String())
	}
}

func TestOnboardingValidation(t *testing.T) {
	r := newTestRouter(t, feedBody)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/onboarding",
		strings.NewReader(`{"firstName":"Tilly","lastName":"Lemon","email":"not-an-email"}`))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for bad email, got %d", w.Code)
	}
}

func TestOnboardingThenProfileLifecycle(t *testing.T) {
	r := newTestRouter(t, feedBody)

	// onboard
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/onboarding",
		strings.NewReader(`{"firstName":"Tilly","lastName":"Lemon","email":"tilly@littlelemon.com"}`))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)
	if w.Code != http.StatusCreated {
		t.Fatalf("onboarding: expected 201, got %d (%s)", w.Code, w.Body.String())
	}
	if !strings.Contains(w.Body.String(), `"destination":"HOME"`) {
		t.Errorf("expected HOME destination, got %s", w.Body.String())
	}

	// complete the profile
	w = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodPut, "/profile",
		strings.NewReader(`{"firstName":"Tilly","lastName":"Lemon","email":"tilly@littlelemon.com","phone":"5551234567","exclusiveOffers":true}`))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("update: expected 200, got %d (%s)", w.Code, w.Body.String())
	}

	// bootstrap
	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/profile", nil))
	if w.Code != http.StatusOK {
		t.Fatalf("get: expected 200, got %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), `"phone":"5551234567"`) {
		t.Errorf("profile not persisted: %s", w.Body.String())
	}

	// logout clears the session
	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/profile/logout", nil))
	if w.Code != http.StatusOK {
		t.Fatalf("logout: expected 200, got %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), `"destination":"WELCOME"`) {
		t.Errorf("expected WELCOME after logout, got %s", w.Body.String())
	}

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/profile", nil))
	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404 after logout, got %d", w.Code)
	}
}

func TestProfileUpdateRejectsBadPhone(t *testing.T) {
	r := newTestRouter(t, feedBody)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPut, "/profile",
		strings.NewReader(`{"firstName":"Tilly","email":"tilly@littlelemon.com","phone":"555-123-4567"}`))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for formatted phone, got %d", w.Code)
	}
}
