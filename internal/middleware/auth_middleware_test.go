package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/deniz/courseboard/internal/app/models"
	"github.com/deniz/courseboard/internal/pkg/apperrors"
	"github.com/deniz/courseboard/internal/pkg/auth"
)

type fakeUserLoader struct {
	users map[int64]*models.User
}

func (l *fakeUserLoader) GetByID(_ context.Context, id int64) (*models.User, error) {
	user, ok := l.users[id]
	if !ok {
		return nil, apperrors.ErrUserNotFound
	}
	return user, nil
}

func newTestRouter(t *testing.T, loader UserLoader, roles ...models.RoleType) (*gin.Engine, *auth.JWTService) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	jwtService := auth.NewJWTService(auth.JWTConfig{
		SecretKey:      "unit-test-secret",
		AccessTokenExp: time.Hour,
		TokenIssuer:    "courseboard-test",
	})
	mw := NewAuthMiddleware(jwtService, loader)

	router := gin.New()
	handlers := []gin.HandlerFunc{mw.Authenticate()}
	if len(roles) > 0 {
		handlers = append(handlers, mw.RequireRoles(roles...))
	}
	handlers = append(handlers, func(c *gin.Context) {
		user, ok := CurrentUser(c)
		if !ok {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "no user in context"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"userId": user.ID, "role": user.RoleType})
	})
	router.GET("/protected", handlers...)

	return router, jwtService
}

func doRequest(router *gin.Engine, authHeader string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestAuthenticateMissingHeader(t *testing.T) {
	router, _ := newTestRouter(t, &fakeUserLoader{users: map[int64]*models.User{}})

	w := doRequest(router, "")
	if w.Code != http.StatusUnauthorized {
		t.Errorf("status = %d, want %d", w.Code, http.StatusUnauthorized)
	}
}

func TestAuthenticateBadHeaderFormat(t *testing.T) {
	router, _ := newTestRouter(t, &fakeUserLoader{users: map[int64]*models.User{}})

	w := doRequest(router, "Token abc.def.ghi")
	if w.Code != http.StatusUnauthorized {
		t.Errorf("status = %d, want %d", w.Code, http.StatusUnauthorized)
	}
}

func TestAuthenticateGarbageToken(t *testing.T) {
	router, _ := newTestRouter(t, &fakeUserLoader{users: map[int64]*models.User{}})

	w := doRequest(router, "Bearer not-a-jwt")
	if w.Code != http.StatusUnauthorized {
		t.Errorf("status = %d, want %d", w.Code, http.StatusUnauthorized)
	}
}

func TestAuthenticateUnknownIdentity(t *testing.T) {
	loader := &fakeUserLoader{users: map[int64]*models.User{}}
	router, jwtService := newTestRouter(t, loader)

	// Token for a user that no longer exists in storage
	token, _, err := jwtService.GenerateToken(&models.User{ID: 99})
	if err != nil {
		t.Fatalf("GenerateToken returned error: %v", err)
	}

	w := doRequest(router, "Bearer "+token)
	if w.Code != http.StatusForbidden {
		t.Errorf("status = %d, want %d", w.Code, http.StatusForbidden)
	}
}

func TestAuthenticateHappyPath(t *testing.T) {
	student := &models.User{ID: 7, Name: "Student", RoleType: models.RoleStudent}
	loader := &fakeUserLoader{users: map[int64]*models.User{student.ID: student}}
	router, jwtService := newTestRouter(t, loader)

	token, _, err := jwtService.GenerateToken(student)
	if err != nil {
		t.Fatalf("GenerateToken returned error: %v", err)
	}

	w := doRequest(router, "Bearer "+token)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d; body: %s", w.Code, http.StatusOK, w.Body.String())
	}
}

func TestRequireRoles(t *testing.T) {
	student := &models.User{ID: 7, RoleType: models.RoleStudent}
	admin := &models.User{ID: 8, RoleType: models.RoleAdmin}
	loader := &fakeUserLoader{users: map[int64]*models.User{student.ID: student, admin.ID: admin}}
	router, jwtService := newTestRouter(t, loader, models.RoleAdmin)

	studentToken, _, err := jwtService.GenerateToken(student)
	if err != nil {
		t.Fatalf("GenerateToken returned error: %v", err)
	}
	adminToken, _, err := jwtService.GenerateToken(admin)
	if err != nil {
		t.Fatalf("GenerateToken returned error: %v", err)
	}

	if w := doRequest(router, "Bearer "+studentToken); w.Code != http.StatusForbidden {
		t.Errorf("student on admin route: status = %d, want %d", w.Code, http.StatusForbidden)
	}
	if w := doRequest(router, "Bearer "+adminToken); w.Code != http.StatusOK {
		t.Errorf("admin on admin route: status = %d, want %d", w.Code, http.StatusOK)
	}
}

func TestRequireRolesFreshFromStorage(t *testing.T) {
	// The token predates a role change; the middleware must honor the
	// stored role, not anything baked into the token.
	user := &models.User{ID: 7, RoleType: models.RoleStudent}
	loader := &fakeUserLoader{users: map[int64]*models.User{user.ID: user}}
	router, jwtService := newTestRouter(t, loader, models.RoleAdmin)

	token, _, err := jwtService.GenerateToken(user)
	if err != nil {
		t.Fatalf("GenerateToken returned error: %v", err)
	}

	if w := doRequest(router, "Bearer "+token); w.Code != http.StatusForbidden {
		t.Errorf("before promotion: status = %d, want %d", w.Code, http.StatusForbidden)
	}

	user.RoleType = models.RoleAdmin
	if w := doRequest(router, "Bearer "+token); w.Code != http.StatusOK {
		t.Errorf("after promotion: status = %d, want %d", w.Code, http.StatusOK)
	}
}
