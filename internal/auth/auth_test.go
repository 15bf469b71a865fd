package auth

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"atlas-backend/internal/config"
	"atlas-backend/internal/database/models"
	apperrors "atlas-backend/internal/errors"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type fakeUserRepo struct {
	users   map[string]*models.User
	touched map[uuid.UUID]time.Time
}

func newFakeUserRepo(users ...*models.User) *fakeUserRepo {
	repo := &fakeUserRepo{users: map[string]*models.User{}, touched: map[uuid.UUID]time.Time{}}
	for _, u := range users {
		repo.users[u.Email] = u
	}
	return repo
}

func (r *fakeUserRepo) GetByID(_ context.Context, id uuid.UUID) (*models.User, error) {
	for _, u := range r.users {
		if u.ID == id {
			return u, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *fakeUserRepo) GetByEmail(_ context.Context, email string) (*models.User, error) {
	if u, ok := r.users[strings.ToLower(email)]; ok {
		return u, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *fakeUserRepo) TouchLastLogin(_ context.Context, id uuid.UUID, at time.Time) error {
	r.touched[id] = at
	return nil
}

func staffUser(t *testing.T, email string, role models.UserRole, password string) *models.User {
	t.Helper()
	hash, err := HashPassword(password)
	require.NoError(t, err)
	u := &models.User{Email: email, FullName: "Test Reviewer", Role: role, PasswordHash: &hash, IsActive: true}
	u.ID = uuid.New()
	return u
}

func testConfig() *AuthConfig {
	return &AuthConfig{JWTSecret: "test-signing-key-0123456789", TokenTTL: time.Hour, Issuer: "atlas-backend"}
}

func newTestService(t *testing.T, users ...*models.User) (*AuthService, *fakeUserRepo) {
	t.Helper()
	repo := newFakeUserRepo(users...)
	svc, err := NewAuthService(testConfig(), repo)
	require.NoError(t, err)
	return svc, repo
}

func TestAuthConfig(t *testing.T) {
	t.Run("valid config", func(t *testing.T) {
		assert.NoError(t, testConfig().ValidateConfig())
	})

	t.Run("missing jwt secret", func(t *testing.T) {
		cfg := testConfig()
		cfg.JWTSecret = ""
		err := cfg.ValidateConfig()
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "JWT secret is required")
	})

	t.Run("short jwt secret", func(t *testing.T) {
		cfg := testConfig()
		cfg.JWTSecret = "short"
		assert.Error(t, cfg.ValidateConfig())
	})

	t.Run("derived from application config", func(t *testing.T) {
		cfg := NewAuthConfig(&config.Config{JWTSecret: "another-signing-key-value", JWTTTLMinutes: 15})
		assert.Equal(t, 15*time.Minute, cfg.TokenTTL)
		assert.Equal(t, "atlas-backend", cfg.Issuer)

		cfg = NewAuthConfig(&config.Config{JWTSecret: "another-signing-key-value"})
		assert.Equal(t, time.Hour, cfg.TokenTTL)
	})
}

func TestJWTOperations(t *testing.T) {
	user := staffUser(t, "reviewer@example.org", models.UserRoleReviewer, "password-123")
	svc, _ := newTestService(t, user)

	token, err := svc.GenerateJWT(user)
	require.NoError(t, err)
	assert.NotEmpty(t, token)

	claims, err := svc.ValidateJWT(token)
	require.NoError(t, err)
	id, err := claims.UserID()
	require.NoError(t, err)
	assert.Equal(t, user.ID, id)
	assert.Equal(t, user.Email, claims.Email)
	assert.Equal(t, models.UserRoleReviewer, claims.Role)

	t.Run("invalid token", func(t *testing.T) {
		_, err := svc.ValidateJWT("invalid.token.here")
		assert.True(t, apperrors.IsAuthentication(err))
	})

	t.Run("token signed with another secret", func(t *testing.T) {
		other, err := NewAuthService(&AuthConfig{JWTSecret: "a-completely-different-key", TokenTTL: time.Hour, Issuer: "atlas-backend"}, newFakeUserRepo())
		require.NoError(t, err)
		forged, err := other.GenerateJWT(user)
		require.NoError(t, err)

		_, err = svc.ValidateJWT(forged)
		assert.True(t, apperrors.IsAuthentication(err))
	})
}

func TestJWTExpiration(t *testing.T) {
	user := staffUser(t, "reviewer@example.org", models.UserRoleReviewer, "password-123")
	svc, _ := newTestService(t, user)

	issued := time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)
	svc.now = func() time.Time { return issued }
	token, err := svc.GenerateJWT(user)
	require.NoError(t, err)

	svc.now = func() time.Time { return issued.Add(59 * time.Minute) }
	_, err = svc.ValidateJWT(token)
	assert.NoError(t, err)

	svc.now = func() time.Time { return issued.Add(61 * time.Minute) }
	_, err = svc.ValidateJWT(token)
	assert.True(t, apperrors.IsAuthentication(err))
}

func TestLogin(t *testing.T) {
	reviewer := staffUser(t, "reviewer@example.org", models.UserRoleReviewer, "password-123")
	submitter := staffUser(t, "submitter@example.org", models.UserRoleSubmitter, "password-123")
	inactive := staffUser(t, "former@example.org", models.UserRoleAdmin, "password-123")
	inactive.IsActive = false
	svc, repo := newTestService(t, reviewer, submitter, inactive)
	ctx := context.Background()

	t.Run("valid credentials", func(t *testing.T) {
		resp, err := svc.Login(ctx, &LoginRequest{Email: "reviewer@example.org", Password: "password-123"})
		require.NoError(t, err)
		assert.Equal(t, "bearer", resp.TokenType)
		assert.Equal(t, int64(3600), resp.ExpiresInSeconds)
		assert.Equal(t, reviewer.ID, resp.Profile.ID)
		assert.Contains(t, repo.touched, reviewer.ID)

		claims, err := svc.ValidateJWT(resp.AccessToken)
		require.NoError(t, err)
		assert.Equal(t, reviewer.Email, claims.Email)
	})

	t.Run("wrong password", func(t *testing.T) {
		_, err := svc.Login(ctx, &LoginRequest{Email: "reviewer@example.org", Password: "nope"})
		assert.ErrorIs(t, err, apperrors.ErrInvalidCredentials)
	})

	t.Run("unknown email", func(t *testing.T) {
		_, err := svc.Login(ctx, &LoginRequest{Email: "ghost@example.org", Password: "password-123"})
		assert.ErrorIs(t, err, apperrors.ErrInvalidCredentials)
	})

	t.Run("submitters cannot sign in", func(t *testing.T) {
		_, err := svc.Login(ctx, &LoginRequest{Email: "submitter@example.org", Password: "password-123"})
		assert.ErrorIs(t, err, apperrors.ErrInsufficientRole)
	})

	t.Run("inactive accounts cannot sign in", func(t *testing.T) {
		_, err := svc.Login(ctx, &LoginRequest{Email: "former@example.org", Password: "password-123"})
		assert.ErrorIs(t, err, apperrors.ErrUserInactive)
	})
}

func TestMiddleware(t *testing.T) {
	gin.SetMode(gin.TestMode)

	reviewer := staffUser(t, "reviewer@example.org", models.UserRoleReviewer, "password-123")
	admin := staffUser(t, "admin@example.org", models.UserRoleAdmin, "password-123")
	svc, _ := newTestService(t, reviewer, admin)
	mw := NewAuthMiddleware(svc)

	router := gin.New()
	router.GET("/reviews", mw.RequireAuth(), func(c *gin.Context) {
		id, ok := GetUserID(c)
		require.True(t, ok)
		c.JSON(http.StatusOK, gin.H{"user_id": id.String()})
	})
	router.DELETE("/projects", mw.RequireAuth(), mw.RequireRole(models.UserRoleAdmin), func(c *gin.Context) {
		c.Status(http.StatusNoContent)
	})

	call := func(method, path, token string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(method, path, nil)
		if token != "" {
			req.Header.Set("Authorization", "Bearer "+token)
		}
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
		return w
	}
	reviewerToken, err := svc.GenerateJWT(reviewer)
	require.NoError(t, err)
	adminToken, err := svc.GenerateJWT(admin)
	require.NoError(t, err)

	t.Run("missing token", func(t *testing.T) {
		assert.Equal(t, http.StatusUnauthorized, call(http.MethodGet, "/reviews", "").Code)
	})

	t.Run("garbage token", func(t *testing.T) {
		assert.Equal(t, http.StatusUnauthorized, call(http.MethodGet, "/reviews", "garbage").Code)
	})

	t.Run("valid token", func(t *testing.T) {
		w := call(http.MethodGet, "/reviews", reviewerToken)
		require.Equal(t, http.StatusOK, w.Code)
		var body map[string]string
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
		assert.Equal(t, reviewer.ID.String(), body["user_id"])
	})

	t.Run("role required", func(t *testing.T) {
		assert.Equal(t, http.StatusForbidden, call(http.MethodDelete, "/projects", reviewerToken).Code)
		assert.Equal(t, http.StatusNoContent, call(http.MethodDelete, "/projects", adminToken).Code)
	})
}

func TestAuthHandlers(t *testing.T) {
	gin.SetMode(gin.TestMode)

	reviewer := staffUser(t, "reviewer@example.org", models.UserRoleReviewer, "password-123")
	svc, _ := newTestService(t, reviewer)
	handler := NewAuthHandler(svc)
	mw := NewAuthMiddleware(svc)

	router := gin.New()
	router.POST("/api/auth/login", handler.Login)
	router.GET("/api/auth/me", mw.RequireAuth(), handler.Me)
	router.POST("/api/auth/validate", handler.ValidateToken)

	login := func(body string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodPost, "/api/auth/login", strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
		return w
	}

	t.Run("login and fetch profile", func(t *testing.T) {
		w := login(`{"email":"reviewer@example.org","password":"password-123"}`)
		require.Equal(t, http.StatusOK, w.Code)
		var resp LoginResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))

		req := httptest.NewRequest(http.MethodGet, "/api/auth/me", nil)
		req.Header.Set("Authorization", "Bearer "+resp.AccessToken)
		w = httptest.NewRecorder()
		router.ServeHTTP(w, req)
		require.Equal(t, http.StatusOK, w.Code)
		var profile UserProfile
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &profile))
		assert.Equal(t, "reviewer@example.org", profile.Email)

		req = httptest.NewRequest(http.MethodPost, "/api/auth/validate", nil)
		req.Header.Set("Authorization", "Bearer "+resp.AccessToken)
		w = httptest.NewRecorder()
		router.ServeHTTP(w, req)
		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("bad credentials", func(t *testing.T) {
		assert.Equal(t, http.StatusUnauthorized, login(`{"email":"reviewer@example.org","password":"wrong"}`).Code)
	})

	t.Run("malformed body", func(t *testing.T) {
		assert.Equal(t, http.StatusBadRequest, login(`{"email":"not-an-email"}`).Code)
	})

	t.Run("validate without header", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/api/auth/validate", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})
}
