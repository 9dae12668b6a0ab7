package auth

import (
	"context"
	"testing"
	"time"

	"gorm.io/gorm"

	pkgAuth "github.com/roverent/roverent-backend/pkg/auth"
	"github.com/roverent/roverent-backend/pkg/config"
	"github.com/roverent/roverent-backend/pkg/db/models"
	pkgerrors "github.com/roverent/roverent-backend/pkg/errors"
	"github.com/roverent/roverent-backend/pkg/security"
)

func testJWTConfig() config.JWTConfig {
	return config.JWTConfig{
		Secret:            "secret",
		Issuer:            "roverent",
		ExpirationMinutes: 30,
	}
}

func testPasswordConfig() config.PasswordConfig {
	return config.PasswordConfig{Iterations: 1000, SaltLen: 16, KeyLen: 32}
}

func TestServiceLoginSuccess(t *testing.T) {
	password := "renter-secret"
	user := &models.User{
		ID:           42,
		Email:        "renter@example.com",
		PasswordHash: mustHashPassword(t, password),
		FirstName:    "Riley",
		LastName:     "Nguyen",
		IsActive:     true,
	}

	svc, repo, sessionMgr := buildTestService(t, user)

	resp, err := svc.Login(context.Background(), LoginRequest{
		Email:    "  Renter@Example.com ",
		Password: password,
	})
	if err != nil {
		t.Fatalf("login: %v", err)
	}

	claims, err := pkgAuth.ParseAccessToken(testJWTConfig(), resp.AccessToken)
	if err != nil {
		t.Fatalf("parse access token: %v", err)
	}
	if claims.UserID != 42 {
		t.Fatalf("expected user_id claim 42, got %d", claims.UserID)
	}
	if resp.RefreshToken == "" {
		t.Fatal("expected refresh token to be set")
	}
	if resp.User.Email != user.Email {
		t.Fatalf("unexpected user payload email %q", resp.User.Email)
	}
	if repo.lastLoginID != 42 {
		t.Fatal("expected last_login_at to be recorded")
	}
	if sessionMgr.generatedFor != "42" {
		t.Fatalf("expected session keyed by user id, got %q", sessionMgr.generatedFor)
	}
}

func TestServiceLoginOpaqueFailures(t *testing.T) {
	password := "renter-secret"
	active := &models.User{
		ID:           1,
		Email:        "renter@example.com",
		PasswordHash: mustHashPassword(t, password),
		IsActive:     true,
	}
	inactive := &models.User{
		ID:           2,
		Email:        "gone@example.com",
		PasswordHash: mustHashPassword(t, password),
		IsActive:     false,
	}

	cases := []struct {
		name     string
		user     *models.User
		email    string
		password string
	}{
		{"unknown email", active, "missing@example.com", password},
		{"wrong password", active, active.Email, "not-the-password"},
		{"inactive account", inactive, inactive.Email, password},
		{"blank email", active, "   ", password},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			svc, _, _ := buildTestService(t, tc.user)

			_, err := svc.Login(context.Background(), LoginRequest{
				Email:    tc.email,
				Password: tc.password,
			})
			if err == nil {
				t.Fatal("expected login to fail")
			}
			typed := pkgerrors.As(err)
			if typed == nil || typed.Code() != pkgerrors.CodeUnauthorized {
				t.Fatalf("expected unauthorized error, got %v", err)
			}
			if typed.Message() != invalidCredentialsMessage {
				t.Fatalf("login failure must be opaque, got %q", typed.Message())
			}
		})
	}
}

func TestServiceRefreshRotatesTokens(t *testing.T) {
	user := &models.User{
		ID:           7,
		Email:        "renter@example.com",
		PasswordHash: mustHashPassword(t, "secret-password"),
		IsActive:     true,
	}
	svc, _, sessionMgr := buildTestService(t, user)

	accessToken, err := pkgAuth.MintAccessToken(testJWTConfig(), time.Now().Add(-time.Hour), pkgAuth.AccessTokenPayload{
		UserID: 7,
		Email:  user.Email,
	})
	if err != nil {
		t.Fatalf("mint: %v", err)
	}

	sessionMgr.rotated = "rotated-token"
	resp, err := svc.Refresh(context.Background(), RefreshRequest{
		AccessToken:  accessToken,
		RefreshToken: "refresh-token",
	})
	if err != nil {
		t.Fatalf("refresh: %v", err)
	}
	if resp.RefreshToken != "rotated-token" {
		t.Fatalf("expected rotated token, got %q", resp.RefreshToken)
	}

	claims, err := pkgAuth.ParseAccessToken(testJWTConfig(), resp.AccessToken)
	if err != nil {
		t.Fatalf("parse new access token: %v", err)
	}
	if claims.UserID != 7 {
		t.Fatalf("expected user_id 7, got %d", claims.UserID)
	}
}

func TestServiceRefreshRejectsBadToken(t *testing.T) {
	user := &models.User{ID: 7, Email: "renter@example.com", IsActive: true}
	svc, _, _ := buildTestService(t, user)

	_, err := svc.Refresh(context.Background(), RefreshRequest{
		AccessToken:  "garbage",
		RefreshToken: "refresh-token",
	})
	if err == nil {
		t.Fatal("expected refresh to fail")
	}
	typed := pkgerrors.As(err)
	if typed == nil || typed.Code() != pkgerrors.CodeUnauthorized {
		t.Fatalf("expected unauthorized error, got %v", err)
	}
}

func TestServiceLogoutRevokesSession(t *testing.T) {
	user := &models.User{ID: 9, Email: "renter@example.com", IsActive: true}
	svc, _, sessionMgr := buildTestService(t, user)

	if err := svc.Logout(context.Background(), 9); err != nil {
		t.Fatalf("logout: %v", err)
	}
	if sessionMgr.revokedFor != "9" {
		t.Fatalf("expected session revoked for user 9, got %q", sessionMgr.revokedFor)
	}
}

func buildTestService(t *testing.T, user *models.User) (Service, *stubUserRepo, *stubSessionManager) {
	t.Helper()
	repo := &stubUserRepo{user: user}
	sessionMgr := &stubSessionManager{refreshToken: "refresh-token"}
	svc, err := NewService(ServiceParams{
		UserRepo:       repo,
		SessionManager: sessionMgr,
		JWTConfig:      testJWTConfig(),
		PasswordConfig: testPasswordConfig(),
	})
	if err != nil {
		t.Fatalf("build service: %v", err)
	}
	return svc, repo, sessionMgr
}

func mustHashPassword(t *testing.T, password string) string {
	t.Helper()
	hash, err := security.HashPassword(password, testPasswordConfig())
	if err != nil {
		t.Fatalf("hash password: %v", err)
	}
	return hash
}

type stubUserRepo struct {
	user        *models.User
	lastLoginID int64
}

func (s *stubUserRepo) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	if s.user != nil && s.user.Email == email {
		return s.user, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (s *stubUserRepo) FindByID(ctx context.Context, id int64) (*models.User, error) {
	if s.user != nil && s.user.ID == id {
		return s.user, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (s *stubUserRepo) UpdateLastLogin(ctx context.Context, id int64, at time.Time) error {
	s.lastLoginID = id
	return nil
}

type stubSessionManager struct {
	refreshToken string
	rotated      string
	generatedFor string
	revokedFor   string
}

func (s *stubSessionManager) Generate(ctx context.Context, userID string) (string, error) {
	s.generatedFor = userID
	return s.refreshToken, nil
}

func (s *stubSessionManager) Rotate(ctx context.Context, userID, provided string) (string, error) {
	if s.rotated == "" {
		return "", pkgerrors.New(pkgerrors.CodeUnauthorized, "invalid refresh token")
	}
	return s.rotated, nil
}

func (s *stubSessionManager) Revoke(ctx context.Context, userID string) error {
	s.revokedFor = userID
	return nil
}
