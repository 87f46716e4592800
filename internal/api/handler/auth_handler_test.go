package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/ims-platform/inventory-system/internal/api/middleware"
	"github.com/ims-platform/inventory-system/internal/core/domain"
	"github.com/ims-platform/inventory-system/internal/core/token"
)

type stubAuthService struct {
	loginFn       func(ctx context.Context, email, password string) (string, *domain.User, error)
	verifyTokenFn func(ctx context.Context, raw string) (*token.Claims, *domain.User, error)
	profileFn     func(ctx context.Context, userID int64) (*domain.User, error)
	listUsersFn   func(ctx context.Context) ([]*domain.User, error)
}

func (s *stubAuthService) Login(ctx context.Context, email, password string) (string, *domain.User, error) {
	return s.loginFn(ctx, email, password)
}

func (s *stubAuthService) VerifyToken(ctx context.Context, raw string) (*token.Claims, *domain.User, error) {
	return s.verifyTokenFn(ctx, raw)
}

func (s *stubAuthService) Profile(ctx context.Context, userID int64) (*domain.User, error) {
	return s.profileFn(ctx, userID)
}

func (s *stubAuthService) ListUsers(ctx context.Context) ([]*domain.User, error) {
	return s.listUsersFn(ctx)
}

func newTestEcho() *echo.Echo {
	e := echo.New()
	e.Validator = NewValidator()
	return e
}

func ownerUser() *domain.User {
	return &domain.User{
		ID:        1,
		RoleID:    domain.RoleIDOwner,
		RoleName:  domain.RoleOwner,
		Email:     "owner@ims.com",
		Username:  "owner",
		Status:    domain.StatusActive,
		CreatedAt: time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC),
	}
}

func TestAuthHandler_Login_Success(t *testing.T) {
	e := newTestEcho()
	stub := &stubAuthService{
		loginFn: func(ctx context.Context, email, password string) (string, *domain.User, error) {
			if email != "owner@ims.com" || password != "password123" {
				t.Fatalf("unexpected args: %s %s", email, password)
			}
			return "signed-token", ownerUser(), nil
		},
	}
	handler := NewAuthHandler(stub)

	body := strings.NewReader(`{"email":"owner@ims.com","password":"password123"}`)
	req := httptest.NewRequest(http.MethodPost, "/api/auth/login", body)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := handler.Login(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp["success"] != true {
		t.Fatalf("expected success envelope: %+v", resp)
	}
	data, _ := resp["data"].(map[string]any)
	if data["token"] != "signed-token" {
		t.Fatalf("token missing: %+v", data)
	}
	user, _ := data["user"].(map[string]any)
	if user["userId"] != float64(1) || user["roleName"] != "OWNER" {
		t.Fatalf("unexpected user payload: %+v", user)
	}
	if _, exposed := user["password_hash"]; exposed {
		t.Fatalf("password hash leaked into response")
	}
}

func TestAuthHandler_Login_ValidationFailure(t *testing.T) {
	e := newTestEcho()
	handler := NewAuthHandler(&stubAuthService{
		loginFn: func(ctx context.Context, email, password string) (string, *domain.User, error) {
			t.Fatalf("service must not be called on invalid payload")
			return "", nil, nil
		},
	})

	// Password below the 6-character minimum.
	body := strings.NewReader(`{"email":"owner@ims.com","password":"abc"}`)
	req := httptest.NewRequest(http.MethodPost, "/api/auth/login", body)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := handler.Login(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

func TestAuthHandler_Login_BadCredentials(t *testing.T) {
	e := newTestEcho()
	handler := NewAuthHandler(&stubAuthService{
		loginFn: func(ctx context.Context, email, password string) (string, *domain.User, error) {
			return "", nil, domain.ErrInvalidCredentials
		},
	})

	body := strings.NewReader(`{"email":"owner@ims.com","password":"wrongpass"}`)
	req := httptest.NewRequest(http.MethodPost, "/api/auth/login", body)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	err := handler.Login(c)
	if !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials to propagate, got %v", err)
	}
}

func TestAuthHandler_VerifyToken_MissingHeader(t *testing.T) {
	e := newTestEcho()
	handler := NewAuthHandler(&stubAuthService{
		verifyTokenFn: func(ctx context.Context, raw string) (*token.Claims, *domain.User, error) {
			t.Fatalf("service must not be called without a token")
			return nil, nil, nil
		},
	})

	req := httptest.NewRequest(http.MethodPost, "/api/auth/verify-token", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := handler.VerifyToken(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
}

func TestAuthHandler_VerifyToken_Success(t *testing.T) {
	e := newTestEcho()
	handler := NewAuthHandler(&stubAuthService{
		verifyTokenFn: func(ctx context.Context, raw string) (*token.Claims, *domain.User, error) {
			if raw != "the-token" {
				t.Fatalf("unexpected raw token: %s", raw)
			}
			return &token.Claims{UserID: 1, Email: "owner@ims.com", RoleID: domain.RoleIDOwner, RoleName: domain.RoleOwner}, ownerUser(), nil
		},
	})

	req := httptest.NewRequest(http.MethodPost, "/api/auth/verify-token", nil)
	req.Header.Set("Authorization", "Bearer the-token")
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := handler.VerifyToken(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	data, _ := resp["data"].(map[string]any)
	if _, ok := data["tokenData"]; !ok {
		t.Fatalf("tokenData missing: %+v", data)
	}
	user, _ := data["user"].(map[string]any)
	if user["email"] != "owner@ims.com" {
		t.Fatalf("unexpected user: %+v", user)
	}
}

func TestAuthHandler_Profile(t *testing.T) {
	e := newTestEcho()
	handler := NewAuthHandler(&stubAuthService{
		profileFn: func(ctx context.Context, userID int64) (*domain.User, error) {
			if userID != 1 {
				t.Fatalf("unexpected user id: %d", userID)
			}
			return ownerUser(), nil
		},
	})

	req := httptest.NewRequest(http.MethodGet, "/api/auth/profile", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.Set(middleware.CtxUserID, int64(1))

	if err := handler.Profile(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func TestAuthHandler_Profile_NoIdentity(t *testing.T) {
	e := newTestEcho()
	handler := NewAuthHandler(&stubAuthService{
		profileFn: func(ctx context.Context, userID int64) (*domain.User, error) {
			t.Fatalf("service must not be called without identity")
			return nil, nil
		},
	})

	req := httptest.NewRequest(http.MethodGet, "/api/auth/profile", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	err := handler.Profile(c)
	he, ok := err.(*echo.HTTPError)
	if !ok || he.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %v", err)
	}
}

func TestAuthHandler_Logout(t *testing.T) {
	e := newTestEcho()
	handler := NewAuthHandler(&stubAuthService{})

	req := httptest.NewRequest(http.MethodPost, "/api/auth/logout", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := handler.Logout(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}
